package contract

import (
	"context"

	"github.com/slack-go/slack"
)

// ChatClient defines the interface for Slack operations
// This allows mocking in tests while keeping the real implementation simple
type ChatClient interface {
	// PostMessage sends an announcement to a channel and returns the
	// message timestamp that identifies it
	PostMessage(ctx context.Context, channelID string, attachment slack.Attachment) (string, error)

	// UpdateMessage replaces the content of a previously posted message
	UpdateMessage(ctx context.Context, channelID, messageID string, attachment slack.Attachment) error

	// AddReaction attaches a reaction marker to a message
	AddReaction(ctx context.Context, channelID, messageID, marker string) error

	// AuthTest reports the identity of the connected bot user
	AuthTest(ctx context.Context) (*slack.AuthTestResponse, error)
}
