// Package chat implements the ChatClient contract over the Slack Web API.
package chat

import (
	"context"

	"github.com/slack-go/slack"
)

type Client struct {
	api *slack.Client
}

func New(api *slack.Client) *Client {
	return &Client{api: api}
}

func (c *Client) PostMessage(ctx context.Context, channelID string, attachment slack.Attachment) (string, error) {
	_, timestamp, err := c.api.PostMessageContext(ctx, channelID, slack.MsgOptionAttachments(attachment))
	if err != nil {
		return "", err
	}
	return timestamp, nil
}

func (c *Client) UpdateMessage(ctx context.Context, channelID, messageID string, attachment slack.Attachment) error {
	_, _, _, err := c.api.UpdateMessageContext(ctx, channelID, messageID, slack.MsgOptionAttachments(attachment))
	return err
}

func (c *Client) AddReaction(ctx context.Context, channelID, messageID, marker string) error {
	return c.api.AddReactionContext(ctx, marker, slack.ItemRef{
		Channel:   channelID,
		Timestamp: messageID,
	})
}

func (c *Client) AuthTest(ctx context.Context) (*slack.AuthTestResponse, error) {
	return c.api.AuthTestContext(ctx)
}
