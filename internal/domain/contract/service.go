package contract

import (
	"context"

	"github.com/hunterwatch/boss-alert-bot/internal/domain/entity"
)

// AlertService is the boss announcement engine: dispatching new
// announcements and keeping them in sync with incoming reactions.
type AlertService interface {
	Dispatch(ctx context.Context, payload *entity.BossPayload) (*entity.DispatchResult, error)
	HandleReaction(ctx context.Context, event entity.ReactionEvent)
	Status(ctx context.Context) (*entity.BotStatus, error)
}
