package alert

import (
	"context"

	"github.com/hunterwatch/boss-alert-bot/internal/domain"
	"github.com/hunterwatch/boss-alert-bot/internal/domain/entity"
	"github.com/hunterwatch/boss-alert-bot/internal/participation"
	"github.com/hunterwatch/boss-alert-bot/internal/render"
)

// HandleReaction is the single entry point for reaction callbacks. It
// mutates the participation store and re-renders the announcement from
// the post-mutation snapshot. Errors never propagate: a failed edit is
// logged and the in-memory state stays authoritative.
func (s *Service) HandleReaction(ctx context.Context, event entity.ReactionEvent) {
	if event.FromSelf {
		return
	}

	status, ok := statusForMarker(event.Marker)
	if !ok {
		// Unrecognized markers are not an error condition.
		return
	}

	// The store mutation and the edit that publishes it must land on the
	// channel in the same order, so both run under the message lock.
	lock := s.messageLock(event.MessageID)
	lock.Lock()
	defer lock.Unlock()

	var snap participation.Snapshot
	switch event.Kind {
	case entity.ReactionAdded:
		snap = s.store.SetStatus(event.MessageID, event.ChannelID, event.UserID, status)
	case entity.ReactionRemoved:
		// Removing a marker only clears a status that marker set; it
		// must not clear a status recorded via the other marker.
		var tracked bool
		snap, tracked = s.store.ClearStatusIf(event.MessageID, event.UserID, status)
		if !tracked {
			return
		}
	default:
		return
	}

	participating, notParticipating := snap.Summary()
	s.log.WithFields(map[string]interface{}{
		"message_id":        event.MessageID,
		"user_id":           event.UserID,
		"marker":            event.Marker,
		"participating":     participating,
		"not_participating": notParticipating,
	}).Debug("participation updated")

	s.refreshAnnouncement(ctx, snap)
}

// refreshAnnouncement pushes a full re-render of the announcement. The
// boss record may be missing when the message was never dispatched by
// this process; the render then falls back to placeholder fields.
func (s *Service) refreshAnnouncement(ctx context.Context, snap participation.Snapshot) {
	if snap.Boss == nil {
		s.log.WithField("message_id", snap.MessageID).Warn("no boss record for tracked message, rendering fallback fields")
	}

	channelID := snap.ChannelID
	if channelID == "" {
		channelID = s.channelID
	}

	attachment := render.Announcement(snap.Boss, snap, s.now())
	if err := s.chat.UpdateMessage(ctx, channelID, snap.MessageID, attachment); err != nil {
		// Display desync only: the next mutation will retry the edit.
		s.log.WithError(err).WithFields(map[string]interface{}{
			"message_id": snap.MessageID,
			"channel_id": channelID,
		}).Error("failed to update announcement")
	}
}

func statusForMarker(marker string) (participation.Status, bool) {
	switch marker {
	case domain.MarkerAccept:
		return participation.StatusParticipating, true
	case domain.MarkerDecline:
		return participation.StatusNotParticipating, true
	default:
		return participation.StatusNone, false
	}
}
