package alert

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hunterwatch/boss-alert-bot/internal/domain"
	"github.com/hunterwatch/boss-alert-bot/internal/domain/entity"
	"github.com/hunterwatch/boss-alert-bot/internal/participation"
	"github.com/hunterwatch/boss-alert-bot/internal/render"
)

// Dispatch validates the payload, renders the initial announcement with
// empty participation, posts it, attaches the two reaction markers and
// registers the message for tracking. Marker attachment is best-effort:
// a failure there is reported on the result, not as an error.
func (s *Service) Dispatch(ctx context.Context, payload *entity.BossPayload) (*entity.DispatchResult, error) {
	if payload == nil {
		return nil, fmt.Errorf("%w: empty payload", domain.ErrValidation)
	}

	boss := payload.Normalize()
	if boss.MonsterName == "" {
		return nil, fmt.Errorf("%w: monster is required", domain.ErrValidation)
	}

	if s.chat == nil {
		return nil, domain.ErrServiceUnavailable
	}
	if s.channelID == "" {
		return nil, fmt.Errorf("%w: no target channel configured", domain.ErrChannelNotFound)
	}

	s.completeFromCatalog(&boss)

	attachment := render.Announcement(&boss, participation.Snapshot{}, s.now())

	messageID, err := s.chat.PostMessage(ctx, s.channelID, attachment)
	if err != nil {
		switch {
		case strings.Contains(err.Error(), "channel_not_found"):
			return nil, fmt.Errorf("%w: %s", domain.ErrChannelNotFound, s.channelID)
		case strings.Contains(err.Error(), "not_authed"), strings.Contains(err.Error(), "invalid_auth"):
			return nil, fmt.Errorf("%w: %v", domain.ErrServiceUnavailable, err)
		default:
			return nil, fmt.Errorf("%w: %v", domain.ErrDispatchFailed, err)
		}
	}

	markersAttached := true
	for _, marker := range []string{domain.MarkerAccept, domain.MarkerDecline} {
		if err := s.chat.AddReaction(ctx, s.channelID, messageID, marker); err != nil {
			markersAttached = false
			s.log.WithError(err).WithFields(map[string]interface{}{
				"message_id": messageID,
				"marker":     marker,
			}).Warn("failed to attach reaction marker")
		}
	}

	s.store.Track(messageID, s.channelID, &boss)
	s.recordDispatch(messageID, boss.MonsterName)

	s.log.WithFields(map[string]interface{}{
		"message_id": messageID,
		"channel_id": s.channelID,
		"monster":    boss.MonsterName,
	}).Info("boss notification sent")

	return &entity.DispatchResult{
		MessageID:       messageID,
		ChannelID:       s.channelID,
		MarkersAttached: markersAttached,
	}, nil
}

// completeFromCatalog fills fields the payload left empty from the local
// boss catalog. Lookup failures are logged and the payload is used as-is.
func (s *Service) completeFromCatalog(boss *entity.Boss) {
	if s.dm == nil {
		return
	}

	known, err := s.dm.Boss().GetByMonsterName(boss.MonsterName)
	if err != nil {
		s.log.WithError(err).WithField("monster", boss.MonsterName).Warn("boss catalog lookup failed")
		return
	}
	if known == nil {
		return
	}

	if boss.DisplayName == "" || boss.DisplayName == boss.MonsterName {
		if known.DisplayName != "" {
			boss.DisplayName = known.DisplayName
		}
	}
	if boss.Points == 0 {
		boss.Points = known.Points
	}
	if boss.Notes == "" {
		boss.Notes = known.Notes
	}
	if boss.ImageURL == "" {
		boss.ImageURL = known.ImageURL
	}
	if boss.RespawnAt == nil {
		boss.RespawnAt = known.RespawnAt
	}
	if boss.DiedAt == nil {
		boss.DiedAt = known.DiedAt
	}
	if boss.RespawnHours == 0 {
		boss.RespawnHours = known.RespawnHours
	}
}

func (s *Service) recordDispatch(messageID, monsterName string) {
	if s.dm == nil {
		return
	}

	record := &entity.DispatchRecord{
		MessageID:   messageID,
		ChannelID:   s.channelID,
		MonsterName: monsterName,
		SentAt:      s.now(),
	}
	if err := s.dm.Dispatch().Create(record); err != nil {
		s.log.WithError(err).WithField("message_id", messageID).Warn("failed to record dispatch")
	}
}

// Status reports connectivity and identity for the status endpoint.
func (s *Service) Status(ctx context.Context) (*entity.BotStatus, error) {
	status := &entity.BotStatus{ChannelID: s.channelID}

	if s.chat != nil {
		if resp, err := s.chat.AuthTest(ctx); err == nil {
			status.Connected = true
			status.BotUser = resp.User
		} else {
			s.log.WithError(err).Warn("auth test failed")
		}
	}

	if s.dm != nil {
		count, err := s.dm.Dispatch().CountSince(s.now().Add(-24 * time.Hour))
		if err != nil {
			s.log.WithError(err).Warn("failed to count recent dispatches")
		} else {
			status.RecentDispatches = count
		}
	}

	return status, nil
}
