package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"

	"github.com/hunterwatch/boss-alert-bot/internal/domain/contract"
	"github.com/hunterwatch/boss-alert-bot/internal/domain/entity"
)

// EventsHandler receives Slack Events API callbacks and translates
// reaction events into the alert service's entry point.
type EventsHandler struct {
	alertService  contract.AlertService
	signingSecret string
	botUserID     string
	log           logrus.FieldLogger
}

func NewEventsHandler(alertService contract.AlertService, signingSecret, botUserID string, log logrus.FieldLogger) *EventsHandler {
	return &EventsHandler{
		alertService:  alertService,
		signingSecret: signingSecret,
		botUserID:     botUserID,
		log:           log,
	}
}

func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// The url_verification handshake is answered before signature
	// verification so app setup can complete.
	var preCheck struct {
		Type      string `json:"type"`
		Challenge string `json:"challenge"`
	}
	if err := json.Unmarshal(body, &preCheck); err == nil && preCheck.Type == "url_verification" {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(preCheck.Challenge))
		return
	}

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if event.Type != slackevents.CallbackEvent {
		w.WriteHeader(http.StatusOK)
		return
	}

	// One malformed event must not block subsequent events: everything
	// past this point is best-effort and always acknowledged.
	switch inner := event.InnerEvent.Data.(type) {
	case *slackevents.ReactionAddedEvent:
		h.alertService.HandleReaction(r.Context(), entity.ReactionEvent{
			Kind:      entity.ReactionAdded,
			MessageID: inner.Item.Timestamp,
			ChannelID: inner.Item.Channel,
			UserID:    inner.User,
			Marker:    inner.Reaction,
			FromSelf:  inner.User == h.botUserID,
		})
	case *slackevents.ReactionRemovedEvent:
		h.alertService.HandleReaction(r.Context(), entity.ReactionEvent{
			Kind:      entity.ReactionRemoved,
			MessageID: inner.Item.Timestamp,
			ChannelID: inner.Item.Channel,
			UserID:    inner.User,
			Marker:    inner.Reaction,
			FromSelf:  inner.User == h.botUserID,
		})
	default:
		h.log.WithField("event", event.InnerEvent.Type).Debug("ignoring event")
	}

	w.WriteHeader(http.StatusOK)
}
