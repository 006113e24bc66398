package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/hunterwatch/boss-alert-bot/internal/domain"
	"github.com/hunterwatch/boss-alert-bot/internal/domain/contract"
	"github.com/hunterwatch/boss-alert-bot/internal/domain/entity"
)

// BotHandler serves the dispatch API consumed by the dashboard.
type BotHandler struct {
	alertService contract.AlertService
	log          logrus.FieldLogger
}

func NewBotHandler(alertService contract.AlertService, log logrus.FieldLogger) *BotHandler {
	return &BotHandler{
		alertService: alertService,
		log:          log,
	}
}

type sendBossResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	ChannelID string `json:"channelId,omitempty"`
	Error     string `json:"error,omitempty"`
}

type statusResponse struct {
	Status           string `json:"status"`
	SlackConnected   bool   `json:"slackConnected"`
	BotUser          string `json:"botUser,omitempty"`
	ChannelID        string `json:"channelId"`
	RecentDispatches int64  `json:"recentDispatches"`
}

// HandleSendBoss accepts a boss payload and dispatches the announcement.
func (h *BotHandler) HandleSendBoss(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var payload entity.BossPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.alertService.Dispatch(r.Context(), &payload)
	if err != nil {
		h.log.WithError(err).Warn("dispatch failed")
		h.respondError(w, statusCodeFor(err), err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, sendBossResponse{
		Success:   true,
		MessageID: result.MessageID,
		ChannelID: result.ChannelID,
	})
}

// HandleStatus reports connectivity and identity. No side effects.
func (h *BotHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	status, err := h.alertService.Status(r.Context())
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to determine status")
		return
	}

	h.respondJSON(w, http.StatusOK, statusResponse{
		Status:           "running",
		SlackConnected:   status.Connected,
		BotUser:          status.BotUser,
		ChannelID:        status.ChannelID,
		RecentDispatches: status.RecentDispatches,
	})
}

func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrServiceUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrChannelNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (h *BotHandler) respondError(w http.ResponseWriter, code int, message string) {
	h.respondJSON(w, code, sendBossResponse{Success: false, Error: message})
}

func (h *BotHandler) respondJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.WithError(err).Error("failed to encode response")
	}
}
