package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hunterwatch/boss-alert-bot/internal/domain"
	"github.com/hunterwatch/boss-alert-bot/internal/domain/entity"
	"github.com/hunterwatch/boss-alert-bot/internal/handlers/test"
)

func TestBotHandler_HandleSendBoss(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		buildMocks    func(m test.ServiceMocks)
		checkResponse func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name: "Should dispatch successfully",
			body: `{"monster": "Valakas", "points": 150, "notes": "Bring fire resistance"}`,
			buildMocks: func(m test.ServiceMocks) {
				m.AlertServiceMock.EXPECT().
					Dispatch(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, payload *entity.BossPayload) (*entity.DispatchResult, error) {
						assert.Equal(t, "Valakas", payload.Monster)
						assert.Equal(t, int64(150), payload.Points)
						return &entity.DispatchResult{
							MessageID:       "1700000000.000100",
							ChannelID:       "C123456789",
							MarkersAttached: true,
						}, nil
					}).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				var response map[string]interface{}
				require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
				assert.Equal(t, true, response["success"])
				assert.Equal(t, "1700000000.000100", response["messageId"])
				assert.Equal(t, "C123456789", response["channelId"])
			},
		},
		{
			name: "Should return bad request when monster missing",
			body: `{}`,
			buildMocks: func(m test.ServiceMocks) {
				m.AlertServiceMock.EXPECT().
					Dispatch(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: monster is required", domain.ErrValidation)).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, resp.Code)

				var response map[string]interface{}
				require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
				assert.Equal(t, false, response["success"])
				assert.Contains(t, response["error"], "monster is required")
			},
		},
		{
			name: "Should return service unavailable when bot disconnected",
			body: `{"monster": "Baium"}`,
			buildMocks: func(m test.ServiceMocks) {
				m.AlertServiceMock.EXPECT().
					Dispatch(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrServiceUnavailable).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusServiceUnavailable, resp.Code)
			},
		},
		{
			name: "Should return not found when channel unresolved",
			body: `{"monster": "Baium"}`,
			buildMocks: func(m test.ServiceMocks) {
				m.AlertServiceMock.EXPECT().
					Dispatch(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: C404", domain.ErrChannelNotFound)).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, resp.Code)
			},
		},
		{
			name: "Should return internal error otherwise",
			body: `{"monster": "Baium"}`,
			buildMocks: func(m test.ServiceMocks) {
				m.AlertServiceMock.EXPECT().
					Dispatch(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("boom")).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, resp.Code)
			},
		},
		{
			name:       "Should reject invalid JSON without calling service",
			body:       `{not json`,
			buildMocks: func(m test.ServiceMocks) {},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, resp.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetBotHandlerTest(t)
			defer ctrl.Finish()

			tt.buildMocks(m)

			req := httptest.NewRequest(http.MethodPost, "/api/send-boss", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp := test.CreateTestRecorder()
			handler.HandleSendBoss(resp, req)

			tt.checkResponse(t, resp)
		})
	}
}

func TestBotHandler_HandleSendBoss_MethodNotAllowed(t *testing.T) {
	_, handler, ctrl := test.GetBotHandlerTest(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodGet, "/api/send-boss", nil)
	resp := test.CreateTestRecorder()
	handler.HandleSendBoss(resp, req)

	assert.Equal(t, http.StatusMethodNotAllowed, resp.Code)
}

func TestBotHandler_HandleStatus(t *testing.T) {
	m, handler, ctrl := test.GetBotHandlerTest(t)
	defer ctrl.Finish()

	m.AlertServiceMock.EXPECT().
		Status(gomock.Any()).
		Return(&entity.BotStatus{
			Connected:        true,
			BotUser:          "boss-bot",
			ChannelID:        "C123456789",
			RecentDispatches: 7,
		}, nil).Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	resp := test.CreateTestRecorder()
	handler.HandleStatus(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
	assert.Equal(t, "running", response["status"])
	assert.Equal(t, true, response["slackConnected"])
	assert.Equal(t, "boss-bot", response["botUser"])
	assert.Equal(t, "C123456789", response["channelId"])
	assert.Equal(t, float64(7), response["recentDispatches"])
}
