package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hunterwatch/boss-alert-bot/internal/handlers"
	"github.com/hunterwatch/boss-alert-bot/mocks"
)

const SigningSecret = "test-signing-secret"

const BotUserID = "UBOT000001"

type ServiceMocks struct {
	AlertServiceMock *mocks.MockAlertService
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func GetBotHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.BotHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		AlertServiceMock: mocks.NewMockAlertService(ctrl),
	}

	handler = handlers.NewBotHandler(m.AlertServiceMock, quietLogger())
	return
}

func GetEventsHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.EventsHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		AlertServiceMock: mocks.NewMockAlertService(ctrl),
	}

	handler = handlers.NewEventsHandler(m.AlertServiceMock, SigningSecret, BotUserID, quietLogger())
	return
}

// CreateSignedEventRequest creates a properly signed Slack Events API request
func CreateSignedEventRequest(t *testing.T, body string) *http.Request {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, "/slack/events", strings.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)
	req.Header.Set("X-Slack-Signature", generateSlackSignature(SigningSecret, timestamp, body))

	return req
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}

// ReactionEventBody builds an event_callback payload for a reaction event
func ReactionEventBody(eventType, user, reaction, channel, timestamp string) string {
	return fmt.Sprintf(`{
		"type": "event_callback",
		"team_id": "T123456789",
		"event": {
			"type": %q,
			"user": %q,
			"reaction": %q,
			"item_user": %q,
			"item": {
				"type": "message",
				"channel": %q,
				"ts": %q
			},
			"event_ts": "1700000001.000000"
		}
	}`, eventType, user, reaction, BotUserID, channel, timestamp)
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
