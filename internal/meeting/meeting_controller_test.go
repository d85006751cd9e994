package meeting

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	echo "github.com/labstack/echo/v4"
	"github.com/romashorodok/meeting-authority/pkg/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*echo.Echo, *fakeRegistry) {
	t.Helper()

	svc, reg, _, _ := newTestService()
	ctrl := &meetingController{
		meetingService: svc,
		requests:       service.NewRequestCounter(),
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		startedAt:      time.Now(),
	}

	router := echo.New()
	require.NoError(t, ctrl.Resolve(router))
	return router, reg
}

func doJSON(router *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	body := make(map[string]any)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreateMeetingEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(router, http.MethodPost, "/create-meeting", `{"userId":"u1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Regexp(t, meetingCodePattern, body["meetingId"])
	assert.Regexp(t, passwordPattern, body["password"])
	assert.Contains(t, body["roomName"], body["meetingId"])
	assert.NotEmpty(t, body["token"])
}

func TestCreateMeetingEndpointMissingUser(t *testing.T) {
	router, reg := newTestRouter(t)

	rec := doJSON(router, http.MethodPost, "/create-meeting", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, reg.records)
}

func TestJoinMeetingEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	created := decodeBody(t, doJSON(router, http.MethodPost, "/create-meeting", `{"userId":"u1"}`))

	rec := doJSON(router, http.MethodPost, "/join-meeting", fmt.Sprintf(
		`{"meetingId":%q,"password":%q,"userId":"u2"}`, created["meetingId"], created["password"],
	))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["isHost"])
	assert.NotEmpty(t, body["token"])
}

func TestJoinMeetingEndpointStatuses(t *testing.T) {
	router, _ := newTestRouter(t)

	created := decodeBody(t, doJSON(router, http.MethodPost, "/create-meeting", `{"userId":"u1"}`))

	t.Run("missing fields", func(t *testing.T) {
		rec := doJSON(router, http.MethodPost, "/join-meeting", `{"password":"123456"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown meeting", func(t *testing.T) {
		rec := doJSON(router, http.MethodPost, "/join-meeting", `{"meetingId":"AAA-BBB-CCC","password":"123456","userId":"u2"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := doJSON(router, http.MethodPost, "/join-meeting", fmt.Sprintf(
			`{"meetingId":%q,"password":"wrong","userId":"u2"}`, created["meetingId"],
		))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("host bypasses password", func(t *testing.T) {
		rec := doJSON(router, http.MethodPost, "/join-meeting", fmt.Sprintf(
			`{"meetingId":%q,"password":"wrong","userId":"u1"}`, created["meetingId"],
		))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, decodeBody(t, rec)["isHost"])
	})
}

func TestEndMeetingEndpoint(t *testing.T) {
	router, reg := newTestRouter(t)

	created := decodeBody(t, doJSON(router, http.MethodPost, "/create-meeting", `{"userId":"u1"}`))
	meetingID := created["meetingId"].(string)

	rec := doJSON(router, http.MethodPost, "/end-meeting", fmt.Sprintf(
		`{"meetingId":%q,"userId":"u2"}`, meetingID,
	))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Len(t, reg.records, 1)

	rec = doJSON(router, http.MethodPost, "/end-meeting", fmt.Sprintf(
		`{"meetingId":%q,"userId":"u1"}`, meetingID,
	))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["success"])

	rec = doJSON(router, http.MethodPost, "/join-meeting", fmt.Sprintf(
		`{"meetingId":%q,"password":%q,"userId":"u2"}`, meetingID, created["password"],
	))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Ending twice fails the lookup, row already gone.
	rec = doJSON(router, http.MethodPost, "/end-meeting", fmt.Sprintf(
		`{"meetingId":%q,"userId":"u1"}`, meetingID,
	))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "meeting-authority", body["service"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestIndexEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(router, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "meeting-authority", decodeBody(t, rec)["service"])
}

func TestUnmatchedPath(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(router, http.MethodGet, "/no-such-endpoint", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Endpoint not found", decodeBody(t, rec)["error"])
}
