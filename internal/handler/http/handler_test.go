package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-cipher-lab/internal/app"
	"github.com/MKhiriev/go-cipher-lab/internal/config"
	"github.com/MKhiriev/go-cipher-lab/internal/logger"
	"github.com/MKhiriev/go-cipher-lab/internal/mock"
	"github.com/MKhiriev/go-cipher-lab/internal/service"
	"github.com/MKhiriev/go-cipher-lab/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	cipher  *mock.MockCipherService
	history *mock.MockHistoryService
	appInfo *mock.MockAppInfoService
}

// newTestRouter builds the full router on top of mocked services.
func newTestRouter(t *testing.T) (http.Handler, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := testMocks{
		cipher:  mock.NewMockCipherService(ctrl),
		history: mock.NewMockHistoryService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	services := &service.Services{
		CipherService:  m.cipher,
		HistoryService: m.history,
		AppInfoService: m.appInfo,
	}

	h := NewHandler(services, config.Server{RequestTimeout: 5 * time.Second}, logger.Nop())
	return h.Init(), m
}

func doRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// ── POST /api/transform ─────────────────────────────────────────────────────

func TestTransform_Success(t *testing.T) {
	router, m := newTestRouter(t)
	req := models.TransformRequest{Method: models.Caesar, Mode: models.Encrypt, Input: "abc", Key: "1"}

	m.cipher.EXPECT().
		Transform(gomock.Any(), req).
		Return(models.TransformResult{Output: "bcd", Strength: 30}, nil)

	body, err := json.Marshal(req)
	require.NoError(t, err)
	rr := doRequest(router, http.MethodPost, "/api/transform", string(body))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"output":"bcd","strength":30}`, rr.Body.String())
}

func TestTransform_InvalidJSON(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := doRequest(router, http.MethodPost, "/api/transform", `{"method":`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgInvalidJSON, strings.TrimSpace(rr.Body.String()))
}

func TestTransform_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "unknown method",
			err:        fmt.Errorf("validation: %w", service.ErrUnknownMethod),
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgUnknownMethod,
		},
		{
			name:       "invalid mode",
			err:        service.ErrInvalidMode,
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidMode,
		},
		{
			name:       "input too large",
			err:        service.ErrInputTooLarge,
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInputTooLarge,
		},
		{
			name:       "history failure",
			err:        fmt.Errorf("%w: disk on fire", service.ErrRecordingHistory),
			wantStatus: http.StatusInternalServerError,
			wantBody:   app.MsgInternalServerError,
		},
		{
			name:       "unexpected",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			m.cipher.EXPECT().Transform(gomock.Any(), gomock.Any()).Return(models.TransformResult{}, tt.err)

			rr := doRequest(router, http.MethodPost, "/api/transform", `{"method":"caesar","input":"x"}`)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantBody, strings.TrimSpace(rr.Body.String()))
		})
	}
}

func TestTransform_BodyTooLarge(t *testing.T) {
	router, _ := newTestRouter(t)
	payload := `{"method":"hex","input":"` + strings.Repeat("a", maxBodyBytes) + `"}`

	rr := doRequest(router, http.MethodPost, "/api/transform", payload)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// ── POST /api/strength ──────────────────────────────────────────────────────

func TestStrength_Success(t *testing.T) {
	router, m := newTestRouter(t)
	m.cipher.EXPECT().
		Strength(gomock.Any(), models.StrengthRequest{Text: "Passw0rd!", Method: models.Caesar}).
		Return(80, nil)

	rr := doRequest(router, http.MethodPost, "/api/strength", `{"text":"Passw0rd!","method":"caesar"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"strength":80}`, rr.Body.String())
}

func TestStrength_InvalidJSON(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := doRequest(router, http.MethodPost, "/api/strength", `[]`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// ── GET /api/methods ────────────────────────────────────────────────────────

func TestMethods(t *testing.T) {
	router, m := newTestRouter(t)
	m.cipher.EXPECT().Methods(gomock.Any()).Return([]models.MethodInfo{
		{ID: models.Hex, Name: "Hexadecimal", KeyClass: models.KeyNone, SecurityScore: 30},
	}, nil)

	rr := doRequest(router, http.MethodGet, "/api/methods", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t,
		`[{"id":"hex","name":"Hexadecimal","key_class":"none","security_score":30,"simulated":false}]`,
		rr.Body.String())
}

// ── /api/history ────────────────────────────────────────────────────────────

func TestHistory_List(t *testing.T) {
	router, m := newTestRouter(t)
	ts := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	m.history.EXPECT().List(gomock.Any()).Return([]models.HistoryEntry{
		{ID: "2", MethodName: "Hexadecimal", Method: models.Hex, Input: "A", Output: "41", Mode: models.Encrypt, Timestamp: ts},
	}, nil)

	rr := doRequest(router, http.MethodGet, "/api/history", "")

	require.Equal(t, http.StatusOK, rr.Code)
	var got []models.HistoryEntry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "41", got[0].Output)
	assert.True(t, ts.Equal(got[0].Timestamp))
}

func TestHistory_EmptyIsArray(t *testing.T) {
	router, m := newTestRouter(t)
	m.history.EXPECT().List(gomock.Any()).Return(nil, nil)

	rr := doRequest(router, http.MethodGet, "/api/history", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", rr.Body.String())
}

func TestHistory_Clear(t *testing.T) {
	router, m := newTestRouter(t)
	m.history.EXPECT().Clear(gomock.Any()).Return(nil)

	rr := doRequest(router, http.MethodDelete, "/api/history", "")

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.Bytes())
}

func TestHistory_ClearError(t *testing.T) {
	router, m := newTestRouter(t)
	m.history.EXPECT().Clear(gomock.Any()).Return(errors.New("nope"))

	rr := doRequest(router, http.MethodDelete, "/api/history", "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

// ── GET /api/version/ ───────────────────────────────────────────────────────

func TestGetServerVersion(t *testing.T) {
	router, m := newTestRouter(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3", nil)

	rr := doRequest(router, http.MethodGet, "/api/version/", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1.2.3", rr.Body.String())
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/plain")
}

// ── routing ─────────────────────────────────────────────────────────────────

func TestRoutes_WrongMethodIs404(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/transform"},
		{http.MethodPut, "/api/history"},
		{http.MethodPost, "/api/version/"},
		{http.MethodDelete, "/api/methods"},
	} {
		rr := doRequest(router, tc.method, tc.path, "")
		assert.Equal(t, http.StatusNotFound, rr.Code, "%s %s", tc.method, tc.path)
	}
}

func TestRoutes_UnknownPathIs404(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := doRequest(router, http.MethodGet, "/api/unknown", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRoutes_SetsTraceIDHeader(t *testing.T) {
	router, m := newTestRouter(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v", nil)

	rr := doRequest(router, http.MethodGet, "/api/version/", "")

	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestRoutes_RecoversFromPanic(t *testing.T) {
	router, m := newTestRouter(t)
	m.cipher.EXPECT().Methods(gomock.Any()).DoAndReturn(func(context.Context) ([]models.MethodInfo, error) {
		panic("kaboom")
	})

	rr := doRequest(router, http.MethodGet, "/api/methods", "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestRoutes_GzipRoundTrip(t *testing.T) {
	router, m := newTestRouter(t)
	m.cipher.EXPECT().Strength(gomock.Any(), models.StrengthRequest{Text: "abc"}).Return(10, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/strength", bytes.NewReader(gzipBytes(t, `{"text":"abc"}`)))
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.JSONEq(t, `{"strength":10}`, gunzipString(t, rr.Body.Bytes()))
}
