package slogx

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func serveOnce(t *testing.T, status int, mutate func(*http.Request)) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := HTTPMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/languages", nil)
	if mutate != nil {
		mutate(req)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return rec, entry
}

func TestHTTPMiddlewareEchoesRequestID(t *testing.T) {
	rec, entry := serveOnce(t, http.StatusNoContent, func(r *http.Request) {
		r.Header.Set("X-Request-ID", "req-123")
	})

	require.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
	require.Equal(t, "req-123", entry["req_id"])
	require.Equal(t, float64(http.StatusNoContent), entry["status"])
}

func TestHTTPMiddlewareMintsRequestID(t *testing.T) {
	rec, entry := serveOnce(t, http.StatusOK, nil)

	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	require.Equal(t, rec.Header().Get("X-Request-ID"), entry["req_id"])
}

func TestHTTPMiddlewareSeverityTracksStatus(t *testing.T) {
	for status, level := range map[int]string{
		http.StatusOK:                  "INFO",
		http.StatusTooManyRequests:     "WARN",
		http.StatusInternalServerError: "ERROR",
	} {
		_, entry := serveOnce(t, status, nil)
		require.Equal(t, level, entry["level"], "status %d", status)
	}
}

func TestHTTPMiddlewareRecordsClientType(t *testing.T) {
	_, entry := serveOnce(t, http.StatusOK, func(r *http.Request) {
		r.Header.Set("X-Client-Type", "web")
	})
	require.Equal(t, "web", entry["client_type"])

	_, entry = serveOnce(t, http.StatusOK, nil)
	require.NotContains(t, entry, "client_type")
}
