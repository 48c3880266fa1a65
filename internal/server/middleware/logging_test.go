package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger() (*slog.Logger, *strings.Builder) {
	var buf strings.Builder
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestRequestLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "ok", status: http.StatusOK, wantLevel: "level=INFO"},
		{name: "created", status: http.StatusCreated, wantLevel: "level=INFO"},
		{name: "no content", status: http.StatusNoContent, wantLevel: "level=INFO"},
		{name: "forbidden", status: http.StatusForbidden, wantLevel: "level=WARN"},
		{name: "too many requests", status: http.StatusTooManyRequests, wantLevel: "level=WARN"},
		{name: "unavailable", status: http.StatusServiceUnavailable, wantLevel: "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger()
			handler := RequestLogger(logger, LoggingOptions{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signin", nil)
			req.RemoteAddr = "192.168.1.1:12345"
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			out := buf.String()
			assert.Contains(t, out, tt.wantLevel)
			assert.Contains(t, out, "method=POST")
			assert.Contains(t, out, "path=/api/v1/auth/signin")
			assert.Contains(t, out, "client_ip=192.168.1.1")
		})
	}
}

func TestRequestLogger_ResponseSizeAndRequestID(t *testing.T) {
	logger, buf := newBufferLogger()
	handler := chimw.RequestID(RequestLogger(logger, LoggingOptions{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"events":[]}`))
	})))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	out := buf.String()
	assert.Contains(t, out, "status=200")
	assert.Contains(t, out, "bytes=13")
	assert.Contains(t, out, "duration=")
	assert.Contains(t, out, "request_id=")
}

func TestRequestLogger_SkipPaths(t *testing.T) {
	logger, buf := newBufferLogger()
	called := 0
	handler := RequestLogger(logger, LoggingOptions{SkipPaths: []string{"/metrics", "/api/v1/health"}})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called++
		}))

	for _, path := range []string{"/metrics", "/api/v1/health"} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}
	assert.Equal(t, 2, called)
	assert.Empty(t, buf.String())

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/auth/signin", nil))
	assert.Contains(t, buf.String(), "/api/v1/auth/signin")
}

func TestRequestLogger_HidesUserID(t *testing.T) {
	logger, buf := newBufferLogger()
	handler := RequestLogger(logger, LoggingOptions{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/api/v1/users/kakao_1234/events/e1", nil))

	assert.NotContains(t, buf.String(), "kakao_1234")
	assert.Contains(t, buf.String(), "path=/api/v1/users/***/events/e1")
}

func TestMaskUserID(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/v1/auth/signin", "/api/v1/auth/signin"},
		{"/api/v1/users/u1/events", "/api/v1/users/***/events"},
		{"/api/v1/users/u1/events/e1", "/api/v1/users/***/events/e1"},
		{"/api/v1/users/u1", "/api/v1/users/***"},
		{"/api/v1/users/", "/api/v1/users/"},
		{"/", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, maskUserID(tt.path))
		})
	}
}

func TestStatusRecorder(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := wrapResponseWriter(rec)
	assert.Same(t, rw, wrapResponseWriter(rw))

	rw.WriteHeader(http.StatusAccepted)
	n, err := rw.Write([]byte("abc"))
	require.NoError(t, err)

	assert.Equal(t, 3, n)
	assert.Equal(t, http.StatusAccepted, rw.statusCode)
	assert.Equal(t, int64(3), rw.written)
	assert.Equal(t, http.StatusAccepted, rec.Code)
}
