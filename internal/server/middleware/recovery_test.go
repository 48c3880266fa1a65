package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophcal/pkg/api"
)

func TestRecoveryMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		panicValue any
		wantStatus int
	}{
		{name: "no panic", wantStatus: http.StatusNoContent},
		{name: "string", panicValue: "something went wrong", wantStatus: http.StatusInternalServerError},
		{name: "error", panicValue: errors.New("nil map write"), wantStatus: http.StatusInternalServerError},
		{name: "struct", panicValue: struct{ msg string }{"critical error"}, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := RecoveryMiddleware(setupTestLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.panicValue != nil {
					panic(tt.panicValue)
				}
				w.WriteHeader(http.StatusNoContent)
			}))

			rec := httptest.NewRecorder()
			assert.NotPanics(t, func() {
				handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
			})
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.panicValue == nil {
				return
			}
			var resp api.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, api.ErrCodeInternal, resp.Error)
			assert.Equal(t, "internal server error", resp.Message)
		})
	}
}

func TestRecoveryMiddleware_AbortHandler(t *testing.T) {
	handler := RecoveryMiddleware(setupTestLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestRecoveryMiddleware_Log(t *testing.T) {
	logger, buf := newBufferLogger()
	handler := chimw.RequestID(RecoveryMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	})))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/users/u1/events", nil))

	out := buf.String()
	assert.Contains(t, out, "Panic recovered")
	assert.Contains(t, out, "panic=\"test panic\"")
	assert.Contains(t, out, "request_id=")
	assert.Contains(t, out, "goroutine", "stack trace is logged")
	assert.NotContains(t, out, "/users/u1/")
}
