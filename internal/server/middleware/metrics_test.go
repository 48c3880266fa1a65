package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method string
	route  string
	status int
}

type fakeHTTPRecorder struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (f *fakeHTTPRecorder) RecordRequest(method, route string, status int, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, recordedRequest{method: method, route: route, status: status})
}

func TestMetricsMiddleware_UsesRoutePattern(t *testing.T) {
	recorder := &fakeHTTPRecorder{}

	r := chi.NewRouter()
	r.Use(MetricsMiddleware(recorder))
	r.Get("/api/v1/users/{uid}/events", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Delete("/api/v1/users/{uid}/events/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/api/v1/users/u1/events", nil),
		httptest.NewRequest(http.MethodDelete, "/api/v1/users/u1/events/e9", nil),
		httptest.NewRequest(http.MethodGet, "/nowhere", nil),
	} {
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	require.Len(t, recorder.requests, 3)
	assert.Equal(t, recordedRequest{http.MethodGet, "/api/v1/users/{uid}/events", http.StatusOK}, recorder.requests[0])
	assert.Equal(t, recordedRequest{http.MethodDelete, "/api/v1/users/{uid}/events/{id}", http.StatusNotFound}, recorder.requests[1])
	assert.Equal(t, http.StatusNotFound, recorder.requests[2].status)
	assert.NotContains(t, recorder.requests[2].route, "nowhere")
}
