package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/gophcal/internal/client/api"
	"github.com/iudanet/gophcal/internal/models"
	"github.com/iudanet/gophcal/internal/month"
	"github.com/iudanet/gophcal/pkg/api"
)

func staticToken(token string) *TokenSourceMock {
	return &TokenSourceMock{
		BearerTokenFunc: func(ctx context.Context) (string, error) {
			return token, nil
		},
	}
}

func TestHTTPStore_Queries(t *testing.T) {
	created := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	client := &EventsClientMock{
		ListEventsFunc: func(ctx context.Context, token, uid string, query url.Values) ([]api.Event, error) {
			return []api.Event{{CreatedAt: created, ID: "e1", Title: "Standup", Date: "2025-06-02", Time: "09:00", OwnerID: uid}}, nil
		},
	}
	store := NewHTTPStore(client, staticToken("jwt"), testLogger())
	ctx := context.Background()

	byMonth, err := store.GetEventsByMonth(ctx, testOwner, june)
	require.NoError(t, err)
	_, err = store.GetEventsByDate(ctx, testOwner, "2025-06-02")
	require.NoError(t, err)
	_, err = store.GetAllEvents(ctx, testOwner)
	require.NoError(t, err)

	assert.Equal(t, []models.Event{{
		CreatedAt: created, ID: "e1", Title: "Standup", Date: "2025-06-02", Time: "09:00", OwnerID: testOwner,
	}}, byMonth)

	calls := client.ListEventsCalls()
	require.Len(t, calls, 3)
	for _, call := range calls {
		assert.Equal(t, "jwt", call.Token)
		assert.Equal(t, testOwner, call.Uid)
	}
	assert.Equal(t, url.Values{"month": {"2025-06-01"}}, calls[0].Query)
	assert.Equal(t, url.Values{"date": {"2025-06-02"}}, calls[1].Query)
	assert.Empty(t, calls[2].Query)
}

func TestHTTPStore_AddEvent(t *testing.T) {
	client := &EventsClientMock{
		CreateEventFunc: func(ctx context.Context, token, uid string, req api.CreateEventRequest) (*api.Event, error) {
			return &api.Event{ID: "srv-1", Title: req.Title, Date: req.Date, Time: req.Time, OwnerID: uid}, nil
		},
	}
	store := NewHTTPStore(client, staticToken("jwt"), testLogger())

	saved, err := store.AddEvent(context.Background(), testOwner, models.EventDraft{Title: "Lunch", Date: "2025-06-10", Time: "12:30"})

	require.NoError(t, err)
	assert.Equal(t, "srv-1", saved.ID)
	assert.Equal(t, testOwner, saved.OwnerID)
	require.Len(t, client.CreateEventCalls(), 1)
	assert.Equal(t, api.CreateEventRequest{Title: "Lunch", Date: "2025-06-10", Time: "12:30"}, client.CreateEventCalls()[0].Req)
}

func TestHTTPStore_ErrorKinds(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind StoreErrorKind
		wantIs   error
	}{
		{
			name:     "not found",
			err:      &clientapi.StatusError{StatusCode: http.StatusNotFound, Code: "not_found"},
			wantKind: KindNotFound,
			wantIs:   ErrNotFound,
		},
		{
			name:     "unauthorized",
			err:      fmt.Errorf("delete event request failed: %w", &clientapi.StatusError{StatusCode: http.StatusUnauthorized}),
			wantKind: KindPermission,
			wantIs:   ErrPermission,
		},
		{
			name:     "forbidden",
			err:      &clientapi.StatusError{StatusCode: http.StatusForbidden},
			wantKind: KindPermission,
			wantIs:   ErrPermission,
		},
		{
			name:     "server error",
			err:      &clientapi.StatusError{StatusCode: http.StatusInternalServerError},
			wantKind: KindUnknown,
		},
		{
			name:     "transport",
			err:      errors.New("request failed: dial tcp: connection refused"),
			wantKind: KindNetwork,
			wantIs:   ErrNetwork,
		},
		{
			name:     "canceled",
			err:      fmt.Errorf("request failed: %w", context.Canceled),
			wantKind: KindUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &EventsClientMock{
				DeleteEventFunc: func(ctx context.Context, token, uid, id string) error {
					return tt.err
				},
			}
			store := NewHTTPStore(client, staticToken("jwt"), testLogger())

			err := store.DeleteEvent(context.Background(), testOwner, "e1")

			require.Error(t, err)
			assert.Equal(t, tt.wantKind, ErrorKind(err))
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
			assert.ErrorIs(t, err, tt.err, "cause is kept")
		})
	}
}

func TestHTTPStore_NoToken(t *testing.T) {
	client := &EventsClientMock{}
	tokens := &TokenSourceMock{
		BearerTokenFunc: func(ctx context.Context) (string, error) {
			return "", errors.New("not signed in")
		},
	}
	store := NewHTTPStore(client, tokens, testLogger())

	_, err := store.GetEventsByMonth(context.Background(), testOwner, june)

	assert.ErrorIs(t, err, ErrPermission)
	assert.Empty(t, client.ListEventsCalls())
}

func TestHTTPStore_AgainstServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer jwt", r.Header.Get("Authorization"))

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/users/uid-1/events":
			assert.Equal(t, "2025-06-01", r.URL.Query().Get("month"))
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(api.EventsResponse{Events: []api.Event{
				{ID: "e1", Title: "Standup", Date: "2025-06-02", Time: "09:00", OwnerID: "uid-1"},
			}})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/v1/users/uid-1/events/missing":
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "not_found", Message: "event not found"})
		default:
			w.WriteHeader(http.StatusTeapot)
		}
	}))
	defer srv.Close()

	store := NewHTTPStore(clientapi.NewClient(srv.URL), staticToken("jwt"), testLogger())
	ctx := context.Background()

	events, err := store.GetEventsByMonth(ctx, testOwner, month.MustParse("2025-06-01"))
	require.NoError(t, err)
	assert.Equal(t, []string{"e1"}, ids(events))

	err = store.DeleteEvent(ctx, testOwner, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	se, ok := clientapi.AsStatusError(err)
	require.True(t, ok)
	assert.Equal(t, "event not found", se.Message)
}
