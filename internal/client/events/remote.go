package events

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	clientapi "github.com/iudanet/gophcal/internal/client/api"
	"github.com/iudanet/gophcal/internal/models"
	"github.com/iudanet/gophcal/internal/month"
	"github.com/iudanet/gophcal/pkg/api"
)

//go:generate moq -out eventsclient_mock.go . EventsClient TokenSource

// EventsClient backend event endpoints
type EventsClient interface {
	ListEvents(ctx context.Context, token, uid string, query url.Values) ([]api.Event, error)
	CreateEvent(ctx context.Context, token, uid string, req api.CreateEventRequest) (*api.Event, error)
	DeleteEvent(ctx context.Context, token, uid, id string) error
}

var _ EventsClient = (*clientapi.Client)(nil)

// TokenSource bearer token of the current session
type TokenSource interface {
	BearerToken(ctx context.Context) (string, error)
}

// HTTPStore RemoteStore backed by the backend HTTP API
type HTTPStore struct {
	client EventsClient
	tokens TokenSource
	logger *slog.Logger
}

var _ RemoteStore = (*HTTPStore)(nil)

// NewHTTPStore creates the store
func NewHTTPStore(client EventsClient, tokens TokenSource, logger *slog.Logger) *HTTPStore {
	return &HTTPStore{client: client, tokens: tokens, logger: logger}
}

// AddEvent implements RemoteStore
func (s *HTTPStore) AddEvent(ctx context.Context, ownerID string, draft models.EventDraft) (models.Event, error) {
	token, err := s.token(ctx, "add")
	if err != nil {
		return models.Event{}, err
	}

	created, err := s.client.CreateEvent(ctx, token, ownerID, api.CreateEventRequest{
		Title: draft.Title,
		Date:  draft.Date,
		Time:  draft.Time,
	})
	if err != nil {
		return models.Event{}, classify("add", err)
	}
	return fromAPI(*created), nil
}

// GetEventsByMonth implements RemoteStore
func (s *HTTPStore) GetEventsByMonth(ctx context.Context, ownerID string, key month.Key) ([]models.Event, error) {
	return s.list(ctx, "get_month", ownerID, url.Values{"month": {key.String()}})
}

// GetEventsByDate implements RemoteStore
func (s *HTTPStore) GetEventsByDate(ctx context.Context, ownerID, date string) ([]models.Event, error) {
	return s.list(ctx, "get_date", ownerID, url.Values{"date": {date}})
}

// GetAllEvents implements RemoteStore
func (s *HTTPStore) GetAllEvents(ctx context.Context, ownerID string) ([]models.Event, error) {
	return s.list(ctx, "get_all", ownerID, nil)
}

// DeleteEvent implements RemoteStore
func (s *HTTPStore) DeleteEvent(ctx context.Context, ownerID, id string) error {
	token, err := s.token(ctx, "delete")
	if err != nil {
		return err
	}
	if err := s.client.DeleteEvent(ctx, token, ownerID, id); err != nil {
		return classify("delete", err)
	}
	return nil
}

func (s *HTTPStore) list(ctx context.Context, op, ownerID string, query url.Values) ([]models.Event, error) {
	token, err := s.token(ctx, op)
	if err != nil {
		return nil, err
	}

	items, err := s.client.ListEvents(ctx, token, ownerID, query)
	if err != nil {
		return nil, classify(op, err)
	}

	result := make([]models.Event, 0, len(items))
	for _, item := range items {
		result = append(result, fromAPI(item))
	}
	return result, nil
}

func (s *HTTPStore) token(ctx context.Context, op string) (string, error) {
	token, err := s.tokens.BearerToken(ctx)
	if err != nil {
		s.logger.Debug("No bearer token for event store", "op", op, "error", err)
		return "", storeError(op, KindPermission, err)
	}
	return token, nil
}

// classify converts a backend error into a StoreError
func classify(op string, err error) error {
	if se, ok := clientapi.AsStatusError(err); ok {
		switch se.StatusCode {
		case http.StatusNotFound:
			return storeError(op, KindNotFound, err)
		case http.StatusUnauthorized, http.StatusForbidden:
			return storeError(op, KindPermission, err)
		default:
			return storeError(op, KindUnknown, err)
		}
	}
	if errors.Is(err, context.Canceled) {
		return storeError(op, KindUnknown, err)
	}
	// транспортные ошибки и таймауты
	return storeError(op, KindNetwork, err)
}

func fromAPI(e api.Event) models.Event {
	return models.Event{
		CreatedAt: e.CreatedAt,
		ID:        e.ID,
		Title:     e.Title,
		Date:      e.Date,
		Time:      e.Time,
		OwnerID:   e.OwnerID,
	}
}
