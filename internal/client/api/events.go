package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/iudanet/gophcal/pkg/api"
)

func eventsPath(uid string) string {
	return "/api/v1/users/" + url.PathEscape(uid) + "/events"
}

// ListEvents возвращает события пользователя.
// query может содержать month=YYYY-MM-01 или date=YYYY-MM-DD; пустой query возвращает все события.
func (c *Client) ListEvents(ctx context.Context, token, uid string, query url.Values) ([]api.Event, error) {
	path := eventsPath(uid)
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var resp api.EventsResponse
	if err := c.do(ctx, call{method: http.MethodGet, path: path, token: token, out: &resp}); err != nil {
		return nil, fmt.Errorf("list events request failed: %w", err)
	}
	return resp.Events, nil
}

// CreateEvent создает событие и возвращает его с серверным id
func (c *Client) CreateEvent(ctx context.Context, token, uid string, req api.CreateEventRequest) (*api.Event, error) {
	var resp api.Event
	if err := c.do(ctx, call{method: http.MethodPost, path: eventsPath(uid), token: token, in: req, out: &resp}); err != nil {
		return nil, fmt.Errorf("create event request failed: %w", err)
	}
	return &resp, nil
}

// DeleteEvent удаляет событие по id
func (c *Client) DeleteEvent(ctx context.Context, token, uid, id string) error {
	path := eventsPath(uid) + "/" + url.PathEscape(id)
	if err := c.do(ctx, call{method: http.MethodDelete, path: path, token: token}); err != nil {
		return fmt.Errorf("delete event request failed: %w", err)
	}
	return nil
}
