package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/iudanet/gophcal/internal/models"
	"github.com/iudanet/gophcal/internal/month"
	"github.com/iudanet/gophcal/internal/server/storage"
	"github.com/iudanet/gophcal/internal/validation"
	"github.com/iudanet/gophcal/pkg/api"
)

// EventsHandler обрабатывает запросы к коллекции событий пользователя
// /api/v1/users/{uid}/events
type EventsHandler struct {
	logger       *slog.Logger
	eventStorage storage.EventStorage
	now          func() time.Time
}

// NewEventsHandler создает новый handler для событий
func NewEventsHandler(logger *slog.Logger, eventStorage storage.EventStorage) *EventsHandler {
	return &EventsHandler{
		logger:       logger,
		eventStorage: eventStorage,
		now:          time.Now,
	}
}

// List обрабатывает GET /api/v1/users/{uid}/events?month=YYYY-MM-01 | ?date=YYYY-MM-DD
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, ok := h.authorizeOwner(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	filter := storage.EventFilter{Month: query.Get("month"), Date: query.Get("date")}

	switch {
	case filter.Month != "" && filter.Date != "":
		sendError(w, h.logger, http.StatusBadRequest, api.ErrCodeInvalidArgument, "month and date are mutually exclusive")
		return
	case filter.Month != "":
		if _, err := month.Parse(filter.Month); err != nil {
			sendError(w, h.logger, http.StatusBadRequest, api.ErrCodeInvalidArgument, err.Error())
			return
		}
	case filter.Date != "":
		if err := validation.ValidateDate(filter.Date); err != nil {
			sendError(w, h.logger, http.StatusBadRequest, api.ErrCodeInvalidArgument, err.Error())
			return
		}
	}

	events, err := h.eventStorage.ListEvents(ctx, ownerID, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list events", slog.Any("error", err))
		sendError(w, h.logger, http.StatusInternalServerError, api.ErrCodeInternal, "internal server error")
		return
	}

	resp := api.EventsResponse{Events: make([]api.Event, 0, len(events))}
	for _, e := range events {
		resp.Events = append(resp.Events, toAPIEvent(e))
	}

	h.logger.DebugContext(ctx, "events listed",
		slog.String("user_id", ownerID),
		slog.Int("count", len(resp.Events)))

	sendJSON(w, h.logger, resp, http.StatusOK)
}

// Create обрабатывает POST /api/v1/users/{uid}/events
func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, ok := h.authorizeOwner(w, r)
	if !ok {
		return
	}

	var req api.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode event request", slog.Any("error", err))
		sendError(w, h.logger, http.StatusBadRequest, api.ErrCodeInvalidArgument, "invalid request body")
		return
	}

	draft, err := validation.ValidateEventDraft(models.EventDraft{Title: req.Title, Date: req.Date, Time: req.Time})
	if err != nil {
		sendError(w, h.logger, http.StatusBadRequest, api.ErrCodeInvalidArgument, err.Error())
		return
	}

	event := models.Event{
		CreatedAt: h.now().UTC(),
		ID:        uuid.New().String(),
		Title:     draft.Title,
		Date:      draft.Date,
		Time:      draft.Time,
		OwnerID:   ownerID,
	}

	if err := h.eventStorage.CreateEvent(ctx, &event); err != nil {
		h.logger.ErrorContext(ctx, "failed to create event", slog.Any("error", err))
		sendError(w, h.logger, http.StatusInternalServerError, api.ErrCodeInternal, "internal server error")
		return
	}

	h.logger.InfoContext(ctx, "event created",
		slog.String("user_id", ownerID),
		slog.String("event_id", event.ID))

	sendJSON(w, h.logger, toAPIEvent(event), http.StatusCreated)
}

// Delete обрабатывает DELETE /api/v1/users/{uid}/events/{id}
func (h *EventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, ok := h.authorizeOwner(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if err := validation.ValidateEventID(id); err != nil {
		sendError(w, h.logger, http.StatusBadRequest, api.ErrCodeInvalidArgument, err.Error())
		return
	}

	if err := h.eventStorage.DeleteEvent(ctx, ownerID, id); err != nil {
		if errors.Is(err, storage.ErrEventNotFound) {
			sendError(w, h.logger, http.StatusNotFound, api.ErrCodeNotFound, "event not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete event", slog.Any("error", err))
		sendError(w, h.logger, http.StatusInternalServerError, api.ErrCodeInternal, "internal server error")
		return
	}

	h.logger.InfoContext(ctx, "event deleted",
		slog.String("user_id", ownerID),
		slog.String("event_id", id))

	w.WriteHeader(http.StatusNoContent)
}

// authorizeOwner сверяет {uid} из пути с пользователем из токена.
// Чужие коллекции недоступны.
func (h *EventsHandler) authorizeOwner(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		h.logger.ErrorContext(r.Context(), "user_id not found in context")
		sendError(w, h.logger, http.StatusUnauthorized, api.ErrCodeInvalidToken, "unauthorized")
		return "", false
	}

	if uid := chi.URLParam(r, "uid"); uid != userID {
		h.logger.WarnContext(r.Context(), "access to foreign event collection",
			slog.String("user_id", userID),
			slog.String("uid", uid))
		sendError(w, h.logger, http.StatusForbidden, api.ErrCodePermissionDenied, "permission denied")
		return "", false
	}
	return userID, true
}

func toAPIEvent(e models.Event) api.Event {
	return api.Event{
		CreatedAt: e.CreatedAt,
		ID:        e.ID,
		Title:     e.Title,
		Date:      e.Date,
		Time:      e.Time,
		OwnerID:   e.OwnerID,
	}
}
