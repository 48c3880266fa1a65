package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophcal/internal/models"
	"github.com/iudanet/gophcal/internal/server/storage"
)

func seedEvents(t *testing.T, ctx context.Context, s *Storage, ownerID string, events ...models.Event) {
	t.Helper()
	for _, e := range events {
		e.OwnerID = ownerID
		e.CreatedAt = time.Now()
		require.NoError(t, s.CreateEvent(ctx, &e))
	}
}

func eventIDs(events []models.Event) []string {
	ids := make([]string, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	return ids
}

func TestEventStorage_ListEvents(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	ownerID := createTestUser(t, ctx, s)
	otherID := createTestUser(t, ctx, s)

	seedEvents(t, ctx, s, ownerID,
		models.Event{ID: "dinner", Title: "Dinner", Date: "2025-06-10", Time: "19:00"},
		models.Event{ID: "lunch", Title: "Lunch", Date: "2025-06-10", Time: "12:30"},
		models.Event{ID: "standup", Title: "Standup", Date: "2025-06-02", Time: "09:00"},
		models.Event{ID: "trip", Title: "Trip", Date: "2025-07-01", Time: "00:00"},
	)
	seedEvents(t, ctx, s, otherID,
		models.Event{ID: "foreign", Title: "Not mine", Date: "2025-06-10", Time: "10:00"},
	)

	tests := []struct {
		name   string
		filter storage.EventFilter
		want   []string
	}{
		{
			name:   "month",
			filter: storage.EventFilter{Month: "2025-06-01"},
			want:   []string{"standup", "lunch", "dinner"},
		},
		{
			name:   "date",
			filter: storage.EventFilter{Date: "2025-06-10"},
			want:   []string{"lunch", "dinner"},
		},
		{
			name: "all",
			want: []string{"standup", "lunch", "dinner", "trip"},
		},
		{
			name:   "empty month",
			filter: storage.EventFilter{Month: "2025-01-01"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := s.ListEvents(ctx, ownerID, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, eventIDs(events))
			for _, e := range events {
				assert.Equal(t, ownerID, e.OwnerID)
			}
		})
	}
}

func TestEventStorage_CreateEvent_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	ownerID := createTestUser(t, ctx, s)
	created := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)
	event := models.Event{ID: "e1", Title: "Standup", Date: "2025-06-02", Time: "09:00", OwnerID: ownerID, CreatedAt: created}
	require.NoError(t, s.CreateEvent(ctx, &event))

	events, err := s.ListEvents(ctx, ownerID, storage.EventFilter{Month: "2025-06-01"})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, event.Equal(events[0]), "stored %+v, read %+v", event, events[0])
}

func TestEventStorage_CreateEvent_InvalidDate(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	ownerID := createTestUser(t, ctx, s)
	err := s.CreateEvent(ctx, &models.Event{ID: "e1", Title: "x", Date: "june", Time: "09:00", OwnerID: ownerID})
	assert.Error(t, err)
}

func TestEventStorage_DeleteEvent(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	ownerID := createTestUser(t, ctx, s)
	otherID := createTestUser(t, ctx, s)
	seedEvents(t, ctx, s, ownerID, models.Event{ID: "e1", Title: "Standup", Date: "2025-06-02", Time: "09:00"})

	// чужое событие удалить нельзя
	assert.ErrorIs(t, s.DeleteEvent(ctx, otherID, "e1"), storage.ErrEventNotFound)

	require.NoError(t, s.DeleteEvent(ctx, ownerID, "e1"))
	assert.ErrorIs(t, s.DeleteEvent(ctx, ownerID, "e1"), storage.ErrEventNotFound)

	events, err := s.ListEvents(ctx, ownerID, storage.EventFilter{})
	require.NoError(t, err)
	assert.Empty(t, events)
}
