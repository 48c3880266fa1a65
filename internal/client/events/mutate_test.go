package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophcal/internal/metrics"
	"github.com/iudanet/gophcal/internal/models"
	"github.com/iudanet/gophcal/internal/month"
	"github.com/iudanet/gophcal/internal/validation"
)

func waitCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func loadedCache(t *testing.T, fake *fakeStore) (*Cache, *RemoteStoreMock, *recorder) {
	t.Helper()
	store := fake.mock()
	c := newTestCache(t, store)
	_, err := c.LoadMonth(context.Background(), june)
	require.NoError(t, err)

	rec := &recorder{}
	c.Observe(rec.observe)
	return c, store, rec
}

func TestCache_AddEvent_Optimistic(t *testing.T) {
	ctx := waitCtx(t)
	fake := newFakeStore(event("e1", "2025-06-02", "09:00", "Standup"))
	gate := make(chan struct{})
	fake.addGate = gate
	c, store, rec := loadedCache(t, fake)

	op, err := c.AddEvent(ctx, models.EventDraft{Title: "  Lunch ", Date: "2025-06-10", Time: "12:30"})
	require.NoError(t, err)

	// 1. Событие видно до ответа сервера
	assert.True(t, models.IsTempID(op.ID))
	assert.Equal(t, june, op.Month)
	assert.Equal(t, StatePendingCreate, c.State(op.ID))

	cached, ok := c.Month(june)
	require.True(t, ok)
	require.Len(t, cached, 2)
	assert.Equal(t, op.ID, cached[1].ID)
	assert.Equal(t, "Lunch", cached[1].Title)
	assert.Equal(t, "12:30", cached[1].Time)

	added, ok := rec.find(EventAdded)
	require.True(t, ok)
	assert.Equal(t, op.ID, added.Event.ID)

	// 2. Сервер подтверждает создание
	close(gate)
	saved, err := op.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, "srv-1", saved.ID)

	cached, _ = c.Month(june)
	assert.Equal(t, []string{"e1", "srv-1"}, ids(cached))
	assert.Equal(t, StateCommitted, c.State(op.ID))

	committed, ok := rec.find(EventCommitted)
	require.True(t, ok)
	assert.Equal(t, op.ID, committed.PrevID)
	assert.Equal(t, "srv-1", committed.Event.ID)

	require.Len(t, store.AddEventCalls(), 1)
	assert.Equal(t, testOwner, store.AddEventCalls()[0].OwnerID)
	assert.Equal(t, "Lunch", store.AddEventCalls()[0].Draft.Title)

	// 3. Повторная загрузка не дублирует событие
	c.Invalidate(june)
	reloaded, err := c.LoadMonth(ctx, june)
	require.NoError(t, err)
	assert.Equal(t, []string{"e1", "srv-1"}, ids(reloaded))
}

func TestCache_AddEvent_RollbackOnFailure(t *testing.T) {
	ctx := waitCtx(t)
	fake := newFakeStore(event("e1", "2025-06-02", "09:00", "Standup"))
	fake.addErr = storeError("add", KindPermission, ErrPermission)

	store := fake.mock()
	reg := prometheus.NewRegistry()
	c := NewCache(store, staticOwner(), metrics.NewCollector(reg), testLogger(), Config{})
	defer c.Close()
	_, err := c.LoadMonth(ctx, june)
	require.NoError(t, err)
	rec := &recorder{}
	c.Observe(rec.observe)

	op, err := c.AddEvent(ctx, models.EventDraft{Title: "Lunch", Date: "2025-06-10", Time: "12:30"})
	require.NoError(t, err)

	_, err = op.Wait(ctx)
	assert.ErrorIs(t, err, ErrPermission)

	cached, _ := c.Month(june)
	assert.Equal(t, []string{"e1"}, ids(cached))
	assert.Equal(t, StateRolledBack, c.State(op.ID))

	rolledBack, ok := rec.find(EventRolledBack)
	require.True(t, ok)
	assert.Equal(t, op.ID, rolledBack.Event.ID)
	assert.ErrorIs(t, rolledBack.Err, ErrPermission)
	assert.Equal(t, 1.0, counterValue(t, reg, "gophcal_cache_rollbacks_total"))
}

func TestCache_AddEvent_Validation(t *testing.T) {
	tests := []struct {
		name  string
		draft models.EventDraft
	}{
		{
			name:  "empty title",
			draft: models.EventDraft{Title: "   ", Date: "2025-06-10"},
		},
		{
			name:  "impossible date",
			draft: models.EventDraft{Title: "Lunch", Date: "2025-02-30"},
		},
		{
			name:  "bad time",
			draft: models.EventDraft{Title: "Lunch", Date: "2025-06-10", Time: "25:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFakeStore(event("e1", "2025-06-02", "09:00", "Standup"))
			c, store, rec := loadedCache(t, fake)

			op, err := c.AddEvent(context.Background(), tt.draft)

			assert.ErrorIs(t, err, validation.ErrValidation)
			assert.Nil(t, op)
			c.Wait()
			assert.Empty(t, store.AddEventCalls())
			assert.Empty(t, rec.kinds())
			cached, _ := c.Month(june)
			assert.Equal(t, []string{"e1"}, ids(cached))
		})
	}
}

func TestCache_AddEvent_DefaultTime(t *testing.T) {
	ctx := waitCtx(t)
	c, store, _ := loadedCache(t, newFakeStore())

	op, err := c.AddEvent(ctx, models.EventDraft{Title: "All day", Date: "2025-06-10"})
	require.NoError(t, err)
	saved, err := op.Wait(ctx)
	require.NoError(t, err)

	assert.Equal(t, "00:00", saved.Time)
	require.Len(t, store.AddEventCalls(), 1)
	assert.Equal(t, "00:00", store.AddEventCalls()[0].Draft.Time)
}

func TestCache_AddEvent_CanceledContext(t *testing.T) {
	c, store, _ := loadedCache(t, newFakeStore())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.AddEvent(ctx, models.EventDraft{Title: "Lunch", Date: "2025-06-10"})

	assert.ErrorIs(t, err, context.Canceled)
	c.Wait()
	assert.Empty(t, store.AddEventCalls())
}

func TestCache_AddEvent_UncachedMonth(t *testing.T) {
	ctx := waitCtx(t)
	july := month.MustParse("2025-07-01")
	fake := newFakeStore(event("e9", "2025-07-01", "09:00", "Already there"))
	c, _, _ := loadedCache(t, fake)

	op, err := c.AddEvent(ctx, models.EventDraft{Title: "Trip", Date: "2025-07-15", Time: "08:00"})
	require.NoError(t, err)
	assert.True(t, c.Cached(july))

	_, err = op.Wait(ctx)
	require.NoError(t, err)
	c.Wait()

	cached, ok := c.Month(july)
	require.True(t, ok)
	assert.Equal(t, []string{"e9", "srv-1"}, ids(cached))
}

func TestCache_DeleteEvent_Success(t *testing.T) {
	ctx := waitCtx(t)
	fake := newFakeStore(
		event("e1", "2025-06-02", "09:00", "Standup"),
		event("e2", "2025-06-10", "12:00", "Lunch"),
	)
	gate := make(chan struct{})
	fake.deleteGate = gate
	c, store, rec := loadedCache(t, fake)

	op, err := c.DeleteEvent(ctx, "e1")
	require.NoError(t, err)

	cached, _ := c.Month(june)
	assert.Equal(t, []string{"e2"}, ids(cached))
	assert.Equal(t, StatePendingDelete, c.State("e1"))

	close(gate)
	_, err = op.Wait(ctx)
	require.NoError(t, err)

	assert.Equal(t, StateDeleted, c.State("e1"))
	require.Len(t, store.DeleteEventCalls(), 1)
	assert.Equal(t, "e1", store.DeleteEventCalls()[0].Id)
	assert.Equal(t, []ChangeKind{EventRemoved, EventDeleted}, rec.kinds())
	assert.Len(t, store.GetEventsByMonthCalls(), 1)
}

func TestCache_DeleteEvent_FailureResyncsOnce(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(s *fakeStore)
		wantIDs     []string
		wantState   State
		wantCached  bool
		wantErrKind error
	}{
		{
			name: "event restored",
			setup: func(s *fakeStore) {
				s.deleteErr = storeError("delete", KindNetwork, ErrNetwork)
			},
			wantIDs:     []string{"e1", "e2"},
			wantState:   StateCommitted,
			wantCached:  true,
			wantErrKind: ErrNetwork,
		},
		{
			name: "event already gone on the server",
			setup: func(s *fakeStore) {
				delete(s.events, "e1")
				s.deleteErr = storeError("delete", KindPermission, ErrPermission)
			},
			wantIDs:     []string{"e2"},
			wantState:   StateDeleted,
			wantCached:  true,
			wantErrKind: ErrPermission,
		},
		{
			name: "resync fails too",
			setup: func(s *fakeStore) {
				s.deleteErr = storeError("delete", KindNetwork, ErrNetwork)
				s.monthErr[june] = storeError("get_month", KindNetwork, ErrNetwork)
			},
			wantState:   StateCommitted,
			wantCached:  false,
			wantErrKind: ErrNetwork,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := waitCtx(t)
			fake := newFakeStore(
				event("e1", "2025-06-02", "09:00", "Standup"),
				event("e2", "2025-06-10", "12:00", "Lunch"),
			)
			c, store, rec := loadedCache(t, fake)
			fake.update(tt.setup)
			fetchesBefore := len(store.GetEventsByMonthCalls())

			op, err := c.DeleteEvent(ctx, "e1")
			require.NoError(t, err)

			_, err = op.Wait(ctx)
			assert.ErrorIs(t, err, tt.wantErrKind)
			c.Wait()

			assert.Len(t, store.GetEventsByMonthCalls(), fetchesBefore+1, "exactly one compensating fetch")
			assert.Equal(t, tt.wantState, c.State("e1"))
			assert.Equal(t, tt.wantCached, c.Cached(june))
			if tt.wantCached {
				cached, _ := c.Month(june)
				assert.Equal(t, tt.wantIDs, ids(cached))
			}

			resynced, ok := rec.find(MonthResynced)
			require.True(t, ok)
			assert.Equal(t, "e1", resynced.Event.ID)
			assert.ErrorIs(t, resynced.Err, tt.wantErrKind)
			assert.NotContains(t, rec.kinds(), EventDeleted)
		})
	}
}

func TestCache_DeleteEvent_Errors(t *testing.T) {
	ctx := waitCtx(t)
	fake := newFakeStore(event("e1", "2025-06-02", "09:00", "Standup"))
	addGate := make(chan struct{})
	deleteGate := make(chan struct{})
	fake.addGate = addGate
	fake.deleteGate = deleteGate
	c, store, _ := loadedCache(t, fake)
	defer close(addGate)
	defer close(deleteGate)

	pending, err := c.AddEvent(ctx, models.EventDraft{Title: "Lunch", Date: "2025-06-10"})
	require.NoError(t, err)
	_, err = c.DeleteEvent(ctx, "e1")
	require.NoError(t, err)

	tests := []struct {
		name    string
		id      string
		wantErr error
	}{
		{name: "empty id", id: " ", wantErr: validation.ErrValidation},
		{name: "not cached", id: "missing", wantErr: ErrEventNotCached},
		{name: "pending create", id: pending.ID, wantErr: ErrInvalidTransition},
		{name: "already being deleted", id: "e1", wantErr: ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := c.DeleteEvent(ctx, tt.id)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, op)
		})
	}

	assert.Equal(t, StatePendingCreate, c.State(pending.ID))
	assert.Len(t, store.DeleteEventCalls(), 1)
}

func TestCache_PendingOperationsSurviveReload(t *testing.T) {
	ctx := waitCtx(t)
	fake := newFakeStore(
		event("e1", "2025-06-02", "09:00", "Standup"),
		event("e2", "2025-06-10", "12:00", "Lunch"),
	)
	addGate := make(chan struct{})
	deleteGate := make(chan struct{})
	fake.addGate = addGate
	fake.deleteGate = deleteGate
	c, _, _ := loadedCache(t, fake)

	add, err := c.AddEvent(ctx, models.EventDraft{Title: "Dinner", Date: "2025-06-10", Time: "19:00"})
	require.NoError(t, err)
	del, err := c.DeleteEvent(ctx, "e1")
	require.NoError(t, err)

	c.Invalidate(june)
	reloaded, err := c.LoadMonth(ctx, june)
	require.NoError(t, err)

	// удаляемое событие скрыто, создаваемое видно
	assert.Equal(t, []string{"e2", add.ID}, ids(reloaded))

	close(addGate)
	close(deleteGate)
	_, err = add.Wait(ctx)
	require.NoError(t, err)
	_, err = del.Wait(ctx)
	require.NoError(t, err)

	cached, _ := c.Month(june)
	assert.Equal(t, []string{"e2", "srv-1"}, ids(cached))
}

func TestCache_StaleRevalidationDropped(t *testing.T) {
	ctx := waitCtx(t)
	fake := newFakeStore(event("e1", "2025-06-02", "09:00", "Standup"))
	store := fake.mock()
	reg := prometheus.NewRegistry()
	c := NewCache(store, staticOwner(), metrics.NewCollector(reg), testLogger(), Config{})
	defer c.Close()

	_, err := c.LoadMonth(ctx, june)
	require.NoError(t, err)

	gate := make(chan struct{})
	fake.update(func(s *fakeStore) { s.monthGate = gate })

	// ревалидация зависает в сети
	_, err = c.LoadMonth(ctx, june)
	require.NoError(t, err)

	// локальная запись меняет месяц, пока запрос в полете
	op, err := c.AddEvent(ctx, models.EventDraft{Title: "Lunch", Date: "2025-06-10", Time: "12:30"})
	require.NoError(t, err)
	_, err = op.Wait(ctx)
	require.NoError(t, err)

	fake.put(event("x", "2025-06-20", "10:00", "Seen only by the stale fetch"))
	close(gate)
	c.Wait()

	cached, _ := c.Month(june)
	assert.Equal(t, []string{"e1", "srv-1"}, ids(cached))
	assert.Equal(t, 1.0, counterValue(t, reg, "gophcal_cache_revalidations_total"))
}

func TestCache_ObserveCancel(t *testing.T) {
	ctx := waitCtx(t)
	c, _, rec := loadedCache(t, newFakeStore())

	other := &recorder{}
	cancel := c.Observe(other.observe)
	cancel()

	op, err := c.AddEvent(ctx, models.EventDraft{Title: "Lunch", Date: "2025-06-10"})
	require.NoError(t, err)
	_, err = op.Wait(ctx)
	require.NoError(t, err)

	assert.Equal(t, []ChangeKind{EventAdded, EventCommitted}, rec.kinds())
	assert.Empty(t, other.kinds())
}

func TestOp_WaitCanceled(t *testing.T) {
	op := newOp("tmp_1", june)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := op.Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	op.finish(models.Event{ID: "srv-1"}, errors.New("boom"))
	select {
	case <-op.Done():
	default:
		t.Fatal("op must be done")
	}
}
