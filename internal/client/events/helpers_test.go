package events

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/iudanet/gophcal/internal/models"
	"github.com/iudanet/gophcal/internal/month"
)

const testOwner = "uid-1"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func staticOwner() *OwnerSourceMock {
	return &OwnerSourceMock{
		OwnerIDFunc: func(ctx context.Context) (string, error) {
			return testOwner, nil
		},
	}
}

func newTestCache(t *testing.T, store RemoteStore) *Cache {
	t.Helper()
	c := NewCache(store, staticOwner(), nil, testLogger(), Config{BackgroundTimeout: time.Second, WriteTimeout: time.Second})
	t.Cleanup(c.Close)
	return c
}

func event(id, date, tm, title string) models.Event {
	return models.Event{
		CreatedAt: time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC),
		ID:        id,
		Title:     title,
		Date:      date,
		Time:      tm,
		OwnerID:   testOwner,
	}
}

// fakeStore in-memory RemoteStore. Month lists are served from the events map;
// hooks let tests block or fail individual calls.
type fakeStore struct {
	mu     sync.Mutex
	events map[string]models.Event
	nextID int

	addGate    chan struct{}
	deleteGate chan struct{}
	monthGate  chan struct{}
	addErr     error
	deleteErr  error
	monthErr   map[month.Key]error
}

func newFakeStore(events ...models.Event) *fakeStore {
	s := &fakeStore{events: make(map[string]models.Event), monthErr: make(map[month.Key]error)}
	for _, e := range events {
		s.events[e.ID] = e
	}
	return s
}

// mock wraps the fake into a RemoteStoreMock to record calls
func (s *fakeStore) mock() *RemoteStoreMock {
	return &RemoteStoreMock{
		AddEventFunc:         s.AddEvent,
		GetEventsByMonthFunc: s.GetEventsByMonth,
		GetEventsByDateFunc:  s.GetEventsByDate,
		GetAllEventsFunc:     s.GetAllEvents,
		DeleteEventFunc:      s.DeleteEvent,
	}
}

func (s *fakeStore) update(fn func(s *fakeStore)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s)
}

func (s *fakeStore) put(e models.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[e.ID] = e
}

// wait blocks on gate when it is set
func wait(ctx context.Context, gate chan struct{}) error {
	if gate == nil {
		return nil
	}
	select {
	case <-gate:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *fakeStore) gates() (add, del, mon chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addGate, s.deleteGate, s.monthGate
}

func (s *fakeStore) AddEvent(ctx context.Context, ownerID string, draft models.EventDraft) (models.Event, error) {
	gate, _, _ := s.gates()
	if err := wait(ctx, gate); err != nil {
		return models.Event{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.addErr != nil {
		return models.Event{}, s.addErr
	}
	s.nextID++
	e := models.Event{
		CreatedAt: time.Date(2025, 6, 1, 0, 0, s.nextID, 0, time.UTC),
		ID:        fmt.Sprintf("srv-%d", s.nextID),
		Title:     draft.Title,
		Date:      draft.Date,
		Time:      draft.Time,
		OwnerID:   ownerID,
	}
	s.events[e.ID] = e
	return e, nil
}

func (s *fakeStore) GetEventsByMonth(ctx context.Context, ownerID string, key month.Key) ([]models.Event, error) {
	_, _, gate := s.gates()
	if err := wait(ctx, gate); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.monthErr[key]; err != nil {
		return nil, err
	}
	var result []models.Event
	for _, e := range s.events {
		if key.Contains(e.Date) {
			result = append(result, e)
		}
	}
	return result, nil
}

func (s *fakeStore) GetEventsByDate(ctx context.Context, ownerID, date string) ([]models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []models.Event
	for _, e := range s.events {
		if e.Date == date {
			result = append(result, e)
		}
	}
	return result, nil
}

func (s *fakeStore) GetAllEvents(ctx context.Context, ownerID string) ([]models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]models.Event, 0, len(s.events))
	for _, e := range s.events {
		result = append(result, e)
	}
	return result, nil
}

func (s *fakeStore) DeleteEvent(ctx context.Context, ownerID, id string) error {
	_, gate, _ := s.gates()
	if err := wait(ctx, gate); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deleteErr != nil {
		return s.deleteErr
	}
	if _, ok := s.events[id]; !ok {
		return storeError("delete", KindNotFound, ErrNotFound)
	}
	delete(s.events, id)
	return nil
}

// recorder collects cache changes
type recorder struct {
	mu      sync.Mutex
	changes []Change
}

func (r *recorder) observe(c Change) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, c)
}

func (r *recorder) kinds() []ChangeKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds := make([]ChangeKind, 0, len(r.changes))
	for _, c := range r.changes {
		kinds = append(kinds, c.Kind)
	}
	return kinds
}

func (r *recorder) find(kind ChangeKind) (Change, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.changes {
		if c.Kind == kind {
			return c, true
		}
	}
	return Change{}, false
}

func ids(events []models.Event) []string {
	result := make([]string, 0, len(events))
	for _, e := range events {
		result = append(result, e.ID)
	}
	return result
}
