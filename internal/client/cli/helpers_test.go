package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/iudanet/gophcal/internal/client/events"
	"github.com/iudanet/gophcal/internal/client/iocli"
	"github.com/iudanet/gophcal/internal/metrics"
	"github.com/iudanet/gophcal/internal/models"
	"github.com/iudanet/gophcal/internal/month"
)

const testOwner = "user-1"

// fixedNow 10 марта 2025
var fixedNow = time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// syncBuffer вывод, в который пишут колбэки из разных горутин
type syncBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// newTestIO отвечает на запросы ввода по очереди из inputs
func newTestIO(inputs ...string) (*iocli.IOMock, *syncBuffer) {
	out := &syncBuffer{}
	var mu sync.Mutex
	next := func(prompt string) (string, error) {
		mu.Lock()
		defer mu.Unlock()
		_, _ = fmt.Fprint(out, prompt)
		if len(inputs) == 0 {
			return "", iocli.ErrNoInput
		}
		v := inputs[0]
		inputs = inputs[1:]
		return v, nil
	}

	return &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			_, _ = fmt.Fprintln(out, a...)
		},
		PrintfFunc: func(format string, a ...any) {
			_, _ = fmt.Fprintf(out, format, a...)
		},
		ReadInputFunc:    next,
		ReadPasswordFunc: next,
		WriteFunc:        out.Write,
	}, out
}

// memoryStore RemoteStoreMock поверх списка событий
type memoryStore struct {
	mu     sync.Mutex
	events []models.Event
	nextID int

	addErr    error
	deleteErr error
}

func newMemoryStore(events ...models.Event) *memoryStore {
	return &memoryStore{events: events}
}

func (s *memoryStore) filter(keep func(models.Event) bool) []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []models.Event
	for _, e := range s.events {
		if keep(e) {
			result = append(result, e)
		}
	}
	return result
}

func (s *memoryStore) mock() *events.RemoteStoreMock {
	return &events.RemoteStoreMock{
		AddEventFunc: func(ctx context.Context, ownerID string, draft models.EventDraft) (models.Event, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.addErr != nil {
				return models.Event{}, s.addErr
			}
			s.nextID++
			e := models.Event{
				ID:        fmt.Sprintf("srv-%d", s.nextID),
				Title:     draft.Title,
				Date:      draft.Date,
				Time:      draft.Time,
				OwnerID:   ownerID,
				CreatedAt: fixedNow,
			}
			s.events = append(s.events, e)
			return e, nil
		},
		GetEventsByMonthFunc: func(ctx context.Context, ownerID string, key month.Key) ([]models.Event, error) {
			return s.filter(func(e models.Event) bool { return key.Contains(e.Date) }), nil
		},
		GetEventsByDateFunc: func(ctx context.Context, ownerID string, date string) ([]models.Event, error) {
			return s.filter(func(e models.Event) bool { return e.Date == date }), nil
		},
		GetAllEventsFunc: func(ctx context.Context, ownerID string) ([]models.Event, error) {
			return s.filter(func(models.Event) bool { return true }), nil
		},
		DeleteEventFunc: func(ctx context.Context, ownerID string, id string) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.deleteErr != nil {
				return s.deleteErr
			}
			for i, e := range s.events {
				if e.ID == id {
					s.events = append(s.events[:i], s.events[i+1:]...)
					return nil
				}
			}
			return errors.New("event not found")
		},
	}
}

func newTestCalendar(t *testing.T, store events.RemoteStore) *events.Cache {
	t.Helper()
	owner := &events.OwnerSourceMock{
		OwnerIDFunc: func(ctx context.Context) (string, error) {
			return testOwner, nil
		},
	}
	cache := events.NewCache(store, owner, metrics.Nop{}, setupTestLogger(), events.Config{
		BackgroundTimeout: time.Second,
		WriteTimeout:      time.Second,
	})
	t.Cleanup(cache.Close)
	return cache
}

// newTestCli Cli с фиксированным временем
func newTestCli(io iocli.IO, session Session, calendar Calendar) *Cli {
	c := New(io, session, calendar, setupTestLogger(), Options{PreloadRadius: 1, WatchInterval: 20 * time.Millisecond})
	c.now = func() time.Time { return fixedNow }
	return c
}

func event(id, date, tm, title string) models.Event {
	return models.Event{ID: id, Date: date, Time: tm, Title: title, OwnerID: testOwner, CreatedAt: fixedNow}
}

