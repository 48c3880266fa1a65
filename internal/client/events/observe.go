package events

import (
	"github.com/iudanet/gophcal/internal/models"
	"github.com/iudanet/gophcal/internal/month"
)

// ChangeKind what happened to the cache
type ChangeKind int

const (
	// MonthReplaced a fetch stored a new list for the month
	MonthReplaced ChangeKind = iota + 1
	// EventAdded optimistic insert of a temporary event
	EventAdded
	// EventCommitted the temporary event got its server id (PrevID)
	EventCommitted
	// EventRolledBack the create failed and the temporary event was removed
	EventRolledBack
	// EventRemoved optimistic removal before the remote delete
	EventRemoved
	// EventDeleted the remote delete succeeded
	EventDeleted
	// MonthResynced the month was fetched again after a failed delete
	MonthResynced
)

func (k ChangeKind) String() string {
	switch k {
	case MonthReplaced:
		return "month-replaced"
	case EventAdded:
		return "event-added"
	case EventCommitted:
		return "event-committed"
	case EventRolledBack:
		return "event-rolled-back"
	case EventRemoved:
		return "event-removed"
	case EventDeleted:
		return "event-deleted"
	case MonthResynced:
		return "month-resynced"
	default:
		return "unknown"
	}
}

// Change notification sent to observers
type Change struct {
	Err    error // failure behind a rollback or resync
	Event  models.Event
	Month  month.Key
	PrevID string
	Kind   ChangeKind
}

// Observe registers fn for cache changes. fn runs on the goroutine that made
// the change and must not block. The returned function unregisters it.
func (c *Cache) Observe(fn func(Change)) (cancel func()) {
	c.mu.Lock()
	id := c.nextObs
	c.nextObs++
	c.observers[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.observers, id)
		c.mu.Unlock()
	}
}

func (c *Cache) emit(change Change) {
	c.mu.Lock()
	observers := make([]func(Change), 0, len(c.observers))
	for _, fn := range c.observers {
		observers = append(observers, fn)
	}
	c.mu.Unlock()

	for _, fn := range observers {
		fn(change)
	}
}
