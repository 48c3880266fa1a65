package events

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/iudanet/gophcal/internal/models"
	"github.com/iudanet/gophcal/internal/month"
	"github.com/iudanet/gophcal/internal/validation"
)

// Op remote part of an optimistic write
type Op struct {
	ID    string // temporary id for adds, event id for deletes
	Month month.Key

	done  chan struct{}
	event models.Event
	err   error
}

func newOp(id string, key month.Key) *Op {
	return &Op{ID: id, Month: key, done: make(chan struct{})}
}

func (o *Op) finish(event models.Event, err error) {
	o.event, o.err = event, err
	close(o.done)
}

// Done is closed when the remote call has finished and the cache is updated
func (o *Op) Done() <-chan struct{} {
	return o.done
}

// Wait blocks until the operation finishes. For adds the committed event
// carries the server id.
func (o *Op) Wait(ctx context.Context) (models.Event, error) {
	select {
	case <-o.done:
		return o.event, o.err
	case <-ctx.Done():
		return models.Event{}, ctx.Err()
	}
}

// AddEvent validates the draft, inserts it under a temporary id and returns
// at once. The create runs in the background: success swaps the temporary id
// for the server id, failure removes the entry. Invalid drafts never reach
// the store.
func (c *Cache) AddEvent(ctx context.Context, draft models.EventDraft) (*Op, error) {
	draft, err := validation.ValidateEventDraft(draft)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key, err := month.Of(draft.Date)
	if err != nil {
		return nil, err
	}

	// владелец уточняется заранее, чтобы не смешать события разных пользователей;
	// без сессии вставка откатится при сохранении
	if owner, err := c.owner.OwnerID(ctx); err == nil {
		c.scope(owner)
	}

	tempID := models.TempIDPrefix + uuid.NewString()
	if err := c.life.transition(tempID, StatePendingCreate); err != nil {
		return nil, err
	}

	temp := models.Event{
		CreatedAt: c.now(),
		ID:        tempID,
		Title:     draft.Title,
		Date:      draft.Date,
		Time:      draft.Time,
	}

	// 1. Оптимистичная вставка до сетевого запроса
	c.mu.Lock()
	_, cached := c.months[key]
	c.pending[tempID] = temp
	c.months[key] = append(c.months[key], temp)
	c.versions[key]++
	c.mu.Unlock()

	c.emit(Change{Kind: EventAdded, Month: key, Event: temp})

	// 2. Месяц еще не загружался: догружаем его, не теряя вставку
	if !cached {
		c.fill(key)
	}

	// 3. Сохранение на сервере
	op := newOp(tempID, key)
	c.wg.Add(1)
	go c.commitAdd(op, draft, temp)

	return op, nil
}

// DeleteEvent removes a committed event from the cache at once and deletes
// it remotely in the background. If the remote delete fails the owning month
// is fetched again, exactly once, and the error is reported through the Op.
func (c *Cache) DeleteEvent(ctx context.Context, id string) (*Op, error) {
	if err := validation.ValidateEventID(id); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if owner, err := c.owner.OwnerID(ctx); err == nil {
		c.scope(owner)
	}

	unlock := c.life.lock(id)

	c.mu.Lock()
	key, event, ok := c.findLocked(id)
	if !ok {
		c.mu.Unlock()
		unlock()
		if c.life.pendingDelete(id) {
			return nil, fmt.Errorf("%w: %s is already being deleted", ErrInvalidTransition, id)
		}
		return nil, fmt.Errorf("%w: %s", ErrEventNotCached, id)
	}
	if err := c.life.transition(id, StatePendingDelete); err != nil {
		c.mu.Unlock()
		unlock()
		return nil, err
	}
	c.months[key] = removeID(c.months[key], id)
	c.versions[key]++
	c.mu.Unlock()
	unlock()

	c.emit(Change{Kind: EventRemoved, Month: key, Event: event})

	op := newOp(id, key)
	c.wg.Add(1)
	go c.commitDelete(op, event)

	return op, nil
}

func (c *Cache) commitAdd(op *Op, draft models.EventDraft, temp models.Event) {
	defer c.wg.Done()

	ctx, cancel := context.WithTimeout(c.ctx, c.cfg.WriteTimeout)
	defer cancel()

	var saved models.Event
	owner, err := c.ownerID(ctx, "add")
	if err == nil {
		saved, err = c.store.AddEvent(ctx, owner, draft)
	}

	unlock := c.life.lock(temp.ID)
	defer unlock()

	// после Reset кэш принадлежит уже другому владельцу
	if c.life.state(temp.ID) != StatePendingCreate {
		c.logger.Debug("Create finished after cache reset", "temp_id", temp.ID, "error", err)
		op.finish(saved, err)
		return
	}

	if err != nil {
		c.rollbackAdd(op.Month, temp, err)
		op.finish(models.Event{}, err)
		return
	}

	c.commit(op.Month, temp, saved)
	op.finish(saved, nil)
}

func (c *Cache) commit(key month.Key, temp, saved models.Event) {
	if err := c.life.transition(temp.ID, StateCommitted); err != nil {
		c.logger.Error("Unexpected lifecycle state on commit", "temp_id", temp.ID, "error", err)
	}
	// временный id больше не нужен
	c.life.settle(temp.ID)
	c.life.settle(saved.ID)

	c.mu.Lock()
	delete(c.pending, temp.ID)
	if events, ok := c.months[key]; ok {
		// фоновая загрузка могла уже принести серверную запись
		events = removeID(events, saved.ID)
		if i := indexOf(events, temp.ID); i >= 0 {
			events[i] = saved
		} else {
			events = append(events, saved)
		}
		c.months[key] = events
		c.versions[key]++
	}
	c.mu.Unlock()

	c.logger.Debug("Event committed", "temp_id", temp.ID, "id", saved.ID)
	c.emit(Change{Kind: EventCommitted, Month: key, Event: saved, PrevID: temp.ID})
}

func (c *Cache) rollbackAdd(key month.Key, temp models.Event, cause error) {
	if err := c.life.transition(temp.ID, StateRolledBack); err != nil {
		c.logger.Error("Unexpected lifecycle state on rollback", "temp_id", temp.ID, "error", err)
	}

	c.mu.Lock()
	delete(c.pending, temp.ID)
	if events, ok := c.months[key]; ok {
		c.months[key] = removeID(events, temp.ID)
		c.versions[key]++
	}
	c.mu.Unlock()

	c.metrics.RecordRollback("add")
	c.logger.Warn("Event create failed, optimistic entry removed", "temp_id", temp.ID, "error", cause)
	c.emit(Change{Kind: EventRolledBack, Month: key, Event: temp, Err: cause})
}

func (c *Cache) commitDelete(op *Op, event models.Event) {
	defer c.wg.Done()

	ctx, cancel := context.WithTimeout(c.ctx, c.cfg.WriteTimeout)
	defer cancel()

	owner, err := c.ownerID(ctx, "delete")
	if err == nil {
		err = c.store.DeleteEvent(ctx, owner, event.ID)
	}

	unlock := c.life.lock(event.ID)
	defer unlock()

	if !c.life.pendingDelete(event.ID) {
		c.logger.Debug("Delete finished after cache reset", "id", event.ID, "error", err)
		op.finish(event, err)
		return
	}

	if err == nil {
		if terr := c.life.transition(event.ID, StateDeleted); terr != nil {
			c.logger.Error("Unexpected lifecycle state on delete", "id", event.ID, "error", terr)
		}
		c.emit(Change{Kind: EventDeleted, Month: op.Month, Event: event})
		op.finish(event, nil)
		return
	}

	c.metrics.RecordRollback("delete")
	c.logger.Warn("Event delete failed, resyncing month", "id", event.ID, "month", op.Month.String(), "error", err)
	c.resync(op.Month, event, err)
	op.finish(event, err)
}

// resync is the compensation after a failed delete: the month is fetched
// once more and the server decides whether the event is still there
func (c *Cache) resync(key month.Key, event models.Event, cause error) {
	ctx, cancel := context.WithTimeout(c.ctx, c.cfg.BackgroundTimeout)
	defer cancel()

	var fetched []models.Event
	owner, err := c.ownerID(ctx, "get_month")
	if err == nil {
		fetched, err = c.store.GetEventsByMonth(ctx, owner, key)
	}

	next := StateDeleted
	if err != nil || indexOf(fetched, event.ID) >= 0 {
		next = StateRestored
	}
	if terr := c.life.transition(event.ID, next); terr != nil {
		c.logger.Error("Unexpected lifecycle state on resync", "id", event.ID, "error", terr)
	}
	if next == StateRestored {
		// событие снова обычная серверная запись
		c.life.settle(event.ID)
	}

	c.mu.Lock()
	if err != nil {
		// состояние месяца неизвестно, следующая загрузка получит его заново
		delete(c.months, key)
		c.versions[key]++
	} else {
		c.populateLocked(key, fetched)
	}
	c.mu.Unlock()

	if err != nil {
		c.logger.Warn("Resync after failed delete failed, month dropped", "month", key.String(), "error", err)
	}
	c.emit(Change{Kind: MonthResynced, Month: key, Event: event, Err: cause})
}

// fill loads a month whose key was created by an optimistic add, merging the
// fetched list with the local entries
func (c *Cache) fill(key month.Key) {
	c.background(func(ctx context.Context, epoch uint64) {
		owner, fetched, err := c.fetchCurrent(ctx, key)
		if err != nil {
			c.logger.Warn("Failed to load month after optimistic add", "month", key.String(), "error", err)
			return
		}

		c.mu.Lock()
		if !c.acceptLocked(epoch, owner) {
			c.mu.Unlock()
			return
		}
		current, ok := c.months[key]
		if !ok {
			c.mu.Unlock()
			return
		}
		merged := c.overlayLocked(key, fetched)
		for _, e := range current {
			if models.IsTempID(e.ID) || indexOf(merged, e.ID) >= 0 {
				continue
			}
			if c.life.pendingDelete(e.ID) {
				continue
			}
			merged = append(merged, e)
		}
		c.months[key] = merged
		c.versions[key]++
		c.mu.Unlock()

		c.emit(Change{Kind: MonthReplaced, Month: key})
	})
}

func (c *Cache) findLocked(id string) (month.Key, models.Event, bool) {
	for key, events := range c.months {
		if i := indexOf(events, id); i >= 0 {
			return key, events[i], true
		}
	}
	return "", models.Event{}, false
}

func indexOf(events []models.Event, id string) int {
	return slices.IndexFunc(events, func(e models.Event) bool { return e.ID == id })
}

func removeID(events []models.Event, id string) []models.Event {
	return slices.DeleteFunc(events, func(e models.Event) bool { return e.ID == id })
}
