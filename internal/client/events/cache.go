package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/iudanet/gophcal/internal/metrics"
	"github.com/iudanet/gophcal/internal/models"
	"github.com/iudanet/gophcal/internal/month"
	"github.com/iudanet/gophcal/internal/validation"
)

const (
	// DefaultBackgroundTimeout bounds every background fetch
	DefaultBackgroundTimeout = 15 * time.Second
	// DefaultWriteTimeout bounds the remote part of AddEvent and DeleteEvent
	DefaultWriteTimeout = 30 * time.Second
	// DefaultPreloadRadius months preloaded on each side of the displayed one
	DefaultPreloadRadius = 2
)

// ErrEventNotCached DeleteEvent got an id that is not in any cached month
var ErrEventNotCached = errors.New("event is not in the cache")

// Config cache settings
type Config struct {
	BackgroundTimeout time.Duration
	WriteTimeout      time.Duration
	PreloadRadius     int
}

func (c Config) withDefaults() Config {
	if c.BackgroundTimeout <= 0 {
		c.BackgroundTimeout = DefaultBackgroundTimeout
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = DefaultWriteTimeout
	}
	if c.PreloadRadius <= 0 {
		c.PreloadRadius = DefaultPreloadRadius
	}
	return c
}

// Cache month-indexed event cache with optimistic writes.
//
// A month key is present only after a fetch of that month succeeded or an
// optimistic add targeted it (which also issues the fetch). Cached months are
// revalidated in the background on every load; the fresh list replaces the
// cached one when they differ.
//
// The cache holds the events of one owner. When OwnerSource reports another
// owner everything cached is dropped first.
type Cache struct {
	store   RemoteStore
	owner   OwnerSource
	logger  *slog.Logger
	metrics metrics.CacheRecorder
	cfg     Config
	now     func() time.Time

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	flight singleflight.Group
	life   *lifecycle

	mu         sync.Mutex
	scopeOwner string

	// epoch растет при каждом сбросе; результаты прошлых эпох отбрасываются
	epoch       uint64
	scopeCtx    context.Context
	scopeCancel context.CancelFunc
	months      map[month.Key][]models.Event
	versions    map[month.Key]uint64 // bumped on every local change of the month
	pending     map[string]models.Event
	active      month.Key
	date        string
	observers   map[int]func(Change)
	nextObs     int
}

// NewCache creates the cache. recorder may be nil.
func NewCache(store RemoteStore, owner OwnerSource, recorder metrics.CacheRecorder, logger *slog.Logger, cfg Config) *Cache {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	scopeCtx, scopeCancel := context.WithCancel(ctx)
	return &Cache{
		store:       store,
		owner:       owner,
		logger:      logger,
		metrics:     recorder,
		cfg:         cfg.withDefaults(),
		now:         time.Now,
		ctx:         ctx,
		cancel:      cancel,
		scopeCtx:    scopeCtx,
		scopeCancel: scopeCancel,
		life:        newLifecycle(),
		months:      make(map[month.Key][]models.Event),
		versions:    make(map[month.Key]uint64),
		pending:     make(map[string]models.Event),
		observers:   make(map[int]func(Change)),
	}
}

// LoadMonth returns the events of the month and makes it the displayed one.
// A cached month is returned at once and revalidated in the background. An
// absent month is fetched synchronously; on error nothing is cached.
func (c *Cache) LoadMonth(ctx context.Context, key month.Key) ([]models.Event, error) {
	if !key.Valid() {
		return nil, fmt.Errorf("%w: %q", month.ErrInvalidKey, key)
	}

	owner, err := c.ownerID(ctx, "get_month")
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.scopeLocked(owner)
	epoch := c.epoch
	c.selectMonthLocked(key)
	cached, ok := c.months[key]
	cached = slices.Clone(cached)
	c.mu.Unlock()

	if ok {
		c.metrics.RecordCacheHit()
		c.revalidate(key)
		return sorted(cached), nil
	}

	c.metrics.RecordCacheMiss()

	fetched, err := c.fetchMonth(ctx, owner, key)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.epoch != epoch {
		// кэш сброшен во время загрузки: отдаем список, но не кэшируем
		c.mu.Unlock()
		return sorted(fetched), nil
	}
	merged := c.populateLocked(key, fetched)
	c.mu.Unlock()

	return sorted(merged), nil
}

// PreloadAdjacentMonths fetches in the background the radius months on each
// side of center, skipping center and cached months. radius <= 0 uses the
// configured default. Failures are logged only.
func (c *Cache) PreloadAdjacentMonths(center month.Key, radius int) {
	if radius <= 0 {
		radius = c.cfg.PreloadRadius
	}

	for _, key := range center.Adjacent(radius) {
		if c.Cached(key) {
			continue
		}
		c.background(func(ctx context.Context, epoch uint64) {
			owner, fetched, err := c.fetchCurrent(ctx, key)
			if err != nil {
				c.metrics.RecordPreload(false)
				c.logger.Warn("Failed to preload month", "month", key.String(), "error", err)
				return
			}
			c.metrics.RecordPreload(true)

			c.mu.Lock()
			if !c.acceptLocked(epoch, owner) {
				c.mu.Unlock()
				return
			}
			if _, ok := c.months[key]; ok {
				// месяц уже загружен другим запросом
				c.mu.Unlock()
				return
			}
			c.populateLocked(key, fetched)
			c.mu.Unlock()

			c.emit(Change{Kind: MonthReplaced, Month: key})
		})
	}
}

// Cached reports whether the month is in the cache
func (c *Cache) Cached(key month.Key) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.months[key]
	return ok
}

// Month returns a sorted copy of the cached month
func (c *Cache) Month(key month.Key) ([]models.Event, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	events, ok := c.months[key]
	return sorted(slices.Clone(events)), ok
}

// Invalidate drops the month; the next load fetches it again
func (c *Cache) Invalidate(key month.Key) {
	c.mu.Lock()
	delete(c.months, key)
	c.versions[key]++
	c.mu.Unlock()
}

// SelectDate narrows the displayed list to one day of its month
func (c *Cache) SelectDate(date string) error {
	if err := validation.ValidateDate(date); err != nil {
		return err
	}
	key, err := month.Of(date)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.active = key
	c.date = date
	c.mu.Unlock()
	return nil
}

// Displayed returns the displayed list: the selected date, or the whole
// active month when no date is selected, sorted by date and time
func (c *Cache) Displayed() []models.Event {
	c.mu.Lock()
	defer c.mu.Unlock()

	var result []models.Event
	for _, e := range c.months[c.active] {
		if c.date == "" || e.Date == c.date {
			result = append(result, e)
		}
	}
	return sorted(result)
}

// EventsOnDate returns the events of one day. A cached month answers at once
// (and is revalidated); otherwise the day is fetched without caching it.
func (c *Cache) EventsOnDate(ctx context.Context, date string) ([]models.Event, error) {
	if err := validation.ValidateDate(date); err != nil {
		return nil, err
	}
	key, err := month.Of(date)
	if err != nil {
		return nil, err
	}

	owner, err := c.ownerID(ctx, "get_date")
	if err != nil {
		return nil, err
	}
	c.scope(owner)

	if c.Cached(key) {
		if err := c.SelectDate(date); err != nil {
			return nil, err
		}
		c.revalidate(key)
		return c.Displayed(), nil
	}

	events, err := c.store.GetEventsByDate(ctx, owner, date)
	if err != nil {
		return nil, err
	}
	return sorted(events), nil
}

// Upcoming returns every event dated today or later, sorted by date and time.
// today is YYYY-MM-DD; empty means the current local date.
func (c *Cache) Upcoming(ctx context.Context, today string) ([]models.Event, error) {
	if today == "" {
		today = c.now().Format(month.DateLayout)
	}
	if err := validation.ValidateDate(today); err != nil {
		return nil, err
	}

	owner, err := c.ownerID(ctx, "get_all")
	if err != nil {
		return nil, err
	}
	all, err := c.store.GetAllEvents(ctx, owner)
	if err != nil {
		return nil, err
	}

	result := make([]models.Event, 0, len(all))
	for _, e := range all {
		if e.Date >= today {
			result = append(result, e)
		}
	}
	return sorted(result), nil
}

// State returns the lifecycle state of the event with the given id
func (c *Cache) State(id string) State {
	return c.life.state(id)
}

// Wait blocks until all background work has finished
func (c *Cache) Wait() {
	c.wg.Wait()
}

// Reset drops every cached month and pending operation and cancels the
// background fetches in flight. Writes already sent still finish remotely but
// no longer touch the cache. Call it when the signed-in user changes.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.resetLocked()
	c.scopeOwner = ""
	c.mu.Unlock()

	c.logger.Debug("Event cache reset")
}

// Close cancels background work and waits for it
func (c *Cache) Close() {
	c.cancel()
	c.wg.Wait()
}

func (c *Cache) resetLocked() {
	c.epoch++
	c.scopeCancel()
	c.scopeCtx, c.scopeCancel = context.WithCancel(c.ctx)

	clear(c.months)
	clear(c.versions)
	clear(c.pending)
	c.active = ""
	c.date = ""
	c.life.reset()
}

// scopeLocked binds the cache to owner, dropping the events of another owner
func (c *Cache) scopeLocked(owner string) {
	if c.scopeOwner != "" && c.scopeOwner != owner {
		c.logger.Info("Event owner changed, dropping cached events")
		c.resetLocked()
	}
	c.scopeOwner = owner
}

func (c *Cache) scope(owner string) {
	c.mu.Lock()
	c.scopeLocked(owner)
	c.mu.Unlock()
}

// acceptLocked reports whether a background result fetched for owner in
// epoch may be stored
func (c *Cache) acceptLocked(epoch uint64, owner string) bool {
	if c.epoch != epoch {
		return false
	}
	c.scopeLocked(owner)
	return true
}

func (c *Cache) selectMonthLocked(key month.Key) {
	c.active = key
	if c.date != "" && !key.Contains(c.date) {
		c.date = ""
	}
}

// revalidate fetches a cached month in the background and replaces it when
// the fresh list differs. A result is dropped when the month changed locally
// while the fetch was in flight.
func (c *Cache) revalidate(key month.Key) {
	c.mu.Lock()
	version := c.versions[key]
	c.mu.Unlock()

	c.background(func(ctx context.Context, epoch uint64) {
		owner, fetched, err := c.fetchCurrent(ctx, key)
		if err != nil {
			c.metrics.RecordRevalidation(metrics.RevalidationFailed)
			c.logger.Warn("Background revalidation failed", "month", key.String(), "error", err)
			return
		}

		c.mu.Lock()
		if !c.acceptLocked(epoch, owner) {
			c.mu.Unlock()
			c.metrics.RecordRevalidation(metrics.RevalidationStale)
			return
		}
		cached, ok := c.months[key]
		if !ok || c.versions[key] != version {
			c.mu.Unlock()
			c.metrics.RecordRevalidation(metrics.RevalidationStale)
			c.logger.Debug("Dropping stale revalidation", "month", key.String())
			return
		}

		merged := c.overlayLocked(key, fetched)
		if equalEvents(cached, merged) {
			c.mu.Unlock()
			c.metrics.RecordRevalidation(metrics.RevalidationUnchanged)
			return
		}

		c.months[key] = merged
		c.versions[key]++
		c.mu.Unlock()

		c.metrics.RecordRevalidation(metrics.RevalidationReplaced)
		c.logger.Debug("Month replaced by revalidation", "month", key.String(), "events", len(merged))
		c.emit(Change{Kind: MonthReplaced, Month: key})
	})
}

// fetchMonth collapses concurrent fetches of the same owner and month into one
// call. The call runs on the cache context bounded by BackgroundTimeout; each
// caller stops waiting when its own ctx is done.
func (c *Cache) fetchMonth(ctx context.Context, owner string, key month.Key) ([]models.Event, error) {
	c.mu.Lock()
	parent := c.scopeCtx
	c.mu.Unlock()

	ch := c.flight.DoChan(owner+"/"+key.String(), func() (any, error) {
		ctx, cancel := context.WithTimeout(parent, c.cfg.BackgroundTimeout)
		defer cancel()
		return c.store.GetEventsByMonth(ctx, owner, key)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return slices.Clone(res.Val.([]models.Event)), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// fetchCurrent fetches the month of the current owner
func (c *Cache) fetchCurrent(ctx context.Context, key month.Key) (string, []models.Event, error) {
	owner, err := c.ownerID(ctx, "get_month")
	if err != nil {
		return "", nil, err
	}
	fetched, err := c.fetchMonth(ctx, owner, key)
	if err != nil {
		return "", nil, err
	}
	return owner, fetched, nil
}

// populateLocked stores a fetched month, keeping local pending operations
func (c *Cache) populateLocked(key month.Key, fetched []models.Event) []models.Event {
	merged := c.overlayLocked(key, fetched)
	c.months[key] = merged
	c.versions[key]++
	return slices.Clone(merged)
}

// overlayLocked applies pending operations to a fetched month: events waiting
// for a remote delete are hidden, events waiting for a create are added
func (c *Cache) overlayLocked(key month.Key, fetched []models.Event) []models.Event {
	merged := make([]models.Event, 0, len(fetched)+len(c.pending))
	for _, e := range fetched {
		switch c.life.state(e.ID) {
		case StatePendingDelete:
			continue
		case StateDeleted, StateRolledBack, StateRestored:
			// сервер по-прежнему знает это событие
			c.life.settle(e.ID)
		}
		merged = append(merged, e)
	}
	for _, e := range c.pending {
		if key.Contains(e.Date) {
			merged = append(merged, e)
		}
	}
	return merged
}

// background runs fn under the current scope; epoch is the scope it started in
func (c *Cache) background(fn func(ctx context.Context, epoch uint64)) {
	c.mu.Lock()
	parent, epoch := c.scopeCtx, c.epoch
	c.mu.Unlock()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ctx, cancel := context.WithTimeout(parent, c.cfg.BackgroundTimeout)
		defer cancel()
		fn(ctx, epoch)
	}()
}

func (c *Cache) ownerID(ctx context.Context, op string) (string, error) {
	owner, err := c.owner.OwnerID(ctx)
	if err != nil {
		return "", storeError(op, KindPermission, err)
	}
	return owner, nil
}

func sorted(events []models.Event) []models.Event {
	slices.SortFunc(events, func(a, b models.Event) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})
	return events
}

// equalEvents compares two months ignoring order
func equalEvents(a, b []models.Event) bool {
	if len(a) != len(b) {
		return false
	}
	return slices.EqualFunc(sorted(slices.Clone(a)), sorted(slices.Clone(b)), models.Event.Equal)
}
