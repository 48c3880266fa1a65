package cli

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/iudanet/gophcal/internal/client/events"
)

// runWatch показывает изменения сессии и кэша, пока ctx не отменен.
// Месяц перезагружается с периодом WatchInterval, что запускает ревалидацию.
func (c *Cli) runWatch(ctx context.Context, arg string) error {
	key, err := c.parseMonth(arg)
	if err != nil {
		return err
	}

	// колбэки приходят из разных горутин
	var mu sync.Mutex
	printf := func(format string, a ...any) {
		mu.Lock()
		defer mu.Unlock()
		c.io.Printf(format, a...)
	}

	// восстановленной сессии нужен фоновый refresh токена
	status := c.session.Resume(ctx)
	c.logger.Debug("Session resumed", "logged_in", status.LoggedIn, "active", status.Active.String())

	unsubscribe := c.session.Subscribe(func(loggedIn bool) {
		if loggedIn {
			printf("[session] signed in\n")
			return
		}
		c.calendar.Reset()
		printf("[session] signed out\n")
	})
	defer unsubscribe()

	cancel := c.calendar.Observe(func(ch events.Change) {
		printf("%s\n", describeChange(ch))
	})
	defer cancel()

	list, err := c.calendar.LoadMonth(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", key, err)
	}
	c.calendar.PreloadAdjacentMonths(key, c.opts.PreloadRadius)
	printf("Watching %s (%d events), press Ctrl+C to stop\n", key.String()[:7], len(list))

	ticker := time.NewTicker(c.opts.WatchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			printf("Stopped.\n")
			return nil
		case <-ticker.C:
			if _, err := c.calendar.LoadMonth(ctx, key); err != nil && ctx.Err() == nil {
				c.logger.Warn("Month reload failed", "month", key.String(), "error", err)
			}
		}
	}
}

func describeChange(ch events.Change) string {
	e := ch.Event
	switch ch.Kind {
	case events.MonthReplaced:
		return fmt.Sprintf("[%s] month %s updated", ch.Kind, ch.Month)
	case events.EventAdded:
		return fmt.Sprintf("[%s] %s %s %s (saving...)", ch.Kind, e.Date, e.Time, e.Title)
	case events.EventCommitted:
		return fmt.Sprintf("[%s] %s saved as %s", ch.Kind, e.Title, e.ID)
	case events.EventRolledBack:
		return fmt.Sprintf("[%s] %s not saved: %v", ch.Kind, e.Title, ch.Err)
	case events.EventRemoved:
		return fmt.Sprintf("[%s] %s %s %s", ch.Kind, e.Date, e.Time, e.Title)
	case events.EventDeleted:
		return fmt.Sprintf("[%s] %s deleted", ch.Kind, e.Title)
	case events.MonthResynced:
		return fmt.Sprintf("[%s] month %s reloaded after failed delete of %s: %v", ch.Kind, ch.Month, e.Title, ch.Err)
	default:
		return fmt.Sprintf("[%s] %s", ch.Kind, ch.Month)
	}
}
