package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/iudanet/gophcal/internal/client/events"
	"github.com/iudanet/gophcal/internal/models"
	"github.com/iudanet/gophcal/internal/month"
)

// addInput флаги команды add; пустые поля запрашиваются интерактивно
type addInput struct {
	Title string
	Date  string
	Time  string
}

// parseMonth принимает YYYY-MM или YYYY-MM-01, пустая строка это текущий месяц
func (c *Cli) parseMonth(arg string) (month.Key, error) {
	arg = strings.TrimSpace(arg)
	switch len(arg) {
	case 0:
		return month.FromTime(c.now()), nil
	case len("2006-01"):
		return month.Parse(arg + "-01")
	default:
		return month.Parse(arg)
	}
}

func (c *Cli) runMonth(ctx context.Context, arg, format string) error {
	key, err := c.parseMonth(arg)
	if err != nil {
		return err
	}

	list, err := c.calendar.LoadMonth(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", key, err)
	}
	c.calendar.PreloadAdjacentMonths(key, c.opts.PreloadRadius)

	views := toEventViews(list)
	return c.render(format, lookup("events"), groupByDate(key.String()[:7], views), views)
}

func (c *Cli) runDay(ctx context.Context, date, format string) error {
	if date == "" {
		date = c.today()
	}

	list, err := c.calendar.EventsOnDate(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", date, err)
	}

	views := toEventViews(list)
	return c.render(format, lookup("events"), groupByDate(date, views), views)
}

func (c *Cli) runUpcoming(ctx context.Context, format string) error {
	list, err := c.calendar.Upcoming(ctx, c.today())
	if err != nil {
		return fmt.Errorf("failed to load upcoming events: %w", err)
	}

	views := toEventViews(list)
	return c.render(format, lookup("events"), groupByDate("Upcoming", views), views)
}

func (c *Cli) runAdd(ctx context.Context, in addInput) error {
	var err error

	if in.Title == "" {
		c.io.Println("=== Add Event ===")
		c.io.Println()
		if in.Title, err = c.io.ReadInput("Title: "); err != nil {
			return fmt.Errorf("failed to read title: %w", err)
		}
		if in.Date == "" {
			if in.Date, err = c.io.ReadInput(fmt.Sprintf("Date [%s]: ", c.today())); err != nil {
				return fmt.Errorf("failed to read date: %w", err)
			}
		}
		if in.Time == "" {
			if in.Time, err = c.io.ReadInput("Time (HH:MM) [00:00]: "); err != nil {
				return fmt.Errorf("failed to read time: %w", err)
			}
		}
	}
	if in.Date == "" {
		in.Date = c.today()
	}

	// 1. Событие сразу появляется в кэше
	op, err := c.calendar.AddEvent(ctx, models.EventDraft{Title: in.Title, Date: in.Date, Time: in.Time})
	if err != nil {
		return err
	}
	c.io.Printf("Saving %q on %s...\n", strings.TrimSpace(in.Title), in.Date)

	// 2. Ждем подтверждения сервера
	saved, err := op.Wait(ctx)
	if err != nil {
		return fmt.Errorf("event was not saved: %w", err)
	}

	c.io.Printf("✓ Event created: %s %s %s [%s]\n", saved.Date, saved.Time, saved.Title, saved.ID)
	return nil
}

// runDelete удаляет событие месяца date; месяц загружается, чтобы событие
// оказалось в кэше
func (c *Cli) runDelete(ctx context.Context, id, date string) error {
	if date == "" {
		date = c.today()
	}
	key, err := month.Of(date)
	if err != nil {
		return err
	}

	if _, err := c.calendar.LoadMonth(ctx, key); err != nil {
		return fmt.Errorf("failed to load %s: %w", key, err)
	}

	op, err := c.calendar.DeleteEvent(ctx, id)
	if err != nil {
		if errors.Is(err, events.ErrEventNotCached) {
			return fmt.Errorf("%w: no event %s in %s, pass --date with the event's date", err, id, key.String()[:7])
		}
		return err
	}
	c.io.Printf("Deleting %s...\n", id)

	if _, err := op.Wait(ctx); err != nil {
		return fmt.Errorf("event was not deleted: %w", err)
	}

	c.io.Println("✓ Event deleted")
	return nil
}
