package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/gophcal/internal/client/auth"
	"github.com/iudanet/gophcal/internal/client/events"
	"github.com/iudanet/gophcal/internal/client/iocli"
	"github.com/iudanet/gophcal/internal/models"
	"github.com/iudanet/gophcal/internal/month"
)

//go:generate moq -out session_mock.go . Session

var (
	// ErrPasswordMismatch пароль и подтверждение не совпали
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrUnknownFormat неизвестный формат вывода
	ErrUnknownFormat = errors.New("unknown output format")
)

// Session integrated session as seen by the commands
type Session interface {
	SignUp(ctx context.Context, creds auth.Credentials) auth.Result
	SignIn(ctx context.Context, kind auth.Kind, creds auth.Credentials) auth.Result
	LogoutAll(ctx context.Context) bool
	CheckIntegratedStatus(ctx context.Context) auth.Status
	Resume(ctx context.Context) auth.Status
	IntegratedUserInfo(ctx context.Context) *auth.UserInfo
	Subscribe(callback func(loggedIn bool)) (unsubscribe func())
}

var _ Session = (*auth.Manager)(nil)

// Calendar event cache operations used by the commands
type Calendar interface {
	LoadMonth(ctx context.Context, key month.Key) ([]models.Event, error)
	PreloadAdjacentMonths(center month.Key, radius int)
	EventsOnDate(ctx context.Context, date string) ([]models.Event, error)
	Upcoming(ctx context.Context, today string) ([]models.Event, error)
	AddEvent(ctx context.Context, draft models.EventDraft) (*events.Op, error)
	DeleteEvent(ctx context.Context, id string) (*events.Op, error)
	Observe(fn func(events.Change)) (cancel func())
	Reset()
}

var _ Calendar = (*events.Cache)(nil)

// Options настройки команд
type Options struct {
	PreloadRadius int
	WatchInterval time.Duration
}

// Cli команды клиента
type Cli struct {
	io       iocli.IO
	session  Session
	calendar Calendar
	logger   *slog.Logger
	now      func() time.Time
	opts     Options
}

// New creates the command set
func New(io iocli.IO, session Session, calendar Calendar, logger *slog.Logger, opts Options) *Cli {
	if opts.PreloadRadius <= 0 {
		opts.PreloadRadius = events.DefaultPreloadRadius
	}
	if opts.WatchInterval <= 0 {
		opts.WatchInterval = time.Minute
	}
	return &Cli{
		io:       io,
		session:  session,
		calendar: calendar,
		logger:   logger,
		now:      time.Now,
		opts:     opts,
	}
}

func (c *Cli) today() string {
	return c.now().Format(month.DateLayout)
}

// resultError превращает неуспешный Result в ошибку команды
func resultError(res auth.Result) error {
	msg := res.Message
	if msg == "" {
		msg = "operation failed"
	}
	if res.Err != nil {
		return fmt.Errorf("%s: %w", msg, res.Err)
	}
	return errors.New(msg)
}
