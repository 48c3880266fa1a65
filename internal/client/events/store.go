package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/gophcal/internal/models"
	"github.com/iudanet/gophcal/internal/month"
)

//go:generate moq -out remotestore_mock.go . RemoteStore OwnerSource

// RemoteStore remote event storage of one user
type RemoteStore interface {
	// AddEvent creates the event; the store assigns ID and CreatedAt
	AddEvent(ctx context.Context, ownerID string, draft models.EventDraft) (models.Event, error)

	// GetEventsByMonth returns events with date in [key, key.Next())
	GetEventsByMonth(ctx context.Context, ownerID string, key month.Key) ([]models.Event, error)

	// GetEventsByDate returns events of a single day
	GetEventsByDate(ctx context.Context, ownerID, date string) ([]models.Event, error)

	// GetAllEvents returns every event of the owner
	GetAllEvents(ctx context.Context, ownerID string) ([]models.Event, error)

	// DeleteEvent deletes the event. Returns ErrNotFound if the owner has no such id.
	DeleteEvent(ctx context.Context, ownerID, id string) error
}

// OwnerSource resolves the uid owning the events of the current session
type OwnerSource interface {
	OwnerID(ctx context.Context) (string, error)
}

// StoreErrorKind class of a remote store failure
type StoreErrorKind int

const (
	KindUnknown StoreErrorKind = iota
	KindNotFound
	KindPermission
	KindNetwork
)

func (k StoreErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not-found"
	case KindPermission:
		return "permission-denied"
	case KindNetwork:
		return "network"
	default:
		return "unknown"
	}
}

var (
	// ErrNotFound event does not exist under the owner
	ErrNotFound = errors.New("event not found")
	// ErrPermission caller may not access the owner's events
	ErrPermission = errors.New("permission denied")
	// ErrNetwork store unreachable
	ErrNetwork = errors.New("event store unreachable")
)

// StoreError failed remote store call
type StoreError struct {
	Err  error
	Op   string
	Kind StoreErrorKind
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Kind, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match the kind sentinels
func (e *StoreError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrPermission:
		return e.Kind == KindPermission
	case ErrNetwork:
		return e.Kind == KindNetwork
	}
	return false
}

func storeError(op string, kind StoreErrorKind, err error) error {
	return &StoreError{Op: op, Kind: kind, Err: err}
}

// ErrorKind returns the kind of a store error, KindUnknown for anything else
func ErrorKind(err error) StoreErrorKind {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}
