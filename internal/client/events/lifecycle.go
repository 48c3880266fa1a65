package events

import (
	"errors"
	"fmt"
	"sync"
)

// ErrInvalidTransition the event is not in a state that allows the operation
var ErrInvalidTransition = errors.New("invalid event state transition")

// State optimistic lifecycle state of one event
type State int

const (
	StateUnknown State = iota
	StateDraft
	StatePendingCreate
	StateCommitted
	StateRolledBack
	StatePendingDelete
	StateDeleted
	StateRestored // restored by a resync after a failed delete
)

func (s State) String() string {
	switch s {
	case StateDraft:
		return "draft"
	case StatePendingCreate:
		return "pending-create"
	case StateCommitted:
		return "committed"
	case StateRolledBack:
		return "rolled-back"
	case StatePendingDelete:
		return "pending-delete"
	case StateDeleted:
		return "deleted"
	case StateRestored:
		return "restored"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition is possible
func (s State) Terminal() bool {
	return s == StateRolledBack || s == StateDeleted || s == StateRestored
}

var transitions = map[State][]State{
	StateDraft:         {StatePendingCreate},
	StatePendingCreate: {StateCommitted, StateRolledBack},
	StateCommitted:     {StatePendingDelete},
	StatePendingDelete: {StateDeleted, StateRestored},
}

// CanTransition reports whether from -> to is a valid lifecycle step
func CanTransition(from, to State) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// defaultRetainFinished terminal states kept for inspection
const defaultRetainFinished = 256

// lifecycle tracks the state of events with an operation in flight or just
// finished. Server events without a record are Committed. Only the latest
// terminal states are kept; older ones are forgotten.
type lifecycle struct {
	mu       sync.Mutex
	states   map[string]State
	locks    map[string]*idLock
	finished []string // ids in terminal states, oldest first
	retain   int
}

type idLock struct {
	mu   sync.Mutex
	refs int
}

func newLifecycle() *lifecycle {
	return &lifecycle{
		states: make(map[string]State),
		locks:  make(map[string]*idLock),
		retain: defaultRetainFinished,
	}
}

// state returns the recorded state; ids without a record are committed
// server events (or unknown temporary ids)
func (l *lifecycle) state(id string) State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stateLocked(id)
}

func (l *lifecycle) stateLocked(id string) State {
	if s, ok := l.states[id]; ok {
		return s
	}
	return StateCommitted
}

// transition moves id to the next state or returns ErrInvalidTransition
func (l *lifecycle) transition(id string, to State) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	from, ok := l.states[id]
	if !ok {
		from = StateCommitted
		if to == StatePendingCreate {
			from = StateDraft
		}
	}
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s %s -> %s", ErrInvalidTransition, id, from, to)
	}
	l.states[id] = to
	if to.Terminal() {
		l.finishLocked(id)
	}
	return nil
}

func (l *lifecycle) finishLocked(id string) {
	l.finished = append(l.finished, id)
	for len(l.finished) > l.retain {
		oldest := l.finished[0]
		l.finished = l.finished[1:]
		if s, ok := l.states[oldest]; ok && s.Terminal() {
			delete(l.states, oldest)
		}
	}
}

// reset forgets every state. Held id locks stay valid.
func (l *lifecycle) reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	clear(l.states)
	l.finished = nil
}

// settle records a committed server event under its id: a fresh server event
// carries no pending operation
func (l *lifecycle) settle(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.states, id)
}

// pendingDelete reports whether id is waiting for a remote delete
func (l *lifecycle) pendingDelete(id string) bool {
	return l.state(id) == StatePendingDelete
}

// lock serializes operations on one id
func (l *lifecycle) lock(id string) func() {
	l.mu.Lock()
	lk, ok := l.locks[id]
	if !ok {
		lk = &idLock{}
		l.locks[id] = lk
	}
	lk.refs++
	l.mu.Unlock()

	lk.mu.Lock()

	return func() {
		lk.mu.Unlock()

		l.mu.Lock()
		lk.refs--
		if lk.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}
