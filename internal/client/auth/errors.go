package auth

import (
	"errors"
	"fmt"
)

var (
	// ErrNotSignedIn provider has no active user
	ErrNotSignedIn = errors.New("not signed in")

	// ErrCanceled user aborted the provider sign-in flow
	ErrCanceled = errors.New("sign-in canceled")

	// ErrUnavailable provider cannot be used on this platform
	ErrUnavailable = errors.New("provider unavailable on this platform")

	// ErrNoBearer the active identity cannot authorize calls to the remote store
	ErrNoBearer = errors.New("active identity has no bearer token")

	// ErrSessionInconsistency more than one provider reports an active session.
	// Logged only; the priority rule still picks one identity.
	ErrSessionInconsistency = errors.New("session inconsistency")
)

// ProviderError failure of a single identity provider call
type ProviderError struct {
	Err  error
	Op   string // signin, signout, token, ...
	Kind Kind
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func providerError(kind Kind, op string, err error) error {
	return &ProviderError{Kind: kind, Op: op, Err: err}
}

// panicError converts a recovered panic value into an error
func panicError(v any) error {
	if err, ok := v.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", v)
}
