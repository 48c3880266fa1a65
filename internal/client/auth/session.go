package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/gophcal/internal/client/storage"
)

const (
	// DefaultTokenRefreshInterval period of the proactive id token refresh.
	// Id tokens are valid for 60 minutes.
	DefaultTokenRefreshInterval = 30 * time.Minute
	// DefaultPollInterval period of the social provider status poll
	DefaultPollInterval = 5 * time.Second
)

// Config session manager settings
type Config struct {
	TokenRefreshInterval time.Duration
	PollInterval         time.Duration
}

func (c Config) withDefaults() Config {
	if c.TokenRefreshInterval <= 0 {
		c.TokenRefreshInterval = DefaultTokenRefreshInterval
	}
	if c.PollInterval <= 0 {
		c.PollInterval = DefaultPollInterval
	}
	return c
}

// Status result of CheckIntegratedStatus
type Status struct {
	ProviderStates
	LoggedIn bool `json:"logged_in"`
	Active   Kind `json:"active"`
}

type subscriber struct {
	callback     func(loggedIn bool)
	cancelNative func()
	last         bool
	delivered    bool
}

// Manager integrated session over the password, Apple and Kakao providers.
// Every provider call is isolated: an error or panic in one provider counts
// as "not logged in" for that provider only.
type Manager struct {
	password PasswordProvider
	apple    Provider
	kakao    Provider
	store    storage.CredentialStore
	logger   *slog.Logger
	cfg      Config

	// ctx живет до Close; на нем работают фоновые задачи менеджера
	ctx    context.Context
	cancel context.CancelFunc

	mu            sync.Mutex
	subscribers   map[int]*subscriber
	nextSubID     int
	pollCancel    context.CancelFunc
	refreshCancel context.CancelFunc
	refreshDone   chan struct{}
}

// NewManager creates the session manager. Any provider may be nil when it is
// not available on the platform.
func NewManager(password PasswordProvider, apple, kakao Provider, store storage.CredentialStore, logger *slog.Logger, cfg Config) *Manager {
	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		ctx:         ctx,
		cancel:      cancel,
		password:    password,
		apple:       apple,
		kakao:       kakao,
		store:       store,
		logger:      logger,
		cfg:         cfg.withDefaults(),
		subscribers: make(map[int]*subscriber),
	}
}

func (m *Manager) provider(kind Kind) Provider {
	switch kind {
	case KindPassword:
		if m.password == nil {
			return nil
		}
		return m.password
	case KindApple:
		return m.apple
	case KindKakao:
		return m.kakao
	default:
		return nil
	}
}

// guard runs fn and converts a panic into a ProviderError
func (m *Manager) guard(kind Kind, op string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("Provider panicked", "provider", kind.String(), "op", op, "panic", r)
			err = providerError(kind, op, panicError(r))
		}
	}()
	return fn()
}

func (m *Manager) isLoggedIn(ctx context.Context, kind Kind) bool {
	p := m.provider(kind)
	if p == nil {
		return false
	}

	var loggedIn bool
	err := m.guard(kind, "is_logged_in", func() error {
		var err error
		loggedIn, err = p.IsLoggedIn(ctx)
		return err
	})
	if err != nil {
		m.logger.Warn("Provider status check failed", "provider", kind.String(), "error", err)
		return false
	}
	return loggedIn
}

func (m *Manager) userInfo(ctx context.Context, kind Kind) *Identity {
	p := m.provider(kind)
	if p == nil {
		return nil
	}

	var identity *Identity
	err := m.guard(kind, "user_info", func() error {
		var err error
		identity, err = p.UserInfo(ctx)
		return err
	})
	if err != nil {
		m.logger.Warn("Provider user info failed", "provider", kind.String(), "error", err)
		return nil
	}
	return identity
}

// CheckIntegratedStatus evaluates every provider independently and in parallel
func (m *Manager) CheckIntegratedStatus(ctx context.Context) Status {
	results := make([]bool, len(priority))

	var wg sync.WaitGroup
	for i, kind := range priority {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = m.isLoggedIn(ctx, kind)
		}()
	}
	wg.Wait()

	states := ProviderStates{Password: results[0], Apple: results[1], Kakao: results[2]}
	session := DeriveSession(states)

	if session.Inconsistent() {
		m.logger.Warn("Multiple providers report an active session",
			"error", ErrSessionInconsistency,
			"providers", fmt.Sprint(session.Providers),
			"active", session.Active.String(),
		)
	}

	return Status{ProviderStates: states, LoggedIn: session.LoggedIn, Active: session.Active}
}

// Session returns the derived session
func (m *Manager) Session(ctx context.Context) Session {
	return DeriveSession(m.CheckIntegratedStatus(ctx).ProviderStates)
}

// VerifySession reports whether the session is usable. A password session
// additionally needs an obtainable id token; Apple and Kakao sessions rely on
// the locally cached credentials.
func (m *Manager) VerifySession(ctx context.Context) bool {
	status := m.CheckIntegratedStatus(ctx)
	if !status.LoggedIn {
		return false
	}
	if status.Password {
		return m.GetValidToken(ctx, false) != ""
	}
	return true
}

// IntegratedUserInfo returns the active identity by priority
// Password > Apple > Kakao, or nil when nobody is logged in
func (m *Manager) IntegratedUserInfo(ctx context.Context) *UserInfo {
	status := m.CheckIntegratedStatus(ctx)
	if !status.LoggedIn {
		return nil
	}

	for _, kind := range priority {
		if !status.Of(kind) {
			continue
		}
		identity := m.userInfo(ctx, kind)
		if identity == nil {
			continue
		}
		return &UserInfo{
			Kind:        kind,
			ID:          identity.ProviderID,
			UID:         identity.UID,
			DisplayName: ResolveDisplayName(identity),
			Email:       identity.Email,
			PhotoURL:    identity.PhotoURL,
		}
	}
	return nil
}

// SignIn signs in with the given provider. Failures come back as Result,
// including provider panics.
func (m *Manager) SignIn(ctx context.Context, kind Kind, creds Credentials) Result {
	p := m.provider(kind)
	if p == nil {
		return failure(ErrUnavailable, "This sign-in method is not available.")
	}

	var res Result
	err := m.guard(kind, "signin", func() error {
		res = p.SignIn(ctx, creds)
		return nil
	})
	if err != nil {
		return failure(err, "Sign-in failed unexpectedly. Please try again.")
	}

	m.afterSignIn(ctx, kind, res)
	return res
}

// SignUp creates a password account and signs it in
func (m *Manager) SignUp(ctx context.Context, creds Credentials) Result {
	if m.password == nil {
		return failure(ErrUnavailable, "Email sign-up is not available.")
	}

	var res Result
	err := m.guard(KindPassword, "signup", func() error {
		res = m.password.SignUp(ctx, creds)
		return nil
	})
	if err != nil {
		return failure(err, "Sign-up failed unexpectedly. Please try again.")
	}

	m.afterSignIn(ctx, KindPassword, res)
	return res
}

func (m *Manager) afterSignIn(ctx context.Context, kind Kind, res Result) {
	if !res.Success {
		return
	}
	m.logger.Info("Signed in", "provider", kind.String())

	if kind == KindPassword {
		// refresher переживает запрос, которым выполнен вход
		m.StartTokenRefresh(m.ctx)
		return
	}
	// у социальных провайдеров нет push-уведомлений, сообщаем подписчикам сами
	m.notifySubscribers(ctx)
}

// LogoutAll signs out of every provider and wipes every persisted credential.
// Steps run independently; failures are logged and do not stop later steps.
// Returns false only if every step panicked.
func (m *Manager) LogoutAll(ctx context.Context) bool {
	m.StopTokenRefresh()

	signOut := func(kind Kind) func() error {
		return func() error {
			p := m.provider(kind)
			if p == nil {
				return nil
			}
			if !p.SignOut(ctx) {
				return providerError(kind, "signout", errors.New("local state not fully cleared"))
			}
			return nil
		}
	}

	steps := []struct {
		fn   func() error
		name string
	}{
		{name: "password", fn: signOut(KindPassword)},
		{name: "apple", fn: signOut(KindApple)},
		{name: "kakao", fn: signOut(KindKakao)},
		{name: "credentials", fn: func() error { return m.clearCredentials(ctx) }},
	}

	var errs []error
	panics := 0
	for _, step := range steps {
		err := func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					panics++
					err = panicError(r)
				}
			}()
			return step.fn()
		}()
		if err != nil {
			m.logger.Warn("Logout step failed", "step", step.name, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", step.name, err))
		}
	}

	if len(errs) > 0 {
		m.logger.Warn("Logout completed with errors", "error", errors.Join(errs...))
	} else {
		m.logger.Info("Logged out of all providers")
	}

	m.notifySubscribers(ctx)

	return panics < len(steps)
}

func (m *Manager) clearCredentials(ctx context.Context) error {
	if m.store == nil {
		return nil
	}
	var errs []error
	for _, key := range storage.AllKeys() {
		if err := m.store.Delete(ctx, key); err != nil {
			errs = append(errs, fmt.Errorf("delete %s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

// GetValidToken returns a password id token, refreshing it when forced or
// stale, and persists it. Returns "" when there is no password user or the
// token cannot be obtained; errors are logged only.
func (m *Manager) GetValidToken(ctx context.Context, force bool) string {
	if !m.isLoggedIn(ctx, KindPassword) {
		return ""
	}

	var token string
	err := m.guard(KindPassword, "token", func() error {
		var err error
		token, err = m.password.IDToken(ctx, force)
		return err
	})
	if err != nil {
		m.logger.Warn("Failed to obtain id token", "force", force, "error", err)
		return ""
	}

	if m.store != nil {
		if err := m.store.Set(ctx, storage.KeyToken, token); err != nil {
			m.logger.Warn("Failed to persist id token", "error", err)
		}
	}
	return token
}

// Authorize returns the owner uid and bearer token for remote store calls.
// Password users use their id token; Kakao users use the backend token minted
// from their Kakao login. Apple-only sessions get ErrNoBearer.
func (m *Manager) Authorize(ctx context.Context) (ownerID, token string, err error) {
	status := m.CheckIntegratedStatus(ctx)

	if status.Password {
		token = m.GetValidToken(ctx, false)
		identity := m.userInfo(ctx, KindPassword)
		if token == "" || identity == nil || identity.UID == "" {
			return "", "", fmt.Errorf("%w: password session has no usable token", ErrNoBearer)
		}
		return identity.UID, token, nil
	}

	if status.Kakao {
		source, ok := m.kakao.(BearerSource)
		if !ok {
			return "", "", ErrNoBearer
		}
		err = m.guard(KindKakao, "token", func() error {
			var err error
			token, err = source.BearerToken(ctx)
			return err
		})
		if err != nil {
			return "", "", fmt.Errorf("%w: %w", ErrNoBearer, err)
		}
		identity := m.userInfo(ctx, KindKakao)
		if identity == nil || identity.UID == "" {
			return "", "", fmt.Errorf("%w: kakao identity has no uid", ErrNoBearer)
		}
		return identity.UID, token, nil
	}

	return "", "", ErrNoBearer
}

// BearerToken token used to authorize remote store calls
func (m *Manager) BearerToken(ctx context.Context) (string, error) {
	_, token, err := m.Authorize(ctx)
	return token, err
}

// OwnerID uid that owns the events of the current session
func (m *Manager) OwnerID(ctx context.Context) (string, error) {
	owner, _, err := m.Authorize(ctx)
	return owner, err
}

// Resume picks up a session restored from the credential store: when the
// password identity is active the proactive token refresh is started.
func (m *Manager) Resume(ctx context.Context) Status {
	status := m.CheckIntegratedStatus(ctx)
	if status.Password {
		m.StartTokenRefresh(m.ctx)
	}
	return status
}

// Close stops the poll and the token refresher
func (m *Manager) Close() {
	m.cancel()
	m.StopTokenRefresh()

	m.mu.Lock()
	defer m.mu.Unlock()
	for id, sub := range m.subscribers {
		if sub.cancelNative != nil {
			sub.cancelNative()
		}
		delete(m.subscribers, id)
	}
	m.stopPollLocked()
}
