package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	clientapi "github.com/iudanet/gophcal/internal/client/api"
	"github.com/iudanet/gophcal/internal/client/storage"
	"github.com/iudanet/gophcal/internal/validation"
	pkgapi "github.com/iudanet/gophcal/pkg/api"
)

// tokenSkew id token is refreshed this long before it expires
const tokenSkew = 5 * time.Minute

//go:generate moq -out passwordclient_mock.go . PasswordClient

// PasswordClient backend calls used by the password provider
type PasswordClient interface {
	SignUp(ctx context.Context, req pkgapi.SignUpRequest) (*pkgapi.SignUpResponse, error)
	SignIn(ctx context.Context, req pkgapi.SignInRequest) (*pkgapi.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*pkgapi.TokenResponse, error)
	SignOut(ctx context.Context, idToken string) error
}

var _ PasswordClient = (*clientapi.Client)(nil)

// TokenRecord id token of the password identity
type TokenRecord struct {
	ObtainedAt   time.Time `json:"obtained_at"`
	ExpiresAt    time.Time `json:"expires_at"`
	IDToken      string    `json:"-"`
	RefreshToken string    `json:"-"`
	UID          string    `json:"uid"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name"`
}

// Stale reports whether the token must be refreshed before use
func (r *TokenRecord) Stale(now time.Time) bool {
	return r.IDToken == "" || !now.Add(tokenSkew).Before(r.ExpiresAt)
}

// EmailPasswordProvider signs users in against the backend with email and password
type EmailPasswordProvider struct {
	client PasswordClient
	store  storage.CredentialStore
	logger *slog.Logger
	now    func() time.Time

	// refreshMu сериализует refresh: refresh token одноразовый
	refreshMu sync.Mutex

	mu        sync.Mutex
	listeners map[int]func(bool)
	nextID    int
}

var _ PasswordProvider = (*EmailPasswordProvider)(nil)

// NewEmailPasswordProvider creates the password provider
func NewEmailPasswordProvider(client PasswordClient, store storage.CredentialStore, logger *slog.Logger) *EmailPasswordProvider {
	return &EmailPasswordProvider{
		client:    client,
		store:     store,
		logger:    logger,
		now:       time.Now,
		listeners: make(map[int]func(bool)),
	}
}

// Kind implements Provider
func (p *EmailPasswordProvider) Kind() Kind {
	return KindPassword
}

// SignUp creates the account and signs it in
func (p *EmailPasswordProvider) SignUp(ctx context.Context, creds Credentials) Result {
	if err := validation.ValidateSignUp(creds.Email, creds.Password, creds.DisplayName); err != nil {
		return failure(err, validationMessage(err))
	}

	_, err := p.client.SignUp(ctx, pkgapi.SignUpRequest{
		Email:       creds.Email,
		Password:    creds.Password,
		DisplayName: creds.DisplayName,
	})
	if err != nil {
		p.logger.Warn("Sign-up failed", "error", err)
		return failure(providerError(KindPassword, "signup", err), backendMessage(err))
	}

	return p.SignIn(ctx, creds)
}

// SignIn authenticates with email and password and persists the token record
func (p *EmailPasswordProvider) SignIn(ctx context.Context, creds Credentials) Result {
	// 1. Проверяем ввод до обращения к серверу
	if err := validation.ValidateEmail(creds.Email); err != nil {
		return failure(err, validationMessage(err))
	}
	if err := validation.ValidatePassword(creds.Password); err != nil {
		return failure(err, validationMessage(err))
	}

	// 2. Аутентификация на сервере
	resp, err := p.client.SignIn(ctx, pkgapi.SignInRequest{Email: creds.Email, Password: creds.Password})
	if err != nil {
		p.logger.Warn("Sign-in failed", "error", err)
		return failure(providerError(KindPassword, "signin", err), backendMessage(err))
	}

	// 3. Сохраняем токены
	record := p.recordFromResponse(resp)
	if err := p.saveRecord(ctx, record); err != nil {
		p.logger.Error("Failed to persist password session", "error", err)
		return failure(providerError(KindPassword, "signin", err), "Could not save the session on this device.")
	}

	p.notify(true)

	return success(record.identity())
}

// SignOut revokes the server session (best effort) and clears local state
func (p *EmailPasswordProvider) SignOut(ctx context.Context) bool {
	// 1. Уведомляем сервер, если есть токен
	if token, err := p.store.Get(ctx, storage.KeyToken); err == nil {
		if err := p.client.SignOut(ctx, token); err != nil {
			// Не прерываем процесс, если сервер недоступен
			p.logger.Warn("Failed to sign out on server", "error", err)
		}
	}

	// 2. Всегда удаляем локальные данные
	ok := p.clear(ctx)
	p.notify(false)
	return ok
}

// IsLoggedIn reports whether a password session is stored.
// An expired id token does not end the session; it is refreshed on demand.
func (p *EmailPasswordProvider) IsLoggedIn(ctx context.Context) (bool, error) {
	_, err := p.loadRecord(ctx)
	if errors.Is(err, ErrNotSignedIn) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// UserInfo returns the stored identity
func (p *EmailPasswordProvider) UserInfo(ctx context.Context) (*Identity, error) {
	record, err := p.loadRecord(ctx)
	if errors.Is(err, ErrNotSignedIn) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record.identity(), nil
}

// IDToken returns the id token, refreshing it when forced or stale.
// A refresh rejected by the server ends the session.
func (p *EmailPasswordProvider) IDToken(ctx context.Context, force bool) (string, error) {
	record, err := p.loadRecord(ctx)
	if err != nil {
		return "", err
	}

	if !force && !record.Stale(p.now()) {
		return record.IDToken, nil
	}

	p.refreshMu.Lock()
	defer p.refreshMu.Unlock()

	// Пока ждали блокировку, токен мог обновить другой вызов
	current, err := p.loadRecord(ctx)
	if err != nil {
		return "", err
	}
	if current.RefreshToken != record.RefreshToken || (!force && !current.Stale(p.now())) {
		return current.IDToken, nil
	}
	record = current

	resp, err := p.client.Refresh(ctx, record.RefreshToken)
	if err != nil {
		if se, ok := clientapi.AsStatusError(err); ok && se.StatusCode == http.StatusUnauthorized {
			p.logger.Warn("Refresh token rejected, ending password session", "error", err)
			p.clear(ctx)
			p.notify(false)
			return "", providerError(KindPassword, "token", ErrNotSignedIn)
		}
		return "", providerError(KindPassword, "token", err)
	}

	refreshed := p.recordFromResponse(resp)
	// Сервер может не вернуть профиль при refresh
	if refreshed.Email == "" {
		refreshed.Email = record.Email
	}
	if refreshed.DisplayName == "" {
		refreshed.DisplayName = record.DisplayName
	}
	if refreshed.UID == "" {
		refreshed.UID = record.UID
	}

	if err := p.saveRecord(ctx, refreshed); err != nil {
		return "", providerError(KindPassword, "token", err)
	}

	return refreshed.IDToken, nil
}

// Record returns the stored token record
func (p *EmailPasswordProvider) Record(ctx context.Context) (*TokenRecord, error) {
	return p.loadRecord(ctx)
}

// OnAuthStateChanged registers a listener called on every sign-in and sign-out
func (p *EmailPasswordProvider) OnAuthStateChanged(fn func(loggedIn bool)) func() {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.listeners[id] = fn
	p.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.listeners, id)
			p.mu.Unlock()
		})
	}
}

func (p *EmailPasswordProvider) notify(loggedIn bool) {
	p.mu.Lock()
	listeners := make([]func(bool), 0, len(p.listeners))
	for _, fn := range p.listeners {
		listeners = append(listeners, fn)
	}
	p.mu.Unlock()

	for _, fn := range listeners {
		fn(loggedIn)
	}
}

func (p *EmailPasswordProvider) recordFromResponse(resp *pkgapi.TokenResponse) *TokenRecord {
	now := p.now()
	return &TokenRecord{
		IDToken:      resp.IDToken,
		RefreshToken: resp.RefreshToken,
		ObtainedAt:   now,
		ExpiresAt:    tokenExpiry(resp.IDToken, now, resp.ExpiresIn),
		UID:          resp.UID,
		Email:        resp.Email,
		DisplayName:  resp.DisplayName,
	}
}

// tokenExpiry reads exp from the JWT; the signature is checked by the server, not here.
// Falls back to expiresIn when the token carries no exp claim.
func tokenExpiry(idToken string, obtainedAt time.Time, expiresIn int64) time.Time {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, &claims); err == nil && claims.ExpiresAt != nil {
		return claims.ExpiresAt.Time
	}
	return obtainedAt.Add(time.Duration(expiresIn) * time.Second)
}

func (p *EmailPasswordProvider) saveRecord(ctx context.Context, record *TokenRecord) error {
	state, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal auth state: %w", err)
	}

	values := []struct{ key, value string }{
		{storage.KeyToken, record.IDToken},
		{storage.KeyRefreshToken, record.RefreshToken},
		{storage.KeyEmail, record.Email},
		{storage.KeyAuthState, string(state)},
	}
	for _, v := range values {
		if err := p.store.Set(ctx, v.key, v.value); err != nil {
			return fmt.Errorf("failed to save %s: %w", v.key, err)
		}
	}
	return nil
}

func (p *EmailPasswordProvider) loadRecord(ctx context.Context) (*TokenRecord, error) {
	state, err := p.store.Get(ctx, storage.KeyAuthState)
	if errors.Is(err, storage.ErrCredentialNotFound) {
		return nil, ErrNotSignedIn
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read auth state: %w", err)
	}

	var record TokenRecord
	if err := json.Unmarshal([]byte(state), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal auth state: %w", err)
	}

	// Без refresh token сессию не восстановить
	record.RefreshToken, err = p.store.Get(ctx, storage.KeyRefreshToken)
	if errors.Is(err, storage.ErrCredentialNotFound) {
		return nil, ErrNotSignedIn
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read refresh token: %w", err)
	}

	record.IDToken, err = p.store.Get(ctx, storage.KeyToken)
	if err != nil && !errors.Is(err, storage.ErrCredentialNotFound) {
		return nil, fmt.Errorf("failed to read id token: %w", err)
	}

	return &record, nil
}

func (p *EmailPasswordProvider) clear(ctx context.Context) bool {
	ok := true
	for _, key := range []string{storage.KeyToken, storage.KeyRefreshToken, storage.KeyEmail, storage.KeyAuthState} {
		if err := p.store.Delete(ctx, key); err != nil {
			p.logger.Error("Failed to delete credential", "key", key, "error", err)
			ok = false
		}
	}
	return ok
}

func (r *TokenRecord) identity() *Identity {
	return &Identity{
		Kind:          KindPassword,
		ProviderID:    r.Email,
		UID:           r.UID,
		DisplayName:   r.DisplayName,
		Email:         r.Email,
		RawCredential: r.IDToken,
	}
}

// backendMessage turns a backend error into a user facing message
func backendMessage(err error) string {
	se, ok := clientapi.AsStatusError(err)
	if !ok {
		return "Network error. Please check your connection and try again."
	}

	switch se.Code {
	case pkgapi.ErrCodeInvalidEmail:
		return "The email address is not valid."
	case pkgapi.ErrCodeUserNotFound:
		return "No account found with this email."
	case pkgapi.ErrCodeWrongPassword:
		return "Incorrect password."
	case pkgapi.ErrCodeInvalidCredential:
		return "Incorrect email or password."
	case pkgapi.ErrCodeEmailInUse:
		return "This email is already registered."
	case pkgapi.ErrCodeWeakPassword:
		return "The password is too weak."
	}

	if se.StatusCode == http.StatusTooManyRequests {
		if se.RetryAfter > 0 {
			return fmt.Sprintf("Too many attempts. Please try again in %s.", se.RetryAfter.Round(time.Second))
		}
		return "Too many attempts. Please try again later."
	}
	return "Sign-in failed. Please try again."
}

func validationMessage(err error) string {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return verr.Message
	}
	return err.Error()
}
