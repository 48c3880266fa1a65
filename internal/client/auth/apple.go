package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/gophcal/internal/client/storage"
)

//go:generate moq -out applesdk_mock.go . AppleSDK

// AppleCredential what Sign in with Apple returns.
// Name and email are only present on the first authorization.
type AppleCredential struct {
	User          string
	Email         string
	GivenName     string
	FamilyName    string
	IdentityToken string
}

// AppleCredentialState state of an Apple id as reported by the platform
type AppleCredentialState int

const (
	AppleCredentialRevoked AppleCredentialState = iota
	AppleCredentialAuthorized
	AppleCredentialNotFound
	AppleCredentialTransferred
)

// AppleSDK platform Sign in with Apple API
type AppleSDK interface {
	// IsAvailable reports whether Sign in with Apple works on this platform
	IsAvailable() bool

	// SignIn runs the authorization flow. Returns ErrCanceled if the user aborts.
	SignIn(ctx context.Context) (*AppleCredential, error)

	// CredentialState asks the platform about the given Apple user id
	CredentialState(ctx context.Context, user string) (AppleCredentialState, error)
}

// AppleProvider Sign in with Apple adapter.
// Apple has no refreshable bearer token here; the stored identity is the session.
type AppleProvider struct {
	sdk    AppleSDK
	store  storage.CredentialStore
	logger *slog.Logger
}

var _ Provider = (*AppleProvider)(nil)

// NewAppleProvider creates the Apple provider
func NewAppleProvider(sdk AppleSDK, store storage.CredentialStore, logger *slog.Logger) *AppleProvider {
	return &AppleProvider{sdk: sdk, store: store, logger: logger}
}

// Kind implements Provider
func (p *AppleProvider) Kind() Kind {
	return KindApple
}

// SignIn runs Sign in with Apple and persists the identity
func (p *AppleProvider) SignIn(ctx context.Context, _ Credentials) Result {
	if p.sdk == nil || !p.sdk.IsAvailable() {
		return failure(providerError(KindApple, "signin", ErrUnavailable), "Sign in with Apple is only available on iOS.")
	}

	cred, err := p.sdk.SignIn(ctx)
	if errors.Is(err, ErrCanceled) {
		return failure(providerError(KindApple, "signin", err), "Apple sign-in was canceled.")
	}
	if err != nil {
		p.logger.Warn("Apple sign-in failed", "error", err)
		return failure(providerError(KindApple, "signin", err), "Apple sign-in failed. Please try again.")
	}
	if cred == nil || cred.User == "" {
		return failure(providerError(KindApple, "signin", errors.New("empty apple credential")), "Apple sign-in failed. Please try again.")
	}

	identity := &Identity{
		Kind:          KindApple,
		ProviderID:    cred.User,
		Email:         cred.Email,
		GivenName:     cred.GivenName,
		FamilyName:    cred.FamilyName,
		RawCredential: cred.IdentityToken,
	}

	// Apple отдает имя и email только при первой авторизации, сохраняем прежние
	if previous, err := p.loadIdentity(ctx); err == nil && previous != nil && previous.ProviderID == cred.User {
		if identity.Email == "" {
			identity.Email = previous.Email
		}
		if identity.GivenName == "" && identity.FamilyName == "" {
			identity.GivenName, identity.FamilyName = previous.GivenName, previous.FamilyName
		}
	}

	identity.DisplayName = ResolveDisplayName(identity)

	if err := p.saveIdentity(ctx, identity); err != nil {
		p.logger.Error("Failed to persist Apple session", "error", err)
		return failure(providerError(KindApple, "signin", err), "Could not save the session on this device.")
	}

	return success(identity)
}

// SignOut clears the stored Apple identity
func (p *AppleProvider) SignOut(ctx context.Context) bool {
	ok := true
	for _, key := range []string{storage.KeyAppleUser, storage.KeyAppleAuthState} {
		if err := p.store.Delete(ctx, key); err != nil {
			p.logger.Error("Failed to delete credential", "key", key, "error", err)
			ok = false
		}
	}
	return ok
}

// IsLoggedIn uses locally cached credential presence as the truth signal
func (p *AppleProvider) IsLoggedIn(ctx context.Context) (bool, error) {
	state, err := p.store.Get(ctx, storage.KeyAppleAuthState)
	if errors.Is(err, storage.ErrCredentialNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if state != storage.StateLoggedIn {
		return false, nil
	}

	identity, err := p.loadIdentity(ctx)
	if err != nil {
		return false, err
	}
	return identity != nil, nil
}

// UserInfo returns the stored Apple identity
func (p *AppleProvider) UserInfo(ctx context.Context) (*Identity, error) {
	return p.loadIdentity(ctx)
}

// CheckCredentialState asks the platform whether the stored Apple id is still
// authorized. A revoked or unknown id ends the local session.
func (p *AppleProvider) CheckCredentialState(ctx context.Context) (bool, error) {
	identity, err := p.loadIdentity(ctx)
	if err != nil {
		return false, err
	}
	if identity == nil {
		return false, nil
	}
	if p.sdk == nil || !p.sdk.IsAvailable() {
		return false, providerError(KindApple, "credential_state", ErrUnavailable)
	}

	state, err := p.sdk.CredentialState(ctx, identity.ProviderID)
	if err != nil {
		return false, providerError(KindApple, "credential_state", err)
	}

	switch state {
	case AppleCredentialAuthorized:
		return true, nil
	case AppleCredentialRevoked, AppleCredentialNotFound:
		p.logger.Info("Apple credential no longer authorized, signing out", "state", state)
		p.SignOut(ctx)
		return false, nil
	default:
		// transferred: аккаунт перенесен в другую команду, сессию не трогаем
		return false, nil
	}
}

func (p *AppleProvider) saveIdentity(ctx context.Context, identity *Identity) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("failed to marshal apple identity: %w", err)
	}
	if err := p.store.Set(ctx, storage.KeyAppleUser, string(data)); err != nil {
		return err
	}
	return p.store.Set(ctx, storage.KeyAppleAuthState, storage.StateLoggedIn)
}

func (p *AppleProvider) loadIdentity(ctx context.Context) (*Identity, error) {
	data, err := p.store.Get(ctx, storage.KeyAppleUser)
	if errors.Is(err, storage.ErrCredentialNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var identity Identity
	if err := json.Unmarshal([]byte(data), &identity); err != nil {
		return nil, fmt.Errorf("failed to unmarshal apple identity: %w", err)
	}
	return &identity, nil
}

// IdentityTokenSDK is an AppleSDK for environments without the native
// authorization UI: it signs in with an identity token obtained elsewhere
// (for example by a web Sign in with Apple flow) and reads sub/email from it.
type IdentityTokenSDK struct {
	IdentityToken string
	GivenName     string
	FamilyName    string
}

var _ AppleSDK = (*IdentityTokenSDK)(nil)

type appleClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// IsAvailable implements AppleSDK
func (s *IdentityTokenSDK) IsAvailable() bool {
	return s.IdentityToken != ""
}

// SignIn decodes the identity token. The signature is verified by the backend
// that consumes it, not here.
func (s *IdentityTokenSDK) SignIn(ctx context.Context) (*AppleCredential, error) {
	var claims appleClaims
	if _, _, err := jwt.NewParser().ParseUnverified(s.IdentityToken, &claims); err != nil {
		return nil, fmt.Errorf("failed to parse apple identity token: %w", err)
	}
	if claims.Subject == "" {
		return nil, errors.New("apple identity token has no subject")
	}

	return &AppleCredential{
		User:          claims.Subject,
		Email:         claims.Email,
		GivenName:     s.GivenName,
		FamilyName:    s.FamilyName,
		IdentityToken: s.IdentityToken,
	}, nil
}

// CredentialState reports Authorized while the token has not expired
func (s *IdentityTokenSDK) CredentialState(ctx context.Context, user string) (AppleCredentialState, error) {
	var claims appleClaims
	if _, _, err := jwt.NewParser().ParseUnverified(s.IdentityToken, &claims); err != nil {
		return AppleCredentialNotFound, nil
	}
	if claims.Subject != user {
		return AppleCredentialNotFound, nil
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return AppleCredentialRevoked, nil
	}
	return AppleCredentialAuthorized, nil
}
