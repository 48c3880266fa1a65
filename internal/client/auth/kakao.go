package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/oauth2"

	clientapi "github.com/iudanet/gophcal/internal/client/api"
	"github.com/iudanet/gophcal/internal/client/storage"
	pkgapi "github.com/iudanet/gophcal/pkg/api"
)

//go:generate moq -out kakaosdk_mock.go . KakaoSDK CustomTokenMinter

// KakaoSDK Kakao login API of the platform
type KakaoSDK interface {
	// Login runs the Kakao login flow. Returns ErrCanceled if the user aborts.
	Login(ctx context.Context) (*oauth2.Token, error)

	// Logout expires the Kakao tokens
	Logout(ctx context.Context, token *oauth2.Token) error
}

// CustomTokenMinter backend RPC that exchanges a Kakao access token for a
// custom token, and the sign-in with that custom token
type CustomTokenMinter interface {
	CreateCustomToken(ctx context.Context, accessToken string) (*pkgapi.CreateCustomTokenResponse, error)
	SignInWithCustomToken(ctx context.Context, customToken string) (*pkgapi.TokenResponse, error)
}

var _ CustomTokenMinter = (*clientapi.Client)(nil)

// backendToken backend id token obtained through the custom token
type backendToken struct {
	ExpiresAt time.Time `json:"expires_at"`
	IDToken   string    `json:"id_token"`
	UID       string    `json:"uid"`
}

// KakaoProvider Kakao login adapter. After the SDK login the backend mints a
// custom token, which is exchanged for a backend id token used as bearer.
type KakaoProvider struct {
	sdk    KakaoSDK
	minter CustomTokenMinter
	store  storage.CredentialStore
	logger *slog.Logger
	now    func() time.Time

	// serializes re-minting of the backend token
	mintMu sync.Mutex
}

var (
	_ Provider     = (*KakaoProvider)(nil)
	_ BearerSource = (*KakaoProvider)(nil)
)

// NewKakaoProvider creates the Kakao provider
func NewKakaoProvider(sdk KakaoSDK, minter CustomTokenMinter, store storage.CredentialStore, logger *slog.Logger) *KakaoProvider {
	return &KakaoProvider{
		sdk:    sdk,
		minter: minter,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Kind implements Provider
func (p *KakaoProvider) Kind() Kind {
	return KindKakao
}

// SignIn runs the Kakao login, mints a custom token and signs in to the backend
func (p *KakaoProvider) SignIn(ctx context.Context, _ Credentials) Result {
	if p.sdk == nil {
		return failure(providerError(KindKakao, "signin", ErrUnavailable), "Kakao login is not available.")
	}

	// 1. Логин через Kakao SDK
	token, err := p.sdk.Login(ctx)
	if errors.Is(err, ErrCanceled) {
		return failure(providerError(KindKakao, "signin", err), "Kakao login was canceled.")
	}
	if err != nil {
		p.logger.Warn("Kakao login failed", "error", err)
		return failure(providerError(KindKakao, "signin", err), "Kakao login failed. Please try again.")
	}

	// 2. Обмениваем access token на custom token и backend token
	minted, backend, err := p.mint(ctx, token)
	if err != nil {
		p.logger.Warn("Kakao custom token exchange failed", "error", err)
		// Kakao сессия без backend токена бесполезна, выходим из Kakao
		if logoutErr := p.sdk.Logout(ctx, token); logoutErr != nil {
			p.logger.Debug("Kakao logout after failed exchange", "error", logoutErr)
		}
		return failure(providerError(KindKakao, "signin", err), mintMessage(err))
	}

	// 3. Сохраняем профиль и токены
	identity := &Identity{
		Kind:          KindKakao,
		ProviderID:    strconv.FormatInt(minted.User.KakaoID, 10),
		UID:           minted.User.UID,
		Nickname:      minted.User.DisplayName,
		Email:         minted.User.Email,
		PhotoURL:      minted.User.PhotoURL,
		RawCredential: token.AccessToken,
	}
	identity.DisplayName = ResolveDisplayName(identity)

	if err := p.saveSession(ctx, token, backend, identity); err != nil {
		p.logger.Error("Failed to persist Kakao session", "error", err)
		return failure(providerError(KindKakao, "signin", err), "Could not save the session on this device.")
	}

	return success(identity)
}

// SignOut logs out of Kakao (best effort) and clears the stored session
func (p *KakaoProvider) SignOut(ctx context.Context) bool {
	if token, err := p.loadKakaoToken(ctx); err == nil && token != nil && p.sdk != nil {
		if err := p.sdk.Logout(ctx, token); err != nil {
			p.logger.Warn("Kakao logout failed", "error", err)
		}
	}

	ok := true
	for _, key := range []string{storage.KeyKakaoToken, storage.KeyKakaoUser, storage.KeyKakaoAuthState, storage.KeyKakaoBackendToken} {
		if err := p.store.Delete(ctx, key); err != nil {
			p.logger.Error("Failed to delete credential", "key", key, "error", err)
			ok = false
		}
	}
	return ok
}

// IsLoggedIn uses locally cached credential presence as the truth signal
func (p *KakaoProvider) IsLoggedIn(ctx context.Context) (bool, error) {
	state, err := p.store.Get(ctx, storage.KeyKakaoAuthState)
	if errors.Is(err, storage.ErrCredentialNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if state != storage.StateLoggedIn {
		return false, nil
	}

	identity, err := p.UserInfo(ctx)
	if err != nil {
		return false, err
	}
	return identity != nil, nil
}

// UserInfo returns the stored Kakao identity
func (p *KakaoProvider) UserInfo(ctx context.Context) (*Identity, error) {
	data, err := p.store.Get(ctx, storage.KeyKakaoUser)
	if errors.Is(err, storage.ErrCredentialNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var identity Identity
	if err := json.Unmarshal([]byte(data), &identity); err != nil {
		return nil, fmt.Errorf("failed to unmarshal kakao identity: %w", err)
	}
	return &identity, nil
}

// BearerToken returns the backend id token of the Kakao user, minting a new
// one from the stored Kakao access token when it has expired
func (p *KakaoProvider) BearerToken(ctx context.Context) (string, error) {
	p.mintMu.Lock()
	defer p.mintMu.Unlock()

	if backend, err := p.loadBackendToken(ctx); err == nil && backend != nil {
		if p.now().Add(tokenSkew).Before(backend.ExpiresAt) {
			return backend.IDToken, nil
		}
	}

	token, err := p.loadKakaoToken(ctx)
	if err != nil {
		return "", providerError(KindKakao, "token", err)
	}
	if token == nil {
		return "", providerError(KindKakao, "token", ErrNotSignedIn)
	}
	if !token.Valid() {
		return "", providerError(KindKakao, "token", errors.New("kakao access token expired, sign in again"))
	}

	_, backend, err := p.mint(ctx, token)
	if err != nil {
		return "", providerError(KindKakao, "token", err)
	}

	data, err := json.Marshal(backend)
	if err != nil {
		return "", fmt.Errorf("failed to marshal backend token: %w", err)
	}
	if err := p.store.Set(ctx, storage.KeyKakaoBackendToken, string(data)); err != nil {
		p.logger.Warn("Failed to persist backend token", "error", err)
	}

	return backend.IDToken, nil
}

func (p *KakaoProvider) mint(ctx context.Context, token *oauth2.Token) (*pkgapi.CreateCustomTokenResponse, *backendToken, error) {
	if p.minter == nil {
		return nil, nil, errors.New("custom token minter not configured")
	}

	minted, err := p.minter.CreateCustomToken(ctx, token.AccessToken)
	if err != nil {
		return nil, nil, err
	}
	if !minted.Success || minted.CustomToken == "" {
		return nil, nil, errors.New("custom token was not issued")
	}

	resp, err := p.minter.SignInWithCustomToken(ctx, minted.CustomToken)
	if err != nil {
		return nil, nil, err
	}

	now := p.now()
	backend := &backendToken{
		IDToken:   resp.IDToken,
		UID:       resp.UID,
		ExpiresAt: tokenExpiry(resp.IDToken, now, resp.ExpiresIn),
	}
	return minted, backend, nil
}

func (p *KakaoProvider) saveSession(ctx context.Context, token *oauth2.Token, backend *backendToken, identity *Identity) error {
	tokenData, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal kakao token: %w", err)
	}
	backendData, err := json.Marshal(backend)
	if err != nil {
		return fmt.Errorf("failed to marshal backend token: %w", err)
	}
	identityData, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("failed to marshal kakao identity: %w", err)
	}

	values := []struct{ key, value string }{
		{storage.KeyKakaoToken, string(tokenData)},
		{storage.KeyKakaoBackendToken, string(backendData)},
		{storage.KeyKakaoUser, string(identityData)},
		{storage.KeyKakaoAuthState, storage.StateLoggedIn},
	}
	for _, v := range values {
		if err := p.store.Set(ctx, v.key, v.value); err != nil {
			return fmt.Errorf("failed to save %s: %w", v.key, err)
		}
	}
	return nil
}

func (p *KakaoProvider) loadKakaoToken(ctx context.Context) (*oauth2.Token, error) {
	data, err := p.store.Get(ctx, storage.KeyKakaoToken)
	if errors.Is(err, storage.ErrCredentialNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var token oauth2.Token
	if err := json.Unmarshal([]byte(data), &token); err != nil {
		return nil, fmt.Errorf("failed to unmarshal kakao token: %w", err)
	}
	return &token, nil
}

func (p *KakaoProvider) loadBackendToken(ctx context.Context) (*backendToken, error) {
	data, err := p.store.Get(ctx, storage.KeyKakaoBackendToken)
	if err != nil {
		return nil, err
	}

	var backend backendToken
	if err := json.Unmarshal([]byte(data), &backend); err != nil {
		return nil, fmt.Errorf("failed to unmarshal backend token: %w", err)
	}
	return &backend, nil
}

// mintMessage maps custom token RPC failures to user facing messages
func mintMessage(err error) string {
	se, ok := clientapi.AsStatusError(err)
	if !ok {
		return "Kakao login failed. Please check your connection and try again."
	}
	switch se.StatusCode {
	case http.StatusUnauthorized:
		return "Invalid Kakao access token."
	case http.StatusForbidden:
		return "Kakao API permission denied."
	default:
		return "Kakao login failed: server error."
	}
}
