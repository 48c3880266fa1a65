package storage

import (
	"context"
	"errors"
)

var (
	// ErrCredentialNotFound nothing is stored under the key
	ErrCredentialNotFound = errors.New("credential not found")
	ErrStorageClosed      = errors.New("storage is closed")
)

//go:generate moq -out credentialstore_mock.go . CredentialStore

// CredentialStore is the secure on-device key/value store for tokens and
// serialized identities. Values are plaintext at this layer; implementations
// are responsible for sealing them at rest.
type CredentialStore interface {
	// Get returns the value stored under key.
	// Returns ErrCredentialNotFound if the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores or replaces the value under key
	Set(ctx context.Context, key, value string) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// Credential keys
const (
	KeyToken             = "token"               // Password id token
	KeyEmail             = "email"               // Password user email
	KeyRefreshToken      = "refresh_token"       // Password refresh token
	KeyAuthState         = "auth_state"          // Password token record, JSON
	KeyAppleUser         = "apple_user"          // serialized Apple identity
	KeyAppleAuthState    = "apple_auth_state"    // "loggedIn" while Apple session is active
	KeyKakaoToken        = "kakao_token"         // Kakao access token, JSON oauth2.Token
	KeyKakaoUser         = "kakao_user"          // serialized Kakao identity
	KeyKakaoAuthState    = "kakao_auth_state"    // "loggedIn" while Kakao session is active
	KeyKakaoBackendToken = "kakao_backend_token" // backend id token obtained via custom token
)

// StateLoggedIn value of *_auth_state keys for an active session
const StateLoggedIn = "loggedIn"

// AllKeys returns every key the client may persist. Used by logout to wipe the store.
func AllKeys() []string {
	return []string{
		KeyToken,
		KeyEmail,
		KeyRefreshToken,
		KeyAuthState,
		KeyAppleUser,
		KeyAppleAuthState,
		KeyKakaoToken,
		KeyKakaoUser,
		KeyKakaoAuthState,
		KeyKakaoBackendToken,
	}
}
