package auth

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophcal/internal/client/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newMemoryStore returns a CredentialStoreMock backed by a map
func newMemoryStore() (*storage.CredentialStoreMock, map[string]string) {
	var mu sync.Mutex
	data := make(map[string]string)

	return &storage.CredentialStoreMock{
		GetFunc: func(ctx context.Context, key string) (string, error) {
			mu.Lock()
			defer mu.Unlock()
			v, ok := data[key]
			if !ok {
				return "", storage.ErrCredentialNotFound
			}
			return v, nil
		},
		SetFunc: func(ctx context.Context, key, value string) error {
			mu.Lock()
			defer mu.Unlock()
			if value == "" {
				delete(data, key)
				return nil
			}
			data[key] = value
			return nil
		},
		DeleteFunc: func(ctx context.Context, key string) error {
			mu.Lock()
			defer mu.Unlock()
			delete(data, key)
			return nil
		},
	}, data
}

// signedToken returns an HS256 JWT expiring at exp
func signedToken(t *testing.T, subject string, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

// fakeProvider returns a ProviderMock with a fixed login state
func fakeProvider(kind Kind, loggedIn bool, identity *Identity) *ProviderMock {
	return &ProviderMock{
		KindFunc: func() Kind { return kind },
		IsLoggedInFunc: func(ctx context.Context) (bool, error) {
			return loggedIn, nil
		},
		UserInfoFunc: func(ctx context.Context) (*Identity, error) {
			if !loggedIn {
				return nil, nil
			}
			return identity, nil
		},
		SignOutFunc: func(ctx context.Context) bool { return true },
		SignInFunc: func(ctx context.Context, creds Credentials) Result {
			return success(identity)
		},
	}
}

// fakePassword returns a PasswordProviderMock with a fixed login state and token
func fakePassword(loggedIn bool, identity *Identity, token string) *PasswordProviderMock {
	return &PasswordProviderMock{
		KindFunc: func() Kind { return KindPassword },
		IsLoggedInFunc: func(ctx context.Context) (bool, error) {
			return loggedIn, nil
		},
		UserInfoFunc: func(ctx context.Context) (*Identity, error) {
			if !loggedIn {
				return nil, nil
			}
			return identity, nil
		},
		SignOutFunc: func(ctx context.Context) bool { return true },
		SignInFunc: func(ctx context.Context, creds Credentials) Result {
			return success(identity)
		},
		SignUpFunc: func(ctx context.Context, creds Credentials) Result {
			return success(identity)
		},
		IDTokenFunc: func(ctx context.Context, force bool) (string, error) {
			if !loggedIn {
				return "", ErrNotSignedIn
			}
			return token, nil
		},
		OnAuthStateChangedFunc: func(fn func(loggedIn bool)) func() {
			return func() {}
		},
	}
}
