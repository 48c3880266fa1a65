package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService() *Service {
	return NewService(Config{
		Secret:          []byte("test-secret-key-for-jwt-signing"),
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 30 * 24 * time.Hour,
	})
}

func TestService_IDToken(t *testing.T) {
	s := testService()

	token, expiresIn, err := s.IssueIDToken("uid-1", "alice@example.com", "Alice", "password")
	require.NoError(t, err)
	assert.Equal(t, int64(3600), expiresIn)

	claims, err := s.ValidateIDToken(token)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", claims.UserID())
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "Alice", claims.DisplayName)
	assert.Equal(t, "password", claims.Provider)

	// клиент читает срок жизни из стандартного claim exp
	var registered gojwt.RegisteredClaims
	_, _, err = gojwt.NewParser().ParseUnverified(token, &registered)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), registered.ExpiresAt.Time, 5*time.Second)
}

func TestService_ValidateIDToken_Errors(t *testing.T) {
	s := testService()

	valid, _, err := s.IssueIDToken("uid-1", "", "", "password")
	require.NoError(t, err)
	custom, err := s.IssueCustomToken("kakao_1")
	require.NoError(t, err)

	expired := testService()
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, _, err := expired.IssueIDToken("uid-1", "", "", "password")
	require.NoError(t, err)

	other := NewService(Config{Secret: []byte("another-secret"), AccessTokenTTL: time.Hour})
	foreign, _, err := other.IssueIDToken("uid-1", "", "", "password")
	require.NoError(t, err)

	none := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.RegisteredClaims{Subject: "uid-1"})
	unsigned, err := none.SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not.a.jwt"},
		{name: "expired", token: expiredToken},
		{name: "wrong secret", token: foreign},
		{name: "custom token used as id token", token: custom},
		{name: "alg none", token: unsigned},
		{name: "tampered", token: valid + "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.ValidateIDToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestService_CustomToken(t *testing.T) {
	s := testService()

	token, err := s.IssueCustomToken("kakao_42")
	require.NoError(t, err)

	claims, err := s.ValidateCustomToken(token)
	require.NoError(t, err)
	assert.Equal(t, "kakao_42", claims.UserID())

	idToken, _, err := s.IssueIDToken("uid-1", "", "", "password")
	require.NoError(t, err)
	_, err = s.ValidateCustomToken(idToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	later := testService()
	later.now = func() time.Time { return time.Now().Add(DefaultCustomTokenTTL + time.Minute) }
	_, err = later.ValidateCustomToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_GenerateRefreshToken(t *testing.T) {
	s := testService()

	first, expiresAt, err := s.GenerateRefreshToken()
	require.NoError(t, err)
	second, _, err := s.GenerateRefreshToken()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Len(t, first, 43)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), expiresAt, 5*time.Second)
}
