// Package jwt issues and validates the tokens of the calendar backend: ID
// tokens (HS256 JWT), custom tokens minted for external identity providers
// and opaque refresh tokens.
package jwt

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

const (
	issuer = "gophcal"

	audienceID     = "gophcal"
	audienceCustom = "gophcal-custom"

	// DefaultCustomTokenTTL custom tokens only bridge the provider login
	// and the custom sign-in call
	DefaultCustomTokenTTL = 10 * time.Minute
)

// ErrInvalidToken токен не прошел проверку (подпись, срок, назначение)
var ErrInvalidToken = errors.New("invalid token")

// Claims represents JWT claims of an ID token
type Claims struct {
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"name,omitempty"`
	Provider    string `json:"provider,omitempty"`
	gojwt.RegisteredClaims
}

// UserID returns the subject of the token
func (c *Claims) UserID() string {
	return c.Subject
}

// Config содержит конфигурацию для JWT
type Config struct {
	Secret          []byte
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	CustomTokenTTL  time.Duration
}

// Service provides JWT token generation and validation
type Service struct {
	now func() time.Time
	cfg Config
}

// NewService creates a new JWT service.
// Secret should be a cryptographically secure random string.
func NewService(cfg Config) *Service {
	if cfg.CustomTokenTTL <= 0 {
		cfg.CustomTokenTTL = DefaultCustomTokenTTL
	}
	return &Service{cfg: cfg, now: time.Now}
}

// IssueIDToken создает ID token пользователя.
// Возвращает токен и время жизни в секундах.
func (s *Service) IssueIDToken(userID, email, displayName, provider string) (string, int64, error) {
	now := s.now()

	claims := Claims{
		Email:       email,
		DisplayName: displayName,
		Provider:    provider,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   userID,
			Audience:  gojwt.ClaimStrings{audienceID},
			ExpiresAt: gojwt.NewNumericDate(now.Add(s.cfg.AccessTokenTTL)),
			IssuedAt:  gojwt.NewNumericDate(now),
			NotBefore: gojwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}

	token, err := s.sign(claims)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create id token: %w", err)
	}

	return token, int64(s.cfg.AccessTokenTTL.Seconds()), nil
}

// ValidateIDToken validates and parses an ID token
func (s *Service) ValidateIDToken(token string) (*Claims, error) {
	return s.parse(token, audienceID)
}

// IssueCustomToken создает короткоживущий custom token для uid, проверенного
// внешним провайдером. Клиент обменивает его на пару токенов.
func (s *Service) IssueCustomToken(userID string) (string, error) {
	now := s.now()

	claims := Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   userID,
			Audience:  gojwt.ClaimStrings{audienceCustom},
			ExpiresAt: gojwt.NewNumericDate(now.Add(s.cfg.CustomTokenTTL)),
			IssuedAt:  gojwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}

	token, err := s.sign(claims)
	if err != nil {
		return "", fmt.Errorf("failed to create custom token: %w", err)
	}
	return token, nil
}

// ValidateCustomToken validates a custom token and returns its claims
func (s *Service) ValidateCustomToken(token string) (*Claims, error) {
	return s.parse(token, audienceCustom)
}

// GenerateRefreshToken создает новый случайный refresh token
func (s *Service) GenerateRefreshToken() (string, time.Time, error) {
	// Генерируем случайные 32 байта
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate random token: %w", err)
	}

	token := base64.RawURLEncoding.EncodeToString(tokenBytes)
	expiresAt := s.now().Add(s.cfg.RefreshTokenTTL)

	return token, expiresAt, nil
}

func (s *Service) sign(claims Claims) (string, error) {
	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.cfg.Secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *Service) parse(token, audience string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := gojwt.ParseWithClaims(token, claims, func(t *gojwt.Token) (any, error) {
		return s.cfg.Secret, nil
	},
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithAudience(audience),
		gojwt.WithIssuer(issuer),
		gojwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
