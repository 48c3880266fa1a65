package storage

import (
	"context"
	"errors"
	"time"

	"github.com/iudanet/gophcal/internal/models"
)

// ErrTokenNotFound refresh token отсутствует или уже использован
var ErrTokenNotFound = errors.New("refresh token not found")

// TokenStorage хранит refresh tokens. В базу попадает только SHA-256 хеш.
type TokenStorage interface {
	SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error

	// ConsumeRefreshToken atomically removes the token and returns what was
	// stored. Of two concurrent calls with the same hash exactly one succeeds,
	// the other gets ErrTokenNotFound.
	ConsumeRefreshToken(ctx context.Context, tokenHash string) (*models.RefreshToken, error)

	// RevokeUserTokens drops every token of the user, returns how many
	RevokeUserTokens(ctx context.Context, userID string) (int, error)

	// PurgeExpiredTokens drops tokens that expired before now
	PurgeExpiredTokens(ctx context.Context, now time.Time) (int, error)
}
