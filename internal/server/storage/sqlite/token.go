package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/gophcal/internal/models"
	"github.com/iudanet/gophcal/internal/server/storage"
)

const tokenColumns = `id, user_id, token_hash, expires_at, created_at`

// SaveRefreshToken stores a new refresh token
func (s *Storage) SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	// время хранится в UTC, чтобы сравнение строк в SQLite совпадало с хронологией
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO refresh_tokens (`+tokenColumns+`) VALUES (?, ?, ?, ?, ?)`,
		token.ID, token.UserID, token.TokenHash, token.ExpiresAt.UTC(), token.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("save refresh token: %w", err)
	}
	return nil
}

// ConsumeRefreshToken deletes the token and returns the deleted row
func (s *Storage) ConsumeRefreshToken(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	var t models.RefreshToken
	err := s.db.QueryRowContext(ctx,
		`DELETE FROM refresh_tokens WHERE token_hash = ? RETURNING `+tokenColumns,
		tokenHash,
	).Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, storage.ErrTokenNotFound
	case err != nil:
		return nil, fmt.Errorf("consume refresh token: %w", err)
	}
	return &t, nil
}

// RevokeUserTokens deletes all refresh tokens of the user
func (s *Storage) RevokeUserTokens(ctx context.Context, userID string) (int, error) {
	return s.deleteTokens(ctx, "revoke user tokens", `user_id = ?`, userID)
}

// PurgeExpiredTokens deletes tokens with expires_at before now
func (s *Storage) PurgeExpiredTokens(ctx context.Context, now time.Time) (int, error) {
	return s.deleteTokens(ctx, "purge expired tokens", `expires_at < ?`, now.UTC())
}

func (s *Storage) deleteTokens(ctx context.Context, op, where string, arg any) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE `+where, arg)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: rows affected: %w", op, err)
	}
	return int(n), nil
}
