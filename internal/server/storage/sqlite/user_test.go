package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophcal/internal/models"
	"github.com/iudanet/gophcal/internal/server/storage"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	// Используем in-memory database для тестов
	s, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = s.Close()
	}

	return s, cleanup
}

func newPasswordUser(email string) *models.User {
	now := time.Now().UTC().Truncate(time.Second)
	return &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		DisplayName:  "Test User",
		PasswordHash: "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		Provider:     models.ProviderPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func createTestUser(t *testing.T, ctx context.Context, s *Storage) string {
	user := newPasswordUser("user_" + uuid.New().String()[:8] + "@example.com")
	require.NoError(t, s.CreateUser(ctx, user))
	return user.ID
}

func TestUserStorage_CreateUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := newPasswordUser("alice@example.com")
	require.NoError(t, s.CreateUser(ctx, user))

	retrieved, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, retrieved.ID)
	assert.Equal(t, "alice@example.com", retrieved.Email)
	assert.Equal(t, "Test User", retrieved.DisplayName)
	assert.Equal(t, user.PasswordHash, retrieved.PasswordHash)
	assert.Equal(t, models.ProviderPassword, retrieved.Provider)
	assert.True(t, user.CreatedAt.Equal(retrieved.CreatedAt))
}

func TestUserStorage_CreateUser_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	require.NoError(t, s.CreateUser(ctx, newPasswordUser("dup@example.com")))

	// email сравнивается без учета регистра
	err := s.CreateUser(ctx, newPasswordUser("DUP@example.com"))
	assert.ErrorIs(t, err, storage.ErrUserAlreadyExists)
}

func TestUserStorage_UsersWithoutEmail(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	// несколько пользователей Kakao без email не конфликтуют
	for _, id := range []string{"kakao_1", "kakao_2"} {
		user := newPasswordUser("")
		user.ID = id
		user.Provider = models.ProviderKakao
		user.PasswordHash = ""
		require.NoError(t, s.CreateUser(ctx, user))
	}

	retrieved, err := s.GetUserByID(ctx, "kakao_2")
	require.NoError(t, err)
	assert.Empty(t, retrieved.Email)
}

func TestUserStorage_GetUserByEmail(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := newPasswordUser("bob@example.com")
	require.NoError(t, s.CreateUser(ctx, user))

	tests := []struct {
		wantErr error
		name    string
		email   string
		wantID  string
	}{
		{name: "exact", email: "bob@example.com", wantID: user.ID},
		{name: "case insensitive", email: "Bob@Example.com", wantID: user.ID},
		{name: "missing", email: "nobody@example.com", wantErr: storage.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.GetUserByEmail(ctx, tt.email)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestUserStorage_GetUserByID_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.GetUserByID(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestUserStorage_UpsertUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := &models.User{
		ID:          "kakao_42",
		DisplayName: "Kim",
		Provider:    models.ProviderKakao,
		PhotoURL:    "https://img.example/1.png",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, s.UpsertUser(ctx, user))

	updated := *user
	updated.DisplayName = "Kim Minji"
	updated.Email = "minji@example.com"
	updated.CreatedAt = time.Now().Add(time.Hour)
	require.NoError(t, s.UpsertUser(ctx, &updated))

	retrieved, err := s.GetUserByID(ctx, "kakao_42")
	require.NoError(t, err)
	assert.Equal(t, "Kim Minji", retrieved.DisplayName)
	assert.Equal(t, "minji@example.com", retrieved.Email)
	assert.Equal(t, models.ProviderKakao, retrieved.Provider)
	// время создания не переписывается
	assert.WithinDuration(t, user.CreatedAt, retrieved.CreatedAt, time.Second)
}

func TestStorage_Ping(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	assert.NoError(t, s.Ping(context.Background()))
}
