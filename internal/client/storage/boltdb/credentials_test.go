package boltdb

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/gophcal/internal/client/storage"
)

// создаём тестовое BoltDB хранилище учетных данных
func createTestStorage(t *testing.T) *Storage {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "credentials_test.db")

	store, err := New(context.Background(), dbPath, testSecret)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestStorage_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// До сохранения ключа нет
	_, err := store.Get(ctx, storage.KeyToken)
	assert.ErrorIs(t, err, storage.ErrCredentialNotFound)

	require.NoError(t, store.Set(ctx, storage.KeyToken, "id-token-1"))

	got, err := store.Get(ctx, storage.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "id-token-1", got)

	// Перезапись
	require.NoError(t, store.Set(ctx, storage.KeyToken, "id-token-2"))
	got, err = store.Get(ctx, storage.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "id-token-2", got)

	require.NoError(t, store.Delete(ctx, storage.KeyToken))
	_, err = store.Get(ctx, storage.KeyToken)
	assert.ErrorIs(t, err, storage.ErrCredentialNotFound)

	// Повторное удаление не ошибка
	assert.NoError(t, store.Delete(ctx, storage.KeyToken))
}

func TestStorage_SetEmptyDeletes(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.Set(ctx, storage.KeyEmail, "a@b.cd"))
	require.NoError(t, store.Set(ctx, storage.KeyEmail, ""))

	_, err := store.Get(ctx, storage.KeyEmail)
	assert.ErrorIs(t, err, storage.ErrCredentialNotFound)
}

func TestStorage_ValuesEncryptedAtRest(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	secret := "kakao-access-token-value"
	require.NoError(t, store.Set(ctx, storage.KeyKakaoToken, secret))

	err := store.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(bucketCredentials).Get([]byte(storage.KeyKakaoToken))
		require.NotNil(t, raw)
		assert.False(t, bytes.Contains(raw, []byte(secret)))
		return nil
	})
	require.NoError(t, err)
}

func TestStorage_SwappedValueRejected(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.Set(ctx, storage.KeyToken, "token-value"))

	// Переносим зашифрованное значение под другой ключ
	err := store.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketCredentials)
		raw := append([]byte(nil), b.Get([]byte(storage.KeyToken))...)
		return b.Put([]byte(storage.KeyRefreshToken), raw)
	})
	require.NoError(t, err)

	_, err = store.Get(ctx, storage.KeyRefreshToken)
	assert.ErrorContains(t, err, "failed to open credential")
}

func TestStorage_WrongSecret(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "credentials_test.db")

	store, err := New(ctx, dbPath, testSecret)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, storage.KeyEmail, "a@b.cd"))
	require.NoError(t, store.Close())

	other, err := New(ctx, dbPath, []byte("another-secret"))
	require.NoError(t, err)
	defer other.Close()

	_, err = other.Get(ctx, storage.KeyEmail)
	assert.Error(t, err)
}

func TestStorage_Closed(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "credentials_test.db")

	store, err := New(ctx, dbPath, testSecret)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = store.Get(ctx, storage.KeyToken)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	assert.ErrorIs(t, store.Set(ctx, storage.KeyToken, "x"), storage.ErrStorageClosed)
	assert.ErrorIs(t, store.Delete(ctx, storage.KeyToken), storage.ErrStorageClosed)
}
