package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/gophcal/internal/client/storage"
	"github.com/iudanet/gophcal/internal/crypto"
)

var _ storage.CredentialStore = (*Storage)(nil)

// Get retrieves and decrypts the value stored under key
func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	if s.db == nil {
		return "", storage.ErrStorageClosed
	}

	var sealed []byte

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCredentials)
		if bucket == nil {
			return fmt.Errorf("credentials bucket not found")
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return storage.ErrCredentialNotFound
		}

		// bbolt отдает срез, валидный только внутри транзакции
		sealed = append([]byte(nil), data...)
		return nil
	})
	if err != nil {
		return "", err
	}

	plaintext, err := crypto.Decrypt(sealed, s.key, []byte(key))
	if err != nil {
		return "", fmt.Errorf("failed to open credential %q: %w", key, err)
	}

	return string(plaintext), nil
}

// Set encrypts and stores the value under key.
// Empty value is equivalent to Delete.
func (s *Storage) Set(ctx context.Context, key, value string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if value == "" {
		return s.Delete(ctx, key)
	}

	// Имя ключа идет в additional data, чтобы значение нельзя было переставить под другой ключ
	sealed, err := crypto.Encrypt([]byte(value), s.key, []byte(key))
	if err != nil {
		return fmt.Errorf("failed to seal credential %q: %w", key, err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCredentials)
		if bucket == nil {
			return fmt.Errorf("credentials bucket not found")
		}

		if err := bucket.Put([]byte(key), sealed); err != nil {
			return fmt.Errorf("failed to save credential: %w", err)
		}

		return nil
	})
}

// Delete removes the key. Absent keys are ignored.
func (s *Storage) Delete(ctx context.Context, key string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCredentials)
		if bucket == nil {
			return fmt.Errorf("credentials bucket not found")
		}

		if err := bucket.Delete([]byte(key)); err != nil {
			return fmt.Errorf("failed to delete credential: %w", err)
		}

		return nil
	})
}
