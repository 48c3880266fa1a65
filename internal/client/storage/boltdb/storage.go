// Package boltdb хранит учетные данные клиента в BoltDB. Значения
// шифруются XChaCha20-Poly1305 ключом, выведенным из секрета устройства.
package boltdb

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/gophcal/internal/crypto"
)

var (
	bucketCredentials = []byte("credentials")
	bucketMeta        = []byte("meta")

	metaSaltKey = []byte("salt")
)

// keyInfo HKDF context ключа шифрования учетных данных
const keyInfo = "gophcal credentials v1"

// Storage encrypted credential store on top of bbolt
type Storage struct {
	db  *bbolt.DB
	key []byte
}

// New opens (or creates) the database at dbPath. The value key is derived
// from deviceSecret and a per-database salt kept in the meta bucket, so the
// same secret opens the same file again.
func New(ctx context.Context, dbPath string, deviceSecret []byte) (*Storage, error) {
	// второй процесс с тем же файлом ждет блокировку не дольше секунды
	db, err := bbolt.Open(dbPath, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb %s: %w", dbPath, err)
	}

	var salt []byte
	if err := db.Update(func(tx *bbolt.Tx) error {
		var err error
		salt, err = prepare(tx)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, err
	}

	key, err := crypto.DeriveKey(deviceSecret, salt, keyInfo)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to derive storage key: %w", err)
	}

	return &Storage{db: db, key: key}, nil
}

// prepare creates the buckets and returns the salt, generating it on the
// first open
func prepare(tx *bbolt.Tx) ([]byte, error) {
	if _, err := tx.CreateBucketIfNotExists(bucketCredentials); err != nil {
		return nil, fmt.Errorf("create credentials bucket: %w", err)
	}
	meta, err := tx.CreateBucketIfNotExists(bucketMeta)
	if err != nil {
		return nil, fmt.Errorf("create meta bucket: %w", err)
	}

	if salt := meta.Get(metaSaltKey); salt != nil {
		return append([]byte(nil), salt...), nil
	}
	salt, err := crypto.GenerateSalt()
	if err != nil {
		return nil, err
	}
	if err := meta.Put(metaSaltKey, salt); err != nil {
		return nil, fmt.Errorf("save salt: %w", err)
	}
	return salt, nil
}

// Close closes the database. Repeated calls are no-ops.
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
