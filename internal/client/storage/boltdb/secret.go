package boltdb

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/iudanet/gophcal/internal/crypto"
)

// ErrWeakSecret файл секрета устройства слишком короткий
var ErrWeakSecret = errors.New("device secret is too short")

// LoadDeviceSecret reads the device secret from path, creating a random one
// (mode 0600) on first use. The secret never leaves the device.
func LoadDeviceSecret(path string) ([]byte, error) {
	secret, err := os.ReadFile(path)
	if err == nil {
		if len(secret) < crypto.SaltSize {
			return nil, fmt.Errorf("%w: %s has %d bytes", ErrWeakSecret, path, len(secret))
		}
		return secret, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read device secret: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	secret, err = crypto.GenerateSalt()
	if err != nil {
		return nil, err
	}

	// O_EXCL: параллельный запуск не перезапишет уже созданный секрет
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if errors.Is(err, fs.ErrExist) {
		return LoadDeviceSecret(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create device secret: %w", err)
	}
	if _, err := f.Write(secret); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to write device secret: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to write device secret: %w", err)
	}

	return secret, nil
}
