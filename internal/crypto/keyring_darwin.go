//go:build darwin

package crypto

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// darwinKeyring keeps the invoicing database key in the macOS Keychain
// under the billfold service entry, so the key survives reinstalls and
// never sits in a config file next to the encrypted records.
type darwinKeyring struct{}

func newPlatformKeyring() Keyring {
	return &darwinKeyring{}
}

// GetKey reads the database key stored on first run
func (k *darwinKeyring) GetKey() (string, error) {
	key, err := keyring.Get(ServiceName, KeyName)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", fmt.Errorf("no database key in keychain yet: %w", err)
		}
		return "", fmt.Errorf("failed to read database key from keychain: %w", err)
	}

	if key == "" {
		return "", errors.New("keychain holds an empty database key")
	}

	return key, nil
}

// SetKey stores the database key, replacing any previous entry
func (k *darwinKeyring) SetKey(password string) error {
	if password == "" {
		return errors.New("password cannot be empty")
	}

	if err := keyring.Set(ServiceName, KeyName, password); err != nil {
		return fmt.Errorf("failed to store database key in keychain: %w", err)
	}

	return nil
}

// DeleteKey removes the stored database key. The encrypted database file
// itself is untouched; without the key it cannot be opened again.
func (k *darwinKeyring) DeleteKey() error {
	err := keyring.Delete(ServiceName, KeyName)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("no database key in keychain: %w", err)
		}
		return fmt.Errorf("failed to delete database key from keychain: %w", err)
	}

	return nil
}

// IsAvailable probes the keychain with a scratch entry, since access can be
// denied per-app even when the keychain service is running
func (k *darwinKeyring) IsAvailable() bool {
	probe := "__billfold_keychain_probe__"
	if err := keyring.Set(ServiceName, probe, "ok"); err != nil {
		return false
	}

	_ = keyring.Delete(ServiceName, probe)
	return true
}
