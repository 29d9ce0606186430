package credential

import (
	"fmt"

	"github.com/99designs/keyring"
)

const serviceName = "avicontrol"

// openKeyring returns a configured keyring instance.
func openKeyring() (keyring.Keyring, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: serviceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		FileDir:                  "~/.config/avicontrol/credentials",
		FilePasswordFunc:         keyring.FixedStringPrompt("avicontrol-file-key"),
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening keyring: %w", err)
	}
	return ring, nil
}

// Get retrieves a credential value by key from the system keyring.
func Get(key string) (string, error) {
	ring, err := openKeyring()
	if err != nil {
		return "", err
	}

	item, err := ring.Get(key)
	if err != nil {
		return "", fmt.Errorf("getting credential %q: %w", key, err)
	}

	return string(item.Data), nil
}

// Set stores a credential value by key in the system keyring.
func Set(key string, value string) error {
	ring, err := openKeyring()
	if err != nil {
		return err
	}

	err = ring.Set(keyring.Item{
		Key:  key,
		Data: []byte(value),
	})
	if err != nil {
		return fmt.Errorf("setting credential %q: %w", key, err)
	}

	return nil
}

// Delete removes a credential by key from the system keyring.
func Delete(key string) error {
	ring, err := openKeyring()
	if err != nil {
		return err
	}

	err = ring.Remove(key)
	if err != nil {
		return fmt.Errorf("deleting credential %q: %w", key, err)
	}

	return nil
}

// apiTokenKey is the keyring entry holding the backend bearer token.
const apiTokenKey = "api-token"

// APIToken returns the stored backend token. An empty string means the
// backend is reachable without authentication (the common deployment).
func APIToken() string {
	token, err := Get(apiTokenKey)
	if err != nil {
		return ""
	}
	return token
}

// SetAPIToken stores the backend bearer token in the system keyring.
func SetAPIToken(value string) error {
	return Set(apiTokenKey, value)
}

// DeleteAPIToken removes the stored backend bearer token.
func DeleteAPIToken() error {
	return Delete(apiTokenKey)
}
