// Secret storage backed by the operating system's native keyring
// (Linux: Secret Service, macOS: Keychain, Windows: Credential Manager).
// The plaintext config file is the fallback for systems without one.
package config

import "github.com/zalando/go-keyring"

const (
	keyringService = "ghostwriter"
	keyringKey     = "openai_secret_key"
)

// StoreSecret saves the service credential to the OS keyring.
func StoreSecret(value string) error {
	return keyring.Set(keyringService, keyringKey, value)
}

// DeleteSecret removes the service credential from the OS keyring.
func DeleteSecret() error {
	return keyring.Delete(keyringService, keyringKey)
}

// KeyringAvailable checks if the OS keyring is accessible.
func KeyringAvailable() bool {
	testKey := "__ghostwriter_test__"
	if err := keyring.Set(keyringService, testKey, "test"); err != nil {
		return false
	}
	_ = keyring.Delete(keyringService, testKey)
	return true
}

// keyringSecret retrieves the credential from the OS keyring.
// Returns empty string if not found.
func keyringSecret() string {
	val, err := keyring.Get(keyringService, keyringKey)
	if err != nil {
		return ""
	}
	return val
}
