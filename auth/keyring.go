// Package auth provides a high-level API for persisting and retrieving provider credentials from the system keyring.
package auth

import (
	"github.com/zalando/go-keyring"
)

const (
	service = "radiosan-cli"
	user    = "tunein-password"
)

// SetPassword persists the TuneIn account password to the system keyring.
func SetPassword(password string) error {
	return keyring.Set(service, user, password)
}

// GetPassword retrieves the TuneIn account password from the system keyring.
func GetPassword() (string, error) {
	return keyring.Get(service, user)
}

// DeletePassword removes the TuneIn account password from the system keyring.
func DeletePassword() error {
	return keyring.Delete(service, user)
}
