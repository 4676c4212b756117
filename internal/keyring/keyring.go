package keyring

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/lifelog-cli/internal/auth"
	"github.com/julianstephens/lifelog-cli/internal/constants"
)

var (
	// ErrNotFound is returned when no session is stored in the keyring
	ErrNotFound = errors.New("session not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetSession retrieves the stored session from the OS keyring.
// Returns ErrNotFound when no session is stored.
func GetSession() (auth.Session, error) {
	raw, err := keyring.Get(constants.AppName, constants.KeyringSessionUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return auth.Session{}, ErrNotFound
		}
		return auth.Session{}, fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}

	var session auth.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return auth.Session{}, fmt.Errorf("failed to parse stored session: %w", err)
	}
	return session, nil
}

// SetSession stores the session in the OS keyring
func SetSession(session auth.Session) error {
	if session.Token == "" {
		return errors.New("session token cannot be empty")
	}
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}
	if err := keyring.Set(constants.AppName, constants.KeyringSessionUser, string(raw)); err != nil {
		return fmt.Errorf("failed to store session in keyring: %w", err)
	}
	return nil
}

// DeleteSession removes the stored session from the OS keyring
func DeleteSession() error {
	err := keyring.Delete(constants.AppName, constants.KeyringSessionUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete session from keyring: %w", err)
	}
	return nil
}

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check and may not catch all failure scenarios.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || err == keyring.ErrNotFound
}
