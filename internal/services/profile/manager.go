package profile

import (
	"fmt"
	"strings"

	"github.com/thirstylabs/chugline/internal/models"
)

// ProfileError is a custom error type for profile-related errors
type ProfileError string

// Error implements the error interface
func (e ProfileError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrEmptyDisplayName ProfileError = "display name cannot be empty"
)

// defaultNamePrefixLen is how much of the user id seeds the default name
const defaultNamePrefixLen = 6

// Manager owns the mutable display name on a user record.
type Manager struct{}

// New creates a new profile manager
func New() *Manager {
	return &Manager{}
}

// DefaultDisplayName derives the record-creation display name from the
// identity. It is never regenerated after creation.
func (m *Manager) DefaultDisplayName(userID string) string {
	prefix := userID
	if len(prefix) > defaultNamePrefixLen {
		prefix = prefix[:defaultNamePrefixLen]
	}
	return fmt.Sprintf("Anonymous User %s", prefix)
}

// Rename sets the display name to the trimmed value. Empty or
// whitespace-only names are rejected and the record is left unchanged.
func (m *Manager) Rename(record *models.UserRecord, newName string) error {
	trimmed := strings.TrimSpace(newName)
	if trimmed == "" {
		return ErrEmptyDisplayName
	}

	record.DisplayName = trimmed
	return nil
}
