package user

import (
	"context"

	"github.com/thirstylabs/chugline/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/thirstylabs/chugline/internal/repositories/user Repository

// Repository defines the interface for user record persistence and
// live change subscriptions.
type Repository interface {
	// SaveUser persists a user record and notifies watchers
	SaveUser(ctx context.Context, input *SaveUserInput) error

	// GetUser retrieves a user record by ID
	GetUser(ctx context.Context, input *GetUserInput) (*models.UserRecord, error)

	// ListUsers retrieves every user record in the collection
	ListUsers(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error)

	// WatchUser opens a live subscription to a single user record. The
	// stream emits the current record first (if it exists), then one event
	// per change, until the context is canceled.
	WatchUser(ctx context.Context, input *WatchUserInput) (*WatchUserOutput, error)

	// WatchAll opens a live subscription to the full collection. The
	// stream emits the current collection first, then a fresh snapshot
	// after every change, until the context is canceled.
	WatchAll(ctx context.Context, input *WatchAllInput) (*WatchAllOutput, error)
}
