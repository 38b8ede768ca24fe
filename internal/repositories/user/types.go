package user

import "github.com/thirstylabs/chugline/internal/models"

// SaveUserInput contains parameters for saving a user record
type SaveUserInput struct {
	Record *models.UserRecord
}

// GetUserInput contains parameters for retrieving a user record
type GetUserInput struct {
	UserID string
}

// ListUsersInput contains parameters for listing all user records
type ListUsersInput struct{}

// ListUsersOutput contains the result of listing all user records
type ListUsersOutput struct {
	Records []*models.UserRecord
}

// UserEvent is one delivery on a single-record subscription. Exactly one
// of Record or Err is set.
type UserEvent struct {
	Record *models.UserRecord
	Err    error
}

// CollectionEvent is one delivery on a full-collection subscription.
// Exactly one of Records or Err is set.
type CollectionEvent struct {
	Records []*models.UserRecord
	Err     error
}

// WatchUserInput contains parameters for watching a single user record
type WatchUserInput struct {
	UserID string
}

// WatchUserOutput contains the stream of events for a single user record
type WatchUserOutput struct {
	Events <-chan *UserEvent
}

// WatchAllInput contains parameters for watching the full collection
type WatchAllInput struct{}

// WatchAllOutput contains the stream of events for the full collection
type WatchAllOutput struct {
	Events <-chan *CollectionEvent
}
