package game

import (
	"github.com/thirstylabs/chugline/internal/common/clock"
	"github.com/thirstylabs/chugline/internal/models"
	"github.com/thirstylabs/chugline/internal/penalty"
	userRepo "github.com/thirstylabs/chugline/internal/repositories/user"
	"github.com/thirstylabs/chugline/internal/services/leaderboard"
	"github.com/thirstylabs/chugline/internal/services/oracle"
	"github.com/thirstylabs/chugline/internal/services/profile"
	"github.com/thirstylabs/chugline/internal/services/quest"
	"github.com/thirstylabs/chugline/internal/services/score"
)

// Config holds configuration for the game service
type Config struct {
	// Repository dependencies
	UserRepo userRepo.Repository

	// Component dependencies
	QuestEngine *quest.Engine
	ScoreLedger *score.Ledger
	Projector   *leaderboard.Projector
	Profiles    *profile.Manager
	Oracle      oracle.Service

	// PenaltySignal is sampled at drink-increment time
	PenaltySignal penalty.Signal

	Clock clock.Clock
}

// QuestCompletion reports a quest that completed during an operation,
// after its reward has been applied to the drink counter.
type QuestCompletion struct {
	// QuestID is the quest that completed
	QuestID string

	// Description is the player-facing quest text
	Description string

	// RewardPoints is the number of drinks the completion granted
	RewardPoints int
}

// EnsureUserInput contains parameters for ensuring a user record exists
type EnsureUserInput struct {
	// UserID is the stable identity of the caller
	UserID string
}

// EnsureUserOutput contains the result of ensuring a user record
type EnsureUserOutput struct {
	// Record is the authoritative record after creation/reset
	Record *models.UserRecord

	// Created indicates the record was created by this call
	Created bool
}

// AddDrinkInput contains parameters for adding a drink
type AddDrinkInput struct {
	// UserID is the stable identity of the caller
	UserID string

	// ProofMessage is the free-text proof note; surrounding whitespace is
	// trimmed and the result may be empty
	ProofMessage string
}

// AddDrinkOutput contains the result of adding a drink
type AddDrinkOutput struct {
	// Record is the saved record after the add
	Record *models.UserRecord

	// AmountAdded is how many drinks the add applied (1, or 2 under penalty)
	AmountAdded int

	// PenaltyApplied indicates the ad-penalty multiplier was active
	PenaltyApplied bool

	// QuestCompleted is set when the add completed a quest
	QuestCompleted *QuestCompletion
}

// RenameInput contains parameters for changing the display name
type RenameInput struct {
	// UserID is the stable identity of the caller
	UserID string

	// DisplayName is the requested new name
	DisplayName string
}

// RenameOutput contains the result of changing the display name
type RenameOutput struct {
	// Record is the saved record after the rename
	Record *models.UserRecord

	// QuestCompleted is set when the rename completed a quest
	QuestCompleted *QuestCompletion
}

// GenerateTruthOrDareInput contains parameters for generating a truth or dare
type GenerateTruthOrDareInput struct {
	// UserID is the stable identity of the caller
	UserID string
}

// GenerateTruthOrDareOutput contains the generated truth or dare
type GenerateTruthOrDareOutput struct {
	// Text is the generated prompt or a fallback string
	Text string

	// Fallback indicates the text is a fallback, which earns no quest credit
	Fallback bool

	// QuestCompleted is set when the generation completed a quest
	QuestCompleted *QuestCompletion
}

// GenerateDrinkSuggestionInput contains parameters for generating a drink suggestion
type GenerateDrinkSuggestionInput struct{}

// GenerateDrinkSuggestionOutput contains the generated drink suggestion
type GenerateDrinkSuggestionOutput struct {
	// Text is the generated suggestion or a fallback string
	Text string

	// Fallback indicates the text is a fallback
	Fallback bool
}

// GetLeaderboardInput contains parameters for reading the leaderboard
type GetLeaderboardInput struct{}

// GetLeaderboardOutput contains the projected standings
type GetLeaderboardOutput struct {
	Entries []*models.LeaderboardEntry
}

// WatchUserInput contains parameters for watching the caller's record
type WatchUserInput struct {
	// UserID is the stable identity of the caller
	UserID string
}

// WatchUserOutput contains the stream of record events
type WatchUserOutput struct {
	Events <-chan *userRepo.UserEvent
}

// LeaderboardEvent is one delivery on a leaderboard subscription. Exactly
// one of Entries or Err is set.
type LeaderboardEvent struct {
	Entries []*models.LeaderboardEntry
	Err     error
}

// WatchLeaderboardInput contains parameters for watching the leaderboard
type WatchLeaderboardInput struct{}

// WatchLeaderboardOutput contains the stream of leaderboard projections
type WatchLeaderboardOutput struct {
	Events <-chan *LeaderboardEvent
}
