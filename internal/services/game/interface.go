package game

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/thirstylabs/chugline/internal/services/game Service

// Service defines the interface for drinking game session operations.
// Every mutation follows write-then-reflect: the authoritative record is
// loaded, transformed, saved once, and the saved value returned; live
// views render from the watch streams.
type Service interface {
	// EnsureUser lazily creates the caller's record on first observation
	// and applies the daily quest reset on every observation
	EnsureUser(ctx context.Context, input *EnsureUserInput) (*EnsureUserOutput, error)

	// AddDrink applies one drink add, sampling the ad-penalty signal and
	// crediting drink-quest progress
	AddDrink(ctx context.Context, input *AddDrinkInput) (*AddDrinkOutput, error)

	// Rename changes the caller's display name and credits rename-quest
	// progress
	Rename(ctx context.Context, input *RenameInput) (*RenameOutput, error)

	// GenerateTruthOrDare fetches a truth-or-dare prompt; genuine
	// generations credit quest progress, fallbacks do not
	GenerateTruthOrDare(ctx context.Context, input *GenerateTruthOrDareInput) (*GenerateTruthOrDareOutput, error)

	// GenerateDrinkSuggestion fetches a drink recipe suggestion
	GenerateDrinkSuggestion(ctx context.Context, input *GenerateDrinkSuggestionInput) (*GenerateDrinkSuggestionOutput, error)

	// GetLeaderboard projects the current standings across all records
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// WatchUser opens a live stream of the caller's own record
	WatchUser(ctx context.Context, input *WatchUserInput) (*WatchUserOutput, error)

	// WatchLeaderboard opens a live stream of leaderboard projections
	WatchLeaderboard(ctx context.Context, input *WatchLeaderboardInput) (*WatchLeaderboardOutput, error)
}
