package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrMissingUserID    GameError = "user ID is required"
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilUserRepo      GameError = "user repository cannot be nil"
	ErrNilQuestEngine   GameError = "quest engine cannot be nil"
	ErrNilScoreLedger   GameError = "score ledger cannot be nil"
	ErrNilProjector     GameError = "leaderboard projector cannot be nil"
	ErrNilProfiles      GameError = "profile manager cannot be nil"
	ErrNilOracle        GameError = "oracle service cannot be nil"
	ErrNilPenaltySignal GameError = "penalty signal cannot be nil"
	ErrNilClock         GameError = "clock cannot be nil"
)
