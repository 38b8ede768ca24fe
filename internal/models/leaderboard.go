package models

// LeaderboardEntry is one row of the projected leaderboard.
type LeaderboardEntry struct {
	// UserID is the stable identity of the player
	UserID string `json:"userId"`

	// DisplayName is the player's current display name
	DisplayName string `json:"displayName"`

	// Drinks is the player's drink count
	Drinks int `json:"drinks"`

	// LastProofMessage is the player's most recent proof note
	LastProofMessage string `json:"lastProofMessage"`

	// Rank is the 1-based position in the projection
	Rank int `json:"rank"`
}
