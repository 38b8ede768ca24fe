package leaderboard

import (
	"sort"

	"github.com/thirstylabs/chugline/internal/models"
)

// Projector derives the ranked leaderboard view from the full set of user
// records. Every record is an entrant; there is no filtering.
type Projector struct{}

// New creates a new leaderboard projector
func New() *Projector {
	return &Projector{}
}

// Project returns all records ordered by drinks descending. Records with
// equal drinks are ordered by user ID ascending so repeated projections
// of the same set are identical.
func (p *Projector) Project(records []*models.UserRecord) []*models.LeaderboardEntry {
	sorted := make([]*models.UserRecord, len(records))
	copy(sorted, records)

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Drinks != sorted[j].Drinks {
			return sorted[i].Drinks > sorted[j].Drinks
		}
		return sorted[i].UserID < sorted[j].UserID
	})

	entries := make([]*models.LeaderboardEntry, 0, len(sorted))
	for i, record := range sorted {
		entries = append(entries, &models.LeaderboardEntry{
			UserID:           record.UserID,
			DisplayName:      record.DisplayName,
			Drinks:           record.Drinks,
			LastProofMessage: record.LastProofMessage,
			Rank:             i + 1,
		})
	}

	return entries
}
