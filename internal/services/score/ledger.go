package score

import (
	"errors"
	"strings"

	"github.com/thirstylabs/chugline/internal/common/clock"
	"github.com/thirstylabs/chugline/internal/models"
)

const (
	// baseDrinkIncrement is the normal amount for one drink add
	baseDrinkIncrement = 1

	// penaltyDrinkIncrement is the amount when the ad-penalty signal is
	// active at increment time
	penaltyDrinkIncrement = 2
)

// Config holds configuration for the score ledger
type Config struct {
	Clock clock.Clock
}

// Ledger owns the drink counter. AddDrinks and GrantReward are the only
// sanctioned ways the counter changes; neither ever decreases it.
type Ledger struct {
	clock clock.Clock
}

// New creates a new score ledger
func New(cfg *Config) (*Ledger, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	return &Ledger{
		clock: cfg.Clock,
	}, nil
}

// AddDrinks applies one drink add to the record: +2 when the penalty is
// active, otherwise +1. Stamps LastUpdated and overwrites the proof note
// with the trimmed value (which may be empty). Returns the applied amount.
func (l *Ledger) AddDrinks(record *models.UserRecord, penaltyActive bool, proofNote string) int {
	amount := baseDrinkIncrement
	if penaltyActive {
		amount = penaltyDrinkIncrement
	}

	record.Drinks += amount
	record.LastUpdated = l.clock.Now()
	record.LastProofMessage = strings.TrimSpace(proofNote)

	return amount
}

// GrantReward adds quest reward points to the drink counter. Used only
// when the quest engine reports a completion.
func (l *Ledger) GrantReward(record *models.UserRecord, points int) {
	record.Drinks += points
}
