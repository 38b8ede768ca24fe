package quest

import (
	"github.com/thirstylabs/chugline/internal/models"
)

// Quest IDs used by the trigger mapping in the game service.
const (
	// QuestIDAddDrinks is completed by adding drinks
	QuestIDAddDrinks = "add_drinks_3"

	// QuestIDTruthDare is completed by generating a truth or dare
	QuestIDTruthDare = "generate_truth_dare_1"

	// QuestIDChangeName is completed by changing the display name
	QuestIDChangeName = "change_name_1"
)

// DefaultTemplates returns the static daily quest definitions.
func DefaultTemplates() []*models.QuestTemplate {
	return []*models.QuestTemplate{
		{
			ID:           QuestIDAddDrinks,
			Description:  "Add 3 drinks",
			Target:       3,
			RewardPoints: 10,
		},
		{
			ID:           QuestIDTruthDare,
			Description:  "Generate 1 Truth or Dare",
			Target:       1,
			RewardPoints: 5,
		},
		{
			ID:           QuestIDChangeName,
			Description:  "Change your display name",
			Target:       1,
			RewardPoints: 5,
		},
	}
}

// Config for the quest engine
type Config struct {
	// Templates overrides the default quest definitions (mainly for tests)
	Templates []*models.QuestTemplate
}

// Engine tracks daily quest progress against the static templates. It
// never mutates the drink counter; completions are reported back to the
// caller as a RewardGrant to apply through the score ledger.
type Engine struct {
	templates []*models.QuestTemplate
}

// RewardGrant describes the reward for a quest that just completed.
type RewardGrant struct {
	// QuestID is the quest that completed
	QuestID string

	// Description is the player-facing quest text
	Description string

	// RewardPoints is the number of drinks to grant
	RewardPoints int
}

// New creates a new quest engine
func New(cfg *Config) *Engine {
	templates := DefaultTemplates()
	if cfg != nil && len(cfg.Templates) > 0 {
		templates = cfg.Templates
	}

	return &Engine{
		templates: templates,
	}
}

// Templates returns the quest definitions the engine resets from.
func (e *Engine) Templates() []*models.QuestTemplate {
	return e.templates
}

// FreshStates builds a zeroed quest state per template, in template order.
func (e *Engine) FreshStates() []*models.QuestState {
	states := make([]*models.QuestState, 0, len(e.templates))
	for _, tmpl := range e.templates {
		states = append(states, &models.QuestState{
			ID:           tmpl.ID,
			Description:  tmpl.Description,
			Target:       tmpl.Target,
			RewardPoints: tmpl.RewardPoints,
			Progress:     0,
			Completed:    false,
		})
	}
	return states
}

// EnsureDaily resets the record's quests if they were last reset on a
// different calendar day (or never). Returns true if the record changed.
// Safe to call on every observation; calling again with the same day is
// a no-op.
func (e *Engine) EnsureDaily(record *models.UserRecord, today string) bool {
	if record.LastQuestResetDate == today {
		return false
	}

	record.DailyQuests = e.FreshStates()
	record.LastQuestResetDate = today
	return true
}

// RecordProgress adds progress to the quest with the given id. Unknown or
// already-completed quests are a no-op. Progress is not clamped at the
// target; completion fires at most once per daily reset, and only that
// one transition returns a RewardGrant.
func (e *Engine) RecordProgress(record *models.UserRecord, questID string, incrementAmount int) *RewardGrant {
	state := record.QuestForID(questID)
	if state == nil || state.Completed {
		return nil
	}

	state.Progress += incrementAmount
	if state.Progress < state.Target {
		return nil
	}

	state.Completed = true
	return &RewardGrant{
		QuestID:      state.ID,
		Description:  state.Description,
		RewardPoints: state.RewardPoints,
	}
}
