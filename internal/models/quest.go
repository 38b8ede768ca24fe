package models

// QuestTemplate is a static definition of a repeatable daily task, its
// target count, and its point reward. Templates are process-wide and
// immutable.
type QuestTemplate struct {
	// ID uniquely identifies the quest across days
	ID string `json:"id"`

	// Description is the player-facing text for the quest
	Description string `json:"description"`

	// Target is how much progress completes the quest
	Target int `json:"target"`

	// RewardPoints is how many drinks completing the quest grants
	RewardPoints int `json:"rewardPoints"`
}

// QuestState is the per-user, per-template progress tracking, embedded in
// a UserRecord and reset daily.
type QuestState struct {
	// ID matches the template this state tracks
	ID string `json:"id"`

	// Description is copied from the template so stored records render
	// without a template lookup
	Description string `json:"description"`

	// Target is copied from the template
	Target int `json:"target"`

	// RewardPoints is copied from the template
	RewardPoints int `json:"rewardPoints"`

	// Progress accumulates reported increments; it is not clamped at Target
	Progress int `json:"progress"`

	// Completed latches true once Progress reaches Target and stays true
	// until the next daily reset
	Completed bool `json:"completed"`
}
