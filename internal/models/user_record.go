package models

import (
	"time"
)

// UserRecord is the per-identity document holding score, name, and quest
// state. One record exists per user id; it is created lazily on first
// observation and never deleted.
type UserRecord struct {
	// UserID is the stable identity of the owner, immutable after creation
	UserID string `json:"userId"`

	// DisplayName is the mutable display name, changed only by its owner
	DisplayName string `json:"displayName"`

	// Drinks is the drink counter; it only ever increases
	Drinks int `json:"drinks"`

	// LastUpdated is when the drink counter last changed via a drink add
	LastUpdated time.Time `json:"lastUpdated"`

	// LastProofMessage is the proof note from the most recent drink add
	LastProofMessage string `json:"lastProofMessage"`

	// DailyQuests holds one QuestState per quest template, in template order
	DailyQuests []*QuestState `json:"dailyQuests"`

	// LastQuestResetDate is the local calendar date (YYYY-MM-DD) of the
	// last daily quest reset
	LastQuestResetDate string `json:"lastQuestResetDate"`
}

// Clone returns a deep copy of the record so callers can mutate freely
// without aliasing quest state shared with watchers.
func (r *UserRecord) Clone() *UserRecord {
	if r == nil {
		return nil
	}

	cp := *r
	cp.DailyQuests = make([]*QuestState, len(r.DailyQuests))
	for i, q := range r.DailyQuests {
		qc := *q
		cp.DailyQuests[i] = &qc
	}

	return &cp
}

// QuestForID returns the quest state with the given id, or nil if the
// record has no such quest.
func (r *UserRecord) QuestForID(questID string) *QuestState {
	for _, q := range r.DailyQuests {
		if q.ID == questID {
			return q
		}
	}
	return nil
}
