package game

import (
	"context"
	"errors"
	"log"

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

// service implements the Service interface
type service struct {
	userRepo    userRepo.Repository
	questEngine *quest.Engine
	scoreLedger *score.Ledger
	projector   *leaderboard.Projector
	profiles    *profile.Manager
	oracle      oracle.Service
	penalty     penalty.Signal
	clock       clock.Clock
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.UserRepo == nil {
		return nil, ErrNilUserRepo
	}

	if cfg.QuestEngine == nil {
		return nil, ErrNilQuestEngine
	}

	if cfg.ScoreLedger == nil {
		return nil, ErrNilScoreLedger
	}

	if cfg.Projector == nil {
		return nil, ErrNilProjector
	}

	if cfg.Profiles == nil {
		return nil, ErrNilProfiles
	}

	if cfg.Oracle == nil {
		return nil, ErrNilOracle
	}

	if cfg.PenaltySignal == nil {
		return nil, ErrNilPenaltySignal
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		userRepo:    cfg.UserRepo,
		questEngine: cfg.QuestEngine,
		scoreLedger: cfg.ScoreLedger,
		projector:   cfg.Projector,
		profiles:    cfg.Profiles,
		oracle:      cfg.Oracle,
		penalty:     cfg.PenaltySignal,
		clock:       cfg.Clock,
	}, nil
}

// EnsureUser lazily creates the caller's record on first observation and
// applies the daily quest reset on every observation.
func (s *service) EnsureUser(ctx context.Context, input *EnsureUserInput) (*EnsureUserOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrMissingUserID
	}

	record, created, err := s.ensureRecord(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return &EnsureUserOutput{
		Record:  record,
		Created: created,
	}, nil
}

// ensureRecord loads the authoritative record, creating it on first
// observation and resetting quests when the calendar day changed. Any
// change is persisted before the record is returned.
func (s *service) ensureRecord(ctx context.Context, userID string) (*models.UserRecord, bool, error) {
	today := clock.DateOf(s.clock.Now())

	record, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{
		UserID: userID,
	})
	if err != nil {
		if !errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, false, err
		}

		// First observation of this identity
		record = &models.UserRecord{
			UserID:             userID,
			DisplayName:        s.profiles.DefaultDisplayName(userID),
			Drinks:             0,
			LastUpdated:        s.clock.Now(),
			LastProofMessage:   "",
			DailyQuests:        s.questEngine.FreshStates(),
			LastQuestResetDate: today,
		}

		if err := s.userRepo.SaveUser(ctx, &userRepo.SaveUserInput{
			Record: record,
		}); err != nil {
			return nil, false, err
		}

		return record, true, nil
	}

	if s.questEngine.EnsureDaily(record, today) {
		if err := s.userRepo.SaveUser(ctx, &userRepo.SaveUserInput{
			Record: record,
		}); err != nil {
			return nil, false, err
		}
	}

	return record, false, nil
}

// AddDrink applies one drink add for the caller: +1, or +2 while the
// ad-penalty signal is active, plus progress on the drink quest. Reward
// points from a completion land in the same write.
func (s *service) AddDrink(ctx context.Context, input *AddDrinkInput) (*AddDrinkOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrMissingUserID
	}

	record, _, err := s.ensureRecord(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	penaltyActive := s.penalty.Active(input.UserID)
	amount := s.scoreLedger.AddDrinks(record, penaltyActive, input.ProofMessage)

	completion := s.applyQuestProgress(record, quest.QuestIDAddDrinks, 1)

	if err := s.userRepo.SaveUser(ctx, &userRepo.SaveUserInput{
		Record: record,
	}); err != nil {
		return nil, err
	}

	return &AddDrinkOutput{
		Record:         record,
		AmountAdded:    amount,
		PenaltyApplied: penaltyActive,
		QuestCompleted: completion,
	}, nil
}

// Rename changes the caller's display name. Validation failures leave the
// record untouched; a successful rename also credits the rename quest.
func (s *service) Rename(ctx context.Context, input *RenameInput) (*RenameOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrMissingUserID
	}

	record, _, err := s.ensureRecord(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := s.profiles.Rename(record, input.DisplayName); err != nil {
		return nil, err
	}

	completion := s.applyQuestProgress(record, quest.QuestIDChangeName, 1)

	if err := s.userRepo.SaveUser(ctx, &userRepo.SaveUserInput{
		Record: record,
	}); err != nil {
		return nil, err
	}

	return &RenameOutput{
		Record:         record,
		QuestCompleted: completion,
	}, nil
}

// GenerateTruthOrDare fetches a truth-or-dare prompt. Only a genuine
// generation credits the quest; fallback text earns nothing.
func (s *service) GenerateTruthOrDare(ctx context.Context, input *GenerateTruthOrDareInput) (*GenerateTruthOrDareOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrMissingUserID
	}

	generated, err := s.oracle.GenerateTruthOrDare(ctx, &oracle.GenerateTruthOrDareInput{})
	if err != nil {
		return nil, err
	}

	output := &GenerateTruthOrDareOutput{
		Text:     generated.Text,
		Fallback: generated.Fallback,
	}

	if generated.Fallback {
		return output, nil
	}

	record, _, err := s.ensureRecord(ctx, input.UserID)
	if err != nil {
		// The prompt was generated; losing the quest credit is the softer
		// failure, so log and return the text.
		log.Printf("game: failed to credit truth-or-dare quest for %s: %v", input.UserID, err)
		return output, nil
	}

	completion := s.applyQuestProgress(record, quest.QuestIDTruthDare, 1)

	if err := s.userRepo.SaveUser(ctx, &userRepo.SaveUserInput{
		Record: record,
	}); err != nil {
		log.Printf("game: failed to save truth-or-dare quest progress for %s: %v", input.UserID, err)
		return output, nil
	}

	output.QuestCompleted = completion

	return output, nil
}

// GenerateDrinkSuggestion fetches a drink recipe suggestion. No record
// state is involved.
func (s *service) GenerateDrinkSuggestion(ctx context.Context, input *GenerateDrinkSuggestionInput) (*GenerateDrinkSuggestionOutput, error) {
	generated, err := s.oracle.GenerateDrinkSuggestion(ctx, &oracle.GenerateDrinkSuggestionInput{})
	if err != nil {
		return nil, err
	}

	return &GenerateDrinkSuggestionOutput{
		Text:     generated.Text,
		Fallback: generated.Fallback,
	}, nil
}

// GetLeaderboard projects the current standings across all records
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	listOutput, err := s.userRepo.ListUsers(ctx, &userRepo.ListUsersInput{})
	if err != nil {
		return nil, err
	}

	return &GetLeaderboardOutput{
		Entries: s.projector.Project(listOutput.Records),
	}, nil
}

// WatchUser opens a live stream of the caller's own record, ensuring the
// record exists first so the stream starts with a snapshot.
func (s *service) WatchUser(ctx context.Context, input *WatchUserInput) (*WatchUserOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrMissingUserID
	}

	if _, _, err := s.ensureRecord(ctx, input.UserID); err != nil {
		return nil, err
	}

	watchOutput, err := s.userRepo.WatchUser(ctx, &userRepo.WatchUserInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, err
	}

	return &WatchUserOutput{
		Events: watchOutput.Events,
	}, nil
}

// WatchLeaderboard opens a live stream of leaderboard projections derived
// from the full-collection subscription.
func (s *service) WatchLeaderboard(ctx context.Context, input *WatchLeaderboardInput) (*WatchLeaderboardOutput, error) {
	watchOutput, err := s.userRepo.WatchAll(ctx, &userRepo.WatchAllInput{})
	if err != nil {
		return nil, err
	}

	events := make(chan *LeaderboardEvent)

	go func() {
		defer close(events)

		for collectionEvent := range watchOutput.Events {
			event := &LeaderboardEvent{}
			if collectionEvent.Err != nil {
				event.Err = collectionEvent.Err
			} else {
				event.Entries = s.projector.Project(collectionEvent.Records)
			}

			select {
			case <-ctx.Done():
				return
			case events <- event:
			}
		}
	}()

	return &WatchLeaderboardOutput{
		Events: events,
	}, nil
}

// applyQuestProgress records quest progress and applies any reward to the
// drink counter, returning the completion for the caller's output.
func (s *service) applyQuestProgress(record *models.UserRecord, questID string, amount int) *QuestCompletion {
	grant := s.questEngine.RecordProgress(record, questID, amount)
	if grant == nil {
		return nil
	}

	s.scoreLedger.GrantReward(record, grant.RewardPoints)

	return &QuestCompletion{
		QuestID:      grant.QuestID,
		Description:  grant.Description,
		RewardPoints: grant.RewardPoints,
	}
}
