package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/thirstylabs/chugline/internal/models"
	"github.com/thirstylabs/chugline/internal/services/game"
	"github.com/thirstylabs/chugline/internal/services/profile"
)

// userResponse is the wire shape of a user record
type userResponse struct {
	UserID             string               `json:"userId"`
	DisplayName        string               `json:"displayName"`
	Drinks             int                  `json:"drinks"`
	LastUpdated        time.Time            `json:"lastUpdated"`
	LastProofMessage   string               `json:"lastProofMessage"`
	DailyQuests        []*models.QuestState `json:"dailyQuests"`
	LastQuestResetDate string               `json:"lastQuestResetDate"`
}

// questCompletionResponse is the wire shape of a quest completion
type questCompletionResponse struct {
	QuestID      string `json:"questId"`
	Description  string `json:"description"`
	RewardPoints int    `json:"rewardPoints"`
}

func toUserResponse(record *models.UserRecord) *userResponse {
	return &userResponse{
		UserID:             record.UserID,
		DisplayName:        record.DisplayName,
		Drinks:             record.Drinks,
		LastUpdated:        record.LastUpdated,
		LastProofMessage:   record.LastProofMessage,
		DailyQuests:        record.DailyQuests,
		LastQuestResetDate: record.LastQuestResetDate,
	}
}

func toQuestCompletionResponse(completion *game.QuestCompletion) *questCompletionResponse {
	if completion == nil {
		return nil
	}
	return &questCompletionResponse{
		QuestID:      completion.QuestID,
		Description:  completion.Description,
		RewardPoints: completion.RewardPoints,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("httpapi: failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// handleSession establishes (or refreshes) the caller's session and
// returns their record, creating it on first contact.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request, uid string) {
	output, err := s.gameService.EnsureUser(r.Context(), &game.EnsureUserInput{
		UserID: uid,
	})
	if err != nil {
		log.Printf("httpapi: failed to ensure user %s: %v", uid, err)
		writeError(w, http.StatusInternalServerError, "failed to load user")
		return
	}

	status := http.StatusOK
	if output.Created {
		status = http.StatusCreated
	}
	writeJSON(w, status, toUserResponse(output.Record))
}

// handleMe returns the caller's record
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request, uid string) {
	output, err := s.gameService.EnsureUser(r.Context(), &game.EnsureUserInput{
		UserID: uid,
	})
	if err != nil {
		log.Printf("httpapi: failed to ensure user %s: %v", uid, err)
		writeError(w, http.StatusInternalServerError, "failed to load user")
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(output.Record))
}

type addDrinkRequest struct {
	ProofMessage string `json:"proofMessage"`
}

type addDrinkResponse struct {
	Record         *userResponse            `json:"record"`
	AmountAdded    int                      `json:"amountAdded"`
	PenaltyApplied bool                     `json:"penaltyApplied"`
	QuestCompleted *questCompletionResponse `json:"questCompleted,omitempty"`
}

// handleAddDrink applies one drink add for the caller
func (s *Server) handleAddDrink(w http.ResponseWriter, r *http.Request, uid string) {
	var req addDrinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	output, err := s.gameService.AddDrink(r.Context(), &game.AddDrinkInput{
		UserID:       uid,
		ProofMessage: req.ProofMessage,
	})
	if err != nil {
		log.Printf("httpapi: failed to add drink for %s: %v", uid, err)
		writeError(w, http.StatusInternalServerError, "failed to add drink")
		return
	}

	writeJSON(w, http.StatusOK, &addDrinkResponse{
		Record:         toUserResponse(output.Record),
		AmountAdded:    output.AmountAdded,
		PenaltyApplied: output.PenaltyApplied,
		QuestCompleted: toQuestCompletionResponse(output.QuestCompleted),
	})
}

type renameRequest struct {
	DisplayName string `json:"displayName"`
}

type renameResponse struct {
	Record         *userResponse            `json:"record"`
	QuestCompleted *questCompletionResponse `json:"questCompleted,omitempty"`
}

// handleRename changes the caller's display name
func (s *Server) handleRename(w http.ResponseWriter, r *http.Request, uid string) {
	var req renameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	output, err := s.gameService.Rename(r.Context(), &game.RenameInput{
		UserID:      uid,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		if errors.Is(err, profile.ErrEmptyDisplayName) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("httpapi: failed to rename %s: %v", uid, err)
		writeError(w, http.StatusInternalServerError, "failed to rename")
		return
	}

	writeJSON(w, http.StatusOK, &renameResponse{
		Record:         toUserResponse(output.Record),
		QuestCompleted: toQuestCompletionResponse(output.QuestCompleted),
	})
}

type generatedTextResponse struct {
	Text           string                   `json:"text"`
	Fallback       bool                     `json:"fallback"`
	QuestCompleted *questCompletionResponse `json:"questCompleted,omitempty"`
}

// handleTruthOrDare generates a truth-or-dare prompt for the caller
func (s *Server) handleTruthOrDare(w http.ResponseWriter, r *http.Request, uid string) {
	output, err := s.gameService.GenerateTruthOrDare(r.Context(), &game.GenerateTruthOrDareInput{
		UserID: uid,
	})
	if err != nil {
		log.Printf("httpapi: failed to generate truth or dare for %s: %v", uid, err)
		writeError(w, http.StatusInternalServerError, "failed to generate")
		return
	}

	writeJSON(w, http.StatusOK, &generatedTextResponse{
		Text:           output.Text,
		Fallback:       output.Fallback,
		QuestCompleted: toQuestCompletionResponse(output.QuestCompleted),
	})
}

// handleDrinkSuggestion generates a drink recipe suggestion
func (s *Server) handleDrinkSuggestion(w http.ResponseWriter, r *http.Request, uid string) {
	output, err := s.gameService.GenerateDrinkSuggestion(r.Context(), &game.GenerateDrinkSuggestionInput{})
	if err != nil {
		log.Printf("httpapi: failed to generate drink suggestion: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to generate")
		return
	}

	writeJSON(w, http.StatusOK, &generatedTextResponse{
		Text:     output.Text,
		Fallback: output.Fallback,
	})
}

type leaderboardResponse struct {
	Entries []*models.LeaderboardEntry `json:"entries"`
}

// handleLeaderboard returns the current standings
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	output, err := s.gameService.GetLeaderboard(r.Context(), &game.GetLeaderboardInput{})
	if err != nil {
		log.Printf("httpapi: failed to get leaderboard: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load leaderboard")
		return
	}

	writeJSON(w, http.StatusOK, &leaderboardResponse{
		Entries: output.Entries,
	})
}

type penaltyReportRequest struct {
	Active bool `json:"active"`
}

// handlePenaltyReport records the caller's latest ad-detection result
func (s *Server) handlePenaltyReport(w http.ResponseWriter, r *http.Request, uid string) {
	if s.penaltyRegistry == nil {
		writeError(w, http.StatusNotFound, "penalty reporting disabled")
		return
	}

	var req penaltyReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.penaltyRegistry.Report(uid, req.Active)
	w.WriteHeader(http.StatusNoContent)
}
