package oracle

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/thirstylabs/chugline/internal/services/oracle Service

// Service is the boundary to the generative-text API. Generation never
// fails hard: network errors and malformed responses degrade to fixed
// fallback strings with Fallback set on the output.
type Service interface {
	// GenerateTruthOrDare produces a truth question or dare prompt
	GenerateTruthOrDare(ctx context.Context, input *GenerateTruthOrDareInput) (*GenerateTruthOrDareOutput, error)

	// GenerateDrinkSuggestion produces a drink recipe suggestion
	GenerateDrinkSuggestion(ctx context.Context, input *GenerateDrinkSuggestionInput) (*GenerateDrinkSuggestionOutput, error)
}
