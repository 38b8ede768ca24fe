package oracle

// GenerateTruthOrDareInput contains parameters for generating a truth or dare
type GenerateTruthOrDareInput struct{}

// GenerateTruthOrDareOutput contains the generated truth or dare
type GenerateTruthOrDareOutput struct {
	// Text is the generated prompt, or a fixed fallback string
	Text string

	// Fallback indicates the text is a fallback rather than generated
	// content; fallbacks earn no quest credit
	Fallback bool
}

// GenerateDrinkSuggestionInput contains parameters for generating a drink suggestion
type GenerateDrinkSuggestionInput struct{}

// GenerateDrinkSuggestionOutput contains the generated drink suggestion
type GenerateDrinkSuggestionOutput struct {
	// Text is the generated suggestion, or a fixed fallback string
	Text string

	// Fallback indicates the text is a fallback rather than generated content
	Fallback bool
}

// generateContentRequest is the outbound wire shape of the
// generateContent endpoint.
type generateContentRequest struct {
	Contents []contentEntry `json:"contents"`
}

type contentEntry struct {
	Role  string        `json:"role,omitempty"`
	Parts []contentPart `json:"parts"`
}

type contentPart struct {
	Text string `json:"text"`
}

// generateContentResponse is the inbound wire shape. Anything missing
// from it (no candidates, empty parts) is a soft failure.
type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []contentPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}
