package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the generateContent endpoint of the text model
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

	// DefaultTimeout bounds each generation call; the external API gets
	// no retries, only this deadline
	DefaultTimeout = 15 * time.Second

	truthDarePrompt = "Generate either a fun truth question or a creative dare suitable for a casual drinking game among friends. Make it concise and engaging. Do not include any introductory or concluding remarks, just the truth or dare."

	drinkSuggestionPrompt = "Suggest a fun and easy drink recipe for a casual party. Include ingredients and simple instructions. Make it concise and engaging. Do not include any introductory or concluding remarks, just the drink suggestion/recipe."

	truthDareFallback = "Could not generate a truth or dare. Please try again!"

	drinkSuggestionFallback = "Could not generate a drink suggestion. Please try again!"

	networkFallback = "Failed to generate. Network error or API issue."
)

// errEmptyResponse means the response parsed but carried no text
var errEmptyResponse = errors.New("response contained no candidates or parts")

// Config holds configuration for the Gemini-backed oracle service
type Config struct {
	// BaseURL overrides the generateContent endpoint (mainly for tests)
	BaseURL string

	// APIKey is appended as the key query parameter; may be empty in
	// environments where the platform injects it
	APIKey string

	// Timeout bounds each HTTP call; zero means DefaultTimeout
	Timeout time.Duration

	// HTTPClient overrides the default client (mainly for tests)
	HTTPClient *http.Client
}

// geminiService implements the Service interface against the
// generateContent HTTP endpoint.
type geminiService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewGemini creates a new Gemini-backed oracle service
func NewGemini(cfg *Config) (*geminiService, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}

	return &geminiService{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		client:  client,
	}, nil
}

// GenerateTruthOrDare produces a truth question or dare prompt
func (s *geminiService) GenerateTruthOrDare(ctx context.Context, input *GenerateTruthOrDareInput) (*GenerateTruthOrDareOutput, error) {
	text, fallback := s.generateWithFallback(ctx, truthDarePrompt, truthDareFallback)
	return &GenerateTruthOrDareOutput{
		Text:     text,
		Fallback: fallback,
	}, nil
}

// GenerateDrinkSuggestion produces a drink recipe suggestion
func (s *geminiService) GenerateDrinkSuggestion(ctx context.Context, input *GenerateDrinkSuggestionInput) (*GenerateDrinkSuggestionOutput, error) {
	text, fallback := s.generateWithFallback(ctx, drinkSuggestionPrompt, drinkSuggestionFallback)
	return &GenerateDrinkSuggestionOutput{
		Text:     text,
		Fallback: fallback,
	}, nil
}

// generateWithFallback runs one generation call and degrades to the
// appropriate fixed string instead of surfacing an error.
func (s *geminiService) generateWithFallback(ctx context.Context, prompt, emptyFallback string) (string, bool) {
	text, err := s.generate(ctx, prompt)
	if err == nil {
		return text, false
	}

	log.Printf("oracle: generation failed: %v", err)

	if errors.Is(err, errEmptyResponse) {
		return emptyFallback, true
	}
	return networkFallback, true
}

// generate posts a single-turn prompt to the generateContent endpoint and
// extracts the first candidate's text.
func (s *geminiService) generate(ctx context.Context, prompt string) (string, error) {
	payload := &generateContentRequest{
		Contents: []contentEntry{
			{
				Role:  "user",
				Parts: []contentPart{{Text: prompt}},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := s.baseURL
	if s.apiKey != "" {
		url = fmt.Sprintf("%s?key=%s", s.baseURL, s.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	var result generateContentResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", errEmptyResponse
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}
