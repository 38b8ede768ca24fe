package oracle

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type GeminiServiceTestSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *GeminiServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func TestGeminiServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GeminiServiceTestSuite))
}

func (s *GeminiServiceTestSuite) newService(handler http.HandlerFunc) (*geminiService, *httptest.Server) {
	server := httptest.NewServer(handler)

	svc, err := NewGemini(&Config{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Timeout: 2 * time.Second,
	})
	s.Require().NoError(err)

	return svc, server
}

func (s *GeminiServiceTestSuite) TestGenerateTruthOrDareSuccess() {
	svc, server := s.newService(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal("test-key", r.URL.Query().Get("key"))
		s.Equal("application/json", r.Header.Get("Content-Type"))

		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Truth: what was your worst round?"}]}}]}`))
	})
	defer server.Close()

	output, err := svc.GenerateTruthOrDare(s.ctx, &GenerateTruthOrDareInput{})
	s.Require().NoError(err)
	s.Equal("Truth: what was your worst round?", output.Text)
	s.False(output.Fallback)
}

func (s *GeminiServiceTestSuite) TestGenerateDrinkSuggestionSuccess() {
	svc, server := s.newService(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Mix lime, soda, and regret."}]}}]}`))
	})
	defer server.Close()

	output, err := svc.GenerateDrinkSuggestion(s.ctx, &GenerateDrinkSuggestionInput{})
	s.Require().NoError(err)
	s.Equal("Mix lime, soda, and regret.", output.Text)
	s.False(output.Fallback)
}

func (s *GeminiServiceTestSuite) TestMissingCandidatesFallsBack() {
	svc, server := s.newService(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})
	defer server.Close()

	output, err := svc.GenerateTruthOrDare(s.ctx, &GenerateTruthOrDareInput{})
	s.Require().NoError(err)
	s.Equal("Could not generate a truth or dare. Please try again!", output.Text)
	s.True(output.Fallback)
}

func (s *GeminiServiceTestSuite) TestEmptyPartsFallsBack() {
	svc, server := s.newService(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[]}}]}`))
	})
	defer server.Close()

	output, err := svc.GenerateDrinkSuggestion(s.ctx, &GenerateDrinkSuggestionInput{})
	s.Require().NoError(err)
	s.Equal("Could not generate a drink suggestion. Please try again!", output.Text)
	s.True(output.Fallback)
}

func (s *GeminiServiceTestSuite) TestServerErrorFallsBack() {
	svc, server := s.newService(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	defer server.Close()

	output, err := svc.GenerateTruthOrDare(s.ctx, &GenerateTruthOrDareInput{})
	s.Require().NoError(err)
	s.Equal("Failed to generate. Network error or API issue.", output.Text)
	s.True(output.Fallback)
}

func (s *GeminiServiceTestSuite) TestNetworkErrorFallsBack() {
	svc, server := s.newService(func(w http.ResponseWriter, r *http.Request) {})
	server.Close() // Connection refused from here on

	output, err := svc.GenerateTruthOrDare(s.ctx, &GenerateTruthOrDareInput{})
	s.Require().NoError(err)
	s.Equal("Failed to generate. Network error or API issue.", output.Text)
	s.True(output.Fallback)
}
