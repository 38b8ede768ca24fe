package httpapi

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/thirstylabs/chugline/internal/identity"
	"github.com/thirstylabs/chugline/internal/penalty"
	"github.com/thirstylabs/chugline/internal/services/game"
)

// sessionCookie carries the caller's stable uid between requests.
const sessionCookie = "chugline_uid"

// Config holds configuration for the HTTP API server
type Config struct {
	// Addr is the listen address
	Addr string

	// GameService handles all game operations
	GameService game.Service

	// IdentityProvider resolves session tokens to stable uids
	IdentityProvider identity.Provider

	// PenaltyRegistry receives client-side ad-detection reports. Optional;
	// without it penalty reports are rejected.
	PenaltyRegistry *penalty.Registry
}

// Server is the HTTP/WebSocket API for the drinking game
type Server struct {
	addr            string
	gameService     game.Service
	identities      identity.Provider
	penaltyRegistry *penalty.Registry
	httpServer      *http.Server
}

// New creates a new API server
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Addr == "" {
		return nil, errors.New("listen address cannot be empty")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.IdentityProvider == nil {
		return nil, errors.New("identity provider cannot be nil")
	}

	s := &Server{
		addr:            cfg.Addr,
		gameService:     cfg.GameService,
		identities:      cfg.IdentityProvider,
		penaltyRegistry: cfg.PenaltyRegistry,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/session", s.withIdentity(s.handleSession))
	mux.HandleFunc("GET /api/me", s.withIdentity(s.handleMe))
	mux.HandleFunc("POST /api/drinks", s.withIdentity(s.handleAddDrink))
	mux.HandleFunc("POST /api/name", s.withIdentity(s.handleRename))
	mux.HandleFunc("POST /api/truth-or-dare", s.withIdentity(s.handleTruthOrDare))
	mux.HandleFunc("POST /api/drink-suggestion", s.withIdentity(s.handleDrinkSuggestion))
	mux.HandleFunc("GET /api/leaderboard", s.handleLeaderboard)
	mux.HandleFunc("POST /api/penalty", s.withIdentity(s.handlePenaltyReport))
	mux.HandleFunc("GET /ws/me", s.withIdentity(s.handleWatchMe))
	mux.HandleFunc("GET /ws/leaderboard", s.handleWatchLeaderboard)

	s.httpServer = &http.Server{
		Addr:    cfg.Addr,
		Handler: mux,
	}

	return s, nil
}

// Handler exposes the route table, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins serving; it blocks until the server stops
func (s *Server) Start() error {
	log.Printf("httpapi: listening on %s", s.addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop shuts the server down, draining in-flight requests
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.httpServer.Shutdown(ctx)
}

// withIdentity resolves the caller's stable uid from the session cookie,
// minting one (and setting the cookie) on first contact.
func (s *Server) withIdentity(next func(w http.ResponseWriter, r *http.Request, uid string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if cookie, err := r.Cookie(sessionCookie); err == nil {
			token = cookie.Value
		}

		id, err := s.identities.Resolve(r.Context(), &identity.ResolveInput{
			Token: token,
		})
		if err != nil {
			log.Printf("httpapi: identity resolution failed: %v", err)
			writeError(w, http.StatusServiceUnavailable, "identity unavailable")
			return
		}

		if token == "" {
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    id.UID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		next(w, r, id.UID)
	}
}
