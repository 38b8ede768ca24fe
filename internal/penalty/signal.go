package penalty

import (
	"errors"
	"sync"
	"time"

	"github.com/thirstylabs/chugline/internal/common/clock"
)

// DefaultFreshness is how long a client report stays valid. Clients
// re-probe every 2 seconds, so a couple of missed polls expire the
// penalty rather than pinning it on.
const DefaultFreshness = 5 * time.Second

// Signal reports whether the ad-penalty multiplier is active for a user.
// It is sampled at drink-increment time; how the client detects blocking
// is not this package's concern.
type Signal interface {
	Active(userID string) bool
}

// Static is a fixed-value signal for tests and deployments without
// client-side detection.
type Static bool

// Active returns the fixed value for every user
func (s Static) Active(userID string) bool {
	return bool(s)
}

// Config holds configuration for the reported signal registry
type Config struct {
	Clock clock.Clock

	// Freshness bounds how long a report counts; zero means
	// DefaultFreshness
	Freshness time.Duration
}

type report struct {
	active     bool
	reportedAt time.Time
}

// Registry collects client-reported detection results per user. Reports
// older than the freshness window count as inactive.
type Registry struct {
	mu        sync.Mutex
	clock     clock.Clock
	freshness time.Duration
	reports   map[string]report
}

// NewRegistry creates a new reported-signal registry
func NewRegistry(cfg *Config) (*Registry, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	freshness := cfg.Freshness
	if freshness == 0 {
		freshness = DefaultFreshness
	}

	return &Registry{
		clock:     cfg.Clock,
		freshness: freshness,
		reports:   make(map[string]report),
	}, nil
}

// Report records the latest detection result for a user
func (r *Registry) Report(userID string, active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reports[userID] = report{
		active:     active,
		reportedAt: r.clock.Now(),
	}
}

// Active returns the user's latest fresh report, or false when there is
// none or it has gone stale.
func (r *Registry) Active(userID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	rep, ok := r.reports[userID]
	if !ok {
		return false
	}

	if r.clock.Now().Sub(rep.reportedAt) > r.freshness {
		return false
	}

	return rep.active
}
