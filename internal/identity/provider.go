package identity

import (
	"context"
	"errors"

	"github.com/thirstylabs/chugline/internal/common/uuid"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_provider.go github.com/thirstylabs/chugline/internal/identity Provider

// Identity carries the one field this system consumes from the identity
// provider: a stable uid.
type Identity struct {
	UID string
}

// ResolveInput contains parameters for resolving a session identity
type ResolveInput struct {
	// Token is the caller's existing session token, empty for a first
	// visit
	Token string
}

// Provider is the identity boundary: it turns a session token into a
// stable uid. Implementations decide what a token is.
type Provider interface {
	Resolve(ctx context.Context, input *ResolveInput) (*Identity, error)
}

// Config holds configuration for the anonymous provider
type Config struct {
	UUIDGenerator uuid.UUID
}

// anonymousProvider mints a fresh uid for unknown callers, the way an
// anonymous sign-in does. A previously issued uid resolves to itself, so
// identities stay stable across sessions that keep their token.
type anonymousProvider struct {
	uuidGen uuid.UUID
}

// NewAnonymous creates a new anonymous identity provider
func NewAnonymous(cfg *Config) (*anonymousProvider, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.UUIDGenerator == nil {
		return nil, errors.New("UUID generator cannot be nil")
	}

	return &anonymousProvider{
		uuidGen: cfg.UUIDGenerator,
	}, nil
}

// Resolve returns the identity for a session token, minting one if the
// token is empty.
func (p *anonymousProvider) Resolve(ctx context.Context, input *ResolveInput) (*Identity, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Token != "" {
		return &Identity{UID: input.Token}, nil
	}

	return &Identity{UID: p.uuidGen.NewUUID()}, nil
}
