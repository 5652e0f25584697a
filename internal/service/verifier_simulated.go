package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/models"
)

// simulatedVerifier stands in for a remote identity provider: it waits for
// the configured latency and then accepts exactly one token.
type simulatedVerifier struct {
	acceptedToken string
	displayName   string
	delay         time.Duration
}

// NewSimulatedVerifier returns a Verifier that accepts cfg.AcceptedToken
// after cfg.VerifyDelay and reports cfg.DisplayName as the identity.
func NewSimulatedVerifier(cfg config.App) (Verifier, error) {
	if cfg.AcceptedToken == "" {
		return nil, fmt.Errorf("%w: accepted token is empty", ErrInvalidConfig)
	}
	if cfg.VerifyDelay < 0 {
		return nil, fmt.Errorf("%w: negative verification delay %s", ErrInvalidConfig, cfg.VerifyDelay)
	}

	return &simulatedVerifier{
		acceptedToken: cfg.AcceptedToken,
		displayName:   cfg.DisplayName,
		delay:         cfg.VerifyDelay,
	}, nil
}

// Verify sleeps for the configured delay, then compares credential with the
// accepted token. A done ctx cuts the delay short and yields no identity.
func (v *simulatedVerifier) Verify(ctx context.Context, credential string) (models.Identity, bool) {
	if v.delay > 0 {
		timer := time.NewTimer(v.delay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			return models.Identity{}, false
		}
	}

	if credential != v.acceptedToken {
		return models.Identity{}, false
	}

	return models.Identity{DisplayName: v.displayName}, true
}
