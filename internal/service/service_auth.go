// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/models"
)

// authService is the concrete implementation of AuthService.
// Every call runs one verification on its own goroutine and races its
// result against a deadline timer and the caller's context.
type authService struct {
	// verifier produces the verdict for a credential.
	verifier Verifier

	// timeout bounds how long Authorize waits for the verdict.
	timeout time.Duration

	// cancelOnTimeout makes Authorize cancel the verification context when it
	// stops waiting. When false the verification is detached from the
	// request and runs to completion, its result discarded.
	cancelOnTimeout bool

	logger *logger.Logger
}

// verification is the verdict sent back by the verification goroutine.
type verification struct {
	identity models.Identity
	ok       bool
}

// NewAuthService constructs an AuthService around verifier using the
// deadline settings from cfg.
//
// Returns ErrInvalidConfig if verifier is nil or cfg.VerifyTimeout is not
// positive.
func NewAuthService(verifier Verifier, cfg config.App, logger *logger.Logger) (AuthService, error) {
	if verifier == nil {
		return nil, fmt.Errorf("%w: no verifier given", ErrInvalidConfig)
	}
	if cfg.VerifyTimeout <= 0 {
		return nil, fmt.Errorf("%w: verification timeout must be positive, got %s", ErrInvalidConfig, cfg.VerifyTimeout)
	}

	return &authService{
		verifier:        verifier,
		timeout:         cfg.VerifyTimeout,
		cancelOnTimeout: cfg.CancelOnTimeout,
		logger:          logger,
	}, nil
}

// Authorize starts the verification of credential and waits for whichever
// comes first: the verdict, the deadline or the end of ctx.
//
// The result channel is buffered so a verdict that arrives after Authorize
// returned never blocks the verification goroutine.
func (a *authService) Authorize(ctx context.Context, credential string) (models.Identity, error) {
	log := logger.FromContextOr(ctx, a.logger)
	start := time.Now()

	verifyCtx := context.WithoutCancel(ctx)
	if a.cancelOnTimeout {
		var cancel context.CancelFunc
		verifyCtx, cancel = context.WithCancel(ctx)
		defer cancel()
	}

	result := make(chan verification, 1)
	go func() {
		identity, ok := a.verifier.Verify(verifyCtx, credential)
		result <- verification{identity: identity, ok: ok}
	}()

	timer := time.NewTimer(a.timeout)
	defer timer.Stop()

	select {
	case res := <-result:
		elapsed := time.Since(start)
		if !res.ok {
			log.Warn().Dur("elapsed", elapsed).Msg("credential rejected by verifier")
			return models.Identity{}, ErrCredentialMismatch
		}

		log.Debug().Dur("elapsed", elapsed).Str("display_name", res.identity.DisplayName).Msg("credential verified")
		return res.identity, nil

	case <-timer.C:
		log.Warn().
			Dur("elapsed", time.Since(start)).
			Dur("timeout", a.timeout).
			Bool("cancel_on_timeout", a.cancelOnTimeout).
			Msg("credential verification timed out")
		return models.Identity{}, ErrVerificationTimeout

	case <-ctx.Done():
		log.Warn().Err(ctx.Err()).Dur("elapsed", time.Since(start)).Msg("request ended before verification finished")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrVerificationTimeout, ctx.Err())
	}
}
