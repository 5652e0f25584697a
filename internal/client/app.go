package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/adapter"
	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
)

type App struct {
	adapter adapter.ServerAdapter

	token    string
	username string

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, cfg config.Client, logger *logger.Logger) *App {
	return &App{
		adapter:  serverAdapter,
		token:    cfg.Token,
		username: cfg.Username,
		logger:   logger,
	}
}

// Run asks for the server version, creates a user and finally calls the
// protected route with the configured token. It stops at the first failure.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	version, err := a.adapter.Version(ctx)
	if err != nil {
		return fmt.Errorf("get server version: %w", err)
	}
	a.logger.Info().Str("version", version).Msg("server version")

	user, err := a.adapter.CreateUser(ctx, a.username)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	a.logger.Info().Int64("id", user.ID).Str("username", user.Username).Msg("user created")

	start := time.Now()
	greeting, err := a.adapter.Greet(ctx, a.token)
	elapsed := time.Since(start)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			a.logger.Warn().Dur("elapsed", elapsed).Msg("access denied")
		}
		return fmt.Errorf("greet: %w", err)
	}
	a.logger.Info().Str("greeting", greeting).Dur("elapsed", elapsed).Msg("access granted")

	return nil
}
