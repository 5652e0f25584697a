package service

import (
	"fmt"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	AppInfoService AppInfoService
}

func NewServices(cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	verifier, err := NewSimulatedVerifier(cfg.App)
	if err != nil {
		return nil, fmt.Errorf("error creating verifier: %w", err)
	}

	authService, err := NewAuthService(verifier, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    authService,
		UserService:    NewUserService(cfg.App, logger),
		AppInfoService: appInfoService,
	}, nil
}
