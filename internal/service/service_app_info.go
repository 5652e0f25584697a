package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
)

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

// NewAppInfoService returns an AppInfoService reporting cfg.Version.
// The binary fills the version from linker flags when it is not configured,
// so an empty value here is a wiring error.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, ErrVersionIsNotSpecified)
	}

	return &appInfoService{
		appVersion: cfg.Version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	logger.FromContextOr(ctx, s.logger).Debug().Str("version", s.appVersion).Msg("app version requested")
	return s.appVersion
}
