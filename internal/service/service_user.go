package service

import (
	"context"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/models"
)

type userService struct {
	createdUserID int64

	logger *logger.Logger
}

// NewUserService returns a UserService that assigns cfg.CreatedUserID to
// every user it creates. Nothing is persisted.
func NewUserService(cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		createdUserID: cfg.CreatedUserID,
		logger:        logger,
	}
}

func (s *userService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	log := logger.FromContextOr(ctx, s.logger)

	user := models.User{
		ID:       s.createdUserID,
		Username: req.Username,
	}
	log.Info().Int64("id", user.ID).Str("username", user.Username).Msg("user created")

	return user, nil
}
