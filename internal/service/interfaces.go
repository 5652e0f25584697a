// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-auth-gate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService decides whether a credential admits a request.
type AuthService interface {
	// Authorize verifies credential within the configured deadline.
	// It returns ErrCredentialMismatch when the credential is rejected and
	// ErrVerificationTimeout when no verdict arrives in time or ctx ends first.
	Authorize(ctx context.Context, credential string) (models.Identity, error)
}

// Verifier checks a credential and produces the identity it belongs to.
// Verify may block; implementations should return promptly once ctx is done.
type Verifier interface {
	Verify(ctx context.Context, credential string) (models.Identity, bool)
}

type UserService interface {
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
