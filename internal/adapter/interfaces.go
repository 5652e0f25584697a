// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the gate service's HTTP API.
//
// The primary abstraction is [ServerAdapter], which decouples callers from
// the transport. The package ships an HTTP implementation built on resty
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrUnauthorized]
// for 401, [ErrUnprocessableEntity] for 422).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-auth-gate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the gate service.
type ServerAdapter interface {
	// Greet calls the protected root route with token as the verbatim
	// Authorization value and returns the greeting. An empty token sends no
	// Authorization header. A rejected token yields [ErrUnauthorized].
	Greet(ctx context.Context, token string) (string, error)

	// CreateUser posts username to the users route and returns the record
	// the server built for it.
	CreateUser(ctx context.Context, username string) (models.User, error)

	// Version returns the server's application version.
	Version(ctx context.Context) (string, error)
}
