// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging command-line flags, environment variables, an
// optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix is the prefix applied to all nested env tag lookups (caarlos0/env).
//   - env is the direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the authorization gate and handler settings.
	App App `envPrefix:"APP_"`

	// Server holds listener and HTTP router settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the outbound settings used by the command-line client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Client holds the values the command-line client sends.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds the settings of the authorization gate and the route handlers.
type App struct {
	// AcceptedToken is the only credential the simulated verifier accepts.
	// The Authorization header value is compared to it verbatim.
	// Env: APP_ACCEPTED_TOKEN
	AcceptedToken string `env:"ACCEPTED_TOKEN"`

	// DisplayName is the name carried by the identity produced on a match.
	// Env: APP_DISPLAY_NAME
	DisplayName string `env:"DISPLAY_NAME"`

	// VerifyDelay is the artificial latency of the simulated verifier.
	// Env: APP_VERIFY_DELAY
	VerifyDelay time.Duration `env:"VERIFY_DELAY"`

	// VerifyTimeout is the deadline the gate imposes on one verification.
	// Env: APP_VERIFY_TIMEOUT
	VerifyTimeout time.Duration `env:"VERIFY_TIMEOUT"`

	// CancelOnTimeout makes the gate cancel an in-flight verification when
	// the deadline elapses. By default the verification is left running and
	// its result discarded.
	// Env: APP_CANCEL_ON_TIMEOUT
	CancelOnTimeout bool `env:"CANCEL_ON_TIMEOUT"`

	// CreatedUserID is the identifier returned by POST /users.
	// Env: APP_CREATED_USER_ID
	CreatedUserID int64 `env:"CREATED_USER_ID"`

	// Version is served by GET /version. Falls back to the build version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimum zerolog level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network settings for the inbound HTTP listener.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server binds to,
	// in "host:port" format (e.g. "0.0.0.0:3000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// ShutdownTimeout bounds graceful shutdown after a stop signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// AllowedOrigins enables CORS for the listed origins when non-empty.
	// Env: SERVER_ALLOWED_ORIGINS (comma-separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS"`
}

// Adapter holds settings of the client's HTTP transport.
type Adapter struct {
	// HTTPAddress is the base URL of the gate service
	// (e.g. "http://localhost:3000"); a missing scheme defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Client holds the payload the command-line client sends.
type Client struct {
	// Token is sent verbatim in the Authorization header of GET /.
	// Env: CLIENT_TOKEN
	Token string `env:"TOKEN"`

	// Username is posted to POST /users.
	// Env: CLIENT_USERNAME
	Username string `env:"USERNAME"`
}

// GetStructuredConfig loads, merges, and validates the configuration.
// Sources are consulted in the following order; a field keeps the first
// non-zero value it receives:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags().
		withEnv().
		withJSON().
		withDefaults().
		build()
}
