// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrBindFailed is returned when the listen address cannot be bound.
	// The caller is expected to treat it as fatal; binding is not retried.
	ErrBindFailed = errors.New("failed to bind listen address")

	errNoServersAreCreated = errors.New("no servers are created")
)
