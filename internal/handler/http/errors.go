// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authorization gate when reading the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header contains bytes outside visible ASCII and horizontal tab.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)

// Sentinel errors produced while decoding a JSON request body.
var (
	ErrUnsupportedMediaType = errors.New("expected request with `Content-Type: application/json`")
	ErrMalformedJSON        = errors.New("failed to parse the request body as JSON")
	ErrInvalidJSONData      = errors.New("failed to deserialize the JSON body into the target type")
	ErrRequestBodyTooLarge  = errors.New("request body is too large")
)
