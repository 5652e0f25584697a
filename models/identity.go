// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Identity describes the caller admitted by the authorization gate.
//
// An Identity only exists for the lifetime of one request: the gate attaches it
// to the request context after successful verification and it is dropped when
// the request completes.
type Identity struct {
	// DisplayName is the human-readable name of the authenticated caller.
	// It is used for logging only and never written to a response.
	DisplayName string `json:"display_name"`
}
