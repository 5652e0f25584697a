// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It drives a [adapter.ServerAdapter] through the public and protected routes
// of the gate service and logs what the server answered.
package client
