// Package server wires and runs the application's HTTP server.
//
// It binds the listen address up front so that a bind failure surfaces as
// [ErrBindFailed], then serves until SIGTERM, SIGINT or SIGQUIT arrives and
// shuts down gracefully within the configured timeout.
package server
