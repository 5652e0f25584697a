// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware. The
// authorization gate ([Handler.auth]) guards the protected route group;
// request tracing, access logging, CORS and response compression are
// applied to every route before requests reach the service layer.
package http
