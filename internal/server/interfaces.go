package server

// Server defines the lifecycle contract for the transport server managed by
// this package.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer binds the listener, serves requests and blocks until a
	// termination signal arrives and the graceful shutdown completes.
	// A bind failure is returned immediately and wraps [ErrBindFailed].
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown() error
}
