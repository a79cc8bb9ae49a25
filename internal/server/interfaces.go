package server

// Server is the lifecycle contract of the vault HTTP server.
//
// RunServer blocks until a shutdown signal arrives or Shutdown is called;
// Shutdown drains in-flight requests and releases the listener.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
