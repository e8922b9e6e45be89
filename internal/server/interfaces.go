package server

// Server is a transport the process runs until it is told to stop.
type Server interface {
	// RunServer blocks while the server accepts connections.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight
	// requests, bounded by the configured shutdown timeout.
	Shutdown()
}
