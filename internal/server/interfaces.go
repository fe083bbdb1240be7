package server

// Server is the lifecycle contract shared by the transport servers this
// package manages.
//
// RunServer blocks until the server stops; Shutdown asks for a graceful
// stop and releases resources.
type Server interface {
	RunServer()
	Shutdown()
}
