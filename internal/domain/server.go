package domain

import "context"

// ServerStatus is one observation of the monitored game server.
type ServerStatus struct {
	Online  bool
	Players []string
}

// StatusService queries the external game-server status endpoint.
type StatusService interface {
	Status(ctx context.Context) (ServerStatus, error)
}

// HostingService drives the game-hosting account (start the server).
type HostingService interface {
	StartServer(ctx context.Context) error
}
