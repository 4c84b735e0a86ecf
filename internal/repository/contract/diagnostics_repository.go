package contract

import "context"

// DiagnosticsRepository backs the readiness probe and the /db check.
type DiagnosticsRepository interface {
	// Ping verifies a pooled connection can be acquired within the
	// context deadline.
	Ping(ctx context.Context) error
	// Version runs a trivial query and returns the server version string.
	Version(ctx context.Context) (string, error)
}
