// Package version carries the binary's identity for logs, traces, and the
// health endpoint.
package version

const (
	// Name is the service name reported to telemetry.
	Name = "blackjackd"
	// Version is the release version of the server.
	Version = "0.9.0"
)
