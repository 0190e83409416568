// Package timeouts defines shared timeout constants used by the site and its
// operator tooling.
package timeouts

import "time"

// GRPCDial caps the wait time when dialing the site's gRPC health listener.
const GRPCDial = 2 * time.Second

// HealthCheck caps a single gRPC health probe.
const HealthCheck = time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// Render caps server-side feature work such as poster rasterization.
const Render = 10 * time.Second
