// Package timeouts defines shared timeout constants used by service
// entrypoints and HTTP servers.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// TelemetryFlush caps the time spent exporting pending spans on exit.
const TelemetryFlush = 5 * time.Second
