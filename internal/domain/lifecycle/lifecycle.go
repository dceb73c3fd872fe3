// Package lifecycle holds shared lifecycle constants for startup and
// shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start/stop hooks such as datastore pings and
// graceful server shutdown.
const DefaultTimeout = 10 * time.Second
