// Package lifecycle holds the shared bounds for application start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every fx start/stop hook (DB ping, server shutdown, cache close).
const DefaultTimeout = 10 * time.Second
