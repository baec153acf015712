// Package lifecycle holds the shared timeouts used by fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart ping and OnStop shutdown.
const DefaultTimeout = 10 * time.Second
