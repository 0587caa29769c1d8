// Package lifecycle holds process-wide lifecycle constants shared by fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook (DB ping, migrations, HTTP shutdown).
const DefaultTimeout = 15 * time.Second
