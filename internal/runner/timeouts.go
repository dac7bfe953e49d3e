package runner

import "time"

// shutdownTimeout bounds the final metrics flush.
const shutdownTimeout = 5 * time.Second
