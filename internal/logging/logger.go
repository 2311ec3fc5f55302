package logging

import (
	"log"
	"os"
)

// New returns a logger whose lines are prefixed with the owning component,
// so interleaved output from the tracker and the HTTP layer stays readable.
func New(component string) *log.Logger {
	prefix := component
	if prefix != "" {
		prefix = "[" + component + "] "
	}

	return log.New(os.Stdout, prefix, log.LstdFlags|log.Lmicroseconds)
}
