package terrain

import (
	"io"
	"log"
)

var logger *log.Logger = log.New(io.Discard, "", log.LstdFlags)

// SetLogger directs the package's progress output to an external logger.
// By default everything is discarded.
func SetLogger(l *log.Logger) {
	logger = l
}
