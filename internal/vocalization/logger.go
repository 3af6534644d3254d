// Package vocalization implements the classification engine: species name
// resolution, model caching, feature extraction and inference.
package vocalization

import (
	"sync"

	"github.com/tphakala/vocalization-go/internal/logger"
)

var (
	serviceLogger logger.Logger
	initOnce      sync.Once
)

// GetLogger returns the package logger scoped to the vocalization module.
func GetLogger() logger.Logger {
	initOnce.Do(func() {
		serviceLogger = logger.Global().Module("vocalization")
	})
	return serviceLogger
}
