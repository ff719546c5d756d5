package utils

import (
	"io"

	"github.com/MrSnakeDoc/newtab/internal/logger"
)

// Close closes c and ignores any error.
// Use for best-effort cleanup in defer where error handling is not critical.
func Close(c io.Closer) {
	_ = c.Close()
}

// CloseLogged closes c and logs a failure under name.
// A nil c is a no-op.
func CloseLogged(c io.Closer, name string, log logger.Logger) bool {
	if c == nil {
		return true
	}
	if err := c.Close(); err != nil {
		log.Warn("failed to close", logger.String("resource", name), logger.Error(err))
		return false
	}
	return true
}
