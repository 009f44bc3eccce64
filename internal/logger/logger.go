package logger

import (
	"github.com/aleister1102/siteeagle/internal/config"
	"github.com/rs/zerolog"
)

// New creates the application logger from the log section of the config.
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	return NewLoggerBuilder().WithConfig(cfg).Build()
}
