package logging

import (
	"os"

	"go.uber.org/zap"
)

// New builds the process logger. Production JSON output by default;
// set APP_ENV=development for human-readable console output.
func New() *zap.Logger {
	var (
		log *zap.Logger
		err error
	)

	if os.Getenv("APP_ENV") == "development" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		// Logging must not take the process down before it starts.
		return zap.NewNop()
	}
	return log
}
