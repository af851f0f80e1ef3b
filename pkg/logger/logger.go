package logger

import (
	"go.uber.org/zap"
)

const environmentDevelopment = "development"

// NewLogger builds a production zap logger, or a development one when the
// service runs with NODE_ENV=development.
func NewLogger(environment string) (*zap.Logger, error) {
	if environment == environmentDevelopment {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}
