// Package logging builds the structured logger used across the engines.
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// New creates a logger for the given environment. "production" gets the
// sampled JSON config; anything else gets the human-readable development
// config.
func New(environment string) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger, nil
}
