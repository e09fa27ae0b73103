// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"time"

	"github.com/scribe-ops/backend/internal/application/adapter"
)

// systemClock implements the adapter.Clock interface with the wall clock.
type systemClock struct{}

// NewSystemClock creates a new system clock instance.
func NewSystemClock() adapter.Clock {
	return systemClock{}
}

// Now returns the current instant.
func (systemClock) Now() time.Time {
	return time.Now()
}
