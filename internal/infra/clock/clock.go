// Package clock provides the wall-clock implementation of the Clock service.
package clock

import (
	"time"

	"vita/internal/domain/habit"
	"vita/internal/domain/service"
)

type systemClock struct{}

// New returns a Clock backed by the system wall clock.
func New() service.Clock {
	return systemClock{}
}

// Today returns the server's current calendar date at midnight UTC.
func (systemClock) Today() time.Time {
	return habit.Day(time.Now())
}
