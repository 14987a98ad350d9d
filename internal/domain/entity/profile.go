// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the single stored owner record of the tracker. Every habit
// entry references it, and weight drives the water recommendation.
// SleepQuality and SleepHours hold "today's" values and are overwritten
// wholesale on update rather than tracked historically.
type Profile struct {
	ID           uuid.UUID // Unique identifier for the profile.
	WeightKG     float64   // Body weight in kilograms.
	HeightCM     float64   // Body height in centimeters.
	AgeYears     int       // Age in whole years.
	SleepQuality int       // Current sleep quality score, 0-100.
	SleepHours   float64   // Current sleep duration in hours.
	CreatedAt    time.Time // Timestamp of when the profile was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
