// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// Get returns the stored profile, or nil when none exists yet.
	Get(ctx context.Context) (*ProfileOutput, error)

	// Update full-replaces the profile's scalar fields, creating the
	// profile first when absent.
	Update(ctx context.Context, input *UpdateProfileInput) (*ProfileOutput, error)
}

// UpdateProfileInput defines the data required to update the profile.
// All scalar fields are overwritten at once; there is no partial update.
type UpdateProfileInput struct {
	WeightKG     float64 `json:"weight_kg" validate:"gte=0"`
	HeightCM     float64 `json:"height_cm" validate:"gte=0"`
	AgeYears     int     `json:"age_years" validate:"gte=0"`
	SleepQuality int     `json:"sleep_quality" validate:"gte=0,lte=100"`
	SleepHours   float64 `json:"sleep_hours" validate:"gte=0,lte=24"`
}

// ProfileOutput is the outward representation of the profile.
type ProfileOutput struct {
	ID           uuid.UUID `json:"id"`
	WeightKG     float64   `json:"weight_kg"`
	HeightCM     float64   `json:"height_cm"`
	AgeYears     int       `json:"age_years"`
	SleepQuality int       `json:"sleep_quality"`
	SleepHours   float64   `json:"sleep_hours"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
