package entity

import (
	"time"

	"github.com/google/uuid"
)

// Every habit entry carries a plain calendar date (midnight UTC, no
// time-of-day) and a non-nullable reference to the owning profile.
// Date and ProfileID are immutable after creation.

// WaterIntake records one drink of water on a given day.
type WaterIntake struct {
	ID        uuid.UUID
	ProfileID uuid.UUID
	Date      time.Time
	AmountML  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SunlightSession records minutes of sunlight exposure on a given day.
type SunlightSession struct {
	ID        uuid.UUID
	ProfileID uuid.UUID
	Date      time.Time
	Minutes   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MeditationSession records minutes of meditation on a given day.
type MeditationSession struct {
	ID        uuid.UUID
	ProfileID uuid.UUID
	Date      time.Time
	Minutes   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SleepRecord records one night of sleep. The domain assumes at most one
// record per day; duplicates are not prevented at write time.
type SleepRecord struct {
	ID        uuid.UUID
	ProfileID uuid.UUID
	Date      time.Time
	Hours     float64 // 0-24
	Quality   int     // 0-100
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PhysicalActivity records one exercise session on a given day. A day may
// hold any number of sessions.
type PhysicalActivity struct {
	ID              uuid.UUID
	ProfileID       uuid.UUID
	Date            time.Time
	Modality        string
	DurationMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
