package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// The table holds a single row in practice; nothing enforces that at the schema level.
type ProfileModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	WeightKG     float64   `gorm:"type:numeric(5,2);not null;default:0"`
	HeightCM     float64   `gorm:"type:numeric(5,2);not null;default:0"`
	AgeYears     int       `gorm:"not null;default:0"`
	SleepQuality int       `gorm:"not null;default:0"`
	SleepHours   float64   `gorm:"type:numeric(4,2);not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
