package model

import (
	"time"

	"github.com/google/uuid"
)

// MeditationSessionModel mirrors the 'meditation_sessions' table.
type MeditationSessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null;index"`
	Date      time.Time `gorm:"type:date;not null;index"`
	Minutes   int       `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Profile *ProfileModel `gorm:"foreignKey:ProfileID"`
}

// TableName explicitly sets the table name for GORM.
func (MeditationSessionModel) TableName() string {
	return "meditation_sessions"
}
