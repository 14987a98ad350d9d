package model

import (
	"time"

	"github.com/google/uuid"
)

// PhysicalActivityModel mirrors the 'physical_activities' table.
type PhysicalActivityModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProfileID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Date            time.Time `gorm:"type:date;not null;index"`
	Modality        string    `gorm:"type:varchar(100);not null"`
	DurationMinutes int       `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Profile *ProfileModel `gorm:"foreignKey:ProfileID"`
}

// TableName explicitly sets the table name for GORM.
func (PhysicalActivityModel) TableName() string {
	return "physical_activities"
}
