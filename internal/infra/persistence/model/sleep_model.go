package model

import (
	"time"

	"github.com/google/uuid"
)

// SleepRecordModel mirrors the 'sleep_records' table. One record per day is
// the domain's expectation; the schema does not enforce uniqueness.
type SleepRecordModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null;index"`
	Date      time.Time `gorm:"type:date;not null;index"`
	Hours     float64   `gorm:"type:numeric(4,2);not null"`
	Quality   int       `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Profile *ProfileModel `gorm:"foreignKey:ProfileID"`
}

// TableName explicitly sets the table name for GORM.
func (SleepRecordModel) TableName() string {
	return "sleep_records"
}
