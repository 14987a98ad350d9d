package model

import (
	"time"

	"github.com/google/uuid"
)

// WaterIntakeModel mirrors the 'water_intakes' table.
type WaterIntakeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null;index"`
	Date      time.Time `gorm:"type:date;not null;index"`
	AmountML  int       `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Profile *ProfileModel `gorm:"foreignKey:ProfileID"`
}

// TableName explicitly sets the table name for GORM.
func (WaterIntakeModel) TableName() string {
	return "water_intakes"
}
