package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskItemModel mirrors the 'task_items' table.
type TaskItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProfileID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Date        time.Time `gorm:"type:date;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	IsComplete  bool      `gorm:"not null;default:false"`
	Priority    int       `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Profile *ProfileModel `gorm:"foreignKey:ProfileID"`
}

// TableName explicitly sets the table name for GORM.
func (TaskItemModel) TableName() string {
	return "task_items"
}
