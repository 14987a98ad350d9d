package entity

import (
	"time"

	"github.com/google/uuid"
)

// TaskItem is a dated to-do item. Unlike the other habit entries its date
// is caller-supplied on creation and may be rewritten on update.
type TaskItem struct {
	ID          uuid.UUID
	ProfileID   uuid.UUID
	Date        time.Time
	Title       string
	Description string
	IsComplete  bool
	Priority    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
