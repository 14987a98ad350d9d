package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ActivityUsecase defines the interface for physical-activity business operations.
type ActivityUsecase interface {
	// AddEntry records an exercise session dated today, lazily creating the
	// profile when none exists.
	AddEntry(ctx context.Context, input *AddActivityInput) (*ActivityEntryOutput, error)

	// Today returns today's sessions and their total duration.
	Today(ctx context.Context) (*ActivityTodayOutput, error)

	// Week returns per-day session lists for the 7-day window starting at
	// weekStart, or at the Monday of the current week when weekStart is nil.
	Week(ctx context.Context, weekStart *time.Time) (*ActivityWeekOutput, error)

	// UpdateEntry rewrites the payload of an existing entry.
	UpdateEntry(ctx context.Context, id uuid.UUID, input *UpdateActivityInput) (*ActivityEntryOutput, error)

	// RemoveEntry deletes an entry by ID.
	RemoveEntry(ctx context.Context, id uuid.UUID) error
}

// AddActivityInput defines the data required to record an exercise session.
type AddActivityInput struct {
	Modality        string `json:"modality" validate:"required"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,gt=0"`
}

// UpdateActivityInput defines the data required to rewrite an activity entry.
type UpdateActivityInput struct {
	Modality        string `json:"modality" validate:"required"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,gt=0"`
}

// ActivityEntryOutput is the outward representation of one exercise session.
type ActivityEntryOutput struct {
	ID              uuid.UUID `json:"id"`
	Date            string    `json:"date"`
	Modality        string    `json:"modality"`
	DurationMinutes int       `json:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ActivityTodayOutput is the daily activity view.
type ActivityTodayOutput struct {
	Date         string                 `json:"date"`
	TotalMinutes int                    `json:"total_minutes"`
	Entries      []*ActivityEntryOutput `json:"entries"`
}

// ActivityWeekOutput maps each of the 7 window dates to its sessions in
// storage order, empty lists for days without any.
type ActivityWeekOutput struct {
	WeekStart    string                            `json:"week_start"`
	EntriesByDay map[string][]*ActivityEntryOutput `json:"entries_by_day"`
}
