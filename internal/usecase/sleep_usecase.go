package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SleepUsecase defines the interface for sleep-record business operations.
type SleepUsecase interface {
	// AddEntry records one night of sleep dated today, lazily creating the
	// profile when none exists.
	AddEntry(ctx context.Context, input *AddSleepInput) (*SleepEntryOutput, error)

	// Today returns today's record (or nil) and any raw entries behind it.
	Today(ctx context.Context) (*SleepTodayOutput, error)

	// Week returns the per-day record for the 7-day window starting at
	// weekStart, or at the Monday of the current week when weekStart is nil.
	Week(ctx context.Context, weekStart *time.Time) (*SleepWeekOutput, error)

	// UpdateEntry rewrites the payload of an existing entry.
	UpdateEntry(ctx context.Context, id uuid.UUID, input *UpdateSleepInput) (*SleepEntryOutput, error)

	// RemoveEntry deletes an entry by ID.
	RemoveEntry(ctx context.Context, id uuid.UUID) error
}

// AddSleepInput defines the data required to record a night of sleep.
type AddSleepInput struct {
	Hours   float64 `json:"hours" validate:"gte=0,lte=24"`
	Quality int     `json:"quality" validate:"gte=0,lte=100"`
}

// UpdateSleepInput defines the data required to rewrite a sleep entry.
type UpdateSleepInput struct {
	Hours   float64 `json:"hours" validate:"gte=0,lte=24"`
	Quality int     `json:"quality" validate:"gte=0,lte=100"`
}

// SleepEntryOutput is the outward representation of one sleep record.
type SleepEntryOutput struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	Hours     float64   `json:"hours"`
	Quality   int       `json:"quality"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SleepTodayOutput is the daily sleep view. Record is the effective record
// for the day (last stored wins on duplicates) and may be null.
type SleepTodayOutput struct {
	Date    string              `json:"date"`
	Record  *SleepEntryOutput   `json:"record"`
	Entries []*SleepEntryOutput `json:"entries"`
}

// SleepWeekOutput maps each of the 7 window dates to its record, null for
// days without one.
type SleepWeekOutput struct {
	WeekStart    string                       `json:"week_start"`
	RecordsByDay map[string]*SleepEntryOutput `json:"records_by_day"`
}
