package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SunlightUsecase defines the interface for sunlight-exposure business operations.
type SunlightUsecase interface {
	// AddEntry records minutes of sunlight dated today, lazily creating the
	// profile when none exists.
	AddEntry(ctx context.Context, input *AddSunlightInput) (*SunlightEntryOutput, error)

	// Today returns today's entries, their total and the recommended target.
	Today(ctx context.Context) (*SunlightTodayOutput, error)

	// Week returns per-day totals for the 7-day window starting at weekStart,
	// or at the Monday of the current week when weekStart is nil.
	Week(ctx context.Context, weekStart *time.Time) (*SunlightWeekOutput, error)

	// UpdateEntry rewrites the payload of an existing entry.
	UpdateEntry(ctx context.Context, id uuid.UUID, input *UpdateSunlightInput) (*SunlightEntryOutput, error)

	// RemoveEntry deletes an entry by ID.
	RemoveEntry(ctx context.Context, id uuid.UUID) error
}

// AddSunlightInput defines the data required to record sunlight exposure.
type AddSunlightInput struct {
	Minutes int `json:"minutes" validate:"required,gt=0"`
}

// UpdateSunlightInput defines the data required to rewrite a sunlight entry.
type UpdateSunlightInput struct {
	Minutes int `json:"minutes" validate:"required,gt=0"`
}

// SunlightEntryOutput is the outward representation of one sunlight entry.
type SunlightEntryOutput struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	Minutes   int       `json:"minutes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SunlightTodayOutput is the daily sunlight view.
type SunlightTodayOutput struct {
	Date               string                 `json:"date"`
	TotalMinutes       int                    `json:"total_minutes"`
	RecommendedMinutes int                    `json:"recommended_minutes"`
	Entries            []*SunlightEntryOutput `json:"entries"`
}

// SunlightWeekOutput maps each of the 7 window dates to its total minutes.
type SunlightWeekOutput struct {
	WeekStart          string         `json:"week_start"`
	MinutesByDay       map[string]int `json:"minutes_by_day"`
	RecommendedMinutes int            `json:"recommended_minutes"`
}
