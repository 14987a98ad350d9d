package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MeditationUsecase defines the interface for meditation business operations.
type MeditationUsecase interface {
	// AddEntry records minutes of meditation dated today, lazily creating
	// the profile when none exists.
	AddEntry(ctx context.Context, input *AddMeditationInput) (*MeditationEntryOutput, error)

	// Today returns today's entries, their total and the recommended target.
	Today(ctx context.Context) (*MeditationTodayOutput, error)

	// Week returns per-day totals for the 7-day window starting at weekStart,
	// or at the Monday of the current week when weekStart is nil.
	Week(ctx context.Context, weekStart *time.Time) (*MeditationWeekOutput, error)

	// UpdateEntry rewrites the payload of an existing entry.
	UpdateEntry(ctx context.Context, id uuid.UUID, input *UpdateMeditationInput) (*MeditationEntryOutput, error)

	// RemoveEntry deletes an entry by ID.
	RemoveEntry(ctx context.Context, id uuid.UUID) error
}

// AddMeditationInput defines the data required to record a meditation session.
type AddMeditationInput struct {
	Minutes int `json:"minutes" validate:"required,gt=0"`
}

// UpdateMeditationInput defines the data required to rewrite a meditation entry.
type UpdateMeditationInput struct {
	Minutes int `json:"minutes" validate:"required,gt=0"`
}

// MeditationEntryOutput is the outward representation of one meditation entry.
type MeditationEntryOutput struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	Minutes   int       `json:"minutes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MeditationTodayOutput is the daily meditation view.
type MeditationTodayOutput struct {
	Date               string                   `json:"date"`
	TotalMinutes       int                      `json:"total_minutes"`
	RecommendedMinutes int                      `json:"recommended_minutes"`
	Entries            []*MeditationEntryOutput `json:"entries"`
}

// MeditationWeekOutput maps each of the 7 window dates to its total minutes.
type MeditationWeekOutput struct {
	WeekStart          string         `json:"week_start"`
	MinutesByDay       map[string]int `json:"minutes_by_day"`
	RecommendedMinutes int            `json:"recommended_minutes"`
}
