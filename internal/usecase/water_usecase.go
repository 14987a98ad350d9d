package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// WaterUsecase defines the interface for water-intake business operations.
type WaterUsecase interface {
	// AddEntry records a drink of water dated today, lazily creating the
	// profile when none exists.
	AddEntry(ctx context.Context, input *AddWaterInput) (*WaterEntryOutput, error)

	// Today returns today's entries, their total and the recommended target.
	Today(ctx context.Context) (*WaterTodayOutput, error)

	// Week returns per-day totals for the 7-day window starting at weekStart,
	// or at the Monday of the current week when weekStart is nil.
	Week(ctx context.Context, weekStart *time.Time) (*WaterWeekOutput, error)

	// UpdateEntry rewrites the payload of an existing entry.
	UpdateEntry(ctx context.Context, id uuid.UUID, input *UpdateWaterInput) (*WaterEntryOutput, error)

	// RemoveEntry deletes an entry by ID.
	RemoveEntry(ctx context.Context, id uuid.UUID) error
}

// AddWaterInput defines the data required to record a drink of water.
type AddWaterInput struct {
	AmountML int `json:"amount_ml" validate:"required,gt=0"`
}

// UpdateWaterInput defines the data required to rewrite a water entry.
type UpdateWaterInput struct {
	AmountML int `json:"amount_ml" validate:"required,gt=0"`
}

// WaterEntryOutput is the outward representation of one water entry.
type WaterEntryOutput struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	AmountML  int       `json:"amount_ml"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WaterTodayOutput is the daily water view.
type WaterTodayOutput struct {
	Date          string              `json:"date"`
	TotalML       int                 `json:"total_ml"`
	RecommendedML int                 `json:"recommended_ml"`
	Entries       []*WaterEntryOutput `json:"entries"`
}

// WaterWeekOutput maps each of the 7 window dates to its total intake.
type WaterWeekOutput struct {
	WeekStart     string         `json:"week_start"`
	TotalsByDay   map[string]int `json:"totals_by_day"`
	RecommendedML int            `json:"recommended_ml"`
}
