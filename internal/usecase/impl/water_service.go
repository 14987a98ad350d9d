package impl

import (
	"context"
	"log/slog"
	"time"

	"vita/internal/domain/entity"
	"vita/internal/domain/habit"
	"vita/internal/domain/repository"
	"vita/internal/domain/service"
	"vita/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// waterService implements the WaterUsecase interface.
type waterService struct {
	core habitCore[entity.WaterIntake]
}

// NewWaterService is the constructor for waterService.
func NewWaterService(
	entries repository.HabitRepository[entity.WaterIntake],
	profiles repository.ProfileRepository,
	clock service.Clock,
	logger *slog.Logger,
) usecase.WaterUsecase {
	return &waterService{
		core: newHabitCore(entries, profiles, clock, logger),
	}
}

// AddEntry records a drink of water dated today.
func (srv *waterService) AddEntry(ctx context.Context, input *usecase.AddWaterInput) (*usecase.WaterEntryOutput, error) {
	profile, err := srv.core.ensureProfile(ctx)
	if err != nil {
		return nil, err
	}

	entry := &entity.WaterIntake{
		ProfileID: profile.ID,
		Date:      srv.core.clock.Today(),
		AmountML:  input.AmountML,
	}
	if err := srv.core.entries.Create(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to create water entry")
	}

	srv.core.logger.Debug("Recorded water intake", "entryID", entry.ID, "amountML", entry.AmountML)

	return toWaterEntryOutput(entry), nil
}

// Today returns today's entries, their total and the recommended target.
func (srv *waterService) Today(ctx context.Context) (*usecase.WaterTodayOutput, error) {
	day, rows, err := srv.core.todayRows(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := srv.core.loadProfile(ctx)
	if err != nil {
		return nil, err
	}

	total := 0
	outputs := make([]*usecase.WaterEntryOutput, 0, len(rows))
	for _, row := range rows {
		total += row.AmountML
		outputs = append(outputs, toWaterEntryOutput(row))
	}

	return &usecase.WaterTodayOutput{
		Date:          habit.Key(day),
		TotalML:       total,
		RecommendedML: habit.WaterTargetML(profile),
		Entries:       outputs,
	}, nil
}

// Week returns per-day totals for the resolved 7-day window.
func (srv *waterService) Week(ctx context.Context, weekStart *time.Time) (*usecase.WaterWeekOutput, error) {
	start, rows, err := srv.core.weekRows(ctx, weekStart)
	if err != nil {
		return nil, err
	}

	profile, err := srv.core.loadProfile(ctx)
	if err != nil {
		return nil, err
	}

	totals := habit.Weekly(start, rows,
		func(row *entity.WaterIntake) time.Time { return row.Date },
		habit.EmptySum,
		habit.SumMerge(func(row *entity.WaterIntake) int { return row.AmountML }),
	)

	return &usecase.WaterWeekOutput{
		WeekStart:     habit.Key(start),
		TotalsByDay:   totals,
		RecommendedML: habit.WaterTargetML(profile),
	}, nil
}

// UpdateEntry rewrites the payload of an existing entry.
func (srv *waterService) UpdateEntry(ctx context.Context, id uuid.UUID, input *usecase.UpdateWaterInput) (*usecase.WaterEntryOutput, error) {
	entry, err := srv.core.findEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	entry.AmountML = input.AmountML
	if err := srv.core.entries.Update(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to update water entry")
	}

	return toWaterEntryOutput(entry), nil
}

// RemoveEntry deletes an entry by ID.
func (srv *waterService) RemoveEntry(ctx context.Context, id uuid.UUID) error {
	return srv.core.removeEntry(ctx, id)
}

func toWaterEntryOutput(entry *entity.WaterIntake) *usecase.WaterEntryOutput {
	if entry == nil {
		return nil
	}

	return &usecase.WaterEntryOutput{
		ID:        entry.ID,
		Date:      habit.Key(entry.Date),
		AmountML:  entry.AmountML,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}
