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

// sunlightService implements the SunlightUsecase interface.
type sunlightService struct {
	core habitCore[entity.SunlightSession]
}

// NewSunlightService is the constructor for sunlightService.
func NewSunlightService(
	entries repository.HabitRepository[entity.SunlightSession],
	profiles repository.ProfileRepository,
	clock service.Clock,
	logger *slog.Logger,
) usecase.SunlightUsecase {
	return &sunlightService{
		core: newHabitCore(entries, profiles, clock, logger),
	}
}

// AddEntry records minutes of sunlight dated today.
func (srv *sunlightService) AddEntry(ctx context.Context, input *usecase.AddSunlightInput) (*usecase.SunlightEntryOutput, error) {
	profile, err := srv.core.ensureProfile(ctx)
	if err != nil {
		return nil, err
	}

	entry := &entity.SunlightSession{
		ProfileID: profile.ID,
		Date:      srv.core.clock.Today(),
		Minutes:   input.Minutes,
	}
	if err := srv.core.entries.Create(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to create sunlight entry")
	}

	return toSunlightEntryOutput(entry), nil
}

// Today returns today's entries, their total and the recommended target.
func (srv *sunlightService) Today(ctx context.Context) (*usecase.SunlightTodayOutput, error) {
	day, rows, err := srv.core.todayRows(ctx)
	if err != nil {
		return nil, err
	}

	total := 0
	outputs := make([]*usecase.SunlightEntryOutput, 0, len(rows))
	for _, row := range rows {
		total += row.Minutes
		outputs = append(outputs, toSunlightEntryOutput(row))
	}

	return &usecase.SunlightTodayOutput{
		Date:               habit.Key(day),
		TotalMinutes:       total,
		RecommendedMinutes: habit.SunlightTargetMinutes,
		Entries:            outputs,
	}, nil
}

// Week returns per-day totals for the resolved 7-day window.
func (srv *sunlightService) Week(ctx context.Context, weekStart *time.Time) (*usecase.SunlightWeekOutput, error) {
	start, rows, err := srv.core.weekRows(ctx, weekStart)
	if err != nil {
		return nil, err
	}

	totals := habit.Weekly(start, rows,
		func(row *entity.SunlightSession) time.Time { return row.Date },
		habit.EmptySum,
		habit.SumMerge(func(row *entity.SunlightSession) int { return row.Minutes }),
	)

	return &usecase.SunlightWeekOutput{
		WeekStart:          habit.Key(start),
		MinutesByDay:       totals,
		RecommendedMinutes: habit.SunlightTargetMinutes,
	}, nil
}

// UpdateEntry rewrites the payload of an existing entry.
func (srv *sunlightService) UpdateEntry(ctx context.Context, id uuid.UUID, input *usecase.UpdateSunlightInput) (*usecase.SunlightEntryOutput, error) {
	entry, err := srv.core.findEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	entry.Minutes = input.Minutes
	if err := srv.core.entries.Update(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to update sunlight entry")
	}

	return toSunlightEntryOutput(entry), nil
}

// RemoveEntry deletes an entry by ID.
func (srv *sunlightService) RemoveEntry(ctx context.Context, id uuid.UUID) error {
	return srv.core.removeEntry(ctx, id)
}

func toSunlightEntryOutput(entry *entity.SunlightSession) *usecase.SunlightEntryOutput {
	if entry == nil {
		return nil
	}

	return &usecase.SunlightEntryOutput{
		ID:        entry.ID,
		Date:      habit.Key(entry.Date),
		Minutes:   entry.Minutes,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}
