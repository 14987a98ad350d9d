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

// meditationService implements the MeditationUsecase interface.
type meditationService struct {
	core habitCore[entity.MeditationSession]
}

// NewMeditationService is the constructor for meditationService.
func NewMeditationService(
	entries repository.HabitRepository[entity.MeditationSession],
	profiles repository.ProfileRepository,
	clock service.Clock,
	logger *slog.Logger,
) usecase.MeditationUsecase {
	return &meditationService{
		core: newHabitCore(entries, profiles, clock, logger),
	}
}

// AddEntry records minutes of meditation dated today.
func (srv *meditationService) AddEntry(ctx context.Context, input *usecase.AddMeditationInput) (*usecase.MeditationEntryOutput, error) {
	profile, err := srv.core.ensureProfile(ctx)
	if err != nil {
		return nil, err
	}

	entry := &entity.MeditationSession{
		ProfileID: profile.ID,
		Date:      srv.core.clock.Today(),
		Minutes:   input.Minutes,
	}
	if err := srv.core.entries.Create(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to create meditation entry")
	}

	return toMeditationEntryOutput(entry), nil
}

// Today returns today's entries, their total and the recommended target.
func (srv *meditationService) Today(ctx context.Context) (*usecase.MeditationTodayOutput, error) {
	day, rows, err := srv.core.todayRows(ctx)
	if err != nil {
		return nil, err
	}

	total := 0
	outputs := make([]*usecase.MeditationEntryOutput, 0, len(rows))
	for _, row := range rows {
		total += row.Minutes
		outputs = append(outputs, toMeditationEntryOutput(row))
	}

	return &usecase.MeditationTodayOutput{
		Date:               habit.Key(day),
		TotalMinutes:       total,
		RecommendedMinutes: habit.MeditationTargetMinutes,
		Entries:            outputs,
	}, nil
}

// Week returns per-day totals for the resolved 7-day window.
func (srv *meditationService) Week(ctx context.Context, weekStart *time.Time) (*usecase.MeditationWeekOutput, error) {
	start, rows, err := srv.core.weekRows(ctx, weekStart)
	if err != nil {
		return nil, err
	}

	totals := habit.Weekly(start, rows,
		func(row *entity.MeditationSession) time.Time { return row.Date },
		habit.EmptySum,
		habit.SumMerge(func(row *entity.MeditationSession) int { return row.Minutes }),
	)

	return &usecase.MeditationWeekOutput{
		WeekStart:          habit.Key(start),
		MinutesByDay:       totals,
		RecommendedMinutes: habit.MeditationTargetMinutes,
	}, nil
}

// UpdateEntry rewrites the payload of an existing entry.
func (srv *meditationService) UpdateEntry(ctx context.Context, id uuid.UUID, input *usecase.UpdateMeditationInput) (*usecase.MeditationEntryOutput, error) {
	entry, err := srv.core.findEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	entry.Minutes = input.Minutes
	if err := srv.core.entries.Update(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to update meditation entry")
	}

	return toMeditationEntryOutput(entry), nil
}

// RemoveEntry deletes an entry by ID.
func (srv *meditationService) RemoveEntry(ctx context.Context, id uuid.UUID) error {
	return srv.core.removeEntry(ctx, id)
}

func toMeditationEntryOutput(entry *entity.MeditationSession) *usecase.MeditationEntryOutput {
	if entry == nil {
		return nil
	}

	return &usecase.MeditationEntryOutput{
		ID:        entry.ID,
		Date:      habit.Key(entry.Date),
		Minutes:   entry.Minutes,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}
