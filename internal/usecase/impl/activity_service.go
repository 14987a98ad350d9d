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

// activityService implements the ActivityUsecase interface.
type activityService struct {
	core habitCore[entity.PhysicalActivity]
}

// NewActivityService is the constructor for activityService.
func NewActivityService(
	entries repository.HabitRepository[entity.PhysicalActivity],
	profiles repository.ProfileRepository,
	clock service.Clock,
	logger *slog.Logger,
) usecase.ActivityUsecase {
	return &activityService{
		core: newHabitCore(entries, profiles, clock, logger),
	}
}

// AddEntry records an exercise session dated today.
func (srv *activityService) AddEntry(ctx context.Context, input *usecase.AddActivityInput) (*usecase.ActivityEntryOutput, error) {
	profile, err := srv.core.ensureProfile(ctx)
	if err != nil {
		return nil, err
	}

	entry := &entity.PhysicalActivity{
		ProfileID:       profile.ID,
		Date:            srv.core.clock.Today(),
		Modality:        input.Modality,
		DurationMinutes: input.DurationMinutes,
	}
	if err := srv.core.entries.Create(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to create activity entry")
	}

	return toActivityEntryOutput(entry), nil
}

// Today returns today's sessions and their total duration.
func (srv *activityService) Today(ctx context.Context) (*usecase.ActivityTodayOutput, error) {
	day, rows, err := srv.core.todayRows(ctx)
	if err != nil {
		return nil, err
	}

	total := 0
	outputs := make([]*usecase.ActivityEntryOutput, 0, len(rows))
	for _, row := range rows {
		total += row.DurationMinutes
		outputs = append(outputs, toActivityEntryOutput(row))
	}

	return &usecase.ActivityTodayOutput{
		Date:         habit.Key(day),
		TotalMinutes: total,
		Entries:      outputs,
	}, nil
}

// Week returns per-day session lists for the resolved 7-day window, empty
// lists for days without any.
func (srv *activityService) Week(ctx context.Context, weekStart *time.Time) (*usecase.ActivityWeekOutput, error) {
	start, rows, err := srv.core.weekRows(ctx, weekStart)
	if err != nil {
		return nil, err
	}

	sessions := habit.Weekly(start, rows,
		func(row *entity.PhysicalActivity) time.Time { return row.Date },
		habit.EmptyList[entity.PhysicalActivity],
		habit.AppendMerge[entity.PhysicalActivity](),
	)

	byDay := make(map[string][]*usecase.ActivityEntryOutput, len(sessions))
	for day, dayRows := range sessions {
		outputs := make([]*usecase.ActivityEntryOutput, 0, len(dayRows))
		for _, row := range dayRows {
			outputs = append(outputs, toActivityEntryOutput(row))
		}
		byDay[day] = outputs
	}

	return &usecase.ActivityWeekOutput{
		WeekStart:    habit.Key(start),
		EntriesByDay: byDay,
	}, nil
}

// UpdateEntry rewrites the payload of an existing entry.
func (srv *activityService) UpdateEntry(ctx context.Context, id uuid.UUID, input *usecase.UpdateActivityInput) (*usecase.ActivityEntryOutput, error) {
	entry, err := srv.core.findEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	entry.Modality = input.Modality
	entry.DurationMinutes = input.DurationMinutes
	if err := srv.core.entries.Update(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to update activity entry")
	}

	return toActivityEntryOutput(entry), nil
}

// RemoveEntry deletes an entry by ID.
func (srv *activityService) RemoveEntry(ctx context.Context, id uuid.UUID) error {
	return srv.core.removeEntry(ctx, id)
}

func toActivityEntryOutput(entry *entity.PhysicalActivity) *usecase.ActivityEntryOutput {
	if entry == nil {
		return nil
	}

	return &usecase.ActivityEntryOutput{
		ID:              entry.ID,
		Date:            habit.Key(entry.Date),
		Modality:        entry.Modality,
		DurationMinutes: entry.DurationMinutes,
		CreatedAt:       entry.CreatedAt,
		UpdatedAt:       entry.UpdatedAt,
	}
}
