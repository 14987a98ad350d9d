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

// sleepService implements the SleepUsecase interface. The domain assumes at
// most one record per day but nothing enforces it at write time; duplicates
// resolve to the last stored record at read time.
type sleepService struct {
	core habitCore[entity.SleepRecord]
}

// NewSleepService is the constructor for sleepService.
func NewSleepService(
	entries repository.HabitRepository[entity.SleepRecord],
	profiles repository.ProfileRepository,
	clock service.Clock,
	logger *slog.Logger,
) usecase.SleepUsecase {
	return &sleepService{
		core: newHabitCore(entries, profiles, clock, logger),
	}
}

// AddEntry records one night of sleep dated today.
func (srv *sleepService) AddEntry(ctx context.Context, input *usecase.AddSleepInput) (*usecase.SleepEntryOutput, error) {
	profile, err := srv.core.ensureProfile(ctx)
	if err != nil {
		return nil, err
	}

	entry := &entity.SleepRecord{
		ProfileID: profile.ID,
		Date:      srv.core.clock.Today(),
		Hours:     input.Hours,
		Quality:   input.Quality,
	}
	if err := srv.core.entries.Create(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to create sleep entry")
	}

	return toSleepEntryOutput(entry), nil
}

// Today returns today's effective record and the raw entries behind it.
func (srv *sleepService) Today(ctx context.Context) (*usecase.SleepTodayOutput, error) {
	day, rows, err := srv.core.todayRows(ctx)
	if err != nil {
		return nil, err
	}

	outputs := make([]*usecase.SleepEntryOutput, 0, len(rows))
	for _, row := range rows {
		outputs = append(outputs, toSleepEntryOutput(row))
	}

	// Rows arrive in storage order, so the effective record is the last one.
	var record *usecase.SleepEntryOutput
	if len(outputs) > 0 {
		record = outputs[len(outputs)-1]
	}

	return &usecase.SleepTodayOutput{
		Date:    habit.Key(day),
		Record:  record,
		Entries: outputs,
	}, nil
}

// Week returns the per-day record for the resolved 7-day window, null for
// days without one.
func (srv *sleepService) Week(ctx context.Context, weekStart *time.Time) (*usecase.SleepWeekOutput, error) {
	start, rows, err := srv.core.weekRows(ctx, weekStart)
	if err != nil {
		return nil, err
	}

	records := habit.Weekly(start, rows,
		func(row *entity.SleepRecord) time.Time { return row.Date },
		habit.EmptySingle[entity.SleepRecord],
		habit.ReplaceMerge[entity.SleepRecord](),
	)

	byDay := make(map[string]*usecase.SleepEntryOutput, len(records))
	for day, record := range records {
		byDay[day] = toSleepEntryOutput(record)
	}

	return &usecase.SleepWeekOutput{
		WeekStart:    habit.Key(start),
		RecordsByDay: byDay,
	}, nil
}

// UpdateEntry rewrites the payload of an existing entry.
func (srv *sleepService) UpdateEntry(ctx context.Context, id uuid.UUID, input *usecase.UpdateSleepInput) (*usecase.SleepEntryOutput, error) {
	entry, err := srv.core.findEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	entry.Hours = input.Hours
	entry.Quality = input.Quality
	if err := srv.core.entries.Update(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to update sleep entry")
	}

	return toSleepEntryOutput(entry), nil
}

// RemoveEntry deletes an entry by ID.
func (srv *sleepService) RemoveEntry(ctx context.Context, id uuid.UUID) error {
	return srv.core.removeEntry(ctx, id)
}

func toSleepEntryOutput(entry *entity.SleepRecord) *usecase.SleepEntryOutput {
	if entry == nil {
		return nil
	}

	return &usecase.SleepEntryOutput{
		ID:        entry.ID,
		Date:      habit.Key(entry.Date),
		Hours:     entry.Hours,
		Quality:   entry.Quality,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}
