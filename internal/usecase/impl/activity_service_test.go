package impl

import (
	"context"
	"testing"

	"vita/internal/domain/entity"
	mockRepo "vita/internal/mocks/repository"
	"vita/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActivityService_AddEntry(t *testing.T) {
	mockEntries := mockRepo.NewMockHabitRepository[entity.PhysicalActivity](t)
	mockProfiles := mockRepo.NewMockProfileRepository(t)
	today := day("2026-08-20")
	service := NewActivityService(mockEntries, mockProfiles, pinClock(t, today), discardLogger())

	ctx := context.Background()

	mockProfiles.EXPECT().
		FindFirst(ctx).
		Return(&entity.Profile{ID: uuid.New()}, nil)

	mockEntries.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.PhysicalActivity")).
		Run(func(_ context.Context, entry *entity.PhysicalActivity) {
			assert.Equal(t, "running", entry.Modality)
			assert.Equal(t, 30, entry.DurationMinutes)
			assert.Equal(t, today, entry.Date)
		}).
		Return(nil)

	output, err := service.AddEntry(ctx, &usecase.AddActivityInput{Modality: "running", DurationMinutes: 30})
	require.NoError(t, err)
	assert.Equal(t, "running", output.Modality)
}

func TestActivityService_Today_TotalsDurations(t *testing.T) {
	mockEntries := mockRepo.NewMockHabitRepository[entity.PhysicalActivity](t)
	mockProfiles := mockRepo.NewMockProfileRepository(t)
	today := day("2026-08-20")
	service := NewActivityService(mockEntries, mockProfiles, pinClock(t, today), discardLogger())

	ctx := context.Background()

	mockEntries.EXPECT().
		FindByDate(ctx, today).
		Return([]*entity.PhysicalActivity{
			{ID: uuid.New(), Date: today, Modality: "running", DurationMinutes: 30},
			{ID: uuid.New(), Date: today, Modality: "yoga", DurationMinutes: 45},
		}, nil)

	output, err := service.Today(ctx)
	require.NoError(t, err)
	assert.Equal(t, 75, output.TotalMinutes)
	assert.Len(t, output.Entries, 2)
}

func TestActivityService_Week_PreservesStorageOrder(t *testing.T) {
	mockEntries := mockRepo.NewMockHabitRepository[entity.PhysicalActivity](t)
	mockProfiles := mockRepo.NewMockProfileRepository(t)
	service := NewActivityService(mockEntries, mockProfiles, pinClock(t, day("2026-08-20")), discardLogger())

	ctx := context.Background()
	monday := day("2026-08-17")
	run := &entity.PhysicalActivity{ID: uuid.New(), Date: day("2026-08-19"), Modality: "running", DurationMinutes: 30}
	yoga := &entity.PhysicalActivity{ID: uuid.New(), Date: day("2026-08-19"), Modality: "yoga", DurationMinutes: 20}

	mockEntries.EXPECT().
		FindByDateRange(ctx, monday, day("2026-08-24")).
		Return([]*entity.PhysicalActivity{run, yoga}, nil)

	output, err := service.Week(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, output.EntriesByDay, 7)

	wednesday := output.EntriesByDay["2026-08-19"]
	require.Len(t, wednesday, 2)
	assert.Equal(t, run.ID, wednesday[0].ID)
	assert.Equal(t, yoga.ID, wednesday[1].ID)

	// Days without sessions serialize as empty arrays, not null.
	assert.NotNil(t, output.EntriesByDay["2026-08-17"])
	assert.Empty(t, output.EntriesByDay["2026-08-17"])
}

func TestActivityService_UpdateEntry(t *testing.T) {
	mockEntries := mockRepo.NewMockHabitRepository[entity.PhysicalActivity](t)
	mockProfiles := mockRepo.NewMockProfileRepository(t)
	service := NewActivityService(mockEntries, mockProfiles, pinClock(t, day("2026-08-20")), discardLogger())

	ctx := context.Background()
	id := uuid.New()
	stored := &entity.PhysicalActivity{ID: id, Date: day("2026-08-19"), Modality: "running", DurationMinutes: 30}

	mockEntries.EXPECT().
		FindByID(ctx, id).
		Return(stored, nil)

	mockEntries.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.PhysicalActivity")).
		Return(nil)

	output, err := service.UpdateEntry(ctx, id, &usecase.UpdateActivityInput{Modality: "cycling", DurationMinutes: 60})
	require.NoError(t, err)
	assert.Equal(t, "cycling", output.Modality)
	assert.Equal(t, 60, output.DurationMinutes)
}
