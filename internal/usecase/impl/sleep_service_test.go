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

func TestSleepService_AddEntry_StampsToday(t *testing.T) {
	mockEntries := mockRepo.NewMockHabitRepository[entity.SleepRecord](t)
	mockProfiles := mockRepo.NewMockProfileRepository(t)
	today := day("2026-08-20")
	service := NewSleepService(mockEntries, mockProfiles, pinClock(t, today), discardLogger())

	ctx := context.Background()
	profile := &entity.Profile{ID: uuid.New()}

	mockProfiles.EXPECT().
		FindFirst(ctx).
		Return(profile, nil)

	mockEntries.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.SleepRecord")).
		Run(func(_ context.Context, entry *entity.SleepRecord) {
			assert.Equal(t, today, entry.Date)
			assert.Equal(t, 7.5, entry.Hours)
			assert.Equal(t, 80, entry.Quality)
		}).
		Return(nil)

	output, err := service.AddEntry(ctx, &usecase.AddSleepInput{Hours: 7.5, Quality: 80})
	require.NoError(t, err)
	assert.Equal(t, 7.5, output.Hours)
}

func TestSleepService_Today_LastRecordWins(t *testing.T) {
	mockEntries := mockRepo.NewMockHabitRepository[entity.SleepRecord](t)
	mockProfiles := mockRepo.NewMockProfileRepository(t)
	today := day("2026-08-20")
	service := NewSleepService(mockEntries, mockProfiles, pinClock(t, today), discardLogger())

	ctx := context.Background()
	first := &entity.SleepRecord{ID: uuid.New(), Date: today, Hours: 6, Quality: 50}
	second := &entity.SleepRecord{ID: uuid.New(), Date: today, Hours: 8, Quality: 90}

	mockEntries.EXPECT().
		FindByDate(ctx, today).
		Return([]*entity.SleepRecord{first, second}, nil)

	output, err := service.Today(ctx)
	require.NoError(t, err)
	require.NotNil(t, output.Record)
	assert.Equal(t, second.ID, output.Record.ID)
	assert.Len(t, output.Entries, 2)
}

func TestSleepService_Today_NoRecord(t *testing.T) {
	mockEntries := mockRepo.NewMockHabitRepository[entity.SleepRecord](t)
	mockProfiles := mockRepo.NewMockProfileRepository(t)
	today := day("2026-08-20")
	service := NewSleepService(mockEntries, mockProfiles, pinClock(t, today), discardLogger())

	ctx := context.Background()

	mockEntries.EXPECT().
		FindByDate(ctx, today).
		Return(nil, nil)

	output, err := service.Today(ctx)
	require.NoError(t, err)
	assert.Nil(t, output.Record)
	assert.Empty(t, output.Entries)
}

func TestSleepService_Week_DuplicateDayResolvesToLastStored(t *testing.T) {
	mockEntries := mockRepo.NewMockHabitRepository[entity.SleepRecord](t)
	mockProfiles := mockRepo.NewMockProfileRepository(t)
	service := NewSleepService(mockEntries, mockProfiles, pinClock(t, day("2026-08-20")), discardLogger())

	ctx := context.Background()
	monday := day("2026-08-17")
	early := &entity.SleepRecord{ID: uuid.New(), Date: day("2026-08-18"), Hours: 6}
	late := &entity.SleepRecord{ID: uuid.New(), Date: day("2026-08-18"), Hours: 9}

	mockEntries.EXPECT().
		FindByDateRange(ctx, monday, day("2026-08-24")).
		Return([]*entity.SleepRecord{early, late}, nil)

	output, err := service.Week(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, output.RecordsByDay, 7)
	require.NotNil(t, output.RecordsByDay["2026-08-18"])
	assert.Equal(t, late.ID, output.RecordsByDay["2026-08-18"].ID)
	assert.Nil(t, output.RecordsByDay["2026-08-17"])
}

func TestSleepService_UpdateEntry_RewritesPayload(t *testing.T) {
	mockEntries := mockRepo.NewMockHabitRepository[entity.SleepRecord](t)
	mockProfiles := mockRepo.NewMockProfileRepository(t)
	service := NewSleepService(mockEntries, mockProfiles, pinClock(t, day("2026-08-20")), discardLogger())

	ctx := context.Background()
	id := uuid.New()
	stored := &entity.SleepRecord{ID: id, Date: day("2026-08-19"), Hours: 6, Quality: 40}

	mockEntries.EXPECT().
		FindByID(ctx, id).
		Return(stored, nil)

	mockEntries.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.SleepRecord")).
		Return(nil)

	output, err := service.UpdateEntry(ctx, id, &usecase.UpdateSleepInput{Hours: 8, Quality: 85})
	require.NoError(t, err)
	assert.Equal(t, 8.0, output.Hours)
	assert.Equal(t, 85, output.Quality)
}
