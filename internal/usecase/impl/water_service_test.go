package impl

import (
	"context"
	"testing"

	"vita/internal/domain/entity"
	domainerrors "vita/internal/domain/errors"
	"vita/internal/domain/repository"
	mockRepo "vita/internal/mocks/repository"
	"vita/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWaterService_AddEntry_CreatesDefaultProfile(t *testing.T) {
	mockEntries := mockRepo.NewMockHabitRepository[entity.WaterIntake](t)
	mockProfiles := mockRepo.NewMockProfileRepository(t)
	today := day("2026-08-20")
	service := NewWaterService(mockEntries, mockProfiles, pinClock(t, today), discardLogger())

	ctx := context.Background()
	profileID := uuid.New()

	mockProfiles.EXPECT().
		FindFirst(ctx).
		Return(nil, repository.ErrProfileNotFound)

	mockProfiles.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(_ context.Context, profile *entity.Profile) {
			assert.Zero(t, profile.WeightKG)
			assert.Zero(t, profile.HeightCM)
			assert.Zero(t, profile.AgeYears)
			profile.ID = profileID
		}).
		Return(nil)

	mockEntries.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.WaterIntake")).
		Run(func(_ context.Context, entry *entity.WaterIntake) {
			assert.Equal(t, profileID, entry.ProfileID)
			assert.Equal(t, today, entry.Date)
			entry.ID = uuid.New()
		}).
		Return(nil)

	output, err := service.AddEntry(ctx, &usecase.AddWaterInput{AmountML: 300})
	require.NoError(t, err)
	assert.Equal(t, 300, output.AmountML)
	assert.Equal(t, "2026-08-20", output.Date)
}

func TestWaterService_AddEntry_ReusesExistingProfile(t *testing.T) {
	mockEntries := mockRepo.NewMockHabitRepository[entity.WaterIntake](t)
	mockProfiles := mockRepo.NewMockProfileRepository(t)
	today := day("2026-08-20")
	service := NewWaterService(mockEntries, mockProfiles, pinClock(t, today), discardLogger())

	ctx := context.Background()
	profile := &entity.Profile{ID: uuid.New(), WeightKG: 60}

	mockProfiles.EXPECT().
		FindFirst(ctx).
		Return(profile, nil)

	mockEntries.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.WaterIntake")).
		Run(func(_ context.Context, entry *entity.WaterIntake) {
			assert.Equal(t, profile.ID, entry.ProfileID)
		}).
		Return(nil)

	_, err := service.AddEntry(ctx, &usecase.AddWaterInput{AmountML: 250})
	require.NoError(t, err)
}

func TestWaterService_Today_SumsEntriesAndRecommends(t *testing.T) {
	mockEntries := mockRepo.NewMockHabitRepository[entity.WaterIntake](t)
	mockProfiles := mockRepo.NewMockProfileRepository(t)
	today := day("2026-08-20")
	service := NewWaterService(mockEntries, mockProfiles, pinClock(t, today), discardLogger())

	ctx := context.Background()
	rows := []*entity.WaterIntake{
		{ID: uuid.New(), Date: today, AmountML: 300},
		{ID: uuid.New(), Date: today, AmountML: 450},
	}

	mockEntries.EXPECT().
		FindByDate(ctx, today).
		Return(rows, nil)

	mockProfiles.EXPECT().
		FindFirst(ctx).
		Return(&entity.Profile{ID: uuid.New(), WeightKG: 60}, nil)

	output, err := service.Today(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-20", output.Date)
	assert.Equal(t, 750, output.TotalML)
	assert.Equal(t, 2100, output.RecommendedML)
	assert.Len(t, output.Entries, 2)
}

func TestWaterService_Today_NoProfileZeroRecommendation(t *testing.T) {
	mockEntries := mockRepo.NewMockHabitRepository[entity.WaterIntake](t)
	mockProfiles := mockRepo.NewMockProfileRepository(t)
	today := day("2026-08-20")
	service := NewWaterService(mockEntries, mockProfiles, pinClock(t, today), discardLogger())

	ctx := context.Background()

	mockEntries.EXPECT().
		FindByDate(ctx, today).
		Return(nil, nil)

	mockProfiles.EXPECT().
		FindFirst(ctx).
		Return(nil, repository.ErrProfileNotFound)

	output, err := service.Today(ctx)
	require.NoError(t, err)
	assert.Zero(t, output.TotalML)
	assert.Zero(t, output.RecommendedML)
	assert.Empty(t, output.Entries)
}

func TestWaterService_Week_DefaultsToCurrentMonday(t *testing.T) {
	mockEntries := mockRepo.NewMockHabitRepository[entity.WaterIntake](t)
	mockProfiles := mockRepo.NewMockProfileRepository(t)
	// A Sunday; the window must reach back to the preceding Monday.
	service := NewWaterService(mockEntries, mockProfiles, pinClock(t, day("2026-08-23")), discardLogger())

	ctx := context.Background()
	monday := day("2026-08-17")

	mockEntries.EXPECT().
		FindByDateRange(ctx, monday, day("2026-08-24")).
		Return([]*entity.WaterIntake{
			{ID: uuid.New(), Date: day("2026-08-18"), AmountML: 500},
			{ID: uuid.New(), Date: day("2026-08-18"), AmountML: 250},
		}, nil)

	mockProfiles.EXPECT().
		FindFirst(ctx).
		Return(&entity.Profile{ID: uuid.New(), WeightKG: 72.5}, nil)

	output, err := service.Week(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-17", output.WeekStart)
	assert.Len(t, output.TotalsByDay, 7)
	assert.Equal(t, 750, output.TotalsByDay["2026-08-18"])
	assert.Equal(t, 0, output.TotalsByDay["2026-08-17"])
	assert.Equal(t, 2538, output.RecommendedML)
}

func TestWaterService_Week_ExplicitStart(t *testing.T) {
	mockEntries := mockRepo.NewMockHabitRepository[entity.WaterIntake](t)
	mockProfiles := mockRepo.NewMockProfileRepository(t)
	service := NewWaterService(mockEntries, mockProfiles, pinClock(t, day("2026-08-23")), discardLogger())

	ctx := context.Background()
	start := day("2026-08-03")

	mockEntries.EXPECT().
		FindByDateRange(ctx, start, day("2026-08-10")).
		Return(nil, nil)

	mockProfiles.EXPECT().
		FindFirst(ctx).
		Return(nil, repository.ErrProfileNotFound)

	output, err := service.Week(ctx, &start)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-03", output.WeekStart)
	assert.Len(t, output.TotalsByDay, 7)
}

func TestWaterService_UpdateEntry_NotFound(t *testing.T) {
	mockEntries := mockRepo.NewMockHabitRepository[entity.WaterIntake](t)
	mockProfiles := mockRepo.NewMockProfileRepository(t)
	service := NewWaterService(mockEntries, mockProfiles, pinClock(t, day("2026-08-20")), discardLogger())

	ctx := context.Background()
	id := uuid.New()

	mockEntries.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrEntryNotFound)

	_, err := service.UpdateEntry(ctx, id, &usecase.UpdateWaterInput{AmountML: 100})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEntryNotFound))
}

func TestWaterService_UpdateEntry_RewritesAmount(t *testing.T) {
	mockEntries := mockRepo.NewMockHabitRepository[entity.WaterIntake](t)
	mockProfiles := mockRepo.NewMockProfileRepository(t)
	service := NewWaterService(mockEntries, mockProfiles, pinClock(t, day("2026-08-20")), discardLogger())

	ctx := context.Background()
	id := uuid.New()
	stored := &entity.WaterIntake{ID: id, Date: day("2026-08-19"), AmountML: 100}

	mockEntries.EXPECT().
		FindByID(ctx, id).
		Return(stored, nil)

	mockEntries.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.WaterIntake")).
		Run(func(_ context.Context, entry *entity.WaterIntake) {
			assert.Equal(t, 400, entry.AmountML)
			// Date stays what it was; updates never move entries between days.
			assert.Equal(t, day("2026-08-19"), entry.Date)
		}).
		Return(nil)

	output, err := service.UpdateEntry(ctx, id, &usecase.UpdateWaterInput{AmountML: 400})
	require.NoError(t, err)
	assert.Equal(t, 400, output.AmountML)
}

func TestWaterService_RemoveEntry_NotFound(t *testing.T) {
	mockEntries := mockRepo.NewMockHabitRepository[entity.WaterIntake](t)
	mockProfiles := mockRepo.NewMockProfileRepository(t)
	service := NewWaterService(mockEntries, mockProfiles, pinClock(t, day("2026-08-20")), discardLogger())

	ctx := context.Background()
	id := uuid.New()

	mockEntries.EXPECT().
		Delete(ctx, id).
		Return(repository.ErrEntryNotFound)

	err := service.RemoveEntry(ctx, id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEntryNotFound))
}
