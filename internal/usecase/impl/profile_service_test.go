package impl

import (
	"context"
	"testing"

	"vita/internal/domain/entity"
	"vita/internal/domain/repository"
	mockRepo "vita/internal/mocks/repository"
	"vita/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfileService_Get_AbsentIsNotAnError(t *testing.T) {
	mockProfiles := mockRepo.NewMockProfileRepository(t)
	service := NewProfileService(mockProfiles, discardLogger())

	ctx := context.Background()

	mockProfiles.EXPECT().
		FindFirst(ctx).
		Return(nil, repository.ErrProfileNotFound)

	output, err := service.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, output)
}

func TestProfileService_Get(t *testing.T) {
	mockProfiles := mockRepo.NewMockProfileRepository(t)
	service := NewProfileService(mockProfiles, discardLogger())

	ctx := context.Background()
	profile := &entity.Profile{ID: uuid.New(), WeightKG: 60, HeightCM: 170, AgeYears: 30}

	mockProfiles.EXPECT().
		FindFirst(ctx).
		Return(profile, nil)

	output, err := service.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, profile.ID, output.ID)
	assert.Equal(t, 60.0, output.WeightKG)
}

func TestProfileService_Update_CreatesWhenAbsent(t *testing.T) {
	mockProfiles := mockRepo.NewMockProfileRepository(t)
	service := NewProfileService(mockProfiles, discardLogger())

	ctx := context.Background()
	profileID := uuid.New()

	mockProfiles.EXPECT().
		FindFirst(ctx).
		Return(nil, repository.ErrProfileNotFound)

	mockProfiles.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(_ context.Context, profile *entity.Profile) {
			assert.Equal(t, 72.5, profile.WeightKG)
			assert.Equal(t, 180.0, profile.HeightCM)
			profile.ID = profileID
		}).
		Return(nil)

	output, err := service.Update(ctx, &usecase.UpdateProfileInput{
		WeightKG:     72.5,
		HeightCM:     180,
		AgeYears:     28,
		SleepQuality: 70,
		SleepHours:   7,
	})
	require.NoError(t, err)
	assert.Equal(t, profileID, output.ID)
	assert.Equal(t, 72.5, output.WeightKG)
}

func TestProfileService_Update_FullReplace(t *testing.T) {
	mockProfiles := mockRepo.NewMockProfileRepository(t)
	service := NewProfileService(mockProfiles, discardLogger())

	ctx := context.Background()
	existing := &entity.Profile{
		ID:           uuid.New(),
		WeightKG:     60,
		HeightCM:     170,
		AgeYears:     30,
		SleepQuality: 50,
		SleepHours:   6,
	}

	mockProfiles.EXPECT().
		FindFirst(ctx).
		Return(existing, nil)

	mockProfiles.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(_ context.Context, profile *entity.Profile) {
			// Every scalar is overwritten, including ones the caller zeroed.
			assert.Equal(t, 80.0, profile.WeightKG)
			assert.Equal(t, 0.0, profile.HeightCM)
			assert.Equal(t, 0, profile.AgeYears)
		}).
		Return(nil)

	output, err := service.Update(ctx, &usecase.UpdateProfileInput{WeightKG: 80})
	require.NoError(t, err)
	assert.Equal(t, 80.0, output.WeightKG)
	assert.Equal(t, 0.0, output.HeightCM)
}
