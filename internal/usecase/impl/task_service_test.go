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

func TestTaskService_AddTask_UsesSuppliedDate(t *testing.T) {
	mockEntries := mockRepo.NewMockHabitRepository[entity.TaskItem](t)
	mockProfiles := mockRepo.NewMockProfileRepository(t)
	service := NewTaskService(mockEntries, mockProfiles, pinClock(t, day("2026-08-20")), discardLogger())

	ctx := context.Background()

	mockProfiles.EXPECT().
		FindFirst(ctx).
		Return(&entity.Profile{ID: uuid.New()}, nil)

	mockEntries.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.TaskItem")).
		Run(func(_ context.Context, task *entity.TaskItem) {
			// The caller picks the date; the clock plays no part here.
			assert.Equal(t, day("2026-09-01"), task.Date)
			assert.False(t, task.IsComplete)
		}).
		Return(nil)

	output, err := service.AddTask(ctx, &usecase.AddTaskInput{
		Date:     "2026-09-01",
		Title:    "book dentist",
		Priority: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "book dentist", output.Title)
	assert.Equal(t, "2026-09-01", output.Date)
}

func TestTaskService_AddTask_RejectsBadDate(t *testing.T) {
	mockEntries := mockRepo.NewMockHabitRepository[entity.TaskItem](t)
	mockProfiles := mockRepo.NewMockProfileRepository(t)
	service := NewTaskService(mockEntries, mockProfiles, pinClock(t, day("2026-08-20")), discardLogger())

	_, err := service.AddTask(context.Background(), &usecase.AddTaskInput{
		Date:  "not-a-date",
		Title: "x",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestTaskService_Today(t *testing.T) {
	mockEntries := mockRepo.NewMockHabitRepository[entity.TaskItem](t)
	mockProfiles := mockRepo.NewMockProfileRepository(t)
	today := day("2026-08-20")
	service := NewTaskService(mockEntries, mockProfiles, pinClock(t, today), discardLogger())

	ctx := context.Background()

	mockEntries.EXPECT().
		FindByDate(ctx, today).
		Return([]*entity.TaskItem{
			{ID: uuid.New(), Date: today, Title: "water plants"},
		}, nil)

	outputs, err := service.Today(ctx)
	require.NoError(t, err)
	require.Len(t, outputs, 1)
	assert.Equal(t, "water plants", outputs[0].Title)
}

func TestTaskService_List(t *testing.T) {
	mockEntries := mockRepo.NewMockHabitRepository[entity.TaskItem](t)
	mockProfiles := mockRepo.NewMockProfileRepository(t)
	service := NewTaskService(mockEntries, mockProfiles, pinClock(t, day("2026-08-20")), discardLogger())

	ctx := context.Background()

	mockEntries.EXPECT().
		FindAll(ctx).
		Return([]*entity.TaskItem{
			{ID: uuid.New(), Date: day("2026-08-19"), Title: "a"},
			{ID: uuid.New(), Date: day("2026-08-20"), Title: "b"},
		}, nil)

	outputs, err := service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, outputs, 2)
}

func TestTaskService_UpdateTask_RewritesDateAndCompletion(t *testing.T) {
	mockEntries := mockRepo.NewMockHabitRepository[entity.TaskItem](t)
	mockProfiles := mockRepo.NewMockProfileRepository(t)
	service := NewTaskService(mockEntries, mockProfiles, pinClock(t, day("2026-08-20")), discardLogger())

	ctx := context.Background()
	id := uuid.New()
	stored := &entity.TaskItem{ID: id, Date: day("2026-08-19"), Title: "old", Priority: 1}

	mockEntries.EXPECT().
		FindByID(ctx, id).
		Return(stored, nil)

	mockEntries.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.TaskItem")).
		Run(func(_ context.Context, task *entity.TaskItem) {
			assert.Equal(t, day("2026-08-25"), task.Date)
			assert.True(t, task.IsComplete)
		}).
		Return(nil)

	output, err := service.UpdateTask(ctx, id, &usecase.UpdateTaskInput{
		Date:       "2026-08-25",
		Title:      "new",
		IsComplete: true,
		Priority:   3,
	})
	require.NoError(t, err)
	assert.Equal(t, "new", output.Title)
	assert.True(t, output.IsComplete)
}

func TestTaskService_RemoveTask_NotFound(t *testing.T) {
	mockEntries := mockRepo.NewMockHabitRepository[entity.TaskItem](t)
	mockProfiles := mockRepo.NewMockProfileRepository(t)
	service := NewTaskService(mockEntries, mockProfiles, pinClock(t, day("2026-08-20")), discardLogger())

	ctx := context.Background()
	id := uuid.New()

	mockEntries.EXPECT().
		Delete(ctx, id).
		Return(repository.ErrEntryNotFound)

	err := service.RemoveTask(ctx, id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEntryNotFound))
}
