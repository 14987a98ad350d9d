package impl

import (
	"context"
	"log/slog"

	"vita/internal/domain/entity"
	domainerrors "vita/internal/domain/errors"
	"vita/internal/domain/habit"
	"vita/internal/domain/repository"
	"vita/internal/domain/service"
	"vita/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// taskService implements the TaskUsecase interface. Tasks take a
// caller-supplied date and allow the date and completion flag to change on
// update, which the other habit domains do not.
type taskService struct {
	core habitCore[entity.TaskItem]
}

// NewTaskService is the constructor for taskService.
func NewTaskService(
	entries repository.HabitRepository[entity.TaskItem],
	profiles repository.ProfileRepository,
	clock service.Clock,
	logger *slog.Logger,
) usecase.TaskUsecase {
	return &taskService{
		core: newHabitCore(entries, profiles, clock, logger),
	}
}

// AddTask creates a task on the supplied date.
func (srv *taskService) AddTask(ctx context.Context, input *usecase.AddTaskInput) (*usecase.TaskOutput, error) {
	date, err := habit.ParseDay(input.Date)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid task date")
	}

	profile, err := srv.core.ensureProfile(ctx)
	if err != nil {
		return nil, err
	}

	task := &entity.TaskItem{
		ProfileID:   profile.ID,
		Date:        date,
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
	}
	if err := srv.core.entries.Create(ctx, task); err != nil {
		return nil, errors.Wrap(err, "failed to create task")
	}

	return toTaskOutput(task), nil
}

// Today returns the tasks dated today.
func (srv *taskService) Today(ctx context.Context) ([]*usecase.TaskOutput, error) {
	_, rows, err := srv.core.todayRows(ctx)
	if err != nil {
		return nil, err
	}

	return toTaskOutputs(rows), nil
}

// List returns every stored task.
func (srv *taskService) List(ctx context.Context) ([]*usecase.TaskOutput, error) {
	rows, err := srv.core.entries.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	return toTaskOutputs(rows), nil
}

// UpdateTask rewrites a task, including its date and completion flag.
func (srv *taskService) UpdateTask(ctx context.Context, id uuid.UUID, input *usecase.UpdateTaskInput) (*usecase.TaskOutput, error) {
	date, err := habit.ParseDay(input.Date)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid task date")
	}

	task, err := srv.core.findEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	task.Date = date
	task.Title = input.Title
	task.Description = input.Description
	task.IsComplete = input.IsComplete
	task.Priority = input.Priority
	if err := srv.core.entries.Update(ctx, task); err != nil {
		return nil, errors.Wrap(err, "failed to update task")
	}

	return toTaskOutput(task), nil
}

// RemoveTask deletes a task by ID.
func (srv *taskService) RemoveTask(ctx context.Context, id uuid.UUID) error {
	return srv.core.removeEntry(ctx, id)
}

func toTaskOutput(task *entity.TaskItem) *usecase.TaskOutput {
	if task == nil {
		return nil
	}

	return &usecase.TaskOutput{
		ID:          task.ID,
		Date:        habit.Key(task.Date),
		Title:       task.Title,
		Description: task.Description,
		IsComplete:  task.IsComplete,
		Priority:    task.Priority,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func toTaskOutputs(tasks []*entity.TaskItem) []*usecase.TaskOutput {
	outputs := make([]*usecase.TaskOutput, 0, len(tasks))
	for _, task := range tasks {
		outputs = append(outputs, toTaskOutput(task))
	}

	return outputs
}
