package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TaskUsecase defines the interface for task business operations. Tasks
// differ from the other habit domains: the date is caller-supplied and may
// be rewritten on update.
type TaskUsecase interface {
	// AddTask creates a task on the supplied date, lazily creating the
	// profile when none exists.
	AddTask(ctx context.Context, input *AddTaskInput) (*TaskOutput, error)

	// Today returns the tasks dated today.
	Today(ctx context.Context) ([]*TaskOutput, error)

	// List returns every stored task.
	List(ctx context.Context) ([]*TaskOutput, error)

	// UpdateTask rewrites a task, including its date and completion flag.
	UpdateTask(ctx context.Context, id uuid.UUID, input *UpdateTaskInput) (*TaskOutput, error)

	// RemoveTask deletes a task by ID.
	RemoveTask(ctx context.Context, id uuid.UUID) error
}

// AddTaskInput defines the data required to create a task.
type AddTaskInput struct {
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Priority    int    `json:"priority" validate:"gte=0"`
}

// UpdateTaskInput defines the data required to rewrite a task.
type UpdateTaskInput struct {
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	IsComplete  bool   `json:"is_complete"`
	Priority    int    `json:"priority" validate:"gte=0"`
}

// TaskOutput is the outward representation of one task.
type TaskOutput struct {
	ID          uuid.UUID `json:"id"`
	Date        string    `json:"date"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IsComplete  bool      `json:"is_complete"`
	Priority    int       `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
