package postgres

import (
	"vita/internal/domain/entity"
	"vita/internal/domain/habit"
	"vita/internal/domain/repository"
	"vita/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// NewTaskRepository is the constructor for the task-item instantiation of
// the shared habit repository.
func NewTaskRepository(db *gorm.DB) repository.HabitRepository[entity.TaskItem] {
	return &habitRepository[model.TaskItemModel, entity.TaskItem]{
		db:         db,
		toDomain:   toTaskDomain,
		fromDomain: fromTaskDomain,
	}
}

func toTaskDomain(data *model.TaskItemModel) *entity.TaskItem {
	if data == nil {
		return nil
	}

	return &entity.TaskItem{
		ID:          data.ID,
		ProfileID:   data.ProfileID,
		Date:        habit.Day(data.Date),
		Title:       data.Title,
		Description: data.Description,
		IsComplete:  data.IsComplete,
		Priority:    data.Priority,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromTaskDomain(data *entity.TaskItem) *model.TaskItemModel {
	if data == nil {
		return nil
	}

	return &model.TaskItemModel{
		ID:          data.ID,
		ProfileID:   data.ProfileID,
		Date:        data.Date,
		Title:       data.Title,
		Description: data.Description,
		IsComplete:  data.IsComplete,
		Priority:    data.Priority,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
