package postgres

import (
	"vita/internal/domain/entity"
	"vita/internal/domain/habit"
	"vita/internal/domain/repository"
	"vita/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// NewActivityRepository is the constructor for the physical-activity
// instantiation of the shared habit repository.
func NewActivityRepository(db *gorm.DB) repository.HabitRepository[entity.PhysicalActivity] {
	return &habitRepository[model.PhysicalActivityModel, entity.PhysicalActivity]{
		db:         db,
		toDomain:   toActivityDomain,
		fromDomain: fromActivityDomain,
	}
}

func toActivityDomain(data *model.PhysicalActivityModel) *entity.PhysicalActivity {
	if data == nil {
		return nil
	}

	return &entity.PhysicalActivity{
		ID:              data.ID,
		ProfileID:       data.ProfileID,
		Date:            habit.Day(data.Date),
		Modality:        data.Modality,
		DurationMinutes: data.DurationMinutes,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromActivityDomain(data *entity.PhysicalActivity) *model.PhysicalActivityModel {
	if data == nil {
		return nil
	}

	return &model.PhysicalActivityModel{
		ID:              data.ID,
		ProfileID:       data.ProfileID,
		Date:            data.Date,
		Modality:        data.Modality,
		DurationMinutes: data.DurationMinutes,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
