package postgres

import (
	"vita/internal/domain/entity"
	"vita/internal/domain/habit"
	"vita/internal/domain/repository"
	"vita/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// NewWaterRepository is the constructor for the water-intake instantiation
// of the shared habit repository.
func NewWaterRepository(db *gorm.DB) repository.HabitRepository[entity.WaterIntake] {
	return &habitRepository[model.WaterIntakeModel, entity.WaterIntake]{
		db:         db,
		toDomain:   toWaterDomain,
		fromDomain: fromWaterDomain,
	}
}

func toWaterDomain(data *model.WaterIntakeModel) *entity.WaterIntake {
	if data == nil {
		return nil
	}

	return &entity.WaterIntake{
		ID:        data.ID,
		ProfileID: data.ProfileID,
		Date:      habit.Day(data.Date),
		AmountML:  data.AmountML,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromWaterDomain(data *entity.WaterIntake) *model.WaterIntakeModel {
	if data == nil {
		return nil
	}

	return &model.WaterIntakeModel{
		ID:        data.ID,
		ProfileID: data.ProfileID,
		Date:      data.Date,
		AmountML:  data.AmountML,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
