package postgres

import (
	"vita/internal/domain/entity"
	"vita/internal/domain/habit"
	"vita/internal/domain/repository"
	"vita/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// NewSunlightRepository is the constructor for the sunlight instantiation
// of the shared habit repository.
func NewSunlightRepository(db *gorm.DB) repository.HabitRepository[entity.SunlightSession] {
	return &habitRepository[model.SunlightSessionModel, entity.SunlightSession]{
		db:         db,
		toDomain:   toSunlightDomain,
		fromDomain: fromSunlightDomain,
	}
}

func toSunlightDomain(data *model.SunlightSessionModel) *entity.SunlightSession {
	if data == nil {
		return nil
	}

	return &entity.SunlightSession{
		ID:        data.ID,
		ProfileID: data.ProfileID,
		Date:      habit.Day(data.Date),
		Minutes:   data.Minutes,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromSunlightDomain(data *entity.SunlightSession) *model.SunlightSessionModel {
	if data == nil {
		return nil
	}

	return &model.SunlightSessionModel{
		ID:        data.ID,
		ProfileID: data.ProfileID,
		Date:      data.Date,
		Minutes:   data.Minutes,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
