package postgres

import (
	"vita/internal/domain/entity"
	"vita/internal/domain/habit"
	"vita/internal/domain/repository"
	"vita/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// NewMeditationRepository is the constructor for the meditation
// instantiation of the shared habit repository.
func NewMeditationRepository(db *gorm.DB) repository.HabitRepository[entity.MeditationSession] {
	return &habitRepository[model.MeditationSessionModel, entity.MeditationSession]{
		db:         db,
		toDomain:   toMeditationDomain,
		fromDomain: fromMeditationDomain,
	}
}

func toMeditationDomain(data *model.MeditationSessionModel) *entity.MeditationSession {
	if data == nil {
		return nil
	}

	return &entity.MeditationSession{
		ID:        data.ID,
		ProfileID: data.ProfileID,
		Date:      habit.Day(data.Date),
		Minutes:   data.Minutes,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromMeditationDomain(data *entity.MeditationSession) *model.MeditationSessionModel {
	if data == nil {
		return nil
	}

	return &model.MeditationSessionModel{
		ID:        data.ID,
		ProfileID: data.ProfileID,
		Date:      data.Date,
		Minutes:   data.Minutes,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
