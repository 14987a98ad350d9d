package postgres

import (
	"vita/internal/domain/entity"
	"vita/internal/domain/habit"
	"vita/internal/domain/repository"
	"vita/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// NewSleepRepository is the constructor for the sleep-record instantiation
// of the shared habit repository.
func NewSleepRepository(db *gorm.DB) repository.HabitRepository[entity.SleepRecord] {
	return &habitRepository[model.SleepRecordModel, entity.SleepRecord]{
		db:         db,
		toDomain:   toSleepDomain,
		fromDomain: fromSleepDomain,
	}
}

func toSleepDomain(data *model.SleepRecordModel) *entity.SleepRecord {
	if data == nil {
		return nil
	}

	return &entity.SleepRecord{
		ID:        data.ID,
		ProfileID: data.ProfileID,
		Date:      habit.Day(data.Date),
		Hours:     data.Hours,
		Quality:   data.Quality,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromSleepDomain(data *entity.SleepRecord) *model.SleepRecordModel {
	if data == nil {
		return nil
	}

	return &model.SleepRecordModel{
		ID:        data.ID,
		ProfileID: data.ProfileID,
		Date:      data.Date,
		Hours:     data.Hours,
		Quality:   data.Quality,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
