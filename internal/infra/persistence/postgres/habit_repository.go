package postgres

import (
	"context"
	"time"

	domainerrors "vita/internal/domain/errors"
	"vita/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// habitRepository is the shared GORM implementation behind every habit
// domain's repository.HabitRepository. M is the persistence model, E the
// domain entity; the per-domain constructors supply the mappers.
type habitRepository[M any, E any] struct {
	db         *gorm.DB
	toDomain   func(*M) *E
	fromDomain func(*E) *M
}

// scanOrder keeps range scans deterministic: by calendar date, then by
// insertion order. The weekly fold's last-row-wins and append semantics
// depend on it.
const scanOrder = "date ASC, created_at ASC"

// Create persists a new entry and copies generated fields back into it.
func (repo *habitRepository[M, E]) Create(ctx context.Context, entry *E) error {
	entryM := repo.fromDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrEntryCreationFailed.WrapMessage("invalid profile reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrEntryCreationFailed.WrapMessage("missing required entry fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create entry")
	}

	*entry = *repo.toDomain(entryM)

	return nil
}

// FindByID retrieves a single entry by its unique ID.
func (repo *habitRepository[M, E]) FindByID(ctx context.Context, id uuid.UUID) (*E, error) {
	var entryM M

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find entry by id")
	}

	return repo.toDomain(&entryM), nil
}

// FindByDate retrieves all entries stamped with the given calendar date.
func (repo *habitRepository[M, E]) FindByDate(ctx context.Context, date time.Time) ([]*E, error) {
	var entryModels []*M

	if err := repo.db.WithContext(ctx).
		Where("date = ?", date).
		Order("created_at ASC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find entries by date")
	}

	return repo.toDomainSlice(entryModels), nil
}

// FindByDateRange retrieves all entries in the half-open window [from, to).
func (repo *habitRepository[M, E]) FindByDateRange(ctx context.Context, from, to time.Time) ([]*E, error) {
	var entryModels []*M

	if err := repo.db.WithContext(ctx).
		Where("date >= ? AND date < ?", from, to).
		Order(scanOrder).
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find entries by date range")
	}

	return repo.toDomainSlice(entryModels), nil
}

// FindAll retrieves every entry of the domain.
func (repo *habitRepository[M, E]) FindAll(ctx context.Context) ([]*E, error) {
	var entryModels []*M

	if err := repo.db.WithContext(ctx).
		Order(scanOrder).
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list entries")
	}

	return repo.toDomainSlice(entryModels), nil
}

// Update modifies an existing entry in the database.
func (repo *habitRepository[M, E]) Update(ctx context.Context, entry *E) error {
	entryM := repo.fromDomain(entry)

	if err := repo.db.WithContext(ctx).Save(entryM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrEntryUpdateFailed.WrapMessage("missing required entry fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update entry")
	}

	*entry = *repo.toDomain(entryM)

	return nil
}

// Delete removes an entry by ID, reporting ErrEntryNotFound when no row matched.
func (repo *habitRepository[M, E]) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(new(M))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEntryNotFound
	}

	return nil
}

func (repo *habitRepository[M, E]) toDomainSlice(entryModels []*M) []*E {
	entries := make([]*E, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, repo.toDomain(entryM))
	}

	return entries
}
