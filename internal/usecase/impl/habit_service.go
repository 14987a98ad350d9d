// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"vita/internal/domain/entity"
	domainerrors "vita/internal/domain/errors"
	"vita/internal/domain/habit"
	"vita/internal/domain/repository"
	"vita/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// habitCore bundles the collaborators every habit service shares and the
// date resolution, profile bootstrap and not-found mapping they all repeat.
// Each domain service embeds one instantiation and adds only its payload
// handling and aggregate shape.
type habitCore[E any] struct {
	entries  repository.HabitRepository[E]
	profiles repository.ProfileRepository
	clock    service.Clock
	logger   *slog.Logger
}

func newHabitCore[E any](
	entries repository.HabitRepository[E],
	profiles repository.ProfileRepository,
	clock service.Clock,
	logger *slog.Logger,
) habitCore[E] {
	return habitCore[E]{
		entries:  entries,
		profiles: profiles,
		clock:    clock,
		logger:   logger,
	}
}

// ensureProfile returns the stored profile, creating and persisting a
// zero-valued one when none exists. The lookup and the create are two
// sequential writes, not a transaction; a crash in between leaves the
// profile without the entry, which is accepted behavior.
func (core *habitCore[E]) ensureProfile(ctx context.Context) (*entity.Profile, error) {
	profile, err := core.profiles.FindFirst(ctx)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	profile = &entity.Profile{}
	if err := core.profiles.Create(ctx, profile); err != nil {
		return nil, errors.Wrap(domainerrors.ErrProfileCreationFailed, err.Error())
	}

	core.logger.Info("Created default profile", "profileID", profile.ID)

	return profile, nil
}

// loadProfile returns the stored profile or nil when none exists. Read
// paths tolerate absence; only the recommendation degrades to zero.
func (core *habitCore[E]) loadProfile(ctx context.Context) (*entity.Profile, error) {
	profile, err := core.profiles.FindFirst(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// todayRows returns today's date and the entries stamped with it.
func (core *habitCore[E]) todayRows(ctx context.Context) (time.Time, []*E, error) {
	day := core.clock.Today()

	rows, err := core.entries.FindByDate(ctx, day)
	if err != nil {
		return time.Time{}, nil, errors.Wrap(err, "failed to load today's entries")
	}

	return day, rows, nil
}

// weekRows resolves the window start and fetches every row inside the
// half-open 7-day window. A nil weekStart means the Monday of the current
// ISO week.
func (core *habitCore[E]) weekRows(ctx context.Context, weekStart *time.Time) (time.Time, []*E, error) {
	var start time.Time
	if weekStart != nil {
		start = habit.Day(*weekStart)
	} else {
		start = habit.WeekStart(core.clock.Today())
	}

	rows, err := core.entries.FindByDateRange(ctx, start, habit.WeekEnd(start))
	if err != nil {
		return time.Time{}, nil, errors.Wrap(err, "failed to load week entries")
	}

	return start, rows, nil
}

// findEntry loads an entry by ID, mapping absence to the 404 domain error.
func (core *habitCore[E]) findEntry(ctx context.Context, id uuid.UUID) (*E, error) {
	entry, err := core.entries.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrEntryNotFound, "entry does not exist")
		}

		return nil, errors.Wrap(err, "failed to find entry")
	}

	return entry, nil
}

// removeEntry deletes an entry by ID, mapping absence to the 404 domain error.
func (core *habitCore[E]) removeEntry(ctx context.Context, id uuid.UUID) error {
	if err := core.entries.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return errors.Wrap(domainerrors.ErrEntryNotFound, "entry does not exist")
		}

		return errors.Wrap(err, "failed to delete entry")
	}

	return nil
}
