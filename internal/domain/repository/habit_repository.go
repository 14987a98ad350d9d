package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrEntryNotFound is a domain-specific error returned when an entry
// addressed by identifier does not exist.
var ErrEntryNotFound = errors.New("entry not found")

// HabitRepository is the storage contract shared by every habit domain,
// instantiated once per entry type. Scans return rows ordered by date then
// insertion order, which the weekly aggregation relies on for its
// last-row-wins and append semantics.
type HabitRepository[E any] interface {
	// Create persists a new entry and fills in its generated fields.
	Create(ctx context.Context, entry *E) error

	// FindByID retrieves a single entry by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*E, error)

	// FindByDate retrieves all entries stamped with the given calendar date.
	FindByDate(ctx context.Context, date time.Time) ([]*E, error)

	// FindByDateRange retrieves all entries in the half-open window [from, to).
	FindByDateRange(ctx context.Context, from, to time.Time) ([]*E, error)

	// FindAll retrieves every entry of the domain.
	FindAll(ctx context.Context) ([]*E, error)

	// Update modifies an existing entry in the storage.
	Update(ctx context.Context, entry *E) error

	// Delete removes an entry by ID, reporting ErrEntryNotFound when absent.
	Delete(ctx context.Context, id uuid.UUID) error
}
