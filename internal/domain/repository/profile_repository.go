// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"vita/internal/domain/entity"
)

// ErrProfileNotFound is a domain-specific error returned when no profile exists yet.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the standard operations for profile persistence.
// The running system expects exactly one profile; FindFirst returns it.
type ProfileRepository interface {
	// FindFirst retrieves the single stored profile, oldest first.
	FindFirst(ctx context.Context) (*entity.Profile, error)

	// Create persists a new profile entity to the storage.
	Create(ctx context.Context, profile *entity.Profile) error

	// Update modifies an existing profile entity in the storage.
	Update(ctx context.Context, profile *entity.Profile) error
}
