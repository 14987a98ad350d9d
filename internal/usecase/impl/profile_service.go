package impl

import (
	"context"
	"log/slog"

	"vita/internal/domain/entity"
	domainerrors "vita/internal/domain/errors"
	"vita/internal/domain/repository"
	"vita/internal/usecase"

	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profiles repository.ProfileRepository
	logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	profiles repository.ProfileRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		profiles: profiles,
		logger:   logger,
	}
}

// Get returns the stored profile, or nil when none exists yet. Absence is
// not an error at this boundary; the handler renders a null body.
func (srv *profileService) Get(ctx context.Context) (*usecase.ProfileOutput, error) {
	profile, err := srv.profiles.FindFirst(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return toProfileOutput(profile), nil
}

// Update full-replaces the profile's scalar fields, creating the profile
// first when absent. There is no partial-field update.
func (srv *profileService) Update(ctx context.Context, input *usecase.UpdateProfileInput) (*usecase.ProfileOutput, error) {
	profile, err := srv.profiles.FindFirst(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(err, "failed to find profile")
		}

		created := &entity.Profile{
			WeightKG:     input.WeightKG,
			HeightCM:     input.HeightCM,
			AgeYears:     input.AgeYears,
			SleepQuality: input.SleepQuality,
			SleepHours:   input.SleepHours,
		}
		if err := srv.profiles.Create(ctx, created); err != nil {
			return nil, errors.Wrap(domainerrors.ErrProfileCreationFailed, err.Error())
		}

		srv.logger.Info("Created profile from update", "profileID", created.ID)

		return toProfileOutput(created), nil
	}

	profile.WeightKG = input.WeightKG
	profile.HeightCM = input.HeightCM
	profile.AgeYears = input.AgeYears
	profile.SleepQuality = input.SleepQuality
	profile.SleepHours = input.SleepHours

	if err := srv.profiles.Update(ctx, profile); err != nil {
		return nil, errors.Wrap(domainerrors.ErrProfileUpdateFailed, err.Error())
	}

	return toProfileOutput(profile), nil
}

func toProfileOutput(profile *entity.Profile) *usecase.ProfileOutput {
	if profile == nil {
		return nil
	}

	return &usecase.ProfileOutput{
		ID:           profile.ID,
		WeightKG:     profile.WeightKG,
		HeightCM:     profile.HeightCM,
		AgeYears:     profile.AgeYears,
		SleepQuality: profile.SleepQuality,
		SleepHours:   profile.SleepHours,
		CreatedAt:    profile.CreatedAt,
		UpdatedAt:    profile.UpdatedAt,
	}
}
