package habit

import (
	"math"

	"vita/internal/domain/entity"
)

const waterMLPerKG = 35

// Daily targets independent of the profile.
const (
	SunlightTargetMinutes   = 10
	MeditationTargetMinutes = 5
)

// WaterTargetML derives the recommended daily water intake in milliliters
// from body weight. Without a profile, or with a non-positive weight, the
// recommendation is zero.
func WaterTargetML(profile *entity.Profile) int {
	if profile == nil || profile.WeightKG <= 0 {
		return 0
	}

	return int(math.Round(profile.WeightKG * waterMLPerKG))
}
