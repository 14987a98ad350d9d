package habit

import (
	"testing"

	"vita/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestWaterTargetML(t *testing.T) {
	tests := []struct {
		name    string
		profile *entity.Profile
		want    int
	}{
		{name: "typical weight", profile: &entity.Profile{WeightKG: 60}, want: 2100},
		{name: "fractional weight rounds", profile: &entity.Profile{WeightKG: 72.5}, want: 2538},
		{name: "zero weight", profile: &entity.Profile{WeightKG: 0}, want: 0},
		{name: "negative weight", profile: &entity.Profile{WeightKG: -5}, want: 0},
		{name: "no profile", profile: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WaterTargetML(tt.profile))
		})
	}
}

func TestConstantTargets(t *testing.T) {
	assert.Equal(t, 10, SunlightTargetMinutes)
	assert.Equal(t, 5, MeditationTargetMinutes)
}
