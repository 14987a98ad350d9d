package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	mockUsecase "vita/internal/mocks/usecase"
	"vita/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newProfileHandler(t *testing.T) (*ProfileHandler, *mockUsecase.MockProfileUsecase) {
	uc := mockUsecase.NewMockProfileUsecase(t)
	h := NewProfileHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return h, uc
}

func TestProfileHandler_Get_Absent(t *testing.T) {
	h, uc := newProfileHandler(t)
	e := newTestEcho(t)
	e.GET("/api/v1/profile", h.Get)

	uc.EXPECT().Get(mock.Anything).Return(nil, nil)

	rec := doGet(e, "/api/v1/profile")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No profile yet")
	assert.NotContains(t, rec.Body.String(), `"data"`)
}

func TestProfileHandler_Get(t *testing.T) {
	h, uc := newProfileHandler(t)
	e := newTestEcho(t)
	e.GET("/api/v1/profile", h.Get)

	uc.EXPECT().Get(mock.Anything).Return(&usecase.ProfileOutput{
		ID:       uuid.New(),
		WeightKG: 72.5,
		HeightCM: 178,
		AgeYears: 31,
	}, nil)

	rec := doGet(e, "/api/v1/profile")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"weight_kg":72.5`)
	assert.Contains(t, rec.Body.String(), `"age_years":31`)
}

func TestProfileHandler_Update(t *testing.T) {
	h, uc := newProfileHandler(t)
	e := newTestEcho(t)
	e.PUT("/api/v1/profile", h.Update)

	uc.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(input *usecase.UpdateProfileInput) bool {
			return input.WeightKG == 68 && input.SleepHours == 7.5
		})).
		Return(&usecase.ProfileOutput{
			ID:         uuid.New(),
			WeightKG:   68,
			SleepHours: 7.5,
		}, nil)

	rec := doJSON(e, http.MethodPut, "/api/v1/profile",
		`{"weight_kg":68,"sleep_hours":7.5}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Profile updated")
}

func TestProfileHandler_Update_RejectsOutOfRangeQuality(t *testing.T) {
	h, _ := newProfileHandler(t)
	e := newTestEcho(t)
	e.PUT("/api/v1/profile", h.Update)

	rec := doJSON(e, http.MethodPut, "/api/v1/profile", `{"sleep_quality":150}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}
