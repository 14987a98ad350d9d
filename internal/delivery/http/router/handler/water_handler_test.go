package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	domainerrors "vita/internal/domain/errors"
	mockUsecase "vita/internal/mocks/usecase"
	"vita/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newWaterHandler(t *testing.T) (*WaterHandler, *mockUsecase.MockWaterUsecase) {
	uc := mockUsecase.NewMockWaterUsecase(t)
	h := NewWaterHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return h, uc
}

func TestWaterHandler_Add(t *testing.T) {
	h, uc := newWaterHandler(t)
	e := newTestEcho(t)
	e.POST("/api/v1/water", h.Add)

	entryID := uuid.New()
	uc.EXPECT().
		AddEntry(mock.Anything, mock.MatchedBy(func(input *usecase.AddWaterInput) bool {
			return input.AmountML == 500
		})).
		Return(&usecase.WaterEntryOutput{
			ID:       entryID,
			Date:     "2026-08-23",
			AmountML: 500,
		}, nil)

	rec := doJSON(e, http.MethodPost, "/api/v1/water", `{"amount_ml":500}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), "Water entry recorded")
	assert.Contains(t, rec.Body.String(), entryID.String())
}

func TestWaterHandler_Add_RejectsNonPositiveAmount(t *testing.T) {
	h, _ := newWaterHandler(t)
	e := newTestEcho(t)
	e.POST("/api/v1/water", h.Add)

	rec := doJSON(e, http.MethodPost, "/api/v1/water", `{"amount_ml":0}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestWaterHandler_Add_RejectsMalformedJSON(t *testing.T) {
	h, _ := newWaterHandler(t)
	e := newTestEcho(t)
	e.POST("/api/v1/water", h.Add)

	rec := doJSON(e, http.MethodPost, "/api/v1/water", `{"amount_ml":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestWaterHandler_Today(t *testing.T) {
	h, uc := newWaterHandler(t)
	e := newTestEcho(t)
	e.GET("/api/v1/water/today", h.Today)

	uc.EXPECT().Today(mock.Anything).Return(&usecase.WaterTodayOutput{
		Date:          "2026-08-23",
		TotalML:       750,
		RecommendedML: 2538,
		Entries:       []*usecase.WaterEntryOutput{},
	}, nil)

	rec := doGet(e, "/api/v1/water/today")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_ml":750`)
	assert.Contains(t, rec.Body.String(), `"recommended_ml":2538`)
}

func TestWaterHandler_Week_PassesExplicitStart(t *testing.T) {
	h, uc := newWaterHandler(t)
	e := newTestEcho(t)
	e.GET("/api/v1/water/week", h.Week)

	var gotStart *time.Time
	uc.EXPECT().
		Week(mock.Anything, mock.Anything).
		Run(func(_ context.Context, weekStart *time.Time) {
			gotStart = weekStart
		}).
		Return(&usecase.WaterWeekOutput{
			WeekStart:   "2026-08-03",
			TotalsByDay: map[string]int{},
		}, nil)

	rec := doGet(e, "/api/v1/water/week?start=2026-08-03")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotStart)
	assert.Equal(t, time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC), *gotStart)
}

func TestWaterHandler_Week_RejectsBadStart(t *testing.T) {
	h, _ := newWaterHandler(t)
	e := newTestEcho(t)
	e.GET("/api/v1/water/week", h.Week)

	rec := doGet(e, "/api/v1/water/week?start=not-a-date")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestWaterHandler_Update_NotFound(t *testing.T) {
	h, uc := newWaterHandler(t)
	e := newTestEcho(t)
	e.PUT("/api/v1/water/:id", h.Update)

	id := uuid.New()
	uc.EXPECT().
		UpdateEntry(mock.Anything, id, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrEntryNotFound))

	rec := doJSON(e, http.MethodPut, "/api/v1/water/"+id.String(), `{"amount_ml":300}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "ENTRY_NOT_FOUND")
}

func TestWaterHandler_Remove(t *testing.T) {
	h, uc := newWaterHandler(t)
	e := newTestEcho(t)
	e.DELETE("/api/v1/water/:id", h.Remove)

	id := uuid.New()
	uc.EXPECT().RemoveEntry(mock.Anything, id).Return(nil)

	rec := doJSON(e, http.MethodDelete, "/api/v1/water/"+id.String(), "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestWaterHandler_Remove_RejectsBadID(t *testing.T) {
	h, _ := newWaterHandler(t)
	e := newTestEcho(t)
	e.DELETE("/api/v1/water/:id", h.Remove)

	rec := doJSON(e, http.MethodDelete, "/api/v1/water/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}
