package handler

import (
	"log/slog"
	"net/http"

	"vita/internal/delivery/http/response"
	"vita/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WaterHandler holds dependencies for water-intake handlers.
type WaterHandler struct {
	uc     usecase.WaterUsecase
	logger *slog.Logger
}

// NewWaterHandler is the constructor for WaterHandler, injected by Fx.
func NewWaterHandler(uc usecase.WaterUsecase, logger *slog.Logger) *WaterHandler {
	return &WaterHandler{
		uc:     uc,
		logger: logger,
	}
}

// Add handles recording a drink of water.
func (h *WaterHandler) Add(c echo.Context) error {
	var input *usecase.AddWaterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid water entry input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.AddEntry(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Water entry recorded")
}

// Today handles the daily water view.
func (h *WaterHandler) Today(c echo.Context) error {
	output, err := h.uc.Today(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Week handles the weekly water view.
func (h *WaterHandler) Week(c echo.Context) error {
	start, err := weekStartParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Week(c.Request().Context(), start)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Update handles rewriting an entry's payload.
func (h *WaterHandler) Update(c echo.Context) error {
	id, err := entryID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.UpdateWaterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid water entry input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.UpdateEntry(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Water entry updated")
}

// Remove handles deleting an entry.
func (h *WaterHandler) Remove(c echo.Context) error {
	id, err := entryID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.RemoveEntry(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
