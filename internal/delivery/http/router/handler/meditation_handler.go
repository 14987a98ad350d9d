package handler

import (
	"log/slog"
	"net/http"

	"vita/internal/delivery/http/response"
	"vita/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MeditationHandler holds dependencies for meditation handlers.
type MeditationHandler struct {
	uc     usecase.MeditationUsecase
	logger *slog.Logger
}

// NewMeditationHandler is the constructor for MeditationHandler, injected by Fx.
func NewMeditationHandler(uc usecase.MeditationUsecase, logger *slog.Logger) *MeditationHandler {
	return &MeditationHandler{
		uc:     uc,
		logger: logger,
	}
}

// Add handles recording a meditation session.
func (h *MeditationHandler) Add(c echo.Context) error {
	var input *usecase.AddMeditationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid meditation entry input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.AddEntry(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Meditation entry recorded")
}

// Today handles the daily meditation view.
func (h *MeditationHandler) Today(c echo.Context) error {
	output, err := h.uc.Today(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Week handles the weekly meditation view.
func (h *MeditationHandler) Week(c echo.Context) error {
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
func (h *MeditationHandler) Update(c echo.Context) error {
	id, err := entryID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.UpdateMeditationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid meditation entry input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.UpdateEntry(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Meditation entry updated")
}

// Remove handles deleting an entry.
func (h *MeditationHandler) Remove(c echo.Context) error {
	id, err := entryID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.RemoveEntry(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
