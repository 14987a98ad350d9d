package handler

import (
	"log/slog"
	"net/http"

	"vita/internal/delivery/http/response"
	"vita/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SleepHandler holds dependencies for sleep-record handlers.
type SleepHandler struct {
	uc     usecase.SleepUsecase
	logger *slog.Logger
}

// NewSleepHandler is the constructor for SleepHandler, injected by Fx.
func NewSleepHandler(uc usecase.SleepUsecase, logger *slog.Logger) *SleepHandler {
	return &SleepHandler{
		uc:     uc,
		logger: logger,
	}
}

// Add handles recording a night of sleep.
func (h *SleepHandler) Add(c echo.Context) error {
	var input *usecase.AddSleepInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sleep entry input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.AddEntry(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Sleep entry recorded")
}

// Today handles the daily sleep view.
func (h *SleepHandler) Today(c echo.Context) error {
	output, err := h.uc.Today(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Week handles the weekly sleep view.
func (h *SleepHandler) Week(c echo.Context) error {
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
func (h *SleepHandler) Update(c echo.Context) error {
	id, err := entryID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.UpdateSleepInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sleep entry input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.UpdateEntry(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Sleep entry updated")
}

// Remove handles deleting an entry.
func (h *SleepHandler) Remove(c echo.Context) error {
	id, err := entryID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.RemoveEntry(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
