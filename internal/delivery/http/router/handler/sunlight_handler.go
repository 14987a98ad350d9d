package handler

import (
	"log/slog"
	"net/http"

	"vita/internal/delivery/http/response"
	"vita/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SunlightHandler holds dependencies for sunlight-exposure handlers.
type SunlightHandler struct {
	uc     usecase.SunlightUsecase
	logger *slog.Logger
}

// NewSunlightHandler is the constructor for SunlightHandler, injected by Fx.
func NewSunlightHandler(uc usecase.SunlightUsecase, logger *slog.Logger) *SunlightHandler {
	return &SunlightHandler{
		uc:     uc,
		logger: logger,
	}
}

// Add handles recording sunlight exposure.
func (h *SunlightHandler) Add(c echo.Context) error {
	var input *usecase.AddSunlightInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sunlight entry input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.AddEntry(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Sunlight entry recorded")
}

// Today handles the daily sunlight view.
func (h *SunlightHandler) Today(c echo.Context) error {
	output, err := h.uc.Today(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Week handles the weekly sunlight view.
func (h *SunlightHandler) Week(c echo.Context) error {
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
func (h *SunlightHandler) Update(c echo.Context) error {
	id, err := entryID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.UpdateSunlightInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sunlight entry input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.UpdateEntry(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Sunlight entry updated")
}

// Remove handles deleting an entry.
func (h *SunlightHandler) Remove(c echo.Context) error {
	id, err := entryID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.RemoveEntry(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
