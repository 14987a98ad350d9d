package handler

import (
	"log/slog"
	"net/http"

	"vita/internal/delivery/http/response"
	"vita/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ActivityHandler holds dependencies for physical-activity handlers.
type ActivityHandler struct {
	uc     usecase.ActivityUsecase
	logger *slog.Logger
}

// NewActivityHandler is the constructor for ActivityHandler, injected by Fx.
func NewActivityHandler(uc usecase.ActivityUsecase, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{
		uc:     uc,
		logger: logger,
	}
}

// Add handles recording an exercise session.
func (h *ActivityHandler) Add(c echo.Context) error {
	var input *usecase.AddActivityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activity entry input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.AddEntry(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Activity entry recorded")
}

// Today handles the daily activity view.
func (h *ActivityHandler) Today(c echo.Context) error {
	output, err := h.uc.Today(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Week handles the weekly activity view.
func (h *ActivityHandler) Week(c echo.Context) error {
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
func (h *ActivityHandler) Update(c echo.Context) error {
	id, err := entryID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.UpdateActivityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activity entry input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.UpdateEntry(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Activity entry updated")
}

// Remove handles deleting an entry.
func (h *ActivityHandler) Remove(c echo.Context) error {
	id, err := entryID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.RemoveEntry(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
