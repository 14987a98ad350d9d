package handler

import (
	"log/slog"
	"net/http"

	"vita/internal/delivery/http/response"
	"vita/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// Get handles reading the profile. A missing profile is not an error; the
// data field is simply absent.
func (h *ProfileHandler) Get(c echo.Context) error {
	output, err := h.uc.Get(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}
	if output == nil {
		return response.Success(c, http.StatusOK, nil, "No profile yet")
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Update handles the full-replace profile update.
func (h *ProfileHandler) Update(c echo.Context) error {
	var input *usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Update(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Profile updated")
}
