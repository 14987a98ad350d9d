package handler

import (
	"log/slog"
	"net/http"

	"vita/internal/delivery/http/response"
	"vita/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for owner-authentication handlers. The
// usecase is nil when authentication is not configured; the router then
// skips the auth routes.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Enabled reports whether authentication is configured.
func (h *AuthHandler) Enabled() bool {
	return h.uc != nil
}

// Token handles issuing a token pair from the owner password.
func (h *AuthHandler) Token(c echo.Context) error {
	var input *usecase.IssueTokensInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token request input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.IssueTokens(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Tokens issued")
}

// Refresh handles rotating the token pair from a refresh token.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var input *usecase.RefreshTokensInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RefreshTokens(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Tokens refreshed")
}
