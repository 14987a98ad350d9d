// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	domainerrors "vita/internal/domain/errors"
	"vita/internal/domain/habit"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// entryID parses the :id path parameter.
func entryID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid entry id")
	}

	return id, nil
}

// weekStartParam parses the optional ?start=YYYY-MM-DD query parameter.
// Absent means the Monday of the current week, resolved downstream.
func weekStartParam(c echo.Context) (*time.Time, error) {
	raw := c.QueryParam("start")
	if raw == "" {
		return nil, nil
	}

	start, err := habit.ParseDay(raw)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid start date")
	}

	return &start, nil
}
