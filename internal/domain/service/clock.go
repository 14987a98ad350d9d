// Package service defines domain service interfaces implemented by the
// infrastructure layer.
package service

import "time"

// Clock supplies the current calendar date. Every "add" and "today"
// operation reads the date through this interface so tests can pin time.
type Clock interface {
	// Today returns the current calendar date, normalized to midnight UTC.
	Today() time.Time
}
