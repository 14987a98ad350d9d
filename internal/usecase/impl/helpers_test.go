package impl

import (
	"io"
	"log/slog"
	"time"

	mockSvc "vita/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// day parses an ISO date into the midnight-UTC value used throughout.
func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}

	return t
}

// pinClock returns a clock fixed at the given date for however many reads
// the service performs.
func pinClock(t interface {
	mock.TestingT
	Cleanup(func())
}, date time.Time) *mockSvc.MockClock {
	clock := mockSvc.NewMockClock(t)
	clock.EXPECT().Today().Return(date).Maybe()

	return clock
}
