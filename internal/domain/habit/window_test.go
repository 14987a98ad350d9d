package habit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekStart_AllWeekdays(t *testing.T) {
	// 2026-08-17 is a Monday; walk the full week including the wrap to Sunday.
	monday := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC)

	for offset := 0; offset < 7; offset++ {
		today := monday.AddDate(0, 0, offset)
		got := WeekStart(today)

		assert.Equal(t, time.Monday, got.Weekday(), "weekday %s", today.Weekday())
		assert.Equal(t, monday, got, "weekday %s", today.Weekday())

		diff := int(today.Sub(got).Hours() / 24)
		assert.GreaterOrEqual(t, diff, 0)
		assert.LessOrEqual(t, diff, 6)
	}
}

func TestWeekStart_SundayResolvesToPreviousMonday(t *testing.T) {
	sunday := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Sunday, sunday.Weekday())

	got := WeekStart(sunday)
	assert.Equal(t, time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC), got)
}

func TestWeekStart_StripsTimeOfDay(t *testing.T) {
	wednesday := time.Date(2026, 8, 19, 23, 59, 58, 0, time.UTC)

	got := WeekStart(wednesday)
	assert.Equal(t, time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC), got)
}

func TestWeekDates_SpansMonthBoundary(t *testing.T) {
	start := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	dates := WeekDates(start)
	assert.Equal(t, start, dates[0])
	assert.Equal(t, time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC), dates[6])
}

func TestDay_NormalizesToMidnightUTC(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Taipei")
	require.NoError(t, err)

	local := time.Date(2026, 8, 23, 15, 4, 5, 0, loc)
	got := Day(local)

	assert.Equal(t, time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDay_RoundTrip(t *testing.T) {
	d, err := ParseDay("2026-02-28")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-28", Key(d))

	_, err = ParseDay("2026-2-28")
	assert.Error(t, err)
}
