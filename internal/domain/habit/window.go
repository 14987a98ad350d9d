// Package habit contains the calendar arithmetic, weekly aggregation and
// recommendation logic shared by every wellness domain.
package habit

import "time"

// DayFormat is the wire format for calendar dates. ISO dates also sort
// chronologically as plain strings, which keeps weekly JSON maps ordered.
const DayFormat = "2006-01-02"

// Day strips the time-of-day portion of t, anchoring the calendar date at
// midnight UTC. All date comparisons in the system go through this.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Key renders a date as its ISO day string.
func Key(d time.Time) string {
	return d.Format(DayFormat)
}

// ParseDay parses an ISO day string into a midnight-UTC date.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return time.Time{}, err
	}

	return Day(t), nil
}

// WeekStart returns the Monday of the ISO week containing today.
// diff = (weekday+6) mod 7 maps Monday to 0 and Sunday to 6, so the result
// is never more than six days in the past.
func WeekStart(today time.Time) time.Time {
	d := Day(today)
	diff := (int(d.Weekday()) + 6) % 7

	return d.AddDate(0, 0, -diff)
}

// WeekEnd returns the exclusive end of the 7-day window starting at weekStart.
func WeekEnd(weekStart time.Time) time.Time {
	return Day(weekStart).AddDate(0, 0, 7)
}

// WeekDates lists the seven dates of the window [weekStart, weekStart+7d).
func WeekDates(weekStart time.Time) [7]time.Time {
	start := Day(weekStart)

	var dates [7]time.Time
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}

	return dates
}
