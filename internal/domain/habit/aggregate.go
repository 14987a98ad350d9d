package habit

import "time"

// Merge folds one row into the running aggregate for its day.
type Merge[E, A any] func(acc A, row *E) A

// Weekly folds a sparse set of dated rows into a calendar-complete 7-day
// view keyed by ISO date. Every day of the window is seeded with the zero
// aggregate before any row is merged, so callers always observe exactly
// seven keys no matter how little data exists. Rows outside the half-open
// window [weekStart, weekStart+7d) are skipped.
func Weekly[E, A any](weekStart time.Time, rows []*E, dateOf func(*E) time.Time, zero func() A, merge Merge[E, A]) map[string]A {
	start := Day(weekStart)
	end := WeekEnd(start)

	out := make(map[string]A, 7)
	for _, d := range WeekDates(start) {
		out[Key(d)] = zero()
	}

	for _, row := range rows {
		d := Day(dateOf(row))
		if d.Before(start) || !d.Before(end) {
			continue
		}

		k := Key(d)
		out[k] = merge(out[k], row)
	}

	return out
}

// SumMerge accumulates an integer measure per day.
func SumMerge[E any](value func(*E) int) Merge[E, int] {
	return func(acc int, row *E) int {
		return acc + value(row)
	}
}

// ReplaceMerge keeps the last row scanned for a day. Rows arrive in storage
// order, so a duplicate day resolves to the most recently inserted record.
func ReplaceMerge[E any]() Merge[E, *E] {
	return func(_ *E, row *E) *E {
		return row
	}
}

// AppendMerge collects every row for a day in storage order.
func AppendMerge[E any]() Merge[E, []*E] {
	return func(acc []*E, row *E) []*E {
		return append(acc, row)
	}
}

// EmptySum is the zero value for sum aggregation.
func EmptySum() int {
	return 0
}

// EmptySingle is the zero value for single-record aggregation.
func EmptySingle[E any]() *E {
	return nil
}

// EmptyList is the zero value for list aggregation. It is non-nil so absent
// days serialize as an empty JSON array rather than null.
func EmptyList[E any]() []*E {
	return []*E{}
}
