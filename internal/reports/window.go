// Package reports implements the aggregation engine behind the expense
// and income report endpoints: date window resolution, time-bucketed
// grouped sums with dense label-aligned output, and top-N ranking by
// category or subcategory.
package reports

import (
	"time"

	"gorm.io/gorm"
)

// Window is a date range restriction for monetary records.
//
// Most windows are half-open intervals. The month window keeps the
// inclusive last-instant end that clients already rely on.
type Window struct {
	Start        time.Time
	End          time.Time
	InclusiveEnd bool
}

// Apply adds the window's date restriction to the query. The column is
// the fully qualified date column, e.g. "expenses.date".
func (w Window) Apply(q *gorm.DB, column string) *gorm.DB {
	q = q.Where("datetime("+column+") >= datetime(?)", w.Start)

	if w.InclusiveEnd {
		return q.Where("datetime("+column+") <= datetime(?)", w.End)
	}

	return q.Where("datetime("+column+") < datetime(?)", w.End)
}

// ResolveWindow maps a filter keyword to the date range it names,
// relative to now. It returns nil for an absent or unrecognized keyword,
// in which case no date restriction applies.
func ResolveWindow(keyword string, now time.Time) *Window {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch keyword {
	case "today":
		return &Window{Start: midnight, End: midnight.AddDate(0, 0, 1)}
	case "week":
		// Weeks start on Sunday
		start := midnight.AddDate(0, 0, -int(now.Weekday()))
		return &Window{Start: start, End: start.AddDate(0, 0, 7)}
	case "month":
		return monthWindow(now)
	case "year":
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return &Window{Start: start, End: start.AddDate(1, 0, 0)}
	}

	return nil
}

// monthWindow returns the window covering the whole month of now, from
// the first of the month to the last instant of its last day.
func monthWindow(now time.Time) *Window {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	return &Window{
		Start:        start,
		End:          start.AddDate(0, 1, 0).Add(-time.Millisecond),
		InclusiveEnd: true,
	}
}
