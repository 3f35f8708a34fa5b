package reports

import (
	"fmt"
	"strconv"
	"time"
)

// DatePart identifies a calendar component that records can be grouped
// by. Each part maps to a SQLite strftime expression; any store with
// calendar-aware grouping could substitute its own expressions here.
type DatePart string

const (
	// PartWeekday is the day of the week, 1 = Sunday … 7 = Saturday.
	PartWeekday DatePart = "weekday"
	// PartWeek is the Sunday-first week of the year, zero-based: days
	// before the first Sunday of the year are week 0.
	PartWeek DatePart = "week"
	// PartMonth is the month of the year, 1–12.
	PartMonth DatePart = "month"
	// PartYear is the calendar year.
	PartYear DatePart = "year"
)

// expr returns the SQLite expression extracting the part from the date column.
func (p DatePart) expr(column string) string {
	switch p {
	case PartWeekday:
		return fmt.Sprintf("CAST(strftime('%%w', %s) AS INTEGER) + 1", column)
	case PartWeek:
		// Spelled out via %j and %w because the embedded SQLite does not
		// implement strftime('%U'). Must stay in sync with weekOfYear.
		return fmt.Sprintf("(CAST(strftime('%%j', %s) AS INTEGER) - 1 + 7 - CAST(strftime('%%w', %s) AS INTEGER)) / 7", column, column)
	case PartMonth:
		return fmt.Sprintf("CAST(strftime('%%m', %s) AS INTEGER)", column)
	case PartYear:
		return fmt.Sprintf("CAST(strftime('%%Y', %s) AS INTEGER)", column)
	}

	return ""
}

// BucketSpec describes one report type: how records are grouped, the
// ordered bucket labels of the output, the native grouping key expected
// at each label position, and an optional date range that replaces
// whatever filter window the request carries.
type BucketSpec struct {
	Part     DatePart
	Labels   []string
	Keys     []int
	Override *Window
}

// ResolveBuckets maps a report type keyword to its bucket specification.
// The second return value is false for an unrecognized report type.
//
// Each report type derives its own natural scope instead of trusting the
// request's filter: a weekly report is pinned to the current month, a
// monthly report to the current year.
//
// The weekly report carries ceil(days/7) labels. A 31-day month whose
// first falls on a Friday or Saturday straddles six calendar weeks, so
// records in the final partial week fall outside the labeled buckets and
// are not counted.
func ResolveBuckets(reportType string, now time.Time) (BucketSpec, bool) {
	switch reportType {
	case "daily":
		labels := make([]string, 7)
		keys := make([]int, 7)
		for i := range labels {
			labels[i] = time.Weekday(i).String()
			keys[i] = i + 1
		}

		return BucketSpec{Part: PartWeekday, Labels: labels, Keys: keys}, true

	case "weekly":
		override := monthWindow(now)
		days := daysInMonth(now)
		weeks := (days + 6) / 7

		// The native keys are consecutive week-of-year numbers starting
		// at the week containing the first of the month.
		base := weekOfYear(override.Start)

		labels := make([]string, weeks)
		keys := make([]int, weeks)
		for i := range labels {
			labels[i] = fmt.Sprintf("Week %d", i+1)
			keys[i] = base + i
		}

		return BucketSpec{Part: PartWeek, Labels: labels, Keys: keys, Override: override}, true

	case "monthly":
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		override := &Window{Start: start, End: start.AddDate(1, 0, 0)}

		labels := make([]string, 12)
		keys := make([]int, 12)
		for i := range labels {
			labels[i] = time.Month(i + 1).String()
			keys[i] = i + 1
		}

		return BucketSpec{Part: PartMonth, Labels: labels, Keys: keys, Override: override}, true

	case "yearly":
		labels := make([]string, 4)
		keys := make([]int, 4)
		for i := range labels {
			year := now.Year() - 3 + i
			labels[i] = strconv.Itoa(year)
			keys[i] = year
		}

		return BucketSpec{Part: PartYear, Labels: labels, Keys: keys}, true
	}

	return BucketSpec{}, false
}

// daysInMonth returns the number of days in the month of t.
func daysInMonth(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day()
}

// weekOfYear returns the Sunday-first, zero-based week number of t.
// The PartWeek SQL expression computes the same number.
func weekOfYear(t time.Time) int {
	return (t.YearDay() - 1 + 7 - int(t.Weekday())) / 7
}
