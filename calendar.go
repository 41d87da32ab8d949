package humandate

import (
	"sort"
	"time"
)

// GridSize is the number of cells in a month grid, six Monday first weeks.
const GridSize = 42

// DaysInMonth returns the number of days of a 1-based month.
func DaysInMonth(month, year int) int {
	return time.Date(year, time.Month(month+1), 0, 0, 0, 0, 0, time.UTC).Day()
}

// DaysInMonthZeroBased is DaysInMonth for callers counting January as 0.
func DaysInMonthZeroBased(month, year int) int {
	return DaysInMonth(month+1, year)
}

// IsLeapYear probes February 29th of year.
func IsLeapYear(year int) bool {
	return time.Date(year, time.February, 29, 0, 0, 0, 0, time.UTC).Day() == 29
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// isoWeekday maps time.Weekday onto 1 (Monday) .. 7 (Sunday).
func isoWeekday(t time.Time) int {
	if wd := t.Weekday(); wd != time.Sunday {
		return int(wd)
	}
	return 7
}

// Distance is the gap between two instants. Months and Years come from the
// calendar fields while the remaining units are successive floor divisions of
// the elapsed milliseconds, so the two halves are not reconciled with each
// other (Jan 31 to Feb 1 is one month and one day).
type Distance struct {
	Years   int `json:"years"`
	Months  int `json:"months"`
	Weeks   int `json:"weeks"`
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// DistanceBetween measures from and till in either order.
func DistanceBetween(from, till time.Time) Distance {
	if from.After(till) {
		from, till = till, from
	}

	var out Distance
	out.Months = (till.Year()-from.Year())*12 - int(from.Month()) + int(till.Month())
	out.Years = floorDiv(out.Months, 12)

	delta := till.UnixMilli() - from.UnixMilli()
	out.Seconds = int(delta / 1000)
	out.Minutes = out.Seconds / 60
	out.Hours = out.Minutes / 60
	out.Days = out.Hours / 24
	out.Weeks = out.Days / 7
	return out
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// MonthGrid lays the month of ref out on GridSize Monday first cells. Leading
// and trailing cells belong to the adjacent months; all cells are midnight in
// ref's location.
func MonthGrid(ref time.Time) []time.Time {
	year, month, _ := ref.Date()
	loc := ref.Location()

	last := DaysInMonth(int(month), year)
	from := isoWeekday(time.Date(year, month, 1, 0, 0, 0, 0, loc))
	rest := GridSize - last

	if from != 1 {
		from = -(from - 2)
		rest = rest + from - 1
	}
	till := last
	if rest > 0 {
		till = last + rest
	}

	grid := make([]time.Time, 0, GridSize)
	for day := from; day <= till; day++ {
		grid = append(grid, time.Date(year, month, day, 0, 0, 0, 0, loc))
	}
	return grid
}

// OrderMode selects what Order returns.
type OrderMode string

const (
	OrderAll OrderMode = ""
	OrderMin OrderMode = "min"
	OrderMax OrderMode = "max"
)

// Order sorts a copy of dates ascending, keeping the input order of equal
// instants. OrderMin and OrderMax return only the first or last element.
func Order(dates []time.Time, mode OrderMode) []time.Time {
	if len(dates) == 0 {
		return nil
	}

	sorted := append([]time.Time(nil), dates...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Before(sorted[j])
	})

	switch mode {
	case OrderMin:
		return sorted[:1]
	case OrderMax:
		return sorted[len(sorted)-1:]
	default:
		return sorted
	}
}

// Earliest returns the smallest instant; ok is false for an empty slice.
func Earliest(dates []time.Time) (time.Time, bool) {
	out := Order(dates, OrderMin)
	if len(out) == 0 {
		return time.Time{}, false
	}
	return out[0], true
}

// Latest returns the greatest instant; ok is false for an empty slice.
func Latest(dates []time.Time) (time.Time, bool) {
	out := Order(dates, OrderMax)
	if len(out) == 0 {
		return time.Time{}, false
	}
	return out[0], true
}

// Inside reports whether now lies between min and max, bounds included when
// inclusive is set.
func Inside(now, min, max time.Time, inclusive bool) bool {
	if inclusive {
		return !now.Before(min) && !now.After(max)
	}
	return now.After(min) && now.Before(max)
}

// IsWeekend reports Saturdays and Sundays.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
