package humandate

import (
	"fmt"
	"time"
)

// isoDate is the layout holidays are stored in.
const isoDate = "2006-01-02"

// SetHolidays parses items and stores them as the holiday list of key. The
// first and last items bound the window the list is valid for. Unknown keys
// are created from the default locale; the active locale does not change.
func (e *Engine) SetHolidays(key string, items ...DateLike) error {
	key = normalizeLocale(key)
	if key == "" {
		return fmt.Errorf("humandate: holidays: %w", ErrUnknownLocale)
	}

	var set HolidaySet
	for i, item := range items {
		t, err := e.Parse(item)
		if err != nil {
			return fmt.Errorf("humandate: holiday %d for %q: %w", i, key, err)
		}
		set.List = append(set.List, t.Format(isoDate))
		if i == 0 {
			set.From = startOfDay(t)
		}
		if i == len(items)-1 {
			set.Till = startOfDay(t)
		}
	}

	e.locales.setHolidays(key, set)
	return nil
}

// SetHolidayList is SetHolidays for a ListSeparator joined string.
func (e *Engine) SetHolidayList(key, list string) error {
	names := SplitNameList(list)
	items := make([]DateLike, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		items = append(items, FromString(name))
	}
	return e.SetHolidays(key, items...)
}

// Holidays returns the stored ISO dates of key, nil when it has none.
func (e *Engine) Holidays(key string) []string {
	return e.locales.Holidays(key)
}

// IsHoliday reports whether v is a weekend day or listed in the active
// locale's holidays, the default locale's when the active one has none.
// Outside the list's window only weekends count.
func (e *Engine) IsHoliday(v DateLike) (bool, error) {
	t, err := e.Parse(v)
	if err != nil {
		return false, err
	}

	weekend := IsWeekend(t)
	set := e.locales.activeHolidays()
	if len(set.List) == 0 || !set.covers(t) {
		return weekend, nil
	}
	return weekend || set.contains(t.Format(isoDate)), nil
}

// IsWeekend reports whether v falls on a Saturday or Sunday.
func (e *Engine) IsWeekend(v DateLike) (bool, error) {
	t, err := e.Parse(v)
	if err != nil {
		return false, err
	}
	return IsWeekend(t), nil
}

// Inside parses its arguments and calls the package Inside.
func (e *Engine) Inside(now, min, max DateLike, inclusive bool) (bool, error) {
	var parsed [3]time.Time
	for i, v := range [3]DateLike{now, min, max} {
		t, err := e.Parse(v)
		if err != nil {
			return false, err
		}
		parsed[i] = t
	}
	return Inside(parsed[0], parsed[1], parsed[2], inclusive), nil
}
