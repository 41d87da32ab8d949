package humandate

import (
	"strconv"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// Unit is a calendar unit with localized plural forms.
type Unit string

const (
	UnitDay   Unit = "day"
	UnitWeek  Unit = "week"
	UnitMonth Unit = "month"
	UnitYear  Unit = "year"
)

// PluralWord returns the active locale's form of unit for count: the first
// entry for CLDR "one", the second for "two" and "few", the third otherwise.
func (e *Engine) PluralWord(count int, unit Unit) string {
	rec := e.locales.Current()

	var forms NameList
	switch unit {
	case UnitDay:
		forms = rec.Days.Plural
	case UnitWeek:
		forms = rec.Weekdays.Plural
	case UnitMonth:
		forms = rec.Months.Plural
	case UnitYear:
		forms = rec.Years.Plural
	default:
		return string(unit)
	}

	return forms.At(pluralIndex(localeTag(e.locales.CurrentKey()), count))
}

// Plural renders count followed by its unit word, "5 days".
func (e *Engine) Plural(count int, unit Unit) string {
	return strconv.Itoa(count) + " " + e.PluralWord(count, unit)
}

// LeapLabel returns the active locale's label for leap years.
func (e *Engine) LeapLabel() string {
	return e.locales.Current().Years.Leap
}

func pluralIndex(tag language.Tag, count int) int {
	if count < 0 {
		count = -count
	}
	if tag == language.Und {
		tag = language.English
	}

	switch plural.Cardinal.MatchPlural(tag, count, 0, 0, 0, 0) {
	case plural.One:
		return 0
	case plural.Two, plural.Few:
		return 1
	default:
		return 2
	}
}
