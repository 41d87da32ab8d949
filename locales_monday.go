package humandate

import (
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MondayLocale builds month, weekday and meridiem names from the monday
// translation tables. Unset fields fall back to the default locale when the
// record is registered.
func MondayLocale(locale monday.Locale) LocaleRecord {
	var rec LocaleRecord

	for m := time.January; m <= time.December; m++ {
		t := time.Date(2024, m, 1, 0, 0, 0, 0, time.UTC)
		rec.Months.Full = append(rec.Months.Full, monday.Format(t, "January", locale))
		rec.Months.Short = append(rec.Months.Short, monday.Format(t, "Jan", locale))

		// the day prefix selects the genitive form in inflecting languages
		declined := monday.Format(t, "2 January", locale)
		if _, name, ok := strings.Cut(declined, " "); ok {
			declined = name
		}
		rec.Months.Declined = append(rec.Months.Declined, declined)
	}

	// 2024-01-01 is a Monday
	for d := 0; d < 7; d++ {
		t := time.Date(2024, time.January, 1+d, 0, 0, 0, 0, time.UTC)
		short := monday.Format(t, "Mon", locale)
		rec.Weekdays.Full = append(rec.Weekdays.Full, monday.Format(t, "Monday", locale))
		rec.Weekdays.Short = append(rec.Weekdays.Short, short)
		rec.Weekdays.Min = append(rec.Weekdays.Min, firstRunes(short, 2))
	}

	tag := localeTag(normalizeLocale(string(locale)))
	lower := cases.Lower(tag)
	upper := cases.Upper(tag)
	for _, hour := range []int{9, 21} {
		label := monday.Format(time.Date(2024, time.January, 1, hour, 0, 0, 0, time.UTC), "PM", locale)
		rec.Meridiem.Lower = append(rec.Meridiem.Lower, lower.String(label))
		rec.Meridiem.Upper = append(rec.Meridiem.Upper, upper.String(label))
	}

	return rec
}

// MondayLocaleKey maps a monday locale such as "ru_RU" to a registry key.
func MondayLocaleKey(locale monday.Locale) string {
	tag := localeTag(normalizeLocale(string(locale)))
	if tag == language.Und {
		return normalizeLocale(string(locale))
	}
	return tag.String()
}

func firstRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
