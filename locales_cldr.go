package humandate

import (
	"golang.org/x/text/cases"
)

//go:generate go run ./cmd/humandate-locales -out locales_cldr_data.go -locale de,es,fr,ru

// BundledLocaleKeys lists the locales generated from CLDR data.
func BundledLocaleKeys() []string {
	return append([]string{}, generatedCLDRLocales...)
}

// BundledLocale converts a generated CLDR bundle into a LocaleRecord. Labels
// CLDR has no data for are left empty and filled from the default locale on
// registration.
func BundledLocale(key string) (LocaleRecord, bool) {
	key = normalizeLocale(key)
	bundle, ok := cldrBundles[key]
	if !ok {
		return LocaleRecord{}, false
	}

	rec := LocaleRecord{
		Months: MonthNames{
			Declined: NameList(bundle.Months.Format).clone(),
			Full:     NameList(bundle.Months.StandAlone).clone(),
			Short:    NameList(bundle.Months.Abbr).clone(),
			Plural:   unitForms(bundle.Units["month"]),
		},
		Weekdays: WeekdayNames{
			Min:    NameList(bundle.Days.Short).clone(),
			Full:   NameList(bundle.Days.Wide).clone(),
			Short:  NameList(bundle.Days.Abbr).clone(),
			Plural: unitForms(bundle.Units["week"]),
		},
		Days:  UnitLabels{Plural: unitForms(bundle.Units["day"])},
		Years: YearLabels{Plural: unitForms(bundle.Units["year"])},
	}

	if len(bundle.DayPeriods) == 2 {
		tag := localeTag(key)
		lower, upper := cases.Lower(tag), cases.Upper(tag)
		for _, period := range bundle.DayPeriods {
			rec.Meridiem.Lower = append(rec.Meridiem.Lower, lower.String(period))
			rec.Meridiem.Upper = append(rec.Meridiem.Upper, upper.String(period))
		}
	}

	return rec, true
}

func unitForms(forms cldrUnitForms) NameList {
	if forms.One == "" && forms.Other == "" {
		return nil
	}
	return NameList{forms.One, forms.Few, forms.Other}
}
