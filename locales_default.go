package humandate

// DefaultLocaleKey is the locale every engine starts with and falls back to.
const DefaultLocaleKey = "en"

// EnglishLocale returns the built in English record. It defines the shape
// every registered locale is merged onto.
func EnglishLocale() LocaleRecord {
	return LocaleRecord{
		Meridiem: Meridiem{
			Full:  NameList{"ante meridiem", "post meridiem"},
			Lower: NameList{"am", "pm"},
			Upper: NameList{"AM", "PM"},
		},
		Days: UnitLabels{
			Plural: NameList{"day", "days", "days"},
		},
		Years: YearLabels{
			Leap:   "is leap",
			Plural: NameList{"year", "years", "years"},
		},
		Common: CommonLabels{
			Backward: "Go back",
			Forward:  "Go forward",
			Hide:     "hide",
		},
		Months: MonthNames{
			Declined: NameList{
				"of January", "of February", "of March", "of April", "of May", "of June",
				"of July", "of August", "of September", "of October", "of November", "of December",
			},
			Full: NameList{
				"January", "February", "March", "April", "May", "June",
				"July", "August", "September", "October", "November", "December",
			},
			Short: NameList{
				"Jan", "Feb", "Mar", "Apr", "May", "Jun",
				"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
			},
			Plural: NameList{"month", "months", "months"},
		},
		Weekdays: WeekdayNames{
			Min:    NameList{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"},
			Full:   NameList{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
			Short:  NameList{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
			Plural: NameList{"week", "weeks", "weeks"},
		},
	}
}
