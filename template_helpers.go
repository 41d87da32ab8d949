package humandate

import "time"

// HelperConfig configures template helper exports
type HelperConfig struct {
	// OnError renders the output of human_date when the value cannot be
	// parsed. parse_date returns the error to the template; other helpers
	// return their zero value.
	OnError func(helper string, value any, err error) string
}

// TemplateHelpers exposes engine operations for text/template and html/template.
func TemplateHelpers(e *Engine, cfg HelperConfig) map[string]any {
	if e == nil {
		e = Default()
	}

	onError := cfg.OnError
	if onError == nil {
		onError = func(string, any, error) string { return "" }
	}

	parse := func(value any) (time.Time, error) {
		v, err := ToDateLike(value)
		if err != nil {
			return time.Time{}, err
		}
		return e.Parse(v)
	}

	return map[string]any{
		"human_date": func(value any, tmpl string) string {
			t, err := parse(value)
			if err != nil {
				return onError("human_date", value, err)
			}
			return e.FormatTime(t, tmpl)
		},
		"parse_date": func(value any) (time.Time, error) {
			return parse(value)
		},
		"days_in_month": func(month, year int) int {
			return e.DaysInMonth(month, year)
		},
		"is_holiday": func(value any) bool {
			t, err := parse(value)
			if err != nil {
				return false
			}
			ok, _ := e.IsHoliday(FromTime(t))
			return ok
		},
		"is_weekend": func(value any) bool {
			t, err := parse(value)
			if err != nil {
				return false
			}
			return IsWeekend(t)
		},
		"month_grid": func(value any) []time.Time {
			t, err := parse(value)
			if err != nil {
				return nil
			}
			return MonthGrid(t)
		},
		"plural": func(count int, unit string) string {
			return e.Plural(count, Unit(unit))
		},
		"leap_label": func() string {
			return e.LeapLabel()
		},
	}
}
