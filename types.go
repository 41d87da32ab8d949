package humandate

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ListSeparator joins and splits list values stored in their string form.
const ListSeparator = ";"

// NameList is an ordered list of localized strings. Files may spell it either
// as a sequence or as a single ListSeparator joined string.
type NameList []string

// SplitNameList splits a ListSeparator joined string. An empty string yields nil.
func SplitNameList(value string) NameList {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ListSeparator)
	out := make(NameList, len(parts))
	for i, part := range parts {
		out[i] = strings.TrimSpace(part)
	}
	return out
}

// String returns the joined string form.
func (l NameList) String() string {
	return strings.Join(l, ListSeparator)
}

// At returns the i-th entry or "" when out of range.
func (l NameList) At(i int) string {
	if i < 0 || i >= len(l) {
		return ""
	}
	return l[i]
}

func (l NameList) clone() NameList {
	if l == nil {
		return nil
	}
	return append(NameList(nil), l...)
}

func (l *NameList) UnmarshalJSON(data []byte) error {
	var joined string
	if err := json.Unmarshal(data, &joined); err == nil {
		*l = SplitNameList(joined)
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("name list: expected string or array: %w", err)
	}
	*l = NameList(items)
	return nil
}

func (l *NameList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*l = SplitNameList(value.Value)
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		*l = NameList(items)
		return nil
	default:
		return fmt.Errorf("name list: unsupported yaml node kind %d", value.Kind)
	}
}

func (l *NameList) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		*l = SplitNameList(v)
		return nil
	case []any:
		items := make(NameList, 0, len(v))
		for _, item := range v {
			str, ok := item.(string)
			if !ok {
				return fmt.Errorf("name list: entries must be strings, got %T", item)
			}
			items = append(items, str)
		}
		*l = items
		return nil
	default:
		return fmt.Errorf("name list: unsupported toml value %T", data)
	}
}

// Meridiem holds the two ante/post meridiem labels in three spellings.
type Meridiem struct {
	Full  NameList `json:"full" yaml:"full" toml:"full"`
	Lower NameList `json:"lower" yaml:"lower" toml:"lower"`
	Upper NameList `json:"upper" yaml:"upper" toml:"upper"`
}

// UnitLabels carries the singular / few / many forms of a calendar unit.
type UnitLabels struct {
	Plural NameList `json:"plural" yaml:"plural" toml:"plural"`
}

type YearLabels struct {
	Leap   string   `json:"leap" yaml:"leap" toml:"leap"`
	Plural NameList `json:"plural" yaml:"plural" toml:"plural"`
}

// CommonLabels are navigation strings used by calendar widgets.
type CommonLabels struct {
	Backward string `json:"backward" yaml:"backward" toml:"backward"`
	Forward  string `json:"forward" yaml:"forward" toml:"forward"`
	Hide     string `json:"hide" yaml:"hide" toml:"hide"`
}

// MonthNames lists month names January first. Declined holds the genitive
// ("of January") forms used by languages that inflect month names.
type MonthNames struct {
	Declined NameList `json:"declined" yaml:"declined" toml:"declined"`
	Full     NameList `json:"full" yaml:"full" toml:"full"`
	Short    NameList `json:"short" yaml:"short" toml:"short"`
	Plural   NameList `json:"plural" yaml:"plural" toml:"plural"`
}

// WeekdayNames lists weekday names Monday first. Plural holds the forms of "week".
type WeekdayNames struct {
	Min    NameList `json:"min" yaml:"min" toml:"min"`
	Full   NameList `json:"full" yaml:"full" toml:"full"`
	Short  NameList `json:"short" yaml:"short" toml:"short"`
	Plural NameList `json:"plural" yaml:"plural" toml:"plural"`
}

// HolidaySet is a list of YYYY-MM-DD dates plus the window they are valid for.
// A zero From or Till leaves that side of the window open.
type HolidaySet struct {
	List NameList  `json:"list" yaml:"list" toml:"list"`
	From time.Time `json:"-" yaml:"-" toml:"-"`
	Till time.Time `json:"-" yaml:"-" toml:"-"`
}

func (h HolidaySet) clone() HolidaySet {
	return HolidaySet{List: h.List.clone(), From: h.From, Till: h.Till}
}

func (h HolidaySet) contains(iso string) bool {
	for _, item := range h.List {
		if item == iso {
			return true
		}
	}
	return false
}

func (h HolidaySet) covers(t time.Time) bool {
	if h.From.IsZero() && h.Till.IsZero() {
		return true
	}
	day := startOfDay(t)
	if !h.From.IsZero() && day.Before(h.From) {
		return false
	}
	if !h.Till.IsZero() && day.After(h.Till) {
		return false
	}
	return true
}

// LocaleRecord is the full set of localized strings for one locale key.
type LocaleRecord struct {
	Meridiem Meridiem     `json:"ampm" yaml:"ampm" toml:"ampm"`
	Days     UnitLabels   `json:"days" yaml:"days" toml:"days"`
	Years    YearLabels   `json:"years" yaml:"years" toml:"years"`
	Common   CommonLabels `json:"common" yaml:"common" toml:"common"`
	Months   MonthNames   `json:"months" yaml:"months" toml:"months"`
	Weekdays WeekdayNames `json:"weekdays" yaml:"weekdays" toml:"weekdays"`
	Holidays HolidaySet   `json:"holidays" yaml:"holidays" toml:"holidays"`
}

// Clone returns a deep copy.
func (r LocaleRecord) Clone() LocaleRecord {
	out := r
	out.Meridiem = Meridiem{
		Full:  r.Meridiem.Full.clone(),
		Lower: r.Meridiem.Lower.clone(),
		Upper: r.Meridiem.Upper.clone(),
	}
	out.Days.Plural = r.Days.Plural.clone()
	out.Years.Plural = r.Years.Plural.clone()
	out.Months = MonthNames{
		Declined: r.Months.Declined.clone(),
		Full:     r.Months.Full.clone(),
		Short:    r.Months.Short.clone(),
		Plural:   r.Months.Plural.clone(),
	}
	out.Weekdays = WeekdayNames{
		Min:    r.Weekdays.Min.clone(),
		Full:   r.Weekdays.Full.clone(),
		Short:  r.Weekdays.Short.clone(),
		Plural: r.Weekdays.Plural.clone(),
	}
	out.Holidays = r.Holidays.clone()
	return out
}

// mergeLocale lays supplied over base, element by element. Values already
// present in existing win unless overwrite is set. Holidays are handled by
// the holiday registry and are carried over from existing untouched.
func mergeLocale(existing, supplied, base LocaleRecord, overwrite bool) LocaleRecord {
	list := func(e, s, b NameList) NameList {
		return mergeList(e, s, b, overwrite)
	}
	str := func(e, s, b string) string {
		return mergeString(e, s, b, overwrite)
	}

	return LocaleRecord{
		Meridiem: Meridiem{
			Full:  list(existing.Meridiem.Full, supplied.Meridiem.Full, base.Meridiem.Full),
			Lower: list(existing.Meridiem.Lower, supplied.Meridiem.Lower, base.Meridiem.Lower),
			Upper: list(existing.Meridiem.Upper, supplied.Meridiem.Upper, base.Meridiem.Upper),
		},
		Days: UnitLabels{Plural: list(existing.Days.Plural, supplied.Days.Plural, base.Days.Plural)},
		Years: YearLabels{
			Leap:   str(existing.Years.Leap, supplied.Years.Leap, base.Years.Leap),
			Plural: list(existing.Years.Plural, supplied.Years.Plural, base.Years.Plural),
		},
		Common: CommonLabels{
			Backward: str(existing.Common.Backward, supplied.Common.Backward, base.Common.Backward),
			Forward:  str(existing.Common.Forward, supplied.Common.Forward, base.Common.Forward),
			Hide:     str(existing.Common.Hide, supplied.Common.Hide, base.Common.Hide),
		},
		Months: MonthNames{
			Declined: list(existing.Months.Declined, supplied.Months.Declined, base.Months.Declined),
			Full:     list(existing.Months.Full, supplied.Months.Full, base.Months.Full),
			Short:    list(existing.Months.Short, supplied.Months.Short, base.Months.Short),
			Plural:   list(existing.Months.Plural, supplied.Months.Plural, base.Months.Plural),
		},
		Weekdays: WeekdayNames{
			Min:    list(existing.Weekdays.Min, supplied.Weekdays.Min, base.Weekdays.Min),
			Full:   list(existing.Weekdays.Full, supplied.Weekdays.Full, base.Weekdays.Full),
			Short:  list(existing.Weekdays.Short, supplied.Weekdays.Short, base.Weekdays.Short),
			Plural: list(existing.Weekdays.Plural, supplied.Weekdays.Plural, base.Weekdays.Plural),
		},
		Holidays: existing.Holidays.clone(),
	}
}

func mergeList(existing, supplied, base NameList, overwrite bool) NameList {
	if len(base) == 0 {
		return nil
	}
	out := make(NameList, len(base))
	for i := range base {
		switch {
		case !overwrite && existing.At(i) != "":
			out[i] = existing[i]
		case supplied.At(i) != "":
			out[i] = supplied[i]
		default:
			out[i] = base[i]
		}
	}
	return out
}

func mergeString(existing, supplied, base string, overwrite bool) string {
	switch {
	case !overwrite && existing != "":
		return existing
	case supplied != "":
		return supplied
	default:
		return base
	}
}
