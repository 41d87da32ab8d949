package humandate

import (
	"strconv"
	"strings"
	"time"
)

// FieldMap holds every token of one date rendered under one locale. It is
// built in full by Engine.Fields and never changes afterwards.
type FieldMap struct {
	Time time.Time

	Day           string // d
	DayOfMonth    int    // j
	WeekdayShort  string // D
	WeekdayFull   string // l
	ISOWeekday    int    // N
	Ordinal       string // S
	Weekday       int    // w
	DayOfYear     int    // z
	Week          int    // W
	MonthFull     string // F
	MonthShort    string // M
	MonthDeclined string
	Month         string // m
	MonthNumber   int    // n
	DaysInMonth   int    // t
	LeapYear      bool   // L
	Year          int    // Y
	YearShort     string // y
	Meridiem      string // a
	MeridiemUpper string // A
	Hour12        int    // g
	Hour24        int    // G
	Hour12Padded  string // h
	Hour24Padded  string // H
	Minute        string // i
	Second        string // s
	Zone          string // e
	DST           bool   // I
	Offset        string // O
	OffsetColon   string // P
	ZoneAbbrev    string // T
	OffsetMinutes int    // Z
	ISO8601       string // c
	Native        string // r
	Epoch         int64  // U
}

// compat switches the behaviours downstream consumers may depend on.
type compat struct {
	twelveHourFix bool
	meridiemFix   bool
}

func buildFieldMap(t time.Time, rec LocaleRecord, flags compat) FieldMap {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, t.Location())
	dist := DistanceBetween(jan1, t)

	fm := FieldMap{
		Time:          t,
		DayOfMonth:    day,
		Day:           zeroTail(day),
		Weekday:       int(t.Weekday()),
		ISOWeekday:    isoWeekday(t),
		Ordinal:       ordinalSuffix(day),
		DayOfYear:     dist.Days,
		Week:          dist.Weeks,
		MonthNumber:   int(month),
		Month:         zeroTail(int(month)),
		MonthFull:     rec.Months.Full.At(int(month) - 1),
		MonthShort:    rec.Months.Short.At(int(month) - 1),
		MonthDeclined: rec.Months.Declined.At(int(month) - 1),
		DaysInMonth:   DaysInMonth(int(month), year),
		Year:          year,
		LeapYear:      IsLeapYear(year),
		Hour24:        hour,
		Hour24Padded:  zeroTail(hour),
		Minute:        zeroTail(minute),
		Second:        zeroTail(second),
		Zone:          t.Location().String(),
		Epoch:         t.UnixMilli(),
	}
	fm.WeekdayShort = rec.Weekdays.Short.At(fm.ISOWeekday - 1)
	fm.WeekdayFull = rec.Weekdays.Full.At(fm.ISOWeekday - 1)

	if y := padYear(year); len(y) > 2 {
		fm.YearShort = y[len(y)-2:]
	} else {
		fm.YearShort = y
	}

	fm.Hour12 = hour - 12
	if flags.twelveHourFix {
		fm.Hour12 = hour % 12
		if fm.Hour12 == 0 {
			fm.Hour12 = 12
		}
	}
	fm.Hour12Padded = zeroTail(fm.Hour12)

	morning := hour <= 12
	if flags.meridiemFix {
		morning = hour < 12
	}
	if morning {
		fm.Meridiem = rec.Meridiem.Lower.At(0)
		fm.MeridiemUpper = rec.Meridiem.Upper.At(0)
	} else {
		fm.Meridiem = rec.Meridiem.Lower.At(1)
		fm.MeridiemUpper = rec.Meridiem.Upper.At(1)
	}

	fm.Native = nativeString(t)
	fm.Offset, fm.ZoneAbbrev = splitNative(fm.Native)
	if len(fm.Offset) == 5 {
		fm.OffsetColon = fm.Offset[:3] + ":" + fm.Offset[3:]
	} else {
		fm.OffsetColon = fm.Offset
	}
	_, offset := t.Zone()
	fm.OffsetMinutes = -offset / 60

	fm.DST = observesSummerTime(t)

	fm.ISO8601 = padYear(fm.Year) + "-" + fm.Month + "-" + fm.Day +
		"T" + fm.Hour24Padded + ":" + fm.Minute + ":" + fm.Second + fm.OffsetColon

	return fm
}

// padYear renders year with at least four digits, "0099" for 99.
func padYear(year int) string {
	if year < 0 {
		return "-" + padYear(-year)
	}
	y := strconv.Itoa(year)
	if len(y) < 4 {
		y = strings.Repeat("0", 4-len(y)) + y
	}
	return y
}

// splitNative reads the offset and zone abbreviation out of a NativeLayout
// rendering: "... GMT+0100 (CET)" yields "+0100" and "CET".
func splitNative(native string) (string, string) {
	_, rest, ok := strings.Cut(native, "GMT")
	if !ok {
		return "", ""
	}
	rest = strings.Replace(rest, ")", "", 1)
	offset, abbrev, _ := strings.Cut(rest, " (")
	return offset, abbrev
}

// observesSummerTime is set when February and August offsets differ and t
// shares August's offset.
func observesSummerTime(t time.Time) bool {
	_, current := t.Zone()
	_, feb := time.Date(t.Year(), time.February, 1, 0, 0, 0, 0, t.Location()).Zone()
	_, aug := time.Date(t.Year(), time.August, 1, 0, 0, 0, 0, t.Location()).Zone()
	return feb != aug && aug == current
}

// zeroTail keeps the last two characters of "0"+n, so 7 is "07" and -12 is "12".
func zeroTail(n int) string {
	s := "0" + strconv.Itoa(n)
	return s[len(s)-2:]
}

func ordinalSuffix(value int) string {
	abs := value
	if abs < 0 {
		abs = -abs
	}
	mod100 := abs % 100
	if mod100 >= 11 && mod100 <= 13 {
		return "th"
	}
	switch abs % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// Value returns the rendered value of tok. ok is false for letters that are
// not tokens.
func (f FieldMap) Value(tok Token) (string, bool) {
	switch tok {
	case TokenDay:
		return f.Day, true
	case TokenDayOfMonth:
		return strconv.Itoa(f.DayOfMonth), true
	case TokenWeekdayShort:
		return f.WeekdayShort, true
	case TokenWeekdayFull:
		return f.WeekdayFull, true
	case TokenISOWeekday:
		return strconv.Itoa(f.ISOWeekday), true
	case TokenOrdinal:
		return f.Ordinal, true
	case TokenWeekday:
		return strconv.Itoa(f.Weekday), true
	case TokenDayOfYear:
		return strconv.Itoa(f.DayOfYear), true
	case TokenWeek:
		return strconv.Itoa(f.Week), true
	case TokenMonthFull:
		return f.MonthFull, true
	case TokenMonthShort:
		return f.MonthShort, true
	case TokenMonth:
		return f.Month, true
	case TokenMonthNumber:
		return strconv.Itoa(f.MonthNumber), true
	case TokenDaysInMonth:
		return strconv.Itoa(f.DaysInMonth), true
	case TokenLeapYear:
		return flag(f.LeapYear), true
	case TokenYear:
		return padYear(f.Year), true
	case TokenYearShort:
		return f.YearShort, true
	case TokenMeridiem:
		return f.Meridiem, true
	case TokenMeridiemUpper:
		return f.MeridiemUpper, true
	case TokenHour12:
		return strconv.Itoa(f.Hour12), true
	case TokenHour24:
		return strconv.Itoa(f.Hour24), true
	case TokenHour12Padded:
		return f.Hour12Padded, true
	case TokenHour24Padded:
		return f.Hour24Padded, true
	case TokenMinute:
		return f.Minute, true
	case TokenSecond:
		return f.Second, true
	case TokenZone:
		return f.Zone, true
	case TokenDST:
		return flag(f.DST), true
	case TokenOffset:
		return f.Offset, true
	case TokenOffsetColon:
		return f.OffsetColon, true
	case TokenZoneAbbrev:
		return f.ZoneAbbrev, true
	case TokenOffsetMinutes:
		return strconv.Itoa(f.OffsetMinutes), true
	case TokenISO8601:
		return f.ISO8601, true
	case TokenNative:
		return f.Native, true
	case TokenEpoch:
		return strconv.FormatInt(f.Epoch, 10), true
	default:
		return "", false
	}
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// Render substitutes every token letter in tmpl and copies everything else.
// There is no escape syntax: a token letter is always replaced.
func (f FieldMap) Render(tmpl string) string {
	var b strings.Builder
	b.Grow(len(tmpl) * 2)
	for _, r := range tmpl {
		if IsToken(r) {
			if value, ok := f.Value(Token(r)); ok {
				b.WriteString(value)
				continue
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Map returns the fields keyed by token letter.
func (f FieldMap) Map() map[string]string {
	out := make(map[string]string, len(Tokens))
	for _, tok := range Tokens {
		value, _ := f.Value(tok)
		out[string(rune(tok))] = value
	}
	return out
}
