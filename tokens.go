package humandate

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// Token is a single template letter naming one date field.
type Token byte

const (
	TokenDay           Token = 'd' // day of month, two characters
	TokenDayOfMonth    Token = 'j' // day of month
	TokenWeekdayShort  Token = 'D' // localized short weekday
	TokenWeekdayFull   Token = 'l' // localized full weekday
	TokenISOWeekday    Token = 'N' // 1 (Monday) .. 7 (Sunday)
	TokenOrdinal       Token = 'S' // English ordinal suffix of the day
	TokenWeekday       Token = 'w' // 0 (Sunday) .. 6 (Saturday)
	TokenDayOfYear     Token = 'z' // days since January 1st
	TokenWeek          Token = 'W' // whole weeks since January 1st
	TokenMonthFull     Token = 'F' // localized full month
	TokenMonthShort    Token = 'M' // localized short month
	TokenMonth         Token = 'm' // month, two characters
	TokenMonthNumber   Token = 'n' // month
	TokenDaysInMonth   Token = 't'
	TokenLeapYear      Token = 'L' // 1 or 0
	TokenYear          Token = 'Y'
	TokenYearShort     Token = 'y'
	TokenMeridiem      Token = 'a'
	TokenMeridiemUpper Token = 'A'
	TokenHour12        Token = 'g'
	TokenHour24        Token = 'G'
	TokenHour12Padded  Token = 'h'
	TokenHour24Padded  Token = 'H'
	TokenMinute        Token = 'i'
	TokenSecond        Token = 's'
	TokenZone          Token = 'e' // location name
	TokenDST           Token = 'I' // 1 or 0
	TokenOffset        Token = 'O' // +0100
	TokenOffsetColon   Token = 'P' // +01:00
	TokenZoneAbbrev    Token = 'T'
	TokenOffsetMinutes Token = 'Z' // minutes west of UTC
	TokenISO8601       Token = 'c'
	TokenNative        Token = 'r'
	TokenEpoch         Token = 'U' // epoch milliseconds
)

// Tokens lists every token a FieldMap renders, in table order.
var Tokens = []Token{
	TokenDay, TokenDayOfMonth, TokenWeekdayShort, TokenWeekdayFull, TokenISOWeekday,
	TokenOrdinal, TokenWeekday, TokenDayOfYear,
	TokenWeek,
	TokenMonthFull, TokenMonthShort, TokenMonth, TokenMonthNumber, TokenDaysInMonth,
	TokenLeapYear, TokenYear, TokenYearShort,
	TokenMeridiem, TokenMeridiemUpper, TokenHour12, TokenHour24, TokenHour12Padded,
	TokenHour24Padded, TokenMinute, TokenSecond,
	TokenZone, TokenDST, TokenOffset, TokenOffsetColon, TokenZoneAbbrev, TokenOffsetMinutes,
	TokenISO8601, TokenNative, TokenEpoch,
}

var tokenSet = func() [128]bool {
	var set [128]bool
	for _, tok := range Tokens {
		set[tok] = true
	}
	return set
}()

// parseFragments maps tokens to the regular expression used when a template
// is turned into a matcher. c, r, U and I are formatting only.
var parseFragments = map[Token]string{
	TokenMeridiemUpper: `(AM|PM)`,
	TokenWeekdayShort:  `(\w{3})`,
	TokenMonthFull:     `(\w{3,9})`,
	TokenHour24:        `(\d{1,2})`,
	TokenHour24Padded:  `(\d{2})`,
	TokenMonthShort:    `(\w{3})`,
	TokenISOWeekday:    `(\d)`,
	TokenOffset:        `([+-]\d{4})`,
	TokenOffsetColon:   `([+-]\d{2}:\d{2})`,
	TokenOrdinal:       `(st|nd|rd|th)`,
	TokenZoneAbbrev:    `(\w{3})`,
	TokenWeek:          `(\d{2})`,
	TokenYear:          `(\d{4})`,
	TokenOffsetMinutes: `([+-]?\d{1,4})`,
	TokenMeridiem:      `(am|pm)`,
	TokenDay:           `(\d{1,2})`,
	TokenZone:          `(\w{3})`,
	TokenHour12:        `(\d{1,2})`,
	TokenHour12Padded:  `(\d{2})`,
	TokenMinute:        `(\d{2})`,
	TokenDayOfMonth:    `(\d{1,2})`,
	TokenLeapYear:      `([01])`,
	TokenWeekdayFull:   `(\w{6,9})`,
	TokenMonth:         `(\d{2})`,
	TokenMonthNumber:   `(\d{1,2})`,
	TokenSecond:        `(\d{2})`,
	TokenDaysInMonth:   `(\d{1,2})`,
	TokenWeekday:       `(\d)`,
	TokenYearShort:     `(\d{2})`,
	TokenDayOfYear:     `(\d{1,3})`,
}

// IsToken reports whether r is rendered by a FieldMap.
func IsToken(r rune) bool {
	return r >= 0 && r < 128 && tokenSet[r]
}

// FragmentFor returns the regular expression fragment for a template letter.
func FragmentFor(r rune) (string, bool) {
	if r < 0 || r >= 128 {
		return "", false
	}
	fragment, ok := parseFragments[Token(r)]
	return fragment, ok
}

// TemplatePattern turns a template into the source of its matcher: tokens
// become capture groups, every other character is matched literally.
func TemplatePattern(tmpl string) string {
	var b strings.Builder
	for _, r := range tmpl {
		if fragment, ok := FragmentFor(r); ok {
			b.WriteString(fragment)
			continue
		}
		writeLiteral(&b, r)
	}
	return b.String()
}

// CompileTemplate compiles the matcher for a template. Word classes are
// Unicode aware so localized month and weekday names match.
func CompileTemplate(tmpl string) (*regexp2.Regexp, error) {
	if tmpl == "" {
		return nil, ErrEmptyTemplate
	}
	re, err := regexp2.Compile(TemplatePattern(tmpl), regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("humandate: compile template %q: %w", tmpl, err)
	}
	return re, nil
}

func writeLiteral(b *strings.Builder, r rune) {
	switch r {
	case '\\', '.', '+', '*', '?', '(', ')', '|', '[', ']', '{', '}', '^', '$', '#':
		b.WriteByte('\\')
	}
	b.WriteRune(r)
}
