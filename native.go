package humandate

import (
	"strings"
	"time"
)

// NativeLayout is the engine's default string rendering of a date. The O, P
// and T tokens are read back out of it.
const NativeLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

// DefaultNativeLayouts are the complete date-time forms read without any
// template. Date-only forms are left to the template registry.
var DefaultNativeLayouts = []string{
	NativeLayout,
	"Mon Jan 02 2006 15:04:05 GMT-0700",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.ANSIC,
	time.UnixDate,
	time.RFC822Z,
	time.RFC850,
}

// NativeParser is the best effort parser tried before any template and again
// on the canonical rewrite of a matched template.
type NativeParser interface {
	ParseNative(value string, loc *time.Location) (time.Time, error)
}

// NativeParserFunc adapts a function to NativeParser.
type NativeParserFunc func(value string, loc *time.Location) (time.Time, error)

func (f NativeParserFunc) ParseNative(value string, loc *time.Location) (time.Time, error) {
	return f(value, loc)
}

// LayoutParser tries each layout in order with time.ParseInLocation.
type LayoutParser struct {
	Layouts []string
}

var _ NativeParser = LayoutParser{}

// NewLayoutParser returns a parser over DefaultNativeLayouts followed by extra.
func NewLayoutParser(extra ...string) LayoutParser {
	layouts := make([]string, 0, len(DefaultNativeLayouts)+len(extra))
	layouts = append(layouts, DefaultNativeLayouts...)
	layouts = append(layouts, extra...)
	return LayoutParser{Layouts: layouts}
}

func (p LayoutParser) ParseNative(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrUnparseable
	}

	layouts := p.Layouts
	if layouts == nil {
		layouts = DefaultNativeLayouts
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t.In(loc), nil
		}
	}
	return time.Time{}, ErrUnparseable
}

// nativeString renders t the way NativeLayout describes.
func nativeString(t time.Time) string {
	return t.Format(NativeLayout)
}
