package humandate

import (
	"errors"
	"testing"
	"time"
)

func TestParseISODateViaTemplate(t *testing.T) {
	var seen ParseHookContext
	engine := newTestEngine(t, WithParseHooks(ParseHookFuncs{
		After: func(ctx *ParseHookContext) { seen = *ctx },
	}))

	parsed := mustParse(t, engine, "2024-03-15")
	if y, m, d := parsed.Date(); y != 2024 || m != time.March || d != 15 {
		t.Fatalf("parsed = %v", parsed)
	}
	if h, min, s := parsed.Clock(); h != 0 || min != 0 || s != 0 {
		t.Fatalf("expected midnight, got %v", parsed)
	}

	if seen.Stage != StageTemplate {
		t.Fatalf("stage = %q", seen.Stage)
	}
	if seen.Template != "Y-m-d" {
		t.Fatalf("template = %q", seen.Template)
	}
	if seen.Rewrite != "2024 03 15 00:00:00" {
		t.Fatalf("rewrite = %q", seen.Rewrite)
	}
}

func TestParseRoundTrip(t *testing.T) {
	engine := newTestEngine(t)

	kolkata := time.FixedZone("IST", 5*60*60+30*60)
	zoned := newTestEngine(t, WithLocation(kolkata))

	cases := []struct {
		engine *Engine
		loc    *time.Location
	}{
		{engine, time.UTC},
		{zoned, kolkata},
	}

	for _, tc := range cases {
		dates := []time.Time{
			time.Date(2024, time.February, 29, 23, 59, 59, 0, tc.loc),
			time.Date(1999, time.December, 31, 0, 0, 0, 0, tc.loc),
			time.Date(2030, time.July, 4, 12, 30, 5, 0, tc.loc),
			time.Date(2024, time.January, 1, 1, 2, 3, 0, tc.loc),
			time.Date(1, time.March, 31, 0, 59, 58, 0, tc.loc),
			time.Date(99, time.March, 31, 13, 59, 58, 0, tc.loc),
			time.Date(999, time.March, 31, 23, 59, 58, 0, tc.loc),
		}

		for _, date := range dates {
			rendered := tc.engine.FormatTime(date, "Y-m-d H:i:s")
			parsed := mustParse(t, tc.engine, rendered)
			if !parsed.Equal(date) {
				t.Fatalf("%s: round trip %q = %v, want %v", tc.loc, rendered, parsed, date)
			}
		}
	}
}

func TestParseIgnoresTextAroundMatch(t *testing.T) {
	engine := newTestEngine(t)

	got := mustParse(t, engine, "Mar 15, 2024 extra")
	if !got.Equal(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("parsed %v", got)
	}
}

func TestParseNativeForms(t *testing.T) {
	engine := newTestEngine(t)
	want := time.Date(2024, time.March, 15, 10, 20, 30, 0, time.UTC)

	inputs := []string{
		"2024-03-15T10:20:30Z",
		"2024-03-15T11:20:30+01:00",
		"2024-03-15T10:20:30",
		"Fri, 15 Mar 2024 10:20:30 +0000",
		engine.FormatTime(want, "r"),
	}

	for _, input := range inputs {
		parsed := mustParse(t, engine, input)
		if !parsed.Equal(want) {
			t.Fatalf("ParseString(%q) = %v, want %v", input, parsed, want)
		}
		if parsed.Location() != time.UTC {
			t.Fatalf("ParseString(%q) location = %v", input, parsed.Location())
		}
	}
}

func TestParseTemplates(t *testing.T) {
	engine := newTestEngine(t)

	cases := []struct {
		input string
		want  time.Time
	}{
		{"10:20:30", time.Date(2024, time.March, 15, 10, 20, 30, 0, time.UTC)},
		{"2024-03-15 10:20:30", time.Date(2024, time.March, 15, 10, 20, 30, 0, time.UTC)},
		{"24-03-15", time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)},
		{"Mar 15, 2024", time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)},
		{"2024-Mar-15", time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)},
		{"Dec 24", time.Date(2024, time.December, 24, 0, 0, 0, 0, time.UTC)},
		{"07", time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		parsed := mustParse(t, engine, tc.input)
		if !parsed.Equal(tc.want) {
			t.Fatalf("ParseString(%q) = %v, want %v", tc.input, parsed, tc.want)
		}
	}
}

func TestParseFirstMatchWins(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.ParseString("15.03.2024")
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.Template != "m.d.Y" {
		t.Fatalf("matched template = %q", perr.Template)
	}

	european := newTestEngine(t, WithoutSeedTemplates(), WithTemplates("d.m.Y"))
	parsed := mustParse(t, european, "15.03.2024")
	if y, m, d := parsed.Date(); y != 2024 || m != time.March || d != 15 {
		t.Fatalf("d.m.Y parsed = %v", parsed)
	}
}

func TestParseRejectsImpossibleDates(t *testing.T) {
	engine := newTestEngine(t)

	for _, input := range []string{"2023-02-29", "2024-13-01", "2024-04-31 10:00:00", "2024-01-01 24:00:00"} {
		if _, err := engine.ParseString(input); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("ParseString(%q) error = %v, want ErrInvalidDate", input, err)
		}
	}
}

func TestParseUnparseable(t *testing.T) {
	engine := newTestEngine(t)

	for _, input := range []string{"", "   ", "hello world"} {
		_, err := engine.ParseString(input)
		if !errors.Is(err, ErrUnparseable) {
			t.Fatalf("ParseString(%q) error = %v, want ErrUnparseable", input, err)
		}
	}
}

func TestParseValues(t *testing.T) {
	engine := newTestEngine(t)

	absent, err := engine.Parse(Absent)
	if err != nil || !absent.Equal(testNow) {
		t.Fatalf("Parse(Absent) = %v, %v", absent, err)
	}

	epoch, err := engine.Parse(FromEpochMilli(1710493507000))
	if err != nil {
		t.Fatalf("Parse(epoch): %v", err)
	}
	if want := time.Date(2024, time.March, 15, 9, 5, 7, 0, time.UTC); !epoch.Equal(want) || epoch.Location() != time.UTC {
		t.Fatalf("Parse(epoch) = %v", epoch)
	}

	source := time.Date(2024, time.March, 15, 11, 0, 0, 0, time.FixedZone("X", 7200))
	copied, err := engine.Parse(FromTime(source))
	if err != nil {
		t.Fatalf("Parse(time): %v", err)
	}
	if !copied.Equal(source) || copied.Location() != time.UTC {
		t.Fatalf("Parse(time) = %v", copied)
	}
}

func TestParseLocalizedMonthNames(t *testing.T) {
	engine := newTestEngine(t,
		WithBundledLocales("ru", "de"),
		WithActiveLocale("ru"),
		WithoutSeedTemplates(),
		WithTemplates("d F Y", "d M Y"),
	)

	cases := map[string]time.Time{
		"15 марта 2024":  time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		"1 январь 2024":  time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		"3 MARCH 2024":   time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC),
		"3 october 2024": time.Date(2024, time.October, 3, 0, 0, 0, 0, time.UTC),
	}
	for input, want := range cases {
		parsed := mustParse(t, engine, input)
		if !parsed.Equal(want) {
			t.Fatalf("ParseString(%q) = %v, want %v", input, parsed, want)
		}
	}

	engine.Activate("de")
	if parsed := mustParse(t, engine, "9 März 2024"); parsed.Month() != time.March {
		t.Fatalf("de month = %v", parsed.Month())
	}
}

func TestParseHooksOrder(t *testing.T) {
	var calls []string
	hook := func(name string) ParseHook {
		return ParseHookFuncs{
			Before: func(ctx *ParseHookContext) {
				calls = append(calls, name+":before")
				ctx.SetMetadata(name, true)
			},
			After: func(ctx *ParseHookContext) {
				calls = append(calls, name+":after:"+string(ctx.Stage))
				if _, ok := ctx.MetadataValue(name); !ok {
					t.Fatalf("metadata %q lost", name)
				}
			},
		}
	}

	engine := newTestEngine(t, WithParseHooks(hook("a"), nil, hook("b")))

	if _, err := engine.ParseString("2024-03-15T10:00:00Z"); err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if _, err := engine.ParseString("nope"); err == nil {
		t.Fatal("expected error")
	}

	want := []string{
		"a:before", "b:before", "a:after:native", "b:after:native",
		"a:before", "b:before", "a:after:failed", "b:after:failed",
	}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v", calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls[%d] = %q, want %q", i, calls[i], want[i])
		}
	}
}

func TestCustomNativeParser(t *testing.T) {
	fixed := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	engine := newTestEngine(t, WithNativeParser(NativeParserFunc(func(value string, loc *time.Location) (time.Time, error) {
		if value == "y2k" {
			return fixed.In(loc), nil
		}
		return time.Time{}, ErrUnparseable
	})))

	if parsed := mustParse(t, engine, "y2k"); !parsed.Equal(fixed) {
		t.Fatalf("custom native = %v", parsed)
	}
	if parsed := mustParse(t, engine, "2024-03-15"); parsed.Day() != 15 {
		t.Fatalf("templates still apply, got %v", parsed)
	}
}
