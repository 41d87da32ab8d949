package humandate

import (
	"testing"
	"time"
)

var testNow = time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC)

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()

	base := []Option{WithLocation(time.UTC), WithNow(testNow)}
	engine, err := New(append(base, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return engine
}

func mustParse(t *testing.T, e *Engine, value string) time.Time {
	t.Helper()

	parsed, err := e.ParseString(value)
	if err != nil {
		t.Fatalf("ParseString(%q): %v", value, err)
	}
	return parsed
}

func TestDefaultEngineIsShared(t *testing.T) {
	first := Default()
	if first == nil {
		t.Fatal("expected default engine")
	}
	if second := Default(); second != first {
		t.Fatal("Default returned a different engine")
	}
	if first.LocaleKey() != DefaultLocaleKey {
		t.Fatalf("default engine locale = %q", first.LocaleKey())
	}
	if first.Templates().Len() != len(SeedTemplates) {
		t.Fatalf("default engine templates = %d, want %d", first.Templates().Len(), len(SeedTemplates))
	}
}

func TestEnginesAreIndependent(t *testing.T) {
	a := newTestEngine(t, WithBundledLocales("de"))
	b := newTestEngine(t)

	if got := a.Activate("de"); got != "de" {
		t.Fatalf("Activate(de) = %q", got)
	}
	if got := b.Activate("de"); got != DefaultLocaleKey {
		t.Fatalf("engine without de activated %q", got)
	}

	if _, err := a.RegisterTemplate("d F Y"); err != nil {
		t.Fatalf("RegisterTemplate: %v", err)
	}
	if b.Templates().Has("d F Y") {
		t.Fatal("template leaked into another engine")
	}
}

func TestNowIsASnapshot(t *testing.T) {
	ticks := 0
	clock := func() time.Time {
		ticks++
		return testNow.Add(time.Duration(ticks) * time.Hour)
	}

	engine, err := New(WithLocation(time.UTC), WithClock(clock))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	first := engine.Now()
	if !engine.Now().Equal(first) {
		t.Fatal("Now changed without Refresh")
	}

	absent, err := engine.Parse(Absent)
	if err != nil {
		t.Fatalf("Parse(Absent): %v", err)
	}
	if !absent.Equal(first) {
		t.Fatalf("Parse(Absent) = %v, want %v", absent, first)
	}

	refreshed := engine.Refresh()
	if !refreshed.Equal(first.Add(time.Hour)) {
		t.Fatalf("Refresh = %v, want %v", refreshed, first.Add(time.Hour))
	}
	if !engine.Now().Equal(refreshed) {
		t.Fatal("Now did not follow Refresh")
	}
}

func TestEngineCalendarDefaultsToSnapshot(t *testing.T) {
	engine := newTestEngine(t)

	if got := engine.DaysInMonth(0, 0); got != 31 {
		t.Fatalf("DaysInMonth(0, 0) = %d, want 31", got)
	}
	if got := engine.DaysInMonth(2, 0); got != 29 {
		t.Fatalf("DaysInMonth(2, 0) = %d, want 29", got)
	}
	if !engine.IsLeapYear(0) {
		t.Fatal("snapshot year 2024 should be leap")
	}
}

func TestEngineOrderParsesValues(t *testing.T) {
	engine := newTestEngine(t)

	values := []DateLike{
		FromString("2024-03-01"),
		FromString("2024-01-01"),
		FromString("2024-02-01"),
	}

	minOnly, err := engine.Order(values, OrderMin)
	if err != nil {
		t.Fatalf("Order: %v", err)
	}
	if len(minOnly) != 1 || minOnly[0].Format(isoDate) != "2024-01-01" {
		t.Fatalf("Order min = %v", minOnly)
	}

	if _, err := engine.Order([]DateLike{FromString("nonsense")}, OrderAll); err == nil {
		t.Fatal("expected parse error")
	}
}
