package humandate

import (
	"testing"
	"time"
)

func TestWeekend(t *testing.T) {
	engine := newTestEngine(t)

	saturday, err := engine.IsWeekend(FromString("2024-03-16"))
	if err != nil || !saturday {
		t.Fatalf("2024-03-16 weekend = %v, %v", saturday, err)
	}
	friday, err := engine.IsWeekend(FromString("2024-03-15"))
	if err != nil || friday {
		t.Fatalf("2024-03-15 weekend = %v, %v", friday, err)
	}

	holiday, err := engine.IsHoliday(FromString("2024-03-16"))
	if err != nil || !holiday {
		t.Fatalf("weekends are holidays, got %v, %v", holiday, err)
	}
	holiday, err = engine.IsHoliday(FromString("2024-03-15"))
	if err != nil || holiday {
		t.Fatalf("plain Friday is not a holiday, got %v, %v", holiday, err)
	}
}

func TestHolidayList(t *testing.T) {
	engine := newTestEngine(t)

	if err := engine.SetHolidayList("en", "2024-01-01;2024-03-15;2024-12-25"); err != nil {
		t.Fatalf("SetHolidayList: %v", err)
	}

	got := engine.Holidays("en")
	want := []string{"2024-01-01", "2024-03-15", "2024-12-25"}
	if len(got) != len(want) {
		t.Fatalf("Holidays = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Holidays[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	cases := map[string]bool{
		"2024-03-15": true,  // listed Friday
		"2024-03-16": true,  // weekend
		"2024-03-14": false, // plain Thursday
		"2024-12-25": true,  // listed, last day of the window
	}
	for input, want := range cases {
		holiday, err := engine.IsHoliday(FromString(input))
		if err != nil {
			t.Fatalf("IsHoliday(%q): %v", input, err)
		}
		if holiday != want {
			t.Fatalf("IsHoliday(%q) = %v, want %v", input, holiday, want)
		}
	}
}

func TestHolidayWindow(t *testing.T) {
	engine := newTestEngine(t)

	err := engine.SetHolidays("en",
		FromTime(time.Date(2024, time.March, 15, 18, 0, 0, 0, time.UTC)),
		FromString("2024-03-20"),
	)
	if err != nil {
		t.Fatalf("SetHolidays: %v", err)
	}

	outside, err := engine.IsHoliday(FromString("2024-03-22"))
	if err != nil || outside {
		t.Fatalf("Friday outside the window = %v, %v", outside, err)
	}
	weekend, err := engine.IsHoliday(FromString("2024-03-23"))
	if err != nil || !weekend {
		t.Fatalf("Saturday outside the window = %v, %v", weekend, err)
	}
	first, err := engine.IsHoliday(FromString("2024-03-15 10:00:00"))
	if err != nil || !first {
		t.Fatalf("first day of the window = %v, %v", first, err)
	}
}

func TestHolidaysFallBackToDefaultLocale(t *testing.T) {
	engine := newTestEngine(t, WithBundledLocales("de"))

	if err := engine.SetHolidayList("en", "2024-03-15"); err != nil {
		t.Fatalf("SetHolidayList: %v", err)
	}
	engine.Activate("de")

	holiday, err := engine.IsHoliday(FromString("2024-03-15"))
	if err != nil || !holiday {
		t.Fatalf("de without holidays should use en list, got %v, %v", holiday, err)
	}

	if err := engine.SetHolidayList("de", "2024-10-03"); err != nil {
		t.Fatalf("SetHolidayList(de): %v", err)
	}
	holiday, err = engine.IsHoliday(FromString("2024-03-15"))
	if err != nil || holiday {
		t.Fatalf("de list replaces the default list, got %v, %v", holiday, err)
	}
}

func TestSetHolidaysCreatesLocale(t *testing.T) {
	engine := newTestEngine(t)

	if engine.Holidays("pl") != nil {
		t.Fatal("unknown locale should have no holidays")
	}
	if err := engine.SetHolidayList("pl", "2024-05-03"); err != nil {
		t.Fatalf("SetHolidayList: %v", err)
	}

	if !engine.Locales().Has("pl") {
		t.Fatal("SetHolidays should create the locale")
	}
	if engine.LocaleKey() != DefaultLocaleKey {
		t.Fatalf("active locale changed to %q", engine.LocaleKey())
	}

	rec, _ := engine.Locales().Locale("pl")
	if rec.Months.Full.At(0) != "January" {
		t.Fatalf("created locale lacks default names: %v", rec.Months.Full)
	}
}

func TestSetHolidaysRejectsUnparseable(t *testing.T) {
	engine := newTestEngine(t)
	if err := engine.SetHolidayList("en", "2024-01-01;not a date"); err == nil {
		t.Fatal("expected error")
	}
	if engine.Holidays("en") != nil {
		t.Fatal("failed SetHolidays must not store a partial list")
	}
}

func TestEngineInside(t *testing.T) {
	engine := newTestEngine(t)

	ok, err := engine.Inside(FromString("2024-03-15"), FromString("2024-03-01"), FromString("2024-03-31"), false)
	if err != nil || !ok {
		t.Fatalf("Inside = %v, %v", ok, err)
	}
	ok, err = engine.Inside(Absent, FromString("2024-03-15"), FromString("2024-03-31"), true)
	if err != nil || !ok {
		t.Fatalf("snapshot inside = %v, %v", ok, err)
	}
}
