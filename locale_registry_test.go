package humandate

import (
	"errors"
	"testing"
)

func TestRegisterMergesOntoDefaultShape(t *testing.T) {
	registry := NewLocaleRegistry("en", EnglishLocale(), nil)

	registry.Register("xx", LocaleRecord{
		Months: MonthNames{Full: NameList{"Uno", "", "Tres"}},
		Years:  YearLabels{Leap: "leap!"},
	}, true)

	rec, ok := registry.Locale("xx")
	if !ok {
		t.Fatal("xx not registered")
	}
	if len(rec.Months.Full) != 12 {
		t.Fatalf("months full has %d entries, want 12", len(rec.Months.Full))
	}
	if rec.Months.Full[0] != "Uno" || rec.Months.Full[1] != "February" || rec.Months.Full[2] != "Tres" {
		t.Fatalf("unexpected merge: %v", rec.Months.Full[:3])
	}
	if rec.Years.Leap != "leap!" {
		t.Fatalf("leap = %q", rec.Years.Leap)
	}
	if rec.Weekdays.Short.At(6) != "Sun" {
		t.Fatalf("missing weekdays should come from default, got %v", rec.Weekdays.Short)
	}
}

func TestRegisterWithoutOverwriteKeepsValues(t *testing.T) {
	registry := NewLocaleRegistry("en", EnglishLocale(), nil)

	registry.Register("xx", LocaleRecord{Years: YearLabels{Leap: "first"}}, true)
	registry.Register("xx", LocaleRecord{
		Years:  YearLabels{Leap: "second"},
		Common: CommonLabels{Hide: "verstecken"},
	}, false)

	rec, _ := registry.Locale("xx")
	if rec.Years.Leap != "first" {
		t.Fatalf("leap = %q, want first", rec.Years.Leap)
	}
	// default filled values count as held
	if rec.Common.Hide != "hide" {
		t.Fatalf("hide = %q, want hide", rec.Common.Hide)
	}

	registry.Register("xx", LocaleRecord{Years: YearLabels{Leap: "third"}}, true)
	rec, _ = registry.Locale("xx")
	if rec.Years.Leap != "third" {
		t.Fatalf("leap = %q, want third", rec.Years.Leap)
	}
}

func TestLocaleReadsReturnCopies(t *testing.T) {
	registry := NewLocaleRegistry("en", EnglishLocale(), nil)

	rec := registry.Current()
	rec.Months.Full[0] = "mutated"

	if got := registry.Current().Months.Full[0]; got != "January" {
		t.Fatalf("registry mutated through copy: %q", got)
	}
}

func TestActivateResolution(t *testing.T) {
	resolver := NewStaticFallbackResolver()
	resolver.Set("pt-BR", "es")

	registry := NewLocaleRegistry("en", EnglishLocale(), resolver)
	registry.Register("ru", LocaleRecord{}, true)
	registry.Register("es", LocaleRecord{}, true)

	cases := []struct {
		key  string
		want string
	}{
		{"ru", "ru"},
		{"ru-RU", "ru"},
		{"ru_RU", "ru"},
		{"pt-BR", "es"},
		{"zz", "en"},
		{"", "en"},
	}

	for _, tc := range cases {
		if got := registry.Activate(tc.key); got != tc.want {
			t.Fatalf("Activate(%q) = %q, want %q", tc.key, got, tc.want)
		}
		if registry.CurrentKey() != tc.want {
			t.Fatalf("CurrentKey after %q = %q", tc.key, registry.CurrentKey())
		}
	}
}

func TestEngineFallbackOption(t *testing.T) {
	engine := newTestEngine(t,
		WithBundledLocales("es"),
		WithFallback("pt-BR", "es"),
		WithActiveLocale("pt-BR"),
	)

	if engine.LocaleKey() != "es" {
		t.Fatalf("active = %q, want es", engine.LocaleKey())
	}
	if got := engine.Locale().Months.Full.At(2); got != "marzo" {
		t.Fatalf("month = %q", got)
	}
}

func TestKeysAndDefault(t *testing.T) {
	registry := NewLocaleRegistry("", EnglishLocale(), nil)
	if registry.DefaultKey() != DefaultLocaleKey {
		t.Fatalf("default = %q", registry.DefaultKey())
	}

	registry.Register("ru", LocaleRecord{}, true)
	registry.Register("de", LocaleRecord{}, true)

	keys := registry.Keys()
	want := []string{"de", "en", "ru"}
	if len(keys) != len(want) {
		t.Fatalf("Keys = %v", keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("Keys = %v, want %v", keys, want)
		}
	}

	if err := registry.SetDefault("fr"); !errors.Is(err, ErrUnknownLocale) {
		t.Fatalf("SetDefault(fr) = %v", err)
	}
	if err := registry.SetDefault("de"); err != nil {
		t.Fatalf("SetDefault(de): %v", err)
	}
	if got := registry.Activate("zz"); got != "de" {
		t.Fatalf("unknown key resolved to %q, want de", got)
	}
	if !registry.Has("ru") || registry.Has("fr") {
		t.Fatal("Has reports wrong membership")
	}
}
