package humandate

import (
	"errors"
	"strings"
	"testing"
	"text/template"
)

func renderHelpers(t *testing.T, e *Engine, cfg HelperConfig, src string) string {
	t.Helper()

	tmpl, err := template.New("test").Funcs(TemplateHelpers(e, cfg)).Parse(src)
	if err != nil {
		t.Fatalf("parse template: %v", err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, nil); err != nil {
		t.Fatalf("execute template: %v", err)
	}
	return b.String()
}

func TestTemplateHelpers(t *testing.T) {
	engine := newTestEngine(t)

	cases := []struct {
		src  string
		want string
	}{
		{`{{human_date "2024-03-15" "d.m.Y"}}`, "15.03.2024"},
		{`{{human_date "" "Y"}}`, ""},
		{`{{(parse_date "2024-03-15").Year}}`, "2024"},
		{`{{days_in_month 2 2024}}`, "29"},
		{`{{days_in_month 0 0}}`, "31"},
		{`{{if is_holiday "2024-03-16"}}off{{else}}on{{end}}`, "off"},
		{`{{if is_weekend "2024-03-15"}}off{{else}}on{{end}}`, "on"},
		{`{{len (month_grid "2024-03-15")}}`, "42"},
		{`{{plural 5 "day"}}`, "5 days"},
		{`{{leap_label}}`, "is leap"},
	}

	for _, tc := range cases {
		if got := renderHelpers(t, engine, HelperConfig{}, tc.src); got != tc.want {
			t.Fatalf("%s = %q, want %q", tc.src, got, tc.want)
		}
	}
}

func TestParseDateHelperReturnsError(t *testing.T) {
	engine := newTestEngine(t)

	tmpl, err := template.New("test").Funcs(TemplateHelpers(engine, HelperConfig{})).
		Parse(`{{(parse_date "not a date").Year}}`)
	if err != nil {
		t.Fatalf("parse template: %v", err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, nil); err == nil {
		t.Fatalf("expected parse_date error, rendered %q", b.String())
	}
}

func TestBlankStringIsNotAbsent(t *testing.T) {
	v, err := ToDateLike("  ")
	if err != nil {
		t.Fatalf("ToDateLike: %v", err)
	}
	if v.Kind() != KindString {
		t.Fatalf("kind = %s, want %s", v.Kind(), KindString)
	}

	var seen error
	engine := newTestEngine(t)
	cfg := HelperConfig{OnError: func(helper string, value any, err error) string {
		seen = err
		return "n/a"
	}}
	if got := renderHelpers(t, engine, cfg, `{{human_date "" "Y"}}`); got != "n/a" {
		t.Fatalf("human_date of blank = %q", got)
	}
	if !errors.Is(seen, ErrUnparseable) {
		t.Fatalf("error = %v, want ErrUnparseable", seen)
	}
}

func TestTemplateHelpersOnError(t *testing.T) {
	engine := newTestEngine(t)

	var seen string
	cfg := HelperConfig{
		OnError: func(helper string, value any, err error) string {
			seen = helper
			return "n/a"
		},
	}

	if got := renderHelpers(t, engine, cfg, `{{human_date "not a date" "Y"}}`); got != "n/a" {
		t.Fatalf("got %q", got)
	}
	if seen != "human_date" {
		t.Fatalf("OnError helper = %q", seen)
	}
}

func TestTemplateHelpersLocalized(t *testing.T) {
	engine := newTestEngine(t, WithBundledLocales("ru"), WithActiveLocale("ru"))

	got := renderHelpers(t, engine, HelperConfig{}, `{{human_date "2024-03-15" "j F"}} {{plural 3 "year"}}`)
	if got != "15 март 3 года" {
		t.Fatalf("got %q", got)
	}
}
