package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	cldr "golang.org/x/text/unicode/cldr"
)

type generatorConfig struct {
	pkg      string
	out      string
	cldrPath string
	locales  []string
}

type unitForms struct {
	One   string
	Few   string
	Other string
}

type bundlePayload struct {
	Locale           string
	MonthsFormat     []string
	MonthsStandAlone []string
	MonthsAbbr       []string
	DaysWide         []string
	DaysAbbr         []string
	DaysShort        []string
	DayPeriods       []string
	Units            map[string]unitForms
}

// CLDR lists days Sunday first; bundles store them Monday first.
var dayOrder = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

var durationUnits = map[string]string{
	"day":   "duration-day",
	"week":  "duration-week",
	"month": "duration-month",
	"year":  "duration-year",
}

type localeFlag struct {
	items []string
}

func (f *localeFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *localeFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, strings.ReplaceAll(part, "_", "-"))
	}
	return nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "humandate-locales: %v\n", err)
	os.Exit(1)
}

func parseFlags() (generatorConfig, error) {
	var cfg generatorConfig
	var localeList localeFlag

	flag.StringVar(&cfg.pkg, "pkg", "humandate", "package name for generated file")
	flag.StringVar(&cfg.out, "out", "locales_cldr_data.go", "path to generated Go file")
	flag.StringVar(&cfg.cldrPath, "cldr", "", "path to CLDR core data directory (expects main/ and supplemental/)")
	flag.Var(&localeList, "locale", "locale to generate, comma separated or repeated")

	flag.Parse()

	if len(localeList.items) == 0 {
		return generatorConfig{}, errors.New("at least one -locale value is required")
	}
	cfg.locales = localeList.items

	if cfg.cldrPath == "" {
		cfg.cldrPath = os.Getenv("CLDR_CORE_DIR")
	}
	if cfg.cldrPath == "" {
		return generatorConfig{}, errors.New("missing CLDR data directory (set -cldr or CLDR_CORE_DIR)")
	}

	return cfg, nil
}

func run(cfg generatorConfig) error {
	data, err := loadCLDR(cfg.cldrPath)
	if err != nil {
		return err
	}

	bundles := make([]bundlePayload, 0, len(cfg.locales))
	for _, locale := range cfg.locales {
		payload, err := buildBundle(data, locale)
		if err != nil {
			return fmt.Errorf("build bundle for %s: %w", locale, err)
		}
		bundles = append(bundles, payload)
	}

	sort.Slice(bundles, func(i, j int) bool {
		return bundles[i].Locale < bundles[j].Locale
	})

	source, err := renderSource(cfg.pkg, bundles)
	if err != nil {
		return err
	}

	if err := ensureDir(cfg.out); err != nil {
		return err
	}
	return os.WriteFile(cfg.out, source, 0o644)
}

func loadCLDR(path string) (*cldr.CLDR, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat CLDR directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("CLDR path %q is not a directory", path)
	}

	var decoder cldr.Decoder
	decoder.SetSectionFilter("main")

	data, err := decoder.DecodePath(path)
	if err != nil {
		return nil, fmt.Errorf("decode CLDR data: %w", err)
	}
	return data, nil
}

func buildBundle(data *cldr.CLDR, locale string) (bundlePayload, error) {
	payload := bundlePayload{Locale: locale}

	ldml := findLDML(data, locale)
	if ldml == nil || ldml.Dates == nil || ldml.Dates.Calendars == nil {
		return payload, errors.New("missing calendar data")
	}

	var calendar *cldr.Calendar
	for _, candidate := range ldml.Dates.Calendars.Calendar {
		if candidate != nil && candidate.Type == "gregorian" {
			calendar = candidate
			break
		}
	}
	if calendar == nil {
		return payload, errors.New("missing gregorian calendar")
	}

	payload.MonthsFormat = extractMonths(calendar, "format", "wide")
	payload.MonthsStandAlone = extractMonths(calendar, "stand-alone", "wide")
	payload.MonthsAbbr = extractMonths(calendar, "stand-alone", "abbreviated")
	if len(payload.MonthsStandAlone) == 0 {
		payload.MonthsStandAlone = payload.MonthsFormat
	}
	if len(payload.MonthsAbbr) == 0 {
		payload.MonthsAbbr = extractMonths(calendar, "format", "abbreviated")
	}
	if len(payload.MonthsFormat) != 12 {
		return payload, fmt.Errorf("expected 12 month names, got %d", len(payload.MonthsFormat))
	}

	payload.DaysWide = extractDays(calendar, "format", "wide")
	payload.DaysAbbr = extractDays(calendar, "format", "abbreviated")
	payload.DaysShort = extractDays(calendar, "format", "short")
	if len(payload.DaysShort) == 0 {
		payload.DaysShort = payload.DaysAbbr
	}

	payload.DayPeriods = extractDayPeriods(calendar)
	payload.Units = extractUnits(ldml)

	return payload, nil
}

func findLDML(data *cldr.CLDR, locale string) *cldr.LDML {
	if data == nil {
		return nil
	}
	candidate := strings.ReplaceAll(locale, "-", "_")
	for candidate != "" {
		if ldml := data.RawLDML(candidate); ldml != nil {
			return ldml
		}
		idx := strings.LastIndex(candidate, "_")
		if idx < 0 {
			break
		}
		candidate = candidate[:idx]
	}
	return nil
}

func extractMonths(calendar *cldr.Calendar, context, width string) []string {
	if calendar.Months == nil {
		return nil
	}
	names := make([]string, 12)
	found := 0
	for _, ctx := range calendar.Months.MonthContext {
		if ctx == nil || ctx.Type != context {
			continue
		}
		for _, w := range ctx.MonthWidth {
			if w == nil || w.Type != width {
				continue
			}
			for _, month := range w.Month {
				if month == nil || month.Alt != "" || month.Yeartype != "" {
					continue
				}
				idx, err := strconv.Atoi(month.Type)
				if err != nil || idx < 1 || idx > 12 || names[idx-1] != "" {
					continue
				}
				names[idx-1] = month.Data()
				found++
			}
		}
	}
	if found != 12 {
		return nil
	}
	return names
}

func extractDays(calendar *cldr.Calendar, context, width string) []string {
	if calendar.Days == nil {
		return nil
	}
	byType := make(map[string]string, 7)
	for _, ctx := range calendar.Days.DayContext {
		if ctx == nil || ctx.Type != context {
			continue
		}
		for _, w := range ctx.DayWidth {
			if w == nil || w.Type != width {
				continue
			}
			for _, day := range w.Day {
				if day == nil || day.Alt != "" {
					continue
				}
				byType[day.Type] = day.Data()
			}
		}
	}

	names := make([]string, 0, 7)
	for _, key := range dayOrder {
		name, ok := byType[key]
		if !ok {
			return nil
		}
		names = append(names, name)
	}
	return names
}

func extractDayPeriods(calendar *cldr.Calendar) []string {
	if calendar.DayPeriods == nil {
		return nil
	}
	for _, ctx := range calendar.DayPeriods.DayPeriodContext {
		if ctx == nil || ctx.Type != "format" {
			continue
		}
		for _, w := range ctx.DayPeriodWidth {
			if w == nil || w.Type != "abbreviated" {
				continue
			}
			var am, pm string
			for _, period := range w.DayPeriod {
				if period == nil || period.Alt != "" {
					continue
				}
				switch period.Type {
				case "am":
					am = period.Data()
				case "pm":
					pm = period.Data()
				}
			}
			if am != "" && pm != "" {
				return []string{am, pm}
			}
		}
	}
	return nil
}

func extractUnits(ldml *cldr.LDML) map[string]unitForms {
	result := make(map[string]unitForms, len(durationUnits))
	if ldml.Units == nil {
		return result
	}

	for _, length := range ldml.Units.UnitLength {
		if length == nil || length.Type != "long" {
			continue
		}
		for _, unit := range length.Unit {
			if unit == nil {
				continue
			}
			for key, canonical := range durationUnits {
				if unit.Type != canonical {
					continue
				}
				counts := make(map[string]string)
				for _, pattern := range unit.UnitPattern {
					if pattern == nil || pattern.Alt != "" {
						continue
					}
					word := strings.TrimSpace(strings.ReplaceAll(pattern.Data(), "{0}", ""))
					counts[strings.ToLower(pattern.Count)] = word
				}
				result[key] = selectForms(counts)
			}
		}
	}
	return result
}

// selectForms maps CLDR counts onto the one / few / many triple.
func selectForms(counts map[string]string) unitForms {
	forms := unitForms{One: counts["one"], Few: counts["few"], Other: counts["many"]}
	if forms.Other == "" {
		forms.Other = counts["other"]
	}
	if forms.Few == "" {
		forms.Few = counts["other"]
	}
	if forms.One == "" {
		forms.One = forms.Other
	}
	return forms
}

func renderSource(pkg string, bundles []bundlePayload) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by humandate-locales. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	buf.WriteString("type cldrMonthNames struct {\n")
	buf.WriteString("\tFormat     []string\n")
	buf.WriteString("\tStandAlone []string\n")
	buf.WriteString("\tAbbr       []string\n")
	buf.WriteString("}\n\n")

	buf.WriteString("type cldrDayNames struct {\n")
	buf.WriteString("\tWide  []string\n")
	buf.WriteString("\tAbbr  []string\n")
	buf.WriteString("\tShort []string\n")
	buf.WriteString("}\n\n")

	buf.WriteString("type cldrUnitForms struct {\n")
	buf.WriteString("\tOne   string\n")
	buf.WriteString("\tFew   string\n")
	buf.WriteString("\tOther string\n")
	buf.WriteString("}\n\n")

	buf.WriteString("type cldrBundle struct {\n")
	buf.WriteString("\tMonths     cldrMonthNames\n")
	buf.WriteString("\tDays       cldrDayNames\n")
	buf.WriteString("\tDayPeriods []string\n")
	buf.WriteString("\tUnits      map[string]cldrUnitForms\n")
	buf.WriteString("}\n\n")

	buf.WriteString("var cldrBundles = map[string]cldrBundle{\n")
	for _, bundle := range bundles {
		fmt.Fprintf(&buf, "\t%q: {\n", bundle.Locale)

		buf.WriteString("\t\tMonths: cldrMonthNames{\n")
		fmt.Fprintf(&buf, "\t\t\tFormat: %s,\n", stringSlice(bundle.MonthsFormat))
		fmt.Fprintf(&buf, "\t\t\tStandAlone: %s,\n", stringSlice(bundle.MonthsStandAlone))
		fmt.Fprintf(&buf, "\t\t\tAbbr: %s,\n", stringSlice(bundle.MonthsAbbr))
		buf.WriteString("\t\t},\n")

		buf.WriteString("\t\tDays: cldrDayNames{\n")
		fmt.Fprintf(&buf, "\t\t\tWide: %s,\n", stringSlice(bundle.DaysWide))
		fmt.Fprintf(&buf, "\t\t\tAbbr: %s,\n", stringSlice(bundle.DaysAbbr))
		fmt.Fprintf(&buf, "\t\t\tShort: %s,\n", stringSlice(bundle.DaysShort))
		buf.WriteString("\t\t},\n")

		fmt.Fprintf(&buf, "\t\tDayPeriods: %s,\n", stringSlice(bundle.DayPeriods))

		buf.WriteString("\t\tUnits: map[string]cldrUnitForms{\n")
		keys := make([]string, 0, len(bundle.Units))
		for key := range bundle.Units {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			forms := bundle.Units[key]
			fmt.Fprintf(&buf, "\t\t\t%q: {One: %q, Few: %q, Other: %q},\n", key, forms.One, forms.Few, forms.Other)
		}
		buf.WriteString("\t\t},\n")

		buf.WriteString("\t},\n")
	}
	buf.WriteString("}\n\n")

	buf.WriteString("var generatedCLDRLocales = []string{\n")
	for _, bundle := range bundles {
		fmt.Fprintf(&buf, "\t%q,\n", bundle.Locale)
	}
	buf.WriteString("}\n")

	return format.Source(buf.Bytes())
}

func stringSlice(items []string) string {
	if len(items) == 0 {
		return "nil"
	}
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = strconv.Quote(item)
	}
	return "[]string{" + strings.Join(quoted, ", ") + "}"
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
