package humandate

import (
	"fmt"
	"sync"
	"time"
)

// Engine owns one locale registry, one template registry and the clock
// snapshot every absent input resolves to. Engines are independent of each
// other and safe for concurrent use.
type Engine struct {
	locales   *LocaleRegistry
	templates *TemplateRegistry
	native    NativeParser
	hooks     []ParseHook
	loc       *time.Location
	flags     compat

	mu    sync.RWMutex
	now   time.Time
	clock func() time.Time
}

// New builds an Engine from options, see NewConfig.
func New(opts ...Option) (*Engine, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return cfg.BuildEngine()
}

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns the package engine: local time, English, seed templates.
func Default() *Engine {
	defaultOnce.Do(func() {
		engine, err := New()
		if err != nil {
			panic(fmt.Sprintf("humandate: default engine: %v", err))
		}
		defaultEngine = engine
	})
	return defaultEngine
}

// Now returns the clock snapshot taken when the engine was built or last
// refreshed.
func (e *Engine) Now() time.Time {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.now
}

// Refresh resamples the clock and returns the new snapshot. Templates
// registered afterwards take their default year, month and day from it.
func (e *Engine) Refresh() time.Time {
	now := e.clock().In(e.loc)

	e.mu.Lock()
	e.now = now
	e.mu.Unlock()

	e.templates.mu.Lock()
	e.templates.now = now
	e.templates.mu.Unlock()
	return now
}

func (e *Engine) Location() *time.Location {
	return e.loc
}

func (e *Engine) Locales() *LocaleRegistry {
	return e.locales
}

func (e *Engine) Templates() *TemplateRegistry {
	return e.templates
}

// RegisterLocale merges rec into the locale registry. A non-empty holiday
// list in rec replaces the locale's holidays.
func (e *Engine) RegisterLocale(key string, rec LocaleRecord, overwrite bool) error {
	key = normalizeLocale(key)
	if key == "" {
		return fmt.Errorf("humandate: register locale: %w", ErrUnknownLocale)
	}
	e.locales.Register(key, rec, overwrite)
	if len(rec.Holidays.List) > 0 {
		return e.SetHolidayList(key, rec.Holidays.List.String())
	}
	return nil
}

// Activate switches the active locale and returns the key actually used.
// Unknown keys fall back to the default locale.
func (e *Engine) Activate(key string) string {
	return e.locales.Activate(key)
}

// Locale returns a copy of the active locale record.
func (e *Engine) Locale() LocaleRecord {
	return e.locales.Current()
}

func (e *Engine) LocaleKey() string {
	return e.locales.CurrentKey()
}

// RegisterTemplate appends a parse template. It reports false when the
// template is already known.
func (e *Engine) RegisterTemplate(tmpl string) (bool, error) {
	return e.templates.Register(tmpl)
}

// DaysInMonth is the package DaysInMonth with zero arguments taken from the
// clock snapshot.
func (e *Engine) DaysInMonth(month, year int) int {
	now := e.Now()
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	return DaysInMonth(month, year)
}

// IsLeapYear checks year, or the snapshot year when year is zero.
func (e *Engine) IsLeapYear(year int) bool {
	if year == 0 {
		year = e.Now().Year()
	}
	return IsLeapYear(year)
}

// Distance parses both values and measures between them.
func (e *Engine) Distance(from, till DateLike) (Distance, error) {
	a, err := e.Parse(from)
	if err != nil {
		return Distance{}, err
	}
	b, err := e.Parse(till)
	if err != nil {
		return Distance{}, err
	}
	return DistanceBetween(a, b), nil
}

// MonthGrid parses ref and returns its 42 cell month grid.
func (e *Engine) MonthGrid(ref DateLike) ([]time.Time, error) {
	t, err := e.Parse(ref)
	if err != nil {
		return nil, err
	}
	return MonthGrid(t), nil
}

// Order parses every value and sorts them, see Order.
func (e *Engine) Order(values []DateLike, mode OrderMode) ([]time.Time, error) {
	dates := make([]time.Time, 0, len(values))
	for _, value := range values {
		t, err := e.Parse(value)
		if err != nil {
			return nil, err
		}
		dates = append(dates, t)
	}
	return Order(dates, mode), nil
}

// Format renders v with the package engine.
func Format(v DateLike, tmpl string) (string, error) {
	return Default().Format(v, tmpl)
}

// Parse reads v with the package engine.
func Parse(v DateLike) (time.Time, error) {
	return Default().Parse(v)
}
