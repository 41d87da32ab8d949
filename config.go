package humandate

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/goodsign/monday"
)

// Config captures engine setup
type Config struct {
	Location      *time.Location
	Now           time.Time
	Clock         func() time.Time
	DefaultLocale string
	ActiveLocale  string
	Resolver      FallbackResolver
	Native        NativeParser
	Hooks         []ParseHook
	Templates     []string
	SkipSeed      bool
	TwelveHourFix bool
	MeridiemFix   bool

	sources []localeSource
}

// localeSource is one pending locale registration, applied in option order.
type localeSource struct {
	key    string
	record LocaleRecord
	loader LocaleLoader
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Now.IsZero() {
		cfg.Now = cfg.Clock()
	}
	cfg.Now = cfg.Now.In(cfg.Location)

	if cfg.Resolver == nil {
		cfg.Resolver = NewStaticFallbackResolver()
	}
	if cfg.Native == nil {
		cfg.Native = NewLayoutParser()
	}
	cfg.DefaultLocale = normalizeLocale(cfg.DefaultLocale)
	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = DefaultLocaleKey
	}

	return cfg, nil
}

// WithLocation sets the location every date is constructed in
func WithLocation(loc *time.Location) Option {
	return func(c *Config) error {
		if loc == nil {
			return errors.New("humandate: nil location")
		}
		c.Location = loc
		return nil
	}
}

// WithNow fixes the clock snapshot absent inputs resolve to
func WithNow(now time.Time) Option {
	return func(c *Config) error {
		c.Now = now
		return nil
	}
}

// WithClock replaces the clock sampled at construction and by Engine.Refresh
func WithClock(clock func() time.Time) Option {
	return func(c *Config) error {
		c.Clock = clock
		return nil
	}
}

// WithDefaultLocale sets the locale unknown keys fall back to. The locale must
// be English or registered by another option.
func WithDefaultLocale(locale string) Option {
	return func(c *Config) error {
		c.DefaultLocale = locale
		return nil
	}
}

// WithActiveLocale activates locale once every locale option is applied
func WithActiveLocale(locale string) Option {
	return func(c *Config) error {
		c.ActiveLocale = locale
		return nil
	}
}

func WithLocale(key string, rec LocaleRecord) Option {
	return func(c *Config) error {
		if normalizeLocale(key) == "" {
			return fmt.Errorf("humandate: locale option: %w", ErrUnknownLocale)
		}
		c.sources = append(c.sources, localeSource{key: key, record: rec})
		return nil
	}
}

func WithLocaleLoader(loader LocaleLoader) Option {
	return func(c *Config) error {
		if loader == nil {
			return nil
		}
		c.sources = append(c.sources, localeSource{loader: loader})
		return nil
	}
}

// WithLocaleFiles registers every locale found in JSON, YAML or TOML files
func WithLocaleFiles(paths ...string) Option {
	return func(c *Config) error {
		if len(paths) == 0 {
			return nil
		}
		c.sources = append(c.sources, localeSource{loader: NewLocaleFileLoader(paths...)})
		return nil
	}
}

// WithBundledLocales registers generated CLDR locales, all of them when no key is given
func WithBundledLocales(keys ...string) Option {
	return func(c *Config) error {
		keys = normalizeLocales(keys)
		if len(keys) == 0 {
			keys = BundledLocaleKeys()
		}
		for _, key := range keys {
			rec, ok := BundledLocale(key)
			if !ok {
				return fmt.Errorf("humandate: bundled locale %q: %w", key, ErrUnknownLocale)
			}
			c.sources = append(c.sources, localeSource{key: key, record: rec})
		}
		return nil
	}
}

// WithMondayLocale registers names rendered by the monday locale under key
func WithMondayLocale(key string, locale monday.Locale) Option {
	return func(c *Config) error {
		if normalizeLocale(key) == "" {
			return fmt.Errorf("humandate: monday locale: %w", ErrUnknownLocale)
		}
		c.sources = append(c.sources, localeSource{key: key, record: MondayLocale(locale)})
		return nil
	}
}

// WithTemplates appends parse templates after the seed list
func WithTemplates(templates ...string) Option {
	return func(c *Config) error {
		for _, tmpl := range templates {
			if tmpl == "" {
				return ErrEmptyTemplate
			}
			c.Templates = append(c.Templates, tmpl)
		}
		return nil
	}
}

func WithoutSeedTemplates() Option {
	return func(c *Config) error {
		c.SkipSeed = true
		return nil
	}
}

func WithNativeParser(parser NativeParser) Option {
	return func(c *Config) error {
		c.Native = parser
		return nil
	}
}

func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(c *Config) error {
		c.Resolver = resolver
		return nil
	}
}

func WithFallback(locale string, fallbacks ...string) Option {
	return func(c *Config) error {
		if locale == "" {
			return nil
		}
		resolver, ok := c.Resolver.(*StaticFallbackResolver)
		if !ok {
			if c.Resolver != nil {
				return nil
			}
			resolver = NewStaticFallbackResolver()
			c.Resolver = resolver
		}
		resolver.Set(locale, fallbacks...)
		return nil
	}
}

func WithParseHooks(hooks ...ParseHook) Option {
	return func(c *Config) error {
		c.Hooks = append(c.Hooks, filterHooks(hooks)...)
		return nil
	}
}

// WithTwelveHourFix renders g and h on a 1..12 clock instead of hour-12
func WithTwelveHourFix() Option {
	return func(c *Config) error {
		c.TwelveHourFix = true
		return nil
	}
}

// WithMeridiemFix classifies noon as PM
func WithMeridiemFix() Option {
	return func(c *Config) error {
		c.MeridiemFix = true
		return nil
	}
}

// BuildEngine assembles the registries and applies locale sources in option order
func (cfg *Config) BuildEngine() (*Engine, error) {
	if cfg == nil {
		return nil, errors.New("humandate: nil config")
	}

	e := &Engine{
		locales:   NewLocaleRegistry(DefaultLocaleKey, EnglishLocale(), cfg.Resolver),
		templates: NewTemplateRegistry(cfg.Now),
		native:    cfg.Native,
		hooks:     filterHooks(cfg.Hooks),
		loc:       cfg.Location,
		flags:     compat{twelveHourFix: cfg.TwelveHourFix, meridiemFix: cfg.MeridiemFix},
		now:       cfg.Now,
		clock:     cfg.Clock,
	}

	if !cfg.SkipSeed {
		for _, tmpl := range SeedTemplates {
			if _, err := e.templates.Register(tmpl); err != nil {
				return nil, err
			}
		}
	}
	for _, tmpl := range cfg.Templates {
		if _, err := e.templates.Register(tmpl); err != nil {
			return nil, err
		}
	}

	for _, source := range cfg.sources {
		if err := cfg.applySource(e, source); err != nil {
			return nil, err
		}
	}

	if cfg.DefaultLocale != e.locales.DefaultKey() {
		if err := e.locales.SetDefault(cfg.DefaultLocale); err != nil {
			return nil, fmt.Errorf("humandate: default locale %q: %w", cfg.DefaultLocale, err)
		}
	}
	e.locales.Activate(cfg.ActiveLocale)

	return e, nil
}

func (cfg *Config) applySource(e *Engine, source localeSource) error {
	if source.loader == nil {
		return e.RegisterLocale(source.key, source.record, true)
	}

	set, err := source.loader.LoadLocales()
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if err := e.RegisterLocale(key, set[key], true); err != nil {
			return fmt.Errorf("humandate: locale %q: %w", key, err)
		}
	}
	return nil
}
