package humandate

import (
	"sort"
	"sync"
)

// LocaleRegistry holds the locale records known to an Engine plus the active
// and default keys. Every stored record has the default record's shape, so
// lookups never need to guard against missing names.
type LocaleRegistry struct {
	mu         sync.RWMutex
	locales    map[string]LocaleRecord
	defaultKey string
	current    string
	resolver   FallbackResolver
}

// NewLocaleRegistry seeds a registry with the default record under defaultKey.
func NewLocaleRegistry(defaultKey string, def LocaleRecord, resolver FallbackResolver) *LocaleRegistry {
	defaultKey = normalizeLocale(defaultKey)
	if defaultKey == "" {
		defaultKey = DefaultLocaleKey
	}
	return &LocaleRegistry{
		locales:    map[string]LocaleRecord{defaultKey: def.Clone()},
		defaultKey: defaultKey,
		current:    defaultKey,
		resolver:   resolver,
	}
}

// Register merges rec onto the default record's shape and stores it under key.
// With overwrite unset, values the locale already holds are kept. Holidays in
// rec are ignored here; Engine.RegisterLocale routes them to SetHolidays.
func (r *LocaleRegistry) Register(key string, rec LocaleRecord, overwrite bool) {
	key = normalizeLocale(key)
	if r == nil || key == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	base := r.locales[r.defaultKey]
	existing := r.locales[key]
	r.locales[key] = mergeLocale(existing, rec, base, overwrite)
}

// Activate switches the active locale. Unknown keys try their parent tags and
// configured fallbacks before settling on the default key. The resolved key is
// returned.
func (r *LocaleRegistry) Activate(key string) string {
	if r == nil {
		return ""
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.current = r.resolveLocked(normalizeLocale(key))
	return r.current
}

func (r *LocaleRegistry) resolveLocked(key string) string {
	if key == "" {
		return r.defaultKey
	}
	if _, ok := r.locales[key]; ok {
		return key
	}
	for _, parent := range localeParentChain(key) {
		if _, ok := r.locales[parent]; ok {
			return parent
		}
	}
	if r.resolver != nil {
		for _, fallback := range r.resolver.Resolve(key) {
			if _, ok := r.locales[fallback]; ok {
				return fallback
			}
		}
	}
	return r.defaultKey
}

// SetDefault changes the default key. The locale must already be registered.
func (r *LocaleRegistry) SetDefault(key string) error {
	key = normalizeLocale(key)
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.locales[key]; !ok {
		return ErrUnknownLocale
	}
	r.defaultKey = key
	return nil
}

// Current returns a copy of the active record.
func (r *LocaleRegistry) Current() LocaleRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if rec, ok := r.locales[r.current]; ok {
		return rec.Clone()
	}
	return r.locales[r.defaultKey].Clone()
}

func (r *LocaleRegistry) CurrentKey() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

func (r *LocaleRegistry) DefaultKey() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultKey
}

// Default returns a copy of the default record.
func (r *LocaleRegistry) Default() LocaleRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.locales[r.defaultKey].Clone()
}

// Locale returns a copy of the record stored under key.
func (r *LocaleRegistry) Locale(key string) (LocaleRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.locales[normalizeLocale(key)]
	if !ok {
		return LocaleRecord{}, false
	}
	return rec.Clone(), true
}

func (r *LocaleRegistry) Has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.locales[normalizeLocale(key)]
	return ok
}

// Keys returns the registered locale keys sorted alphabetically.
func (r *LocaleRegistry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.locales))
	for key := range r.locales {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Holidays returns the holiday dates stored for key, nil when it has none.
func (r *LocaleRegistry) Holidays(key string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.locales[normalizeLocale(key)]
	if !ok || len(rec.Holidays.List) == 0 {
		return nil
	}
	return []string(rec.Holidays.List.clone())
}

func (r *LocaleRegistry) setHolidays(key string, set HolidaySet) {
	key = normalizeLocale(key)
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.locales[key]
	if !ok {
		rec = mergeLocale(LocaleRecord{}, LocaleRecord{}, r.locales[r.defaultKey], true)
	}
	rec.Holidays = set.clone()
	r.locales[key] = rec
}

// activeHolidays returns the active locale's holidays, or the default
// locale's when the active one defines none.
func (r *LocaleRegistry) activeHolidays() HolidaySet {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if rec, ok := r.locales[r.current]; ok && len(rec.Holidays.List) > 0 {
		return rec.Holidays.clone()
	}
	return r.locales[r.defaultKey].Holidays.clone()
}
