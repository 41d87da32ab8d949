package humandate

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LocaleSet maps locale keys to their records.
type LocaleSet map[string]LocaleRecord

// LocaleLoader supplies locale records to an engine at construction.
type LocaleLoader interface {
	LoadLocales() (LocaleSet, error)
}

// LocaleLoaderFunc adapts a function to LocaleLoader.
type LocaleLoaderFunc func() (LocaleSet, error)

func (f LocaleLoaderFunc) LoadLocales() (LocaleSet, error) {
	return f()
}

// LocaleFileLoader reads files shaped {locale: record}. The decoder is picked
// by extension: .json, .yaml/.yml or .toml. Later files override earlier ones
// key by key.
type LocaleFileLoader struct {
	paths []string
}

var _ LocaleLoader = &LocaleFileLoader{}

func NewLocaleFileLoader(paths ...string) *LocaleFileLoader {
	return &LocaleFileLoader{paths: append([]string(nil), paths...)}
}

func (l *LocaleFileLoader) LoadLocales() (LocaleSet, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("humandate: no locale paths configured")
	}

	result := make(LocaleSet)
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("humandate: read %s: %w", path, err)
		}

		set, err := DecodeLocaleFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("humandate: decode %s: %w", path, err)
		}
		for key, rec := range set {
			result[key] = rec
		}
	}
	return result, nil
}

// DecodeLocaleFile decodes data according to the extension of path.
func DecodeLocaleFile(path string, data []byte) (LocaleSet, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var raw map[string]LocaleRecord
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("yaml parse error: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return nil, fmt.Errorf("toml parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}

	if len(raw) == 0 {
		return nil, fmt.Errorf("no locales in %s", path)
	}

	set := make(LocaleSet, len(raw))
	for key, rec := range raw {
		normalized := normalizeLocale(key)
		if normalized == "" {
			return nil, fmt.Errorf("empty locale in %s", path)
		}
		set[normalized] = rec
	}
	return set, nil
}
