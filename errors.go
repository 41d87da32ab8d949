package humandate

import (
	"errors"
	"fmt"
)

// ErrUnparseable indicates that neither the native parser nor any registered
// template could read the input.
var ErrUnparseable = errors.New("humandate: unparseable date")

// ErrInvalidDate indicates that a template matched but produced fields that do
// not form a real calendar date.
var ErrInvalidDate = errors.New("humandate: invalid date")

// ErrEmptyTemplate is returned when registering an empty template string.
var ErrEmptyTemplate = errors.New("humandate: empty template")

// ErrUnknownLocale is returned by lookups against locales that were never registered.
var ErrUnknownLocale = errors.New("humandate: unknown locale")

// ParseError carries the input and, when one matched, the template and the
// canonical rewrite that were tried.
type ParseError struct {
	Input    string
	Template string
	Rewrite  string
	Err      error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Template == "" {
		return fmt.Sprintf("%v: %q", e.Err, e.Input)
	}
	return fmt.Sprintf("%v: %q (template %q, rewrite %q)", e.Err, e.Input, e.Template, e.Rewrite)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
