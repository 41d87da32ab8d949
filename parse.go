package humandate

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// Parse resolves v to a time in the engine location. Strings go through the
// native parser first, then through the registered templates in order.
// Templates match anywhere in the input; text around the first match is
// ignored, so "Mar 15, 2024 extra" parses as 2024-03-15.
func (e *Engine) Parse(v DateLike) (time.Time, error) {
	ctx := &ParseHookContext{Input: v.String(), Kind: v.Kind()}
	for _, hook := range e.hooks {
		hook.BeforeParse(ctx)
	}

	t, err := e.parse(v, ctx)
	ctx.Result, ctx.Error = t, err
	if err != nil {
		ctx.Stage = StageFailed
	}

	for _, hook := range e.hooks {
		hook.AfterParse(ctx)
	}
	return t, err
}

// ParseString is Parse(FromString(value)).
func (e *Engine) ParseString(value string) (time.Time, error) {
	return e.Parse(FromString(value))
}

func (e *Engine) parse(v DateLike, ctx *ParseHookContext) (time.Time, error) {
	switch v.kind {
	case KindAbsent:
		ctx.Stage = StageValue
		return e.Now(), nil
	case KindTime:
		ctx.Stage = StageValue
		return v.t.In(e.loc), nil
	case KindEpoch:
		ctx.Stage = StageValue
		return time.UnixMilli(v.epoch).In(e.loc), nil
	}

	input := strings.TrimSpace(v.s)
	if input == "" {
		return time.Time{}, &ParseError{Input: v.s, Err: ErrUnparseable}
	}

	if t, err := e.native.ParseNative(input, e.loc); err == nil {
		ctx.Stage = StageNative
		return t, nil
	}

	entry, rewrite, ok := e.templates.Match(input)
	if !ok {
		return time.Time{}, &ParseError{Input: input, Err: ErrUnparseable}
	}
	ctx.Stage = StageTemplate
	ctx.Template, ctx.Rewrite = entry.Template, rewrite

	t, err := e.parseCanonical(rewrite)
	if err == nil {
		return t, nil
	}
	if nt, nerr := e.native.ParseNative(rewrite, e.loc); nerr == nil {
		return nt, nil
	}
	return time.Time{}, &ParseError{Input: input, Template: entry.Template, Rewrite: rewrite, Err: err}
}

// parseCanonical reads "year month day H:i:s" where month is a number or a
// month name of the active, default or English locale.
func (e *Engine) parseCanonical(value string) (time.Time, error) {
	parts := strings.Fields(value)
	if len(parts) != 4 {
		return time.Time{}, ErrUnparseable
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, ErrUnparseable
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, ErrUnparseable
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil {
		var ok bool
		if month, ok = e.lookupMonth(parts[1]); !ok {
			return time.Time{}, ErrInvalidDate
		}
	}

	clock := strings.Split(parts[3], ":")
	if len(clock) < 2 || len(clock) > 3 {
		return time.Time{}, ErrUnparseable
	}
	hms := [3]int{}
	for i, part := range clock {
		n, err := strconv.Atoi(part)
		if err != nil {
			return time.Time{}, ErrUnparseable
		}
		hms[i] = n
	}

	if month < 1 || month > 12 || day < 1 || day > DaysInMonth(month, year) {
		return time.Time{}, ErrInvalidDate
	}
	if hms[0] < 0 || hms[0] > 23 || hms[1] < 0 || hms[1] > 59 || hms[2] < 0 || hms[2] > 59 {
		return time.Time{}, ErrInvalidDate
	}

	return time.Date(year, time.Month(month), day, hms[0], hms[1], hms[2], 0, e.loc), nil
}

// lookupMonth matches name case-insensitively against short, full and
// declined month names. Casers keep state, so each call folds with its own.
func (e *Engine) lookupMonth(name string) (int, bool) {
	folder := cases.Fold()
	needle := folder.String(strings.TrimSuffix(name, "."))
	if needle == "" {
		return 0, false
	}

	records := []LocaleRecord{e.locales.Current(), e.locales.Default(), EnglishLocale()}
	for _, rec := range records {
		for _, list := range []NameList{rec.Months.Short, rec.Months.Full, rec.Months.Declined} {
			for i, candidate := range list {
				candidate = folder.String(strings.TrimSuffix(candidate, "."))
				if candidate == needle {
					return i + 1, true
				}
			}
		}
	}
	return 0, false
}
