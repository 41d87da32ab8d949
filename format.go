package humandate

import "time"

// Fields parses v and returns its FieldMap under the active locale.
func (e *Engine) Fields(v DateLike) (FieldMap, error) {
	t, err := e.Parse(v)
	if err != nil {
		return FieldMap{}, err
	}
	return e.FieldsOf(t), nil
}

// FieldsOf builds the FieldMap of t in the engine location.
func (e *Engine) FieldsOf(t time.Time) FieldMap {
	return buildFieldMap(t.In(e.loc), e.locales.Current(), e.flags)
}

// Format parses v and renders it through tmpl.
func (e *Engine) Format(v DateLike, tmpl string) (string, error) {
	fields, err := e.Fields(v)
	if err != nil {
		return "", err
	}
	return fields.Render(tmpl), nil
}

// FormatTime renders t through tmpl.
func (e *Engine) FormatTime(t time.Time, tmpl string) string {
	return e.FieldsOf(t).Render(tmpl)
}
