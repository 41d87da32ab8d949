package humandate

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dlclark/regexp2"
)

// SeedTemplates are registered into every engine unless WithoutSeedTemplates
// is used. Parsing tries them in this order, most qualified first.
var SeedTemplates = []string{
	"D M d Y H:i:s eO (T)",
	"D M d Y H:i:s eO",
	"D M d H:i:s e Y",
	"Y-m-d H:i:s",
	"H:i:s",
	"Y-m-d",
	"y-m-d",
	"M d,Y",
	"Y-M-d",
	"y-M-d",
	"d-M-Y",
	"M/d/y",
	"m-d-Y",
	"m.d.Y",
	"d/m/Y",
	"d-m-Y",
	"d.m.Y",
	"M d, Y",
	"M d",
	"M-d",
	"m/d",
	"m-d",
	"d-M",
	"d/m",
	"d-m",
	"d",
}

// TemplateEntry pairs a template with the canonical rewrite its matches are
// turned into. Rewrites reference capture groups as ${n}.
type TemplateEntry struct {
	Template string
	Rewrite  string

	re *regexp2.Regexp
}

// TemplateRegistry is the ordered list of parse templates. Entries are never
// removed or reordered.
type TemplateRegistry struct {
	mu      sync.RWMutex
	entries []TemplateEntry
	index   map[string]int
	now     time.Time
}

// NewTemplateRegistry creates an empty registry. now supplies the year, month
// and day used by templates that leave them out.
func NewTemplateRegistry(now time.Time) *TemplateRegistry {
	return &TemplateRegistry{
		index: make(map[string]int),
		now:   now,
	}
}

// Register appends tmpl with its derived rewrite. It reports false when the
// template was already registered, leaving the registry unchanged.
func (r *TemplateRegistry) Register(tmpl string) (bool, error) {
	return r.register(tmpl, "")
}

// RegisterRewrite appends tmpl with an explicit canonical rewrite.
func (r *TemplateRegistry) RegisterRewrite(tmpl, rewrite string) (bool, error) {
	if strings.TrimSpace(rewrite) == "" {
		return r.register(tmpl, "")
	}
	return r.register(tmpl, rewrite)
}

func (r *TemplateRegistry) register(tmpl, rewrite string) (bool, error) {
	if tmpl == "" {
		return false, ErrEmptyTemplate
	}

	r.mu.RLock()
	_, exists := r.index[tmpl]
	now := r.now
	r.mu.RUnlock()
	if exists {
		return false, nil
	}

	re, err := CompileTemplate(tmpl)
	if err != nil {
		return false, err
	}
	if rewrite == "" {
		rewrite = deriveRewrite(tmpl, now)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[tmpl]; exists {
		return false, nil
	}
	r.index[tmpl] = len(r.entries)
	r.entries = append(r.entries, TemplateEntry{Template: tmpl, Rewrite: rewrite, re: re})
	return true, nil
}

// Has reports whether tmpl is registered.
func (r *TemplateRegistry) Has(tmpl string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.index[tmpl]
	return ok
}

func (r *TemplateRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Entries returns the registered entries in parse order.
func (r *TemplateRegistry) Entries() []TemplateEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]TemplateEntry(nil), r.entries...)
}

// Templates returns the registered template strings in parse order.
func (r *TemplateRegistry) Templates() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.entries))
	for i, entry := range r.entries {
		out[i] = entry.Template
	}
	return out
}

// Match tries every entry in registration order and rewrites the first match.
func (r *TemplateRegistry) Match(input string) (TemplateEntry, string, bool) {
	for _, entry := range r.Entries() {
		if rewritten, ok := entry.apply(input); ok {
			return entry, rewritten, true
		}
	}
	return TemplateEntry{}, "", false
}

func (e TemplateEntry) apply(input string) (string, bool) {
	if e.re == nil {
		return "", false
	}
	m, err := e.re.FindStringMatch(input)
	if err != nil || m == nil {
		return "", false
	}
	return expandRewrite(e.Rewrite, m), true
}

// expandRewrite substitutes ${n} references with the groups of m.
func expandRewrite(rewrite string, m *regexp2.Match) string {
	var b strings.Builder
	for i := 0; i < len(rewrite); i++ {
		if rewrite[i] == '$' && i+1 < len(rewrite) && rewrite[i+1] == '{' {
			if end := strings.IndexByte(rewrite[i:], '}'); end > 2 {
				if n, err := strconv.Atoi(rewrite[i+2 : i+end]); err == nil {
					if g := m.GroupByNumber(n); g != nil {
						b.WriteString(g.String())
					}
					i += end
					continue
				}
			}
		}
		b.WriteByte(rewrite[i])
	}
	return b.String()
}

// deriveRewrite builds the canonical "year month day H:i:s" form of tmpl.
// Year, month and day fall back to now; time parts fall back to 00.
func deriveRewrite(tmpl string, now time.Time) string {
	date := [3]string{}
	clock := [3]string{}

	group := 0
	for _, ch := range tmpl {
		if _, ok := FragmentFor(ch); !ok {
			continue
		}
		group++
		ref := "${" + strconv.Itoa(group) + "}"

		switch Token(ch) {
		case TokenYear:
			date[0] = ref
		case TokenYearShort:
			date[0] = yearPrefix(now) + ref
		case TokenMonthFull, TokenMonthShort, TokenMonth, TokenMonthNumber:
			date[1] = ref
		case TokenDay, TokenDayOfMonth:
			date[2] = ref
		case TokenHour24Padded, TokenHour24:
			clock[0] = ref
		case TokenMinute:
			clock[1] = ref
		case TokenSecond:
			clock[2] = ref
		}
	}

	defaults := [3]string{
		strconv.Itoa(now.Year()),
		strconv.Itoa(int(now.Month())),
		strconv.Itoa(now.Day()),
	}
	for i := range date {
		if date[i] == "" {
			date[i] = defaults[i]
		}
		if clock[i] == "" {
			clock[i] = "00"
		}
	}

	return strings.Join(date[:], " ") + " " + strings.Join(clock[:], ":")
}

// yearPrefix is the century part of now's year, "20" for 2024.
func yearPrefix(now time.Time) string {
	year := strconv.Itoa(now.Year())
	if len(year) < 2 {
		return year
	}
	return year[:2]
}
