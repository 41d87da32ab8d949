package humandate

import "time"

// ParseStage names the step that produced a parse result.
type ParseStage string

const (
	StageValue    ParseStage = "value"    // time, epoch or absent input
	StageNative   ParseStage = "native"   // read by the NativeParser
	StageTemplate ParseStage = "template" // a registered template matched
	StageFailed   ParseStage = "failed"
)

// ParseHook observes Engine.Parse. Hooks run in registration order, Before
// ahead of parsing and After once Result and Error are set.
type ParseHook interface {
	BeforeParse(ctx *ParseHookContext)
	AfterParse(ctx *ParseHookContext)
}

type ParseHookContext struct {
	Input    string
	Kind     DateKind
	Stage    ParseStage
	Template string
	Rewrite  string
	Result   time.Time
	Error    error
	Metadata map[string]any
}

func (ctx *ParseHookContext) SetMetadata(key string, value any) {
	if ctx == nil || key == "" {
		return
	}
	if ctx.Metadata == nil {
		ctx.Metadata = make(map[string]any)
	}
	ctx.Metadata[key] = value
}

func (ctx *ParseHookContext) MetadataValue(key string) (any, bool) {
	if ctx == nil || ctx.Metadata == nil {
		return nil, false
	}
	val, ok := ctx.Metadata[key]
	return val, ok
}

// ParseHookFuncs adapts plain functions to ParseHook. Either may be nil.
type ParseHookFuncs struct {
	Before func(ctx *ParseHookContext)
	After  func(ctx *ParseHookContext)
}

func (h ParseHookFuncs) BeforeParse(ctx *ParseHookContext) {
	if h.Before != nil {
		h.Before(ctx)
	}
}

func (h ParseHookFuncs) AfterParse(ctx *ParseHookContext) {
	if h.After != nil {
		h.After(ctx)
	}
}

func filterHooks(hooks []ParseHook) []ParseHook {
	filtered := make([]ParseHook, 0, len(hooks))
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		filtered = append(filtered, hook)
	}
	return filtered
}
