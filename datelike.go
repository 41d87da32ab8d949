package humandate

import (
	"fmt"
	"strconv"
	"time"
)

// DateKind tags the variant held by a DateLike.
type DateKind uint8

const (
	KindAbsent DateKind = iota
	KindTime
	KindString
	KindEpoch
)

func (k DateKind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindTime:
		return "time"
	case KindString:
		return "string"
	case KindEpoch:
		return "epoch"
	default:
		return "unknown"
	}
}

// DateLike is any value the engine accepts as a date. The zero value is
// Absent and resolves to the engine's clock snapshot.
type DateLike struct {
	kind  DateKind
	t     time.Time
	s     string
	epoch int64
}

// Absent is the explicit "no input" value.
var Absent = DateLike{}

func FromTime(t time.Time) DateLike {
	return DateLike{kind: KindTime, t: t}
}

func FromString(s string) DateLike {
	return DateLike{kind: KindString, s: s}
}

// FromEpochMilli wraps milliseconds since the Unix epoch.
func FromEpochMilli(ms int64) DateLike {
	return DateLike{kind: KindEpoch, epoch: ms}
}

func (d DateLike) Kind() DateKind { return d.kind }

func (d DateLike) String() string {
	switch d.kind {
	case KindTime:
		return d.t.String()
	case KindString:
		return d.s
	case KindEpoch:
		return strconv.FormatInt(d.epoch, 10)
	default:
		return ""
	}
}

// ToDateLike converts loosely typed values, as found in templates and decoded
// files, into a DateLike. nil maps to Absent.
func ToDateLike(value any) (DateLike, error) {
	switch v := value.(type) {
	case nil:
		return Absent, nil
	case DateLike:
		return v, nil
	case *DateLike:
		if v == nil {
			return Absent, nil
		}
		return *v, nil
	case time.Time:
		return FromTime(v), nil
	case *time.Time:
		if v == nil {
			return Absent, nil
		}
		return FromTime(*v), nil
	case string:
		return FromString(v), nil
	case int:
		return FromEpochMilli(int64(v)), nil
	case int32:
		return FromEpochMilli(int64(v)), nil
	case int64:
		return FromEpochMilli(v), nil
	case uint32:
		return FromEpochMilli(int64(v)), nil
	case float64:
		return FromEpochMilli(int64(v)), nil
	case fmt.Stringer:
		return FromString(v.String()), nil
	default:
		return Absent, fmt.Errorf("humandate: unsupported date value %T", value)
	}
}
