package docstore

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"

	"portfolio_backend/internal/usecase/interfaces"
)

// TimestampLayout is ISO-8601 UTC with fixed nanosecond precision, so stored
// timestamps sort lexicographically in time order and keep the full clock
// reading.
const TimestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp accepts the values a store may hand back for a timestamp
// field: our own string layout, any RFC3339 string or a native time.
func ParseTimestamp(v any) (time.Time, bool) {
	switch tv := v.(type) {
	case time.Time:
		return tv.UTC(), true
	case *time.Time:
		if tv == nil {
			return time.Time{}, false
		}
		return tv.UTC(), true
	case string:
		if tv == "" {
			return time.Time{}, false
		}
		if t, err := time.Parse(time.RFC3339Nano, tv); err == nil {
			return t.UTC(), true
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

func cloneDocument(doc interfaces.Document) interfaces.Document {
	out := make(interfaces.Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}

// sortDocuments orders docs by field. Documents missing the field sort last.
func sortDocuments(docs []interfaces.Document, field string, dir interfaces.SortDirection) {
	sort.SliceStable(docs, func(i, j int) bool {
		a, aok := docs[i][field]
		b, bok := docs[j][field]
		switch {
		case !aok && !bok:
			return false
		case !aok:
			return false
		case !bok:
			return true
		}
		c := compareValues(a, b)
		if dir == interfaces.SortDescending {
			return c > 0
		}
		return c < 0
	})
}

func compareValues(a, b any) int {
	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			return at.Compare(bt)
		}
	}
	if af, ok := toFloat(a); ok {
		if bf, ok := toFloat(b); ok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}
	return strings.Compare(toString(a), toString(b))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func toString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case time.Time:
		return FormatTimestamp(s)
	case nil:
		return ""
	default:
		if f, ok := toFloat(v); ok {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
		b, _ := json.Marshal(v)
		return string(b)
	}
}

// matches is the equality used by Query implementations that filter in memory.
func matches(doc interfaces.Document, field string, value any) bool {
	v, ok := doc[field]
	if !ok {
		return false
	}
	return compareValues(v, value) == 0
}
