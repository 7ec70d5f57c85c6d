package collection

import (
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// defaultDateLayouts are tried in order for string dates. Layouts without a
// zone parse as UTC.
var defaultDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02",
	"2006-1-2",
	time.RFC1123Z,
	time.RFC1123,
	"January 2, 2006",
	"Jan 2, 2006",
}

// maxEpochMillis bounds numeric dates to the range of a JavaScript Date.
const maxEpochMillis = 8.64e15

// urlValidate is shared; validator instances are safe for concurrent use.
var urlValidate = validator.New()

// coerceString accepts only string values.
func coerceString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// coerceBool accepts only bool values.
func coerceBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// coerceStringArray returns a fresh []string. badIndex is the first element
// that is not a string, or -1 when v is not a list at all.
func coerceStringArray(v any) (out []string, badIndex int, ok bool) {
	switch list := v.(type) {
	case []string:
		return append(make([]string, 0, len(list)), list...), 0, true
	case []any:
		out = make([]string, 0, len(list))
		for i, item := range list {
			s, isStr := item.(string)
			if !isStr {
				return nil, i, false
			}
			out = append(out, s)
		}
		return out, 0, true
	default:
		return nil, -1, false
	}
}

// coerceURL accepts strings that validate as absolute URLs.
// isString is false when v is not a string at all.
func coerceURL(v any) (u string, isString, ok bool) {
	s, isStr := v.(string)
	if !isStr {
		return "", false, false
	}
	if strings.TrimSpace(s) != s || s == "" {
		return "", true, false
	}
	if err := urlValidate.Var(s, "url"); err != nil {
		return "", true, false
	}
	return s, true, true
}

// coerceDate converts time values, date strings and epoch milliseconds to a
// UTC time.Time. isDateLike is false for kinds that can never be a date
// (bools, lists, maps, nil).
func coerceDate(v any, extraLayouts []string) (t time.Time, isDateLike, ok bool) {
	switch val := v.(type) {
	case time.Time:
		return val.UTC(), true, true
	case *time.Time:
		if val == nil {
			return time.Time{}, false, false
		}
		return val.UTC(), true, true
	case string:
		t, ok := parseDateString(strings.TrimSpace(val), extraLayouts)
		return t, true, ok
	case int, int8, int16, int32, int64:
		return epochMillisInt(reflect.ValueOf(val).Int())
	case uint, uint8, uint16, uint32, uint64:
		u := reflect.ValueOf(val).Uint()
		if u > maxEpochMillis {
			return time.Time{}, true, false
		}
		return epochMillisInt(int64(u))
	case float64:
		return epochMillis(val)
	case float32:
		return epochMillis(float64(val))
	default:
		return time.Time{}, false, false
	}
}

func epochMillis(ms float64) (time.Time, bool, bool) {
	if math.IsNaN(ms) || math.IsInf(ms, 0) || math.Abs(ms) > maxEpochMillis {
		return time.Time{}, true, false
	}
	return time.UnixMilli(int64(ms)).UTC(), true, true
}

func epochMillisInt(ms int64) (time.Time, bool, bool) {
	if ms > maxEpochMillis || ms < -maxEpochMillis {
		return time.Time{}, true, false
	}
	return time.UnixMilli(ms).UTC(), true, true
}

func parseDateString(s string, extraLayouts []string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layouts := range [][]string{defaultDateLayouts, extraLayouts} {
		for _, layout := range layouts {
			t, err := time.Parse(layout, s)
			if err != nil {
				continue
			}
			if !knownZone(layout, t) {
				return time.Time{}, false
			}
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// knownZone rejects times parsed from a zone abbreviation that time.Parse
// could not resolve. Such zones get a fabricated zero offset.
func knownZone(layout string, t time.Time) bool {
	if !strings.Contains(layout, "MST") {
		return true
	}
	name, offset := t.Zone()
	return offset != 0 || name == "UTC" || name == "GMT" || t.Location() == time.Local
}
