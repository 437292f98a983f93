package content

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Keys checked when an object has to be reduced to a single line of text.
// Primary keys carry the main text, secondary keys a qualifier appended
// after " - ".
var (
	primaryTextKeys   = []string{"text", "title", "label", "value", "name"}
	secondaryTextKeys = []string{"description", "subtitle", "detail"}
)

// CoerceToText reduces an arbitrary JSON-decoded value to a display string.
// It always returns a string and never fails: unusable input becomes "".
func CoerceToText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case json.Number:
		return t.String()
	case []any:
		parts := make([]string, 0, len(t))
		for _, el := range t {
			if s := CoerceToText(el); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		return coerceObject(t)
	default:
		return dumpJSON(v)
	}
}

func coerceObject(m map[string]any) string {
	primary := firstTextKey(m, primaryTextKeys)
	secondary := firstTextKey(m, secondaryTextKeys)

	switch {
	case primary != "" && secondary != "" && primary != secondary:
		return primary + " - " + secondary
	case primary != "":
		return primary
	case secondary != "":
		return secondary
	default:
		return dumpJSON(m)
	}
}

// firstTextKey returns the coerced text of the first key in order that
// yields non-empty text.
func firstTextKey(m map[string]any, keys []string) string {
	for _, k := range keys {
		v, ok := m[k]
		if !ok {
			continue
		}
		if s := CoerceToText(v); s != "" {
			return s
		}
	}
	return ""
}

// dumpJSON is the last-resort textual form of an unrecognized value.
// Showing a raw dump beats showing nothing; a marshal failure becomes "".
func dumpJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
