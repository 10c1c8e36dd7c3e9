package generation

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Field is a loosely typed JSON value read from a request or response body.
// Any JSON type is accepted: Text holds its string form and Truthy whether
// it counts as set (absent, null, "", 0 and false do not).
type Field struct {
	Text   string
	Truthy bool
}

// UnmarshalJSON implements json.Unmarshaler. It never fails on well-formed
// JSON, whatever the value's type.
func (f *Field) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.Truthy = truthy(v)
	f.Text = textOf(v)
	return nil
}

func truthy(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case float64:
		return val != 0
	case string:
		return val != ""
	default:
		// Arrays and objects, including empty ones.
		return true
	}
}

// textOf renders v the way string interpolation in the browser client does.
func textOf(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return formatNumber(val)
	case []interface{}:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = textOf(item)
		}
		return strings.Join(parts, ",")
	default:
		return "[object Object]"
	}
}

func formatNumber(f float64) string {
	if f == 0 {
		return "0"
	}
	if math.Abs(f) >= 1e21 {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
