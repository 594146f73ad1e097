package pkg

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"
)

// Interchange field names. These are the wire contract shared with the
// dashboard site; renaming any of them is a breaking change.
const (
	fieldAttr       = "attr"
	fieldChildren   = "children"
	fieldData       = "data"
	fieldDate       = "date"
	fieldLastUpdate = "last_update"
	fieldNews       = "news"
	fieldNewsItems  = "news_items"
	fieldStatus     = "status"
	fieldSum        = "sum"
	fieldSummary    = "summary"
	fieldText       = "text"
	fieldURL        = "url"
	fieldValue      = "value"
)

func typeName(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case float64, json.Number, int, int32, int64, uint, uint32, uint64:
		return "number"
	case []interface{}:
		return "array"
	case map[string]interface{}:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func asObject(label string, v interface{}) (map[string]interface{}, error) {
	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil, &TypeMismatchError{Field: label, Expected: "object", Actual: typeName(v)}
	}
	return obj, nil
}

func stringField(obj map[string]interface{}, field string) (string, error) {
	v, ok := obj[field]
	if !ok {
		return "", &MissingFieldError{Field: field}
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeMismatchError{Field: field, Expected: "string", Actual: typeName(v)}
	}
	return s, nil
}

// countField reads a non-negative integer. Interchange trees decoded by
// encoding/json carry numbers as float64 or json.Number; trees built
// programmatically may carry native Go integers.
func countField(obj map[string]interface{}, field string) (uint32, error) {
	v, ok := obj[field]
	if !ok {
		return 0, &MissingFieldError{Field: field}
	}
	var n int64
	switch num := v.(type) {
	case float64:
		if num != math.Trunc(num) {
			return 0, &TypeMismatchError{Field: field, Expected: "integer", Actual: "number"}
		}
		if num > math.MaxUint32 {
			return 0, &TypeMismatchError{Field: field, Expected: "32-bit integer", Actual: "number"}
		}
		// Converting a float64 below int64 range is not well defined;
		// clamp so the negative-count report stays meaningful.
		if num < math.MinInt64 {
			num = math.MinInt64
		}
		n = int64(num)
	case json.Number:
		parsed, err := num.Int64()
		if err != nil {
			return 0, &TypeMismatchError{Field: field, Expected: "integer", Actual: "number"}
		}
		n = parsed
	case int:
		n = int64(num)
	case int32:
		n = int64(num)
	case int64:
		n = num
	case uint:
		n = int64(num)
	case uint32:
		n = int64(num)
	case uint64:
		if num > math.MaxInt64 {
			return 0, &TypeMismatchError{Field: field, Expected: "32-bit integer", Actual: "number"}
		}
		n = int64(num)
	default:
		return 0, &TypeMismatchError{Field: field, Expected: "integer", Actual: typeName(v)}
	}
	if n < 0 {
		return 0, &NegativeValueError{Field: field, Value: n}
	}
	if n > math.MaxUint32 {
		return 0, &TypeMismatchError{Field: field, Expected: "32-bit integer", Actual: "number"}
	}
	return uint32(n), nil
}

func arrayField(obj map[string]interface{}, field string) ([]interface{}, error) {
	v, ok := obj[field]
	if !ok {
		return nil, &MissingFieldError{Field: field}
	}
	seq, ok := v.([]interface{})
	if !ok {
		return nil, &TypeMismatchError{Field: field, Expected: "array", Actual: typeName(v)}
	}
	return seq, nil
}

func optionalArrayField(obj map[string]interface{}, field string) ([]interface{}, bool, error) {
	if _, ok := obj[field]; !ok {
		return nil, false, nil
	}
	seq, err := arrayField(obj, field)
	if err != nil {
		return nil, false, err
	}
	return seq, true, nil
}

func dateStampField(obj map[string]interface{}, field string) (DateStamp, error) {
	raw, err := stringField(obj, field)
	if err != nil {
		return DateStamp{}, err
	}
	stamp, err := ParseDateStamp(raw)
	if err != nil {
		return DateStamp{}, &InvalidDateError{Field: field, Raw: raw}
	}
	return stamp, nil
}

func instantField(obj map[string]interface{}, field string) (time.Time, error) {
	raw, err := stringField(obj, field)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, &InvalidDateError{Field: field, Raw: raw}
	}
	return t, nil
}

func dateTimeField(obj map[string]interface{}, field string) (time.Time, error) {
	raw, err := stringField(obj, field)
	if err != nil {
		return time.Time{}, err
	}
	t, err := parseDateTime(raw)
	if err != nil {
		return time.Time{}, &InvalidDateError{Field: field, Raw: raw}
	}
	return t, nil
}

func optionalDateTimeField(obj map[string]interface{}, field string) (time.Time, error) {
	if _, ok := obj[field]; !ok {
		return time.Time{}, nil
	}
	return dateTimeField(obj, field)
}

func isStringInList(items []string, val string) bool {
	for _, item := range items {
		if item == val {
			return true
		}
	}
	return false
}

// Unknown fields are skipped, not rejected, so producers can add fields
// without breaking older consumers.
func logUnknownFields(record string, obj map[string]interface{}, known ...string) {
	for key := range obj {
		if !isStringInList(known, key) {
			log.Debug().Str("record", record).Str("field", key).Msg("Ignoring unknown field")
		}
	}
}
