package protocol

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// intValue converts a raw primitive to int. Integral floats are accepted
// because plain encoding/json decodes every number as float64.
func intValue(raw any) (int, error) {
	switch v := raw.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return int64ToInt(v)
	case uint:
		return uint64ToInt(uint64(v))
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return uint64ToInt(uint64(v))
	case uint64:
		return uint64ToInt(v)
	case float32:
		return floatToInt(float64(v))
	case float64:
		return floatToInt(v)
	case json.Number:
		n, err := strconv.ParseInt(string(v), 10, 64)
		if err != nil {
			return 0, ErrFieldType
		}
		return int64ToInt(n)
	default:
		return 0, ErrFieldType
	}
}

func int64ToInt(v int64) (int, error) {
	if v < math.MinInt || v > math.MaxInt {
		return 0, ErrFieldType
	}
	return int(v), nil
}

func uint64ToInt(v uint64) (int, error) {
	if v > math.MaxInt {
		return 0, ErrFieldType
	}
	return int(v), nil
}

func floatToInt(v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, ErrFieldType
	}
	if v < math.MinInt64 || v >= math.MaxInt64 {
		return 0, ErrFieldType
	}
	return int64ToInt(int64(v))
}

func stringValue(raw any) (string, error) {
	v, ok := raw.(string)
	if !ok {
		return "", ErrFieldType
	}
	return v, nil
}

// render formats a raw value for error reporting without keeping a
// reference to it.
func render(raw any) string {
	switch v := raw.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(v)
	case json.Number:
		return v.String()
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(v)
	default:
		return fmt.Sprintf("<%T>", v)
	}
}
