// Package safe provides helpers for safe numeric conversions with overflow checks.
package safe

import (
	"fmt"
	"math"
)

// Int32 converts signed or unsigned integers to int32 with range validation.
// PostgreSQL integer columns are signed 32-bit.
func Int32[T ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64](v T) (int32, error) {
	switch value := any(v).(type) {
	case int:
		if int64(value) < math.MinInt32 || int64(value) > math.MaxInt32 {
			return 0, fmt.Errorf("value %d out of int32 range", v)
		}
	case int32:
	case int64:
		if value < math.MinInt32 || value > math.MaxInt32 {
			return 0, fmt.Errorf("value %d out of int32 range", v)
		}
	case uint:
		if uint64(value) > math.MaxInt32 {
			return 0, fmt.Errorf("value %d out of int32 range", v)
		}
	case uint32:
		if value > math.MaxInt32 {
			return 0, fmt.Errorf("value %d out of int32 range", v)
		}
	case uint64:
		if value > math.MaxInt32 {
			return 0, fmt.Errorf("value %d out of int32 range", v)
		}
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
	return int32(v), nil
}

// Int64 converts signed or unsigned integers to int64 while guarding against overflow.
func Int64[T ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64](v T) (int64, error) {
	switch value := any(v).(type) {
	case int:
		return int64(value), nil
	case int32:
		return int64(value), nil
	case int64:
		return value, nil
	case uint:
		if uint64(value) > math.MaxInt64 {
			return 0, fmt.Errorf("value %d out of int64 range", v)
		}
		return int64(value), nil
	case uint32:
		return int64(value), nil
	case uint64:
		if value > math.MaxInt64 {
			return 0, fmt.Errorf("value %d out of int64 range", v)
		}
		return int64(value), nil
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}
