package cast

import (
	"fmt"

	"github.com/spf13/cast"
	"go.dw1.io/safemath"
)

// Int converts v to an int.
func Int(v any) (int, error) {
	if isIntVal(v) {
		return safemath.ConvertAny[int](v)
	}

	return cast.ToIntE(v)
}

// Bool converts v to a bool.
func Bool(v any) (bool, error) {
	return cast.ToBoolE(v)
}

// String converts v to a string. Nil and composite values are errors.
func String(v any) (string, error) {
	switch v.(type) {
	case nil, map[string]any, []any:
		return "", fmt.Errorf("unable to cast %#v of type %T to string", v, v)
	}

	return cast.ToStringE(v)
}

// Slice converts v to a []any.
func Slice(v any) ([]any, error) {
	return cast.ToSliceE(v)
}

// StringMap converts v to a map[string]any.
func StringMap(v any) (map[string]any, error) {
	return cast.ToStringMapE(v)
}

// isIntVal reports whether v's dynamic type is one of the integer types
// eligible for safemath conversions.
func isIntVal(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return true
	default:
		return false
	}
}
