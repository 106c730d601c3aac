package resolver

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/agentstation/storecat/pkg/constants"
)

var (
	errNil   = errors.New("nil value")
	errEmpty = errors.New("empty string")
	errType  = errors.New("unexpected type")
)

// ToString accepts strings and scalar values with a string form.
func ToString(v any) (string, error) {
	if v == nil {
		return "", errNil
	}
	return cast.ToStringE(v)
}

// ToInt converts numbers, numeric strings and booleans to int. Floats
// are truncated toward zero. Strings are read in base 10, so leading
// zeros do not select octal.
func ToInt(v any) (int, error) {
	switch x := v.(type) {
	case nil:
		return 0, errNil
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, errEmpty
		}
		return strconv.Atoi(s)
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, errType
		}
	}
	return cast.ToIntE(v)
}

// ToFloat converts numbers and numeric strings to float64.
func ToFloat(v any) (float64, error) {
	switch x := v.(type) {
	case nil:
		return 0, errNil
	case string:
		if strings.TrimSpace(x) == "" {
			return 0, errEmpty
		}
		return cast.ToFloat64E(strings.TrimSpace(x))
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errType
	}
	return f, nil
}

// ToDate parses a YYYY-MM-DD string into a UTC calendar date.
func ToDate(v any) (time.Time, error) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, errType
	}
	return time.Parse(constants.DateLayout, s)
}

// ToStrings accepts a JSON array and keeps its string elements in order.
func ToStrings(v any) ([]string, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, errType
	}
	out := make([]string, 0, len(arr))
	for _, e := range arr {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out, nil
}
