/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
)

// CloneValue deep copies maps and slices inside a token value.
// Scalars are returned as is.
func CloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[k] = CloneValue(child)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = CloneValue(child)
		}
		return out
	default:
		return v
	}
}

// Walk calls fn for every string inside value, depth first.
// Map keys are visited in sorted order.
func Walk(value any, fn func(string)) {
	switch val := value.(type) {
	case string:
		fn(val)
	case map[string]any:
		for _, k := range slices.Sorted(maps.Keys(val)) {
			Walk(val[k], fn)
		}
	case []any:
		for _, child := range val {
			Walk(child, fn)
		}
	}
}

// MapStrings returns a copy of value with fn applied to every string inside it.
func MapStrings(value any, fn func(string) (any, error)) (any, error) {
	switch val := value.(type) {
	case string:
		return fn(val)
	case map[string]any:
		out := make(map[string]any, len(val))
		for _, k := range slices.Sorted(maps.Keys(val)) {
			v, err := MapStrings(val[k], fn)
			if err != nil {
				return nil, err
			}
			out[k] = v
		}
		return out, nil
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			v, err := MapStrings(child, fn)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	default:
		return value, nil
	}
}

// FormatNumber renders a float without trailing zeros or exponent.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Stringify renders a scalar value the way it reads in source.
// Composite values render as compact JSON.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return FormatNumber(val)
	case int:
		return strconv.Itoa(val)
	case bool:
		return strconv.FormatBool(val)
	case map[string]any, []any:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(data)
	default:
		return fmt.Sprint(val)
	}
}
