/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package brightscript provides Roku BrightScript formatting for design tokens:
// a function returning one associative array literal.
package brightscript

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"bennypowers.dev/angel/convert/formatter"
	"bennypowers.dev/angel/schema"
	"bennypowers.dev/angel/token"
)

// Formatter outputs a BrightScript function returning an associative array.
type Formatter struct{}

// New creates a new BrightScript formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts tokens to a BrightScript source file.
func (f *Formatter) Format(tokens []*token.Token, opts formatter.Options) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(formatter.FormatHeader(opts.Banner("BrightScript"), formatter.BrightScriptComments))

	fmt.Fprintf(&sb, "function %s() as object\n", formatter.Identifier(opts.ObjectNameOrDefault()))
	sb.WriteString("    return {\n")

	// BrightScript keys are case-insensitive.
	seen := make(map[string]string, len(tokens))
	for _, tok := range tokens {
		key := formatter.Identifier(tok.Name)
		folded := strings.ToLower(key)
		if other, dup := seen[folded]; dup {
			return nil, fmt.Errorf("%w: %s and %s both render as %s", schema.ErrNameCollision, other, tok.DotPath(), key)
		}
		seen[folded] = tok.DotPath()

		fmt.Fprintf(&sb, "        %s: %s\n", key, Literal(tok.Value))
	}

	sb.WriteString("    }\n")
	sb.WriteString("end function\n")
	return []byte(sb.String()), nil
}

// Literal renders a value as BrightScript. Strings are quoted unless they
// already start with a quote; numbers and booleans are bare; composites
// become associative array and array literals.
func Literal(v any) string {
	switch val := v.(type) {
	case nil:
		return "invalid"
	case string:
		if strings.HasPrefix(val, `"`) {
			return val
		}
		return quote(val)
	case float64:
		return token.FormatNumber(val)
	case bool:
		return strconv.FormatBool(val)
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = Literal(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]any:
		keys := slices.Sorted(maps.Keys(val))
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = formatter.Identifier(k) + ": " + Literal(val[k])
		}
		return "{ " + strings.Join(parts, ", ") + " }"
	default:
		return quote(token.Stringify(val))
	}
}

// quote doubles embedded quotes, the BrightScript escape.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
