/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package css provides CSS custom property formatting for design tokens.
package css

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

// DefaultSelector scopes the custom properties.
const DefaultSelector = ":root"

// Formatter outputs CSS custom properties.
type Formatter struct{}

// New creates a new CSS formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts tokens to a CSS rule of custom properties. Two tokens
// whose property names coincide are an error.
func (f *Formatter) Format(tokens []*token.Token, opts formatter.Options) ([]byte, error) {
	selector := opts.Selector
	if selector == "" {
		selector = DefaultSelector
	}

	var sb strings.Builder
	sb.WriteString(formatter.FormatHeader(opts.Banner("CSS"), formatter.CStyleComments))
	sb.WriteString(selector + " {\n")

	index := formatter.Index(tokens)
	names := make(map[string]string, len(tokens))
	for _, tok := range tokens {
		name := VariableName(tok, opts.Prefix)
		if other, dup := names[name]; dup {
			return nil, fmt.Errorf("%w: %s and %s both render as %s", schema.ErrNameCollision, other, tok.DotPath(), name)
		}
		names[name] = tok.DotPath()

		value := ToCSSValue(tok.Type, tok.Value)
		if opts.OutputReferences {
			if ref, ok := formatter.ReferenceValue(tok, index, func(target *token.Token) string {
				return "var(" + VariableName(target, opts.Prefix) + ")"
			}); ok {
				value = ref
			}
		}
		fmt.Fprintf(&sb, "  %s: %s;\n", name, value)
	}

	sb.WriteString("}\n")
	return []byte(sb.String()), nil
}

// VariableName returns the custom property name for a token.
func VariableName(tok *token.Token, prefix string) string {
	return "--" + formatter.ApplyPrefix(tok.Name, prefix, "-")
}

// ToCSSValue renders a token value as CSS. Composite values of known types
// render as their CSS shorthand.
func ToCSSValue(tokenType string, value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		if isFontFamily(tokenType) {
			return quoteFamily(v)
		}
		return v
	case float64:
		return token.FormatNumber(v)
	case bool:
		return strconv.FormatBool(v)
	case []any:
		return arrayValue(tokenType, v)
	case map[string]any:
		return mapValue(tokenType, v)
	default:
		return token.Stringify(v)
	}
}

func isFontFamily(tokenType string) bool {
	return tokenType == token.TypeFontFamily || tokenType == token.TypeFontFamilies
}

// quoteFamily quotes a single family name containing spaces.
// Lists and already quoted names pass through.
func quoteFamily(name string) string {
	if strings.ContainsAny(name, `,"'`) || !strings.Contains(name, " ") {
		return name
	}
	return `"` + name + `"`
}

func arrayValue(tokenType string, items []any) string {
	if tokenType == token.TypeCubicBezier && len(items) == 4 {
		parts := make([]string, len(items))
		for i, item := range items {
			parts[i] = ToCSSValue(token.TypeNumber, item)
		}
		return "cubic-bezier(" + strings.Join(parts, ", ") + ")"
	}

	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, ToCSSValue(tokenType, item))
	}
	return strings.Join(parts, ", ")
}

func mapValue(tokenType string, m map[string]any) string {
	switch tokenType {
	// boxShadow is the Tokens Studio spelling.
	case token.TypeShadow, "boxShadow":
		return shorthand(m, dimension, "x", "y", "blur", "spread", "color")
	case token.TypeBorder:
		return shorthand(m, dimension, "width", "style", "color")
	case token.TypeTypography:
		size := dimension(m["fontSize"])
		if lh, ok := m["lineHeight"]; ok {
			size += "/" + ToCSSValue(token.TypeNumber, lh)
		}
		return joinNonEmpty(
			ToCSSValue(token.TypeFontWeight, m["fontWeight"]),
			size,
			ToCSSValue(token.TypeFontFamily, m["fontFamily"]),
		)
	}

	parts := make([]string, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		parts = append(parts, ToCSSValue("", m[k]))
	}
	return strings.Join(parts, " ")
}

// shorthand joins the named fields that are present, in order.
// Numbers in fields other than color go through unit.
func shorthand(m map[string]any, unit func(any) string, keys ...string) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		v, ok := m[k]
		if !ok {
			continue
		}
		if k == "color" {
			parts = append(parts, ToCSSValue(token.TypeColor, v))
		} else {
			parts = append(parts, unit(v))
		}
	}
	s := strings.Join(parts, " ")
	if t, _ := m["type"].(string); t == "innerShadow" {
		s = "inset " + s
	}
	return s
}

// dimension renders bare numbers as px; zero stays unitless.
func dimension(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case float64:
		if n == 0 {
			return "0"
		}
		return token.FormatNumber(n) + "px"
	default:
		return ToCSSValue("", v)
	}
}

func joinNonEmpty(parts ...string) string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
