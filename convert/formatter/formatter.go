/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package formatter provides the interface and common utilities for token formatters.
package formatter

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"time"
	"unicode"

	"bennypowers.dev/angel/token"
)

// Default option values.
const (
	DefaultTitle      = "Angel Design Tokens"
	DefaultObjectName = "AngelTokens"
)

// Formatter defines the interface for output formatters.
type Formatter interface {
	// Format converts tokens to the target format. Tokens arrive in
	// collection order and are rendered in that order.
	Format(tokens []*token.Token, opts Options) ([]byte, error)
}

// Options configures formatter behavior.
type Options struct {
	// Title opens the generated banner. Defaults to DefaultTitle.
	Title string

	// ObjectName names the root function or namespace in script outputs.
	// Defaults to DefaultObjectName.
	ObjectName string

	// Prefix is added to output variable names.
	Prefix string

	// ResourceType forces the element name of Android resources.
	ResourceType string

	// Selector wraps CSS custom properties. Empty means ":root".
	Selector string

	// OutputReferences renders references to tokens in the same output
	// as variable references instead of literals, where the format can.
	OutputReferences bool

	// Now stamps the banner. Defaults to time.Now.
	Now func() time.Time
}

// TitleOrDefault returns the banner title.
func (o Options) TitleOrDefault() string {
	if o.Title == "" {
		return DefaultTitle
	}
	return o.Title
}

// ObjectNameOrDefault returns the root object name.
func (o Options) ObjectNameOrDefault() string {
	if o.ObjectName == "" {
		return DefaultObjectName
	}
	return o.ObjectName
}

// Banner returns the generation notice for an output, uncommented.
func (o Options) Banner(label string) string {
	now := time.Now
	if o.Now != nil {
		now = o.Now
	}
	return o.TitleOrDefault() + " - " + label + "\n" +
		"Auto-generated - DO NOT EDIT\n" +
		"Generated: " + now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

// ApplyPrefix adds a prefix to a name with the given delimiter.
func ApplyPrefix(name, prefix, delimiter string) string {
	if prefix == "" {
		return name
	}
	return prefix + delimiter + name
}

// ApplyPrefixCamel applies a prefix in camelCase style.
func ApplyPrefixCamel(name, prefix string) string {
	if prefix == "" {
		return name
	}
	if name == "" {
		return ToCamelCase(prefix)
	}
	return ToCamelCase(prefix) + strings.ToUpper(name[:1]) + name[1:]
}

// ToCamelCase converts a string to camelCase.
func ToCamelCase(s string) string {
	words := SplitIntoWords(s)
	if len(words) == 0 {
		return ""
	}

	result := strings.ToLower(words[0])
	for i := 1; i < len(words); i++ {
		if len(words[i]) > 0 {
			result += strings.ToUpper(words[i][:1]) + strings.ToLower(words[i][1:])
		}
	}
	return result
}

// ToPascalCase converts a string to PascalCase.
func ToPascalCase(s string) string {
	words := SplitIntoWords(s)
	var result string
	for _, word := range words {
		if len(word) > 0 {
			result += strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}
	return result
}

// ToSnakeCase converts a string to snake_case.
func ToSnakeCase(s string) string {
	words := SplitIntoWords(s)
	return strings.ToLower(strings.Join(words, "_"))
}

// ToKebabCase converts a string to kebab-case.
func ToKebabCase(s string) string {
	words := SplitIntoWords(s)
	return strings.ToLower(strings.Join(words, "-"))
}

// SplitIntoWords splits a string on hyphens, underscores, dots, and camelCase boundaries.
func SplitIntoWords(s string) []string {
	var words []string
	var current strings.Builder

	for i, r := range s {
		if r == '-' || r == '_' || r == '.' || r == ' ' {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
		} else if unicode.IsUpper(r) && i > 0 {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
			current.WriteRune(r)
		} else {
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// IsIdentifier reports whether s is a valid JavaScript identifier
// (ASCII subset).
func IsIdentifier(s string) bool {
	return identifierPattern.MatchString(s)
}

// Identifier rewrites s into a valid identifier: characters outside
// [A-Za-z0-9_$] become "_", and a leading digit gains a "_" prefix.
func Identifier(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$') {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('_')
		}
	}
	out := sb.String()
	if out == "" || (out[0] >= '0' && out[0] <= '9') {
		out = "_" + out
	}
	return out
}

// JSONLiteral renders v as JSON without HTML escaping.
func JSONLiteral(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return `""`
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// QuoteSingle renders s as a single-quoted script string.
func QuoteSingle(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", `\'`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return "'" + s + "'"
}

// EscapeXML escapes special XML characters.
func EscapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
