/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package scss provides SCSS variable formatting for design tokens.
package scss

import (
	"fmt"
	"strings"

	"bennypowers.dev/angel/convert/formatter"
	"bennypowers.dev/angel/convert/formatter/css"
	"bennypowers.dev/angel/schema"
	"bennypowers.dev/angel/token"
)

// Formatter outputs SCSS variables.
type Formatter struct{}

// New creates a new SCSS formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts tokens to SCSS variable declarations. Two tokens whose
// variable names coincide are an error.
func (f *Formatter) Format(tokens []*token.Token, opts formatter.Options) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(formatter.FormatHeader(opts.Banner("SCSS"), formatter.SCSSComments))

	index := formatter.Index(tokens)
	names := make(map[string]string, len(tokens))
	for _, tok := range tokens {
		name := VariableName(tok, opts.Prefix)
		if other, dup := names[name]; dup {
			return nil, fmt.Errorf("%w: %s and %s both render as %s", schema.ErrNameCollision, other, tok.DotPath(), name)
		}
		names[name] = tok.DotPath()

		value := css.ToCSSValue(tok.Type, tok.Value)
		if opts.OutputReferences {
			if ref, ok := formatter.ReferenceValue(tok, index, func(target *token.Token) string {
				return VariableName(target, opts.Prefix)
			}); ok {
				value = ref
			}
		}
		fmt.Fprintf(&sb, "%s: %s;\n", name, value)
	}

	return []byte(sb.String()), nil
}

// VariableName returns the SCSS variable name for a token.
func VariableName(tok *token.Token, prefix string) string {
	return "$" + formatter.ApplyPrefix(tok.Name, prefix, "-")
}
