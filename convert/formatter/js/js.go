/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package js provides JavaScript module formatting for design tokens:
// one exported constant per token.
package js

import (
	"fmt"
	"strings"

	"bennypowers.dev/angel/convert/formatter"
	"bennypowers.dev/angel/schema"
	"bennypowers.dev/angel/token"
)

// Module specifies the JavaScript module system.
type Module string

const (
	// ModuleESM uses ES Modules (default).
	ModuleESM Module = "esm"
	// ModuleCJS uses CommonJS.
	ModuleCJS Module = "cjs"
)

// Options configures the JS formatter.
type Options struct {
	// Module specifies the module format: "esm" (default), "cjs".
	Module Module
}

// Formatter outputs JavaScript constants.
type Formatter struct {
	opts Options
}

// New creates a new JS formatter emitting ES module exports.
func New() *Formatter {
	return &Formatter{opts: Options{Module: ModuleESM}}
}

// NewWithOptions creates a JS formatter with the given options.
func NewWithOptions(opts Options) *Formatter {
	if opts.Module == "" {
		opts.Module = ModuleESM
	}
	return &Formatter{opts: opts}
}

// Format converts tokens to a JavaScript module. Values render as JSON
// literals, so strings are double quoted and numbers bare.
func (f *Formatter) Format(tokens []*token.Token, opts formatter.Options) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(formatter.FormatHeader(opts.Banner("JavaScript"), formatter.CStyleComments))

	seen := make(map[string]string, len(tokens))
	for _, tok := range tokens {
		name := formatter.Identifier(formatter.ApplyPrefixCamel(tok.Name, opts.Prefix))
		if other, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: %s and %s both render as %s", schema.ErrNameCollision, other, tok.DotPath(), name)
		}
		seen[name] = tok.DotPath()

		if tok.Description != "" {
			fmt.Fprintf(&sb, "/** %s */\n", strings.ReplaceAll(tok.Description, "*/", "* /"))
		}
		value := formatter.JSONLiteral(tok.Value)
		if f.opts.Module == ModuleCJS {
			fmt.Fprintf(&sb, "exports.%s = %s;\n", name, value)
		} else {
			fmt.Fprintf(&sb, "export const %s = %s;\n", name, value)
		}
	}

	return []byte(sb.String()), nil
}
