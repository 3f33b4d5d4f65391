/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package android provides Android XML resource formatting for design tokens.
package android

import (
	"fmt"
	"strings"

	"bennypowers.dev/angel/convert/formatter"
	"bennypowers.dev/angel/schema"
	"bennypowers.dev/angel/token"
)

// Formatter outputs Android-style XML resources.
type Formatter struct {
	// colorsOnly forces every element to <color>, as in colors.xml.
	colorsOnly bool
}

// New creates a resources formatter. Element names come from
// Options.ResourceType or, when that is empty, from each token's type.
func New() *Formatter {
	return &Formatter{}
}

// NewColors creates a formatter that emits only <color> elements.
func NewColors() *Formatter {
	return &Formatter{colorsOnly: true}
}

// Format converts tokens to Android XML resource format.
func (f *Formatter) Format(tokens []*token.Token, opts formatter.Options) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="utf-8"?>`)
	sb.WriteByte('\n')
	sb.WriteString(formatter.FormatHeader(opts.Banner("Android"), formatter.XMLComments))
	sb.WriteString("<resources>\n")

	names := make(map[string]string, len(tokens))
	for _, tok := range tokens {
		name := formatter.ApplyPrefix(tok.Name, opts.Prefix, "_")
		if other, dup := names[name]; dup {
			return nil, fmt.Errorf("%w: %s and %s both render as %q", schema.ErrNameCollision, other, tok.DotPath(), name)
		}
		names[name] = tok.DotPath()

		tag := f.element(tok, opts.ResourceType)
		fmt.Fprintf(&sb, "  <%s name=\"%s\">%s</%s>\n",
			tag, formatter.EscapeXML(name), formatter.EscapeXML(token.Stringify(tok.Value)), tag)
	}

	sb.WriteString("</resources>\n")
	return []byte(sb.String()), nil
}

func (f *Formatter) element(tok *token.Token, resourceType string) string {
	if f.colorsOnly {
		return "color"
	}
	if resourceType != "" {
		return resourceType
	}
	return ElementForType(tok.Type)
}

// ElementForType maps a token type to its Android resource element.
func ElementForType(tokenType string) string {
	switch tokenType {
	case token.TypeColor:
		return "color"
	case token.TypeDimension:
		return "dimen"
	case token.TypeNumber, token.TypeFontWeight:
		return "integer"
	default:
		return "string"
	}
}
