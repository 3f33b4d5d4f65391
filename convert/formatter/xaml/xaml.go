/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package xaml provides XAML ResourceDictionary formatting for design tokens.
package xaml

import (
	"fmt"
	"strings"

	"bennypowers.dev/angel/convert/formatter"
	"bennypowers.dev/angel/schema"
	"bennypowers.dev/angel/token"
)

const (
	presentationNS = "http://schemas.microsoft.com/winfx/2006/xaml/presentation"
	xamlNS         = "http://schemas.microsoft.com/winfx/2006/xaml"
	systemNS       = "clr-namespace:System;assembly=mscorlib"
)

// Formatter outputs a XAML ResourceDictionary.
type Formatter struct{}

// New creates a new XAML formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts tokens to one keyed resource element each.
func (f *Formatter) Format(tokens []*token.Token, opts formatter.Options) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(formatter.FormatHeader(opts.Banner("XAML"), formatter.XMLComments))
	sb.WriteString("<ResourceDictionary\n")
	fmt.Fprintf(&sb, "    xmlns=%q\n", presentationNS)
	fmt.Fprintf(&sb, "    xmlns:x=%q\n", xamlNS)
	fmt.Fprintf(&sb, "    xmlns:sys=%q>\n", systemNS)

	keys := make(map[string]string, len(tokens))
	for _, tok := range tokens {
		key := formatter.ApplyPrefix(tok.Name, opts.Prefix, "")
		if other, dup := keys[key]; dup {
			return nil, fmt.Errorf("%w: %s and %s both render as x:Key %q", schema.ErrNameCollision, other, tok.DotPath(), key)
		}
		keys[key] = tok.DotPath()

		tag := Element(tok)
		fmt.Fprintf(&sb, "    <%s x:Key=\"%s\">%s</%s>\n",
			tag, formatter.EscapeXML(key), formatter.EscapeXML(token.Stringify(tok.Value)), tag)
	}

	sb.WriteString("</ResourceDictionary>\n")
	return []byte(sb.String()), nil
}

// Element picks the resource element for a token: Color for colors,
// sys:Double for numeric values and sys:String for everything else.
func Element(tok *token.Token) string {
	if tok.Type == token.TypeColor {
		return "Color"
	}
	if _, ok := tok.Value.(float64); ok {
		return "sys:Double"
	}
	return "sys:String"
}
