/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package swift provides SwiftUI formatting for design tokens. Tokens are
// grouped into one nested enum per top-level path segment.
package swift

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/angel/color"
	"bennypowers.dev/angel/convert/formatter"
	"bennypowers.dev/angel/schema"
	"bennypowers.dev/angel/token"
)

const colorExtension = `
// MARK: - Color Extension
extension Color {
    init(hex: UInt, alpha: Double = 1) {
        self.init(
            .sRGB,
            red: Double((hex >> 16) & 0xff) / 255,
            green: Double((hex >> 08) & 0xff) / 255,
            blue: Double((hex >> 00) & 0xff) / 255,
            opacity: alpha
        )
    }
}
`

// Formatter outputs a Swift source file.
type Formatter struct{}

// New creates a new Swift formatter.
func New() *Formatter {
	return &Formatter{}
}

type category struct {
	name   string
	tokens []*token.Token
}

// Format converts tokens to a Swift enum namespace.
func (f *Formatter) Format(tokens []*token.Token, opts formatter.Options) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(formatter.FormatHeader(opts.Banner("Swift"), formatter.SCSSComments))
	sb.WriteString("import SwiftUI\n\n")
	fmt.Fprintf(&sb, "public enum %s {\n", formatter.Identifier(opts.ObjectNameOrDefault()))

	for i, cat := range groupByCategory(tokens) {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "    public enum %s {\n", EnumName(cat.name))
		seen := make(map[string]string, len(cat.tokens))
		for _, tok := range cat.tokens {
			name := MemberName(tok)
			if other, dup := seen[name]; dup {
				return nil, fmt.Errorf("%w: %s and %s both render as %s.%s",
					schema.ErrNameCollision, other, tok.DotPath(), EnumName(cat.name), name)
			}
			seen[name] = tok.DotPath()

			decl, err := declaration(tok)
			if err != nil {
				return nil, err
			}
			fmt.Fprintf(&sb, "        public static let %s%s\n", name, decl)
		}
		sb.WriteString("    }\n")
	}

	sb.WriteString("}\n")
	sb.WriteString(colorExtension)
	return []byte(sb.String()), nil
}

// groupByCategory buckets tokens by first path segment, keeping the order
// in which each category is first seen.
func groupByCategory(tokens []*token.Token) []*category {
	var cats []*category
	index := make(map[string]*category)
	for _, tok := range tokens {
		name := tok.Category()
		if name == "" {
			name = "misc"
		}
		cat, ok := index[name]
		if !ok {
			cat = &category{name: name}
			index[name] = cat
			cats = append(cats, cat)
		}
		cat.tokens = append(cat.tokens, tok)
	}
	return cats
}

// EnumName title-cases a category for use as a nested enum name.
// A Caser keeps state between calls, so each call gets its own.
func EnumName(category string) string {
	return formatter.Identifier(cases.Title(language.Und, cases.NoLower).String(category))
}

// MemberName joins the path below the category with underscores.
func MemberName(tok *token.Token) string {
	rest := tok.Path
	if len(rest) > 1 {
		rest = rest[1:]
	}
	return formatter.Identifier(strings.Join(rest, "_"))
}

func declaration(tok *token.Token) (string, error) {
	if tok.Type == token.TypeColor {
		literal, ok := tok.Value.(string)
		if !ok {
			return "", fmt.Errorf("%w: %s has non-string value %v", schema.ErrInvalidColor, tok.DotPath(), tok.Value)
		}
		c, err := color.Parse(literal)
		if err != nil {
			return "", fmt.Errorf("%s: %w", tok.DotPath(), err)
		}
		return " = " + ColorLiteral(c), nil
	}

	switch v := tok.Value.(type) {
	case float64:
		return ": CGFloat = " + token.FormatNumber(v), nil
	default:
		return " = " + strconv.Quote(token.Stringify(v)), nil
	}
}

// ColorLiteral renders a SwiftUI color constructor. Translucent colors carry
// an alpha argument rounded to two decimals.
func ColorLiteral(c color.RGBA) string {
	hex := c.Hex6()
	if c.Opaque() {
		return fmt.Sprintf("SwiftUI.Color(hex: 0x%s)", hex)
	}
	return fmt.Sprintf("SwiftUI.Color(hex: 0x%s, alpha: %.2f)", hex, c.AlphaFraction())
}
