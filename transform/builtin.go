/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import (
	"fmt"
	"strconv"
	"strings"

	"bennypowers.dev/angel/color"
	"bennypowers.dev/angel/convert/formatter"
	"bennypowers.dev/angel/schema"
	"bennypowers.dev/angel/token"
)

// Builtins returns the built-in transforms.
func Builtins() []Transform {
	return []Transform{
		{Name: ColorARGB, Kind: KindValue, Transitive: true, Filter: isColor, Value: argb},
		{Name: ColorHex8, Kind: KindValue, Transitive: true, Filter: isColor, Value: hex8},
		{Name: SizePx, Kind: KindValue, Transitive: true, Filter: isSize, Value: withUnit("px")},
		{Name: SizeDp, Kind: KindValue, Transitive: true, Filter: isSize, Value: withUnit("dp")},
		{Name: SizeSp, Kind: KindValue, Transitive: true, Filter: isFontSize, Value: withUnit("sp")},
		{Name: SizeNumber, Kind: KindValue, Transitive: true, Filter: isSize, Value: toNumber},
		{Name: NameCamel, Kind: KindName, Rename: joinPath(formatter.ToCamelCase)},
		{Name: NameKebab, Kind: KindName, Rename: joinPath(formatter.ToKebabCase)},
		{Name: NameSnake, Kind: KindName, Rename: joinPath(formatter.ToSnakeCase)},
		{Name: NamePascal, Kind: KindName, Rename: joinPath(formatter.ToPascalCase)},
	}
}

func isColor(tok *token.Token) bool {
	return tok.Type == token.TypeColor
}

func isSize(tok *token.Token) bool {
	return token.IsSize(tok.Type)
}

// isFontSize matches paths with a font segment and a size or line height
// segment. One segment may satisfy both ("font_size").
func isFontSize(tok *token.Token) bool {
	var font, size bool
	for _, seg := range tok.Path {
		s := strings.ToLower(seg)
		font = font || strings.Contains(s, "font")
		size = size || strings.Contains(s, "size") ||
			strings.Contains(s, "line_height") || strings.Contains(s, "lineheight")
	}
	return font && size
}

func parseColorValue(tok *token.Token) (color.RGBA, error) {
	s, ok := tok.Value.(string)
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: %v is not a color literal", schema.ErrInvalidColor, tok.Value)
	}
	return color.Parse(s)
}

// argb renders #AARRGGBB.
func argb(tok *token.Token) (any, error) {
	c, err := parseColorValue(tok)
	if err != nil {
		return nil, err
	}
	return "#" + c.ARGBHex(), nil
}

// hex8 renders "0xRRGGBBAA" with the quotes included, ready to drop into
// script source.
func hex8(tok *token.Token) (any, error) {
	c, err := parseColorValue(tok)
	if err != nil {
		return nil, err
	}
	return `"0x` + c.Hex8() + `"`, nil
}

// withUnit suffixes numeric values. Strings pass through.
func withUnit(unit string) func(*token.Token) (any, error) {
	return func(tok *token.Token) (any, error) {
		if f, ok := tok.Value.(float64); ok {
			return token.FormatNumber(f) + unit, nil
		}
		return tok.Value, nil
	}
}

// toNumber coerces numeric strings; anything else passes through.
func toNumber(tok *token.Token) (any, error) {
	s, ok := tok.Value.(string)
	if !ok {
		return tok.Value, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return tok.Value, nil
	}
	return f, nil
}

func joinPath(convert func(string) string) func(*token.Token) string {
	return func(tok *token.Token) string {
		return convert(strings.Join(tok.Path, " "))
	}
}
