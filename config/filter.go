/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"fmt"
	"slices"

	"bennypowers.dev/angel/schema"
	"bennypowers.dev/angel/token"
)

// Named output filters.
const (
	FilterAll        = "all"
	FilterColor      = "color"
	FilterDimension  = "dimension"
	FilterTypography = "typography"
)

var typographyTypes = []string{
	token.TypeTypography,
	token.TypeFontFamily,
	token.TypeFontFamilies,
	token.TypeFontWeight,
	token.TypeFontWeights,
	token.TypeFontSizes,
	token.TypeLineHeights,
	token.TypeLetterSpacing,
	token.TypeParagraphSpacing,
	token.TypeTextCase,
	token.TypeTextDecoration,
}

// ParseFilter returns the predicate for a named filter. An empty name
// selects every token.
func ParseFilter(name string) (func(*token.Token) bool, error) {
	switch name {
	case "", FilterAll:
		return nil, nil
	case FilterColor:
		return func(t *token.Token) bool { return t.Type == token.TypeColor }, nil
	case FilterDimension:
		return func(t *token.Token) bool { return token.IsSize(t.Type) }, nil
	case FilterTypography:
		return func(t *token.Token) bool { return slices.Contains(typographyTypes, t.Type) }, nil
	default:
		return nil, fmt.Errorf("%w: %q", schema.ErrUnknownFilter, name)
	}
}
