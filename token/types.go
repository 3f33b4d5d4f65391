/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "slices"

// Token types.
const (
	TypeColor            = "color"
	TypeNumber           = "number"
	TypeDimension        = "dimension"
	TypeFontFamily       = "fontFamily"
	TypeFontWeight       = "fontWeight"
	TypeDuration         = "duration"
	TypeCubicBezier      = "cubicBezier"
	TypeShadow           = "shadow"
	TypeBorder           = "border"
	TypeGradient         = "gradient"
	TypeTypography       = "typography"
	TypeSpacing          = "spacing"
	TypeBorderRadius     = "borderRadius"
	TypeBorderWidth      = "borderWidth"
	TypeOpacity          = "opacity"
	TypeSizing           = "sizing"
	TypeFontFamilies     = "fontFamilies"
	TypeFontSizes        = "fontSizes"
	TypeFontWeights      = "fontWeights"
	TypeLineHeights      = "lineHeights"
	TypeLetterSpacing    = "letterSpacing"
	TypeParagraphSpacing = "paragraphSpacing"
	TypeTextCase         = "textCase"
	TypeTextDecoration   = "textDecoration"
)

// KnownTypes is the closed set of token types.
var KnownTypes = []string{
	TypeColor,
	TypeNumber,
	TypeDimension,
	TypeFontFamily,
	TypeFontWeight,
	TypeDuration,
	TypeCubicBezier,
	TypeShadow,
	TypeBorder,
	TypeGradient,
	TypeTypography,
	TypeSpacing,
	TypeBorderRadius,
	TypeBorderWidth,
	TypeOpacity,
	TypeSizing,
	TypeFontFamilies,
	TypeFontSizes,
	TypeFontWeights,
	TypeLineHeights,
	TypeLetterSpacing,
	TypeParagraphSpacing,
	TypeTextCase,
	TypeTextDecoration,
}

// IsKnownType reports whether t is in the closed type set.
func IsKnownType(t string) bool {
	return slices.Contains(KnownTypes, t)
}

// IsSize reports whether t is one of the size-like types that
// size transforms act on.
func IsSize(t string) bool {
	return t == TypeNumber || t == TypeDimension
}
