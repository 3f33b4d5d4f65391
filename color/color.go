/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package color normalizes authored color literals into RGBA channels
// and renders them in the hex layouts that platform outputs expect.
package color

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/angel/schema"
)

// RGBA holds 8-bit channels. Alpha 255 is fully opaque.
type RGBA struct {
	R, G, B, A int
}

var (
	hexPattern  = regexp.MustCompile(`^(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	rgbaPattern = regexp.MustCompile(`^rgba?\(\s*[^()]+\)$`)
)

// Parse decodes a color literal. Accepted forms are 3, 6 or 8 digit hex,
// with or without a leading "#", and rgb()/rgba() with 0-255 channels and
// a 0-1 alpha. Surrounding quotes and whitespace are ignored.
// Anything else fails with schema.ErrInvalidColor.
func Parse(literal string) (RGBA, error) {
	s := strings.TrimSpace(literal)
	s = strings.TrimSpace(strings.Trim(s, `"'`))

	var input string
	switch lower := strings.ToLower(s); {
	case rgbaPattern.MatchString(lower):
		input = lower
	case hexPattern.MatchString(strings.TrimPrefix(s, "#")):
		input = "#" + strings.TrimPrefix(s, "#")
	default:
		return RGBA{}, fmt.Errorf("%w: %q", schema.ErrInvalidColor, literal)
	}

	c, err := csscolorparser.Parse(input)
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: %q: %v", schema.ErrInvalidColor, literal, err)
	}

	return RGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: channel(c.A),
	}, nil
}

// Valid reports whether literal parses.
func Valid(literal string) bool {
	_, err := Parse(literal)
	return err == nil
}

// Hex8 returns uppercase RRGGBBAA.
func (c RGBA) Hex8() string {
	r, g, b, a := c.clamped()
	return fmt.Sprintf("%02X%02X%02X%02X", r, g, b, a)
}

// ARGBHex returns uppercase AARRGGBB, the layout Android and XAML use.
func (c RGBA) ARGBHex() string {
	r, g, b, a := c.clamped()
	return fmt.Sprintf("%02X%02X%02X%02X", a, r, g, b)
}

// Hex6 returns uppercase RRGGBB, dropping alpha.
func (c RGBA) Hex6() string {
	return strings.ToUpper(strings.TrimPrefix(c.Colorful().Hex(), "#"))
}

// Opaque reports whether alpha is 255.
func (c RGBA) Opaque() bool {
	_, _, _, a := c.clamped()
	return a == 255
}

// AlphaFraction returns alpha scaled to 0-1.
func (c RGBA) AlphaFraction() float64 {
	_, _, _, a := c.clamped()
	return float64(a) / 255
}

// Colorful returns the color channels as a go-colorful value, alpha dropped.
func (c RGBA) Colorful() colorful.Color {
	r, g, b, _ := c.clamped()
	return colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}
}

func (c RGBA) clamped() (r, g, b, a int) {
	return clamp(c.R), clamp(c.G), clamp(c.B), clamp(c.A)
}

func channel(f float64) int {
	return clamp(int(math.Round(f * 255)))
}

func clamp(v int) int {
	return max(0, min(255, v))
}
