/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package css_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/angel/convert/formatter"
	"bennypowers.dev/angel/convert/formatter/css"
	"bennypowers.dev/angel/schema"
	"bennypowers.dev/angel/testutil"
	"bennypowers.dev/angel/token"
)

func fixedNow() time.Time {
	return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
}

func newToken(path, typ string, value, raw any) *token.Token {
	p := strings.Split(path, ".")
	return &token.Token{Name: strings.Join(p, "-"), Path: p, Type: typ, Value: value, RawValue: raw}
}

func sampleTokens() []*token.Token {
	shadow := map[string]any{"x": 0.0, "y": 2.0, "blur": 4.0, "color": "rgba(0, 0, 0, 0.25)"}
	return []*token.Token{
		newToken("color.base.green", "color", "#16b087", "#16b087"),
		newToken("color.brand.primary", "color", "#16b087", "{color.base.green}"),
		newToken("spacing.md", "number", "16px", 16.0),
		newToken("spacing.lg", "number", "16px", "{spacing.md}"),
		newToken("font.family.base", "fontFamily", "Open Sans", "Open Sans"),
		newToken("shadow.sm", "shadow", shadow, shadow),
	}
}

func TestFormat_OutputReferences(t *testing.T) {
	out, err := css.New().Format(sampleTokens(), formatter.Options{
		Now:              fixedNow,
		OutputReferences: true,
	})
	require.NoError(t, err)
	testutil.CheckGolden(t, "formatter/css/expected.css", out)
}

func TestFormat_Literals(t *testing.T) {
	out, err := css.New().Format(sampleTokens(), formatter.Options{Now: fixedNow})
	require.NoError(t, err)
	assert.Contains(t, string(out), "  --color-brand-primary: #16b087;\n")
	assert.Contains(t, string(out), "  --spacing-lg: 16px;\n")
}

func TestFormat_ReferenceOutsideOutputRendersLiteral(t *testing.T) {
	tokens := sampleTokens()[1:2]
	out, err := css.New().Format(tokens, formatter.Options{Now: fixedNow, OutputReferences: true})
	require.NoError(t, err)
	assert.Contains(t, string(out), "  --color-brand-primary: #16b087;\n")
}

func TestFormat_SelectorAndPrefix(t *testing.T) {
	out, err := css.New().Format(sampleTokens()[:1], formatter.Options{Now: fixedNow, Prefix: "angel", Selector: ":host"})
	require.NoError(t, err)
	assert.Contains(t, string(out), ":host {\n  --angel-color-base-green: #16b087;\n}\n")
}

func TestFormat_Deterministic(t *testing.T) {
	opts := formatter.Options{Now: fixedNow, OutputReferences: true}
	a, err := css.New().Format(sampleTokens(), opts)
	require.NoError(t, err)
	b, err := css.New().Format(sampleTokens(), opts)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestToCSSValue(t *testing.T) {
	tests := []struct {
		name      string
		tokenType string
		value     any
		expected  string
	}{
		{"cubic bezier", token.TypeCubicBezier, []any{0.25, 0.1, 0.25, 1.0}, "cubic-bezier(0.25, 0.1, 0.25, 1)"},
		{"font family with space", token.TypeFontFamily, "Open Sans", `"Open Sans"`},
		{"font family quoted", token.TypeFontFamily, `"Roboto"`, `"Roboto"`},
		{"font family list", token.TypeFontFamilies, []any{"Open Sans", "sans-serif"}, `"Open Sans", sans-serif`},
		{"number", token.TypeNumber, 1.5, "1.5"},
		{"typography", token.TypeTypography, map[string]any{
			"fontFamily": "Roboto", "fontWeight": 700.0, "fontSize": 16.0, "lineHeight": 1.5,
		}, "700 16px/1.5 Roboto"},
		{"border", token.TypeBorder, map[string]any{"width": 1.0, "style": "solid", "color": "#000"}, "1px solid #000"},
		{"inner shadow", "boxShadow", map[string]any{"x": 0.0, "y": 1.0, "color": "#000", "type": "innerShadow"}, "inset 0 1px #000"},
		{"shadow layers", token.TypeShadow, []any{
			map[string]any{"x": 0.0, "y": 1.0, "color": "#000"},
			map[string]any{"x": 0.0, "y": 2.0, "color": "#111"},
		}, "0 1px #000, 0 2px #111"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, css.ToCSSValue(tt.tokenType, tt.value))
		})
	}
}

func TestFormat_NameCollision(t *testing.T) {
	tokens := []*token.Token{
		newToken("a.b-c", "string", "x", "x"),
		newToken("a-b.c", "string", "y", "y"),
	}
	_, err := css.New().Format(tokens, formatter.Options{Now: fixedNow})
	require.ErrorIs(t, err, schema.ErrNameCollision)
	assert.ErrorContains(t, err, "--a-b-c")
}
