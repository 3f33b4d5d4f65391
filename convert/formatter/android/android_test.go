/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package android_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/angel/convert/formatter"
	"bennypowers.dev/angel/convert/formatter/android"
	"bennypowers.dev/angel/schema"
	"bennypowers.dev/angel/testutil"
	"bennypowers.dev/angel/token"
)

func fixedNow() time.Time {
	return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
}

func newToken(path, typ string, value any) *token.Token {
	p := strings.Split(path, ".")
	return &token.Token{Name: strings.Join(p, "_"), Path: p, Type: typ, Value: value}
}

func TestFormat_Colors(t *testing.T) {
	tokens := []*token.Token{
		newToken("color.brand.primary", token.TypeColor, "#FF16B087"),
		newToken("color.overlay", token.TypeColor, "#80000000"),
	}
	out, err := android.NewColors().Format(tokens, formatter.Options{Now: fixedNow})
	require.NoError(t, err)
	testutil.CheckGolden(t, "formatter/android/colors.xml", out)
}

func TestFormat_ResourceType(t *testing.T) {
	tokens := []*token.Token{
		newToken("spacing.md", token.TypeNumber, "16dp"),
		newToken("font.size.body", token.TypeNumber, "18sp"),
	}
	out, err := android.New().Format(tokens, formatter.Options{Now: fixedNow, ResourceType: "dimen"})
	require.NoError(t, err)
	testutil.CheckGolden(t, "formatter/android/dimens.xml", out)
}

func TestFormat_TypeDerivedElements(t *testing.T) {
	tokens := []*token.Token{
		newToken("color.text", token.TypeColor, "#FF000000"),
		newToken("radius.sm", token.TypeDimension, "4dp"),
		newToken("font.family", token.TypeFontFamily, "Roboto"),
	}
	out, err := android.New().Format(tokens, formatter.Options{Now: fixedNow, Prefix: "angel"})
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, `  <color name="angel_color_text">#FF000000</color>`)
	assert.Contains(t, s, `  <dimen name="angel_radius_sm">4dp</dimen>`)
	assert.Contains(t, s, `  <string name="angel_font_family">Roboto</string>`)
}

func TestFormat_Collision(t *testing.T) {
	tokens := []*token.Token{
		newToken("a.b", token.TypeNumber, 1.0),
		{Name: "a_b", Path: []string{"a_b"}, Type: token.TypeNumber, Value: 2.0},
	}
	_, err := android.New().Format(tokens, formatter.Options{Now: fixedNow})
	assert.ErrorIs(t, err, schema.ErrNameCollision)
}

func TestElementForType(t *testing.T) {
	tests := map[string]string{
		token.TypeColor:      "color",
		token.TypeDimension:  "dimen",
		token.TypeNumber:     "integer",
		token.TypeFontWeight: "integer",
		token.TypeFontFamily: "string",
		"":                   "string",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, android.ElementForType(in))
		})
	}
}
