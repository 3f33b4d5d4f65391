/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/angel/token"
)

func TestToken_DotPathAndReference(t *testing.T) {
	tok := &token.Token{Path: []string{"color", "brand", "primary"}}
	assert.Equal(t, "color.brand.primary", tok.DotPath())
	assert.Equal(t, "{color.brand.primary}", tok.Reference())
	assert.Equal(t, "color", tok.Category())
}

func TestToken_CloneIsDeep(t *testing.T) {
	orig := &token.Token{
		Path:  []string{"shadow", "sm"},
		Value: map[string]any{"x": 1.0, "layers": []any{"a"}},
	}
	c := orig.Clone()
	c.Path[0] = "changed"
	c.Value.(map[string]any)["x"] = 2.0
	c.Value.(map[string]any)["layers"].([]any)[0] = "b"

	assert.Equal(t, "shadow", orig.Path[0])
	assert.Equal(t, 1.0, orig.Value.(map[string]any)["x"])
	assert.Equal(t, "a", orig.Value.(map[string]any)["layers"].([]any)[0])
}

func TestIsKnownType(t *testing.T) {
	assert.True(t, token.IsKnownType("color"))
	assert.True(t, token.IsKnownType("paragraphSpacing"))
	assert.False(t, token.IsKnownType("colour"))
	assert.Len(t, token.KnownTypes, 24)
}

func TestReferences(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		whole     string
		wholeOK   bool
		refsPaths []string
	}{
		{"whole", "{color.base.green}", "color.base.green", true, []string{"color.base.green"}},
		{"padded whole", " { color.base } ", "color.base", true, []string{"color.base"}},
		{"embedded", "{size.1} solid {color.line}", "", false, []string{"size.1", "color.line"}},
		{"literal", "#16b087", "", false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			whole, ok := token.WholeReference(tt.value)
			assert.Equal(t, tt.wholeOK, ok)
			assert.Equal(t, tt.whole, whole)

			var paths []string
			for _, ref := range token.ExtractAllRefs(tt.value) {
				paths = append(paths, ref.Path)
			}
			assert.Equal(t, tt.refsPaths, paths)
		})
	}
}

func TestFindReferences_Composite(t *testing.T) {
	value := map[string]any{
		"color": "{color.shadow}",
		"x":     0.0,
		"y":     "{size.1}",
	}
	refs := token.FindReferences(value)
	require.Len(t, refs, 2)
	assert.Equal(t, "color.shadow", refs[0].Path)
	assert.Equal(t, "size.1", refs[1].Path)
	assert.True(t, token.ContainsReference([]any{"plain", value}))
	assert.False(t, token.ContainsReference(map[string]any{"a": "b"}))
}

func TestValidPath(t *testing.T) {
	assert.True(t, token.ValidPath("color.brand"))
	assert.False(t, token.ValidPath(""))
	assert.False(t, token.ValidPath("color..brand"))
	assert.False(t, token.ValidPath("color. brand"))
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "16", token.Stringify(16.0))
	assert.Equal(t, "0.5", token.Stringify(0.5))
	assert.Equal(t, "true", token.Stringify(true))
	assert.Equal(t, "abc", token.Stringify("abc"))
	assert.Equal(t, `{"a":1}`, token.Stringify(map[string]any{"a": 1.0}))
}

func TestCollection_LastWinsKeepsPosition(t *testing.T) {
	c := token.NewCollection(
		&token.Token{Path: []string{"a"}, Value: "1"},
		&token.Token{Path: []string{"b"}, Value: "2"},
	)
	replaced := c.Add(&token.Token{Path: []string{"a"}, Value: "3"})
	assert.True(t, replaced)

	toks := c.Tokens()
	require.Len(t, toks, 2)
	assert.Equal(t, "a", toks[0].DotPath())
	assert.Equal(t, "3", toks[0].Value)
	assert.Equal(t, "b", toks[1].DotPath())

	tok, ok := c.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "3", tok.Value)
}

func TestCollection_FilterAndClone(t *testing.T) {
	c := token.NewCollection(
		&token.Token{Path: []string{"color", "a"}, Type: "color", Value: "#fff"},
		&token.Token{Path: []string{"size", "a"}, Type: "number", Value: 4.0},
	)

	colors := c.Filter(func(tok *token.Token) bool { return tok.Type == "color" })
	assert.Equal(t, 1, colors.Len())

	clone := c.Clone()
	tok, _ := clone.Lookup("size.a")
	tok.Value = 8.0
	orig, _ := c.Lookup("size.a")
	assert.Equal(t, 4.0, orig.Value)
}

func TestReplaceRefs(t *testing.T) {
	got, err := token.ReplaceRefs("{size.1} solid {color.line}", func(path string) (string, error) {
		return "<" + path + ">", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "<size.1> solid <color.line>", got)
}
