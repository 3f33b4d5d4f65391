/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package breaking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/angel/breaking"
	"bennypowers.dev/angel/internal/mapfs"
	"bennypowers.dev/angel/schema"
)

func newFS(files map[string]string) *mapfs.MapFileSystem {
	mfs := mapfs.New()
	for path, content := range files {
		mfs.AddFile(path, content, 0o644)
	}
	return mfs
}

func TestCheck_Removal(t *testing.T) {
	mfs := newFS(map[string]string{
		"/baseline/tokens.json": `{"a": {"value": 1, "type": "number"}, "b": {"value": 2, "type": "number"}}`,
		"/current/tokens.json":  `{"a": {"value": 1, "type": "number"}}`,
	})

	report, err := breaking.Check(mfs, "/baseline", "/current")
	require.NoError(t, err)

	require.Len(t, report.Removed, 1)
	assert.Equal(t, "b", report.Removed[0].Path)
	assert.Empty(t, report.Added)
	assert.True(t, report.Breaking())
	assert.Equal(t, 2, report.Baseline)
	assert.Equal(t, 1, report.Current)
}

func TestCheck_Addition(t *testing.T) {
	mfs := newFS(map[string]string{
		"/baseline/tokens.json": `{"a": {"value": 1, "type": "number"}}`,
		"/current/tokens.json":  `{"a": {"value": 1, "type": "number"}, "c": {"value": 3, "type": "number"}}`,
	})

	report, err := breaking.Check(mfs, "/baseline", "/current")
	require.NoError(t, err)

	require.Len(t, report.Added, 1)
	assert.Equal(t, "c", report.Added[0].Path)
	assert.EqualValues(t, 3, report.Added[0].Value)
	assert.False(t, report.Breaking())
	assert.True(t, report.Changed())
}

func TestCheck_NoBaseline(t *testing.T) {
	mfs := newFS(map[string]string{"/tokens/a.json": `{}`})
	_, err := breaking.Check(mfs, "/tokens-baseline", "/tokens")
	assert.ErrorIs(t, err, breaking.ErrNoBaseline)
}

func TestCompare_RenamesAndTypeChanges(t *testing.T) {
	mfs := newFS(map[string]string{
		"/baseline/color.json": `{
			"color": {
				"type": "color",
				"primary_hover": {"value": "#16b087"},
				"accent": {"value": "#ff0000"}
			}
		}`,
		"/baseline/spacing.json": `{"spacing": {"md": {"value": 16, "type": "number"}}}`,
		"/current/color.json": `{
			"color": {
				"primary_hovered": {"value": "#16b087", "type": "color"},
				"accent": {"value": "#ff0000", "type": "color"}
			}
		}`,
		"/current/spacing.json": `{"spacing": {"md": {"value": "16px", "type": "dimension"}, "mx": {"value": 4, "type": "number"}}}`,
		"/current/$themes.json": `{"ignored": {"value": 1, "type": "number"}}`,
	})

	report, err := breaking.Check(mfs, "/baseline", "/current")
	require.NoError(t, err)

	require.Len(t, report.Removed, 1)
	assert.Equal(t, "color.primary_hover", report.Removed[0].Path)
	assert.Equal(t, "color.primary_hovered", report.Removed[0].RenamedTo)

	require.Len(t, report.Renames, 1)
	assert.InDelta(t, 19.0/21.0, report.Renames[0].Similarity, 1e-9)

	require.Len(t, report.TypeChanged, 1)
	assert.Equal(t, breaking.TypeChange{Path: "spacing.md", From: "number", To: "dimension"}, report.TypeChanged[0])

	var added []string
	for _, e := range report.Added {
		added = append(added, e.Path)
	}
	assert.Equal(t, []string{"color.primary_hovered", "spacing.mx"}, added)
	assert.True(t, report.Breaking())
}

func TestLoad_LaterFilesWin(t *testing.T) {
	mfs := newFS(map[string]string{
		"/tokens/a.json": `{"x": {"value": 1, "type": "number"}, "y": {"value": 2, "type": "number"}}`,
		"/tokens/b.json": `{"x": {"value": "1px", "type": "dimension"}}`,
	})

	snap, err := breaking.Load(mfs, "/tokens")
	require.NoError(t, err)
	require.Equal(t, 2, snap.Len())

	entries := snap.Entries()
	assert.Equal(t, "x", entries[0].Path)
	assert.Equal(t, "dimension", entries[0].Type)
	assert.Equal(t, "y", entries[1].Path)
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"", "", 1},
		{"abc", "abc", 1},
		{"abcd", "abce", 0.75},
		{"abc", "xyz", 0},
	}
	for _, tt := range tests {
		t.Run(tt.a+"|"+tt.b, func(t *testing.T) {
			assert.InDelta(t, tt.want, breaking.Similarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestLoad_Comments(t *testing.T) {
	mfs := newFS(map[string]string{
		"/tokens/a.json": `{
  // brand
  "color": {
    "$type": "color",
    "primary": {"$value": "#16b087"}, /* main */
  },
}`,
	})

	snap, err := breaking.Load(mfs, "/tokens")
	require.NoError(t, err)

	entry, ok := snap.Lookup("color.primary")
	require.True(t, ok)
	assert.Equal(t, "color", entry.Type)
	assert.Equal(t, "#16b087", entry.Value)
}

func TestLoad_MalformedFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"truncated", `{"b": {"value": 2, "type": "number"`},
		{"not json", `not json {`},
		{"array root", `[1, 2]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mfs := newFS(map[string]string{
				"/tokens/a.json": `{"a": {"value": 1, "type": "number"}}`,
				"/tokens/b.json": tt.content,
			})
			_, err := breaking.Load(mfs, "/tokens")
			assert.ErrorIs(t, err, schema.ErrInvalidDocument)
			assert.ErrorContains(t, err, "b.json")
		})
	}
}

func TestCheck_MalformedBaselineFails(t *testing.T) {
	mfs := newFS(map[string]string{
		"/baseline/a.json": `{"a": {"value": 1, "type": "number"}}`,
		"/baseline/b.json": `{"b": {"value": 2, "type": "num`,
		"/current/a.json":  `{"a": {"value": 1, "type": "number"}}`,
	})

	report, err := breaking.Check(mfs, "/baseline", "/current")
	assert.ErrorIs(t, err, schema.ErrInvalidDocument)
	assert.Nil(t, report)
}
