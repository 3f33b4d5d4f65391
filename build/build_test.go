/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package build_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/angel/build"
	"bennypowers.dev/angel/config"
	"bennypowers.dev/angel/internal/mapfs"
	"bennypowers.dev/angel/schema"
	"bennypowers.dev/angel/testutil"
)

func fixedNow() time.Time {
	return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
}

func newPlanner(t *testing.T, fixture string) (*build.Planner, *mapfs.MapFileSystem) {
	t.Helper()
	mfs := testutil.NewFixtureFS(t, fixture, "/project")
	return &build.Planner{FS: mfs, Root: "/project", Now: fixedNow, Concurrency: 3}, mfs
}

func read(t *testing.T, mfs *mapfs.MapFileSystem, path string) string {
	t.Helper()
	data, err := mfs.ReadFile(path)
	require.NoError(t, err, path)
	return string(data)
}

func TestBuild_DefaultPlatforms(t *testing.T) {
	planner, mfs := newPlanner(t, "build/project")

	result, err := planner.Build(context.Background(), config.Default())
	require.NoError(t, err)

	assert.Equal(t, config.Default().PlatformNames(), result.Platforms)
	assert.Len(t, result.Written, 10)

	tests := []struct {
		path     string
		contains []string
	}{
		{"/project/packages/react-native/src/tokens.ts", []string{
			"export const colorBaseGreen500 = '#16b087';",
			"export const spacingMd = 16;",
			"        '500': colorBaseGreen500\n",
		}},
		{"/project/packages/web/tokens.css", []string{
			":root {",
			"  --spacing-sm: 8px;",
			"  --radius-card: var(--spacing-sm);",
			"  --button-background: var(--color-theme-primary);",
		}},
		{"/project/packages/web/tokens.scss", []string{
			"$spacing-sm: 8px;",
			"$button-background: #16b087;",
		}},
		{"/project/packages/roku/AngelTokens.brs", []string{
			"function AngelTokens() as object",
			`        ColorBaseGreen500: "0x16B087FF"`,
			`        ColorThemeOverlay: "0x00000080"`,
			"        SpacingMd: 16",
		}},
		{"/project/packages/tvos/AngelTokens.swift", []string{
			"        public static let base_green_500 = SwiftUI.Color(hex: 0x16B087)",
			"        public static let theme_overlay = SwiftUI.Color(hex: 0x000000, alpha: 0.50)",
			"        public static let size_body: CGFloat = 16",
			`        public static let family_base = "Open Sans"`,
		}},
		{"/project/packages/android/colors.xml", []string{
			`  <color name="color_base_green_500">#FF16B087</color>`,
			`  <color name="color_theme_overlay">#80000000</color>`,
		}},
		{"/project/packages/android/dimens.xml", []string{
			`  <dimen name="spacing_sm">8dp</dimen>`,
			`  <dimen name="font_size_body">16sp</dimen>`,
		}},
		{"/project/packages/xbox/Tokens.xaml", []string{
			`    <Color x:Key="ColorBaseWhite">#FFFFFFFF</Color>`,
			`    <sys:Double x:Key="ButtonPadding">16</sys:Double>`,
			`    <sys:String x:Key="FontFamilyBase">Open Sans</sys:String>`,
		}},
		{"/project/packages/web-tv/tokens.css", []string{
			"  --font-size-body: 24px;",
		}},
		{"/project/packages/web-tv/tokens.js", []string{
			"export const fontSizeBody = 24;",
			`export const colorThemePrimary = "#16b087";`,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			content := read(t, mfs, tt.path)
			assert.Contains(t, content, "Generated: 2026-01-02T03:04:05.000Z")
			for _, want := range tt.contains {
				assert.Contains(t, content, want)
			}
		})
	}

	colors := read(t, mfs, "/project/packages/android/colors.xml")
	assert.NotContains(t, colors, "spacing", "colors.xml is filtered to color tokens")
	dimens := read(t, mfs, "/project/packages/android/dimens.xml")
	assert.NotContains(t, dimens, "color_", "dimens.xml is filtered to sizes")
}

func TestPlan_OnlySelectedPlatforms(t *testing.T) {
	planner, mfs := newPlanner(t, "build/project")

	plan, err := planner.Plan(context.Background(), config.Default(), "web-tv-js", "roku")
	require.NoError(t, err)
	require.Len(t, plan.Outputs, 2)
	assert.Equal(t, "web-tv-js", plan.Outputs[0].Platform)
	assert.Equal(t, "roku", plan.Outputs[1].Platform)
	assert.Equal(t, 12, plan.Outputs[0].Tokens)

	assert.False(t, mfs.Exists("/project/packages/web-tv/tokens.js"), "Plan must not write")
}

func TestPlan_Deterministic(t *testing.T) {
	planner, _ := newPlanner(t, "build/project")

	first, err := planner.Plan(context.Background(), config.Default())
	require.NoError(t, err)
	second, err := planner.Plan(context.Background(), config.Default())
	require.NoError(t, err)

	require.Len(t, second.Outputs, len(first.Outputs))
	for i := range first.Outputs {
		assert.Equal(t, first.Outputs[i].Path, second.Outputs[i].Path)
		assert.Equal(t, string(first.Outputs[i].Content), string(second.Outputs[i].Content))
	}
}

func TestPlan_UnknownPlatform(t *testing.T) {
	planner, _ := newPlanner(t, "build/project")
	_, err := planner.Plan(context.Background(), config.Default(), "webos")
	assert.ErrorIs(t, err, schema.ErrUnknownPlatform)
}

func TestPlan_UnknownTransform(t *testing.T) {
	planner, _ := newPlanner(t, "build/project")
	cfg := config.Default()
	cfg.Platforms[0].Transforms = append(cfg.Platforms[0].Transforms, "color/rokuHex")

	_, err := planner.Plan(context.Background(), cfg)
	assert.ErrorIs(t, err, schema.ErrUnknownTransform)
}

func TestPlan_DuplicateDestination(t *testing.T) {
	planner, _ := newPlanner(t, "build/project")
	cfg := config.Default()
	cfg.Platforms[2].BuildPath = cfg.Platforms[1].BuildPath
	cfg.Platforms[2].Files[0].Destination = cfg.Platforms[1].Files[0].Destination

	_, err := planner.Plan(context.Background(), cfg, "web-css", "web-scss")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "both write")
}

func TestBuild_FailureWritesNothing(t *testing.T) {
	tests := []struct {
		name    string
		fixture string
		wantErr error
	}{
		{"circular reference", "build/cycle", schema.ErrCircularReference},
		{"unparsable color", "build/badcolor", schema.ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			planner, mfs := newPlanner(t, tt.fixture)
			cfg := config.Default()
			cfg.Source = []string{"tokens/*.json"}
			for i := range cfg.Platforms {
				cfg.Platforms[i].Source = nil
			}

			_, err := planner.Build(context.Background(), cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.False(t, mfs.Exists("/project/packages"), "no platform output may be written")
		})
	}
}

func TestPlan_CancelledContext(t *testing.T) {
	planner, _ := newPlanner(t, "build/project")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := planner.Plan(ctx, config.Default())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuild_BuildRoot(t *testing.T) {
	planner, mfs := newPlanner(t, "build/project")
	cfg := config.Default()
	cfg.BuildRoot = "dist"
	cfg.Verify = true

	result, err := planner.Build(context.Background(), cfg, "web-css")
	require.NoError(t, err)
	assert.Equal(t, []string{"/project/dist/packages/web/tokens.css"}, result.Written)
	assert.True(t, mfs.Exists("/project/dist/packages/web/tokens.css"))
}

func TestPlanner_Tokens(t *testing.T) {
	planner, _ := newPlanner(t, "build/project")

	tokens, err := planner.Tokens(context.Background(), config.Default(), "roku")
	require.NoError(t, err)

	tok, ok := tokens.Lookup("spacing.md")
	require.True(t, ok)
	assert.Equal(t, "SpacingMd", tok.Name)
	assert.EqualValues(t, 16, tok.Value)

	_, err = planner.Tokens(context.Background(), config.Default(), "nope")
	assert.ErrorIs(t, err, schema.ErrUnknownPlatform)
}

func TestPlanner_Tokens_DefaultConfigAcceptsBothNotations(t *testing.T) {
	planner, mfs := newPlanner(t, "build/project")
	mfs.AddFile("/project/tokens/dimensions/variables.json", `{
  "spacing": {
    "$type": "number",
    "sm": { "$value": 8 },
    "md": { "value": 16, "type": "number" }
  },
  "radius": {
    "card": { "$value": "{spacing.sm}", "$type": "dimension" }
  }
}`, 0o644)

	tokens, err := planner.Tokens(context.Background(), config.Default(), "web-css")
	require.NoError(t, err)

	for path, want := range map[string]string{
		"spacing.sm":  "8px",
		"spacing.md":  "16px",
		"radius.card": "8px",
	} {
		tok, ok := tokens.Lookup(path)
		if assert.True(t, ok, path) {
			assert.Equal(t, want, tok.Value, path)
		}
	}
}

func TestPlan_ParallelSwiftPlatforms(t *testing.T) {
	planner, _ := newPlanner(t, "build/project")
	planner.Concurrency = 8

	cfg := config.Default()
	tvos, err := cfg.Platform("tvos")
	require.NoError(t, err)

	platforms := make([]config.PlatformSpec, 8)
	for i := range platforms {
		p := *tvos
		p.Name = fmt.Sprintf("tvos-%d", i)
		p.BuildPath = fmt.Sprintf("packages/tvos-%d/", i)
		platforms[i] = p
	}
	cfg.Platforms = platforms

	plan, err := planner.Plan(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, plan.Outputs, 8)
	for _, out := range plan.Outputs[1:] {
		assert.Equal(t, string(plan.Outputs[0].Content), string(out.Content), out.Platform)
	}
}
