/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package build

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	tokenbuild "bennypowers.dev/angel/build"
	"bennypowers.dev/angel/cmd/cli"
	"bennypowers.dev/angel/convert"
)

func TestPrintPlan(t *testing.T) {
	color.NoColor = true

	plan := &tokenbuild.Plan{Outputs: []tokenbuild.Output{
		{Platform: "web-css", Path: "/project/packages/web/tokens.css", Format: convert.FormatCSS, Tokens: 12},
		{Platform: "android-colors", Path: "/project/packages/android/colors.xml", Format: convert.FormatAndroidColors, Tokens: 4},
		{Platform: "android-colors", Path: "/project/packages/android/colors-tv.xml", Format: convert.FormatAndroidColors, Tokens: 4},
	}}

	tests := []struct {
		name   string
		dryRun bool
		want   string
	}{
		{"write", false, "web-css\n" +
			"✓ wrote packages/web/tokens.css (css/variables, 12 tokens)\n" +
			"android-colors\n" +
			"✓ wrote packages/android/colors.xml (android/colors, 4 tokens)\n" +
			"✓ wrote packages/android/colors-tv.xml (android/colors, 4 tokens)\n" +
			"3 files for 2 platforms\n"},
		{"dry run", true, "web-css\n" +
			"✓ would write packages/web/tokens.css (css/variables, 12 tokens)\n" +
			"android-colors\n" +
			"✓ would write packages/android/colors.xml (android/colors, 4 tokens)\n" +
			"✓ would write packages/android/colors-tv.xml (android/colors, 4 tokens)\n" +
			"3 files for 2 platforms\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			PrintPlan(cli.NewPrinter(&buf), plan, "/project", tt.dryRun)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
