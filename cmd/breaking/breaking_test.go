/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package breaking

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	tokenbreaking "bennypowers.dev/angel/breaking"
	"bennypowers.dev/angel/cmd/cli"
)

func TestPrintReport(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name     string
		report   *tokenbreaking.Report
		contains []string
	}{
		{
			name:     "unchanged",
			report:   &tokenbreaking.Report{Baseline: 2, Current: 2},
			contains: []string{"Baseline 2 tokens, current 2 tokens", "✓ no changes"},
		},
		{
			name: "additions",
			report: &tokenbreaking.Report{
				Baseline: 1, Current: 2,
				Added: []tokenbreaking.Entry{{Path: "spacing.lg", Type: "dimension", Value: "24px"}},
			},
			contains: []string{"✓ added spacing.lg (dimension) = 24px", "✓ 1 added: minor version bump"},
		},
		{
			name: "removal with rename and type change",
			report: &tokenbreaking.Report{
				Baseline: 2, Current: 2,
				Removed: []tokenbreaking.Removal{{
					Entry:     tokenbreaking.Entry{Path: "color.primary", Type: "color"},
					RenamedTo: "color.primery",
				}},
				TypeChanged: []tokenbreaking.TypeChange{{Path: "radius.sm", From: "dimension", To: "number"}},
			},
			contains: []string{
				"✗ removed color.primary (color), renamed to color.primery?",
				"✗ type changed radius.sm: dimension -> number",
				"✗ 1 removed, 1 type changes: major version bump required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			PrintReport(cli.NewPrinter(&buf), tt.report)
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
