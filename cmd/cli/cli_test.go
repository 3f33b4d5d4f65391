/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package cli_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/angel/cmd/cli"
	"bennypowers.dev/angel/config"
	"bennypowers.dev/angel/internal/mapfs"
	"bennypowers.dev/angel/validator"
)

func init() {
	color.NoColor = true
}

func TestPath(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("root", "/project")

	assert.Equal(t, filepath.Join("/project", "tokens"), cli.Path("tokens"))
	assert.Equal(t, "/elsewhere/tokens", cli.Path("/elsewhere/tokens"))
}

func TestRoot_Default(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Reset()
	assert.Equal(t, ".", cli.Root())
}

func TestLoadConfig(t *testing.T) {
	t.Cleanup(viper.Reset)

	t.Run("built-in when no file", func(t *testing.T) {
		viper.Reset()
		viper.Set("root", "/empty")
		mfs := mapfs.New()
		cfg, err := cli.LoadConfig(mfs)
		require.NoError(t, err)
		assert.Equal(t, config.Default().PlatformNames(), cfg.PlatformNames())
	})

	t.Run("explicit file", func(t *testing.T) {
		viper.Reset()
		viper.Set("root", "/project")
		viper.Set("config", "angel.yaml")
		mfs := mapfs.New()
		mfs.AddFile("/project/angel.yaml", `
platforms:
  - name: web-css
    transforms: [name/kebab]
    buildPath: dist/
    files:
      - destination: tokens.css
        format: css/variables
`, 0o644)
		cfg, err := cli.LoadConfig(mfs)
		require.NoError(t, err)
		assert.Equal(t, []string{"web-css"}, cfg.PlatformNames())
	})
}

func TestPrintReport(t *testing.T) {
	tests := []struct {
		name     string
		report   *validator.Report
		contains []string
	}{
		{
			name:     "clean",
			report:   &validator.Report{Files: []string{"a.json", "b.json"}},
			contains: []string{"✓ validate: 2 files, 0 warnings"},
		},
		{
			name: "errors and warnings",
			report: &validator.Report{
				Files: []string{"a.json"},
				Errors: []validator.ValidationError{
					{FilePath: "a.json", Line: 3, Path: "color.x", Message: "missing $type"},
				},
				Warnings: []validator.ValidationError{
					{FilePath: "a.json", Line: 7, Path: "size.y", Message: "unknown type", Severity: validator.SeverityWarning},
				},
			},
			contains: []string{
				"✗ a.json:3: color.x: missing $type\n",
				"⚠ a.json:7: size.y: unknown type\n",
				"✗ validate: 1 files, 1 errors, 1 warnings",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cli.PrintReport(cli.NewPrinter(&buf), "validate", tt.report)
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
