/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cli holds helpers shared by the angel subcommands.
package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/viper"

	"bennypowers.dev/angel/config"
	"bennypowers.dev/angel/fs"
	"bennypowers.dev/angel/validator"
)

// Root returns the project directory from --root.
func Root() string {
	if root := viper.GetString("root"); root != "" {
		return root
	}
	return "."
}

// Path resolves p against the project root unless it is absolute.
func Path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(Root(), p)
}

// LoadConfig reads --config when given, otherwise searches the project
// root and falls back to the built-in configuration.
func LoadConfig(filesystem fs.FileSystem) (*config.Config, error) {
	if path := viper.GetString("config"); path != "" {
		return config.LoadFile(filesystem, Path(path))
	}
	return config.LoadOrDefault(filesystem, Root())
}

// Printer writes colored status lines.
type Printer struct {
	w io.Writer
}

// NewPrinter returns a Printer writing to w. Colors follow color.NoColor.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Heading prints a cyan line.
func (p *Printer) Heading(format string, args ...any) {
	color.New(color.FgCyan).Fprintf(p.w, format+"\n", args...)
}

// Success prints a green line.
func (p *Printer) Success(format string, args ...any) {
	color.New(color.FgGreen).Fprintf(p.w, "✓ "+format+"\n", args...)
}

// Warn prints a yellow line.
func (p *Printer) Warn(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(p.w, "⚠ "+format+"\n", args...)
}

// Fail prints a red line.
func (p *Printer) Fail(format string, args ...any) {
	color.New(color.FgRed).Fprintf(p.w, "✗ "+format+"\n", args...)
}

// Plain prints an uncolored line.
func (p *Printer) Plain(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// PrintReport lists a validator report's findings followed by a summary
// line.
func PrintReport(p *Printer, check string, r *validator.Report) {
	for _, e := range r.Errors {
		p.Fail("%s", e.Error())
	}
	for _, w := range r.Warnings {
		p.Warn("%s", w.Error())
	}
	if r.OK() {
		p.Success("%s: %d files, %d warnings", check, len(r.Files), len(r.Warnings))
		return
	}
	p.Fail("%s: %d files, %d errors, %d warnings", check, len(r.Files), len(r.Errors), len(r.Warnings))
}
