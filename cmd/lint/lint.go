/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package lint provides the lint command for angel.
package lint

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/angel/cmd/cli"
	"bennypowers.dev/angel/fs"
	"bennypowers.dev/angel/validator"
)

// ErrFailed is returned when a token key breaks the naming rules.
var ErrFailed = errors.New("naming check failed")

// Cmd is the lint cobra command.
var Cmd = &cobra.Command{
	Use:   "lint [dir]",
	Short: "Check token key naming",
	Long: `Check that every group and token key under dir (default "tokens") is
lowercase snake_case or a scale step such as 500 or 2xl.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	dir := "tokens"
	if len(args) == 1 {
		dir = args[0]
	}

	report, err := validator.ValidateNaming(fs.NewOSFileSystem(), cli.Path(dir))
	if err != nil {
		return fmt.Errorf("error linting %s: %w", dir, err)
	}

	p := cli.NewPrinter(cmd.OutOrStdout())
	cli.PrintReport(p, "lint", report)
	if !report.OK() {
		p.Plain("Keys look like: color.base.green_500, spacing.md, font.size.2xl")
		return ErrFailed
	}
	return nil
}
