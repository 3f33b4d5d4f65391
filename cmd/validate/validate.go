/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for angel.
package validate

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/angel/cmd/cli"
	"bennypowers.dev/angel/fs"
	"bennypowers.dev/angel/validator"
)

// ErrFailed is returned when validation reports errors.
var ErrFailed = errors.New("validation failed")

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Validate design token files",
	Long: `Validate every token file under dir (default "tokens") for structure,
types and color values.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Fail on warnings")
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")

	dir := "tokens"
	if len(args) == 1 {
		dir = args[0]
	}

	report, err := validator.ValidateFormat(fs.NewOSFileSystem(), cli.Path(dir))
	if err != nil {
		return fmt.Errorf("error validating %s: %w", dir, err)
	}

	cli.PrintReport(cli.NewPrinter(cmd.OutOrStdout()), "validate", report)
	return Outcome(report, strict)
}

// Outcome maps a report to the command's error. Strict mode fails on
// warnings too.
func Outcome(report *validator.Report, strict bool) error {
	if !report.OK() || (strict && len(report.Warnings) > 0) {
		return ErrFailed
	}
	return nil
}
