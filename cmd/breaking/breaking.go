/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package breaking provides the breaking command for angel.
package breaking

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	tokenbreaking "bennypowers.dev/angel/breaking"
	"bennypowers.dev/angel/cmd/cli"
	"bennypowers.dev/angel/fs"
	"bennypowers.dev/angel/token"
)

// ErrBreaking is returned when the current tree breaks the baseline.
var ErrBreaking = errors.New("breaking changes detected")

// Cmd is the breaking cobra command.
var Cmd = &cobra.Command{
	Use:   "breaking [baseline]",
	Short: "Detect breaking token changes",
	Long: `Compare the token tree against a baseline copy (default "tokens-baseline").
Removed tokens and changed types are breaking; added tokens are not.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().String("current", "tokens", "Current token directory")
}

func run(cmd *cobra.Command, args []string) error {
	current, _ := cmd.Flags().GetString("current")

	baseline := "tokens-baseline"
	if len(args) == 1 {
		baseline = args[0]
	}

	p := cli.NewPrinter(cmd.OutOrStdout())

	report, err := tokenbreaking.Check(fs.NewOSFileSystem(), cli.Path(baseline), cli.Path(current))
	if errors.Is(err, tokenbreaking.ErrNoBaseline) {
		p.Warn("no baseline at %s", baseline)
		p.Plain("Create one from the last release with: cp -r %s %s", current, baseline)
		return nil
	}
	if err != nil {
		return fmt.Errorf("error comparing tokens: %w", err)
	}

	PrintReport(p, report)
	if report.Breaking() {
		return ErrBreaking
	}
	return nil
}

// PrintReport writes a human readable diff summary.
func PrintReport(p *cli.Printer, r *tokenbreaking.Report) {
	p.Heading("Baseline %d tokens, current %d tokens", r.Baseline, r.Current)

	for _, rm := range r.Removed {
		if rm.RenamedTo != "" {
			p.Fail("removed %s (%s), renamed to %s?", rm.Path, rm.Type, rm.RenamedTo)
			continue
		}
		p.Fail("removed %s (%s)", rm.Path, rm.Type)
	}
	for _, tc := range r.TypeChanged {
		p.Fail("type changed %s: %s -> %s", tc.Path, tc.From, tc.To)
	}
	for _, a := range r.Added {
		p.Success("added %s (%s) = %s", a.Path, a.Type, token.Stringify(a.Value))
	}

	switch {
	case r.Breaking():
		p.Fail("%d removed, %d type changes: major version bump required", len(r.Removed), len(r.TypeChanged))
	case r.Changed():
		p.Success("%d added: minor version bump", len(r.Added))
	default:
		p.Success("no changes")
	}
}
