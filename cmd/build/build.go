/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package build provides the build command for angel.
package build

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	tokenbuild "bennypowers.dev/angel/build"
	"bennypowers.dev/angel/cmd/cli"
	"bennypowers.dev/angel/fs"
)

// Cmd is the build cobra command.
var Cmd = &cobra.Command{
	Use:   "build",
	Short: "Build platform outputs from design tokens",
	Long: `Build every configured platform, or only those named with --platform.
Nothing is written unless every selected platform builds.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringArrayP("platform", "p", nil, "Platform to build (repeatable)")
	Cmd.Flags().Bool("dry-run", false, "Render outputs without writing them")
	Cmd.Flags().IntP("jobs", "j", 1, "Platforms to build in parallel (-1 for one per CPU)")
}

func run(cmd *cobra.Command, args []string) error {
	platforms, _ := cmd.Flags().GetStringArray("platform")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	jobs, _ := cmd.Flags().GetInt("jobs")

	filesystem := fs.NewOSFileSystem()
	cfg, err := cli.LoadConfig(filesystem)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	planner := &tokenbuild.Planner{FS: filesystem, Root: cli.Root(), Concurrency: jobs}
	plan, err := planner.Plan(cmd.Context(), cfg, platforms...)
	if err != nil {
		return err
	}

	p := cli.NewPrinter(cmd.OutOrStdout())
	if !dryRun {
		if _, err := planner.Write(plan); err != nil {
			return err
		}
	}
	PrintPlan(p, plan, cli.Root(), dryRun)
	return nil
}

// PrintPlan lists each output under its platform heading.
func PrintPlan(p *cli.Printer, plan *tokenbuild.Plan, root string, dryRun bool) {
	verb := "wrote"
	if dryRun {
		verb = "would write"
	}

	platform := ""
	platforms := 0
	for _, out := range plan.Outputs {
		if out.Platform != platform {
			platform = out.Platform
			platforms++
			p.Heading("%s", platform)
		}
		p.Success("%s %s (%s, %d tokens)", verb, display(root, out.Path), out.Format, out.Tokens)
	}
	p.Plain("%d files for %d platforms", len(plan.Outputs), platforms)
}

func display(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}
