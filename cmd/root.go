/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for angel.
package cmd

import (
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/angel/cmd/breaking"
	"bennypowers.dev/angel/cmd/build"
	"bennypowers.dev/angel/cmd/lint"
	"bennypowers.dev/angel/cmd/list"
	"bennypowers.dev/angel/cmd/validate"
	"bennypowers.dev/angel/cmd/version"
	"bennypowers.dev/angel/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "angel",
	Short: "Build platform outputs from design tokens",
	Long: `angel builds CSS, SCSS, TypeScript, JavaScript, BrightScript, Swift,
XAML and Android resources from one design token source tree, and checks
token trees for format, naming and breaking changes.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("no-color") {
			color.NoColor = true
		}
		if viper.GetBool("quiet") {
			logger.SetOutput(io.Discard)
		}
		logger.SetVerbose(viper.GetBool("verbose"))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Config file (default: .config/design-tokens.{yaml,yml,json} or built-in)")
	flags.String("root", ".", "Project root directory")
	flags.BoolP("quiet", "q", false, "Suppress log output")
	flags.Bool("no-color", false, "Disable colored output")
	flags.BoolP("verbose", "v", false, "Log debug output")

	for _, name := range []string{"config", "root", "quiet", "no-color", "verbose"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(build.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(lint.Cmd)
	rootCmd.AddCommand(breaking.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
