/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for angel.
package list

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	tokenbuild "bennypowers.dev/angel/build"
	"bennypowers.dev/angel/cmd/cli"
	"bennypowers.dev/angel/fs"
	"bennypowers.dev/angel/token"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List a platform's transformed tokens",
	Long:  `List the tokens of one platform after its transform chain ran, with optional filtering.`,
	Args:  cobra.NoArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().StringP("platform", "p", "", "Platform to list (required)")
	Cmd.Flags().String("type", "", "Filter by token type")
	Cmd.Flags().String("group", "", "Filter by top-level group")
	Cmd.Flags().String("format", "table", "Output format: table, json")
	_ = Cmd.MarkFlagRequired("platform")
}

func run(cmd *cobra.Command, args []string) error {
	platform, _ := cmd.Flags().GetString("platform")
	typeFilter, _ := cmd.Flags().GetString("type")
	groupFilter, _ := cmd.Flags().GetString("group")
	format, _ := cmd.Flags().GetString("format")

	filesystem := fs.NewOSFileSystem()
	cfg, err := cli.LoadConfig(filesystem)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	planner := &tokenbuild.Planner{FS: filesystem, Root: cli.Root()}
	tokens, err := planner.Tokens(cmd.Context(), cfg, platform)
	if err != nil {
		return err
	}

	filtered := filterTokens(tokens.Tokens(), typeFilter, groupFilter)

	switch format {
	case "json":
		return outputJSON(cmd.OutOrStdout(), filtered)
	case "table":
		return outputTable(cmd.OutOrStdout(), filtered)
	default:
		return fmt.Errorf("unknown format %q: expected table or json", format)
	}
}

func filterTokens(tokens []*token.Token, typeFilter, groupFilter string) []*token.Token {
	var result []*token.Token
	for _, tok := range tokens {
		if typeFilter != "" && tok.Type != typeFilter {
			continue
		}
		if groupFilter != "" && tok.Category() != groupFilter {
			continue
		}
		result = append(result, tok)
	}
	return result
}

type jsonToken struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	Type  string `json:"type,omitempty"`
	Value any    `json:"value"`
}

func outputJSON(w io.Writer, tokens []*token.Token) error {
	out := make([]jsonToken, len(tokens))
	for i, tok := range tokens {
		out[i] = jsonToken{Name: tok.Name, Path: tok.DotPath(), Type: tok.Type, Value: tok.Value}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func outputTable(w io.Writer, tokens []*token.Token) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTYPE\tVALUE")
	for _, tok := range tokens {
		value := strings.ReplaceAll(token.Stringify(tok.Value), "\n", " ")
		fmt.Fprintf(tw, "%s\t%s\t%s\n", tok.Name, tok.Type, value)
	}
	return tw.Flush()
}
