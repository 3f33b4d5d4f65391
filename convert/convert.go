/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert renders resolved token collections into platform output
// documents.
package convert

import (
	"fmt"

	"bennypowers.dev/angel/convert/formatter"
	"bennypowers.dev/angel/convert/verify"
	"bennypowers.dev/angel/token"
)

// Options configures one rendered output document.
type Options struct {
	// Format selects the renderer.
	Format Format

	// Filter restricts the rendered tokens. Nil renders all of them.
	Filter func(*token.Token) bool

	// Formatter is passed through to the renderer.
	Formatter formatter.Options

	// Verify parses the output with the format's grammar, if it has one.
	Verify bool
}

// Render filters the collection and renders it. The collection is not
// modified.
func Render(c *token.Collection, opts Options) ([]byte, error) {
	if opts.Filter != nil {
		c = c.Filter(opts.Filter)
	}

	out, err := FormatTokens(c.Tokens(), opts.Format, opts.Formatter)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", opts.Format, err)
	}

	if opts.Verify {
		if err := verify.Check(opts.Format.Language(), out); err != nil {
			return nil, fmt.Errorf("rendered %s: %w", opts.Format, err)
		}
	}
	return out, nil
}
