/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load provides a high-level API for loading design tokens.
package load

import (
	"context"
	"fmt"
	"path/filepath"

	"bennypowers.dev/angel/fs"
	"bennypowers.dev/angel/internal/logger"
	"bennypowers.dev/angel/parser"
	"bennypowers.dev/angel/resolver"
	"bennypowers.dev/angel/schema"
	"bennypowers.dev/angel/token"
)

// Options configures how tokens are loaded.
type Options struct {
	// Root is the directory relative source paths are read from.
	// Empty means the paths are used as given.
	Root string

	// FS is the filesystem to use. Defaults to OS filesystem if nil.
	FS fs.FileSystem

	// Notation restricts which value key marks a token.
	Notation schema.Notation
}

// Load parses every source in order, merges them so later sources win on
// path collisions, and resolves all references.
//
// The returned collection is fresh on every call; callers may transform
// it without affecting other loads of the same sources.
func Load(ctx context.Context, sources []string, opts Options) (*token.Collection, error) {
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	p := parser.NewJSONParser()
	docs := make([][]*token.Token, 0, len(sources))

	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := src
		if opts.Root != "" && !filepath.IsAbs(path) {
			path = filepath.Join(opts.Root, path)
		}

		tokens, err := p.ParseFile(filesystem, path, parser.Options{Notation: opts.Notation})
		if err != nil {
			return nil, err
		}
		if len(tokens) == 0 {
			logger.Warn("%s contains no tokens", path)
		}
		docs = append(docs, tokens)
	}

	collection, err := resolver.Resolve(docs...)
	if err != nil {
		return nil, fmt.Errorf("resolving %d sources: %w", len(sources), err)
	}
	return collection, nil
}
