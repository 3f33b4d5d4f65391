/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package build drives platform builds: each platform resolves its own
// sources, applies its transform chain and renders its output files.
//
// Building is two-phase. Plan renders every selected platform into memory
// and Write touches the filesystem only once all of them succeeded, so a
// failed build leaves no partial platform output behind.
package build

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"bennypowers.dev/angel/config"
	"bennypowers.dev/angel/convert"
	"bennypowers.dev/angel/fs"
	"bennypowers.dev/angel/internal/logger"
	"bennypowers.dev/angel/load"
	"bennypowers.dev/angel/token"
	"bennypowers.dev/angel/transform"
)

// Planner builds platforms from a configuration.
type Planner struct {
	// FS is read for sources and written for outputs. Defaults to the OS filesystem.
	FS fs.FileSystem

	// Root is the project directory sources and build paths are relative to.
	Root string

	// Transforms resolves transform names. Defaults to transform.Default().
	Transforms *transform.Registry

	// Now stamps generated banners. Defaults to time.Now.
	Now func() time.Time

	// Concurrency caps platforms built at once. Zero builds them one at a
	// time; a negative value means GOMAXPROCS.
	Concurrency int
}

// Output is one rendered document.
type Output struct {
	Platform string
	Path     string
	Format   convert.Format
	Tokens   int
	Content  []byte
}

// Plan holds rendered outputs in platform declaration order.
type Plan struct {
	Outputs []Output
}

// Result reports what Write produced.
type Result struct {
	Platforms []string
	Written   []string
}

func (p *Planner) filesystem() fs.FileSystem {
	if p.FS == nil {
		return fs.NewOSFileSystem()
	}
	return p.FS
}

func (p *Planner) registry() *transform.Registry {
	if p.Transforms == nil {
		return transform.Default()
	}
	return p.Transforms
}

// Plan renders the selected platforms, or every platform when only is
// empty. No files are written.
func (p *Planner) Plan(ctx context.Context, cfg *config.Config, only ...string) (*Plan, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	platforms, err := selectPlatforms(cfg, only)
	if err != nil {
		return nil, err
	}

	// Resolve every chain up front so a typo fails before any work starts.
	chains := make([]transform.Chain, len(platforms))
	for i, platform := range platforms {
		if chains[i], err = p.chain(platform); err != nil {
			return nil, err
		}
	}

	concurrency := p.Concurrency
	switch {
	case concurrency == 0:
		concurrency = 1
	case concurrency < 0:
		concurrency = runtime.GOMAXPROCS(0)
	}

	results := make([][]Output, len(platforms))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, platform := range platforms {
		g.Go(func() error {
			outputs, err := p.buildPlatform(ctx, cfg, platform, chains[i])
			if err != nil {
				return fmt.Errorf("platform %q: %w", platform.Name, err)
			}
			results[i] = outputs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	plan := &Plan{}
	owners := make(map[string]string)
	for _, outputs := range results {
		for _, out := range outputs {
			if owner, dup := owners[out.Path]; dup {
				return nil, fmt.Errorf("platforms %q and %q both write %s", owner, out.Platform, out.Path)
			}
			owners[out.Path] = out.Platform
			plan.Outputs = append(plan.Outputs, out)
		}
	}
	return plan, nil
}

// Tokens loads, resolves and transforms the named platform's tokens
// without rendering anything.
func (p *Planner) Tokens(ctx context.Context, cfg *config.Config, name string) (*token.Collection, error) {
	platform, err := cfg.Platform(name)
	if err != nil {
		return nil, err
	}
	chain, err := p.chain(platform)
	if err != nil {
		return nil, err
	}
	return p.platformTokens(ctx, cfg, platform, chain)
}

func (p *Planner) chain(platform *config.PlatformSpec) (transform.Chain, error) {
	names := make([]transform.Name, len(platform.Transforms))
	for i, n := range platform.Transforms {
		names[i] = transform.Name(n)
	}
	chain, err := p.registry().Chain(names...)
	if err != nil {
		return nil, fmt.Errorf("platform %q: %w", platform.Name, err)
	}
	return chain, nil
}

func (p *Planner) platformTokens(ctx context.Context, cfg *config.Config, platform *config.PlatformSpec, chain transform.Chain) (*token.Collection, error) {
	filesystem := p.filesystem()

	sources, err := config.ExpandSources(filesystem, p.Root, cfg.SourcesFor(platform))
	if err != nil {
		return nil, fmt.Errorf("expanding sources: %w", err)
	}

	resolved, err := load.Load(ctx, sources, load.Options{FS: filesystem, Notation: cfg.Notation()})
	if err != nil {
		return nil, err
	}

	transformed, err := chain.Apply(resolved)
	if err != nil {
		return nil, err
	}
	logger.Debug("%s: %d tokens through %v", platform.Name, transformed.Len(), chain.Names())
	return transformed, nil
}

func (p *Planner) buildPlatform(ctx context.Context, cfg *config.Config, platform *config.PlatformSpec, chain transform.Chain) ([]Output, error) {
	transformed, err := p.platformTokens(ctx, cfg, platform, chain)
	if err != nil {
		return nil, err
	}

	outputs := make([]Output, 0, len(platform.Files))
	for _, file := range platform.Files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		format, err := convert.ParseFormat(file.Format)
		if err != nil {
			return nil, err
		}
		filter, err := config.ParseFilter(file.Filter)
		if err != nil {
			return nil, err
		}

		opts := cfg.FormatterOptions(file)
		opts.Now = p.Now

		selected := transformed
		if filter != nil {
			selected = transformed.Filter(filter)
		}

		content, err := convert.Render(selected, convert.Options{
			Format:    format,
			Formatter: opts,
			Verify:    cfg.Verify,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file.Destination, err)
		}

		outputs = append(outputs, Output{
			Platform: platform.Name,
			Path:     filepath.Join(p.Root, cfg.BuildRoot, platform.BuildPath, file.Destination),
			Format:   format,
			Tokens:   selected.Len(),
			Content:  content,
		})
	}
	return outputs, nil
}

func selectPlatforms(cfg *config.Config, only []string) ([]*config.PlatformSpec, error) {
	if len(only) == 0 {
		out := make([]*config.PlatformSpec, len(cfg.Platforms))
		for i := range cfg.Platforms {
			out[i] = &cfg.Platforms[i]
		}
		return out, nil
	}

	out := make([]*config.PlatformSpec, 0, len(only))
	for _, name := range only {
		platform, err := cfg.Platform(name)
		if err != nil {
			return nil, err
		}
		out = append(out, platform)
	}
	return out, nil
}

// Write writes every planned output, creating directories as needed.
func (p *Planner) Write(plan *Plan) (*Result, error) {
	filesystem := p.filesystem()
	result := &Result{}
	seen := make(map[string]bool)

	for _, out := range plan.Outputs {
		if err := filesystem.MkdirAll(filepath.Dir(out.Path), 0o755); err != nil {
			return result, fmt.Errorf("creating directory for %s: %w", out.Path, err)
		}
		if err := filesystem.WriteFile(out.Path, out.Content, 0o644); err != nil {
			return result, fmt.Errorf("writing %s: %w", out.Path, err)
		}
		logger.Debug("Wrote %s", out.Path)
		result.Written = append(result.Written, out.Path)
		if !seen[out.Platform] {
			seen[out.Platform] = true
			result.Platforms = append(result.Platforms, out.Platform)
		}
	}
	return result, nil
}

// Build plans and then writes.
func (p *Planner) Build(ctx context.Context, cfg *config.Config, only ...string) (*Result, error) {
	plan, err := p.Plan(ctx, cfg, only...)
	if err != nil {
		return nil, err
	}
	return p.Write(plan)
}
