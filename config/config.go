/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for the design token build.
package config

import (
	"errors"
	"fmt"

	"bennypowers.dev/angel/convert"
	"bennypowers.dev/angel/convert/formatter"
	"bennypowers.dev/angel/schema"
)

// Config represents the design token build configuration.
type Config struct {
	// Name opens every generated banner.
	Name string `yaml:"name" json:"name"`

	// ObjectName names the root function or namespace of script outputs.
	ObjectName string `yaml:"objectName" json:"objectName"`

	// Source lists token files in merge order. Globs are allowed.
	Source []string `yaml:"source" json:"source"`

	// BuildRoot is prepended to every platform's BuildPath.
	BuildRoot string `yaml:"buildRoot" json:"buildRoot"`

	// Format forces a source notation (optional).
	// Valid values: "tokens-studio", "dtcg"
	Format string `yaml:"format" json:"format"`

	// Verify parses CSS and JavaScript outputs before writing them.
	Verify bool `yaml:"verify" json:"verify"`

	// Platforms are built in declaration order.
	Platforms []PlatformSpec `yaml:"platforms" json:"platforms"`
}

// PlatformSpec is one named output configuration.
type PlatformSpec struct {
	// Name is the unique platform key.
	Name string `yaml:"name" json:"name"`

	// Source replaces the global source list for this platform.
	Source []string `yaml:"source" json:"source"`

	// Transforms are applied in order to every token.
	Transforms []string `yaml:"transforms" json:"transforms"`

	// BuildPath is the output directory for this platform's files.
	BuildPath string `yaml:"buildPath" json:"buildPath"`

	// Files are the documents rendered for this platform.
	Files []FileSpec `yaml:"files" json:"files"`
}

// FileSpec is one rendered output document.
type FileSpec struct {
	// Destination is the file name relative to the platform BuildPath.
	Destination string `yaml:"destination" json:"destination"`

	// Format names the renderer.
	Format string `yaml:"format" json:"format"`

	// Filter names a token predicate. Empty renders every token.
	Filter string `yaml:"filter" json:"filter"`

	// ResourceType forces the Android resource element.
	ResourceType string `yaml:"resourceType" json:"resourceType"`

	// Prefix is added to output variable names.
	Prefix string `yaml:"prefix" json:"prefix"`

	Options FileOptions `yaml:"options" json:"options"`
}

// FileOptions are renderer switches.
type FileOptions struct {
	// OutputReferences keeps references as variable references where the
	// format supports them.
	OutputReferences bool `yaml:"outputReferences" json:"outputReferences"`

	// Selector scopes CSS custom properties.
	Selector string `yaml:"selector" json:"selector"`
}

// Notation returns the parsed source notation from the Format field.
// Returns schema.Unknown if the field is empty or invalid.
func (c *Config) Notation() schema.Notation {
	n, err := schema.FromString(c.Format)
	if err != nil {
		return schema.Unknown
	}
	return n
}

// Platform returns the named platform.
func (c *Config) Platform(name string) (*PlatformSpec, error) {
	for i := range c.Platforms {
		if c.Platforms[i].Name == name {
			return &c.Platforms[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", schema.ErrUnknownPlatform, name)
}

// PlatformNames lists platforms in declaration order.
func (c *Config) PlatformNames() []string {
	names := make([]string, len(c.Platforms))
	for i, p := range c.Platforms {
		names[i] = p.Name
	}
	return names
}

// SourcesFor returns the platform's source override, or the global list.
func (c *Config) SourcesFor(p *PlatformSpec) []string {
	if len(p.Source) > 0 {
		return p.Source
	}
	return c.Source
}

// FormatterOptions builds renderer options for one output file.
func (c *Config) FormatterOptions(f FileSpec) formatter.Options {
	return formatter.Options{
		Title:            c.Name,
		ObjectName:       c.ObjectName,
		Prefix:           f.Prefix,
		ResourceType:     f.ResourceType,
		OutputReferences: f.Options.OutputReferences,
		Selector:         f.Options.Selector,
	}
}

// Validate reports every structural problem in the configuration at once.
func (c *Config) Validate() error {
	var errs []error
	if _, err := schema.FromString(c.Format); err != nil {
		errs = append(errs, err)
	}

	seen := make(map[string]bool, len(c.Platforms))
	for _, p := range c.Platforms {
		if p.Name == "" {
			errs = append(errs, errors.New("platform without a name"))
			continue
		}
		if seen[p.Name] {
			errs = append(errs, fmt.Errorf("platform %q declared twice", p.Name))
		}
		seen[p.Name] = true

		if len(c.SourcesFor(&p)) == 0 {
			errs = append(errs, fmt.Errorf("platform %q has no sources", p.Name))
		}
		for i, f := range p.Files {
			if f.Destination == "" {
				errs = append(errs, fmt.Errorf("platform %q file %d has no destination", p.Name, i))
			}
			if _, err := convert.ParseFormat(f.Format); err != nil {
				errs = append(errs, fmt.Errorf("platform %q: %w", p.Name, err))
			}
			if _, err := ParseFilter(f.Filter); err != nil {
				errs = append(errs, fmt.Errorf("platform %q: %w", p.Name, err))
			}
		}
	}
	return errors.Join(errs...)
}
