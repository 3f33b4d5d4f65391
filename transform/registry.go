/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"bennypowers.dev/angel/schema"
)

// Registry maps names to transforms. It is built once and read-only after,
// so one registry can serve concurrent platform builds.
type Registry struct {
	transforms map[Name]Transform
}

// NewRegistry creates a registry from the given transforms.
// Duplicate names are an error.
func NewRegistry(transforms ...Transform) (*Registry, error) {
	r := &Registry{transforms: make(map[Name]Transform, len(transforms))}
	for _, t := range transforms {
		if _, exists := r.transforms[t.Name]; exists {
			return nil, fmt.Errorf("duplicate transform %q", t.Name)
		}
		if (t.Kind == KindName && t.Rename == nil) || (t.Kind == KindValue && t.Value == nil) {
			return nil, fmt.Errorf("transform %q has no function for its kind", t.Name)
		}
		r.transforms[t.Name] = t
	}
	return r, nil
}

// Default returns a registry holding every built-in transform.
func Default() *Registry {
	r, err := NewRegistry(Builtins()...)
	if err != nil {
		panic(err)
	}
	return r
}

// Get returns the transform registered under name.
func (r *Registry) Get(name Name) (Transform, bool) {
	t, ok := r.transforms[name]
	return t, ok
}

// Names returns all registered names, sorted.
func (r *Registry) Names() []Name {
	return slices.Sorted(maps.Keys(r.transforms))
}

func (r *Registry) known() string {
	names := r.Names()
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = string(n)
	}
	return strings.Join(out, ", ")
}

// Chain looks up each name in order. An unknown name fails with
// schema.ErrUnknownTransform.
func (r *Registry) Chain(names ...Name) (Chain, error) {
	chain := make(Chain, 0, len(names))
	for _, name := range names {
		t, ok := r.transforms[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s (known: %s)", schema.ErrUnknownTransform, name, r.known())
		}
		chain = append(chain, t)
	}
	return chain, nil
}
