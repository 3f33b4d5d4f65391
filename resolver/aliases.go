/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"fmt"

	"bennypowers.dev/angel/schema"
	"bennypowers.dev/angel/token"
)

// ResolveAliases sets every token's Value to its RawValue with all
// references substituted. A value that is exactly one reference takes the
// referenced token's typed value; references embedded in longer strings are
// interpolated as text; references inside composite values are resolved in place.
//
// Malformed, dangling and circular references are errors.
func ResolveAliases(c *token.Collection) error {
	tokens := c.Tokens()

	for _, tok := range tokens {
		for _, ref := range token.FindReferences(tok.RawValue) {
			if !token.ValidPath(ref.Path) {
				return fmt.Errorf("%w: %s in %s", schema.ErrInvalidReference, ref.Raw, tok.DotPath())
			}
		}
	}

	graph := BuildDependencyGraph(tokens)
	if dangling := graph.Dangling(); len(dangling) > 0 {
		d := dangling[0]
		return fmt.Errorf("%w: %s references {%s}", schema.ErrUnresolvedReference, d.From, d.Ref)
	}

	order, err := graph.TopologicalSort()
	if err != nil {
		return err
	}

	for _, path := range order {
		tok, _ := c.Lookup(path)
		if err := resolveToken(tok, c); err != nil {
			return err
		}
	}
	return nil
}

// resolveToken assumes every dependency of tok is already resolved.
func resolveToken(tok *token.Token, c *token.Collection) error {
	lookup := func(ref string) (*token.Token, error) {
		for _, candidate := range token.RefCandidates(ref) {
			if target, ok := c.Lookup(candidate); ok {
				return target, nil
			}
		}
		return nil, fmt.Errorf("%w: %s references {%s}", schema.ErrUnresolvedReference, tok.DotPath(), ref)
	}

	value, err := token.MapStrings(tok.RawValue, func(s string) (any, error) {
		if ref, ok := token.WholeReference(s); ok {
			target, err := lookup(ref)
			if err != nil {
				return nil, err
			}
			return token.CloneValue(target.Value), nil
		}
		if !token.IsCurlyBraceRef(s) {
			return s, nil
		}
		return token.ReplaceRefs(s, func(ref string) (string, error) {
			target, err := lookup(ref)
			if err != nil {
				return "", err
			}
			return token.Stringify(target.Value), nil
		})
	})
	if err != nil {
		return err
	}
	tok.Value = value

	// An untyped alias takes the type of what it points at.
	if s, ok := tok.RawValue.(string); ok && tok.Type == "" {
		if ref, ok := token.WholeReference(s); ok {
			if target, err := lookup(ref); err == nil {
				tok.Type = target.Type
			}
		}
	}
	return nil
}
