/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package transform provides the named value and name transforms that
// platforms compose into chains.
package transform

import (
	"fmt"

	"bennypowers.dev/angel/schema"
	"bennypowers.dev/angel/token"
)

// Name identifies a registered transform.
type Name string

// Built-in transforms.
const (
	ColorARGB  Name = "color/argb"
	ColorHex8  Name = "color/hex8"
	SizePx     Name = "size/px"
	SizeDp     Name = "size/dp"
	SizeSp     Name = "size/sp"
	SizeNumber Name = "size/number"
	NameCamel  Name = "name/camel"
	NameKebab  Name = "name/kebab"
	NameSnake  Name = "name/snake"
	NamePascal Name = "name/pascal"
)

// Kind says which part of a token a transform rewrites.
type Kind int

const (
	// KindValue transforms rewrite Token.Value.
	KindValue Kind = iota

	// KindName transforms rewrite Token.Name.
	KindName
)

// Transform is one named, filtered, pure token rewrite.
type Transform struct {
	Name Name
	Kind Kind

	// Transitive transforms only ever see resolved literals.
	Transitive bool

	// Filter selects the tokens the transform applies to.
	// A nil filter matches every token.
	Filter func(*token.Token) bool

	// Value computes the new value for KindValue transforms.
	Value func(*token.Token) (any, error)

	// Rename computes the new name for KindName transforms.
	Rename func(*token.Token) string
}

// Matches reports whether the transform applies to tok.
func (t Transform) Matches(tok *token.Token) bool {
	return t.Filter == nil || t.Filter(tok)
}

// apply rewrites tok in place. Callers pass a private copy.
func (t Transform) apply(tok *token.Token) error {
	if !t.Matches(tok) {
		return nil
	}

	switch t.Kind {
	case KindName:
		tok.Name = t.Rename(tok)
	default:
		if t.Transitive && token.ContainsReference(tok.Value) {
			return fmt.Errorf("%w: %s still holds a reference", schema.ErrUnresolvedReference, tok.DotPath())
		}
		v, err := t.Value(tok)
		if err != nil {
			return err
		}
		tok.Value = v
	}
	return nil
}

// Chain is an ordered list of transforms. Each transform sees the output
// of the one before it.
type Chain []Transform

// Names returns the transform names in chain order.
func (c Chain) Names() []Name {
	names := make([]Name, len(c))
	for i, t := range c {
		names[i] = t.Name
	}
	return names
}

// Apply returns a transformed copy of the collection. The input collection
// and its tokens are left untouched.
func (c Chain) Apply(in *token.Collection) (*token.Collection, error) {
	out := in.Clone()
	for _, tok := range out.Tokens() {
		for _, t := range c {
			if err := t.apply(tok); err != nil {
				return nil, fmt.Errorf("transform %s on %s: %w", t.Name, tok.DotPath(), err)
			}
		}
	}
	return out, nil
}
