/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "maps"

// Collection is an ordered set of tokens keyed by dot path.
// Insertion order is preserved; adding a token whose path already exists
// replaces it in place.
type Collection struct {
	tokens []*Token
	index  map[string]int
}

// NewCollection creates a collection holding the given tokens in order.
func NewCollection(tokens ...*Token) *Collection {
	c := &Collection{index: make(map[string]int, len(tokens))}
	for _, tok := range tokens {
		c.Add(tok)
	}
	return c
}

// Add inserts tok, or replaces the token at the same path while keeping
// its original position. Reports whether a token was replaced.
func (c *Collection) Add(tok *Token) bool {
	key := tok.DotPath()
	if i, ok := c.index[key]; ok {
		c.tokens[i] = tok
		return true
	}
	c.index[key] = len(c.tokens)
	c.tokens = append(c.tokens, tok)
	return false
}

// Tokens returns the tokens in insertion order.
// The slice is a copy; the tokens are shared.
func (c *Collection) Tokens() []*Token {
	out := make([]*Token, len(c.tokens))
	copy(out, c.tokens)
	return out
}

// Len returns the number of tokens.
func (c *Collection) Len() int {
	return len(c.tokens)
}

// Lookup returns the token at a dot path.
func (c *Collection) Lookup(path string) (*Token, bool) {
	i, ok := c.index[path]
	if !ok {
		return nil, false
	}
	return c.tokens[i], true
}

// Filter returns a new collection sharing the tokens that match pred.
func (c *Collection) Filter(pred func(*Token) bool) *Collection {
	out := NewCollection()
	for _, tok := range c.tokens {
		if pred(tok) {
			out.Add(tok)
		}
	}
	return out
}

// Clone returns a deep copy of the collection.
func (c *Collection) Clone() *Collection {
	out := &Collection{
		tokens: make([]*Token, len(c.tokens)),
		index:  maps.Clone(c.index),
	}
	for i, tok := range c.tokens {
		out.tokens[i] = tok.Clone()
	}
	return out
}
