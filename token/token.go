/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides design token types.
package token

import (
	"slices"
	"strings"
)

// Token is a named, typed design decision.
type Token struct {
	// Name is the token's output identifier. The parser sets it to the path
	// joined by "-"; name transforms rewrite it per platform.
	Name string `json:"name"`

	// Path is the nested key path to this token (e.g., ["color", "brand", "primary"]).
	Path []string `json:"path"`

	// Type specifies the type of token (color, dimension, etc.).
	Type string `json:"type,omitempty"`

	// Value is the effective value: resolved, then transformed.
	Value any `json:"value"`

	// RawValue is the authored value, references intact.
	RawValue any `json:"-"`

	// Description is optional documentation for the token.
	Description string `json:"description,omitempty"`

	// FilePath is the file this token was loaded from.
	FilePath string `json:"-"`

	// Line is the 0-based line number where this token is defined.
	Line uint32 `json:"-"`

	// Character is the 0-based character offset where this token is defined.
	Character uint32 `json:"-"`
}

// DotPath returns the path joined by dots, the form references use.
func (t *Token) DotPath() string {
	return strings.Join(t.Path, ".")
}

// Reference returns the curly brace reference that points at this token.
func (t *Token) Reference() string {
	return "{" + t.DotPath() + "}"
}

// Category returns the first path segment.
func (t *Token) Category() string {
	if len(t.Path) == 0 {
		return ""
	}
	return t.Path[0]
}

// Clone returns a deep copy of the token.
func (t *Token) Clone() *Token {
	if t == nil {
		return nil
	}
	c := *t
	c.Path = slices.Clone(t.Path)
	c.Value = CloneValue(t.Value)
	c.RawValue = CloneValue(t.RawValue)
	return &c
}
