/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser reads token source documents into ordered raw tokens.
package parser

import (
	"bennypowers.dev/angel/fs"
	"bennypowers.dev/angel/schema"
	"bennypowers.dev/angel/token"
)

// Options configures token parsing.
type Options struct {
	// Notation restricts which value key marks a token.
	// schema.Unknown accepts both "value" and "$value".
	Notation schema.Notation
}

// Parser parses design token files.
type Parser interface {
	// Parse parses token data and returns tokens in document order.
	Parse(data []byte, opts Options) ([]*token.Token, error)

	// ParseFile parses a token file and returns tokens in document order.
	ParseFile(filesystem fs.FileSystem, path string, opts Options) ([]*token.Token, error)
}
