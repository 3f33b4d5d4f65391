/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package typescript provides TypeScript module formatting for design tokens:
// one flat exported constant per token, plus a nested object whose leaves
// refer to those constants by name.
package typescript

import (
	"fmt"
	"strconv"
	"strings"

	"bennypowers.dev/angel/convert/formatter"
	"bennypowers.dev/angel/schema"
	"bennypowers.dev/angel/token"
)

const indentUnit = "  "

// Formatter outputs a TypeScript ES module.
type Formatter struct{}

// New creates a new TypeScript formatter.
func New() *Formatter {
	return &Formatter{}
}

// node is one level of the nested export. Children keep insertion order.
type node struct {
	key      string
	ident    string
	children []*node
	byKey    map[string]*node
}

func (n *node) isLeaf() bool {
	return n.ident != ""
}

func (n *node) child(key string) *node {
	if c, ok := n.byKey[key]; ok {
		return c
	}
	c := &node{key: key, byKey: map[string]*node{}}
	n.byKey[key] = c
	n.children = append(n.children, c)
	return c
}

// Format converts tokens to a TypeScript module.
func (f *Formatter) Format(tokens []*token.Token, opts formatter.Options) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(formatter.FormatHeader(opts.Banner("TypeScript"), formatter.CStyleComments))

	root := &node{byKey: map[string]*node{}}
	seen := make(map[string]string, len(tokens))

	for _, tok := range tokens {
		ident := ConstName(tok, opts.Prefix)
		if other, dup := seen[ident]; dup {
			return nil, fmt.Errorf("%w: %s and %s both render as %s", schema.ErrNameCollision, other, tok.DotPath(), ident)
		}
		seen[ident] = tok.DotPath()

		if err := insert(root, tok, ident); err != nil {
			return nil, err
		}
		fmt.Fprintf(&sb, "export const %s = %s;\n", ident, Literal(tok.Value))
	}

	if len(tokens) > 0 {
		sb.WriteString("\n")
	}
	sb.WriteString("export const tokens = ")
	writeObject(&sb, root, 0)
	sb.WriteString(" as const;\n")

	return []byte(sb.String()), nil
}

// ConstName returns the flat export name for a token.
func ConstName(tok *token.Token, prefix string) string {
	return formatter.Identifier(formatter.ApplyPrefixCamel(tok.Name, prefix))
}

// insert places a leaf at the token's path. A path that is both a leaf
// and a group fails with schema.ErrPathConflict.
func insert(root *node, tok *token.Token, ident string) error {
	n := root
	for i, seg := range tok.Path {
		n = n.child(seg)
		last := i == len(tok.Path)-1
		switch {
		case last && len(n.children) > 0:
			return fmt.Errorf("%w: %s is a group of other tokens", schema.ErrPathConflict, tok.DotPath())
		case !last && n.isLeaf():
			return fmt.Errorf("%w: %s is nested under token %s",
				schema.ErrPathConflict, tok.DotPath(), strings.Join(tok.Path[:i+1], "."))
		}
	}
	n.ident = ident
	return nil
}

func writeObject(sb *strings.Builder, n *node, depth int) {
	if len(n.children) == 0 {
		sb.WriteString("{}")
		return
	}
	sb.WriteString("{\n")
	indent := strings.Repeat(indentUnit, depth+1)
	for i, c := range n.children {
		sb.WriteString(indent + Key(c.key) + ": ")
		if c.isLeaf() {
			sb.WriteString(c.ident)
		} else {
			writeObject(sb, c, depth+1)
		}
		if i < len(n.children)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(strings.Repeat(indentUnit, depth) + "}")
}

// Key renders an object key, quoting it unless it is a bare identifier.
func Key(key string) string {
	if formatter.IsIdentifier(key) {
		return key
	}
	return formatter.QuoteSingle(key)
}

// Literal renders a value as a TypeScript expression. Strings are single
// quoted, numbers and booleans bare, composites as JSON.
func Literal(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return formatter.QuoteSingle(val)
	case float64:
		return token.FormatNumber(val)
	case bool:
		return strconv.FormatBool(val)
	default:
		return formatter.JSONLiteral(val)
	}
}
