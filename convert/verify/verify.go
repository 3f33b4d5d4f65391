/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package verify parses rendered documents with tree-sitter grammars to catch
// renderer output that is not syntactically valid.
package verify

import (
	"fmt"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_css "github.com/tree-sitter/tree-sitter-css/bindings/go"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"

	"bennypowers.dev/angel/schema"
)

// Language identifies a grammar a document can be checked against.
type Language int

const (
	// None skips checking.
	None Language = iota
	// CSS checks stylesheets.
	CSS
	// JavaScript checks ES and CommonJS modules.
	JavaScript
)

func (l Language) String() string {
	switch l {
	case CSS:
		return "css"
	case JavaScript:
		return "javascript"
	default:
		return "none"
	}
}

func (l Language) grammar() *tree_sitter.Language {
	switch l {
	case CSS:
		return tree_sitter.NewLanguage(tree_sitter_css.Language())
	case JavaScript:
		return tree_sitter.NewLanguage(tree_sitter_javascript.Language())
	default:
		return nil
	}
}

// Check parses doc and returns an ErrSyntax error locating the first error
// node. Documents in languages without a grammar always pass.
func Check(lang Language, doc []byte) error {
	grammar := lang.grammar()
	if grammar == nil {
		return nil
	}

	parser := tree_sitter.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(grammar); err != nil {
		return fmt.Errorf("loading %s grammar: %w", lang, err)
	}

	tree := parser.Parse(doc, nil)
	if tree == nil {
		return fmt.Errorf("%w: %s parser returned no tree", schema.ErrSyntax, lang)
	}
	defer tree.Close()

	root := tree.RootNode()
	if !root.HasError() {
		return nil
	}
	bad := firstError(root)
	if bad == nil {
		bad = root
	}
	pos := bad.StartPosition()
	return fmt.Errorf("%w: %s at line %d, column %d", schema.ErrSyntax, lang, pos.Row+1, pos.Column+1)
}

// firstError walks the subtrees that report errors and returns the first
// ERROR or MISSING node in document order.
func firstError(n *tree_sitter.Node) *tree_sitter.Node {
	if n.IsError() || n.IsMissing() {
		return n
	}
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		if child == nil || !child.HasError() {
			continue
		}
		if found := firstError(child); found != nil {
			return found
		}
	}
	return nil
}
