/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"regexp"
	"strings"
)

// Reference is one curly brace reference found in a token value.
type Reference struct {
	// Raw is the reference as written, braces included.
	Raw string

	// Path is the dot path being referenced.
	Path string
}

var (
	// curlyBracePattern matches {token.path} references.
	curlyBracePattern = regexp.MustCompile(`\{([^{}]+)\}`)

	// wholeRefPattern matches a value that is exactly one reference.
	wholeRefPattern = regexp.MustCompile(`^\s*\{([^{}]+)\}\s*$`)
)

// IsCurlyBraceRef reports whether value contains a curly brace reference.
func IsCurlyBraceRef(value string) bool {
	return curlyBracePattern.MatchString(value)
}

// WholeReference returns the referenced path when value consists of a
// single reference and nothing else.
func WholeReference(value string) (string, bool) {
	matches := wholeRefPattern.FindStringSubmatch(value)
	if len(matches) != 2 {
		return "", false
	}
	return strings.TrimSpace(matches[1]), true
}

// ExtractAllRefs returns every reference in a string, in order of appearance.
func ExtractAllRefs(value string) []Reference {
	matches := curlyBracePattern.FindAllStringSubmatch(value, -1)
	refs := make([]Reference, 0, len(matches))
	for _, m := range matches {
		refs = append(refs, Reference{Raw: m[0], Path: strings.TrimSpace(m[1])})
	}
	return refs
}

// ReplaceRefs substitutes every reference in value with the string
// returned by fn for its path. Text between references is kept.
func ReplaceRefs(value string, fn func(path string) (string, error)) (string, error) {
	var sb strings.Builder
	last := 0
	for _, loc := range curlyBracePattern.FindAllStringSubmatchIndex(value, -1) {
		sb.WriteString(value[last:loc[0]])
		replacement, err := fn(strings.TrimSpace(value[loc[2]:loc[3]]))
		if err != nil {
			return "", err
		}
		sb.WriteString(replacement)
		last = loc[1]
	}
	sb.WriteString(value[last:])
	return sb.String(), nil
}

// FindReferences returns every reference in a value, descending into
// composite values. Map keys are visited in sorted order.
func FindReferences(value any) []Reference {
	var refs []Reference
	Walk(value, func(s string) {
		refs = append(refs, ExtractAllRefs(s)...)
	})
	return refs
}

// ContainsReference reports whether any string inside value holds a reference.
func ContainsReference(value any) bool {
	found := false
	Walk(value, func(s string) {
		if !found && IsCurlyBraceRef(s) {
			found = true
		}
	})
	return found
}

// ValidPath reports whether a reference path is well formed:
// non-empty dot-separated segments without surrounding whitespace.
func ValidPath(path string) bool {
	if path == "" {
		return false
	}
	for seg := range strings.SplitSeq(path, ".") {
		if seg == "" || strings.TrimSpace(seg) != seg {
			return false
		}
	}
	return true
}

// RefCandidates lists the token paths a reference may name, most specific
// first. References written as {a.b.value} or {a.b.$value} also name a.b.
func RefCandidates(ref string) []string {
	paths := []string{ref}
	for _, suffix := range []string{".value", ".$value"} {
		if trimmed, ok := strings.CutSuffix(ref, suffix); ok {
			paths = append(paths, trimmed)
		}
	}
	return paths
}
