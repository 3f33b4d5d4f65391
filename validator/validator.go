/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator checks token source trees for format and naming problems.
// Validators report every problem they find rather than stopping at the
// first one.
package validator

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	angelfs "bennypowers.dev/angel/fs"
	"bennypowers.dev/angel/schema"
)

// Severity ranks a finding.
type Severity int

const (
	// SeverityError fails validation.
	SeverityError Severity = iota
	// SeverityWarning is reported but does not fail validation.
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// ValidationError represents one finding in a token file.
type ValidationError struct {
	// FilePath is the path to the file containing the error.
	FilePath string
	// Line is the 1-based line of the offending key, or 0 when unknown.
	Line int
	// Path is the dotted token path to the problematic element.
	Path string
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
	Severity   Severity
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.FilePath != "" {
		sb.WriteString(e.FilePath)
		if e.Line > 0 {
			fmt.Fprintf(&sb, ":%d", e.Line)
		}
		sb.WriteString(": ")
	}
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// Report collects the findings of one validation run.
type Report struct {
	// Files are the token files that were checked.
	Files    []string
	Errors   []ValidationError
	Warnings []ValidationError
}

// OK reports whether validation found no errors. Warnings do not count.
func (r *Report) OK() bool {
	return len(r.Errors) == 0
}

func (r *Report) add(e ValidationError) {
	if e.Severity == SeverityWarning {
		r.Warnings = append(r.Warnings, e)
		return
	}
	r.Errors = append(r.Errors, e)
}

// FindTokenFiles returns every .json file under dir in lexical order,
// skipping files whose name starts with "$" such as $themes.json.
func FindTokenFiles(filesystem angelfs.FileSystem, dir string) ([]string, error) {
	var files []string
	err := fs.WalkDir(filesystem, dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if strings.HasSuffix(name, ".json") && !strings.HasPrefix(name, "$") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// visitor is called for every key of a token document. It returns whether
// the walk should descend into the key's value.
type visitor func(key *yaml.Node, value *yaml.Node, path []string) bool

// parseFile reads one file and returns its root mapping, reporting read and
// parse failures. A nil result means there is nothing to walk.
func parseFile(filesystem angelfs.FileSystem, path, display string, report *Report) *yaml.Node {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		report.add(ValidationError{FilePath: display, Message: fmt.Sprintf("failed to read file: %v", err)})
		return nil
	}
	if !json.Valid(data) {
		report.add(ValidationError{FilePath: display, Message: "failed to parse JSON"})
		return nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		report.add(ValidationError{FilePath: display, Message: fmt.Sprintf("failed to parse JSON: %v", err)})
		return nil
	}
	if len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		report.add(ValidationError{FilePath: display, Message: fmt.Sprintf("%v: root must be an object", schema.ErrInvalidDocument)})
		return nil
	}
	return root
}

// run validates every token file under dir with check.
func run(filesystem angelfs.FileSystem, dir string, check func(root *yaml.Node, file string, report *Report)) (*Report, error) {
	files, err := FindTokenFiles(filesystem, dir)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	for _, path := range files {
		display := relPath(dir, path)
		report.Files = append(report.Files, display)
		if root := parseFile(filesystem, path, display, report); root != nil {
			check(root, display, report)
		}
	}
	return report, nil
}

func walkMapping(node *yaml.Node, path []string, visit visitor) {
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		current := append(path[:len(path):len(path)], key.Value)
		if visit(key, value, current) && value.Kind == yaml.MappingNode {
			walkMapping(value, current, visit)
		}
	}
}

// isToken reports whether a mapping carries a value key in either notation.
func isToken(node *yaml.Node) bool {
	if node.Kind != yaml.MappingNode {
		return false
	}
	_, v := tokenField(node, "value", "$value")
	return v != nil
}

// tokenField returns the first of keys present in a mapping.
func tokenField(node *yaml.Node, keys ...string) (string, *yaml.Node) {
	for _, want := range keys {
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == want {
				return want, node.Content[i+1]
			}
		}
	}
	return "", nil
}

func relPath(dir, path string) string {
	if rel, err := filepath.Rel(filepath.Dir(dir), path); err == nil {
		return rel
	}
	return path
}
