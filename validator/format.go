/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/angel/color"
	angelfs "bennypowers.dev/angel/fs"
	"bennypowers.dev/angel/schema"
	"bennypowers.dev/angel/token"
)

// ValidateFormat checks every token file under dir:
//
//   - a token needs a value and a type (possibly inherited from its group)
//   - unknown types are warnings
//   - color values must parse, unless they are references
//   - number and dimension values should be numeric or references
//   - one file should not mix "value" and "$value"
//
// The error return is reserved for failing to list dir.
func ValidateFormat(filesystem angelfs.FileSystem, dir string) (*Report, error) {
	return run(filesystem, dir, checkFormat)
}

type formatWalk struct {
	file   string
	report *Report
}

func checkFormat(root *yaml.Node, file string, report *Report) {
	w := &formatWalk{file: file, report: report}
	w.group(root, nil, "")

	if count := schema.CountNotation(root); count.Notation() == schema.Mixed {
		report.add(ValidationError{
			FilePath:   file,
			Message:    fmt.Sprintf("mixes %d \"value\" and %d \"$value\" tokens", count.Studio, count.DTCG),
			Suggestion: "use one notation per file",
			Severity:   SeverityWarning,
		})
	}
}

func (w *formatWalk) group(node *yaml.Node, path []string, inherited string) {
	if _, t := tokenField(node, "$type", "type"); t != nil && t.Kind == yaml.ScalarNode {
		inherited = t.Value
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if strings.HasPrefix(key.Value, "$") || value.Kind != yaml.MappingNode {
			continue
		}
		current := append(path[:len(path):len(path)], key.Value)

		switch {
		case isToken(value):
			w.token(key, value, current, inherited)
		case isOrphanType(value):
			w.add(key, current, ValidationError{Message: `token is missing "value" property`})
		default:
			w.group(value, current, inherited)
		}
	}
}

func (w *formatWalk) token(key, node *yaml.Node, path []string, inherited string) {
	_, value := tokenField(node, "$value", "value")

	typ := inherited
	if _, t := tokenField(node, "$type", "type"); t != nil {
		typ = t.Value
	}
	if typ == "" {
		w.add(key, path, ValidationError{Message: `token is missing "type" property`})
		return
	}

	if !token.IsKnownType(typ) {
		w.add(key, path, ValidationError{
			Message:  fmt.Sprintf("unknown type %q", typ),
			Severity: SeverityWarning,
		})
	}

	switch {
	case typ == token.TypeColor:
		if !isReference(value) && !validColor(value) {
			w.add(key, path, ValidationError{
				Message:    fmt.Sprintf("invalid color value %q", scalarText(value)),
				Suggestion: "use #RGB, #RRGGBB, #RRGGBBAA, rgb() or rgba()",
			})
		}
	case token.IsSize(typ):
		if !isReference(value) && !isNumeric(value) {
			w.add(key, path, ValidationError{
				Message:  fmt.Sprintf("non-numeric value %q with type %q", scalarText(value), typ),
				Severity: SeverityWarning,
			})
		}
	}
}

func (w *formatWalk) add(key *yaml.Node, path []string, e ValidationError) {
	e.FilePath = w.file
	e.Line = key.Line
	e.Path = strings.Join(path, ".")
	w.report.add(e)
}

// isOrphanType reports a mapping that declares a type but has neither a
// value nor child tokens.
func isOrphanType(node *yaml.Node) bool {
	if _, t := tokenField(node, "type", "$type"); t == nil {
		return false
	}
	for i := 1; i < len(node.Content); i += 2 {
		if node.Content[i].Kind == yaml.MappingNode {
			return false
		}
	}
	return true
}

func isReference(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.Tag == "!!str" && token.IsCurlyBraceRef(node.Value)
}

func isNumeric(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && (node.Tag == "!!int" || node.Tag == "!!float")
}

func validColor(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.Tag == "!!str" && color.Valid(node.Value)
}

func scalarText(node *yaml.Node) string {
	if node.Kind == yaml.ScalarNode {
		return node.Value
	}
	return "<" + strings.TrimPrefix(node.Tag, "!!") + ">"
}
