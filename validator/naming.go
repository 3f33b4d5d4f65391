/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	angelfs "bennypowers.dev/angel/fs"
)

// validKeyPattern accepts snake_case words, numeric scales (50, 500) and
// size scales (2xl, 4xs).
var validKeyPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$|^[0-9]+$|^[0-9]+[a-z]+$`)

var upperPattern = regexp.MustCompile(`([A-Z])`)

// ValidateNaming checks that every group and token key under dir is
// lowercase snake_case or a scale step. Keys starting with "$" are skipped,
// and token bodies are not descended into.
func ValidateNaming(filesystem angelfs.FileSystem, dir string) (*Report, error) {
	return run(filesystem, dir, func(root *yaml.Node, file string, report *Report) {
		walkMapping(root, nil, func(key, value *yaml.Node, path []string) bool {
			if strings.HasPrefix(key.Value, "$") {
				return false
			}
			if e := CheckName(key.Value); e != nil {
				e.FilePath = file
				e.Line = key.Line
				e.Path = strings.Join(path, ".")
				report.add(*e)
			}
			return !isToken(value)
		})
	})
}

// CheckName validates one key, returning nil when it follows the naming
// convention.
func CheckName(key string) *ValidationError {
	if validKeyPattern.MatchString(key) {
		return nil
	}

	switch {
	case strings.ToLower(key) != key:
		return &ValidationError{
			Message:    fmt.Sprintf("key %q uses camelCase", key),
			Suggestion: fmt.Sprintf("use snake_case instead, e.g. %q", strings.ToLower(upperPattern.ReplaceAllString(key, "_$1"))),
		}
	case strings.Contains(key, "-"):
		return &ValidationError{
			Message:    fmt.Sprintf("key %q uses hyphens", key),
			Suggestion: fmt.Sprintf("use underscores instead, e.g. %q", strings.ReplaceAll(key, "-", "_")),
		}
	default:
		return &ValidationError{
			Message:    fmt.Sprintf("key %q has invalid format", key),
			Suggestion: "use lowercase with underscores",
		}
	}
}
