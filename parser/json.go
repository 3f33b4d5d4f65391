/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/angel/fs"
	"bennypowers.dev/angel/schema"
	"bennypowers.dev/angel/token"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// JSONParser parses JSON (comments and trailing commas tolerated) and YAML
// token documents. Both are walked as yaml.Node trees so key order survives.
type JSONParser struct{}

// NewJSONParser creates a new JSON token parser.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse parses JSON or YAML token data and returns tokens in document order.
func (p *JSONParser) Parse(data []byte, opts Options) ([]*token.Token, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	if isLikelyJSON(data) {
		// ToJSON blanks comments in place, so line numbers still match the source.
		data = jsonc.ToJSON(data)
		if !json.Valid(data) {
			return nil, fmt.Errorf("%w: malformed JSON", schema.ErrInvalidDocument)
		}
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", schema.ErrInvalidDocument, err)
	}

	result := []*token.Token{}
	if len(doc.Content) == 0 {
		return result, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: root must be an object", schema.ErrInvalidDocument)
	}

	if err := p.extractTokens(root, nil, "", opts, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ParseFile parses a token file and returns tokens in document order.
func (p *JSONParser) ParseFile(filesystem fs.FileSystem, path string, opts Options) ([]*token.Token, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	tokens, err := p.Parse(data, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	for _, tok := range tokens {
		tok.FilePath = path
	}
	return tokens, nil
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '{', '[':
			return true
		default:
			return false
		}
	}
	return false
}

// extractTokens walks a group mapping, appending every token it finds.
func (p *JSONParser) extractTokens(node *yaml.Node, path []string, inheritedType string, opts Options, result *[]*token.Token) error {
	groupType := inheritedType
	if t := scalarField(node, "$type", "type"); t != "" {
		groupType = t
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		key := keyNode.Value

		// $-prefixed keys are metadata ($themes, $metadata, $type, ...)
		if strings.HasPrefix(key, "$") {
			continue
		}
		if valueNode.Kind == yaml.AliasNode {
			valueNode = valueNode.Alias
		}
		if valueNode.Kind != yaml.MappingNode {
			continue
		}

		currentPath := append(slices.Clip(path), key)

		if valueKey, ok := tokenValueKey(valueNode, opts.Notation); ok {
			tok, err := createToken(currentPath, valueNode, valueKey, groupType)
			if err != nil {
				return err
			}
			tok.Line = uint32(max(keyNode.Line-1, 0))
			tok.Character = uint32(max(keyNode.Column-1, 0))
			*result = append(*result, tok)
			continue
		}

		if err := p.extractTokens(valueNode, currentPath, groupType, opts, result); err != nil {
			return err
		}
	}
	return nil
}

// tokenValueKey returns the value key that marks node as a token.
// "$value" wins when both are present.
func tokenValueKey(node *yaml.Node, notation schema.Notation) (string, bool) {
	for _, key := range []string{"$value", "value"} {
		if notation.Accepts(key) && field(node, key) != nil {
			return key, true
		}
	}
	return "", false
}

func createToken(path []string, node *yaml.Node, valueKey, inheritedType string) (*token.Token, error) {
	value, err := nodeValue(field(node, valueKey))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", schema.ErrInvalidDocument, strings.Join(path, "."), err)
	}

	tokType := scalarField(node, "$type", "type")
	if tokType == "" {
		tokType = inheritedType
	}

	return &token.Token{
		Name:        strings.Join(path, "-"),
		Path:        path,
		Type:        tokType,
		Value:       value,
		RawValue:    token.CloneValue(value),
		Description: scalarField(node, "$description", "description"),
	}, nil
}

// field returns the value node for key in a mapping, or nil.
func field(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// scalarField returns the first of keys whose value is a string scalar.
func scalarField(node *yaml.Node, keys ...string) string {
	for _, key := range keys {
		if v := field(node, key); v != nil && v.Kind == yaml.ScalarNode && v.ShortTag() == "!!str" {
			return v.Value
		}
	}
	return ""
}

// nodeValue converts a node to plain Go values: string, float64, bool, nil,
// map[string]any and []any.
func nodeValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.AliasNode:
		return nodeValue(node.Alias)
	case yaml.MappingNode:
		m := make(map[string]any, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			v, err := nodeValue(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			m[node.Content[i].Value] = v
		}
		return m, nil
	case yaml.SequenceNode:
		s := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			v, err := nodeValue(child)
			if err != nil {
				return nil, err
			}
			s = append(s, v)
		}
		return s, nil
	case yaml.ScalarNode:
		return scalarValue(node)
	default:
		return nil, fmt.Errorf("unsupported node kind %d", node.Kind)
	}
}

func scalarValue(node *yaml.Node) (any, error) {
	switch node.ShortTag() {
	case "!!int", "!!float":
		if f, err := strconv.ParseFloat(node.Value, 64); err == nil {
			return f, nil
		}
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		switch n := v.(type) {
		case int:
			return float64(n), nil
		case int64:
			return float64(n), nil
		case uint64:
			return float64(n), nil
		}
		return v, nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, err
		}
		return b, nil
	case "!!null":
		return nil, nil
	default:
		return node.Value, nil
	}
}
