/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// NotationCount tallies the value keys of the tokens in one document.
type NotationCount struct {
	Studio int
	DTCG   int
}

// Notation reports which notation the tallies imply. A document with no
// tokens is Unknown.
func (c NotationCount) Notation() Notation {
	switch {
	case c.Studio > 0 && c.DTCG > 0:
		return Mixed
	case c.DTCG > 0:
		return DTCG
	case c.Studio > 0:
		return TokensStudio
	default:
		return Unknown
	}
}

// CountNotation walks a document's root mapping and counts tokens by value
// key. Groups are descended; token bodies are not, so a composite value
// with its own "value" field is not miscounted. A token carrying both keys
// counts as DTCG.
func CountNotation(root *yaml.Node) NotationCount {
	var c NotationCount
	countNotation(root, &c)
	return c
}

func countNotation(node *yaml.Node, c *NotationCount) {
	if node == nil || node.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, child := node.Content[i], node.Content[i+1]
		if strings.HasPrefix(key.Value, "$") || child.Kind != yaml.MappingNode {
			continue
		}
		switch {
		case hasKey(child, "$value"):
			c.DTCG++
		case hasKey(child, "value"):
			c.Studio++
		default:
			countNotation(child, c)
		}
	}
}

func hasKey(node *yaml.Node, key string) bool {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}
	return false
}
