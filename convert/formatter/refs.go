/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package formatter

import (
	"errors"

	"bennypowers.dev/angel/token"
)

var errOutside = errors.New("reference outside output")

// Index maps dot paths to tokens.
func Index(tokens []*token.Token) map[string]*token.Token {
	index := make(map[string]*token.Token, len(tokens))
	for _, tok := range tokens {
		index[tok.DotPath()] = tok
	}
	return index
}

// ReferenceValue renders tok's authored string value with every reference
// replaced by render(target). It reports false when the authored value is
// not a string with references, or when any reference points at a token
// missing from index.
func ReferenceValue(tok *token.Token, index map[string]*token.Token, render func(*token.Token) string) (string, bool) {
	raw, ok := tok.RawValue.(string)
	if !ok || !token.IsCurlyBraceRef(raw) {
		return "", false
	}

	out, err := token.ReplaceRefs(raw, func(ref string) (string, error) {
		for _, candidate := range token.RefCandidates(ref) {
			if target, ok := index[candidate]; ok {
				return render(target), nil
			}
		}
		return "", errOutside
	})
	if err != nil {
		return "", false
	}
	return out, true
}
