/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import "bennypowers.dev/angel/token"

// Merge combines parsed documents into one collection. Documents are applied
// in order; a token path defined again by a later document takes the later
// definition and keeps the position of its first appearance.
func Merge(documents ...[]*token.Token) *token.Collection {
	c := token.NewCollection()
	for _, doc := range documents {
		for _, tok := range doc {
			c.Add(tok)
		}
	}
	return c
}

// Resolve merges documents and resolves every reference in the result.
func Resolve(documents ...[]*token.Token) (*token.Collection, error) {
	c := Merge(documents...)
	if err := ResolveAliases(c); err != nil {
		return nil, err
	}
	return c, nil
}
