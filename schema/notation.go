/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package schema provides token source notation handling and shared errors.
package schema

import "fmt"

// Notation identifies how a token source spells its reserved fields.
type Notation int

const (
	// Unknown accepts both notations.
	Unknown Notation = iota

	// TokensStudio uses bare "value", "type" and "description" keys.
	TokensStudio

	// DTCG uses "$value", "$type" and "$description" keys.
	DTCG

	// Mixed is reported by detection when one document uses both notations.
	Mixed
)

// String returns the string representation of the notation.
func (n Notation) String() string {
	switch n {
	case TokensStudio:
		return "tokens-studio"
	case DTCG:
		return "dtcg"
	case Mixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// ValueKey returns the key that holds a token's value in this notation.
// Unknown and Mixed return the DTCG key.
func (n Notation) ValueKey() string {
	if n == TokensStudio {
		return "value"
	}
	return "$value"
}

// Accepts reports whether a document in this notation may use the given value key.
func (n Notation) Accepts(key string) bool {
	switch n {
	case TokensStudio:
		return key == "value"
	case DTCG:
		return key == "$value"
	default:
		return key == "value" || key == "$value"
	}
}

// FromString returns the notation for a config or flag value.
// The empty string means Unknown.
func FromString(s string) (Notation, error) {
	switch s {
	case "", "auto", "unknown":
		return Unknown, nil
	case "tokens-studio", "tokensstudio", "studio":
		return TokensStudio, nil
	case "dtcg", "w3c":
		return DTCG, nil
	default:
		return Unknown, fmt.Errorf("%w: %s", ErrUnknownNotation, s)
	}
}
