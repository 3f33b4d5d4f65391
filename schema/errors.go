/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema

import "errors"

// Sentinel errors for token pipeline operations.
var (
	// ErrUnknownNotation indicates an unrecognized source notation name.
	ErrUnknownNotation = errors.New("unknown token notation")

	// ErrInvalidDocument indicates a token source is not a well-formed document.
	ErrInvalidDocument = errors.New("invalid token document")

	// ErrMissingValue indicates a token is missing its value field.
	ErrMissingValue = errors.New("token missing value")

	// ErrInvalidColor indicates a color literal could not be parsed.
	ErrInvalidColor = errors.New("invalid color")

	// ErrInvalidReference indicates a token reference is malformed.
	ErrInvalidReference = errors.New("invalid token reference")

	// ErrCircularReference indicates a circular reference was detected.
	ErrCircularReference = errors.New("circular reference detected")

	// ErrUnresolvedReference indicates a reference could not be resolved.
	ErrUnresolvedReference = errors.New("unresolved token reference")

	// ErrPathConflict indicates a token path is both a leaf and a group in nested output.
	ErrPathConflict = errors.New("token path conflict")

	// ErrNameCollision indicates two tokens render to the same identifier.
	ErrNameCollision = errors.New("token name collision")

	// ErrUnknownTransform indicates a transform name is not registered.
	ErrUnknownTransform = errors.New("unknown transform")

	// ErrUnknownFormat indicates an output format name is not registered.
	ErrUnknownFormat = errors.New("unknown format")

	// ErrUnknownFilter indicates a file filter name is not registered.
	ErrUnknownFilter = errors.New("unknown filter")

	// ErrUnknownPlatform indicates a platform name is not configured.
	ErrUnknownPlatform = errors.New("unknown platform")

	// ErrSyntax indicates rendered output failed its syntax check.
	ErrSyntax = errors.New("syntax error in rendered output")
)
