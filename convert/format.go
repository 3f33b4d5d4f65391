/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"fmt"
	"strings"

	"bennypowers.dev/angel/convert/formatter"
	"bennypowers.dev/angel/convert/formatter/android"
	"bennypowers.dev/angel/convert/formatter/brightscript"
	"bennypowers.dev/angel/convert/formatter/css"
	"bennypowers.dev/angel/convert/formatter/js"
	"bennypowers.dev/angel/convert/formatter/scss"
	"bennypowers.dev/angel/convert/formatter/swift"
	"bennypowers.dev/angel/convert/formatter/typescript"
	"bennypowers.dev/angel/convert/formatter/xaml"
	"bennypowers.dev/angel/convert/verify"
	"bennypowers.dev/angel/schema"
	"bennypowers.dev/angel/token"
)

// Format names an output renderer.
type Format string

const (
	// FormatCSS outputs CSS custom properties in a :root rule.
	FormatCSS Format = "css/variables"

	// FormatSCSS outputs SCSS variables.
	FormatSCSS Format = "scss/variables"

	// FormatTypeScript outputs flat constants plus a nested object of references to them.
	FormatTypeScript Format = "typescript/nested"

	// FormatJavaScript outputs ES module constants.
	FormatJavaScript Format = "javascript/es6"

	// FormatCommonJS outputs CommonJS exports.
	FormatCommonJS Format = "javascript/commonjs"

	// FormatBrightScript outputs a Roku function returning an associative array.
	FormatBrightScript Format = "brightscript/tokens"

	// FormatSwift outputs a SwiftUI enum namespace.
	FormatSwift Format = "swift/tokens"

	// FormatXAML outputs a XAML ResourceDictionary.
	FormatXAML Format = "xaml/resourceDictionary"

	// FormatAndroidColors outputs Android <color> resources.
	FormatAndroidColors Format = "android/colors"

	// FormatAndroidResources outputs Android resources typed by ResourceType.
	FormatAndroidResources Format = "android/resources"
)

var formats = []Format{
	FormatCSS,
	FormatSCSS,
	FormatTypeScript,
	FormatJavaScript,
	FormatCommonJS,
	FormatBrightScript,
	FormatSwift,
	FormatXAML,
	FormatAndroidColors,
	FormatAndroidResources,
}

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	out := make([]string, len(formats))
	for i, f := range formats {
		out[i] = string(f)
	}
	return out
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q (valid: %s)", schema.ErrUnknownFormat, s, strings.Join(ValidFormats(), ", "))
}

// Formatter returns the renderer for a format.
func (f Format) Formatter() (formatter.Formatter, error) {
	switch f {
	case FormatCSS:
		return css.New(), nil
	case FormatSCSS:
		return scss.New(), nil
	case FormatTypeScript:
		return typescript.New(), nil
	case FormatJavaScript:
		return js.New(), nil
	case FormatCommonJS:
		return js.NewWithOptions(js.Options{Module: js.ModuleCJS}), nil
	case FormatBrightScript:
		return brightscript.New(), nil
	case FormatSwift:
		return swift.New(), nil
	case FormatXAML:
		return xaml.New(), nil
	case FormatAndroidColors:
		return android.NewColors(), nil
	case FormatAndroidResources:
		return android.New(), nil
	default:
		return nil, fmt.Errorf("%w: %q", schema.ErrUnknownFormat, string(f))
	}
}

// Language reports which grammar rendered output of this format parses with.
func (f Format) Language() verify.Language {
	switch f {
	case FormatCSS:
		return verify.CSS
	case FormatJavaScript, FormatCommonJS:
		return verify.JavaScript
	default:
		return verify.None
	}
}

// FormatTokens converts tokens to the specified output format.
func FormatTokens(tokens []*token.Token, format Format, opts formatter.Options) ([]byte, error) {
	f, err := format.Formatter()
	if err != nil {
		return nil, err
	}
	return f.Format(tokens, opts)
}
