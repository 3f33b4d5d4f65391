/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"bennypowers.dev/angel/convert"
	"bennypowers.dev/angel/convert/formatter"
	"bennypowers.dev/angel/transform"
)

// DefaultSource is the token source list used by every platform that does
// not override it.
var DefaultSource = []string{
	"tokens/color_base/tokens.json",
	"tokens/color_theme/light.json",
	"tokens/dimensions/variables.json",
	"tokens/component/variables.json",
	"tokens/typography/desktop.json",
}

// tvSource swaps desktop typography for the TV variant.
var tvSource = []string{
	"tokens/color_base/tokens.json",
	"tokens/color_theme/light.json",
	"tokens/dimensions/variables.json",
	"tokens/component/variables.json",
	"tokens/typography/tv.json",
}

func names(ns ...transform.Name) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = string(n)
	}
	return out
}

// Default returns the built-in ten-platform configuration.
func Default() *Config {
	return &Config{
		Name:       formatter.DefaultTitle,
		ObjectName: formatter.DefaultObjectName,
		Source:     append([]string(nil), DefaultSource...),
		Platforms: []PlatformSpec{
			{
				Name:       "react-native",
				Transforms: names(transform.NameCamel, transform.SizeNumber),
				BuildPath:  "packages/react-native/src/",
				Files:      []FileSpec{{Destination: "tokens.ts", Format: string(convert.FormatTypeScript)}},
			},
			{
				Name:       "web-css",
				Transforms: names(transform.NameKebab, transform.SizePx),
				BuildPath:  "packages/web/",
				Files: []FileSpec{{
					Destination: "tokens.css",
					Format:      string(convert.FormatCSS),
					Options:     FileOptions{OutputReferences: true},
				}},
			},
			{
				Name:       "web-scss",
				Transforms: names(transform.NameKebab, transform.SizePx),
				BuildPath:  "packages/web/",
				Files:      []FileSpec{{Destination: "tokens.scss", Format: string(convert.FormatSCSS)}},
			},
			{
				Name:       "roku",
				Transforms: names(transform.NamePascal, transform.SizeNumber, transform.ColorHex8),
				BuildPath:  "packages/roku/",
				Files:      []FileSpec{{Destination: "AngelTokens.brs", Format: string(convert.FormatBrightScript)}},
			},
			{
				Name:       "tvos",
				Transforms: names(transform.NameCamel, transform.SizeNumber),
				BuildPath:  "packages/tvos/",
				Files:      []FileSpec{{Destination: "AngelTokens.swift", Format: string(convert.FormatSwift)}},
			},
			{
				Name:       "android-colors",
				Transforms: names(transform.NameSnake, transform.ColorARGB),
				BuildPath:  "packages/android/",
				Files: []FileSpec{{
					Destination: "colors.xml",
					Format:      string(convert.FormatAndroidColors),
					Filter:      FilterColor,
				}},
			},
			{
				Name: "android-dimens",
				// sp runs first so font sizes keep it; dp then suffixes the rest.
				Transforms: names(transform.NameSnake, transform.SizeSp, transform.SizeDp),
				BuildPath:  "packages/android/",
				Files: []FileSpec{{
					Destination:  "dimens.xml",
					Format:       string(convert.FormatAndroidResources),
					Filter:       FilterDimension,
					ResourceType: "dimen",
				}},
			},
			{
				Name:       "xbox",
				Transforms: names(transform.NamePascal, transform.SizeNumber, transform.ColorARGB),
				BuildPath:  "packages/xbox/",
				Files:      []FileSpec{{Destination: "Tokens.xaml", Format: string(convert.FormatXAML)}},
			},
			{
				Name:       "web-tv-css",
				Source:     append([]string(nil), tvSource...),
				Transforms: names(transform.NameKebab, transform.SizePx),
				BuildPath:  "packages/web-tv/",
				Files: []FileSpec{{
					Destination: "tokens.css",
					Format:      string(convert.FormatCSS),
					Options:     FileOptions{OutputReferences: true},
				}},
			},
			{
				Name:       "web-tv-js",
				Source:     append([]string(nil), tvSource...),
				Transforms: names(transform.NameCamel, transform.SizeNumber),
				BuildPath:  "packages/web-tv/",
				Files:      []FileSpec{{Destination: "tokens.js", Format: string(convert.FormatJavaScript)}},
			},
		},
	}
}
