/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package formatter

import "strings"

// CommentStyle selects the comment syntax for FormatHeader.
type CommentStyle int

const (
	// CStyleComments renders a /* */ block with " * " line prefixes.
	CStyleComments CommentStyle = iota

	// SCSSComments renders "// " line comments.
	SCSSComments

	// XMLComments renders an <!-- --> block with two-space indented lines.
	XMLComments

	// BrightScriptComments renders "' " line comments.
	BrightScriptComments
)

// FormatHeader wraps header text in a comment block followed by a blank line.
// Trailing newlines in header are dropped; an empty header renders nothing.
func FormatHeader(header string, style CommentStyle) string {
	header = strings.TrimRight(header, "\n")
	if header == "" {
		return ""
	}
	lines := strings.Split(header, "\n")

	var sb strings.Builder
	switch style {
	case SCSSComments, BrightScriptComments:
		prefix := "// "
		if style == BrightScriptComments {
			prefix = "' "
		}
		for _, line := range lines {
			sb.WriteString(strings.TrimRight(prefix+line, " "))
			sb.WriteByte('\n')
		}
	case XMLComments:
		sb.WriteString("<!--\n")
		for _, line := range lines {
			sb.WriteString(strings.TrimRight("  "+line, " "))
			sb.WriteByte('\n')
		}
		sb.WriteString("-->\n")
	default:
		sb.WriteString("/*\n")
		for _, line := range lines {
			sb.WriteString(strings.TrimRight(" * "+line, " "))
			sb.WriteByte('\n')
		}
		sb.WriteString(" */\n")
	}
	sb.WriteByte('\n')
	return sb.String()
}
