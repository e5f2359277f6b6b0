// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render produces the HTML fragments of the results page: the
// results table, the selection controls and the single-record detail view.
//
// Every piece of record data passes through Escape before it is written
// into markup. Fragments are returned as strings so the page template can
// embed them without escaping a second time.
package render

import (
	"html"
	"strings"
	"unicode"
)

// Escape makes s safe to place in HTML text or a quoted attribute. It never
// interprets s as markup.
func Escape(s string) string {
	return html.EscapeString(s)
}

// Label turns a field name into a heading: a space goes before each
// capital letter after the first character, and the first letter is
// upper-cased. "officeActionDate" becomes "Office Action Date".
func Label(name string) string {
	var b strings.Builder
	for i, r := range name {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteByte(' ')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
