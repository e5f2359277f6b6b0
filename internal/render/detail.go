// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"

	"github.com/pdiddy/patent-search/internal/results"
	"github.com/pdiddy/patent-search/pkg/types"
)

// PreferredOrder lists the fields the detail view shows first, in order.
// Remaining fields follow in the record's own field order.
var PreferredOrder = []string{
	"publicationNumber",
	"patent_number",
	"id",
	"patentApplicationNumber",
	"inventorNameText",
	"officeActionDate",
	"publication_date",
	"createDateTime",
	"techCenter",
	"countryCode",
	"citationCategoryCode",
	"qualitySummaryText",
	"passageLocationText",
	"groupArtUnitNumber",
	"workGroupNumber",
	"kindCode",
	"nplIndicator",
}

// Field is one labelled value of the detail view.
type Field struct {
	Name  string
	Label string
	Value string
}

// Fields returns the displayable fields of rec: preferred fields first,
// then the rest in record order. Null fields are skipped.
func Fields(rec *types.Record) []Field {
	preferred := make(map[string]bool, len(PreferredOrder))
	var out []Field

	add := func(name string) {
		v, ok := rec.Get(name)
		if !ok || v == nil {
			return
		}
		out = append(out, Field{Name: name, Label: Label(name), Value: results.Stringify(v)})
	}

	for _, name := range PreferredOrder {
		preferred[name] = true
		add(name)
	}
	for _, name := range rec.Keys() {
		if !preferred[name] {
			add(name)
		}
	}
	return out
}

// Detail renders one record: its display id as a heading, then its fields.
func Detail(rec *types.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>%s</h2>\n", Escape(results.ResolveText(rec, results.IDFields)))
	b.WriteString("<dl class=\"detail\">\n")
	for _, f := range Fields(rec) {
		fmt.Fprintf(&b, "<dt>%s</dt>", Escape(f.Label))
		if strings.Contains(f.Value, "\n") {
			fmt.Fprintf(&b, "<dd><pre>%s</pre></dd>\n", Escape(f.Value))
		} else {
			fmt.Fprintf(&b, "<dd>%s</dd>\n", Escape(f.Value))
		}
	}
	b.WriteString("</dl>\n")
	return b.String()
}

// DetailAt renders record index of records.
func DetailAt(records []*types.Record, index int) (string, error) {
	if index < 0 || index >= len(records) {
		return "", fmt.Errorf("%w: %d (have %d)", types.ErrIndexOutOfRange, index, len(records))
	}
	return Detail(records[index]), nil
}
