// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"

	"github.com/pdiddy/patent-search/internal/results"
)

// NoResults is the placeholder text shown instead of an empty table body.
const NoResults = "No results found."

// Selector reports row selection state to the renderers.
type Selector interface {
	Contains(index int) bool
	IsAllSelected() bool
	HasSelection() bool
	Len() int
}

// Table renders the table body: one row per result with a selection
// checkbox, the 1-based position, id, date and title, in that order.
func Table(rows []results.Row, sel Selector) string {
	if len(rows) == 0 {
		return `<tr class="placeholder"><td colspan="5">` + NoResults + `</td></tr>` + "\n"
	}

	var b strings.Builder
	for _, r := range rows {
		checked := ""
		if sel.Contains(r.SourceIndex) {
			checked = " checked"
		}
		fmt.Fprintf(&b, `<tr class="result-row" data-index="%d">`, r.SourceIndex)
		fmt.Fprintf(&b, `<td><input type="checkbox" class="row-select" data-index="%d"%s></td>`, r.SourceIndex, checked)
		fmt.Fprintf(&b, `<td>%d</td>`, r.SourceIndex+1)
		fmt.Fprintf(&b, `<td>%s</td>`, Escape(r.DisplayID))
		fmt.Fprintf(&b, `<td>%s</td>`, Escape(r.DisplayDate))
		fmt.Fprintf(&b, `<td>%s</td>`, Escape(r.DisplayTitle))
		b.WriteString("</tr>\n")
	}
	return b.String()
}

// Summary reports the server's counts as given.
func Summary(total, shown int) string {
	return fmt.Sprintf("Found %d total records (showing %d)", total, shown)
}

// Controls renders the select-all checkbox and the selection-dependent
// buttons. Print and download are disabled while nothing is selected.
func Controls(sel Selector) string {
	allChecked := ""
	if sel.IsAllSelected() {
		allChecked = " checked"
	}
	disabled := ""
	if !sel.HasSelection() {
		disabled = " disabled"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<label><input type="checkbox" id="select-all"%s> Select all</label>`, allChecked)
	fmt.Fprintf(&b, ` <span class="selected-count">%d selected</span>`, sel.Len())
	fmt.Fprintf(&b, ` <button type="button" id="print-btn"%s>Print</button>`, disabled)
	fmt.Fprintf(&b, ` <button type="button" id="download-btn"%s>Download</button>`, disabled)
	return b.String()
}
