// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package results projects raw API records onto the fixed columns of the
// results table and converts arbitrary field values to display text.
package results

import (
	"github.com/pdiddy/patent-search/pkg/types"
)

// NotAvailable is shown when none of a column's candidate fields is set.
const NotAvailable = "N/A"

// titleSummaryLen is how many characters of qualitySummaryText a title keeps.
const titleSummaryLen = 50

// Candidate fields per column, highest priority first. Records from the
// same dataset disagree on naming, so each column tries several.
var (
	IDFields      = []string{"publicationNumber", "patent_number", "id"}
	DateFields    = []string{"officeActionDate", "publication_date", "createDateTime"}
	inventorField = "inventorNameText"
	summaryField  = "qualitySummaryText"
)

// Row is the table projection of one record. It is recomputed from the
// record on demand and never stored on its own.
type Row struct {
	DisplayID    string
	DisplayDate  string
	DisplayTitle string

	// SourceIndex is the record's 0-based position in its ResultSet.
	SourceIndex int
}

// Resolve returns the value of the first key in keys that rec holds with a
// non-null value.
func Resolve(rec *types.Record, keys []string) (any, bool) {
	for _, k := range keys {
		if v, ok := rec.Get(k); ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// ResolveText is Resolve followed by Stringify, with NotAvailable when no
// key matches.
func ResolveText(rec *types.Record, keys []string) string {
	if v, ok := Resolve(rec, keys); ok {
		return Stringify(v)
	}
	return NotAvailable
}

// ToRow projects rec onto the table columns.
func ToRow(rec *types.Record, sourceIndex int) Row {
	return Row{
		DisplayID:    ResolveText(rec, IDFields),
		DisplayDate:  ResolveText(rec, DateFields),
		DisplayTitle: title(rec),
		SourceIndex:  sourceIndex,
	}
}

// ToRows projects every record of a result set, in order.
func ToRows(records []*types.Record) []Row {
	rows := make([]Row, len(records))
	for i, rec := range records {
		rows[i] = ToRow(rec, i)
	}
	return rows
}

// title uses the first inventor when there is one, then a prefix of the
// quality summary. An empty inventor list counts as absent.
func title(rec *types.Record) string {
	if v, ok := Resolve(rec, []string{inventorField}); ok {
		if seq, isSeq := v.([]any); !isSeq {
			return Stringify(v)
		} else if len(seq) > 0 {
			return Stringify(seq[0])
		}
	}
	if v, ok := Resolve(rec, []string{summaryField}); ok {
		return truncate(Stringify(v), titleSummaryLen) + "..."
	}
	return NotAvailable
}

// truncate returns the first n characters of s.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
