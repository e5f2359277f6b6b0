// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data structures shared by the search, session,
// render and export stages of patent-search.
package types

// Operator joins the keywords of a search.
type Operator string

const (
	OperatorAnd Operator = "AND"
	OperatorOr  Operator = "OR"
)

// SearchRequest is a validated keyword search. Build one with
// search.BuildRequest; a zero value is not a valid request.
type SearchRequest struct {
	// Keywords holds 1 to 5 non-empty terms in the order the user typed them.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// Operator combines the keywords: AND or OR.
	Operator Operator `json:"operator" yaml:"operator"`

	// Limit is the maximum number of records to request (default 500).
	Limit int `json:"limit" yaml:"limit"`
}

// ResultSet holds the records returned for one search. It is replaced as a
// whole on every new search, never merged.
type ResultSet struct {
	// Records are the raw documents in the order the API returned them.
	Records []*Record `json:"results" yaml:"results"`

	// Total is the number of matches the server reports.
	Total int `json:"total" yaml:"total"`

	// Shown is the number of records the server returned.
	Shown int `json:"shown" yaml:"shown"`

	// Query is the criteria string sent to the API.
	Query string `json:"query,omitempty" yaml:"query,omitempty"`
}

// Len returns the number of records.
func (rs ResultSet) Len() int { return len(rs.Records) }
