// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/pdiddy/patent-search/pkg/types"
)

const (
	// MaxKeywords is the largest number of terms a single search accepts.
	MaxKeywords = 5

	// DefaultLimit is the row count requested when the caller gives none.
	DefaultLimit = 500

	// maxRows is the DSAPI ceiling for the rows form field.
	maxRows = 10000
)

// ErrValidation is wrapped by every input error BuildRequest returns. The
// remote API is never called for a request that fails validation.
var ErrValidation = errors.New("invalid search")

var (
	ErrEmptyQuery      = fmt.Errorf("%w: please provide at least one keyword", ErrValidation)
	ErrTooManyKeywords = fmt.Errorf("%w: at most %d keywords are allowed", ErrValidation, MaxKeywords)
	ErrInvalidOperator = fmt.Errorf("%w: operator must be AND or OR", ErrValidation)
	ErrInvalidLimit    = fmt.Errorf("%w: limit must be a positive integer", ErrValidation)
)

// BuildRequest turns the raw search box text, the operator choice and an
// optional limit into a SearchRequest. Keywords are split on whitespace and
// keep their order. An empty operator means AND; a zero limit means
// DefaultLimit.
func BuildRequest(rawText, operator string, limit int) (types.SearchRequest, error) {
	return BuildRequestFromKeywords(strings.Fields(rawText), operator, limit)
}

// BuildRequestFromKeywords validates an already separated keyword list.
// Each element is trimmed and empty ones are dropped; an element with inner
// spaces stays a single keyword.
func BuildRequestFromKeywords(keywords []string, operator string, limit int) (types.SearchRequest, error) {
	kept := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			kept = append(kept, kw)
		}
	}
	if len(kept) == 0 {
		return types.SearchRequest{}, ErrEmptyQuery
	}
	if len(kept) > MaxKeywords {
		return types.SearchRequest{}, ErrTooManyKeywords
	}

	op, err := parseOperator(operator)
	if err != nil {
		return types.SearchRequest{}, err
	}

	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < 0 {
		return types.SearchRequest{}, ErrInvalidLimit
	}

	return types.SearchRequest{
		Keywords: kept,
		Operator: op,
		Limit:    limit,
	}, nil
}

func parseOperator(s string) (types.Operator, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(types.OperatorAnd):
		return types.OperatorAnd, nil
	case string(types.OperatorOr):
		return types.OperatorOr, nil
	}
	return "", ErrInvalidOperator
}

// Criteria builds the Lucene criteria string for a request: each keyword
// becomes a prefix match across all fields, joined by the operator.
func Criteria(req types.SearchRequest) string {
	parts := make([]string, len(req.Keywords))
	for i, kw := range req.Keywords {
		parts[i] = "*:" + escapeLucene(kw) + "*"
	}
	return strings.Join(parts, " "+string(req.Operator)+" ")
}

// Rows returns the rows form value for a limit, capped at the API maximum.
func Rows(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > maxRows {
		return maxRows
	}
	return limit
}

// luceneSpecial lists characters with meaning in Lucene query syntax. The
// trailing '*' of each term is ours, so a user-typed one is escaped too.
const luceneSpecial = `+-&|!(){}[]^"~*?:\/`

// escapeLucene backslash-escapes Lucene metacharacters in a keyword.
// Whitespace is escaped too so a multi-word keyword stays one term.
func escapeLucene(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(luceneSpecial, r) || unicode.IsSpace(r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
