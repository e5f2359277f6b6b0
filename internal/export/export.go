// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export serializes the selected records for download or printing.
// Every function treats an empty selection as a no-op and returns an empty
// payload; delivering the payload is up to the caller.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/patent-search/internal/render"
	"github.com/pdiddy/patent-search/internal/results"
	"github.com/pdiddy/patent-search/pkg/types"
)

// Download file names.
const (
	JSONFilename = "patent_search_results.json"
	YAMLFilename = "patent_search_results.yaml"
)

// Format selects the download encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "" (json).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", string(FormatJSON):
		return FormatJSON, nil
	case string(FormatYAML), "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported format %q: use json or yaml", s)
}

// Filename returns the fixed download name for f.
func (f Format) Filename() string {
	if f == FormatYAML {
		return YAMLFilename
	}
	return JSONFilename
}

// ContentType returns the MIME type for f.
func (f Format) ContentType() string {
	if f == FormatYAML {
		return "application/yaml"
	}
	return "application/json"
}

// Encode serializes records in format f.
func Encode(records []*types.Record, f Format) ([]byte, error) {
	if f == FormatYAML {
		return YAML(records)
	}
	return JSON(records)
}

// JSON returns records as an indented JSON array, fields in record order.
func JSON(records []*types.Record) ([]byte, error) {
	if len(records) == 0 {
		return nil, nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return buf.Bytes(), nil
}

// YAML returns records as a YAML sequence, fields in record order.
func YAML(records []*types.Record) ([]byte, error) {
	if len(records) == 0 {
		return nil, nil
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("marshaling YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshaling YAML: %w", err)
	}
	return buf.Bytes(), nil
}

// Printable returns a standalone HTML document listing records: a title,
// the record count, and one table row per record with id, date and the
// full indented dump.
func Printable(records []*types.Record) string {
	if len(records) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>Patent Search Results</title>\n")
	b.WriteString("<style>body{font-family:sans-serif}table{border-collapse:collapse;width:100%}" +
		"td,th{border:1px solid #999;padding:4px;vertical-align:top;text-align:left}pre{white-space:pre-wrap;margin:0}</style>\n")
	b.WriteString("</head>\n<body>\n<h1>Patent Search Results</h1>\n")
	fmt.Fprintf(&b, "<p>%d selected record(s)</p>\n", len(records))
	b.WriteString("<table>\n<tr><th>#</th><th>ID</th><th>Date</th><th>Record</th></tr>\n")
	for i, rec := range records {
		fmt.Fprintf(&b, "<tr><td>%d</td><td>%s</td><td>%s</td><td><pre>%s</pre></td></tr>\n",
			i+1,
			render.Escape(results.ResolveText(rec, results.IDFields)),
			render.Escape(results.ResolveText(rec, results.DateFields)),
			render.Escape(results.Dump(rec)),
		)
	}
	b.WriteString("</table>\n</body>\n</html>\n")
	return b.String()
}
