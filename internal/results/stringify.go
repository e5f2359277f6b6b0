// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package results

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/patent-search/pkg/types"
)

// Stringify converts a record value to display text. Sequences are joined
// with ", "; nested records become 2-space indented JSON in field order.
// The output is plain text: callers escape it for markup.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case []any:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = Stringify(e)
		}
		return strings.Join(parts, ", ")
	case *types.Record:
		return Dump(t)
	}
	return fmt.Sprint(v)
}

// Dump renders a whole record as 2-space indented JSON. It is the text used
// for nested values, the printable view and the CLI detail output.
func Dump(rec *types.Record) string {
	raw, err := rec.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<unprintable record: %v>", err)
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return string(raw)
	}
	return out.String()
}
