// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package results

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/patent-search/pkg/types"
)

func parseRecord(t *testing.T, s string) *types.Record {
	t.Helper()
	rec := types.NewRecord()
	require.NoError(t, json.Unmarshal([]byte(s), rec))
	return rec
}

func TestToRow(t *testing.T) {
	longSummary := strings.Repeat("abcdefghij", 8)

	tests := []struct {
		name   string
		record string
		want   Row
	}{
		{
			name:   "publication number and office action date",
			record: `{"publicationNumber":"US123","officeActionDate":"2020-01-01"}`,
			want:   Row{DisplayID: "US123", DisplayDate: "2020-01-01", DisplayTitle: "N/A"},
		},
		{
			name:   "publicationNumber wins over patent_number",
			record: `{"patent_number":"999","publicationNumber":"US1","id":"x"}`,
			want:   Row{DisplayID: "US1", DisplayDate: "N/A", DisplayTitle: "N/A"},
		},
		{
			name:   "null falls through to next candidate",
			record: `{"publicationNumber":null,"patent_number":"999","officeActionDate":null,"createDateTime":"2021-02-03T04:05:06"}`,
			want:   Row{DisplayID: "999", DisplayDate: "2021-02-03T04:05:06", DisplayTitle: "N/A"},
		},
		{
			name:   "numeric id is stringified",
			record: `{"id":12345678901,"publication_date":"2018-07-07"}`,
			want:   Row{DisplayID: "12345678901", DisplayDate: "2018-07-07", DisplayTitle: "N/A"},
		},
		{
			name:   "first inventor from a sequence",
			record: `{"id":"a","inventorNameText":["Curie","Bohr"]}`,
			want:   Row{DisplayID: "a", DisplayDate: "N/A", DisplayTitle: "Curie"},
		},
		{
			name:   "scalar inventor",
			record: `{"id":"a","inventorNameText":"Tesla","qualitySummaryText":"ignored"}`,
			want:   Row{DisplayID: "a", DisplayDate: "N/A", DisplayTitle: "Tesla"},
		},
		{
			name:   "empty inventor list falls back to summary",
			record: `{"id":"a","inventorNameText":[],"qualitySummaryText":"short"}`,
			want:   Row{DisplayID: "a", DisplayDate: "N/A", DisplayTitle: "short..."},
		},
		{
			name:   "long summary truncated to 50 characters",
			record: `{"id":"a","qualitySummaryText":"` + longSummary + `"}`,
			want:   Row{DisplayID: "a", DisplayDate: "N/A", DisplayTitle: longSummary[:50] + "..."},
		},
		{
			name:   "empty record",
			record: `{}`,
			want:   Row{DisplayID: "N/A", DisplayDate: "N/A", DisplayTitle: "N/A"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToRow(parseRecord(t, tt.record), 4)
			tt.want.SourceIndex = 4
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToRowTruncatesByCharacter(t *testing.T) {
	summary := strings.Repeat("é", 60)
	rec := types.NewRecord().Set("qualitySummaryText", summary)
	got := ToRow(rec, 0).DisplayTitle
	assert.Equal(t, strings.Repeat("é", 50)+"...", got)
}

func TestToRowDeterministic(t *testing.T) {
	rec := parseRecord(t, `{"patent_number":"7","inventorNameText":["A","B"],"nested":{"x":1}}`)
	first := ToRow(rec, 2)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, ToRow(rec, 2))
	}
}

func TestToRows(t *testing.T) {
	recs := []*types.Record{
		types.NewRecord().Set("id", "a"),
		types.NewRecord().Set("id", "b"),
	}
	rows := ToRows(recs)
	require.Len(t, rows, 2)
	assert.Equal(t, "b", rows[1].DisplayID)
	assert.Equal(t, 1, rows[1].SourceIndex)
}
