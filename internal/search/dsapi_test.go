// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/patent-search/internal/httputil"
	"github.com/pdiddy/patent-search/pkg/types"
)

func init() {
	httputil.RetryBaseDelay = time.Millisecond
}

const sampleSolrJSON = `{
  "response": {
    "numFound": 1432,
    "start": 0,
    "docs": [
      {"publicationNumber": "US123", "officeActionDate": "2020-01-01", "techCenter": "1600"},
      {"patent_number": "9876543", "publication_date": "2019-05-05", "inventorNameText": ["Smith", "Jones"]}
    ]
  }
}`

func testConfig(base string) types.SearchConfig {
	return types.SearchConfig{
		HTTPConfig: types.HTTPConfig{Timeout: 5 * time.Second, UserAgent: "test/0.1"},
		BaseURL:    base,
		Dataset:    "enriched_cited_reference_metadata",
		Version:    "v3",
		MaxRetries: 1,
	}
}

func dsapiTestServer(statusCode int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		fmt.Fprint(w, body)
	}))
}

func testRequest() types.SearchRequest {
	return types.SearchRequest{Keywords: []string{"adenocarcinoma", "benign", "treatment"}, Operator: types.OperatorAnd, Limit: 500}
}

func TestDSAPIBackendSearch(t *testing.T) {
	var gotPath, gotAccept, gotUA string
	var gotForm url.Values
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		gotUA = r.Header.Get("User-Agent")
		_ = r.ParseForm()
		gotForm = r.PostForm
		fmt.Fprint(w, sampleSolrJSON)
	}))
	defer ts.Close()

	b := NewDSAPIBackend(testConfig(ts.URL))
	rs, err := b.Search(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, "/enriched_cited_reference_metadata/v3/records", gotPath)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "test/0.1", gotUA)
	assert.Equal(t, "*:adenocarcinoma* AND *:benign* AND *:treatment*", gotForm.Get("criteria"))
	assert.Equal(t, "0", gotForm.Get("start"))
	assert.Equal(t, "500", gotForm.Get("rows"))

	assert.Equal(t, 1432, rs.Total)
	assert.Equal(t, 2, rs.Shown)
	require.Len(t, rs.Records, 2)
	assert.Equal(t, "*:adenocarcinoma* AND *:benign* AND *:treatment*", rs.Query)

	id, _ := rs.Records[0].Get("publicationNumber")
	assert.Equal(t, "US123", id)
	assert.Equal(t, []string{"publicationNumber", "officeActionDate", "techCenter"}, rs.Records[0].Keys())
}

func TestDSAPIBackendResponseShapes(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantTotal int
		wantShown int
	}{
		{"solr envelope", sampleSolrJSON, 1432, 2},
		{"bare docs", `{"docs":[{"id":"a"},{"id":"b"},{"id":"c"}]}`, 3, 3},
		{"single object", `{"id":"lonely"}`, 1, 1},
		{"array payload", `[{"id":"a"}]`, 0, 0},
		{"empty envelope", `{"response":{"numFound":0,"docs":[]}}`, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := dsapiTestServer(http.StatusOK, tt.body)
			defer ts.Close()

			rs, err := NewDSAPIBackend(testConfig(ts.URL)).Search(context.Background(), testRequest())
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, rs.Total)
			assert.Equal(t, tt.wantShown, rs.Shown)
			assert.Len(t, rs.Records, tt.wantShown)
		})
	}
}

func TestDSAPIBackendRowsCapped(t *testing.T) {
	var rows string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		rows = r.PostForm.Get("rows")
		fmt.Fprint(w, `{"docs":[]}`)
	}))
	defer ts.Close()

	req := testRequest()
	req.Limit = 50000
	_, err := NewDSAPIBackend(testConfig(ts.URL)).Search(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "10000", rows)
}

func TestDSAPIBackendHTTPErrors(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		want       string
	}{
		{"bad request", http.StatusBadRequest, "bad criteria", "API Error 400: bad criteria"},
		{"server error", http.StatusInternalServerError, "", "API Error 500: "},
		{"rate limited after retries", http.StatusTooManyRequests, "slow down", "API Error 429: slow down"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := dsapiTestServer(tt.statusCode, tt.body)
			defer ts.Close()

			_, err := NewDSAPIBackend(testConfig(ts.URL)).Search(context.Background(), testRequest())
			var re *RemoteError
			require.True(t, errors.As(err, &re), "err = %v", err)
			assert.Equal(t, tt.statusCode, re.Status)
			assert.Equal(t, tt.want, re.Message)
		})
	}
}

func TestDSAPIBackendMalformedJSON(t *testing.T) {
	ts := dsapiTestServer(http.StatusOK, `{not json`)
	defer ts.Close()

	_, err := NewDSAPIBackend(testConfig(ts.URL)).Search(context.Background(), testRequest())
	var re *RemoteError
	require.ErrorAs(t, err, &re)
	assert.Contains(t, re.Message, "Error reading API response")
}

func TestDSAPIBackendUnreachable(t *testing.T) {
	ts := dsapiTestServer(http.StatusOK, `{}`)
	base := ts.URL
	ts.Close()

	_, err := NewDSAPIBackend(testConfig(base)).Search(context.Background(), testRequest())
	var re *RemoteError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, 0, re.Status)
	assert.Contains(t, re.Message, "Error making request")
}

func TestDSAPIBackendEmptyRequest(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer ts.Close()

	_, err := NewDSAPIBackend(testConfig(ts.URL)).Search(context.Background(), types.SearchRequest{})
	assert.ErrorIs(t, err, ErrEmptyQuery)
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestDSAPIBackendFields(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `{"fields":["publicationNumber","techCenter"]}`)
	}))
	defer ts.Close()

	v, err := NewDSAPIBackend(testConfig(ts.URL)).Fields(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/enriched_cited_reference_metadata/v3/fields", gotPath)

	rec, ok := v.(*types.Record)
	require.True(t, ok)
	fields, _ := rec.Get("fields")
	assert.Equal(t, []any{"publicationNumber", "techCenter"}, fields)
}

func TestDSAPIBackendFieldsError(t *testing.T) {
	ts := dsapiTestServer(http.StatusServiceUnavailable, "")
	defer ts.Close()

	_, err := NewDSAPIBackend(testConfig(ts.URL)).Fields(context.Background())
	var re *RemoteError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "Status 503", re.Message)
}
