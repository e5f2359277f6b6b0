// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/patent-search/internal/httputil"
	"github.com/pdiddy/patent-search/internal/logger"
	"github.com/pdiddy/patent-search/internal/metrics"
	"github.com/pdiddy/patent-search/pkg/types"
)

// maxErrorBody bounds how much of a failed response is quoted back.
const maxErrorBody = 2048

// DSAPIBackend queries one DSAPI dataset.
type DSAPIBackend struct {
	Client  *http.Client
	Limiter *httputil.HostLimiter
	Config  types.SearchConfig
}

// NewDSAPIBackend builds a backend with an HTTP client configured from cfg.
func NewDSAPIBackend(cfg types.SearchConfig) *DSAPIBackend {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in via config
	}
	return &DSAPIBackend{
		Client:  &http.Client{Timeout: cfg.Timeout, Transport: transport},
		Limiter: httputil.NewHostLimiter(cfg.RequestsPerSecond, cfg.Burst),
		Config:  cfg,
	}
}

func (b *DSAPIBackend) endpoint(name string) string {
	return strings.TrimRight(b.Config.BaseURL, "/") + "/" + b.Config.Dataset + "/" + b.Config.Version + "/" + name
}

// Search posts the request's criteria to the records endpoint and returns
// the documents with the server-reported total.
func (b *DSAPIBackend) Search(ctx context.Context, req types.SearchRequest) (types.ResultSet, error) {
	if len(req.Keywords) == 0 {
		return types.ResultSet{}, ErrEmptyQuery
	}
	log := logger.FromContext(ctx)

	criteria := Criteria(req)
	form := url.Values{
		"criteria": {criteria},
		"start":    {"0"},
		"rows":     {strconv.Itoa(Rows(req.Limit))},
	}
	reqURL := b.endpoint("records")

	if err := b.Limiter.Wait(ctx, reqURL); err != nil {
		return types.ResultSet{}, remoteErrorf(0, err, "Error making request: %v", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, strings.NewReader(form.Encode()))
	if err != nil {
		return types.ResultSet{}, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if b.Config.UserAgent != "" {
		httpReq.Header.Set("User-Agent", b.Config.UserAgent)
	}

	start := time.Now()
	resp, err := httputil.DoWithRetry(ctx, b.Client, httpReq, b.Config.MaxRetries)
	if err != nil {
		metrics.ObserveRemoteSearch("transport_error", time.Since(start))
		return types.ResultSet{}, remoteErrorf(0, err, "Error making request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ObserveRemoteSearch("http_error", time.Since(start))
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return types.ResultSet{}, remoteErrorf(resp.StatusCode, nil,
			"API Error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	payload, err := types.DecodeJSON(resp.Body)
	if err != nil {
		metrics.ObserveRemoteSearch("decode_error", time.Since(start))
		return types.ResultSet{}, remoteErrorf(resp.StatusCode, err, "Error reading API response: %v", err)
	}
	metrics.ObserveRemoteSearch("ok", time.Since(start))

	rs := resultSetFrom(payload)
	rs.Query = criteria

	log.Debug("remote search finished",
		zap.String("criteria", criteria),
		zap.Int("total", rs.Total),
		zap.Int("shown", rs.Shown),
		zap.Duration("latency", time.Since(start)),
	)
	return rs, nil
}

// Fields returns the dataset's searchable field description as decoded JSON.
func (b *DSAPIBackend) Fields(ctx context.Context) (any, error) {
	reqURL := b.endpoint("fields")
	if err := b.Limiter.Wait(ctx, reqURL); err != nil {
		return nil, remoteErrorf(0, err, "Error making request: %v", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if b.Config.UserAgent != "" {
		httpReq.Header.Set("User-Agent", b.Config.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, b.Client, httpReq, b.Config.MaxRetries)
	if err != nil {
		return nil, remoteErrorf(0, err, "Error making request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, remoteErrorf(resp.StatusCode, nil, "Status %d", resp.StatusCode)
	}

	v, err := types.DecodeJSON(resp.Body)
	if err != nil {
		return nil, remoteErrorf(resp.StatusCode, err, "Error reading API response: %v", err)
	}
	return v, nil
}

// resultSetFrom accepts the three payload shapes the API has been seen to
// return: a Solr envelope {"response":{"docs":[...],"numFound":N}}, a bare
// {"docs":[...]}, or a single document object.
func resultSetFrom(payload any) types.ResultSet {
	root, ok := payload.(*types.Record)
	if !ok {
		return types.ResultSet{}
	}

	if v, ok := root.Get("response"); ok {
		if env, ok := v.(*types.Record); ok {
			docsVal, _ := env.Get("docs")
			docs := recordsFrom(docsVal)
			numFound, _ := env.Get("numFound")
			return types.ResultSet{Records: docs, Total: intFrom(numFound), Shown: len(docs)}
		}
	}

	if v, ok := root.Get("docs"); ok {
		docs := recordsFrom(v)
		return types.ResultSet{Records: docs, Total: len(docs), Shown: len(docs)}
	}

	return types.ResultSet{Records: []*types.Record{root}, Total: 1, Shown: 1}
}

func recordsFrom(v any) []*types.Record {
	arr, ok := v.([]any)
	if !ok {
		return []*types.Record{}
	}
	out := make([]*types.Record, 0, len(arr))
	for _, e := range arr {
		if rec, ok := e.(*types.Record); ok {
			out = append(out, rec)
		}
	}
	return out
}

func intFrom(v any) int {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i)
		}
		if f, err := n.Float64(); err == nil {
			return int(f)
		}
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i
		}
	}
	return 0
}
