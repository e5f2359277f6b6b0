// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/pdiddy/patent-search/internal/logger"
	"github.com/pdiddy/patent-search/internal/metrics"
	"github.com/pdiddy/patent-search/internal/search"
	"github.com/pdiddy/patent-search/pkg/types"
)

// apiSearchRequest is the body of POST /api/search.
type apiSearchRequest struct {
	Keywords []string `json:"keywords"`
	Operator string   `json:"operator"`
	Limit    *int     `json:"limit"`
}

// apiError is returned on failure. Results is always an empty array so
// clients can read it unconditionally.
type apiError struct {
	Error   string          `json:"error"`
	Results []*types.Record `json:"results"`
	Total   int             `json:"total"`
}

// handleAPISearch is the stateless JSON form of a search: it does not
// touch any session.
func (s *Server) handleAPISearch(w http.ResponseWriter, r *http.Request) {
	var body apiSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid JSON body", Results: []*types.Record{}})
		return
	}

	// An absent limit means the default; an explicit one must be positive.
	limit := 0
	if body.Limit != nil {
		if limit = *body.Limit; limit <= 0 {
			metrics.SearchesRejected.WithLabelValues(rejectReason(search.ErrInvalidLimit)).Inc()
			writeJSON(w, http.StatusBadRequest, apiError{Error: search.ErrInvalidLimit.Error(), Results: []*types.Record{}})
			return
		}
	}

	req, err := search.BuildRequestFromKeywords(body.Keywords, body.Operator, limit)
	if err != nil {
		metrics.SearchesRejected.WithLabelValues(rejectReason(err)).Inc()
		writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error(), Results: []*types.Record{}})
		return
	}

	rs, err := s.searcher.Search(r.Context(), req)
	if err != nil {
		logger.FromContext(r.Context()).Warn("api search failed", zap.Error(err))
		writeJSON(w, remoteStatus(err), apiError{Error: err.Error(), Results: []*types.Record{}})
		return
	}
	if rs.Records == nil {
		rs.Records = []*types.Record{}
	}
	writeJSON(w, http.StatusOK, rs)
}

// handleFields passes the dataset's field list through unchanged.
func (s *Server) handleFields(w http.ResponseWriter, r *http.Request) {
	if s.fields == nil {
		http.NotFound(w, r)
		return
	}
	v, err := s.fields.Fields(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Warn("fields lookup failed", zap.Error(err))
		writeJSON(w, remoteStatus(err), map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// remoteStatus maps a searcher failure to a response status. Bad input
// caught by the searcher is the caller's fault; anything else is upstream.
func remoteStatus(err error) int {
	if errors.Is(err, search.ErrValidation) {
		return http.StatusBadRequest
	}
	return http.StatusBadGateway
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
