// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/pdiddy/patent-search/internal/export"
	"github.com/pdiddy/patent-search/internal/logger"
	"github.com/pdiddy/patent-search/internal/metrics"
	"github.com/pdiddy/patent-search/internal/render"
	"github.com/pdiddy/patent-search/internal/search"
	"github.com/pdiddy/patent-search/pkg/types"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	writeTemplate(w, r, http.StatusOK, "page", s.newPageView(sess.Snapshot()))
}

// handleSearch validates the form, runs the remote search outside the
// session lock and applies the response only if no newer search or clear
// happened meanwhile.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	log := logger.FromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	req, err := parseSearchForm(r)
	if err != nil {
		metrics.SearchesRejected.WithLabelValues(rejectReason(err)).Inc()
		sess.Reject(err)
		log.Info("search rejected", zap.String("session", sess.ID), zap.Error(err))
		s.writePanel(w, r, http.StatusUnprocessableEntity, sess)
		return
	}

	gen := sess.BeginSearch()
	rs, err := s.searcher.Search(r.Context(), req)
	if err != nil {
		if !sess.FailSearch(gen, err) {
			metrics.StaleResponses.Inc()
			s.writePanel(w, r, http.StatusOK, sess)
			return
		}
		log.Warn("search failed", zap.String("session", sess.ID), zap.Error(err))
		s.writePanel(w, r, http.StatusBadGateway, sess)
		return
	}

	if !sess.ApplyResults(gen, rs) {
		metrics.StaleResponses.Inc()
		log.Debug("stale search response discarded", zap.Uint64("generation", gen))
	}
	s.writePanel(w, r, http.StatusOK, sess)
}

// parseSearchForm treats only an empty limit field as unspecified.
func parseSearchForm(r *http.Request) (types.SearchRequest, error) {
	limit := 0
	if raw := strings.TrimSpace(r.PostFormValue("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return types.SearchRequest{}, search.ErrInvalidLimit
		}
		limit = n
	}
	return search.BuildRequest(r.PostFormValue("q"), r.PostFormValue("operator"), limit)
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, search.ErrEmptyQuery):
		return "empty"
	case errors.Is(err, search.ErrTooManyKeywords):
		return "too_many_keywords"
	case errors.Is(err, search.ErrInvalidOperator):
		return "invalid_operator"
	case errors.Is(err, search.ErrInvalidLimit):
		return "invalid_limit"
	default:
		return "other"
	}
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	sess.Clear()
	s.writePanel(w, r, http.StatusOK, sess)
}

// handleRecord opens the detail viewer on one row and returns its fragment.
func (s *Server) handleRecord(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "bad index", http.StatusBadRequest)
		return
	}
	if err := sess.Open(index); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	snap := sess.Snapshot()
	detail, err := render.DetailAt(snap.Results.Records, snap.Viewer)
	if err != nil {
		// A newer search replaced the results between Open and Snapshot.
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeHTML(w, http.StatusOK, detail)
}

func (s *Server) handleCloseViewer(w http.ResponseWriter, r *http.Request) {
	sessionFrom(r).CloseViewer()
	w.WriteHeader(http.StatusNoContent)
}

// handleToggle updates one row and returns the refreshed controls, since
// the select-all box, count and button states depend on it.
func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "bad index", http.StatusBadRequest)
		return
	}
	sess.Toggle(index, formBool(r, "checked"))
	writeHTML(w, http.StatusOK, render.Controls(sess.Snapshot().Selection))
}

func (s *Server) handleSelectAll(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	sess.SelectAll(formBool(r, "checked"))
	s.writePanel(w, r, http.StatusOK, sess)
}

func formBool(r *http.Request, key string) bool {
	v, err := strconv.ParseBool(r.PostFormValue(key))
	return err == nil && v
}

// handlePrint returns the printable document for the selection. Nothing
// selected is a no-op.
func (s *Server) handlePrint(w http.ResponseWriter, r *http.Request) {
	doc := export.Printable(sessionFrom(r).SelectedRecords())
	if doc == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeHTML(w, http.StatusOK, doc)
}

// handleDownload serves the selection as a JSON (default) or YAML
// attachment. Nothing selected is a no-op.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := export.Encode(sessionFrom(r).SelectedRecords(), format)
	if err != nil {
		logger.FromContext(r.Context()).Error("encode export", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if data == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="`+format.Filename()+`"`)
	_, _ = w.Write(data)
}
