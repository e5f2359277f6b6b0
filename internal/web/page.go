// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package web

import (
	"bytes"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/pdiddy/patent-search/internal/logger"
	"github.com/pdiddy/patent-search/internal/render"
	"github.com/pdiddy/patent-search/internal/results"
	"github.com/pdiddy/patent-search/internal/search"
	"github.com/pdiddy/patent-search/internal/session"
)

// panelView is the results area: notice, summary, controls and table.
// Fragment fields are produced by the render package, which escapes every
// record-derived string.
type panelView struct {
	Notice     *session.Notice
	Loading    bool
	HasResults bool
	Summary    string
	Controls   template.HTML
	Rows       template.HTML
	Viewer     template.HTML
}

type pageView struct {
	Panel        panelView
	Limit        int
	MaxKeywords  int
	NoticeMillis int64
}

func newPanelView(snap session.Snapshot) panelView {
	p := panelView{
		Notice:     snap.Notice,
		Loading:    snap.Loading,
		HasResults: snap.HasResults,
	}
	if !snap.HasResults {
		return p
	}
	p.Summary = render.Summary(snap.Results.Total, snap.Results.Shown)
	p.Controls = template.HTML(render.Controls(snap.Selection))
	p.Rows = template.HTML(render.Table(results.ToRows(snap.Results.Records), snap.Selection))
	if snap.Viewer >= 0 {
		if detail, err := render.DetailAt(snap.Results.Records, snap.Viewer); err == nil {
			p.Viewer = template.HTML(detail)
		}
	}
	return p
}

func (s *Server) newPageView(snap session.Snapshot) pageView {
	return pageView{
		Panel:        newPanelView(snap),
		Limit:        search.DefaultLimit,
		MaxKeywords:  search.MaxKeywords,
		NoticeMillis: s.noticeTTL.Milliseconds(),
	}
}

// writeTemplate renders into a buffer first so a template error still
// produces a clean 500.
func writeTemplate(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		logger.FromContext(r.Context()).Error("render template", zap.String("template", name), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeHTML(w, status, buf.String())
}

func writeHTML(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func (s *Server) writePanel(w http.ResponseWriter, r *http.Request, status int, sess *session.Session) {
	writeTemplate(w, r, status, "panel", newPanelView(sess.Snapshot()))
}
