package handlers

import (
	"bytes"
	"net/http"

	g "maragu.dev/gomponents"

	"github.com/pr-poehali-dev/ai-promotion-design/internal/components"
	"github.com/pr-poehali-dev/ai-promotion-design/pkg/apperror"
)

// LandingPage renders the full page for the caller's session.
func (h *Handler) LandingPage(w http.ResponseWriter, r *http.Request) error {
	ctrl := h.session(w, r)
	return writeHTML(w, components.LandingPage(ctrl.State()), "failed to render page")
}

// AnalysisFragment renders only the analysis status block, for the page
// script to swap in after an analysis event.
func (h *Handler) AnalysisFragment(w http.ResponseWriter, r *http.Request) error {
	ctrl := h.session(w, r)
	return writeHTML(w, components.AnalysisStatus(ctrl.State().Analysis), "failed to render analysis")
}

// writeHTML renders n fully before anything is sent, so a render error
// still produces a clean error response.
func writeHTML(w http.ResponseWriter, n g.Node, failure string) error {
	var buf bytes.Buffer
	if err := n.Render(&buf); err != nil {
		return apperror.NewInternal(failure, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, err := buf.WriteTo(w)
	return err
}
