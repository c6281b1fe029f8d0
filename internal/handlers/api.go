package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/pr-poehali-dev/ai-promotion-design/internal/analysis"
	"github.com/pr-poehali-dev/ai-promotion-design/internal/graph"
	"github.com/pr-poehali-dev/ai-promotion-design/pkg/apperror"
	"github.com/pr-poehali-dev/ai-promotion-design/pkg/metrics"
)

const maxBodyBytes = 64 << 10

// NavigateRequest is the body of POST /api/page/navigate.
type NavigateRequest struct {
	SectionID string `json:"sectionId" validate:"max=64"`
}

// AnalysisRequest is the body of POST /api/page/analysis. Blank text is
// not a validation error; the simulator ignores it.
type AnalysisRequest struct {
	Text string `json:"text"`
}

// AnalysisResponse reports whether a submission started an analysis.
type AnalysisResponse struct {
	Accepted bool              `json:"accepted"`
	Analysis analysis.Snapshot `json:"analysis"`
}

// GraphResponse is the hero graph in both node and edge form.
type GraphResponse struct {
	Nodes []graph.Node `json:"nodes"`
	Edges []graph.Edge `json:"edges"`
}

// State returns the session's page view as JSON.
func (h *Handler) State(w http.ResponseWriter, r *http.Request) error {
	ctrl := h.session(w, r)
	apperror.WriteJSON(w, http.StatusOK, ctrl.State())
	return nil
}

// Navigate highlights a section and asks the browser to scroll to it.
func (h *Handler) Navigate(w http.ResponseWriter, r *http.Request) error {
	var req NavigateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return err
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(err)
	}

	ctrl := h.session(w, r)
	if !ctrl.Allow() {
		metrics.Throttled.WithLabelValues("navigate").Inc()
		return apperror.ErrTooManyRequests
	}
	apperror.WriteJSON(w, http.StatusOK, ctrl.Navigate(r.Context(), req.SectionID))
	return nil
}

// SubmitAnalysis starts the demo analysis. Ignored submissions (blank text
// or one already in flight) answer 200 with accepted=false.
func (h *Handler) SubmitAnalysis(w http.ResponseWriter, r *http.Request) error {
	var req AnalysisRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return err
	}
	if h.maxTextLength > 0 {
		if err := h.validate.Var(req.Text, fmt.Sprintf("max=%d", h.maxTextLength)); err != nil {
			return apperror.NewValidation(map[string]any{"text": fmt.Sprintf("must be at most %d characters", h.maxTextLength)})
		}
	}

	ctrl := h.session(w, r)
	if !ctrl.Allow() {
		metrics.Throttled.WithLabelValues("analysis").Inc()
		return apperror.ErrTooManyRequests
	}
	accepted := ctrl.SubmitAnalysis(req.Text)

	status := http.StatusOK
	if accepted {
		status = http.StatusAccepted
	}
	apperror.WriteJSON(w, status, AnalysisResponse{Accepted: accepted, Analysis: ctrl.State().Analysis})
	return nil
}

// Graph returns the session's decorative graph.
func (h *Handler) Graph(w http.ResponseWriter, r *http.Request) error {
	ctrl := h.session(w, r)
	gr := ctrl.Graph()

	edges := gr.Edges()
	if edges == nil {
		edges = []graph.Edge{}
	}
	apperror.WriteJSON(w, http.StatusOK, GraphResponse{Nodes: gr.Nodes(), Edges: edges})
	return nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return apperror.ErrRequestTooLarge
		case errors.Is(err, io.EOF):
			return apperror.NewBadRequest("request body is empty")
		default:
			return apperror.NewBadRequest("invalid JSON body").WithInternal(err)
		}
	}
	return nil
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.NewBadRequest("invalid request").WithInternal(err)
	}
	fields := make(map[string]any, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fmt.Sprintf("failed %s=%s", fe.Tag(), fe.Param())
	}
	return apperror.NewValidation(fields)
}
