package api

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/erdgraph/pkg/buildinfo"
	"github.com/matzehuels/erdgraph/pkg/errors"
	"github.com/matzehuels/erdgraph/pkg/graph"
	erdio "github.com/matzehuels/erdgraph/pkg/io"
	"github.com/matzehuels/erdgraph/pkg/pipeline"
	"github.com/matzehuels/erdgraph/pkg/store"
)

// createResponse is returned by POST /api/layouts.
type createResponse struct {
	ID          string       `json:"id"`
	DiagramHash string       `json:"diagram_hash"`
	CacheHit    bool         `json:"cache_hit"`
	Layout      graph.Layout `json:"layout"`
}

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Get()})
}

// handleCreateLayout lays out the JSON diagram in the body. The query
// parameters skip_junctions and refresh map onto the pipeline options.
func (s *Server) handleCreateLayout(w http.ResponseWriter, r *http.Request) {
	opts, err := optionsFromQuery(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	d, err := erdio.ReadDiagram(body, erdio.FormatJSON)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.runner.Execute(r.Context(), d, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	entry := store.NewEntry(res.Layout, res.DiagramHash, store.DefaultTTL)
	if err := s.store.Save(r.Context(), entry); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "save layout"))
		return
	}

	w.Header().Set("Location", "/api/layouts/"+entry.ID)
	writeJSON(w, http.StatusCreated, createResponse{
		ID:          entry.ID,
		DiagramHash: res.DiagramHash,
		CacheHit:    res.CacheHit,
		Layout:      res.Layout,
	})
}

func (s *Server) handleGetLayout(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidateLayoutID(id); err != nil {
		s.writeError(w, r, err)
		return
	}

	entry, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, storeError(err, id))
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleDeleteLayout(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidateLayoutID(id); err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.store.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, storeError(err, id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func optionsFromQuery(r *http.Request) (pipeline.Options, error) {
	var opts pipeline.Options
	q := r.URL.Query()
	for name, dst := range map[string]*bool{
		"skip_junctions": &opts.SkipJunctions,
		"refresh":        &opts.Refresh,
	} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "query %s: %q is not a boolean", name, v)
		}
		*dst = b
	}
	return opts, nil
}

func storeError(err error, id string) error {
	if stderrors.Is(err, store.ErrNotFound) {
		return errors.New(errors.ErrCodeNotFound, "layout %s not found", id)
	}
	return errors.Wrap(errors.ErrCodeInternal, err, "load layout %s", id)
}

// statusFor maps an error code onto an HTTP status.
func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case stderrors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, errors.ErrCodeNotFound):
		return http.StatusNotFound
	case errors.IsClientError(err):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	resp := errorResponse{
		Error:     errors.UserMessage(err),
		Code:      string(errors.GetCode(err)),
		RequestID: middleware.GetReqID(r.Context()),
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err, "request_id", resp.RequestID)
		resp.Error = "internal error"
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
