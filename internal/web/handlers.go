package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/indiaviz/dataserver/internal/core"
	"github.com/indiaviz/dataserver/internal/logging"
)

// datasetStatus is one entry of the availability listing.
type datasetStatus struct {
	Name      string         `json:"name"`
	File      string         `json:"file"`
	Available bool           `json:"available"`
	Rows      int            `json:"rows,omitempty"`
	Info      *core.LoadInfo `json:"info,omitempty"`
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// handleListDatasets returns every registered dataset with its current
// availability. Listing loads each dataset, so a cold cache warms here.
func (s *Server) handleListDatasets(w http.ResponseWriter, r *http.Request) {
	defs := core.All()
	out := make([]datasetStatus, 0, len(defs))
	for _, def := range defs {
		st := datasetStatus{Name: def.Name, File: def.File}
		if t := s.loader.Load(def.Name); t != nil {
			st.Available = true
			st.Rows = t.NumRows()
			if info, ok := s.loader.Info(def.Name); ok {
				st.Info = &info
			}
		}
		out = append(out, st)
	}
	writeJSON(w, out)
}

// handleGetDataset returns one normalized table as column-oriented JSON.
// Unknown and unavailable datasets both answer 404 with a structured body;
// the client cannot tell a missing file from an unregistered name, and
// does not need to.
func (s *Server) handleGetDataset(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	t := s.loader.Load(name)
	if t == nil {
		logging.FromContext(r.Context()).Warn("dataset unavailable", "dataset", name)
		writeError(w, http.StatusNotFound, "dataset unavailable: "+name)
		return
	}
	writeJSON(w, t)
}

// handleDatasetInfo returns cache metadata for a loaded dataset.
func (s *Server) handleDatasetInfo(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	info, ok := s.loader.Info(name)
	if !ok {
		writeError(w, http.StatusNotFound, "dataset not loaded: "+name)
		return
	}
	writeJSON(w, info)
}

// preloadRequest optionally restricts preloading to named datasets.
type preloadRequest struct {
	Datasets []string `json:"datasets"`
}

// handlePreload loads the requested datasets (all registered when the body
// is empty or names none) and reports which came up.
func (s *Server) handlePreload(w http.ResponseWriter, r *http.Request) {
	var req preloadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	logger := logging.WithFields(r.Context(), "requested", len(req.Datasets))

	loaded := s.loader.Preload(req.Datasets)
	out := make(map[string]bool, len(loaded))
	available := 0
	for name, t := range loaded {
		out[name] = t != nil
		if t != nil {
			available++
		}
	}
	logger.Info("preload completed", "available", available, "total", len(loaded))
	writeJSON(w, map[string]any{"loaded": out})
}

// handleLiteracyGap serves the per-state gender literacy view derived from
// the education sheet.
func (s *Server) handleLiteracyGap(w http.ResponseWriter, r *http.Request) {
	view := core.GenderLiteracyView(s.loader.Load("education"))
	if view == nil {
		writeError(w, http.StatusNotFound, "dataset unavailable: education")
		return
	}
	writeJSON(w, view)
}
