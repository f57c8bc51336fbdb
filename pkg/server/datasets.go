package server

import (
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/elaraai/east-ui-sub007/pkg/dataset"
)

// handleGetDataset serves dataset content from the cache, fetching from the
// backing store on a miss. A poll query parameter subscribes the dataset to
// hash polling: either a Go duration or "on" for the configured default.
func (s *Server) handleGetDataset(w http.ResponseWriter, r *http.Request) {
	workspace := chi.URLParam(r, "workspace")
	path := chi.URLParam(r, "*")
	if path == "" {
		http.Error(w, "dataset path required", http.StatusBadRequest)
		return
	}

	if poll := r.URL.Query().Get("poll"); poll != "" {
		interval := s.config.DefaultPollInterval
		if poll != "on" {
			var err error
			interval, err = time.ParseDuration(poll)
			if err != nil {
				http.Error(w, "invalid poll interval", http.StatusBadRequest)
				return
			}
		}
		s.cache.SetRefetchInterval(workspace, path, interval)
	}

	data, err := s.cache.Preload(r.Context(), workspace, path)
	if err != nil {
		if dataset.IsNotFound(err) {
			http.Error(w, "dataset not found", http.StatusNotFound)
			return
		}
		s.logger.Error("dataset read failed",
			"workspace", workspace, "path", path, "error", err)
		http.Error(w, "dataset read failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("ETag", `"`+dataset.ContentHash(data)+`"`)
	w.Write(data)
}

func (s *Server) handlePutDataset(w http.ResponseWriter, r *http.Request) {
	workspace := chi.URLParam(r, "workspace")
	path := chi.URLParam(r, "*")
	if path == "" {
		http.Error(w, "dataset path required", http.StatusBadRequest)
		return
	}

	body := http.MaxBytesReader(w, r.Body, s.config.MaxDatasetSize)
	data, err := io.ReadAll(body)
	if err != nil {
		http.Error(w, "dataset too large", http.StatusRequestEntityTooLarge)
		return
	}

	if err := s.cache.Write(r.Context(), workspace, path, data); err != nil {
		s.logger.Error("dataset write failed",
			"workspace", workspace, "path", path, "error", err)
		http.Error(w, "dataset write failed", http.StatusBadGateway)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteDataset(w http.ResponseWriter, r *http.Request) {
	workspace := chi.URLParam(r, "workspace")
	path := chi.URLParam(r, "*")
	if path == "" {
		http.Error(w, "dataset path required", http.StatusBadRequest)
		return
	}

	if err := s.cache.Delete(r.Context(), workspace, path); err != nil {
		s.logger.Error("dataset delete failed",
			"workspace", workspace, "path", path, "error", err)
		http.Error(w, "dataset delete failed", http.StatusBadGateway)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
