package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/huangsam/moodtrack/core"
	"github.com/huangsam/moodtrack/internal/contract"
)

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// requestConfig applies the query overrides shared by the read endpoints.
func (s *Server) requestConfig(r *http.Request) (*contract.Config, error) {
	cfg := s.baseCfg.Clone()
	q := r.URL.Query()
	if v := q.Get("window"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		if err := contract.RevalidateWindow(cfg, n); err != nil {
			return nil, err
		}
	}
	if v := q.Get("end"); v != "" {
		if err := contract.RevalidateEnd(cfg, v); err != nil {
			return nil, err
		}
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		contract.OverrideNotesLimit(cfg, n)
	}
	if v := q.Get("granularity"); v != "" {
		g, err := contract.ParseGranularity(v)
		if err != nil {
			return nil, err
		}
		cfg.Granularity = g
	}
	return cfg, nil
}

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.requestConfig(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	entries, _, err := core.GetEntriesResults(r.Context(), cfg, s.mgr)
	if err != nil {
		writeCoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	rec, err := core.DecodeJSONRecord(r.Body)
	if errors.Is(err, core.ErrInvalidJSON) {
		writeError(w, http.StatusBadRequest, "validation_error", "invalid JSON body")
		return
	}
	if err != nil {
		writeCoreError(w, err)
		return
	}
	saved, err := core.AddEntry(r.Context(), s.mgr, rec, s.now())
	if err != nil {
		writeCoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleTrend(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.requestConfig(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	result, _, err := core.GetTrendResults(core.WithSuppressHeader(r.Context()), cfg, s.mgr)
	if err != nil {
		writeCoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.requestConfig(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	result, _, err := core.GetSummaryResults(core.WithSuppressHeader(r.Context()), cfg, s.mgr)
	if err != nil {
		writeCoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	overview, _, err := core.GetOverviewResults(core.WithSuppressHeader(r.Context()), s.baseCfg.Clone(), s.mgr)
	if err != nil {
		writeCoreError(w, err)
		return
	}
	// null when the store is empty
	writeJSON(w, http.StatusOK, overview)
}
