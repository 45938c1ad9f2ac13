package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/hr-screener/internal/db"
	"github.com/jonathan/hr-screener/internal/types"
)

// handleListCandidates returns candidates, optionally filtered by ?status=.
func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	candidates, err := s.db.ListCandidates(r.Context(), status)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if candidates == nil {
		candidates = []db.Candidate{}
	}
	s.jsonResponse(w, http.StatusOK, candidates)
}

// handleGetCandidate returns one candidate by ID.
func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	candidate, err := s.db.GetCandidate(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if candidate == nil {
		s.errorResponse(w, http.StatusNotFound, "candidate not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, candidate)
}

// handleUpdateCandidateStatus sets a candidate's pipeline status.
func (s *Server) handleUpdateCandidateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !types.ValidStatus(req.Status) {
		s.errorResponse(w, http.StatusBadRequest, "unknown status: "+req.Status)
		return
	}

	if err := s.db.UpdateCandidateStatus(r.Context(), id, req.Status); err != nil {
		if strings.Contains(err.Error(), "not found") {
			s.errorResponse(w, http.StatusNotFound, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": req.Status})
}

// handleDeleteCandidate removes a candidate and their call history.
func (s *Server) handleDeleteCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := s.db.DeleteCandidate(r.Context(), id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			s.errorResponse(w, http.StatusNotFound, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleListCandidateCalls returns a candidate's call history, newest first.
func (s *Server) handleListCandidateCalls(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	calls, err := s.db.ListCallsForCandidate(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if calls == nil {
		calls = []db.CallRecord{}
	}
	s.jsonResponse(w, http.StatusOK, calls)
}

// pathUUID parses a UUID path parameter, writing a 400 on failure.
func (s *Server) pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
