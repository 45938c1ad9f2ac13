package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jonathan/hr-screener/internal/db"
)

// handleListRules returns stored hiring rules in definition order.
func (s *Server) handleListRules(w http.ResponseWriter, r *http.Request) {
	ruleSet, err := s.db.ListHiringRules(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if ruleSet == nil {
		ruleSet = []db.HiringRule{}
	}
	s.jsonResponse(w, http.StatusOK, ruleSet)
}

// handleCreateRule stores a new hiring rule. Rules for the same role are kept;
// the latest one wins at resolution time.
func (s *Server) handleCreateRule(w http.ResponseWriter, r *http.Request) {
	var rule db.HiringRule
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	rule.RoleKeyword = strings.TrimSpace(rule.RoleKeyword)
	if rule.RoleKeyword == "" {
		s.errorResponse(w, http.StatusBadRequest, "role_keyword is required")
		return
	}
	if rule.MaxBudget != nil && *rule.MaxBudget < 0 {
		s.errorResponse(w, http.StatusBadRequest, "max_budget must be non-negative")
		return
	}
	if rule.MinExperienceYears != nil && *rule.MinExperienceYears < 0 {
		s.errorResponse(w, http.StatusBadRequest, "min_experience_years must be non-negative")
		return
	}

	id, err := s.db.CreateHiringRule(r.Context(), rule)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String()})
}

// handleDeleteRule removes a hiring rule.
func (s *Server) handleDeleteRule(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := s.db.DeleteHiringRule(r.Context(), id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			s.errorResponse(w, http.StatusNotFound, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
