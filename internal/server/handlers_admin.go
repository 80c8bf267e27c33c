// Package server provides the HTTP REST API for AndikaCV.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/gedeon/andikacv/internal/db"
	"github.com/gedeon/andikacv/internal/types"
)

// handleAdminListUsers handles GET /admin/users
func (s *Server) handleAdminListUsers(w http.ResponseWriter, r *http.Request) {
	filters := db.ProfileFilters{
		Email: r.URL.Query().Get("email"),
		Tier:  r.URL.Query().Get("tier"),
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		filters.Limit = limit
	}

	profiles, err := s.db.ListProfiles(r.Context(), filters)
	if err != nil {
		s.log.Error("failed to list profiles", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list users")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"users": profiles,
		"count": len(profiles),
	})
}

// handleAdminDeleteUser handles DELETE /admin/users/{id}. CVs and cover
// letters go with the profile via cascade.
func (s *Server) handleAdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := s.db.DeleteProfile(r.Context(), id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "User not found")
			return
		}
		s.log.Error("failed to delete profile", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleAdminListTemplates handles GET /admin/templates. Unlike the public
// catalog this includes everything regardless of filters.
func (s *Server) handleAdminListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := s.db.ListTemplates(r.Context(), db.TemplateFilters{})
	if err != nil {
		s.log.Error("failed to list templates", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list templates")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"templates": templates,
		"count":     len(templates),
	})
}

// handleAdminUpsertTemplate handles POST /admin/templates. Posting an
// existing ID updates it in place.
func (s *Server) handleAdminUpsertTemplate(w http.ResponseWriter, r *http.Request) {
	var req types.CreateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	template := &db.Template{
		ID:         req.ID,
		Name:       req.Name,
		Category:   req.Category,
		IsPremium:  req.IsPremium,
		PreviewURL: req.PreviewURL,
	}
	if err := s.db.UpsertTemplate(r.Context(), template); err != nil {
		s.log.Error("failed to upsert template", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save template")
		return
	}

	s.jsonResponse(w, http.StatusCreated, template)
}

// handleAdminDeleteTemplate handles DELETE /admin/templates/{id}
func (s *Server) handleAdminDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	if err := s.db.DeleteTemplate(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Template not found")
			return
		}
		s.log.Error("failed to delete template", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete template")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
