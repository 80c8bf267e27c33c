// Package server provides the HTTP REST API for AndikaCV.
package server

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/gedeon/andikacv/internal/db"
	"github.com/gedeon/andikacv/internal/types"
)

// handleListTemplates handles GET /templates. The catalog is public;
// premium templates are listed for everyone and gated at CV save time.
func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category != "" && !slices.Contains(types.TemplateCategories(), category) {
		s.errorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("Unknown category %q, expected one of: %s",
				category, strings.Join(types.TemplateCategories(), ", ")))
		return
	}

	filters := db.TemplateFilters{
		Category: category,
	}
	switch r.URL.Query().Get("tier") {
	case "premium":
		filters.PremiumOnly = true
	case "free":
		filters.FreeOnly = true
	}

	templates, err := s.db.ListTemplates(r.Context(), filters)
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

// handleGetTemplate handles GET /templates/{id}
func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	template, err := s.db.GetTemplate(r.Context(), r.PathValue("id"))
	if err != nil {
		s.log.Error("failed to get template", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get template")
		return
	}
	if template == nil {
		s.errorResponse(w, http.StatusNotFound, "Template not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, template)
}
