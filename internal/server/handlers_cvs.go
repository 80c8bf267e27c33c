// Package server provides the HTTP REST API for AndikaCV.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/gedeon/andikacv/internal/assemble"
	"github.com/gedeon/andikacv/internal/db"
	"github.com/gedeon/andikacv/internal/export"
	"github.com/gedeon/andikacv/internal/i18n"
	"github.com/gedeon/andikacv/internal/schemas"
	"github.com/gedeon/andikacv/internal/server/middleware"
	"github.com/gedeon/andikacv/internal/types"
)

// pdfTimeout bounds the headless Chrome print per export request.
const pdfTimeout = 90 * time.Second

// handleListCVs handles GET /cvs
func (s *Server) handleListCVs(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	filters := db.CVFilters{
		Title:      r.URL.Query().Get("title"),
		TemplateID: r.URL.Query().Get("template_id"),
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		filters.Limit = limit
	}

	cvs, err := s.db.ListCVs(r.Context(), userID, filters)
	if err != nil {
		s.log.Error("failed to list cvs", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list CVs")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"cvs":   cvs,
		"count": len(cvs),
	})
}

// handleCreateCV handles POST /cvs
func (s *Server) handleCreateCV(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.SaveCVRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	if err := s.checkTemplateAccess(r, userID, req.TemplateID); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	data, err := json.Marshal(req.Data)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid CV document")
		return
	}

	cv, err := s.db.CreateCV(r.Context(), userID, req.Title, req.TemplateID, data)
	if err != nil {
		s.cvWriteError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, cv)
}

// handleGetCV handles GET /cvs/{id}
func (s *Server) handleGetCV(w http.ResponseWriter, r *http.Request) {
	userID, cvID, ok := s.cvRequestIDs(w, r)
	if !ok {
		return
	}

	cv, err := s.db.GetCV(r.Context(), userID, cvID)
	if err != nil {
		s.log.Error("failed to get cv", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get CV")
		return
	}
	if cv == nil {
		s.errorResponse(w, http.StatusNotFound, "CV not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, cv)
}

// handleUpdateCV handles PUT /cvs/{id}
func (s *Server) handleUpdateCV(w http.ResponseWriter, r *http.Request) {
	userID, cvID, ok := s.cvRequestIDs(w, r)
	if !ok {
		return
	}

	var req types.SaveCVRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	if err := s.checkTemplateAccess(r, userID, req.TemplateID); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	data, err := json.Marshal(req.Data)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid CV document")
		return
	}

	cv, err := s.db.UpdateCV(r.Context(), userID, cvID, req.Title, req.TemplateID, data)
	if err != nil {
		s.cvWriteError(w, err)
		return
	}
	if cv == nil {
		s.errorResponse(w, http.StatusNotFound, "CV not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, cv)
}

// handleDeleteCV handles DELETE /cvs/{id}
func (s *Server) handleDeleteCV(w http.ResponseWriter, r *http.Request) {
	userID, cvID, ok := s.cvRequestIDs(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteCV(r.Context(), userID, cvID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "CV not found")
			return
		}
		s.log.Error("failed to delete cv", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete CV")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleExportCVPDF handles GET /cvs/{id}/pdf. The document is assembled,
// rendered to HTML and printed by headless Chrome. The lang query parameter
// selects the heading language (en or rw).
func (s *Server) handleExportCVPDF(w http.ResponseWriter, r *http.Request) {
	userID, cvID, ok := s.cvRequestIDs(w, r)
	if !ok {
		return
	}

	cv, err := s.db.GetCV(r.Context(), userID, cvID)
	if err != nil {
		s.log.Error("failed to get cv", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get CV")
		return
	}
	if cv == nil {
		s.errorResponse(w, http.StatusNotFound, "CV not found")
		return
	}

	var doc types.WizardDocument
	if err := json.Unmarshal(cv.Data, &doc); err != nil {
		s.log.Error("stored cv document is unreadable", err)
		s.errorResponse(w, http.StatusInternalServerError, "Stored CV document is unreadable")
		return
	}

	translator := i18n.New(i18n.Language(r.URL.Query().Get("lang")))
	rendered := assemble.New(translator).Assemble(doc)

	html, err := export.HTML(rendered, cv.TemplateID, translator)
	if err != nil {
		s.log.Error("failed to render cv html", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render CV")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), pdfTimeout)
	defer cancel()

	pdf, err := s.pdf.RenderPDF(ctx, html)
	if err != nil {
		s.log.Error("pdf export failed", err)
		s.errorResponse(w, http.StatusBadGateway, "PDF export failed")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", pdfFilename(cv.Title)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// checkTemplateAccess verifies the template exists and that premium
// templates are only selected by premium-tier profiles.
func (s *Server) checkTemplateAccess(r *http.Request, userID uuid.UUID, templateID string) error {
	template, err := s.db.GetTemplate(r.Context(), templateID)
	if err != nil {
		return fmt.Errorf("failed to get template: %w", err)
	}
	if template == nil {
		return &ErrValidation{Field: "templateId", Message: "unknown template"}
	}
	if !template.IsPremium {
		return nil
	}

	profile, err := s.db.GetProfileByID(r.Context(), userID)
	if err != nil {
		return fmt.Errorf("failed to get profile: %w", err)
	}
	if profile == nil || profile.SubscriptionTier != db.TierPremium {
		return &ErrPremiumRequired{TemplateID: templateID}
	}
	return nil
}

// cvWriteError maps CV persistence failures to responses. Schema violations
// in the document blob come back as 400.
func (s *Server) cvWriteError(w http.ResponseWriter, err error) {
	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		s.errorResponse(w, http.StatusBadRequest, validationErr.Error())
		return
	}
	s.log.Error("failed to save cv", err)
	s.errorResponse(w, http.StatusInternalServerError, "Failed to save CV")
}

// cvRequestIDs extracts the caller and the {id} path value.
func (s *Server) cvRequestIDs(w http.ResponseWriter, r *http.Request) (userID, cvID uuid.UUID, ok bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, uuid.Nil, false
	}

	cvID, err = uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid CV ID")
		return uuid.Nil, uuid.Nil, false
	}
	return userID, cvID, true
}

// pdfFilename derives the download filename from the CV title.
func pdfFilename(title string) string {
	if title == "" {
		title = "cv"
	}
	return title + ".pdf"
}
