// Package server provides the HTTP REST API for AndikaCV.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/gedeon/andikacv/internal/coverletter"
	"github.com/gedeon/andikacv/internal/db"
	"github.com/gedeon/andikacv/internal/server/middleware"
	"github.com/gedeon/andikacv/internal/types"
)

// handleGenerateCoverLetter handles POST /cover-letters/generate. Generation
// is pure: nothing is persisted until the client saves the result.
func (s *Server) handleGenerateCoverLetter(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateCoverLetterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	content := coverletter.Generate(req.TemplateID, req.Fields)

	s.jsonResponse(w, http.StatusOK, map[string]string{
		"content":  content,
		"filename": coverletter.Filename(req.Fields),
	})
}

// handleListCoverLetters handles GET /cover-letters
func (s *Server) handleListCoverLetters(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
	}

	letters, err := s.db.ListCoverLetters(r.Context(), userID, limit)
	if err != nil {
		s.log.Error("failed to list cover letters", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list cover letters")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"cover_letters": letters,
		"count":         len(letters),
	})
}

// handleSaveCoverLetter handles POST /cover-letters
func (s *Server) handleSaveCoverLetter(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.SaveCoverLetterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	letter, err := s.db.CreateCoverLetter(r.Context(), userID, req.Title, req.CompanyName, req.Position, req.Content)
	if err != nil {
		s.log.Error("failed to save cover letter", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save cover letter")
		return
	}

	s.jsonResponse(w, http.StatusCreated, letter)
}

// handleGetCoverLetter handles GET /cover-letters/{id}
func (s *Server) handleGetCoverLetter(w http.ResponseWriter, r *http.Request) {
	userID, letterID, ok := s.coverLetterRequestIDs(w, r)
	if !ok {
		return
	}

	letter, err := s.db.GetCoverLetter(r.Context(), userID, letterID)
	if err != nil {
		s.log.Error("failed to get cover letter", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get cover letter")
		return
	}
	if letter == nil {
		s.errorResponse(w, http.StatusNotFound, "Cover letter not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, letter)
}

// handleDeleteCoverLetter handles DELETE /cover-letters/{id}
func (s *Server) handleDeleteCoverLetter(w http.ResponseWriter, r *http.Request) {
	userID, letterID, ok := s.coverLetterRequestIDs(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteCoverLetter(r.Context(), userID, letterID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Cover letter not found")
			return
		}
		s.log.Error("failed to delete cover letter", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete cover letter")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// coverLetterRequestIDs extracts the caller and the {id} path value.
func (s *Server) coverLetterRequestIDs(w http.ResponseWriter, r *http.Request) (userID, letterID uuid.UUID, ok bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, uuid.Nil, false
	}

	letterID, err = uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid cover letter ID")
		return uuid.Nil, uuid.Nil, false
	}
	return userID, letterID, true
}
