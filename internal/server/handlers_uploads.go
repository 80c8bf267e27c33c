// Package server provides the HTTP REST API for AndikaCV.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gedeon/andikacv/internal/server/middleware"
	"github.com/gedeon/andikacv/internal/storage"
)

// maxPhotoSize caps profile photo uploads at 5 MB.
const maxPhotoSize = 5 << 20

// handleUploadPhoto handles POST /uploads/photo. The file goes to
// Cloudinary keyed by user ID, so re-uploading replaces the old photo.
func (s *Server) handleUploadPhoto(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoSize)
	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form or file too large")
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing photo field")
		return
	}
	defer file.Close()

	switch header.Header.Get("Content-Type") {
	case "image/jpeg", "image/png", "image/webp":
	default:
		s.errorResponse(w, http.StatusBadRequest, "Photo must be JPEG, PNG or WebP")
		return
	}

	url, err := s.uploader.Upload(r.Context(), file, fmt.Sprintf("profile-%s", userID))
	if err != nil {
		if errors.Is(err, storage.ErrNotConfigured) {
			s.errorResponse(w, http.StatusServiceUnavailable, "Photo uploads are not configured")
			return
		}
		s.log.Error("photo upload failed", err)
		s.errorResponse(w, http.StatusBadGateway, "Photo upload failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"url": url})
}
