// Package server provides the HTTP REST API for AndikaCV.
package server

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/gedeon/andikacv/internal/db"
	"github.com/gedeon/andikacv/internal/server/middleware"
	"github.com/gedeon/andikacv/internal/types"
)

// dashboardRecentLimit caps each list on the dashboard.
const dashboardRecentLimit = 5

// dashboardResponse aggregates the caller's documents for the landing view.
type dashboardResponse struct {
	Profile          *types.Profile   `json:"profile"`
	RecentCVs        []db.CVSummary   `json:"recent_cvs"`
	RecentLetters    []db.CoverLetter `json:"recent_cover_letters"`
	CVCount          int              `json:"cv_count"`
	CoverLetterCount int              `json:"cover_letter_count"`
}

// handleDashboard handles GET /dashboard. The four queries are independent,
// so they run concurrently and the response assembles whichever order they
// finish in.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var resp dashboardResponse
	g, ctx := errgroup.WithContext(r.Context())

	g.Go(func() error {
		profile, err := s.userService.GetProfile(ctx, userID)
		if err != nil {
			return err
		}
		resp.Profile = profile
		return nil
	})
	g.Go(func() error {
		cvs, err := s.db.ListCVs(ctx, userID, db.CVFilters{Limit: dashboardRecentLimit})
		if err != nil {
			return err
		}
		resp.RecentCVs = cvs
		return nil
	})
	g.Go(func() error {
		letters, err := s.db.ListCoverLetters(ctx, userID, dashboardRecentLimit)
		if err != nil {
			return err
		}
		resp.RecentLetters = letters
		return nil
	})
	g.Go(func() error {
		count, err := s.db.CountCVs(ctx, userID)
		if err != nil {
			return err
		}
		resp.CVCount = count
		return nil
	})
	g.Go(func() error {
		count, err := s.db.CountCoverLetters(ctx, userID)
		if err != nil {
			return err
		}
		resp.CoverLetterCount = count
		return nil
	})

	if err := g.Wait(); err != nil {
		s.log.Error("failed to build dashboard", err)
		s.errorResponse(w, HTTPStatus(err), "Failed to load dashboard")
		return
	}

	if resp.RecentCVs == nil {
		resp.RecentCVs = []db.CVSummary{}
	}
	if resp.RecentLetters == nil {
		resp.RecentLetters = []db.CoverLetter{}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}
