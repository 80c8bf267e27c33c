//go:build integration

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gedeon/andikacv/internal/config"
	"github.com/gedeon/andikacv/internal/db"
	"github.com/gedeon/andikacv/internal/server/middleware"
	"github.com/gedeon/andikacv/internal/types"
	"github.com/gedeon/andikacv/pkg/logger"
)

// These tests require a running PostgreSQL database.
// Set TEST_DATABASE_URL environment variable to run them.

func getTestServer(t *testing.T) (*Server, *db.DB) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	database, err := db.Connect(context.Background(), dsn)
	require.NoError(t, err)

	s := &Server{
		cfg: &config.Config{Env: "development", Port: "0"},
		log: logger.Nop(),
		db:  database,
	}
	s.userService = NewUserService(database, &config.PasswordConfig{BcryptCost: 10})
	return s, database
}

func seedTestUser(t *testing.T, database *db.DB, email, tier string) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	p, err := database.CreateProfile(ctx, email, "hash", "Test User")
	require.NoError(t, err)
	if tier != db.TierFree {
		require.NoError(t, database.UpdateSubscriptionTier(ctx, p.ID, tier))
	}
	t.Cleanup(func() { _ = database.DeleteProfile(context.Background(), p.ID) })
	return p.ID
}

func seedTestTemplate(t *testing.T, database *db.DB, id string, premium bool) {
	t.Helper()
	template := &db.Template{ID: id, Name: "Test " + id, Category: "modern", IsPremium: premium}
	require.NoError(t, database.UpsertTemplate(context.Background(), template))
}

func authedRequest(method, path string, userID uuid.UUID, body any) *http.Request {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	return req.WithContext(middleware.WithUserID(req.Context(), userID))
}

func TestIntegration_CVHandlersLifecycle(t *testing.T) {
	s, database := getTestServer(t)
	defer database.Close()

	userID := seedTestUser(t, database, "cv-handlers@test.example.com", db.TierFree)
	seedTestTemplate(t, database, "modern-1", false)

	// Create
	rec := httptest.NewRecorder()
	s.handleCreateCV(rec, authedRequest(http.MethodPost, "/cvs", userID, types.SaveCVRequest{
		Title:      "Handler CV",
		TemplateID: "modern-1",
		Data:       types.WizardDocument{Personal: types.PersonalInfo{FullName: "Test User"}},
	}))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created db.CV
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	// List
	rec = httptest.NewRecorder()
	s.handleListCVs(rec, authedRequest(http.MethodGet, "/cvs", userID, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Handler CV")

	// Get
	rec = httptest.NewRecorder()
	req := authedRequest(http.MethodGet, "/cvs/"+created.ID.String(), userID, nil)
	req.SetPathValue("id", created.ID.String())
	s.handleGetCV(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// Another user cannot see it
	otherID := seedTestUser(t, database, "cv-handlers-other@test.example.com", db.TierFree)
	rec = httptest.NewRecorder()
	req = authedRequest(http.MethodGet, "/cvs/"+created.ID.String(), otherID, nil)
	req.SetPathValue("id", created.ID.String())
	s.handleGetCV(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Delete
	rec = httptest.NewRecorder()
	req = authedRequest(http.MethodDelete, "/cvs/"+created.ID.String(), userID, nil)
	req.SetPathValue("id", created.ID.String())
	s.handleDeleteCV(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestIntegration_PremiumTemplateGating(t *testing.T) {
	s, database := getTestServer(t)
	defer database.Close()

	seedTestTemplate(t, database, "modern-2", true)
	freeUser := seedTestUser(t, database, "gating-free@test.example.com", db.TierFree)
	premiumUser := seedTestUser(t, database, "gating-premium@test.example.com", db.TierPremium)

	body := types.SaveCVRequest{
		Title:      "Premium CV",
		TemplateID: "modern-2",
		Data:       types.WizardDocument{Personal: types.PersonalInfo{FullName: "Test User"}},
	}

	rec := httptest.NewRecorder()
	s.handleCreateCV(rec, authedRequest(http.MethodPost, "/cvs", freeUser, body))
	assert.Equal(t, http.StatusForbidden, rec.Code, rec.Body.String())

	rec = httptest.NewRecorder()
	s.handleCreateCV(rec, authedRequest(http.MethodPost, "/cvs", premiumUser, body))
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestIntegration_DashboardAggregates(t *testing.T) {
	s, database := getTestServer(t)
	defer database.Close()

	userID := seedTestUser(t, database, "dashboard@test.example.com", db.TierFree)
	_, err := database.CreateCoverLetter(context.Background(), userID, "Letter", "Acme", "Engineer", "body")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	s.handleDashboard(rec, authedRequest(http.MethodGet, "/dashboard", userID, nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp dashboardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.CoverLetterCount)
	assert.Equal(t, 0, resp.CVCount)
	require.NotNil(t, resp.Profile)
	assert.Equal(t, userID, resp.Profile.ID)
}
