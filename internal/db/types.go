package db

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Profile represents an account record. The password hash never leaves
// this layer.
type Profile struct {
	ID               uuid.UUID `json:"id"`
	Email            string    `json:"email"`
	FullName         string    `json:"full_name,omitempty"`
	SubscriptionTier string    `json:"subscription_tier"`
	PasswordHash     string    `json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CV represents a saved CV. Data holds the wizard document as JSONB and
// is schema-validated before every write.
type CV struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"user_id"`
	Title      string          `json:"title"`
	TemplateID string          `json:"template_id"`
	Data       json.RawMessage `json:"data"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// CVSummary is a lightweight view of a CV for listing, without the
// document blob.
type CVSummary struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	TemplateID string    `json:"template_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CoverLetter represents a saved cover letter.
type CoverLetter struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	CompanyName string    `json:"company_name"`
	Position    string    `json:"position"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Template represents a selectable CV visual template.
type Template struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	IsPremium  bool      `json:"is_premium"`
	PreviewURL string    `json:"preview_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Subscription tiers stored on profiles.
const (
	TierFree    = "free"
	TierPremium = "premium"
)
