// Package types provides type definitions for structured data used throughout the AndikaCV system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// Template categories.
const (
	CategoryModern      = "modern"
	CategoryTraditional = "traditional"
	CategoryCreative    = "creative"
	CategoryMinimal     = "minimal"
)

// TemplateCategories returns the fixed category set in display order.
func TemplateCategories() []string {
	return []string{CategoryModern, CategoryTraditional, CategoryCreative, CategoryMinimal}
}

// Subscription tiers carried on profiles. Premium templates are selectable
// only by premium-tier profiles.
const (
	TierFree    = "free"
	TierPremium = "premium"
)

// CreateTemplateRequest registers a new CV template (admin only).
type CreateTemplateRequest struct {
	ID         string `json:"id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Category   string `json:"category" validate:"required,oneof=modern traditional creative minimal"`
	IsPremium  bool   `json:"isPremium"`
	PreviewURL string `json:"previewUrl,omitempty" validate:"omitempty,url"`
}

// Validate validates the CreateTemplateRequest using the validator.
func (r *CreateTemplateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
