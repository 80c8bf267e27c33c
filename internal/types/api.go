// Package types provides type definitions for structured data used throughout the AndikaCV system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// SaveCVRequest persists a wizard document under a title and template.
type SaveCVRequest struct {
	Title      string         `json:"title" validate:"required"`
	TemplateID string         `json:"templateId" validate:"required"`
	Data       WizardDocument `json:"data"`
}

// Validate validates the SaveCVRequest using the validator.
func (r *SaveCVRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
