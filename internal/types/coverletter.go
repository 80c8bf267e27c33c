// Package types provides type definitions for structured data used throughout the AndikaCV system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// CoverLetterFields is the fixed set of free-text inputs interpolated into
// a cover-letter skeleton. All fields are required; validation happens here
// at the boundary, never inside the generator.
type CoverLetterFields struct {
	JobTitle    string `json:"jobTitle" validate:"required"`
	CompanyName string `json:"companyName" validate:"required"`
	YourName    string `json:"yourName" validate:"required"`
	YourEmail   string `json:"yourEmail" validate:"required,email"`
	YourPhone   string `json:"yourPhone" validate:"required"`
	Skills      string `json:"skills" validate:"required"`
	Experience  string `json:"experience" validate:"required"`
	Motivation  string `json:"motivation" validate:"required"`
}

// Validate validates the CoverLetterFields using the validator.
func (f *CoverLetterFields) Validate() error {
	validate := validator.New()
	return validate.Struct(f)
}

// GenerateCoverLetterRequest selects a skeleton and supplies its fields.
type GenerateCoverLetterRequest struct {
	TemplateID string            `json:"templateId" validate:"required,oneof=modern traditional creative minimal"`
	Fields     CoverLetterFields `json:"fields"`
}

// Validate validates the GenerateCoverLetterRequest using the validator.
func (r *GenerateCoverLetterRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	return r.Fields.Validate()
}

// SaveCoverLetterRequest persists a generated letter.
type SaveCoverLetterRequest struct {
	Title       string `json:"title" validate:"required"`
	CompanyName string `json:"companyName" validate:"required"`
	Position    string `json:"position" validate:"required"`
	Content     string `json:"content" validate:"required"`
}

// Validate validates the SaveCoverLetterRequest using the validator.
func (r *SaveCoverLetterRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
