// Package coverletter generates cover letters from a fixed set of
// skeleton templates. Generation is pure string interpolation.
package coverletter

import (
	"fmt"
	"strings"

	"github.com/gedeon/andikacv/internal/types"
)

// Skeleton describes one selectable letter template.
type Skeleton struct {
	ID          string
	Name        string
	Description string
	Preview     string
}

// TemplateModern and friends are the skeleton identifiers accepted by
// Generate.
const (
	TemplateModern      = "modern"
	TemplateTraditional = "traditional"
	TemplateCreative    = "creative"
	TemplateMinimal     = "minimal"
)

// Skeletons returns the selectable templates in display order.
func Skeletons() []Skeleton {
	return []Skeleton{
		{
			ID:          TemplateModern,
			Name:        "Modern Professional",
			Description: "Clean and contemporary design",
			Preview:     "Dear Hiring Manager, I am writing to express my strong interest...",
		},
		{
			ID:          TemplateTraditional,
			Name:        "Traditional Formal",
			Description: "Classic business letter format",
			Preview:     "Dear Sir/Madam, I am writing to apply for the position of...",
		},
		{
			ID:          TemplateCreative,
			Name:        "Creative Standout",
			Description: "Unique and memorable approach",
			Preview:     "Imagine having a team member who brings...",
		},
		{
			ID:          TemplateMinimal,
			Name:        "Minimal Clean",
			Description: "Simple and focused content",
			Preview:     "I am excited to apply for the [Position] role at [Company]...",
		},
	}
}

// Generate interpolates fields into the skeleton named by templateID.
// Unknown template IDs fall back to the modern skeleton so callers that
// validated upstream never receive an empty letter.
func Generate(templateID string, f types.CoverLetterFields) string {
	switch templateID {
	case TemplateTraditional:
		return traditional(f)
	case TemplateCreative:
		return creative(f)
	case TemplateMinimal:
		return minimal(f)
	default:
		return modern(f)
	}
}

// Filename derives the suggested download name for a generated letter,
// e.g. "cover-letter-software-developer.txt".
func Filename(f types.CoverLetterFields) string {
	slug := strings.Join(strings.Fields(strings.ToLower(f.JobTitle)), "-")
	return fmt.Sprintf("cover-letter-%s.txt", slug)
}

func modern(f types.CoverLetterFields) string {
	return fmt.Sprintf(`Dear Hiring Manager,

I am writing to express my strong interest in the %s position at %s. With my background in %s, I am confident in my ability to contribute effectively to your team.

%s

%s

I am particularly drawn to %s because of your commitment to excellence and innovation. I believe my skills and experience align perfectly with your needs, and I am excited about the opportunity to contribute to your continued success.

I would welcome the opportunity to discuss how my background, skills, and enthusiasm can benefit your organization. Thank you for considering my application.

Best regards,
%s
%s
%s`, f.JobTitle, f.CompanyName, f.Skills, f.Experience, f.Motivation, f.CompanyName, f.YourName, f.YourEmail, f.YourPhone)
}

func traditional(f types.CoverLetterFields) string {
	return fmt.Sprintf(`Dear Sir/Madam,

I am writing to apply for the position of %s at %s. I am confident that my qualifications and experience make me an excellent candidate for this role.

My relevant experience includes:
%s

My key skills include:
%s

%s

I am very interested in joining %s and contributing to your team. I would appreciate the opportunity to discuss my qualifications in person.

Thank you for your time and consideration.

Sincerely,
%s
%s
%s`, f.JobTitle, f.CompanyName, f.Experience, f.Skills, f.Motivation, f.CompanyName, f.YourName, f.YourEmail, f.YourPhone)
}

func creative(f types.CoverLetterFields) string {
	return fmt.Sprintf(`Dear Hiring Manager,

Imagine having a team member who brings %s to every project. That's exactly what I offer as a candidate for the %s position at %s.

%s

%s

I'm not just looking for a job - I'm looking for an opportunity to make a real impact at %s. I believe my unique combination of skills and passion would be a valuable addition to your team.

Let's discuss how I can help %s achieve its goals.

Best regards,
%s
%s
%s`, f.Skills, f.JobTitle, f.CompanyName, f.Experience, f.Motivation, f.CompanyName, f.CompanyName, f.YourName, f.YourEmail, f.YourPhone)
}

func minimal(f types.CoverLetterFields) string {
	return fmt.Sprintf(`Dear Hiring Manager,

I am excited to apply for the %s role at %s.

Skills: %s

Experience: %s

Motivation: %s

I look forward to discussing this opportunity with you.

Best regards,
%s
%s
%s`, f.JobTitle, f.CompanyName, f.Skills, f.Experience, f.Motivation, f.YourName, f.YourEmail, f.YourPhone)
}
