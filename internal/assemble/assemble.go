// Package assemble turns a wizard document into the structured, read-only
// CV view shown in preview and fed to the PDF exporter.
package assemble

import (
	"fmt"
	"strings"

	"github.com/gedeon/andikacv/internal/i18n"
	"github.com/gedeon/andikacv/internal/types"
)

// RenderedCV is the assembled, display-ready document. Nil section slices
// mean the section is omitted entirely.
type RenderedCV struct {
	Name           string
	ContactLines   []string
	Summary        string
	Experience     []RenderedExperience
	Education      []RenderedEducation
	Skills         []RenderedSkillGroup
	Languages      []RenderedLanguage
	Certifications []RenderedCertification
	References     []RenderedReference
}

// RenderedExperience is one employment item with formatted dates.
type RenderedExperience struct {
	JobTitle  string
	Company   string
	Location  string
	DateRange string
	Lines     []string
}

// RenderedEducation is one education item with formatted dates.
type RenderedEducation struct {
	Degree      string
	Institution string
	Location    string
	GPA         string
	DateRange   string
	Description string
}

// RenderedSkillGroup is one named skill category.
type RenderedSkillGroup struct {
	Name   string
	Skills []string
}

// RenderedLanguage pairs a language with its proficiency label.
type RenderedLanguage struct {
	Language    string
	Proficiency string
}

// RenderedCertification is one certification item with formatted dates.
type RenderedCertification struct {
	Name         string
	Organization string
	CredentialID string
	IssueDate    string
	ExpiryDate   string
}

// RenderedReference is one professional reference.
type RenderedReference struct {
	Name         string
	JobTitle     string
	Company      string
	Relationship string
	Email        string
	Phone        string
}

// Assembler renders wizard documents with a fixed translator. The zero
// value is not usable; construct with New.
type Assembler struct {
	t *i18n.Translator
}

// New returns an Assembler rendering with the given translator. A nil
// translator defaults to English.
func New(t *i18n.Translator) *Assembler {
	if t == nil {
		t = i18n.New(i18n.English)
	}
	return &Assembler{t: t}
}

// Assemble maps the aggregate document into its rendered form. It is a
// pure function of the input: no error paths, every missing field renders
// as empty. Each section is independently optional and renders only when
// its first entry's primary field is populated; a blank first entry hides
// the whole section even when later entries are filled in. That heuristic
// mirrors the shipped behavior and is kept for compatibility.
func (a *Assembler) Assemble(doc types.WizardDocument) RenderedCV {
	cv := RenderedCV{
		Name:         doc.Personal.FullName,
		ContactLines: contactLines(doc.Personal),
		Summary:      doc.Personal.Summary,
	}

	if len(doc.Experience) > 0 && doc.Experience[0].JobTitle != "" {
		cv.Experience = make([]RenderedExperience, 0, len(doc.Experience))
		for _, exp := range doc.Experience {
			cv.Experience = append(cv.Experience, RenderedExperience{
				JobTitle:  exp.JobTitle,
				Company:   exp.Company,
				Location:  exp.Location,
				DateRange: a.dateRange(exp.StartDate, exp.EndDate, exp.CurrentlyWorking),
				Lines:     splitLines(exp.Description),
			})
		}
	}

	if len(doc.Education) > 0 && doc.Education[0].Degree != "" {
		cv.Education = make([]RenderedEducation, 0, len(doc.Education))
		for _, edu := range doc.Education {
			cv.Education = append(cv.Education, RenderedEducation{
				Degree:      edu.Degree,
				Institution: edu.Institution,
				Location:    edu.Location,
				GPA:         edu.GPA,
				DateRange:   a.dateRange(edu.StartDate, edu.EndDate, edu.CurrentlyStudying),
				Description: edu.Description,
			})
		}
	}

	if hasSkills(doc.Skills) {
		cv.Skills = make([]RenderedSkillGroup, 0, len(doc.Skills))
		for _, cat := range doc.Skills {
			if len(cat.Skills) == 0 {
				continue
			}
			cv.Skills = append(cv.Skills, RenderedSkillGroup{
				Name:   cat.Name,
				Skills: append([]string(nil), cat.Skills...),
			})
		}
	}

	if len(doc.Languages) > 0 && doc.Languages[0].Language != "" {
		cv.Languages = make([]RenderedLanguage, 0, len(doc.Languages))
		for _, lang := range doc.Languages {
			cv.Languages = append(cv.Languages, RenderedLanguage{
				Language:    lang.Language,
				Proficiency: lang.Proficiency,
			})
		}
	}

	if len(doc.Certifications) > 0 && doc.Certifications[0].Name != "" {
		cv.Certifications = make([]RenderedCertification, 0, len(doc.Certifications))
		for _, cert := range doc.Certifications {
			rendered := RenderedCertification{
				Name:         cert.Name,
				Organization: cert.Organization,
				CredentialID: cert.CredentialID,
				IssueDate:    a.formatDate(cert.IssueDate),
			}
			if cert.ExpiryDate != "" && !cert.NeverExpires {
				rendered.ExpiryDate = a.formatDate(cert.ExpiryDate)
			}
			cv.Certifications = append(cv.Certifications, rendered)
		}
	}

	if len(doc.References) > 0 && doc.References[0].Name != "" {
		cv.References = make([]RenderedReference, 0, len(doc.References))
		for _, ref := range doc.References {
			cv.References = append(cv.References, RenderedReference{
				Name:         ref.Name,
				JobTitle:     ref.JobTitle,
				Company:      ref.Company,
				Relationship: ref.Relationship,
				Email:        ref.Email,
				Phone:        ref.Phone,
			})
		}
	}

	return cv
}

// dateRange renders "Month YYYY - Month YYYY", substituting the localized
// "Present" label for the end date while the current flag is set.
func (a *Assembler) dateRange(start, end string, current bool) string {
	from := a.formatDate(start)
	var to string
	if current {
		to = a.t.T("cv.present")
	} else {
		to = a.formatDate(end)
	}
	if from == "" && to == "" {
		return ""
	}
	return fmt.Sprintf("%s - %s", from, to)
}

// hasSkills reports whether any category carries at least one skill. The
// skills section, unlike the others, checks all categories rather than
// only the first.
func hasSkills(cats []types.SkillCategory) bool {
	for _, cat := range cats {
		if len(cat.Skills) > 0 {
			return true
		}
	}
	return false
}

func contactLines(p types.PersonalInfo) []string {
	var lines []string
	if p.Email != "" {
		lines = append(lines, p.Email)
	}
	if p.Phone != "" {
		lines = append(lines, p.Phone)
	}
	if p.Address != "" {
		lines = append(lines, joinNonEmpty(", ", p.Address, p.City, p.Country))
	}
	if p.LinkedIn != "" {
		lines = append(lines, p.LinkedIn)
	}
	if p.Website != "" {
		lines = append(lines, p.Website)
	}
	return lines
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
