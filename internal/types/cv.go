// Package types provides type definitions for structured data used throughout the AndikaCV system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Section identifies one named slice of a wizard document.
type Section string

// Wizard sections, in step order.
const (
	SectionPersonal       Section = "personal"
	SectionEducation      Section = "education"
	SectionExperience     Section = "experience"
	SectionSkills         Section = "skills"
	SectionLanguages      Section = "languages"
	SectionCertifications Section = "certifications"
	SectionReferences     Section = "references"
)

// Sections returns the wizard step sequence in order.
func Sections() []Section {
	return []Section{
		SectionPersonal,
		SectionEducation,
		SectionExperience,
		SectionSkills,
		SectionLanguages,
		SectionCertifications,
		SectionReferences,
	}
}

// PersonalInfo is the single personal-details record of a document.
type PersonalInfo struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Address  string `json:"address,omitempty"`
	City     string `json:"city,omitempty"`
	Country  string `json:"country,omitempty"`
	LinkedIn string `json:"linkedIn,omitempty" validate:"omitempty,url"`
	Website  string `json:"website,omitempty" validate:"omitempty,url"`
	Summary  string `json:"summary,omitempty"`
}

// EducationEntry is one education record. Dates are year-month strings
// ("2006-01"); CurrentlyStudying clears EndDate when set.
type EducationEntry struct {
	EntryID           string `json:"id"`
	Degree            string `json:"degree"`
	Institution       string `json:"institution"`
	Location          string `json:"location"`
	StartDate         string `json:"startDate"`
	EndDate           string `json:"endDate"`
	CurrentlyStudying bool   `json:"currentlyStudying"`
	GPA               string `json:"gpa"`
	Description       string `json:"description"`
}

// ExperienceEntry is one employment record.
type ExperienceEntry struct {
	EntryID          string `json:"id"`
	JobTitle         string `json:"jobTitle"`
	Company          string `json:"company"`
	Location         string `json:"location"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	CurrentlyWorking bool   `json:"currentlyWorking"`
	Description      string `json:"description"`
}

// SkillCategory is a named, ordered group of skill strings.
type SkillCategory struct {
	EntryID string   `json:"id"`
	Name    string   `json:"name"`
	Skills  []string `json:"skills"`
}

// Proficiency levels for language entries.
const (
	ProficiencyBeginner     = "beginner"
	ProficiencyIntermediate = "intermediate"
	ProficiencyAdvanced     = "advanced"
	ProficiencyFluent       = "fluent"
	ProficiencyNative       = "native"
)

// ProficiencyLevels returns the five fixed proficiency levels in order.
func ProficiencyLevels() []string {
	return []string{
		ProficiencyBeginner,
		ProficiencyIntermediate,
		ProficiencyAdvanced,
		ProficiencyFluent,
		ProficiencyNative,
	}
}

// LanguageEntry pairs a language name with a proficiency level.
type LanguageEntry struct {
	EntryID     string `json:"id"`
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

// CertificationEntry is one certification record. NeverExpires clears
// ExpiryDate when set.
type CertificationEntry struct {
	EntryID       string `json:"id"`
	Name          string `json:"name"`
	Organization  string `json:"organization"`
	IssueDate     string `json:"issueDate"`
	ExpiryDate    string `json:"expiryDate"`
	NeverExpires  bool   `json:"neverExpires"`
	CredentialID  string `json:"credentialId"`
	CredentialURL string `json:"credentialUrl"`
}

// ReferenceEntry is one professional reference record.
type ReferenceEntry struct {
	EntryID      string `json:"id"`
	Name         string `json:"name"`
	JobTitle     string `json:"jobTitle"`
	Company      string `json:"company"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

// WizardDocument is the aggregate CV document assembled by the wizard: one
// payload per section, each replaced wholesale on merge.
type WizardDocument struct {
	Personal       PersonalInfo         `json:"personal"`
	Education      []EducationEntry     `json:"education,omitempty"`
	Experience     []ExperienceEntry    `json:"experience,omitempty"`
	Skills         []SkillCategory      `json:"skills,omitempty"`
	Languages      []LanguageEntry      `json:"languages,omitempty"`
	Certifications []CertificationEntry `json:"certifications,omitempty"`
	References     []ReferenceEntry     `json:"references,omitempty"`
}

// Merge replaces the named section's payload wholesale. Payloads of the
// wrong type are ignored; the merge never partially updates a section.
// Incoming slices are copied so the document and the caller never alias
// the same backing array.
func (d *WizardDocument) Merge(section Section, payload any) {
	switch section {
	case SectionPersonal:
		if p, ok := payload.(PersonalInfo); ok {
			d.Personal = p
		}
	case SectionEducation:
		if l, ok := payload.([]EducationEntry); ok {
			d.Education = cloneSlice(l)
		}
	case SectionExperience:
		if l, ok := payload.([]ExperienceEntry); ok {
			d.Experience = cloneSlice(l)
		}
	case SectionSkills:
		if l, ok := payload.([]SkillCategory); ok {
			d.Skills = cloneSkillCategories(l)
		}
	case SectionLanguages:
		if l, ok := payload.([]LanguageEntry); ok {
			d.Languages = cloneSlice(l)
		}
	case SectionCertifications:
		if l, ok := payload.([]CertificationEntry); ok {
			d.Certifications = cloneSlice(l)
		}
	case SectionReferences:
		if l, ok := payload.([]ReferenceEntry); ok {
			d.References = cloneSlice(l)
		}
	}
}

// SectionData returns the current payload of the named section. Slices are
// copied so callers cannot mutate the document through the returned value.
func (d *WizardDocument) SectionData(section Section) any {
	switch section {
	case SectionPersonal:
		return d.Personal
	case SectionEducation:
		return cloneSlice(d.Education)
	case SectionExperience:
		return cloneSlice(d.Experience)
	case SectionSkills:
		return cloneSkillCategories(d.Skills)
	case SectionLanguages:
		return cloneSlice(d.Languages)
	case SectionCertifications:
		return cloneSlice(d.Certifications)
	case SectionReferences:
		return cloneSlice(d.References)
	}
	return nil
}

// Clone returns a deep copy of the document. Mutating the copy never
// affects the original.
func (d *WizardDocument) Clone() WizardDocument {
	return WizardDocument{
		Personal:       d.Personal,
		Education:      cloneSlice(d.Education),
		Experience:     cloneSlice(d.Experience),
		Skills:         cloneSkillCategories(d.Skills),
		Languages:      cloneSlice(d.Languages),
		Certifications: cloneSlice(d.Certifications),
		References:     cloneSlice(d.References),
	}
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func cloneSkillCategories(in []SkillCategory) []SkillCategory {
	if in == nil {
		return nil
	}
	out := make([]SkillCategory, len(in))
	for i, c := range in {
		c.Skills = cloneSlice(c.Skills)
		out[i] = c
	}
	return out
}
