// Package types provides type definitions for structured data used throughout the AndikaCV system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Field names accepted by the Set methods below. They match the JSON field
// names of each entry so editors can address fields by wire name.

// Set returns a copy of the record with the named field replaced. Unknown
// fields and mistyped values leave the record unchanged.
func (p PersonalInfo) Set(field string, value any) PersonalInfo {
	switch field {
	case "fullName":
		p.FullName = asString(value, p.FullName)
	case "email":
		p.Email = asString(value, p.Email)
	case "phone":
		p.Phone = asString(value, p.Phone)
	case "address":
		p.Address = asString(value, p.Address)
	case "city":
		p.City = asString(value, p.City)
	case "country":
		p.Country = asString(value, p.Country)
	case "linkedIn":
		p.LinkedIn = asString(value, p.LinkedIn)
	case "website":
		p.Website = asString(value, p.Website)
	case "summary":
		p.Summary = asString(value, p.Summary)
	}
	return p
}

// ID returns the entry's generated identifier.
func (e EducationEntry) ID() string { return e.EntryID }

// Set returns a copy of the entry with the named field replaced. Setting
// currentlyStudying to true clears endDate in the same update. Unknown
// fields and mistyped values leave the entry unchanged.
func (e EducationEntry) Set(field string, value any) EducationEntry {
	switch field {
	case "degree":
		e.Degree = asString(value, e.Degree)
	case "institution":
		e.Institution = asString(value, e.Institution)
	case "location":
		e.Location = asString(value, e.Location)
	case "startDate":
		e.StartDate = asString(value, e.StartDate)
	case "endDate":
		e.EndDate = asString(value, e.EndDate)
	case "currentlyStudying":
		e.CurrentlyStudying = asBool(value, e.CurrentlyStudying)
		if e.CurrentlyStudying {
			e.EndDate = ""
		}
	case "gpa":
		e.GPA = asString(value, e.GPA)
	case "description":
		e.Description = asString(value, e.Description)
	}
	return e
}

// ID returns the entry's generated identifier.
func (e ExperienceEntry) ID() string { return e.EntryID }

// Set returns a copy of the entry with the named field replaced. Setting
// currentlyWorking to true clears endDate in the same update.
func (e ExperienceEntry) Set(field string, value any) ExperienceEntry {
	switch field {
	case "jobTitle":
		e.JobTitle = asString(value, e.JobTitle)
	case "company":
		e.Company = asString(value, e.Company)
	case "location":
		e.Location = asString(value, e.Location)
	case "startDate":
		e.StartDate = asString(value, e.StartDate)
	case "endDate":
		e.EndDate = asString(value, e.EndDate)
	case "currentlyWorking":
		e.CurrentlyWorking = asBool(value, e.CurrentlyWorking)
		if e.CurrentlyWorking {
			e.EndDate = ""
		}
	case "description":
		e.Description = asString(value, e.Description)
	}
	return e
}

// ID returns the category's generated identifier.
func (c SkillCategory) ID() string { return c.EntryID }

// Set returns a copy of the category with the named field replaced. Only
// the name is addressable here; skill strings are managed by the skills
// editor's add/remove operations.
func (c SkillCategory) Set(field string, value any) SkillCategory {
	if field == "name" {
		c.Name = asString(value, c.Name)
	}
	c.Skills = cloneSlice(c.Skills)
	return c
}

// ID returns the entry's generated identifier.
func (l LanguageEntry) ID() string { return l.EntryID }

// Set returns a copy of the entry with the named field replaced. The
// proficiency field only accepts one of the fixed levels or an empty
// string to clear it; anything else leaves the entry unchanged.
func (l LanguageEntry) Set(field string, value any) LanguageEntry {
	switch field {
	case "language":
		l.Language = asString(value, l.Language)
	case "proficiency":
		if v := asString(value, l.Proficiency); v == "" || isProficiencyLevel(v) {
			l.Proficiency = v
		}
	}
	return l
}

func isProficiencyLevel(v string) bool {
	for _, level := range ProficiencyLevels() {
		if v == level {
			return true
		}
	}
	return false
}

// ID returns the entry's generated identifier.
func (c CertificationEntry) ID() string { return c.EntryID }

// Set returns a copy of the entry with the named field replaced. Setting
// neverExpires to true clears expiryDate in the same update.
func (c CertificationEntry) Set(field string, value any) CertificationEntry {
	switch field {
	case "name":
		c.Name = asString(value, c.Name)
	case "organization":
		c.Organization = asString(value, c.Organization)
	case "issueDate":
		c.IssueDate = asString(value, c.IssueDate)
	case "expiryDate":
		c.ExpiryDate = asString(value, c.ExpiryDate)
	case "neverExpires":
		c.NeverExpires = asBool(value, c.NeverExpires)
		if c.NeverExpires {
			c.ExpiryDate = ""
		}
	case "credentialId":
		c.CredentialID = asString(value, c.CredentialID)
	case "credentialUrl":
		c.CredentialURL = asString(value, c.CredentialURL)
	}
	return c
}

// ID returns the entry's generated identifier.
func (r ReferenceEntry) ID() string { return r.EntryID }

// Set returns a copy of the entry with the named field replaced.
func (r ReferenceEntry) Set(field string, value any) ReferenceEntry {
	switch field {
	case "name":
		r.Name = asString(value, r.Name)
	case "jobTitle":
		r.JobTitle = asString(value, r.JobTitle)
	case "company":
		r.Company = asString(value, r.Company)
	case "email":
		r.Email = asString(value, r.Email)
	case "phone":
		r.Phone = asString(value, r.Phone)
	case "relationship":
		r.Relationship = asString(value, r.Relationship)
	}
	return r
}

func asString(v any, fallback string) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fallback
}

func asBool(v any, fallback bool) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return fallback
}
