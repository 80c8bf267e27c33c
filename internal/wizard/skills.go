package wizard

import (
	"strings"

	"github.com/gedeon/andikacv/internal/types"
)

// SkillsEditor manages the skill categories section. It wraps the generic
// editor for category-level operations and adds skill-string management
// within a category. New documents seed the two conventional categories.
type SkillsEditor struct {
	*Editor[types.SkillCategory]
}

// NewSkillsEditor builds the skills section editor. Without existing data
// it seeds "Technical Skills" and "Soft Skills" with empty skill lists.
func NewSkillsEditor(existing []types.SkillCategory, newID IDFunc, notify Notify) *SkillsEditor {
	blank := func(id string) types.SkillCategory {
		return types.SkillCategory{EntryID: id, Skills: []string{}}
	}
	seed := []types.SkillCategory{
		{EntryID: newID(), Name: "Technical Skills", Skills: []string{}},
		{EntryID: newID(), Name: "Soft Skills", Skills: []string{}},
	}
	return &SkillsEditor{
		Editor: newEditor(types.SectionSkills, existing, seed, blank, newID, notify),
	}
}

// AddSkill appends a skill string to the category matching categoryID.
// Blank and whitespace-only skills are rejected; the return value reports
// whether the skill was added.
func (ed *SkillsEditor) AddSkill(categoryID, skill string) bool {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return false
	}
	for i, cat := range ed.entries {
		if cat.EntryID == categoryID {
			skills := make([]string, 0, len(cat.Skills)+1)
			skills = append(skills, cat.Skills...)
			cat.Skills = append(skills, skill)
			ed.entries[i] = cat
			ed.emit()
			return true
		}
	}
	return false
}

// RemoveSkill deletes the skill at index from the category matching
// categoryID. Out-of-range indexes are ignored.
func (ed *SkillsEditor) RemoveSkill(categoryID string, index int) {
	for i, cat := range ed.entries {
		if cat.EntryID != categoryID {
			continue
		}
		if index < 0 || index >= len(cat.Skills) {
			return
		}
		skills := make([]string, 0, len(cat.Skills)-1)
		skills = append(skills, cat.Skills[:index]...)
		cat.Skills = append(skills, cat.Skills[index+1:]...)
		ed.entries[i] = cat
		ed.emit()
		return
	}
}

// RenameCategory sets the display name of the category matching categoryID.
func (ed *SkillsEditor) RenameCategory(categoryID, name string) {
	ed.UpdateField(categoryID, "name", name)
}
