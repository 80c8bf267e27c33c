package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gedeon/andikacv/internal/types"
)

func TestSkillsEditor_SeedsTwoCategories(t *testing.T) {
	ed := NewSkillsEditor(nil, Sequential(), nil)

	cats := ed.Entries()
	require.Len(t, cats, 2)
	assert.Equal(t, "Technical Skills", cats[0].Name)
	assert.Equal(t, "Soft Skills", cats[1].Name)
	assert.Empty(t, cats[0].Skills)
}

func TestSkillsEditor_AddSkill(t *testing.T) {
	ed := NewSkillsEditor(nil, Sequential(), nil)

	assert.True(t, ed.AddSkill("1", "Go"))
	assert.True(t, ed.AddSkill("1", "PostgreSQL"))

	cats := ed.Entries()
	assert.Equal(t, []string{"Go", "PostgreSQL"}, cats[0].Skills)
	assert.Empty(t, cats[1].Skills)
}

func TestSkillsEditor_AddSkillRejectsBlank(t *testing.T) {
	ed := NewSkillsEditor(nil, Sequential(), nil)

	assert.False(t, ed.AddSkill("1", ""))
	assert.False(t, ed.AddSkill("1", "   "))
	assert.False(t, ed.AddSkill("1", "\t\n"))
	assert.Empty(t, ed.Entries()[0].Skills)
}

func TestSkillsEditor_AddSkillTrimsWhitespace(t *testing.T) {
	ed := NewSkillsEditor(nil, Sequential(), nil)

	require.True(t, ed.AddSkill("2", "  Communication  "))
	assert.Equal(t, []string{"Communication"}, ed.Entries()[1].Skills)
}

func TestSkillsEditor_RemoveSkill(t *testing.T) {
	ed := NewSkillsEditor(nil, Sequential(), nil)
	ed.AddSkill("1", "Go")
	ed.AddSkill("1", "Docker")
	ed.AddSkill("1", "SQL")

	ed.RemoveSkill("1", 1)
	assert.Equal(t, []string{"Go", "SQL"}, ed.Entries()[0].Skills)

	// Out-of-range indexes are ignored.
	ed.RemoveSkill("1", 5)
	ed.RemoveSkill("1", -1)
	assert.Equal(t, []string{"Go", "SQL"}, ed.Entries()[0].Skills)
}

func TestSkillsEditor_CategoryFloorOfOne(t *testing.T) {
	ed := NewSkillsEditor(nil, Sequential(), nil)

	assert.True(t, ed.Remove("2"))
	assert.False(t, ed.Remove("1"), "last category cannot be removed")
	assert.Equal(t, 1, ed.Len())
}

func TestSkillsEditor_RenameCategory(t *testing.T) {
	ed := NewSkillsEditor(nil, Sequential(), nil)

	ed.RenameCategory("1", "Programming Languages")

	assert.Equal(t, "Programming Languages", ed.Entries()[0].Name)
}

func TestSkillsEditor_InitializedFromExisting(t *testing.T) {
	existing := []types.SkillCategory{
		{EntryID: "x", Name: "Tools", Skills: []string{"Git"}},
	}
	ed := NewSkillsEditor(existing, Sequential(), nil)

	cats := ed.Entries()
	require.Len(t, cats, 1)
	assert.Equal(t, "Tools", cats[0].Name)
	assert.Equal(t, []string{"Git"}, cats[0].Skills)
}
