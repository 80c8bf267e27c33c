package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gedeon/andikacv/internal/types"
)

func TestValidateCVDocument_ValidDocument(t *testing.T) {
	doc := types.WizardDocument{
		Personal: types.PersonalInfo{FullName: "Jane Doe", Email: "jane@example.com", Phone: "+250788000000"},
		Experience: []types.ExperienceEntry{
			{EntryID: "1", JobTitle: "Dev", StartDate: "2020-01", CurrentlyWorking: true},
		},
		Skills: []types.SkillCategory{
			{EntryID: "1", Name: "Technical Skills", Skills: []string{"Go"}},
		},
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	assert.NoError(t, ValidateCVDocument(data))
}

func TestValidateCVDocument_EmptyDocument(t *testing.T) {
	assert.NoError(t, ValidateCVDocument([]byte(`{"personal":{}}`)))
}

func TestValidateCVDocument_WrongType(t *testing.T) {
	err := ValidateCVDocument([]byte(`{"personal":{"fullName":42}}`))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateCVDocument_UnknownField(t *testing.T) {
	err := ValidateCVDocument([]byte(`{"personal":{},"salary":"lots"}`))
	require.Error(t, err)

	_, ok := err.(*ValidationError)
	assert.True(t, ok, "error should be ValidationError type")
}

func TestValidateCVDocument_BadProficiency(t *testing.T) {
	err := ValidateCVDocument([]byte(`{"languages":[{"id":"1","language":"French","proficiency":"expert"}]}`))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateCVDocument_MalformedJSON(t *testing.T) {
	err := ValidateCVDocument([]byte(`{`))
	require.Error(t, err)

	_, ok := err.(*SchemaLoadError)
	assert.True(t, ok, "error should be SchemaLoadError type")
}
