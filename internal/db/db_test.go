package db

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierConstants(t *testing.T) {
	assert.Equal(t, "free", TierFree)
	assert.Equal(t, "premium", TierPremium)
}

func TestProfileNeverSerializesPasswordHash(t *testing.T) {
	p := Profile{Email: "jane@example.com", PasswordHash: "secret-hash"}

	out, err := json.Marshal(p)
	assert.NoError(t, err)
	assert.NotContains(t, string(out), "secret-hash")
	assert.Contains(t, string(out), "jane@example.com")
}

func TestCVSummaryOmitsData(t *testing.T) {
	s := CVSummary{Title: "My CV", TemplateID: "modern-1"}

	out, err := json.Marshal(s)
	assert.NoError(t, err)
	assert.NotContains(t, string(out), "data")
}
