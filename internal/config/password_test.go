package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewPasswordConfig(t *testing.T) {
	tests := []struct {
		name       string
		cost       string
		pepper     string
		wantCost   int
		wantErrSub string
	}{
		{
			name:     "defaults",
			wantCost: 12,
		},
		{
			name:     "custom cost with pepper",
			cost:     "10",
			pepper:   "extra-secret",
			wantCost: 10,
		},
		{
			name:     "maximum cost",
			cost:     "14",
			wantCost: 14,
		},
		{
			name:       "non-numeric cost",
			cost:       "high",
			wantErrSub: "BCRYPT_COST",
		},
		{
			name:       "cost below minimum",
			cost:       "9",
			wantErrSub: "out of range",
		},
		{
			name:       "cost above maximum",
			cost:       "15",
			wantErrSub: "out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BCRYPT_COST", tt.cost)
			t.Setenv("PASSWORD_PEPPER", tt.pepper)

			cfg, err := NewPasswordConfig()
			if tt.wantErrSub != "" {
				require.Error(t, err)
				assert.Nil(t, cfg)
				assert.Contains(t, err.Error(), tt.wantErrSub)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCost, cfg.BcryptCost)
			assert.Equal(t, tt.pepper, cfg.Pepper)
		})
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	// Minimum accepted cost keeps the test fast.
	cfg := &PasswordConfig{BcryptCost: 10}

	hash, err := cfg.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, cfg.VerifyPassword("correct horse battery staple", hash))
	assert.False(t, cfg.VerifyPassword("correct horse battery", hash))
	assert.False(t, cfg.VerifyPassword("", hash))
	assert.False(t, cfg.VerifyPassword("correct horse battery staple", "not-a-bcrypt-hash"))
}

func TestHashPasswordProducesDistinctHashes(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	first, err := cfg.HashPassword("same-password")
	require.NoError(t, err)
	second, err := cfg.HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "bcrypt salting should make every hash unique")
	assert.True(t, cfg.VerifyPassword("same-password", first))
	assert.True(t, cfg.VerifyPassword("same-password", second))
}

func TestPepperBindsHashToConfig(t *testing.T) {
	peppered := &PasswordConfig{BcryptCost: 10, Pepper: "global-secret"}
	plain := &PasswordConfig{BcryptCost: 10}

	hash, err := peppered.HashPassword("hunter2")
	require.NoError(t, err)

	assert.True(t, peppered.VerifyPassword("hunter2", hash))
	assert.False(t, plain.VerifyPassword("hunter2", hash), "hash made with a pepper must not verify without it")

	otherPepper := &PasswordConfig{BcryptCost: 10, Pepper: "different-secret"}
	assert.False(t, otherPepper.VerifyPassword("hunter2", hash))
}

func TestNeedsRehash(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 11}

	lowCost, err := bcrypt.GenerateFromPassword([]byte("hunter2"), 10)
	require.NoError(t, err)
	atCost, err := bcrypt.GenerateFromPassword([]byte("hunter2"), 11)
	require.NoError(t, err)

	assert.True(t, cfg.NeedsRehash(string(lowCost)), "hash below the configured cost should be upgraded")
	assert.False(t, cfg.NeedsRehash(string(atCost)))
	assert.False(t, cfg.NeedsRehash("not-a-bcrypt-hash"), "unparseable hash is not flagged for rehash")
}
