package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTConfig(t *testing.T) {
	tests := []struct {
		name       string
		secret     string
		issuer     string
		expiration string
		want       *JWTConfig
		wantErrSub string
	}{
		{
			name:   "defaults",
			secret: "test-secret-key",
			want:   &JWTConfig{Secret: "test-secret-key", Issuer: "andikacv", ExpirationHours: 24},
		},
		{
			name:       "custom issuer and expiration",
			secret:     "test-secret-key",
			issuer:     "andikacv-staging",
			expiration: "48",
			want:       &JWTConfig{Secret: "test-secret-key", Issuer: "andikacv-staging", ExpirationHours: 48},
		},
		{
			name:       "one week expiration",
			secret:     "test-secret-key",
			expiration: "168",
			want:       &JWTConfig{Secret: "test-secret-key", Issuer: "andikacv", ExpirationHours: 168},
		},
		{
			name:       "missing secret",
			wantErrSub: "JWT_SECRET",
		},
		{
			name:       "non-numeric expiration",
			secret:     "test-secret-key",
			expiration: "soon",
			wantErrSub: "JWT_EXPIRATION_HOURS",
		},
		{
			name:       "fractional expiration",
			secret:     "test-secret-key",
			expiration: "12.5",
			wantErrSub: "JWT_EXPIRATION_HOURS",
		},
		{
			name:       "zero expiration",
			secret:     "test-secret-key",
			expiration: "0",
			wantErrSub: "JWT_EXPIRATION_HOURS",
		},
		{
			name:       "negative expiration",
			secret:     "test-secret-key",
			expiration: "-1",
			wantErrSub: "JWT_EXPIRATION_HOURS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", tt.secret)
			t.Setenv("JWT_ISSUER", tt.issuer)
			t.Setenv("JWT_EXPIRATION_HOURS", tt.expiration)

			cfg, err := NewJWTConfig()
			if tt.wantErrSub != "" {
				require.Error(t, err)
				assert.Nil(t, cfg)
				assert.Contains(t, err.Error(), tt.wantErrSub)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestJWTConfigTTL(t *testing.T) {
	cfg := &JWTConfig{Secret: "s", Issuer: "andikacv", ExpirationHours: 12}
	assert.Equal(t, 12*time.Hour, cfg.TTL())
}
