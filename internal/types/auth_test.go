//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request RegisterRequest
		wantErr bool
	}{
		{
			name: "valid request",
			request: RegisterRequest{
				Email:    "alice@example.com",
				Password: "long-enough-password",
				FullName: "Alice",
			},
			wantErr: false,
		},
		{
			name: "valid without full name",
			request: RegisterRequest{
				Email:    "alice@example.com",
				Password: "long-enough-password",
			},
			wantErr: false,
		},
		{
			name: "missing email",
			request: RegisterRequest{
				Password: "long-enough-password",
			},
			wantErr: true,
		},
		{
			name: "invalid email",
			request: RegisterRequest{
				Email:    "not-an-email",
				Password: "long-enough-password",
			},
			wantErr: true,
		},
		{
			name: "missing password",
			request: RegisterRequest{
				Email: "alice@example.com",
			},
			wantErr: true,
		},
		{
			name: "password too short",
			request: RegisterRequest{
				Email:    "alice@example.com",
				Password: "seven77",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoginRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request LoginRequest
		wantErr bool
	}{
		{
			name:    "valid request",
			request: LoginRequest{Email: "alice@example.com", Password: "anything"},
			wantErr: false,
		},
		{
			name:    "missing email",
			request: LoginRequest{Password: "anything"},
			wantErr: true,
		},
		{
			name:    "missing password",
			request: LoginRequest{Email: "alice@example.com"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdatePasswordRequest_Validation(t *testing.T) {
	valid := UpdatePasswordRequest{
		CurrentPassword: "old-password",
		NewPassword:     "new-long-password",
	}
	assert.NoError(t, valid.Validate())

	missingCurrent := UpdatePasswordRequest{NewPassword: "new-long-password"}
	assert.Error(t, missingCurrent.Validate())

	shortNew := UpdatePasswordRequest{CurrentPassword: "old-password", NewPassword: "short"}
	assert.Error(t, shortNew.Validate())
}

func TestAuthResponse_Serialization(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	profile := &Profile{
		ID:               uuid.New(),
		Email:            "alice@example.com",
		FullName:         "Alice",
		SubscriptionTier: TierFree,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	response := AuthResponse{Profile: profile, Token: "a.b.c"}

	data, err := json.Marshal(response)
	require.NoError(t, err)

	var unmarshaled AuthResponse
	require.NoError(t, json.Unmarshal(data, &unmarshaled))
	assert.Equal(t, profile.ID, unmarshaled.Profile.ID)
	assert.Equal(t, "a.b.c", unmarshaled.Token)
}

func TestProfile_IsPremium(t *testing.T) {
	free := Profile{SubscriptionTier: TierFree}
	assert.False(t, free.IsPremium())

	premium := Profile{SubscriptionTier: TierPremium}
	assert.True(t, premium.IsPremium())
}
