package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisabledUploader(t *testing.T) {
	u := Disabled()
	ctx := context.Background()

	_, err := u.Upload(ctx, strings.NewReader("img"), "photo-1")
	assert.ErrorIs(t, err, ErrNotConfigured)

	assert.ErrorIs(t, u.Delete(ctx, "photo-1"), ErrNotConfigured)
}

func TestNewCloudinaryUploaderRequiresCloudName(t *testing.T) {
	_, err := NewCloudinaryUploader("", "key", "secret")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
