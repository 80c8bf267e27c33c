// Package storage uploads profile photos to Cloudinary.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ErrNotConfigured is returned when no Cloudinary credentials were wired
// in; photo uploads are disabled in that deployment.
var ErrNotConfigured = errors.New("photo storage not configured")

// photoFolder groups every upload under one Cloudinary folder.
const photoFolder = "andikacv/photos"

// Uploader stores user photos and returns their public URLs.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, publicID string) (string, error)
	Delete(ctx context.Context, publicID string) error
}

type cloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryUploader builds an Uploader from API credentials.
func NewCloudinaryUploader(cloudName, apiKey, apiSecret string) (Uploader, error) {
	if cloudName == "" {
		return nil, ErrNotConfigured
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to init cloudinary: %w", err)
	}
	return &cloudinaryUploader{cld: cld}, nil
}

func (u *cloudinaryUploader) Upload(ctx context.Context, file io.Reader, publicID string) (string, error) {
	result, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID: publicID,
		Folder:   photoFolder,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}
	return result.SecureURL, nil
}

func (u *cloudinaryUploader) Delete(ctx context.Context, publicID string) error {
	_, err := u.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}
	return nil
}

// Disabled returns an Uploader whose operations all fail with
// ErrNotConfigured.
func Disabled() Uploader {
	return disabledUploader{}
}

type disabledUploader struct{}

func (disabledUploader) Upload(context.Context, io.Reader, string) (string, error) {
	return "", ErrNotConfigured
}

func (disabledUploader) Delete(context.Context, string) error {
	return ErrNotConfigured
}
