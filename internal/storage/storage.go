package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"wardrobe/internal/config"
	apperrors "wardrobe/internal/errors"
)

// MaxUploadSize is the largest accepted upload in bytes.
const MaxUploadSize = 5 << 20

const (
	msgFileTooLarge = "File too large"
	msgNotAnImage   = "Only image uploads are allowed"
)

// File is an uploaded image waiting to be stored.
type File struct {
	Reader       io.Reader
	Size         int64
	OriginalName string
	MimeType     string
}

// Storer persists uploaded images and returns the URL they are served from.
type Storer interface {
	Store(ctx context.Context, f File) (string, error)
}

// New builds the Storer selected by cfg.UploadBackend.
func New(ctx context.Context, cfg *config.Config) (Storer, error) {
	switch cfg.UploadBackend {
	case config.UploadS3:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.S3Region))
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		return NewS3Storer(s3.NewFromConfig(awsCfg), cfg.S3Bucket, cfg.S3Region, cfg.S3PublicBaseURL), nil
	case config.UploadLocal, "":
		return NewLocalStorer(cfg.UploadDir)
	default:
		return nil, fmt.Errorf("unknown upload backend %q", cfg.UploadBackend)
	}
}

// Validate rejects oversized and non-image uploads before any bytes are
// written.
func Validate(f File) error {
	if f.Size > MaxUploadSize {
		return apperrors.Validation(msgFileTooLarge)
	}
	mime := strings.ToLower(strings.TrimSpace(f.MimeType))
	if !strings.HasPrefix(mime, "image/") {
		return apperrors.Validation(msgNotAnImage)
	}
	return nil
}

// readLimited reads the whole upload, failing if it exceeds MaxUploadSize
// regardless of the declared size.
func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxUploadSize {
		return nil, apperrors.Validation(msgFileTooLarge)
	}
	return data, nil
}

func extension(name string) string {
	return filepath.Ext(filepath.Base(name))
}
