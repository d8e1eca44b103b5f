package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	apperrors "wardrobe/internal/errors"
)

const s3KeyPrefix = "uploads/"

// PutObjectAPI is the part of the S3 client the storer needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Storer uploads images to an S3 bucket.
type S3Storer struct {
	client        PutObjectAPI
	bucket        string
	region        string
	publicBaseURL string
}

var _ Storer = (*S3Storer)(nil)

// NewS3Storer creates an S3Storer. publicBaseURL overrides the default
// virtual-hosted bucket URL, e.g. for a CDN in front of the bucket.
func NewS3Storer(client PutObjectAPI, bucket, region, publicBaseURL string) *S3Storer {
	return &S3Storer{
		client:        client,
		bucket:        bucket,
		region:        region,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (s *S3Storer) Store(ctx context.Context, f File) (string, error) {
	if err := Validate(f); err != nil {
		return "", err
	}
	data, err := readLimited(f.Reader)
	if err != nil {
		var appErr *apperrors.Error
		if errors.As(err, &appErr) {
			return "", err
		}
		return "", apperrors.IO("Failed to read upload", err)
	}

	key := s3KeyPrefix + uuid.NewString() + extension(f.OriginalName)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(f.MimeType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", apperrors.Upload("Upload failed", err)
	}
	return s.objectURL(key), nil
}

func (s *S3Storer) objectURL(key string) string {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
