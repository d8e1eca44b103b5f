package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"wardrobe/internal/config"
	apperrors "wardrobe/internal/errors"
)

// MockS3Client is a mock implementation of PutObjectAPI.
type MockS3Client struct {
	mock.Mock
}

func (m *MockS3Client) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

func imageFile(data []byte, name string) File {
	return File{
		Reader:       bytes.NewReader(data),
		Size:         int64(len(data)),
		OriginalName: name,
		MimeType:     "image/png",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		file    File
		wantMsg string
	}{
		{"png", File{Size: 10, MimeType: "image/png"}, ""},
		{"upper case mime", File{Size: 10, MimeType: "IMAGE/JPEG"}, ""},
		{"exactly the limit", File{Size: MaxUploadSize, MimeType: "image/gif"}, ""},
		{"too large", File{Size: MaxUploadSize + 1, MimeType: "image/png"}, "File too large"},
		{"not an image", File{Size: 10, MimeType: "application/pdf"}, "Only image uploads are allowed"},
		{"missing mime", File{Size: 10}, "Only image uploads are allowed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.file)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestLocalStorer_Store(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorer(dir)
	require.NoError(t, err)
	s.now = func() time.Time { return time.UnixMilli(1700000000123) }

	url, err := s.Store(context.Background(), imageFile([]byte("png-bytes"), "photo.PNG"))
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^/uploads/image-1700000000123-\d+\.PNG$`), url)

	written, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, PublicPrefix)))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), written)
}

func TestLocalStorer_RejectsBeforeWriting(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorer(dir)
	require.NoError(t, err)

	big := bytes.Repeat([]byte{0}, MaxUploadSize+1)
	tests := map[string]File{
		"declared too large": imageFile(big, "big.png"),
		"understated size": {
			Reader:   bytes.NewReader(big),
			Size:     1,
			MimeType: "image/png",
		},
		"not an image": {
			Reader:   strings.NewReader("%PDF"),
			Size:     4,
			MimeType: "application/pdf",
		},
	}

	for name, f := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := s.Store(context.Background(), f)
			assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		})
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestLocalStorer_ReadFailure(t *testing.T) {
	s, err := NewLocalStorer(t.TempDir())
	require.NoError(t, err)

	_, err = s.Store(context.Background(), File{Reader: failingReader{}, Size: 3, MimeType: "image/png"})
	assert.Equal(t, apperrors.KindIO, apperrors.KindOf(err))
}

func TestS3Storer_Store(t *testing.T) {
	client := new(MockS3Client)
	client.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		return aws.ToString(in.Bucket) == "closet" &&
			strings.HasPrefix(aws.ToString(in.Key), "uploads/") &&
			strings.HasSuffix(aws.ToString(in.Key), ".jpg") &&
			aws.ToString(in.ContentType) == "image/png" &&
			aws.ToInt64(in.ContentLength) == 3
	})).Return(&s3.PutObjectOutput{}, nil)

	s := NewS3Storer(client, "closet", "eu-west-1", "")
	url, err := s.Store(context.Background(), imageFile([]byte("abc"), "shirt.jpg"))
	require.NoError(t, err)
	assert.Regexp(t, `^https://closet\.s3\.eu-west-1\.amazonaws\.com/uploads/[0-9a-f-]{36}\.jpg$`, url)
	client.AssertExpectations(t)
}

func TestS3Storer_PublicBaseURL(t *testing.T) {
	client := new(MockS3Client)
	client.On("PutObject", mock.Anything, mock.Anything).Return(&s3.PutObjectOutput{}, nil)

	s := NewS3Storer(client, "closet", "eu-west-1", "https://cdn.example.com/")
	url, err := s.Store(context.Background(), imageFile([]byte("abc"), "shirt.jpg"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://cdn.example.com/uploads/"), url)
}

func TestS3Storer_Errors(t *testing.T) {
	t.Run("remote failure", func(t *testing.T) {
		client := new(MockS3Client)
		client.On("PutObject", mock.Anything, mock.Anything).Return(nil, errors.New("access denied"))

		_, err := NewS3Storer(client, "b", "r", "").Store(context.Background(), imageFile([]byte("abc"), "a.png"))
		assert.Equal(t, apperrors.KindUpload, apperrors.KindOf(err))
	})

	t.Run("too large never reaches the network", func(t *testing.T) {
		client := new(MockS3Client)

		_, err := NewS3Storer(client, "b", "r", "").Store(context.Background(), File{Size: MaxUploadSize + 1, MimeType: "image/png"})
		assert.EqualError(t, err, "File too large")
		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything)
	})
}

func TestNew(t *testing.T) {
	s, err := New(context.Background(), &config.Config{UploadBackend: config.UploadLocal, UploadDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &LocalStorer{}, s)

	_, err = New(context.Background(), &config.Config{UploadBackend: "ftp"})
	assert.Error(t, err)
}
