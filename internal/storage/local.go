package storage

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	apperrors "wardrobe/internal/errors"
)

// PublicPrefix is the URL path locally stored files are served under.
const PublicPrefix = "/uploads/"

// LocalStorer writes uploads into a directory on disk.
type LocalStorer struct {
	dir string
	now func() time.Time
}

var _ Storer = (*LocalStorer)(nil)

// NewLocalStorer creates dir if needed.
func NewLocalStorer(dir string) (*LocalStorer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStorer{dir: dir, now: time.Now}, nil
}

// Dir is the directory files are written to.
func (s *LocalStorer) Dir() string {
	return s.dir
}

func (s *LocalStorer) Store(ctx context.Context, f File) (string, error) {
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
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := fmt.Sprintf("image-%d-%d%s", s.now().UnixMilli(), rand.IntN(1e9), extension(f.OriginalName))
	file, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", apperrors.IO("Failed to save file", err)
	}
	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(file.Name())
		return "", apperrors.IO("Failed to save file", err)
	}
	if err := file.Close(); err != nil {
		return "", apperrors.IO("Failed to save file", err)
	}
	return PublicPrefix + name, nil
}
