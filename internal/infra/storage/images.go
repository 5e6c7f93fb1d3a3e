package storage

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"roombook/internal/pkg/config"
	"roombook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUnsupportedImageType = errors.New("unsupported image type")

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
}

// ImageStore keeps room images on local disk under a configured directory.
// Stored names are generated, so a name never escapes the directory.
type ImageStore struct {
	dir string
}

func NewImageStore(cfg config.StorageConfig) (*ImageStore, error) {
	if err := os.MkdirAll(cfg.ImageDir, 0o755); err != nil {
		return nil, errs.Wrap(err, "failed to create image directory")
	}
	return &ImageStore{dir: cfg.ImageDir}, nil
}

// Save writes the uploaded file under a fresh generated name and returns
// that name for the room row to reference.
func (s *ImageStore) Save(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", ErrUnsupportedImageType
	}

	name := uuid.New().String() + ext

	src, err := file.Open()
	if err != nil {
		return "", errs.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", errs.Wrap(err, "failed to create image file")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dst.Name())
		return "", errs.Wrap(err, "failed to write image file")
	}

	return name, nil
}

// Delete is tolerant of a missing file: the row is already gone and a
// repeated cleanup must not fail the request.
func (s *ImageStore) Delete(name string) error {
	if name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return errs.Wrap(err, "failed to delete image file")
	}
	return nil
}
