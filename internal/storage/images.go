package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// ImageStore writes uploaded images to a local directory that is served
// statically under /images/. Filenames are derived from the upload time in
// milliseconds plus the original extension, so concurrent uploads do not
// collide on the original filename.
type ImageStore struct {
	dir     string
	baseURL string
}

func NewImageStore(dir, baseURL string) *ImageStore {
	return &ImageStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Save writes the uploaded file and returns the generated filename.
func (s *ImageStore) Save(file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(file.Filename))

	// O_EXCL keeps a same-millisecond upload from truncating the previous
	// one; on collision the timestamp is bumped until a free name is found.
	var dst *os.File
	var name string
	for bump := int64(0); ; bump++ {
		name = strconv.FormatInt(time.Now().UnixMilli()+bump, 10) + ext
		dst, err = os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			break
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("create image file: %w", err)
		}
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("write image file: %w", err)
	}

	return name, nil
}

// Remove deletes a stored image. Used as the compensating action when the
// article record could not be persisted after its image was written.
func (s *ImageStore) Remove(name string) error {
	if err := os.Remove(filepath.Join(s.dir, filepath.Base(name))); err != nil {
		return fmt.Errorf("remove image file: %w", err)
	}
	return nil
}

// PublicURL returns the absolute URL under which a stored image is served.
func (s *ImageStore) PublicURL(name string) string {
	return s.baseURL + "/images/" + name
}
