package utils

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// Storage persists uploaded binaries and hands out public URLs for them.
type Storage interface {
	Save(ctx context.Context, key, contentType string, data []byte) error
	URL(key string) string
}

// ObjectKey builds a collision-safe key under prefix, keeping the extension
// of the original filename or, failing that, one derived from the content.
func ObjectKey(prefix, filename string, data []byte) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = mimetype.Detect(data).Extension()
	}
	name := uuid.NewString() + ext
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

// DetectImage returns the sniffed MIME type of data and whether it is an image.
func DetectImage(data []byte) (string, bool) {
	m := mimetype.Detect(data)
	return m.String(), strings.HasPrefix(m.String(), "image/")
}

// LocalStorage writes files below Root and serves them from BaseURL.
type LocalStorage struct {
	Root    string
	BaseURL string
}

func NewLocalStorage(root, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create media root: %w", err)
	}
	return &LocalStorage{Root: root, BaseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

func (s *LocalStorage) Save(_ context.Context, key, _ string, data []byte) error {
	dst := filepath.Join(s.Root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	// O_EXCL so a key is never silently overwritten
	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write file: %w", err)
	}
	return f.Close()
}

func (s *LocalStorage) URL(key string) string {
	return s.BaseURL + "/" + key
}
