package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"devhub-server/internal/config"
	"devhub-server/internal/domain/gallery"
)

var errLocalStorageDisabled = errors.New("local storage is not configured; set GALLERY_LOCAL_STORAGE_PATH to enable")

// LocalStorage keeps gallery objects on the local filesystem. Used in
// development instead of an S3 bucket.
type LocalStorage struct {
	basePath string
	log      zerolog.Logger
	disabled bool
}

// NewLocalStorage creates a new local filesystem storage backend.
func NewLocalStorage(cfg *config.Config, log zerolog.Logger) (*LocalStorage, error) {
	logger := log.With().Str("component", "local-storage").Logger()

	basePath := strings.TrimSpace(cfg.LocalStoragePath)
	if basePath == "" {
		logger.Warn().Msg("GALLERY_LOCAL_STORAGE_PATH is not set; local storage will be disabled")
		return &LocalStorage{
			log:      logger,
			disabled: true,
		}, nil
	}

	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create local storage directory: %w", err)
	}

	storage := &LocalStorage{
		basePath: basePath,
		log:      logger,
	}

	logger.Info().Str("path", basePath).Msg("local storage initialized")
	return storage, nil
}

func (l *LocalStorage) ensureEnabled() error {
	if l.disabled {
		return errLocalStorageDisabled
	}
	return nil
}

func (l *LocalStorage) fullPath(key string) string {
	return filepath.Join(l.basePath, filepath.FromSlash(key))
}

// List walks the base path and returns objects under the prefix.
func (l *LocalStorage) List(ctx context.Context, prefix string) ([]gallery.StoredObject, error) {
	if err := l.ensureEnabled(); err != nil {
		return nil, err
	}

	var objects []gallery.StoredObject
	root := l.fullPath(prefix)
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(l.basePath, path)
		if err != nil {
			return err
		}
		objects = append(objects, gallery.StoredObject{
			Key:          filepath.ToSlash(rel),
			LastModified: info.ModTime(),
			Size:         info.Size(),
		})
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return objects, nil
}

// Upload stores a file on the local filesystem.
func (l *LocalStorage) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	if err := l.ensureEnabled(); err != nil {
		return err
	}

	fullPath := l.fullPath(key)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	written, err := io.Copy(file, body)
	if err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	l.log.Debug().Str("key", key).Int64("bytes", written).Msg("file uploaded to local storage")
	return nil
}

// Copy duplicates a file under a new key.
func (l *LocalStorage) Copy(ctx context.Context, srcKey, dstKey string) error {
	if err := l.ensureEnabled(); err != nil {
		return err
	}

	src, err := os.Open(l.fullPath(srcKey))
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer src.Close()

	dstPath := l.fullPath(dstKey)
	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	dst, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to copy file: %w", err)
	}
	return nil
}

// Delete removes a file by key.
func (l *LocalStorage) Delete(ctx context.Context, key string) error {
	if err := l.ensureEnabled(); err != nil {
		return err
	}
	if err := os.Remove(l.fullPath(key)); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// Health reports whether the base directory is accessible. A disabled
// backend is considered healthy; it simply has nothing to serve.
func (l *LocalStorage) Health(ctx context.Context) error {
	if l.disabled {
		return nil
	}
	if _, err := os.Stat(l.basePath); err != nil {
		return fmt.Errorf("local storage path check failed: %w", err)
	}
	return nil
}

// Download opens a file for streaming. The MIME type is left for the caller
// to sniff.
func (l *LocalStorage) Download(ctx context.Context, key string) (io.ReadCloser, string, error) {
	if err := l.ensureEnabled(); err != nil {
		return nil, "", err
	}
	file, err := os.Open(l.fullPath(key))
	if err != nil {
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}
	return file, "", nil
}
