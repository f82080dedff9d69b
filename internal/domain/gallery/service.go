package gallery

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"

	"devhub-server/internal/config"
	"devhub-server/internal/utils/imageid"
)

// StoredObject is the storage-level view of one object under the prefix.
type StoredObject struct {
	Key          string
	LastModified time.Time
	Size         int64
}

// Storage defines the object-store operations the gallery needs. The store
// is externally synchronized; concurrent mutations of the same key from two
// clients are not coordinated here.
type Storage interface {
	List(ctx context.Context, prefix string) ([]StoredObject, error)
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Copy(ctx context.Context, srcKey, dstKey string) error
	Delete(ctx context.Context, key string) error
	Download(ctx context.Context, key string) (io.ReadCloser, string, error)
	Health(ctx context.Context) error
}

var (
	ErrNotImage     = errors.New("file is not an image")
	ErrEmptyFile    = errors.New("file is empty")
	ErrTooLarge     = errors.New("file exceeds the upload size limit")
	ErrEmptyKey     = errors.New("object key is required")
	ErrSameKey      = errors.New("old and new key are identical")
	ErrOutsideScope = errors.New("object key is outside the gallery prefix")
)

// Service coordinates gallery operations against the object store.
type Service struct {
	cfg     *config.Config
	storage Storage
	log     zerolog.Logger
}

func NewService(cfg *config.Config, storage Storage, log zerolog.Logger) *Service {
	return &Service{
		cfg:     cfg,
		storage: storage,
		log:     log.With().Str("component", "gallery-service").Logger(),
	}
}

// List returns every image under the upload prefix, newest first. A storage
// failure degrades to an empty slice; the HTTP layer always answers 200.
func (s *Service) List(ctx context.Context) []ImageObject {
	objects, err := s.storage.List(ctx, s.cfg.UploadPrefix)
	if err != nil {
		s.log.Error().Err(err).Msg("gallery listing failed")
		return []ImageObject{}
	}

	images := make([]ImageObject, 0, len(objects))
	for _, obj := range objects {
		// ListObjects reports the prefix placeholder itself as a zero-byte key.
		if obj.Key == "" || obj.Key == s.cfg.UploadPrefix {
			continue
		}
		images = append(images, ImageObject{
			URL:          s.PublicURL(obj.Key),
			Key:          obj.Key,
			LastModified: obj.LastModified,
			Size:         obj.Size,
		})
	}

	sort.SliceStable(images, func(i, j int) bool {
		return images[i].LastModified.After(images[j].LastModified)
	})
	return images
}

// Upload validates and stores an image, returning its key and public URL.
// Validation failures happen before any storage call.
func (s *Service) Upload(ctx context.Context, filename string, data []byte) (*UploadResult, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, len(data), s.cfg.MaxUploadBytes)
	}

	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return nil, fmt.Errorf("%w: detected %s", ErrNotImage, mime.String())
	}

	ext := strings.TrimPrefix(strings.ToLower(path.Ext(filename)), ".")
	if ext == "" {
		ext = strings.TrimPrefix(mime.Extension(), ".")
	}
	key := fmt.Sprintf("%s%s.%s", s.cfg.UploadPrefix, imageid.New(), ext)

	if err := s.storage.Upload(ctx, key, bytes.NewReader(data), int64(len(data)), mime.String()); err != nil {
		return nil, err
	}

	s.log.Info().Str("key", key).Int("bytes", len(data)).Msg("image uploaded")
	return &UploadResult{URL: s.PublicURL(key), Key: key, ContentType: mime.String()}, nil
}

// Rename moves an object to a new key via copy-then-delete. The operation is
// not atomic: on a copy failure nothing changed; on a delete failure both
// keys exist. The returned RenameResult reports exactly which phase ran so
// callers can retry or clean up.
func (s *Service) Rename(ctx context.Context, oldKey, newKey string) (RenameResult, error) {
	result := RenameResult{OldKey: oldKey, NewKey: newKey}

	if oldKey == "" || newKey == "" {
		return result, ErrEmptyKey
	}
	if oldKey == newKey {
		return result, ErrSameKey
	}
	if !strings.HasPrefix(oldKey, s.cfg.UploadPrefix) || !strings.HasPrefix(newKey, s.cfg.UploadPrefix) {
		return result, ErrOutsideScope
	}

	if err := s.storage.Copy(ctx, oldKey, newKey); err != nil {
		return result, &RenameError{Phase: RenamePhaseCopy, Err: err}
	}
	result.Copied = true

	if err := s.storage.Delete(ctx, oldKey); err != nil {
		s.log.Warn().Str("old_key", oldKey).Str("new_key", newKey).Err(err).
			Msg("rename copied but failed to delete old key; both keys exist")
		return result, &RenameError{Phase: RenamePhaseDelete, Err: err}
	}
	result.Deleted = true

	return result, nil
}

// Delete removes an object by key. The error is surfaced so the caller can
// leave its list unchanged and notify the user.
func (s *Service) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if !strings.HasPrefix(key, s.cfg.UploadPrefix) {
		return ErrOutsideScope
	}
	if err := s.storage.Delete(ctx, key); err != nil {
		s.log.Error().Str("key", key).Err(err).Msg("gallery delete failed")
		return err
	}
	return nil
}

// Download streams object contents for proxying.
func (s *Service) Download(ctx context.Context, key string) (io.ReadCloser, string, error) {
	return s.storage.Download(ctx, key)
}

// Health reports whether the backing object store is reachable.
func (s *Service) Health(ctx context.Context) error {
	return s.storage.Health(ctx)
}

// PublicURL derives the public URL for a key by joining the configured
// public base with the object key.
func (s *Service) PublicURL(key string) string {
	return s.cfg.S3PublicURL + "/" + key
}
