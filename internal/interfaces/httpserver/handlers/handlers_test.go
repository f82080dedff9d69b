package handlers

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"devhub-server/internal/config"
	"devhub-server/internal/domain/catalog"
	"devhub-server/internal/domain/gallery"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func testConfig() *config.Config {
	return &config.Config{
		ServiceName:    "devhub-server",
		S3PublicURL:    "https://cdn.example.com",
		UploadPrefix:   "uploads/",
		MaxUploadBytes: 10 * 1024 * 1024,
		AdminPassword:  "letmein",
	}
}

// stubStorage is an in-memory gallery.Storage for handler tests.
type stubStorage struct {
	objects   map[string][]byte
	listErr   error
	delErr    error
	healthErr error
}

func newStubStorage() *stubStorage {
	return &stubStorage{objects: make(map[string][]byte)}
}

func (s *stubStorage) List(ctx context.Context, prefix string) ([]gallery.StoredObject, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var objects []gallery.StoredObject
	for key, data := range s.objects {
		objects = append(objects, gallery.StoredObject{Key: key, Size: int64(len(data))})
	}
	return objects, nil
}

func (s *stubStorage) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	s.objects[key] = data
	return nil
}

func (s *stubStorage) Copy(ctx context.Context, srcKey, dstKey string) error {
	data, ok := s.objects[srcKey]
	if !ok {
		return os.ErrNotExist
	}
	s.objects[dstKey] = data
	return nil
}

func (s *stubStorage) Delete(ctx context.Context, key string) error {
	if s.delErr != nil {
		return s.delErr
	}
	delete(s.objects, key)
	return nil
}

func (s *stubStorage) Download(ctx context.Context, key string) (io.ReadCloser, string, error) {
	data, ok := s.objects[key]
	if !ok {
		return nil, "", os.ErrNotExist
	}
	return io.NopCloser(bytes.NewReader(data)), "image/png", nil
}

func (s *stubStorage) Health(ctx context.Context) error {
	return s.healthErr
}

// stubRepository is a fixed-data catalog.Repository for handler tests.
type stubRepository struct {
	results []catalog.SearchResult
	paths   []catalog.LearningPath
}

func (s *stubRepository) SearchResults(ctx context.Context, query string) ([]catalog.SearchResult, error) {
	return s.results, nil
}

func (s *stubRepository) AllResults(ctx context.Context) ([]catalog.SearchResult, error) {
	return s.results, nil
}

func (s *stubRepository) Resources(ctx context.Context) ([]catalog.Resource, error) {
	return nil, nil
}

func (s *stubRepository) LearningPaths(ctx context.Context) ([]catalog.LearningPath, error) {
	return s.paths, nil
}

func (s *stubRepository) LearningPathBySkill(ctx context.Context, skill string) (*catalog.LearningPath, error) {
	for i := range s.paths {
		if s.paths[i].Skill == skill {
			return &s.paths[i], nil
		}
	}
	return nil, nil
}

func nopLogger() zerolog.Logger {
	return zerolog.Nop()
}
