package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"

	"devhub-server/internal/config"
	"devhub-server/internal/domain/gallery"
	"devhub-server/internal/infrastructure/metrics"
)

var errStorageDisabled = errors.New("gallery storage backend is not configured; set GALLERY_S3_* to enable uploads")

// S3Storage handles gallery objects in S3-compatible storage.
type S3Storage struct {
	bucket   string
	client   *s3.Client
	log      zerolog.Logger
	disabled bool
}

func NewS3Storage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*S3Storage, error) {
	logger := log.With().Str("component", "s3-storage").Logger()
	storage := &S3Storage{
		bucket: strings.TrimSpace(cfg.S3Bucket),
		log:    logger,
	}

	accessKey := strings.TrimSpace(cfg.S3AccessKeyID)
	secretKey := strings.TrimSpace(cfg.S3SecretKey)
	if storage.bucket == "" || accessKey == "" || secretKey == "" {
		logger.Warn().Msg("GALLERY_S3_BUCKET or credentials are not set; gallery uploads will be disabled until configured")
		storage.disabled = true
		return storage, nil
	}

	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		if cfg.S3Endpoint != "" {
			return aws.Endpoint{
				URL:           cfg.S3Endpoint,
				PartitionID:   "aws",
				SigningRegion: cfg.S3Region,
			}, nil
		}
		return aws.Endpoint{}, &aws.EndpointNotFoundError{}
	})

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.S3AccessKeyID, cfg.S3SecretKey, "")),
		awsconfig.WithEndpointResolverWithOptions(resolver),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.S3UsePathStyle
	})

	storage.client = client
	return storage, nil
}

func (s *S3Storage) ensureEnabled() error {
	if s.disabled {
		return errStorageDisabled
	}
	return nil
}

// List returns all objects under the given prefix.
func (s *S3Storage) List(ctx context.Context, prefix string) ([]gallery.StoredObject, error) {
	if err := s.ensureEnabled(); err != nil {
		return nil, err
	}

	start := time.Now()
	var objects []gallery.StoredObject

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			metrics.RecordStorageOperation("list", "error", time.Since(start).Seconds())
			return nil, err
		}
		for _, item := range page.Contents {
			obj := gallery.StoredObject{}
			if item.Key != nil {
				obj.Key = *item.Key
			}
			if item.LastModified != nil {
				obj.LastModified = *item.LastModified
			}
			if item.Size != nil {
				obj.Size = *item.Size
			}
			objects = append(objects, obj)
		}
	}

	metrics.RecordStorageOperation("list", "success", time.Since(start).Seconds())
	return objects, nil
}

func (s *S3Storage) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	if err := s.ensureEnabled(); err != nil {
		return err
	}

	start := time.Now()
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		metrics.RecordStorageOperation("put", "error", time.Since(start).Seconds())
		return err
	}
	metrics.RecordStorageOperation("put", "success", time.Since(start).Seconds())
	return nil
}

// Copy duplicates an object within the bucket.
func (s *S3Storage) Copy(ctx context.Context, srcKey, dstKey string) error {
	if err := s.ensureEnabled(); err != nil {
		return err
	}

	start := time.Now()
	_, err := s.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(s.bucket),
		CopySource: aws.String(s.bucket + "/" + srcKey),
		Key:        aws.String(dstKey),
	})
	if err != nil {
		metrics.RecordStorageOperation("copy", "error", time.Since(start).Seconds())
		return err
	}
	metrics.RecordStorageOperation("copy", "success", time.Since(start).Seconds())
	return nil
}

// Delete removes an object by key.
func (s *S3Storage) Delete(ctx context.Context, key string) error {
	if err := s.ensureEnabled(); err != nil {
		return err
	}

	start := time.Now()
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		metrics.RecordStorageOperation("delete", "error", time.Since(start).Seconds())
		return err
	}
	metrics.RecordStorageOperation("delete", "success", time.Since(start).Seconds())
	return nil
}

func (s *S3Storage) Download(ctx context.Context, key string) (io.ReadCloser, string, error) {
	if err := s.ensureEnabled(); err != nil {
		return nil, "", err
	}
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, "", err
	}
	mime := ""
	if out.ContentType != nil {
		mime = *out.ContentType
	}
	return out.Body, mime, nil
}

// Health performs a simple HeadBucket request.
func (s *S3Storage) Health(ctx context.Context) error {
	if s.disabled {
		return nil
	}
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	return err
}
