package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/joseph-ayodele/invoice-extractor/internal/entity"
)

// api is the slice of the S3 SDK the store needs.
type api interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, opts ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Store stages local documents in S3 for the analysis service and removes
// them afterwards. Keys are prefixed with a fresh UUID so concurrent runs
// over identically named files cannot collide.
type Store struct {
	api    api
	bucket string
	logger *slog.Logger
}

func NewStore(awsCfg aws.Config, bucket string, logger *slog.Logger) *Store {
	return newStore(s3.NewFromConfig(awsCfg), bucket, logger)
}

func newStore(a api, bucket string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{api: a, bucket: bucket, logger: logger}
}

// Upload puts the file at path under a uuid-prefixed key and returns its
// location.
func (s *Store) Upload(ctx context.Context, path string) (entity.DocumentLocation, error) {
	f, err := os.Open(path)
	if err != nil {
		return entity.DocumentLocation{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	key := uuid.New().String() + "/" + filepath.Base(path)
	if _, err := s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   f,
	}); err != nil {
		return entity.DocumentLocation{}, fmt.Errorf("upload %s: %w", path, err)
	}

	s.logger.Info("document staged", "bucket", s.bucket, "key", key)
	return entity.DocumentLocation{Bucket: s.bucket, Key: key}, nil
}

// Remove deletes a staged object.
func (s *Store) Remove(ctx context.Context, loc entity.DocumentLocation) error {
	if _, err := s.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(loc.Bucket),
		Key:    aws.String(loc.Key),
	}); err != nil {
		return fmt.Errorf("delete s3://%s/%s: %w", loc.Bucket, loc.Key, err)
	}
	s.logger.Debug("staged document removed", "bucket", loc.Bucket, "key", loc.Key)
	return nil
}
