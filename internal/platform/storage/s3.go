package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/phrazzld/rental-portal-api/internal/config"
	"github.com/phrazzld/rental-portal-api/internal/platform/logger"
)

// S3Store writes uploaded files to an S3-compatible object store.
// A non-empty BaseEndpoint points the client at MinIO or another
// S3-compatible service. References are object keys.
type S3Store struct {
	client   *s3.Client
	bucket   string
	timeFunc func() time.Time // Injectable for testing
}

// NewS3Store creates an S3Store from the storage configuration.
func NewS3Store(ctx context.Context, cfg config.StorageConfig) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
		}
		o.UsePathStyle = cfg.S3BaseEndpoint != ""
	})

	return &S3Store{
		client:   client,
		bucket:   cfg.S3Bucket,
		timeFunc: time.Now,
	}, nil
}

// Ensure S3Store implements FileStore interface
var _ FileStore = (*S3Store)(nil)

// Save implements FileStore.Save
func (s *S3Store) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	key := "uploads/" + GenerateFilename(originalName, s.timeFunc())

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   r,
	})
	if err != nil {
		log.Error("failed to put object",
			"bucket", s.bucket,
			"key", key,
			"error", err)
		return "", fmt.Errorf("failed to store object: %w", err)
	}

	return key, nil
}
