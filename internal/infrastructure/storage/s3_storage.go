// Package storage resolves stored upload names to URLs clients can fetch.
package storage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/schoolms/backend/internal/domain/shared"
	infraconfig "github.com/schoolms/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Ensure S3PathResolver implements FilePathResolver
var _ shared.FilePathResolver = (*S3PathResolver)(nil)

// S3PathResolver resolves stored names to presigned GET URLs.
// It is compatible with any S3-compatible storage (AWS S3, MinIO, etc.)
type S3PathResolver struct {
	presignClient     *s3.PresignClient
	bucket            string
	prefix            string
	presignExpiration time.Duration
	logger            *zap.Logger
}

// S3PathResolverOption is a functional option for configuring S3PathResolver
type S3PathResolverOption func(*S3PathResolver)

// WithLogger sets a custom logger for S3PathResolver
func WithLogger(logger *zap.Logger) S3PathResolverOption {
	return func(s *S3PathResolver) {
		s.logger = logger
	}
}

// WithPresignExpiration sets a custom presign expiration duration
func WithPresignExpiration(d time.Duration) S3PathResolverOption {
	return func(s *S3PathResolver) {
		s.presignExpiration = d
	}
}

// NewS3PathResolver creates a new S3PathResolver from configuration.
// Presigning is computed locally; no request reaches the bucket.
func NewS3PathResolver(cfg *infraconfig.StorageConfig, opts ...S3PathResolverOption) (*S3PathResolver, error) {
	if cfg == nil {
		return nil, errors.New("storage configuration is required")
	}

	// Validate required configuration
	if cfg.Bucket == "" {
		return nil, errors.New("storage bucket is required")
	}
	if cfg.AccessKey == "" {
		return nil, errors.New("storage access key is required")
	}
	if cfg.SecretKey == "" {
		return nil, errors.New("storage secret key is required")
	}

	endpoint, err := normalizeEndpoint(cfg.Endpoint, cfg.UseSSL)
	if err != nil {
		return nil, err
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	resolver := &S3PathResolver{
		presignClient:     s3.NewPresignClient(client),
		bucket:            cfg.Bucket,
		prefix:            cfg.Prefix,
		presignExpiration: cfg.PresignExpiration,
		logger:            zap.NewNop(),
	}

	// Apply options
	for _, opt := range opts {
		opt(resolver)
	}

	if resolver.presignExpiration <= 0 {
		resolver.presignExpiration = 15 * time.Minute
	}

	return resolver, nil
}

// normalizeEndpoint adds a scheme to a bare host. An empty endpoint keeps
// the AWS default resolution.
func normalizeEndpoint(endpoint string, useSSL bool) (string, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return "", nil
	}
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		if useSSL {
			endpoint = "https://" + endpoint
		} else {
			endpoint = "http://" + endpoint
		}
	}
	if _, err := url.Parse(endpoint); err != nil {
		return "", fmt.Errorf("invalid storage endpoint: %w", err)
	}
	return endpoint, nil
}

// FilePath returns a presigned GET URL for the object <prefix><name>.
// The key is percent-escaped in the URL, so names outside the unreserved
// set appear verbatim only in the decoded path (url.URL.Path).
func (s *S3PathResolver) FilePath(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", errors.New("file name is required")
	}

	key := s.Key(name)
	req, err := s.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.presignExpiration))
	if err != nil {
		return "", fmt.Errorf("failed to presign %s: %w", key, err)
	}

	s.logger.Debug("Presigned attachment URL",
		zap.String("bucket", s.bucket),
		zap.String("key", key),
		zap.Duration("expires_in", s.presignExpiration),
	)
	return req.URL, nil
}

// Key returns the object key a stored name maps to
func (s *S3PathResolver) Key(name string) string {
	return s.prefix + name
}

// GetBucket returns the bucket name
func (s *S3PathResolver) GetBucket() string {
	return s.bucket
}
