package storage

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/schoolms/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func testStorageConfig() *config.StorageConfig {
	return &config.StorageConfig{
		Driver:       config.StorageDriverS3,
		Bucket:       "school-files",
		Prefix:       "attachments/",
		AccessKey:    "test-key",
		SecretKey:    "test-secret",
		Region:       "us-east-1",
		Endpoint:     "localhost:9000",
		UsePathStyle: true,
	}
}

func TestNewS3PathResolver_Validation(t *testing.T) {
	t.Run("nil config returns error", func(t *testing.T) {
		_, err := NewS3PathResolver(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "configuration is required")
	})

	t.Run("missing bucket returns error", func(t *testing.T) {
		cfg := testStorageConfig()
		cfg.Bucket = ""
		_, err := NewS3PathResolver(cfg)
		assert.ErrorContains(t, err, "bucket is required")
	})

	t.Run("missing access key returns error", func(t *testing.T) {
		cfg := testStorageConfig()
		cfg.AccessKey = ""
		_, err := NewS3PathResolver(cfg)
		assert.ErrorContains(t, err, "access key is required")
	})

	t.Run("missing secret key returns error", func(t *testing.T) {
		cfg := testStorageConfig()
		cfg.SecretKey = ""
		_, err := NewS3PathResolver(cfg)
		assert.ErrorContains(t, err, "secret key is required")
	})

	t.Run("default presign expiration is 15 minutes", func(t *testing.T) {
		resolver, err := NewS3PathResolver(testStorageConfig())
		require.NoError(t, err)
		assert.Equal(t, 15*time.Minute, resolver.presignExpiration)
		assert.Equal(t, "school-files", resolver.GetBucket())
	})
}

func TestNormalizeEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		useSSL   bool
		expected string
	}{
		{"empty keeps AWS default", "", false, ""},
		{"adds http prefix", "minio:9000", false, "http://minio:9000"},
		{"adds https prefix with SSL", "minio:9000", true, "https://minio:9000"},
		{"keeps explicit scheme", "https://s3.example.com", false, "https://s3.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeEndpoint(tt.endpoint, tt.useSSL)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestS3PathResolverOptions(t *testing.T) {
	t.Run("WithLogger sets custom logger", func(t *testing.T) {
		logger := zaptest.NewLogger(t)
		resolver, err := NewS3PathResolver(testStorageConfig(), WithLogger(logger))
		require.NoError(t, err)
		assert.Equal(t, logger, resolver.logger)
	})

	t.Run("WithPresignExpiration sets custom duration", func(t *testing.T) {
		resolver, err := NewS3PathResolver(testStorageConfig(), WithPresignExpiration(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, time.Hour, resolver.presignExpiration)
	})
}

func TestS3PathResolver_FilePath(t *testing.T) {
	resolver, err := NewS3PathResolver(testStorageConfig(), WithLogger(zap.NewNop()))
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("empty name returns error", func(t *testing.T) {
		_, err := resolver.FilePath(ctx, "")
		assert.Error(t, err)
	})

	t.Run("presigns the prefixed key", func(t *testing.T) {
		raw, err := resolver.FilePath(ctx, "letter-2025.pdf")
		require.NoError(t, err)

		u, err := url.Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, "localhost:9000", u.Host)
		assert.Equal(t, "/school-files/attachments/letter-2025.pdf", u.Path)
		assert.Equal(t, "900", u.Query().Get("X-Amz-Expires"))
		assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
		assert.True(t, strings.Contains(raw, "letter-2025.pdf"))
	})

	t.Run("escaped names decode to the stored name", func(t *testing.T) {
		raw, err := resolver.FilePath(ctx, "scan 01 (copy).pdf")
		require.NoError(t, err)

		assert.NotContains(t, raw, "scan 01 (copy).pdf")
		u, err := url.Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, "/school-files/attachments/scan 01 (copy).pdf", u.Path)
	})

	t.Run("Key prepends the prefix", func(t *testing.T) {
		assert.Equal(t, "attachments/bg.png", resolver.Key("bg.png"))
	})
}
