package storage

import (
	"fmt"

	"github.com/schoolms/backend/internal/domain/shared"
	"github.com/schoolms/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NewFilePathResolver builds the resolver selected by cfg.Driver
func NewFilePathResolver(cfg *config.StorageConfig, logger *zap.Logger) (shared.FilePathResolver, error) {
	switch cfg.Driver {
	case config.StorageDriverPublic, "":
		return NewPublicPathResolver(cfg.BaseURL, cfg.UploadDir), nil
	case config.StorageDriverS3:
		return NewS3PathResolver(cfg, WithLogger(logger))
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}
