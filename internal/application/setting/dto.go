package setting

import (
	"context"
	"time"

	"github.com/schoolms/backend/internal/application/common"
	"github.com/schoolms/backend/internal/domain/setting"
	"github.com/schoolms/backend/internal/domain/shared"
)

// KeywordResponse represents a keyword in API responses
type KeywordResponse struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToKeywordResponse converts a domain keyword to a response
func ToKeywordResponse(k *setting.Keyword) KeywordResponse {
	return KeywordResponse{
		ID:        k.ID,
		Name:      k.Name,
		CreatedAt: k.CreatedAt,
		UpdatedAt: k.UpdatedAt,
	}
}

// BackgroundImageResponse represents a background image in API responses.
// BackgroundImage is the resolved access path, null without a stored file.
type BackgroundImageResponse struct {
	ID              uint64     `json:"id"`
	BackgroundImage *string    `json:"background_image"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	DeletedAt       *time.Time `json:"deleted_at"`
}

// CreateBackgroundImageRequest carries the stored name of an uploaded image
type CreateBackgroundImageRequest struct {
	BackgroundImage string `json:"background_image" binding:"required,max=255"`
}

func toBackgroundImageResponse(ctx context.Context, resolver shared.FilePathResolver, b *setting.BackgroundImage) (BackgroundImageResponse, error) {
	path, err := shared.AttachmentPathOf(ctx, resolver, b)
	if err != nil {
		return BackgroundImageResponse{}, err
	}
	return BackgroundImageResponse{
		ID:              b.ID,
		BackgroundImage: common.NullablePath(path),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
		DeletedAt:       b.DeletedAt,
	}, nil
}
