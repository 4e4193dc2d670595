package storage

import (
	"context"
	"errors"
	"strings"

	"github.com/schoolms/backend/internal/domain/shared"
)

// Ensure PublicPathResolver implements FilePathResolver
var _ shared.FilePathResolver = (*PublicPathResolver)(nil)

// PublicPathResolver serves uploads from a public directory:
// <BaseURL>/<UploadDir>/<name>. The name is appended verbatim.
type PublicPathResolver struct {
	BaseURL   string
	UploadDir string
}

// NewPublicPathResolver creates a new PublicPathResolver. An empty baseURL
// yields site-relative paths.
func NewPublicPathResolver(baseURL, uploadDir string) *PublicPathResolver {
	return &PublicPathResolver{
		BaseURL:   strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		UploadDir: strings.Trim(strings.TrimSpace(uploadDir), "/"),
	}
}

// FilePath joins base URL, upload directory and name
func (p *PublicPathResolver) FilePath(_ context.Context, name string) (string, error) {
	if name == "" {
		return "", errors.New("file name is required")
	}

	var b strings.Builder
	b.WriteString(p.BaseURL)
	if p.UploadDir != "" {
		b.WriteByte('/')
		b.WriteString(p.UploadDir)
	}
	b.WriteByte('/')
	b.WriteString(strings.TrimLeft(name, "/"))
	return b.String(), nil
}
