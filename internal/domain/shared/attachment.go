package shared

import (
	"context"
	"strings"
)

// NoAttachment is the accessor result for records without a stored file
const NoAttachment = ""

// FilePathResolver maps a stored file name to a path or URL clients can
// use to fetch the file. Implementations live in the storage layer.
type FilePathResolver interface {
	FilePath(ctx context.Context, name string) (string, error)
}

// FilePathResolverFunc adapts a function to FilePathResolver
type FilePathResolverFunc func(ctx context.Context, name string) (string, error)

// FilePath implements FilePathResolver
func (f FilePathResolverFunc) FilePath(ctx context.Context, name string) (string, error) {
	return f(ctx, name)
}

// HasAttachment is implemented by entities exposing a stored file name
type HasAttachment interface {
	AttachmentName() string
}

// AttachmentPath resolves the access path of stored. Blank names yield
// NoAttachment without consulting the resolver.
func AttachmentPath(ctx context.Context, resolver FilePathResolver, stored string) (string, error) {
	name := strings.TrimSpace(stored)
	if name == "" || resolver == nil {
		return NoAttachment, nil
	}
	return resolver.FilePath(ctx, name)
}

// AttachmentPathOf resolves the attachment path of any HasAttachment entity
func AttachmentPathOf(ctx context.Context, resolver FilePathResolver, e HasAttachment) (string, error) {
	return AttachmentPath(ctx, resolver, e.AttachmentName())
}
