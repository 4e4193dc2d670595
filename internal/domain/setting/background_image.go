package setting

import (
	"strings"

	"github.com/schoolms/backend/internal/domain/shared"
)

// BackgroundImage is an uploaded image used behind printed cards and
// certificates. Only the stored file name is persisted.
type BackgroundImage struct {
	shared.BaseEntity
	shared.SoftDeletes
	FileName string
}

// BackgroundImageFillable is intentionally empty: the file name is only
// written through SetFileName, never by bulk assignment.
var BackgroundImageFillable = shared.Fillable{}

// NewBackgroundImage builds a background image from an attribute bag.
// Every attribute is dropped by the empty whitelist.
func NewBackgroundImage(attrs shared.Attributes) (*BackgroundImage, error) {
	b := &BackgroundImage{BaseEntity: shared.NewBaseEntity()}
	if err := b.Fill(attrs); err != nil {
		return nil, err
	}
	return b, nil
}

// Fill bulk-assigns whitelisted attributes
func (b *BackgroundImage) Fill(attrs shared.Attributes) error {
	return shared.Assign(attrs, BackgroundImageFillable, shared.Fields{})
}

// SetFileName records the stored file name of the image
func (b *BackgroundImage) SetFileName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "background image file name cannot be empty")
	}
	b.FileName = name
	return nil
}

// AttachmentName implements shared.HasAttachment
func (b *BackgroundImage) AttachmentName() string {
	return b.FileName
}
