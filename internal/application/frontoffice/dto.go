package frontoffice

import (
	"context"
	"time"

	"github.com/schoolms/backend/internal/application/common"
	"github.com/schoolms/backend/internal/domain/frontoffice"
	"github.com/schoolms/backend/internal/domain/shared"
)

// PostalRecordResponse represents a postal record in API responses.
// Attachment is the resolved access path, null without a stored file.
type PostalRecordResponse struct {
	ID              uint64    `json:"id"`
	SchoolID        uint64    `json:"school_id"`
	AcademicYearID  *uint64   `json:"academic_year_id"`
	Type            string    `json:"type"`
	ReferenceNumber *string   `json:"reference_number"`
	Confidential    bool      `json:"confidential"`
	SenderTitle     *string   `json:"sender_title"`
	SenderAddress   *string   `json:"sender_address"`
	ReceiverTitle   *string   `json:"receiver_title"`
	ReceiverAddress *string   `json:"receiver_address"`
	PostalDate      *string   `json:"postal_date"`
	Description     *string   `json:"description"`
	EntryBy         *uint64   `json:"entry_by"`
	Attachment      *string   `json:"attachment"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// AttachPostalFileRequest carries the stored name of an uploaded attachment
type AttachPostalFileRequest struct {
	Attachment string `json:"attachment" binding:"max=255"`
}

func toPostalRecordResponse(ctx context.Context, resolver shared.FilePathResolver, r *frontoffice.PostalRecord) (PostalRecordResponse, error) {
	path, err := shared.AttachmentPathOf(ctx, resolver, r)
	if err != nil {
		return PostalRecordResponse{}, err
	}
	resp := PostalRecordResponse{
		ID:              r.ID,
		SchoolID:        r.SchoolID,
		AcademicYearID:  r.AcademicYearID,
		Type:            r.Type,
		ReferenceNumber: r.ReferenceNumber,
		Confidential:    r.Confidential,
		SenderTitle:     r.SenderTitle,
		SenderAddress:   r.SenderAddress,
		ReceiverTitle:   r.ReceiverTitle,
		ReceiverAddress: r.ReceiverAddress,
		Description:     r.Description,
		EntryBy:         r.EntryBy,
		Attachment:      common.NullablePath(path),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if r.PostalDate != nil {
		d := r.PostalDate.Format(time.DateOnly)
		resp.PostalDate = &d
	}
	return resp, nil
}
