// Package frontoffice contains the front-desk postal register.
package frontoffice

import (
	"time"

	"github.com/schoolms/backend/internal/domain/shared"
)

// Postal directions recorded in the register
const (
	PostalTypeReceive  = "receive"
	PostalTypeDispatch = "dispatch"
)

// PostalRecord is one letter or parcel logged at the front office
type PostalRecord struct {
	shared.BaseEntity
	SchoolID        uint64
	AcademicYearID  *uint64
	Type            string
	ReferenceNumber *string
	Confidential    bool
	SenderTitle     *string
	SenderAddress   *string
	ReceiverTitle   *string
	ReceiverAddress *string
	PostalDate      *time.Time
	Description     *string
	EntryBy         *uint64
	// Attachment is the stored file name; written by the upload flow only
	Attachment string
}

// PostalRecordFillable lists the mass-assignable postal record attributes.
// attachment is deliberately absent.
var PostalRecordFillable = shared.Fillable{
	"school_id", "academic_year_id", "type", "reference_number", "confidential",
	"sender_title", "sender_address", "receiver_title", "receiver_address",
	"postal_date", "description", "entry_by",
}

// NewPostalRecord builds a postal record from an attribute bag
func NewPostalRecord(attrs shared.Attributes) (*PostalRecord, error) {
	r := &PostalRecord{BaseEntity: shared.NewBaseEntity()}
	if err := r.Fill(attrs); err != nil {
		return nil, err
	}
	return r, nil
}

// Fill bulk-assigns whitelisted attributes
func (r *PostalRecord) Fill(attrs shared.Attributes) error {
	next := *r
	if err := shared.Assign(attrs, PostalRecordFillable, shared.Fields{
		"school_id":        shared.Uint64Field(&next.SchoolID),
		"academic_year_id": shared.NullableUint64Field(&next.AcademicYearID),
		"type":             shared.StringField(&next.Type),
		"reference_number": shared.NullableStringField(&next.ReferenceNumber),
		"confidential":     shared.BoolField(&next.Confidential),
		"sender_title":     shared.NullableStringField(&next.SenderTitle),
		"sender_address":   shared.NullableStringField(&next.SenderAddress),
		"receiver_title":   shared.NullableStringField(&next.ReceiverTitle),
		"receiver_address": shared.NullableStringField(&next.ReceiverAddress),
		"postal_date":      shared.DateField(&next.PostalDate),
		"description":      shared.NullableStringField(&next.Description),
		"entry_by":         shared.NullableUint64Field(&next.EntryBy),
	}); err != nil {
		return err
	}
	*r = next
	return nil
}

// SetAttachment records the stored file name of an uploaded attachment
func (r *PostalRecord) SetAttachment(name string) {
	r.Attachment = name
}

// AttachmentName implements shared.HasAttachment
func (r *PostalRecord) AttachmentName() string {
	return r.Attachment
}
