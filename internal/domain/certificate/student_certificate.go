// Package certificate contains the student certificate register.
package certificate

import "github.com/schoolms/backend/internal/domain/shared"

// StudentCertificate records a certificate awarded to a student for a
// program or event.
type StudentCertificate struct {
	shared.BaseEntity
	shared.SoftDeletes
	SchoolID       uint64
	StudentID      uint64
	ProgramName    *string
	EventName      *string
	CertificateFor *string
}

// StudentCertificateFillable lists the mass-assignable certificate attributes
var StudentCertificateFillable = shared.Fillable{
	"school_id", "student_id", "program_name", "event_name", "certificate_for",
}

// NewStudentCertificate builds a certificate from an attribute bag
func NewStudentCertificate(attrs shared.Attributes) (*StudentCertificate, error) {
	c := &StudentCertificate{BaseEntity: shared.NewBaseEntity()}
	if err := c.Fill(attrs); err != nil {
		return nil, err
	}
	return c, nil
}

// Fill bulk-assigns whitelisted attributes
func (c *StudentCertificate) Fill(attrs shared.Attributes) error {
	next := *c
	if err := shared.Assign(attrs, StudentCertificateFillable, shared.Fields{
		"school_id":       shared.Uint64Field(&next.SchoolID),
		"student_id":      shared.Uint64Field(&next.StudentID),
		"program_name":    shared.NullableStringField(&next.ProgramName),
		"event_name":      shared.NullableStringField(&next.EventName),
		"certificate_for": shared.NullableStringField(&next.CertificateFor),
	}); err != nil {
		return err
	}
	*c = next
	return nil
}
