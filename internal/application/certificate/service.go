package certificate

import (
	"context"
	"time"

	"github.com/schoolms/backend/internal/application/common"
	"github.com/schoolms/backend/internal/domain/certificate"
	"github.com/schoolms/backend/internal/domain/shared"
)

// StudentCertificateResponse represents a student certificate in API responses
type StudentCertificateResponse struct {
	ID             uint64     `json:"id"`
	SchoolID       uint64     `json:"school_id"`
	StudentID      uint64     `json:"student_id"`
	ProgramName    *string    `json:"program_name"`
	EventName      *string    `json:"event_name"`
	CertificateFor *string    `json:"certificate_for"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	DeletedAt      *time.Time `json:"deleted_at"`
}

// ToStudentCertificateResponse converts a domain certificate to a response
func ToStudentCertificateResponse(c *certificate.StudentCertificate) StudentCertificateResponse {
	return StudentCertificateResponse{
		ID:             c.ID,
		SchoolID:       c.SchoolID,
		StudentID:      c.StudentID,
		ProgramName:    c.ProgramName,
		EventName:      c.EventName,
		CertificateFor: c.CertificateFor,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
		DeletedAt:      c.DeletedAt,
	}
}

// StudentCertificateService handles student certificate records
type StudentCertificateService struct {
	records *common.SoftRecords[certificate.StudentCertificate, *certificate.StudentCertificate]
}

// NewStudentCertificateService creates a new StudentCertificateService
func NewStudentCertificateService(repo certificate.StudentCertificateRepository, obs common.Observer) *StudentCertificateService {
	return &StudentCertificateService{
		records: common.NewSoftRecords[certificate.StudentCertificate, *certificate.StudentCertificate]("student_certificate", repo, certificate.NewStudentCertificate, obs),
	}
}

// Create records a certificate from an attribute bag
func (s *StudentCertificateService) Create(ctx context.Context, attrs shared.Attributes) (*StudentCertificateResponse, error) {
	return respond(s.records.Create(ctx, attrs))
}

// GetByID retrieves a certificate
func (s *StudentCertificateService) GetByID(ctx context.Context, id uint64, q common.ReadQuery) (*StudentCertificateResponse, error) {
	return respond(s.records.Get(ctx, id, q))
}

// List retrieves one page of certificates
func (s *StudentCertificateService) List(ctx context.Context, q common.ListQuery) (shared.Paginated[StudentCertificateResponse], error) {
	rows, total, filter, err := s.records.List(ctx, q)
	if err != nil {
		return shared.Paginated[StudentCertificateResponse]{}, err
	}
	return common.PageOf(rows, total, filter, ToStudentCertificateResponse), nil
}

// Update applies whitelisted attributes to a certificate
func (s *StudentCertificateService) Update(ctx context.Context, id uint64, attrs shared.Attributes) (*StudentCertificateResponse, error) {
	return respond(s.records.Update(ctx, id, attrs))
}

// Delete soft deletes a certificate
func (s *StudentCertificateService) Delete(ctx context.Context, id uint64) error {
	return s.records.Delete(ctx, id)
}

// Restore brings a soft-deleted certificate back
func (s *StudentCertificateService) Restore(ctx context.Context, id uint64) (*StudentCertificateResponse, error) {
	return respond(s.records.Restore(ctx, id))
}

// ForceDelete removes a certificate row
func (s *StudentCertificateService) ForceDelete(ctx context.Context, id uint64) error {
	return s.records.ForceDelete(ctx, id)
}

func respond(c *certificate.StudentCertificate, err error) (*StudentCertificateResponse, error) {
	if err != nil {
		return nil, err
	}
	resp := ToStudentCertificateResponse(c)
	return &resp, nil
}
