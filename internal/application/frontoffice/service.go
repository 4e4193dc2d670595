package frontoffice

import (
	"context"
	"strings"

	"github.com/schoolms/backend/internal/application/common"
	"github.com/schoolms/backend/internal/domain/frontoffice"
	"github.com/schoolms/backend/internal/domain/shared"
)

// PostalRecordService handles the postal register
type PostalRecordService struct {
	records  *common.Records[frontoffice.PostalRecord, *frontoffice.PostalRecord]
	resolver shared.FilePathResolver
}

// NewPostalRecordService creates a new PostalRecordService
func NewPostalRecordService(repo frontoffice.PostalRecordRepository, resolver shared.FilePathResolver, obs common.Observer) *PostalRecordService {
	return &PostalRecordService{
		records:  common.NewRecords[frontoffice.PostalRecord, *frontoffice.PostalRecord]("postal_record", repo, frontoffice.NewPostalRecord, obs),
		resolver: resolver,
	}
}

// Create logs a postal record. An attachment key in attrs is ignored.
func (s *PostalRecordService) Create(ctx context.Context, attrs shared.Attributes) (*PostalRecordResponse, error) {
	r, err := s.records.Create(ctx, attrs)
	if err != nil {
		return nil, err
	}
	return s.respond(ctx, r)
}

// GetByID retrieves a postal record
func (s *PostalRecordService) GetByID(ctx context.Context, id uint64) (*PostalRecordResponse, error) {
	r, err := s.records.Get(ctx, id, common.ReadQuery{})
	if err != nil {
		return nil, err
	}
	return s.respond(ctx, r)
}

// List retrieves one page of postal records
func (s *PostalRecordService) List(ctx context.Context, q common.ListQuery) (shared.Paginated[PostalRecordResponse], error) {
	rows, total, filter, err := s.records.List(ctx, q)
	if err != nil {
		return shared.Paginated[PostalRecordResponse]{}, err
	}
	return common.PageOfE(rows, total, filter, func(r *frontoffice.PostalRecord) (PostalRecordResponse, error) {
		return toPostalRecordResponse(ctx, s.resolver, r)
	})
}

// Update applies whitelisted attributes to a postal record
func (s *PostalRecordService) Update(ctx context.Context, id uint64, attrs shared.Attributes) (*PostalRecordResponse, error) {
	r, err := s.records.Update(ctx, id, attrs)
	if err != nil {
		return nil, err
	}
	return s.respond(ctx, r)
}

// Attach stores the file name of an uploaded attachment. A blank name
// detaches the file.
func (s *PostalRecordService) Attach(ctx context.Context, id uint64, req AttachPostalFileRequest) (*PostalRecordResponse, error) {
	r, err := s.records.Modify(ctx, id, func(r *frontoffice.PostalRecord) error {
		r.SetAttachment(strings.TrimSpace(req.Attachment))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.respond(ctx, r)
}

// Delete removes a postal record
func (s *PostalRecordService) Delete(ctx context.Context, id uint64) error {
	return s.records.Delete(ctx, id)
}

func (s *PostalRecordService) respond(ctx context.Context, r *frontoffice.PostalRecord) (*PostalRecordResponse, error) {
	resp, err := toPostalRecordResponse(ctx, s.resolver, r)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
