package payroll

import (
	"context"

	"github.com/schoolms/backend/internal/application/common"
	"github.com/schoolms/backend/internal/domain/payroll"
	"github.com/schoolms/backend/internal/domain/shared"
)

// PayrollTemplateService handles payroll templates and their relations
type PayrollTemplateService struct {
	repo    payroll.PayrollTemplateRepository
	records *common.SoftRecords[payroll.PayrollTemplate, *payroll.PayrollTemplate]
	obs     common.Observer
}

// NewPayrollTemplateService creates a new PayrollTemplateService
func NewPayrollTemplateService(repo payroll.PayrollTemplateRepository, obs common.Observer) *PayrollTemplateService {
	return &PayrollTemplateService{
		repo:    repo,
		records: common.NewSoftRecords[payroll.PayrollTemplate, *payroll.PayrollTemplate]("payroll_template", repo, payroll.NewPayrollTemplate, obs),
		obs:     obs,
	}
}

// Create creates a template from an attribute bag
func (s *PayrollTemplateService) Create(ctx context.Context, attrs shared.Attributes) (*PayrollTemplateResponse, error) {
	return respondTemplate(s.records.Create(ctx, attrs))
}

// GetByID retrieves a template with the relations named in q.With
func (s *PayrollTemplateService) GetByID(ctx context.Context, id uint64, q common.ReadQuery) (*PayrollTemplateResponse, error) {
	t, err := s.records.Get(ctx, id, q)
	if err != nil {
		return nil, err
	}
	resp := ToPayrollTemplateResponse(t, q.With...)
	return &resp, nil
}

// List retrieves one page of templates with the relations named in q.With
func (s *PayrollTemplateService) List(ctx context.Context, q common.ListQuery) (shared.Paginated[PayrollTemplateResponse], error) {
	rows, total, filter, err := s.records.List(ctx, q)
	if err != nil {
		return shared.Paginated[PayrollTemplateResponse]{}, err
	}
	return common.PageOf(rows, total, filter, func(t *payroll.PayrollTemplate) PayrollTemplateResponse {
		return ToPayrollTemplateResponse(t, q.With...)
	}), nil
}

// Update applies whitelisted attributes to a template
func (s *PayrollTemplateService) Update(ctx context.Context, id uint64, attrs shared.Attributes) (*PayrollTemplateResponse, error) {
	return respondTemplate(s.records.Update(ctx, id, attrs))
}

// Delete soft deletes a template
func (s *PayrollTemplateService) Delete(ctx context.Context, id uint64) error {
	return s.records.Delete(ctx, id)
}

// Restore brings a soft-deleted template back
func (s *PayrollTemplateService) Restore(ctx context.Context, id uint64) (*PayrollTemplateResponse, error) {
	return respondTemplate(s.records.Restore(ctx, id))
}

// ForceDelete removes a template row
func (s *PayrollTemplateService) ForceDelete(ctx context.Context, id uint64) error {
	return s.records.ForceDelete(ctx, id)
}

// TemplateUser resolves the user who created the template. The result is
// nil when created_by is unset or matches no user.
func (s *PayrollTemplateService) TemplateUser(ctx context.Context, id uint64) (*UserResponse, error) {
	var resp *UserResponse
	err := s.relation(ctx, id, payroll.RelationUser, func(ctx context.Context, t *payroll.PayrollTemplate) error {
		u, err := s.repo.User(ctx, t)
		if err != nil || u == nil {
			return err
		}
		r := ToUserResponse(u)
		resp = &r
		return nil
	})
	return resp, err
}

// TemplatePayrollItems lists the template's earning and deduction lines
func (s *PayrollTemplateService) TemplatePayrollItems(ctx context.Context, id uint64) ([]TemplateItemResponse, error) {
	var resp []TemplateItemResponse
	err := s.relation(ctx, id, payroll.RelationPayrollItems, func(ctx context.Context, t *payroll.PayrollTemplate) error {
		items, err := s.repo.PayrollItems(ctx, t)
		if err != nil {
			return err
		}
		resp = common.Map(items, ToTemplateItemResponse)
		return nil
	})
	return resp, err
}

// TemplateSalaries lists the salaries built from the template
func (s *PayrollTemplateService) TemplateSalaries(ctx context.Context, id uint64) ([]SalaryResponse, error) {
	var resp []SalaryResponse
	err := s.relation(ctx, id, payroll.RelationSalaries, func(ctx context.Context, t *payroll.PayrollTemplate) error {
		salaries, err := s.repo.Salaries(ctx, t)
		if err != nil {
			return err
		}
		resp = common.Map(salaries, ToSalaryResponse)
		return nil
	})
	return resp, err
}

func (s *PayrollTemplateService) relation(ctx context.Context, id uint64, name string, fn func(context.Context, *payroll.PayrollTemplate) error) error {
	return s.obs.Read(ctx, s.records.Entity(), name, func(ctx context.Context) error {
		t, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		return fn(ctx, t)
	})
}

func respondTemplate(t *payroll.PayrollTemplate, err error) (*PayrollTemplateResponse, error) {
	if err != nil {
		return nil, err
	}
	resp := ToPayrollTemplateResponse(t)
	return &resp, nil
}

// SalaryItemService handles salary items. Every response carries the
// templateitem relation.
type SalaryItemService struct {
	repo    payroll.SalaryItemRepository
	records *common.SoftRecords[payroll.SalaryItem, *payroll.SalaryItem]
	obs     common.Observer
}

// NewSalaryItemService creates a new SalaryItemService
func NewSalaryItemService(repo payroll.SalaryItemRepository, obs common.Observer) *SalaryItemService {
	return &SalaryItemService{
		repo:    repo,
		records: common.NewSoftRecords[payroll.SalaryItem, *payroll.SalaryItem]("salary_item", repo, payroll.NewSalaryItem, obs),
		obs:     obs,
	}
}

// Create creates a salary item from an attribute bag
func (s *SalaryItemService) Create(ctx context.Context, attrs shared.Attributes) (*SalaryItemResponse, error) {
	return respondSalaryItem(s.records.Create(ctx, attrs))
}

// GetByID retrieves a salary item
func (s *SalaryItemService) GetByID(ctx context.Context, id uint64, q common.ReadQuery) (*SalaryItemResponse, error) {
	return respondSalaryItem(s.records.Get(ctx, id, q))
}

// List retrieves one page of salary items
func (s *SalaryItemService) List(ctx context.Context, q common.ListQuery) (shared.Paginated[SalaryItemResponse], error) {
	rows, total, filter, err := s.records.List(ctx, q)
	if err != nil {
		return shared.Paginated[SalaryItemResponse]{}, err
	}
	return common.PageOf(rows, total, filter, ToSalaryItemResponse), nil
}

// Update applies whitelisted attributes to a salary item
func (s *SalaryItemService) Update(ctx context.Context, id uint64, attrs shared.Attributes) (*SalaryItemResponse, error) {
	return respondSalaryItem(s.records.Update(ctx, id, attrs))
}

// Delete soft deletes a salary item
func (s *SalaryItemService) Delete(ctx context.Context, id uint64) error {
	return s.records.Delete(ctx, id)
}

// Restore brings a soft-deleted salary item back
func (s *SalaryItemService) Restore(ctx context.Context, id uint64) (*SalaryItemResponse, error) {
	return respondSalaryItem(s.records.Restore(ctx, id))
}

// ForceDelete removes a salary item row
func (s *SalaryItemService) ForceDelete(ctx context.Context, id uint64) error {
	return s.records.ForceDelete(ctx, id)
}

// SalaryItemSalary resolves the salary the item belongs to; nil when
// salary_id is unset or matches no live salary
func (s *SalaryItemService) SalaryItemSalary(ctx context.Context, id uint64) (*SalaryResponse, error) {
	var resp *SalaryResponse
	err := s.obs.Read(ctx, s.records.Entity(), payroll.RelationSalary, func(ctx context.Context) error {
		item, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		salary, err := s.repo.Salary(ctx, item)
		if err != nil || salary == nil {
			return err
		}
		r := ToSalaryResponse(salary)
		resp = &r
		return nil
	})
	return resp, err
}

func respondSalaryItem(i *payroll.SalaryItem, err error) (*SalaryItemResponse, error) {
	if err != nil {
		return nil, err
	}
	resp := ToSalaryItemResponse(i)
	return &resp, nil
}

// PayslipItemService handles payslip items. Every response carries the
// salaryitem relation and its templateitem.
type PayslipItemService struct {
	repo    payroll.PayslipItemRepository
	records *common.SoftRecords[payroll.PayslipItem, *payroll.PayslipItem]
	obs     common.Observer
}

// NewPayslipItemService creates a new PayslipItemService
func NewPayslipItemService(repo payroll.PayslipItemRepository, obs common.Observer) *PayslipItemService {
	return &PayslipItemService{
		repo:    repo,
		records: common.NewSoftRecords[payroll.PayslipItem, *payroll.PayslipItem]("payslip_item", repo, payroll.NewPayslipItem, obs),
		obs:     obs,
	}
}

// Create creates a payslip item from an attribute bag
func (s *PayslipItemService) Create(ctx context.Context, attrs shared.Attributes) (*PayslipItemResponse, error) {
	return respondPayslipItem(s.records.Create(ctx, attrs))
}

// GetByID retrieves a payslip item
func (s *PayslipItemService) GetByID(ctx context.Context, id uint64, q common.ReadQuery) (*PayslipItemResponse, error) {
	return respondPayslipItem(s.records.Get(ctx, id, q))
}

// List retrieves one page of payslip items
func (s *PayslipItemService) List(ctx context.Context, q common.ListQuery) (shared.Paginated[PayslipItemResponse], error) {
	rows, total, filter, err := s.records.List(ctx, q)
	if err != nil {
		return shared.Paginated[PayslipItemResponse]{}, err
	}
	return common.PageOf(rows, total, filter, ToPayslipItemResponse), nil
}

// Update applies whitelisted attributes to a payslip item
func (s *PayslipItemService) Update(ctx context.Context, id uint64, attrs shared.Attributes) (*PayslipItemResponse, error) {
	return respondPayslipItem(s.records.Update(ctx, id, attrs))
}

// Delete soft deletes a payslip item
func (s *PayslipItemService) Delete(ctx context.Context, id uint64) error {
	return s.records.Delete(ctx, id)
}

// Restore brings a soft-deleted payslip item back
func (s *PayslipItemService) Restore(ctx context.Context, id uint64) (*PayslipItemResponse, error) {
	return respondPayslipItem(s.records.Restore(ctx, id))
}

// ForceDelete removes a payslip item row
func (s *PayslipItemService) ForceDelete(ctx context.Context, id uint64) error {
	return s.records.ForceDelete(ctx, id)
}

// PayslipPayroll resolves the payroll the item is printed on; nil when
// payroll_id is unset or matches no live payroll
func (s *PayslipItemService) PayslipPayroll(ctx context.Context, id uint64) (*PayrollResponse, error) {
	var resp *PayrollResponse
	err := s.obs.Read(ctx, s.records.Entity(), payroll.RelationPayroll, func(ctx context.Context) error {
		item, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		p, err := s.repo.Payroll(ctx, item)
		if err != nil || p == nil {
			return err
		}
		r := ToPayrollResponse(p)
		resp = &r
		return nil
	})
	return resp, err
}

func respondPayslipItem(i *payroll.PayslipItem, err error) (*PayslipItemResponse, error) {
	if err != nil {
		return nil, err
	}
	resp := ToPayslipItemResponse(i)
	return &resp, nil
}
