package payroll

import (
	"time"

	"github.com/schoolms/backend/internal/application/common"
	"github.com/schoolms/backend/internal/domain/identity"
	"github.com/schoolms/backend/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// UserResponse is the creator of a payroll template
type UserResponse struct {
	ID       uint64 `json:"id"`
	SchoolID uint64 `json:"school_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// TemplateItemResponse is one earning or deduction line of a template
type TemplateItemResponse struct {
	ID         uint64          `json:"id"`
	TemplateID *uint64         `json:"template_id"`
	Name       string          `json:"name"`
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
}

// SalaryResponse represents a salary assignment in API responses
type SalaryResponse struct {
	ID          uint64          `json:"id"`
	SchoolID    uint64          `json:"school_id"`
	UserID      uint64          `json:"user_id"`
	TemplateID  *uint64         `json:"template_id"`
	BasicSalary decimal.Decimal `json:"basic_salary"`
}

// PayrollResponse represents a monthly payroll in API responses
type PayrollResponse struct {
	ID        uint64          `json:"id"`
	SchoolID  uint64          `json:"school_id"`
	UserID    uint64          `json:"user_id"`
	SalaryID  *uint64         `json:"salary_id"`
	Month     int             `json:"month"`
	Year      int             `json:"year"`
	NetAmount decimal.Decimal `json:"net_amount"`
	Status    int             `json:"status"`
}

// PayrollTemplateResponse represents a payroll template in API responses.
// Relations appear only when requested; an unmatched user is null and an
// empty has-many relation is [].
type PayrollTemplateResponse struct {
	ID           uint64                                  `json:"id"`
	SchoolID     uint64                                  `json:"school_id"`
	Name         string                                  `json:"name"`
	Status       int                                     `json:"status"`
	CreatedBy    *uint64                                 `json:"created_by"`
	CreatedAt    time.Time                               `json:"created_at"`
	UpdatedAt    time.Time                               `json:"updated_at"`
	DeletedAt    *time.Time                              `json:"deleted_at"`
	User         common.Relation[*UserResponse]          `json:"user,omitzero"`
	PayrollItems common.Relation[[]TemplateItemResponse] `json:"payrollitems,omitzero"`
	Salaries     common.Relation[[]SalaryResponse]       `json:"salaries,omitzero"`
}

// SalaryItemResponse represents a salary item. templateitem is always
// present and null when the template item no longer exists.
type SalaryItemResponse struct {
	ID             uint64                `json:"id"`
	SalaryID       *uint64               `json:"salary_id"`
	TemplateItemID *uint64               `json:"template_item_id"`
	Amount         decimal.Decimal       `json:"amount"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
	DeletedAt      *time.Time            `json:"deleted_at"`
	TemplateItem   *TemplateItemResponse `json:"templateitem"`
}

// PayslipItemResponse represents a payslip line. salaryitem is always
// present and null when the salary item no longer exists.
type PayslipItemResponse struct {
	ID           uint64              `json:"id"`
	PayrollID    *uint64             `json:"payroll_id"`
	SalaryItemID *uint64             `json:"salary_item_id"`
	Amount       decimal.Decimal     `json:"amount"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
	DeletedAt    *time.Time          `json:"deleted_at"`
	SalaryItem   *SalaryItemResponse `json:"salaryitem"`
}

// ToUserResponse converts a domain user to a response
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{ID: u.ID, SchoolID: u.SchoolID, Name: u.Name, Email: u.Email}
}

// ToTemplateItemResponse converts a domain template item to a response
func ToTemplateItemResponse(i *payroll.TemplateItem) TemplateItemResponse {
	return TemplateItemResponse{
		ID:         i.ID,
		TemplateID: i.TemplateID,
		Name:       i.Name,
		Type:       string(i.Type),
		Amount:     i.Amount,
	}
}

// ToSalaryResponse converts a domain salary to a response
func ToSalaryResponse(s *payroll.Salary) SalaryResponse {
	return SalaryResponse{
		ID:          s.ID,
		SchoolID:    s.SchoolID,
		UserID:      s.UserID,
		TemplateID:  s.TemplateID,
		BasicSalary: s.BasicSalary,
	}
}

// ToPayrollResponse converts a domain payroll to a response
func ToPayrollResponse(p *payroll.Payroll) PayrollResponse {
	return PayrollResponse{
		ID:        p.ID,
		SchoolID:  p.SchoolID,
		UserID:    p.UserID,
		SalaryID:  p.SalaryID,
		Month:     p.Month,
		Year:      p.Year,
		NetAmount: p.NetAmount,
		Status:    p.Status,
	}
}

// ToPayrollTemplateResponse converts a domain template to a response,
// including the relations named in with
func ToPayrollTemplateResponse(t *payroll.PayrollTemplate, with ...string) PayrollTemplateResponse {
	resp := PayrollTemplateResponse{
		ID:        t.ID,
		SchoolID:  t.SchoolID,
		Name:      t.Name,
		Status:    t.Status,
		CreatedBy: t.CreatedBy,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
		DeletedAt: t.DeletedAt,
	}
	if common.Requested(with, payroll.RelationUser) {
		var u *UserResponse
		if t.User != nil {
			r := ToUserResponse(t.User)
			u = &r
		}
		resp.User = common.Loaded(u)
	}
	if common.Requested(with, payroll.RelationPayrollItems) {
		resp.PayrollItems = common.Loaded(common.Map(t.PayrollItems, ToTemplateItemResponse))
	}
	if common.Requested(with, payroll.RelationSalaries) {
		resp.Salaries = common.Loaded(common.Map(t.Salaries, ToSalaryResponse))
	}
	return resp
}

// ToSalaryItemResponse converts a domain salary item to a response
func ToSalaryItemResponse(i *payroll.SalaryItem) SalaryItemResponse {
	resp := SalaryItemResponse{
		ID:             i.ID,
		SalaryID:       i.SalaryID,
		TemplateItemID: i.TemplateItemID,
		Amount:         i.Amount,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
		DeletedAt:      i.DeletedAt,
	}
	if i.TemplateItem != nil {
		ti := ToTemplateItemResponse(i.TemplateItem)
		resp.TemplateItem = &ti
	}
	return resp
}

// ToPayslipItemResponse converts a domain payslip item to a response
func ToPayslipItemResponse(i *payroll.PayslipItem) PayslipItemResponse {
	resp := PayslipItemResponse{
		ID:           i.ID,
		PayrollID:    i.PayrollID,
		SalaryItemID: i.SalaryItemID,
		Amount:       i.Amount,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
		DeletedAt:    i.DeletedAt,
	}
	if i.SalaryItem != nil {
		si := ToSalaryItemResponse(i.SalaryItem)
		resp.SalaryItem = &si
	}
	return resp
}
