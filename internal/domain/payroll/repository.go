package payroll

import (
	"context"

	"github.com/schoolms/backend/internal/domain/identity"
	"github.com/schoolms/backend/internal/domain/shared"
)

// PayrollTemplateRepository persists payroll templates and resolves their
// relations. Relation lookups query on every call.
type PayrollTemplateRepository interface {
	shared.SoftDeleteRepository[PayrollTemplate]

	// User resolves created_by; nil when unset or unmatched
	User(ctx context.Context, t *PayrollTemplate) (*identity.User, error)
	// PayrollItems returns the template items whose template_id is t.ID
	PayrollItems(ctx context.Context, t *PayrollTemplate) ([]TemplateItem, error)
	// Salaries returns the salaries whose template_id is t.ID
	Salaries(ctx context.Context, t *PayrollTemplate) ([]Salary, error)
}

// TemplateItemRepository persists payroll template items
type TemplateItemRepository interface {
	shared.SoftDeleteRepository[TemplateItem]
}

// SalaryRepository persists salaries
type SalaryRepository interface {
	shared.SoftDeleteRepository[Salary]
}

// PayrollRepository persists payrolls
type PayrollRepository interface {
	shared.SoftDeleteRepository[Payroll]
}

// SalaryItemRepository persists salary items. Every read carries the
// templateitem relation.
type SalaryItemRepository interface {
	shared.SoftDeleteRepository[SalaryItem]

	// Salary resolves salary_id; nil when unset or unmatched
	Salary(ctx context.Context, item *SalaryItem) (*Salary, error)
	// TemplateItem resolves template_item_id; nil when unset or unmatched
	TemplateItem(ctx context.Context, item *SalaryItem) (*TemplateItem, error)
	// FindBySalary lists the items of one salary
	FindBySalary(ctx context.Context, salaryID uint64) ([]SalaryItem, error)
}

// PayslipItemRepository persists payslip items. Every read carries the
// salaryitem relation, itself carrying templateitem.
type PayslipItemRepository interface {
	shared.SoftDeleteRepository[PayslipItem]

	// Payroll resolves payroll_id; nil when unset or unmatched
	Payroll(ctx context.Context, item *PayslipItem) (*Payroll, error)
	// SalaryItem resolves salary_item_id; nil when unset or unmatched
	SalaryItem(ctx context.Context, item *PayslipItem) (*SalaryItem, error)
	// FindByPayroll lists the items of one payroll
	FindByPayroll(ctx context.Context, payrollID uint64) ([]PayslipItem, error)
}
