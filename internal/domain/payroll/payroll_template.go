// Package payroll contains the payroll template, salary and payslip
// records and the relations between them.
package payroll

import (
	"github.com/schoolms/backend/internal/domain/identity"
	"github.com/schoolms/backend/internal/domain/shared"
)

// Relation names accepted by shared.With and used as JSON keys
const (
	RelationUser         = "user"
	RelationPayrollItems = "payrollitems"
	RelationSalaries     = "salaries"
	RelationPayroll      = "payroll"
	RelationSalaryItem   = "salaryitem"
	RelationSalary       = "salary"
	RelationTemplateItem = "templateitem"
)

// TemplateStatus is the activation state of a payroll template
type TemplateStatus = int

const (
	TemplateStatusInactive TemplateStatus = 0
	TemplateStatusActive   TemplateStatus = 1
)

// PayrollTemplate groups the earning and deduction lines a salary is
// built from.
type PayrollTemplate struct {
	shared.BaseEntity
	shared.SoftDeletes
	SchoolID  uint64
	Name      string
	Status    TemplateStatus
	CreatedBy *uint64

	// Loaded only when requested through shared.With
	User         *identity.User
	PayrollItems []TemplateItem
	Salaries     []Salary
}

// PayrollTemplateFillable lists the mass-assignable template attributes
var PayrollTemplateFillable = shared.Fillable{"school_id", "name", "status", "created_by"}

// NewPayrollTemplate builds a template from an attribute bag
func NewPayrollTemplate(attrs shared.Attributes) (*PayrollTemplate, error) {
	t := &PayrollTemplate{BaseEntity: shared.NewBaseEntity()}
	if err := t.Fill(attrs); err != nil {
		return nil, err
	}
	return t, nil
}

// Fill bulk-assigns whitelisted attributes
func (t *PayrollTemplate) Fill(attrs shared.Attributes) error {
	next := *t
	if err := shared.Assign(attrs, PayrollTemplateFillable, shared.Fields{
		"school_id":  shared.Uint64Field(&next.SchoolID),
		"name":       shared.StringField(&next.Name),
		"status":     shared.IntField(&next.Status),
		"created_by": shared.NullableUint64Field(&next.CreatedBy),
	}); err != nil {
		return err
	}
	*t = next
	return nil
}
