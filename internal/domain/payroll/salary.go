package payroll

import (
	"github.com/schoolms/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Salary assigns a payroll template to a staff member
type Salary struct {
	shared.BaseEntity
	shared.SoftDeletes
	SchoolID    uint64
	UserID      uint64
	TemplateID  *uint64
	BasicSalary decimal.Decimal
}

// SalaryFillable lists the mass-assignable salary attributes
var SalaryFillable = shared.Fillable{"school_id", "user_id", "template_id", "basic_salary"}

// NewSalary builds a salary from an attribute bag
func NewSalary(attrs shared.Attributes) (*Salary, error) {
	s := &Salary{BaseEntity: shared.NewBaseEntity()}
	if err := s.Fill(attrs); err != nil {
		return nil, err
	}
	return s, nil
}

// Fill bulk-assigns whitelisted attributes
func (s *Salary) Fill(attrs shared.Attributes) error {
	next := *s
	if err := shared.Assign(attrs, SalaryFillable, shared.Fields{
		"school_id":    shared.Uint64Field(&next.SchoolID),
		"user_id":      shared.Uint64Field(&next.UserID),
		"template_id":  shared.NullableUint64Field(&next.TemplateID),
		"basic_salary": shared.DecimalField(&next.BasicSalary),
	}); err != nil {
		return err
	}
	*s = next
	return nil
}

// SalaryItem is the amount a salary pays for one template item
type SalaryItem struct {
	shared.BaseEntity
	shared.SoftDeletes
	SalaryID       *uint64
	TemplateItemID *uint64
	Amount         decimal.Decimal

	// Always loaded on read; nil when template_item_id matches no live row
	TemplateItem *TemplateItem
}

// SalaryItemFillable lists the mass-assignable salary item attributes
var SalaryItemFillable = shared.Fillable{"salary_id", "template_item_id", "amount"}

// SalaryItemDefaultRelations are loaded on every salary item read
var SalaryItemDefaultRelations = []string{RelationTemplateItem}

// NewSalaryItem builds a salary item from an attribute bag
func NewSalaryItem(attrs shared.Attributes) (*SalaryItem, error) {
	i := &SalaryItem{BaseEntity: shared.NewBaseEntity()}
	if err := i.Fill(attrs); err != nil {
		return nil, err
	}
	return i, nil
}

// Fill bulk-assigns whitelisted attributes
func (i *SalaryItem) Fill(attrs shared.Attributes) error {
	next := *i
	if err := shared.Assign(attrs, SalaryItemFillable, shared.Fields{
		"salary_id":        shared.NullableUint64Field(&next.SalaryID),
		"template_item_id": shared.NullableUint64Field(&next.TemplateItemID),
		"amount":           shared.DecimalField(&next.Amount),
	}); err != nil {
		return err
	}
	*i = next
	return nil
}
