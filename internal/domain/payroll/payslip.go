package payroll

import (
	"github.com/schoolms/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PayslipItem is one line printed on a payslip, copied from a salary item
type PayslipItem struct {
	shared.BaseEntity
	shared.SoftDeletes
	PayrollID    *uint64
	SalaryItemID *uint64
	Amount       decimal.Decimal

	// Always loaded on read; nil when salary_item_id matches no live row
	SalaryItem *SalaryItem
}

// PayslipItemFillable lists the mass-assignable payslip item attributes
var PayslipItemFillable = shared.Fillable{"payroll_id", "salary_item_id", "amount"}

// PayslipItemDefaultRelations are loaded on every payslip item read
var PayslipItemDefaultRelations = []string{RelationSalaryItem}

// NewPayslipItem builds a payslip item from an attribute bag
func NewPayslipItem(attrs shared.Attributes) (*PayslipItem, error) {
	i := &PayslipItem{BaseEntity: shared.NewBaseEntity()}
	if err := i.Fill(attrs); err != nil {
		return nil, err
	}
	return i, nil
}

// Fill bulk-assigns whitelisted attributes
func (i *PayslipItem) Fill(attrs shared.Attributes) error {
	next := *i
	if err := shared.Assign(attrs, PayslipItemFillable, shared.Fields{
		"payroll_id":     shared.NullableUint64Field(&next.PayrollID),
		"salary_item_id": shared.NullableUint64Field(&next.SalaryItemID),
		"amount":         shared.DecimalField(&next.Amount),
	}); err != nil {
		return err
	}
	*i = next
	return nil
}
