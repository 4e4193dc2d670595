package payroll

import (
	"github.com/schoolms/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PayrollStatus tracks whether a payroll has been paid out
type PayrollStatus = int

const (
	PayrollStatusUnpaid PayrollStatus = 0
	PayrollStatusPaid   PayrollStatus = 1
)

// Payroll is the monthly pay run of one staff member
type Payroll struct {
	shared.BaseEntity
	shared.SoftDeletes
	SchoolID  uint64
	UserID    uint64
	SalaryID  *uint64
	Month     int
	Year      int
	NetAmount decimal.Decimal
	Status    PayrollStatus
}

// PayrollFillable lists the mass-assignable payroll attributes
var PayrollFillable = shared.Fillable{
	"school_id", "user_id", "salary_id", "month", "year", "net_amount", "status",
}

// NewPayroll builds a payroll from an attribute bag
func NewPayroll(attrs shared.Attributes) (*Payroll, error) {
	p := &Payroll{BaseEntity: shared.NewBaseEntity()}
	if err := p.Fill(attrs); err != nil {
		return nil, err
	}
	return p, nil
}

// Fill bulk-assigns whitelisted attributes
func (p *Payroll) Fill(attrs shared.Attributes) error {
	next := *p
	if err := shared.Assign(attrs, PayrollFillable, shared.Fields{
		"school_id":  shared.Uint64Field(&next.SchoolID),
		"user_id":    shared.Uint64Field(&next.UserID),
		"salary_id":  shared.NullableUint64Field(&next.SalaryID),
		"month":      shared.IntField(&next.Month),
		"year":       shared.IntField(&next.Year),
		"net_amount": shared.DecimalField(&next.NetAmount),
		"status":     shared.IntField(&next.Status),
	}); err != nil {
		return err
	}
	if next.Month < 1 || next.Month > 12 {
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "payroll month must be between 1 and 12")
	}
	*p = next
	return nil
}
