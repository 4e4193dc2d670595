package payroll

import (
	"github.com/schoolms/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ItemType tells whether a template line adds to or subtracts from pay
type ItemType string

const (
	ItemTypeEarning   ItemType = "earning"
	ItemTypeDeduction ItemType = "deduction"
)

// TemplateItem is one earning or deduction line of a payroll template
type TemplateItem struct {
	shared.BaseEntity
	shared.SoftDeletes
	TemplateID *uint64
	Name       string
	Type       ItemType
	Amount     decimal.Decimal
}

// TemplateItemFillable lists the mass-assignable template item attributes
var TemplateItemFillable = shared.Fillable{"template_id", "name", "type", "amount"}

// NewTemplateItem builds a template item from an attribute bag
func NewTemplateItem(attrs shared.Attributes) (*TemplateItem, error) {
	i := &TemplateItem{BaseEntity: shared.NewBaseEntity(), Type: ItemTypeEarning}
	if err := i.Fill(attrs); err != nil {
		return nil, err
	}
	return i, nil
}

// Fill bulk-assigns whitelisted attributes
func (i *TemplateItem) Fill(attrs shared.Attributes) error {
	next := *i
	itemType := string(next.Type)
	if err := shared.Assign(attrs, TemplateItemFillable, shared.Fields{
		"template_id": shared.NullableUint64Field(&next.TemplateID),
		"name":        shared.StringField(&next.Name),
		"type":        shared.StringField(&itemType),
		"amount":      shared.DecimalField(&next.Amount),
	}); err != nil {
		return err
	}
	switch ItemType(itemType) {
	case ItemTypeEarning, ItemTypeDeduction:
		next.Type = ItemType(itemType)
	default:
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "template item type must be earning or deduction")
	}
	*i = next
	return nil
}

// SignedAmount returns the amount negated for deductions
func (i *TemplateItem) SignedAmount() decimal.Decimal {
	if i.Type == ItemTypeDeduction {
		return i.Amount.Neg()
	}
	return i.Amount
}
