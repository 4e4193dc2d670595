package models

import (
	"github.com/schoolms/backend/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// PayrollTemplateModel is the persistence model for the PayrollTemplate entity
type PayrollTemplateModel struct {
	SoftDeleteModel
	SchoolID  uint64  `gorm:"not null;index"`
	Name      string  `gorm:"type:varchar(191);not null"`
	Status    int     `gorm:"type:smallint;not null;default:1"`
	CreatedBy *uint64 `gorm:"index"`

	User         *UserModel          `gorm:"foreignKey:CreatedBy"`
	PayrollItems []TemplateItemModel `gorm:"foreignKey:TemplateID"`
	Salaries     []SalaryModel       `gorm:"foreignKey:TemplateID"`
}

// TableName returns the table name for GORM
func (PayrollTemplateModel) TableName() string {
	return "payroll_templates"
}

// ToDomain converts the persistence model to a domain PayrollTemplate.
// Preloaded relations are carried over; unloaded ones stay empty.
func (m *PayrollTemplateModel) ToDomain() *payroll.PayrollTemplate {
	t := &payroll.PayrollTemplate{
		BaseEntity:  m.BaseModel.ToDomain(),
		SoftDeletes: m.ToDomainSoftDeletes(),
		SchoolID:    m.SchoolID,
		Name:        m.Name,
		Status:      m.Status,
		CreatedBy:   m.CreatedBy,
	}
	if m.User != nil {
		t.User = m.User.ToDomain()
	}
	if len(m.PayrollItems) > 0 {
		t.PayrollItems = make([]payroll.TemplateItem, len(m.PayrollItems))
		for i := range m.PayrollItems {
			t.PayrollItems[i] = *m.PayrollItems[i].ToDomain()
		}
	}
	if len(m.Salaries) > 0 {
		t.Salaries = make([]payroll.Salary, len(m.Salaries))
		for i := range m.Salaries {
			t.Salaries[i] = *m.Salaries[i].ToDomain()
		}
	}
	return t
}

// FromDomain populates the persistence model from a domain PayrollTemplate.
// Relations are never written through the model.
func (m *PayrollTemplateModel) FromDomain(t *payroll.PayrollTemplate) {
	m.FromDomainSoftDelete(t.BaseEntity, t.SoftDeletes)
	m.SchoolID = t.SchoolID
	m.Name = t.Name
	m.Status = t.Status
	m.CreatedBy = t.CreatedBy
}

// TemplateItemModel is the persistence model for the TemplateItem entity
type TemplateItemModel struct {
	SoftDeleteModel
	TemplateID *uint64         `gorm:"index"`
	Name       string          `gorm:"type:varchar(191);not null"`
	Type       string          `gorm:"type:varchar(20);not null;default:'earning'"`
	Amount     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (TemplateItemModel) TableName() string {
	return "template_items"
}

// ToDomain converts the persistence model to a domain TemplateItem
func (m *TemplateItemModel) ToDomain() *payroll.TemplateItem {
	return &payroll.TemplateItem{
		BaseEntity:  m.BaseModel.ToDomain(),
		SoftDeletes: m.ToDomainSoftDeletes(),
		TemplateID:  m.TemplateID,
		Name:        m.Name,
		Type:        payroll.ItemType(m.Type),
		Amount:      m.Amount,
	}
}

// FromDomain populates the persistence model from a domain TemplateItem
func (m *TemplateItemModel) FromDomain(i *payroll.TemplateItem) {
	m.FromDomainSoftDelete(i.BaseEntity, i.SoftDeletes)
	m.TemplateID = i.TemplateID
	m.Name = i.Name
	m.Type = string(i.Type)
	m.Amount = i.Amount
}

// SalaryModel is the persistence model for the Salary entity
type SalaryModel struct {
	SoftDeleteModel
	SchoolID    uint64          `gorm:"not null;index"`
	UserID      uint64          `gorm:"not null;index"`
	TemplateID  *uint64         `gorm:"index"`
	BasicSalary decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (SalaryModel) TableName() string {
	return "salaries"
}

// ToDomain converts the persistence model to a domain Salary
func (m *SalaryModel) ToDomain() *payroll.Salary {
	return &payroll.Salary{
		BaseEntity:  m.BaseModel.ToDomain(),
		SoftDeletes: m.ToDomainSoftDeletes(),
		SchoolID:    m.SchoolID,
		UserID:      m.UserID,
		TemplateID:  m.TemplateID,
		BasicSalary: m.BasicSalary,
	}
}

// FromDomain populates the persistence model from a domain Salary
func (m *SalaryModel) FromDomain(s *payroll.Salary) {
	m.FromDomainSoftDelete(s.BaseEntity, s.SoftDeletes)
	m.SchoolID = s.SchoolID
	m.UserID = s.UserID
	m.TemplateID = s.TemplateID
	m.BasicSalary = s.BasicSalary
}

// SalaryItemModel is the persistence model for the SalaryItem entity
type SalaryItemModel struct {
	SoftDeleteModel
	SalaryID       *uint64         `gorm:"index"`
	TemplateItemID *uint64         `gorm:"index"`
	Amount         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`

	TemplateItem *TemplateItemModel `gorm:"foreignKey:TemplateItemID"`
}

// TableName returns the table name for GORM
func (SalaryItemModel) TableName() string {
	return "salary_items"
}

// ToDomain converts the persistence model to a domain SalaryItem
func (m *SalaryItemModel) ToDomain() *payroll.SalaryItem {
	i := &payroll.SalaryItem{
		BaseEntity:     m.BaseModel.ToDomain(),
		SoftDeletes:    m.ToDomainSoftDeletes(),
		SalaryID:       m.SalaryID,
		TemplateItemID: m.TemplateItemID,
		Amount:         m.Amount,
	}
	if m.TemplateItem != nil {
		i.TemplateItem = m.TemplateItem.ToDomain()
	}
	return i
}

// FromDomain populates the persistence model from a domain SalaryItem
func (m *SalaryItemModel) FromDomain(i *payroll.SalaryItem) {
	m.FromDomainSoftDelete(i.BaseEntity, i.SoftDeletes)
	m.SalaryID = i.SalaryID
	m.TemplateItemID = i.TemplateItemID
	m.Amount = i.Amount
}

// PayrollModel is the persistence model for the Payroll entity
type PayrollModel struct {
	SoftDeleteModel
	SchoolID  uint64          `gorm:"not null;index"`
	UserID    uint64          `gorm:"not null;index"`
	SalaryID  *uint64         `gorm:"index"`
	Month     int             `gorm:"type:smallint;not null"`
	Year      int             `gorm:"not null"`
	NetAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Status    int             `gorm:"type:smallint;not null;default:0"`
}

// TableName returns the table name for GORM
func (PayrollModel) TableName() string {
	return "payrolls"
}

// ToDomain converts the persistence model to a domain Payroll
func (m *PayrollModel) ToDomain() *payroll.Payroll {
	return &payroll.Payroll{
		BaseEntity:  m.BaseModel.ToDomain(),
		SoftDeletes: m.ToDomainSoftDeletes(),
		SchoolID:    m.SchoolID,
		UserID:      m.UserID,
		SalaryID:    m.SalaryID,
		Month:       m.Month,
		Year:        m.Year,
		NetAmount:   m.NetAmount,
		Status:      m.Status,
	}
}

// FromDomain populates the persistence model from a domain Payroll
func (m *PayrollModel) FromDomain(p *payroll.Payroll) {
	m.FromDomainSoftDelete(p.BaseEntity, p.SoftDeletes)
	m.SchoolID = p.SchoolID
	m.UserID = p.UserID
	m.SalaryID = p.SalaryID
	m.Month = p.Month
	m.Year = p.Year
	m.NetAmount = p.NetAmount
	m.Status = p.Status
}

// PayslipItemModel is the persistence model for the PayslipItem entity
type PayslipItemModel struct {
	SoftDeleteModel
	PayrollID    *uint64         `gorm:"index"`
	SalaryItemID *uint64         `gorm:"index"`
	Amount       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`

	SalaryItem *SalaryItemModel `gorm:"foreignKey:SalaryItemID"`
}

// TableName returns the table name for GORM
func (PayslipItemModel) TableName() string {
	return "payslip_items"
}

// ToDomain converts the persistence model to a domain PayslipItem
func (m *PayslipItemModel) ToDomain() *payroll.PayslipItem {
	i := &payroll.PayslipItem{
		BaseEntity:   m.BaseModel.ToDomain(),
		SoftDeletes:  m.ToDomainSoftDeletes(),
		PayrollID:    m.PayrollID,
		SalaryItemID: m.SalaryItemID,
		Amount:       m.Amount,
	}
	if m.SalaryItem != nil {
		i.SalaryItem = m.SalaryItem.ToDomain()
	}
	return i
}

// FromDomain populates the persistence model from a domain PayslipItem
func (m *PayslipItemModel) FromDomain(i *payroll.PayslipItem) {
	m.FromDomainSoftDelete(i.BaseEntity, i.SoftDeletes)
	m.PayrollID = i.PayrollID
	m.SalaryItemID = i.SalaryItemID
	m.Amount = i.Amount
}
