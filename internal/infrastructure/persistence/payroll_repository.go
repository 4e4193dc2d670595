package persistence

import (
	"context"

	"github.com/schoolms/backend/internal/domain/identity"
	"github.com/schoolms/backend/internal/domain/payroll"
	"github.com/schoolms/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

type (
	templateStore     = gormStore[payroll.PayrollTemplate, models.PayrollTemplateModel, *models.PayrollTemplateModel]
	templateItemStore = gormStore[payroll.TemplateItem, models.TemplateItemModel, *models.TemplateItemModel]
	salaryStore       = gormStore[payroll.Salary, models.SalaryModel, *models.SalaryModel]
	salaryItemStore   = gormStore[payroll.SalaryItem, models.SalaryItemModel, *models.SalaryItemModel]
	payrollStore      = gormStore[payroll.Payroll, models.PayrollModel, *models.PayrollModel]
	payslipItemStore  = gormStore[payroll.PayslipItem, models.PayslipItemModel, *models.PayslipItemModel]
	userStore         = gormStore[identity.User, models.UserModel, *models.UserModel]
)

func newTemplateItemStore(db *gorm.DB) *templateItemStore {
	return newGormStore[payroll.TemplateItem, models.TemplateItemModel, *models.TemplateItemModel](db, storeConfig{
		entity:       "template item",
		softDelete:   true,
		sortFields:   TemplateItemSortFields,
		filterFields: map[string]bool{"template_id": true, "type": true},
	})
}

func newSalaryStore(db *gorm.DB) *salaryStore {
	return newGormStore[payroll.Salary, models.SalaryModel, *models.SalaryModel](db, storeConfig{
		entity:     "salary",
		softDelete: true,
		sortFields: SalarySortFields,
		filterFields: map[string]bool{
			"school_id":   true,
			"user_id":     true,
			"template_id": true,
		},
	})
}

func newSalaryItemStore(db *gorm.DB) *salaryItemStore {
	return newGormStore[payroll.SalaryItem, models.SalaryItemModel, *models.SalaryItemModel](db, storeConfig{
		entity:       "salary item",
		softDelete:   true,
		sortFields:   SalaryItemSortFields,
		filterFields: map[string]bool{"salary_id": true, "template_item_id": true},
		relations: map[string][]string{
			payroll.RelationTemplateItem: {"TemplateItem"},
		},
		defaults: []string{"TemplateItem"},
	})
}

func newPayrollStore(db *gorm.DB) *payrollStore {
	return newGormStore[payroll.Payroll, models.PayrollModel, *models.PayrollModel](db, storeConfig{
		entity:     "payroll",
		softDelete: true,
		sortFields: PayrollSortFields,
		filterFields: map[string]bool{
			"school_id": true,
			"user_id":   true,
			"salary_id": true,
			"month":     true,
			"year":      true,
			"status":    true,
		},
	})
}

// GormPayrollTemplateRepository implements PayrollTemplateRepository using GORM
type GormPayrollTemplateRepository struct {
	*templateStore
	users    *userStore
	items    *templateItemStore
	salaries *salaryStore
}

// NewGormPayrollTemplateRepository creates a new GormPayrollTemplateRepository
func NewGormPayrollTemplateRepository(db *gorm.DB) *GormPayrollTemplateRepository {
	return &GormPayrollTemplateRepository{
		templateStore: newGormStore[payroll.PayrollTemplate, models.PayrollTemplateModel, *models.PayrollTemplateModel](db, storeConfig{
			entity:     "payroll template",
			softDelete: true,
			sortFields: PayrollTemplateSortFields,
			filterFields: map[string]bool{
				"school_id":  true,
				"status":     true,
				"created_by": true,
			},
			relations: map[string][]string{
				payroll.RelationUser:         {"User"},
				payroll.RelationPayrollItems: {"PayrollItems"},
				payroll.RelationSalaries:     {"Salaries"},
			},
		}),
		users:    newUserStore(db),
		items:    newTemplateItemStore(db),
		salaries: newSalaryStore(db),
	}
}

// User resolves the template's creator
func (r *GormPayrollTemplateRepository) User(ctx context.Context, t *payroll.PayrollTemplate) (*identity.User, error) {
	return r.users.findOptional(ctx, t.CreatedBy)
}

// PayrollItems lists the template's items
func (r *GormPayrollTemplateRepository) PayrollItems(ctx context.Context, t *payroll.PayrollTemplate) ([]payroll.TemplateItem, error) {
	if t.ID == 0 {
		return []payroll.TemplateItem{}, nil
	}
	return r.items.findByColumn(ctx, "template_id", t.ID)
}

// Salaries lists the salaries built from the template
func (r *GormPayrollTemplateRepository) Salaries(ctx context.Context, t *payroll.PayrollTemplate) ([]payroll.Salary, error) {
	if t.ID == 0 {
		return []payroll.Salary{}, nil
	}
	return r.salaries.findByColumn(ctx, "template_id", t.ID)
}

// GormTemplateItemRepository implements TemplateItemRepository using GORM
type GormTemplateItemRepository struct {
	*templateItemStore
}

// NewGormTemplateItemRepository creates a new GormTemplateItemRepository
func NewGormTemplateItemRepository(db *gorm.DB) *GormTemplateItemRepository {
	return &GormTemplateItemRepository{newTemplateItemStore(db)}
}

// GormSalaryRepository implements SalaryRepository using GORM
type GormSalaryRepository struct {
	*salaryStore
}

// NewGormSalaryRepository creates a new GormSalaryRepository
func NewGormSalaryRepository(db *gorm.DB) *GormSalaryRepository {
	return &GormSalaryRepository{newSalaryStore(db)}
}

// GormPayrollRepository implements PayrollRepository using GORM
type GormPayrollRepository struct {
	*payrollStore
}

// NewGormPayrollRepository creates a new GormPayrollRepository
func NewGormPayrollRepository(db *gorm.DB) *GormPayrollRepository {
	return &GormPayrollRepository{newPayrollStore(db)}
}

// GormSalaryItemRepository implements SalaryItemRepository using GORM.
// Every read preloads the template item.
type GormSalaryItemRepository struct {
	*salaryItemStore
	salaries      *salaryStore
	templateItems *templateItemStore
}

// NewGormSalaryItemRepository creates a new GormSalaryItemRepository
func NewGormSalaryItemRepository(db *gorm.DB) *GormSalaryItemRepository {
	return &GormSalaryItemRepository{
		salaryItemStore: newSalaryItemStore(db),
		salaries:        newSalaryStore(db),
		templateItems:   newTemplateItemStore(db),
	}
}

// Salary resolves the salary the item belongs to
func (r *GormSalaryItemRepository) Salary(ctx context.Context, item *payroll.SalaryItem) (*payroll.Salary, error) {
	return r.salaries.findOptional(ctx, item.SalaryID)
}

// TemplateItem resolves the template item the amount derives from
func (r *GormSalaryItemRepository) TemplateItem(ctx context.Context, item *payroll.SalaryItem) (*payroll.TemplateItem, error) {
	return r.templateItems.findOptional(ctx, item.TemplateItemID)
}

// FindBySalary lists the items of one salary
func (r *GormSalaryItemRepository) FindBySalary(ctx context.Context, salaryID uint64) ([]payroll.SalaryItem, error) {
	return r.findByColumn(ctx, "salary_id", salaryID)
}

// GormPayslipItemRepository implements PayslipItemRepository using GORM.
// Every read preloads the salary item and its template item.
type GormPayslipItemRepository struct {
	*payslipItemStore
	payrolls    *payrollStore
	salaryItems *salaryItemStore
}

// NewGormPayslipItemRepository creates a new GormPayslipItemRepository
func NewGormPayslipItemRepository(db *gorm.DB) *GormPayslipItemRepository {
	return &GormPayslipItemRepository{
		payslipItemStore: newGormStore[payroll.PayslipItem, models.PayslipItemModel, *models.PayslipItemModel](db, storeConfig{
			entity:       "payslip item",
			softDelete:   true,
			sortFields:   PayslipItemSortFields,
			filterFields: map[string]bool{"payroll_id": true, "salary_item_id": true},
			relations: map[string][]string{
				payroll.RelationSalaryItem:   {"SalaryItem", "SalaryItem.TemplateItem"},
				payroll.RelationTemplateItem: {"SalaryItem.TemplateItem"},
			},
			defaults: []string{"SalaryItem", "SalaryItem.TemplateItem"},
		}),
		payrolls:    newPayrollStore(db),
		salaryItems: newSalaryItemStore(db),
	}
}

// Payroll resolves the payroll the item is printed on
func (r *GormPayslipItemRepository) Payroll(ctx context.Context, item *payroll.PayslipItem) (*payroll.Payroll, error) {
	return r.payrolls.findOptional(ctx, item.PayrollID)
}

// SalaryItem resolves the salary item, carrying its template item
func (r *GormPayslipItemRepository) SalaryItem(ctx context.Context, item *payroll.PayslipItem) (*payroll.SalaryItem, error) {
	return r.salaryItems.findOptional(ctx, item.SalaryItemID)
}

// FindByPayroll lists the items of one payroll
func (r *GormPayslipItemRepository) FindByPayroll(ctx context.Context, payrollID uint64) ([]payroll.PayslipItem, error) {
	return r.findByColumn(ctx, "payroll_id", payrollID)
}

var (
	_ payroll.PayrollTemplateRepository = (*GormPayrollTemplateRepository)(nil)
	_ payroll.TemplateItemRepository    = (*GormTemplateItemRepository)(nil)
	_ payroll.SalaryRepository          = (*GormSalaryRepository)(nil)
	_ payroll.PayrollRepository         = (*GormPayrollRepository)(nil)
	_ payroll.SalaryItemRepository      = (*GormSalaryItemRepository)(nil)
	_ payroll.PayslipItemRepository     = (*GormPayslipItemRepository)(nil)
)
