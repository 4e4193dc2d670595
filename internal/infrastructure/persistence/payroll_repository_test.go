package persistence

import (
	"context"
	"testing"

	"github.com/schoolms/backend/internal/domain/identity"
	"github.com/schoolms/backend/internal/domain/payroll"
	"github.com/schoolms/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type payrollFixture struct {
	db        *gorm.DB
	users     *GormUserRepository
	templates *GormPayrollTemplateRepository
	items     *GormTemplateItemRepository
	salaries  *GormSalaryRepository
	salItems  *GormSalaryItemRepository
	payrolls  *GormPayrollRepository
	payslips  *GormPayslipItemRepository
}

func newPayrollFixture(t *testing.T) *payrollFixture {
	db := newSQLiteDB(t)
	return &payrollFixture{
		db:        db,
		users:     NewGormUserRepository(db),
		templates: NewGormPayrollTemplateRepository(db),
		items:     NewGormTemplateItemRepository(db),
		salaries:  NewGormSalaryRepository(db),
		salItems:  NewGormSalaryItemRepository(db),
		payrolls:  NewGormPayrollRepository(db),
		payslips:  NewGormPayslipItemRepository(db),
	}
}

func (f *payrollFixture) template(t *testing.T, attrs shared.Attributes) *payroll.PayrollTemplate {
	t.Helper()
	tpl, err := payroll.NewPayrollTemplate(attrs)
	require.NoError(t, err)
	require.NoError(t, f.templates.Save(context.Background(), tpl))
	return tpl
}

func (f *payrollFixture) templateItem(t *testing.T, attrs shared.Attributes) *payroll.TemplateItem {
	t.Helper()
	item, err := payroll.NewTemplateItem(attrs)
	require.NoError(t, err)
	require.NoError(t, f.items.Save(context.Background(), item))
	return item
}

func (f *payrollFixture) salaryItem(t *testing.T, attrs shared.Attributes) *payroll.SalaryItem {
	t.Helper()
	item, err := payroll.NewSalaryItem(attrs)
	require.NoError(t, err)
	require.NoError(t, f.salItems.Save(context.Background(), item))
	return item
}

func TestGormPayrollTemplateRepository_Relations(t *testing.T) {
	ctx := context.Background()
	f := newPayrollFixture(t)

	user, err := identity.NewUser(shared.Attributes{"school_id": 1, "name": "Ada", "email": "ADA@school.test"})
	require.NoError(t, err)
	require.NoError(t, f.users.Save(ctx, user))

	tpl := f.template(t, shared.Attributes{"school_id": 1, "name": "Teachers", "status": 1, "created_by": user.ID})
	other := f.template(t, shared.Attributes{"school_id": 1, "name": "Staff"})

	f.templateItem(t, shared.Attributes{"template_id": tpl.ID, "name": "Basic", "amount": "1000.00"})
	f.templateItem(t, shared.Attributes{"template_id": tpl.ID, "name": "Tax", "type": "deduction", "amount": "150.25"})
	f.templateItem(t, shared.Attributes{"template_id": other.ID, "name": "Basic", "amount": "800"})

	t.Run("has-many payroll items", func(t *testing.T) {
		items, err := f.templates.PayrollItems(ctx, tpl)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Basic", items[0].Name)
		assert.Equal(t, payroll.ItemTypeDeduction, items[1].Type)
		assert.True(t, items[1].Amount.Equal(decimal.RequireFromString("150.25")))
	})

	t.Run("has-many is re-queried on every call", func(t *testing.T) {
		extra := f.templateItem(t, shared.Attributes{"template_id": tpl.ID, "name": "Bonus", "amount": 50})

		items, err := f.templates.PayrollItems(ctx, tpl)
		require.NoError(t, err)
		assert.Len(t, items, 3)

		require.NoError(t, f.items.Delete(ctx, extra.ID))
		items, err = f.templates.PayrollItems(ctx, tpl)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("belongs-to user", func(t *testing.T) {
		u, err := f.templates.User(ctx, tpl)
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, "ada@school.test", u.Email)
	})

	t.Run("belongs-to with unset or unmatched key is empty", func(t *testing.T) {
		u, err := f.templates.User(ctx, other)
		assert.NoError(t, err)
		assert.Nil(t, u)

		dangling := f.template(t, shared.Attributes{"school_id": 1, "name": "Orphan", "created_by": 9999})
		u, err = f.templates.User(ctx, dangling)
		assert.NoError(t, err)
		assert.Nil(t, u)
	})

	t.Run("has-many salaries", func(t *testing.T) {
		s, err := payroll.NewSalary(shared.Attributes{"school_id": 1, "user_id": user.ID, "template_id": tpl.ID, "basic_salary": "2500.75"})
		require.NoError(t, err)
		require.NoError(t, f.salaries.Save(ctx, s))

		salaries, err := f.templates.Salaries(ctx, tpl)
		require.NoError(t, err)
		require.Len(t, salaries, 1)
		assert.True(t, salaries[0].BasicSalary.Equal(decimal.RequireFromString("2500.75")))

		none, err := f.templates.Salaries(ctx, other)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("explicit eager loading", func(t *testing.T) {
		found, err := f.templates.FindByID(ctx, tpl.ID, shared.With(payroll.RelationUser, payroll.RelationPayrollItems))
		require.NoError(t, err)
		require.NotNil(t, found.User)
		assert.Equal(t, user.ID, found.User.ID)
		assert.Len(t, found.PayrollItems, 2)
		assert.Empty(t, found.Salaries)

		plain, err := f.templates.FindByID(ctx, tpl.ID)
		require.NoError(t, err)
		assert.Nil(t, plain.User)
		assert.Empty(t, plain.PayrollItems)
	})

	t.Run("unknown relation is invalid input", func(t *testing.T) {
		_, err := f.templates.FindByID(ctx, tpl.ID, shared.With("students"))
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})
}

func TestGormSalaryItemRepository_DefaultRelations(t *testing.T) {
	ctx := context.Background()
	f := newPayrollFixture(t)

	ti := f.templateItem(t, shared.Attributes{"name": "Housing", "amount": "300"})
	salary, err := payroll.NewSalary(shared.Attributes{"school_id": 1, "user_id": 5, "basic_salary": 1200})
	require.NoError(t, err)
	require.NoError(t, f.salaries.Save(ctx, salary))

	item := f.salaryItem(t, shared.Attributes{"salary_id": salary.ID, "template_item_id": ti.ID, "amount": "300"})
	loose := f.salaryItem(t, shared.Attributes{"template_item_id": 4040, "amount": "10"})

	t.Run("FindByID carries the template item", func(t *testing.T) {
		found, err := f.salItems.FindByID(ctx, item.ID)
		require.NoError(t, err)
		require.NotNil(t, found.TemplateItem)
		assert.Equal(t, "Housing", found.TemplateItem.Name)
	})

	t.Run("unmatched template item loads as nil", func(t *testing.T) {
		found, err := f.salItems.FindByID(ctx, loose.ID)
		require.NoError(t, err)
		assert.Nil(t, found.TemplateItem)

		ti, err := f.salItems.TemplateItem(ctx, found)
		assert.NoError(t, err)
		assert.Nil(t, ti)
	})

	t.Run("FindAll and FindBySalary carry the template item", func(t *testing.T) {
		all, _, err := f.salItems.FindAll(ctx, shared.DefaultFilter())
		require.NoError(t, err)
		require.Len(t, all, 2)

		bySalary, err := f.salItems.FindBySalary(ctx, salary.ID)
		require.NoError(t, err)
		require.Len(t, bySalary, 1)
		require.NotNil(t, bySalary[0].TemplateItem)
	})

	t.Run("belongs-to salary", func(t *testing.T) {
		s, err := f.salItems.Salary(ctx, item)
		require.NoError(t, err)
		require.NotNil(t, s)
		assert.Equal(t, salary.ID, s.ID)

		s, err = f.salItems.Salary(ctx, loose)
		assert.NoError(t, err)
		assert.Nil(t, s)
	})
}

func TestGormPayslipItemRepository_DefaultRelations(t *testing.T) {
	ctx := context.Background()
	f := newPayrollFixture(t)

	ti := f.templateItem(t, shared.Attributes{"name": "Transport", "amount": "75.50"})
	si := f.salaryItem(t, shared.Attributes{"template_item_id": ti.ID, "amount": "75.50"})

	run, err := payroll.NewPayroll(shared.Attributes{"school_id": 1, "user_id": 5, "month": "08", "year": 2025})
	require.NoError(t, err)
	require.NoError(t, f.payrolls.Save(ctx, run))

	newPayslip := func(attrs shared.Attributes) *payroll.PayslipItem {
		p, err := payroll.NewPayslipItem(attrs)
		require.NoError(t, err)
		require.NoError(t, f.payslips.Save(ctx, p))
		return p
	}

	linked := newPayslip(shared.Attributes{"payroll_id": run.ID, "salary_item_id": si.ID, "amount": "75.50"})
	orphan := newPayslip(shared.Attributes{"salary_item_id": 31337, "amount": "1"})

	t.Run("always carries the salary item and its template item", func(t *testing.T) {
		found, err := f.payslips.FindByID(ctx, linked.ID)
		require.NoError(t, err)
		require.NotNil(t, found.SalaryItem)
		assert.Equal(t, si.ID, found.SalaryItem.ID)
		require.NotNil(t, found.SalaryItem.TemplateItem)
		assert.Equal(t, "Transport", found.SalaryItem.TemplateItem.Name)
	})

	t.Run("unmatched salary item is nil", func(t *testing.T) {
		found, err := f.payslips.FindByID(ctx, orphan.ID)
		require.NoError(t, err)
		assert.Nil(t, found.SalaryItem)
	})

	t.Run("trashed salary item is not loaded", func(t *testing.T) {
		other := f.salaryItem(t, shared.Attributes{"amount": "5"})
		p := newPayslip(shared.Attributes{"salary_item_id": other.ID, "amount": "5"})
		require.NoError(t, f.salItems.Delete(ctx, other.ID))

		found, err := f.payslips.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Nil(t, found.SalaryItem)
	})

	t.Run("FindByPayroll carries relations", func(t *testing.T) {
		items, err := f.payslips.FindByPayroll(ctx, run.ID)
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.NotNil(t, items[0].SalaryItem)
		assert.NotNil(t, items[0].SalaryItem.TemplateItem)
	})

	t.Run("belongs-to payroll", func(t *testing.T) {
		p, err := f.payslips.Payroll(ctx, linked)
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, 8, p.Month)

		p, err = f.payslips.Payroll(ctx, orphan)
		assert.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("SalaryItem lookup carries the template item", func(t *testing.T) {
		s, err := f.payslips.SalaryItem(ctx, linked)
		require.NoError(t, err)
		require.NotNil(t, s)
		require.NotNil(t, s.TemplateItem)
	})
}
