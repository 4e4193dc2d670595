package handler

import (
	"github.com/gin-gonic/gin"
	payrollapp "github.com/schoolms/backend/internal/application/payroll"
)

// PayrollTemplateHandler handles payroll template endpoints
type PayrollTemplateHandler struct {
	BaseHandler
	service *payrollapp.PayrollTemplateService
}

// NewPayrollTemplateHandler creates a new PayrollTemplateHandler
func NewPayrollTemplateHandler(service *payrollapp.PayrollTemplateService) *PayrollTemplateHandler {
	return &PayrollTemplateHandler{service: service}
}

// Create godoc
// @ID           createPayrollTemplate
// @Summary      Create a payroll template
// @Description  Accepts school_id, name, status and created_by. Reads load user, payrollitems and salaries when named in with.
// @Tags         payroll-templates
// @Accept       json
// @Produce      json
// @Param        request body AttributeBag true "payroll template attributes"
// @Success      201 {object} APIResponse[payrollapp.PayrollTemplateResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /payroll-templates [post]
func (h *PayrollTemplateHandler) Create(c *gin.Context) {
	attrs, ok := h.BindAttributes(c)
	if !ok {
		return
	}
	record, err := h.service.Create(c.Request.Context(), attrs)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, record)
}

// Get godoc
// @ID           getPayrollTemplate
// @Summary      Get a payroll template by ID
// @Tags         payroll-templates
// @Produce      json
// @Param        id           path  int    true  "payroll template ID"
// @Param        with_trashed query bool   false "Include soft-deleted rows"
// @Param        only_trashed query bool   false "Only soft-deleted rows"
// @Param        with         query string false "Extra relations, comma separated"
// @Success      200 {object} APIResponse[payrollapp.PayrollTemplateResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /payroll-templates/{id} [get]
func (h *PayrollTemplateHandler) Get(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	q, ok := h.BindReadQuery(c)
	if !ok {
		return
	}
	record, err := h.service.GetByID(c.Request.Context(), id, q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// List godoc
// @ID           listPayrollTemplates
// @Summary      List payroll templates
// @Tags         payroll-templates
// @Produce      json
// @Param        page         query int    false "Page number" default(1)
// @Param        page_size    query int    false "Page size" default(20)
// @Param        school_id    query int    false "School ID"
// @Param        status       query int    false "Filter by status"
// @Param        with_trashed query bool   false "Include soft-deleted rows"
// @Param        only_trashed query bool   false "Only soft-deleted rows"
// @Success      200 {object} APIResponse[[]payrollapp.PayrollTemplateResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /payroll-templates [get]
func (h *PayrollTemplateHandler) List(c *gin.Context) {
	q, ok := h.BindListQuery(c)
	if !ok {
		return
	}
	page, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	SuccessPage(c, page)
}

// Update godoc
// @ID           updatePayrollTemplate
// @Summary      Update a payroll template
// @Tags         payroll-templates
// @Accept       json
// @Produce      json
// @Param        id      path int          true "payroll template ID"
// @Param        request body AttributeBag true "payroll template attributes"
// @Success      200 {object} APIResponse[payrollapp.PayrollTemplateResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /payroll-templates/{id} [put]
func (h *PayrollTemplateHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	attrs, ok := h.BindAttributes(c)
	if !ok {
		return
	}
	record, err := h.service.Update(c.Request.Context(), id, attrs)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// Delete godoc
// @ID           deletePayrollTemplate
// @Summary      Soft delete a payroll template
// @Tags         payroll-templates
// @Param        id path int true "payroll template ID"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Router       /payroll-templates/{id} [delete]
func (h *PayrollTemplateHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Restore godoc
// @ID           restorePayrollTemplate
// @Summary      Restore a soft-deleted payroll template
// @Tags         payroll-templates
// @Produce      json
// @Param        id path int true "payroll template ID"
// @Success      200 {object} APIResponse[payrollapp.PayrollTemplateResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /payroll-templates/{id}/restore [post]
func (h *PayrollTemplateHandler) Restore(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	record, err := h.service.Restore(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// ForceDelete godoc
// @ID           forceDeletePayrollTemplate
// @Summary      Permanently delete a payroll template
// @Tags         payroll-templates
// @Param        id path int true "payroll template ID"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Router       /payroll-templates/{id}/force [delete]
func (h *PayrollTemplateHandler) ForceDelete(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	if err := h.service.ForceDelete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// User godoc
// @ID           getPayrollTemplateUser
// @Summary      Get the user who created a payroll template
// @Description  Data is null when created_by is unset or matches no user
// @Tags         payroll-templates
// @Produce      json
// @Param        id path int true "Payroll template ID"
// @Success      200 {object} APIResponse[payrollapp.UserResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /payroll-templates/{id}/user [get]
func (h *PayrollTemplateHandler) User(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	user, err := h.service.TemplateUser(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

// PayrollItems godoc
// @ID           listPayrollTemplateItems
// @Summary      List the earning and deduction lines of a payroll template
// @Tags         payroll-templates
// @Produce      json
// @Param        id path int true "Payroll template ID"
// @Success      200 {object} APIResponse[[]payrollapp.TemplateItemResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /payroll-templates/{id}/payroll-items [get]
func (h *PayrollTemplateHandler) PayrollItems(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	items, err := h.service.TemplatePayrollItems(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, nonNil(items))
}

// Salaries godoc
// @ID           listPayrollTemplateSalaries
// @Summary      List the salaries built from a payroll template
// @Tags         payroll-templates
// @Produce      json
// @Param        id path int true "Payroll template ID"
// @Success      200 {object} APIResponse[[]payrollapp.SalaryResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /payroll-templates/{id}/salaries [get]
func (h *PayrollTemplateHandler) Salaries(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	salaries, err := h.service.TemplateSalaries(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, nonNil(salaries))
}

// SalaryItemHandler handles salary item endpoints
type SalaryItemHandler struct {
	BaseHandler
	service *payrollapp.SalaryItemService
}

// NewSalaryItemHandler creates a new SalaryItemHandler
func NewSalaryItemHandler(service *payrollapp.SalaryItemService) *SalaryItemHandler {
	return &SalaryItemHandler{service: service}
}

// Create godoc
// @ID           createSalaryItem
// @Summary      Create a salary item
// @Description  Accepts salary_id, template_item_id and amount. The templateitem relation is always loaded.
// @Tags         salary-items
// @Accept       json
// @Produce      json
// @Param        request body AttributeBag true "salary item attributes"
// @Success      201 {object} APIResponse[payrollapp.SalaryItemResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /salary-items [post]
func (h *SalaryItemHandler) Create(c *gin.Context) {
	attrs, ok := h.BindAttributes(c)
	if !ok {
		return
	}
	record, err := h.service.Create(c.Request.Context(), attrs)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, record)
}

// Get godoc
// @ID           getSalaryItem
// @Summary      Get a salary item by ID
// @Tags         salary-items
// @Produce      json
// @Param        id           path  int    true  "salary item ID"
// @Param        with_trashed query bool   false "Include soft-deleted rows"
// @Param        only_trashed query bool   false "Only soft-deleted rows"
// @Param        with         query string false "Extra relations, comma separated"
// @Success      200 {object} APIResponse[payrollapp.SalaryItemResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /salary-items/{id} [get]
func (h *SalaryItemHandler) Get(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	q, ok := h.BindReadQuery(c)
	if !ok {
		return
	}
	record, err := h.service.GetByID(c.Request.Context(), id, q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// List godoc
// @ID           listSalaryItems
// @Summary      List salary items
// @Tags         salary-items
// @Produce      json
// @Param        page         query int    false "Page number" default(1)
// @Param        page_size    query int    false "Page size" default(20)
// @Param        salary_id    query int    false "Filter by salary"
// @Param        with_trashed query bool   false "Include soft-deleted rows"
// @Param        only_trashed query bool   false "Only soft-deleted rows"
// @Success      200 {object} APIResponse[[]payrollapp.SalaryItemResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /salary-items [get]
func (h *SalaryItemHandler) List(c *gin.Context) {
	q, ok := h.BindListQuery(c)
	if !ok {
		return
	}
	page, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	SuccessPage(c, page)
}

// Update godoc
// @ID           updateSalaryItem
// @Summary      Update a salary item
// @Tags         salary-items
// @Accept       json
// @Produce      json
// @Param        id      path int          true "salary item ID"
// @Param        request body AttributeBag true "salary item attributes"
// @Success      200 {object} APIResponse[payrollapp.SalaryItemResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /salary-items/{id} [put]
func (h *SalaryItemHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	attrs, ok := h.BindAttributes(c)
	if !ok {
		return
	}
	record, err := h.service.Update(c.Request.Context(), id, attrs)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// Delete godoc
// @ID           deleteSalaryItem
// @Summary      Soft delete a salary item
// @Tags         salary-items
// @Param        id path int true "salary item ID"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Router       /salary-items/{id} [delete]
func (h *SalaryItemHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Restore godoc
// @ID           restoreSalaryItem
// @Summary      Restore a soft-deleted salary item
// @Tags         salary-items
// @Produce      json
// @Param        id path int true "salary item ID"
// @Success      200 {object} APIResponse[payrollapp.SalaryItemResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /salary-items/{id}/restore [post]
func (h *SalaryItemHandler) Restore(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	record, err := h.service.Restore(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// ForceDelete godoc
// @ID           forceDeleteSalaryItem
// @Summary      Permanently delete a salary item
// @Tags         salary-items
// @Param        id path int true "salary item ID"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Router       /salary-items/{id}/force [delete]
func (h *SalaryItemHandler) ForceDelete(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	if err := h.service.ForceDelete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Salary godoc
// @ID           getSalaryItemSalary
// @Summary      Get the salary a salary item belongs to
// @Description  Data is null when salary_id is unset or matches no salary
// @Tags         salary-items
// @Produce      json
// @Param        id path int true "Salary item ID"
// @Success      200 {object} APIResponse[payrollapp.SalaryResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /salary-items/{id}/salary [get]
func (h *SalaryItemHandler) Salary(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	salary, err := h.service.SalaryItemSalary(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, salary)
}

// PayslipItemHandler handles payslip item endpoints
type PayslipItemHandler struct {
	BaseHandler
	service *payrollapp.PayslipItemService
}

// NewPayslipItemHandler creates a new PayslipItemHandler
func NewPayslipItemHandler(service *payrollapp.PayslipItemService) *PayslipItemHandler {
	return &PayslipItemHandler{service: service}
}

// Create godoc
// @ID           createPayslipItem
// @Summary      Create a payslip item
// @Description  Accepts payroll_id, salary_item_id and amount. The salaryitem relation is always loaded.
// @Tags         payslip-items
// @Accept       json
// @Produce      json
// @Param        request body AttributeBag true "payslip item attributes"
// @Success      201 {object} APIResponse[payrollapp.PayslipItemResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /payslip-items [post]
func (h *PayslipItemHandler) Create(c *gin.Context) {
	attrs, ok := h.BindAttributes(c)
	if !ok {
		return
	}
	record, err := h.service.Create(c.Request.Context(), attrs)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, record)
}

// Get godoc
// @ID           getPayslipItem
// @Summary      Get a payslip item by ID
// @Tags         payslip-items
// @Produce      json
// @Param        id           path  int    true  "payslip item ID"
// @Param        with_trashed query bool   false "Include soft-deleted rows"
// @Param        only_trashed query bool   false "Only soft-deleted rows"
// @Param        with         query string false "Extra relations, comma separated"
// @Success      200 {object} APIResponse[payrollapp.PayslipItemResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /payslip-items/{id} [get]
func (h *PayslipItemHandler) Get(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	q, ok := h.BindReadQuery(c)
	if !ok {
		return
	}
	record, err := h.service.GetByID(c.Request.Context(), id, q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// List godoc
// @ID           listPayslipItems
// @Summary      List payslip items
// @Tags         payslip-items
// @Produce      json
// @Param        page         query int    false "Page number" default(1)
// @Param        page_size    query int    false "Page size" default(20)
// @Param        payroll_id   query int    false "Filter by payroll"
// @Param        with_trashed query bool   false "Include soft-deleted rows"
// @Param        only_trashed query bool   false "Only soft-deleted rows"
// @Success      200 {object} APIResponse[[]payrollapp.PayslipItemResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /payslip-items [get]
func (h *PayslipItemHandler) List(c *gin.Context) {
	q, ok := h.BindListQuery(c)
	if !ok {
		return
	}
	page, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	SuccessPage(c, page)
}

// Update godoc
// @ID           updatePayslipItem
// @Summary      Update a payslip item
// @Tags         payslip-items
// @Accept       json
// @Produce      json
// @Param        id      path int          true "payslip item ID"
// @Param        request body AttributeBag true "payslip item attributes"
// @Success      200 {object} APIResponse[payrollapp.PayslipItemResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /payslip-items/{id} [put]
func (h *PayslipItemHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	attrs, ok := h.BindAttributes(c)
	if !ok {
		return
	}
	record, err := h.service.Update(c.Request.Context(), id, attrs)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// Delete godoc
// @ID           deletePayslipItem
// @Summary      Soft delete a payslip item
// @Tags         payslip-items
// @Param        id path int true "payslip item ID"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Router       /payslip-items/{id} [delete]
func (h *PayslipItemHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Restore godoc
// @ID           restorePayslipItem
// @Summary      Restore a soft-deleted payslip item
// @Tags         payslip-items
// @Produce      json
// @Param        id path int true "payslip item ID"
// @Success      200 {object} APIResponse[payrollapp.PayslipItemResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /payslip-items/{id}/restore [post]
func (h *PayslipItemHandler) Restore(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	record, err := h.service.Restore(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// ForceDelete godoc
// @ID           forceDeletePayslipItem
// @Summary      Permanently delete a payslip item
// @Tags         payslip-items
// @Param        id path int true "payslip item ID"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Router       /payslip-items/{id}/force [delete]
func (h *PayslipItemHandler) ForceDelete(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	if err := h.service.ForceDelete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Payroll godoc
// @ID           getPayslipItemPayroll
// @Summary      Get the payroll a payslip item belongs to
// @Description  Data is null when payroll_id is unset or matches no payroll
// @Tags         payslip-items
// @Produce      json
// @Param        id path int true "Payslip item ID"
// @Success      200 {object} APIResponse[payrollapp.PayrollResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /payslip-items/{id}/payroll [get]
func (h *PayslipItemHandler) Payroll(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	p, err := h.service.PayslipPayroll(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, p)
}

// nonNil keeps empty has-many results encoding as [] rather than null
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
