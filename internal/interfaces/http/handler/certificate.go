package handler

import (
	"github.com/gin-gonic/gin"
	certificateapp "github.com/schoolms/backend/internal/application/certificate"
)

// StudentCertificateHandler handles student certificate endpoints
type StudentCertificateHandler struct {
	BaseHandler
	service *certificateapp.StudentCertificateService
}

// NewStudentCertificateHandler creates a new StudentCertificateHandler
func NewStudentCertificateHandler(service *certificateapp.StudentCertificateService) *StudentCertificateHandler {
	return &StudentCertificateHandler{service: service}
}

// Create godoc
// @ID           createStudentCertificate
// @Summary      Create a student certificate
// @Tags         student-certificates
// @Accept       json
// @Produce      json
// @Param        request body AttributeBag true "Certificate attributes"
// @Success      201 {object} APIResponse[certificateapp.StudentCertificateResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /student-certificates [post]
func (h *StudentCertificateHandler) Create(c *gin.Context) {
	attrs, ok := h.BindAttributes(c)
	if !ok {
		return
	}
	cert, err := h.service.Create(c.Request.Context(), attrs)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, cert)
}

// Get godoc
// @ID           getStudentCertificate
// @Summary      Get a student certificate by ID
// @Tags         student-certificates
// @Produce      json
// @Param        id           path  int  true  "Certificate ID"
// @Param        with_trashed query bool false "Include soft-deleted rows"
// @Param        only_trashed query bool false "Only soft-deleted rows"
// @Success      200 {object} APIResponse[certificateapp.StudentCertificateResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /student-certificates/{id} [get]
func (h *StudentCertificateHandler) Get(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	q, ok := h.BindReadQuery(c)
	if !ok {
		return
	}
	cert, err := h.service.GetByID(c.Request.Context(), id, q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cert)
}

// List godoc
// @ID           listStudentCertificates
// @Summary      List student certificates
// @Tags         student-certificates
// @Produce      json
// @Param        page         query int  false "Page number" default(1)
// @Param        page_size    query int  false "Page size" default(20)
// @Param        school_id    query int  false "School ID"
// @Param        student_id   query int  false "Filter by student"
// @Param        with_trashed query bool false "Include soft-deleted rows"
// @Param        only_trashed query bool false "Only soft-deleted rows"
// @Success      200 {object} APIResponse[[]certificateapp.StudentCertificateResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /student-certificates [get]
func (h *StudentCertificateHandler) List(c *gin.Context) {
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
// @ID           updateStudentCertificate
// @Summary      Update a student certificate
// @Tags         student-certificates
// @Accept       json
// @Produce      json
// @Param        id      path int          true "Certificate ID"
// @Param        request body AttributeBag true "Certificate attributes"
// @Success      200 {object} APIResponse[certificateapp.StudentCertificateResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /student-certificates/{id} [put]
func (h *StudentCertificateHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	attrs, ok := h.BindAttributes(c)
	if !ok {
		return
	}
	cert, err := h.service.Update(c.Request.Context(), id, attrs)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cert)
}

// Delete godoc
// @ID           deleteStudentCertificate
// @Summary      Soft delete a student certificate
// @Tags         student-certificates
// @Param        id path int true "Certificate ID"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Router       /student-certificates/{id} [delete]
func (h *StudentCertificateHandler) Delete(c *gin.Context) {
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
// @ID           restoreStudentCertificate
// @Summary      Restore a soft-deleted student certificate
// @Tags         student-certificates
// @Produce      json
// @Param        id path int true "Certificate ID"
// @Success      200 {object} APIResponse[certificateapp.StudentCertificateResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /student-certificates/{id}/restore [post]
func (h *StudentCertificateHandler) Restore(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	cert, err := h.service.Restore(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cert)
}

// ForceDelete godoc
// @ID           forceDeleteStudentCertificate
// @Summary      Permanently delete a student certificate
// @Tags         student-certificates
// @Param        id path int true "Certificate ID"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Router       /student-certificates/{id}/force [delete]
func (h *StudentCertificateHandler) ForceDelete(c *gin.Context) {
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
