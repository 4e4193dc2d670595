package handler

import (
	"github.com/gin-gonic/gin"
	frontofficeapp "github.com/schoolms/backend/internal/application/frontoffice"
)

// PostalRecordHandler handles postal dispatch and receive records
type PostalRecordHandler struct {
	BaseHandler
	service *frontofficeapp.PostalRecordService
}

// NewPostalRecordHandler creates a new PostalRecordHandler
func NewPostalRecordHandler(service *frontofficeapp.PostalRecordService) *PostalRecordHandler {
	return &PostalRecordHandler{service: service}
}

// Create godoc
// @ID           createPostalRecord
// @Summary      Create a postal record
// @Description  Accepts the fillable postal fields; attachment is set through the attachment endpoint
// @Tags         postal-records
// @Accept       json
// @Produce      json
// @Param        request body AttributeBag true "Postal record attributes"
// @Success      201 {object} APIResponse[frontofficeapp.PostalRecordResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /postal-records [post]
func (h *PostalRecordHandler) Create(c *gin.Context) {
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
// @ID           getPostalRecord
// @Summary      Get a postal record by ID
// @Tags         postal-records
// @Produce      json
// @Param        id path int true "Postal record ID"
// @Success      200 {object} APIResponse[frontofficeapp.PostalRecordResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /postal-records/{id} [get]
func (h *PostalRecordHandler) Get(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	record, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// List godoc
// @ID           listPostalRecords
// @Summary      List postal records
// @Tags         postal-records
// @Produce      json
// @Param        page      query int    false "Page number" default(1)
// @Param        page_size query int    false "Page size" default(20)
// @Param        school_id query int    false "School ID"
// @Param        type      query string false "Filter by type"
// @Success      200 {object} APIResponse[[]frontofficeapp.PostalRecordResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /postal-records [get]
func (h *PostalRecordHandler) List(c *gin.Context) {
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
// @ID           updatePostalRecord
// @Summary      Update a postal record
// @Tags         postal-records
// @Accept       json
// @Produce      json
// @Param        id      path int          true "Postal record ID"
// @Param        request body AttributeBag true "Postal record attributes"
// @Success      200 {object} APIResponse[frontofficeapp.PostalRecordResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /postal-records/{id} [put]
func (h *PostalRecordHandler) Update(c *gin.Context) {
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

// Attach godoc
// @ID           attachPostalFile
// @Summary      Set or clear the attached file of a postal record
// @Description  An empty attachment clears the stored file
// @Tags         postal-records
// @Accept       json
// @Produce      json
// @Param        id      path int                                    true "Postal record ID"
// @Param        request body frontofficeapp.AttachPostalFileRequest true "Stored file name"
// @Success      200 {object} APIResponse[frontofficeapp.PostalRecordResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /postal-records/{id}/attachment [put]
func (h *PostalRecordHandler) Attach(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	var req frontofficeapp.AttachPostalFileRequest
	if !h.BindJSON(c, &req) {
		return
	}
	record, err := h.service.Attach(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// Delete godoc
// @ID           deletePostalRecord
// @Summary      Delete a postal record
// @Tags         postal-records
// @Param        id path int true "Postal record ID"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Router       /postal-records/{id} [delete]
func (h *PostalRecordHandler) Delete(c *gin.Context) {
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
