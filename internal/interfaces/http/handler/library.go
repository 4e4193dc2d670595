package handler

import (
	"github.com/gin-gonic/gin"
	libraryapp "github.com/schoolms/backend/internal/application/library"
)

// LibraryCardHandler handles library card endpoints
type LibraryCardHandler struct {
	BaseHandler
	service *libraryapp.LibraryCardService
}

// NewLibraryCardHandler creates a new LibraryCardHandler
func NewLibraryCardHandler(service *libraryapp.LibraryCardService) *LibraryCardHandler {
	return &LibraryCardHandler{service: service}
}

// CardNoLookupRequest identifies a card by its number within a school
type CardNoLookupRequest struct {
	SchoolID uint64 `form:"school_id" binding:"required,min=1"`
	CardNo   string `form:"card_no" binding:"required,max=191"`
}

// Create godoc
// @ID           createLibraryCard
// @Summary      Issue a library card
// @Description  Accepts school_id, user_id, library_card_no, book_limit, status and expiry_date
// @Tags         library-cards
// @Accept       json
// @Produce      json
// @Param        request body AttributeBag true "Library card attributes"
// @Success      201 {object} APIResponse[libraryapp.LibraryCardResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /library-cards [post]
func (h *LibraryCardHandler) Create(c *gin.Context) {
	attrs, ok := h.BindAttributes(c)
	if !ok {
		return
	}
	card, err := h.service.Create(c.Request.Context(), attrs)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, card)
}

// Get godoc
// @ID           getLibraryCard
// @Summary      Get a library card by ID
// @Tags         library-cards
// @Produce      json
// @Param        id path int true "Library card ID"
// @Success      200 {object} APIResponse[libraryapp.LibraryCardResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /library-cards/{id} [get]
func (h *LibraryCardHandler) Get(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	card, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, card)
}

// GetByCardNo godoc
// @ID           getLibraryCardByNumber
// @Summary      Look up a library card by number
// @Tags         library-cards
// @Produce      json
// @Param        school_id query int    true "School ID"
// @Param        card_no   query string true "Library card number"
// @Success      200 {object} APIResponse[libraryapp.LibraryCardResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /library-cards/by-card-no [get]
func (h *LibraryCardHandler) GetByCardNo(c *gin.Context) {
	var req CardNoLookupRequest
	if !h.BindQuery(c, &req) {
		return
	}
	card, err := h.service.GetByCardNo(c.Request.Context(), req.SchoolID, req.CardNo)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, card)
}

// List godoc
// @ID           listLibraryCards
// @Summary      List library cards
// @Tags         library-cards
// @Produce      json
// @Param        page      query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Param        school_id query int false "School ID"
// @Param        user_id   query int false "Filter by card holder"
// @Param        status    query int false "Filter by status"
// @Success      200 {object} APIResponse[[]libraryapp.LibraryCardResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /library-cards [get]
func (h *LibraryCardHandler) List(c *gin.Context) {
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
// @ID           updateLibraryCard
// @Summary      Update a library card
// @Tags         library-cards
// @Accept       json
// @Produce      json
// @Param        id      path int          true "Library card ID"
// @Param        request body AttributeBag true "Library card attributes"
// @Success      200 {object} APIResponse[libraryapp.LibraryCardResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /library-cards/{id} [put]
func (h *LibraryCardHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	attrs, ok := h.BindAttributes(c)
	if !ok {
		return
	}
	card, err := h.service.Update(c.Request.Context(), id, attrs)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, card)
}

// Delete godoc
// @ID           deleteLibraryCard
// @Summary      Delete a library card
// @Tags         library-cards
// @Param        id path int true "Library card ID"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Router       /library-cards/{id} [delete]
func (h *LibraryCardHandler) Delete(c *gin.Context) {
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
