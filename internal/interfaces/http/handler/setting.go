package handler

import (
	"github.com/gin-gonic/gin"
	settingapp "github.com/schoolms/backend/internal/application/setting"
)

// KeywordHandler handles keyword endpoints
type KeywordHandler struct {
	BaseHandler
	service *settingapp.KeywordService
}

// NewKeywordHandler creates a new KeywordHandler
func NewKeywordHandler(service *settingapp.KeywordService) *KeywordHandler {
	return &KeywordHandler{service: service}
}

// Create godoc
// @ID           createKeyword
// @Summary      Create a keyword
// @Tags         keywords
// @Accept       json
// @Produce      json
// @Param        request body AttributeBag true "Keyword attributes (name)"
// @Success      201 {object} APIResponse[settingapp.KeywordResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /keywords [post]
func (h *KeywordHandler) Create(c *gin.Context) {
	attrs, ok := h.BindAttributes(c)
	if !ok {
		return
	}
	keyword, err := h.service.Create(c.Request.Context(), attrs)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, keyword)
}

// Get godoc
// @ID           getKeyword
// @Summary      Get a keyword by ID
// @Tags         keywords
// @Produce      json
// @Param        id path int true "Keyword ID"
// @Success      200 {object} APIResponse[settingapp.KeywordResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /keywords/{id} [get]
func (h *KeywordHandler) Get(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	keyword, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, keyword)
}

// List godoc
// @ID           listKeywords
// @Summary      List keywords
// @Tags         keywords
// @Produce      json
// @Param        page      query int    false "Page number" default(1)
// @Param        page_size query int    false "Page size" default(20)
// @Param        order_by  query string false "Sort field" default(id)
// @Param        order_dir query string false "Sort direction" Enums(asc, desc)
// @Param        name      query string false "Filter by name"
// @Success      200 {object} APIResponse[[]settingapp.KeywordResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /keywords [get]
func (h *KeywordHandler) List(c *gin.Context) {
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
// @ID           updateKeyword
// @Summary      Update a keyword
// @Tags         keywords
// @Accept       json
// @Produce      json
// @Param        id      path int          true "Keyword ID"
// @Param        request body AttributeBag true "Keyword attributes"
// @Success      200 {object} APIResponse[settingapp.KeywordResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /keywords/{id} [put]
func (h *KeywordHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	attrs, ok := h.BindAttributes(c)
	if !ok {
		return
	}
	keyword, err := h.service.Update(c.Request.Context(), id, attrs)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, keyword)
}

// Delete godoc
// @ID           deleteKeyword
// @Summary      Delete a keyword
// @Tags         keywords
// @Param        id path int true "Keyword ID"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Router       /keywords/{id} [delete]
func (h *KeywordHandler) Delete(c *gin.Context) {
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

// BackgroundImageHandler handles background image endpoints
type BackgroundImageHandler struct {
	BaseHandler
	service *settingapp.BackgroundImageService
}

// NewBackgroundImageHandler creates a new BackgroundImageHandler
func NewBackgroundImageHandler(service *settingapp.BackgroundImageService) *BackgroundImageHandler {
	return &BackgroundImageHandler{service: service}
}

// Create godoc
// @ID           createBackgroundImage
// @Summary      Record an uploaded background image
// @Tags         background-images
// @Accept       json
// @Produce      json
// @Param        request body settingapp.CreateBackgroundImageRequest true "Stored file name"
// @Success      201 {object} APIResponse[settingapp.BackgroundImageResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /background-images [post]
func (h *BackgroundImageHandler) Create(c *gin.Context) {
	var req settingapp.CreateBackgroundImageRequest
	if !h.BindJSON(c, &req) {
		return
	}
	img, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, img)
}

// Get godoc
// @ID           getBackgroundImage
// @Summary      Get a background image by ID
// @Tags         background-images
// @Produce      json
// @Param        id           path  int  true  "Background image ID"
// @Param        with_trashed query bool false "Include soft-deleted rows"
// @Param        only_trashed query bool false "Only soft-deleted rows"
// @Success      200 {object} APIResponse[settingapp.BackgroundImageResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /background-images/{id} [get]
func (h *BackgroundImageHandler) Get(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	q, ok := h.BindReadQuery(c)
	if !ok {
		return
	}
	img, err := h.service.GetByID(c.Request.Context(), id, q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, img)
}

// List godoc
// @ID           listBackgroundImages
// @Summary      List background images
// @Tags         background-images
// @Produce      json
// @Param        page         query int  false "Page number" default(1)
// @Param        page_size    query int  false "Page size" default(20)
// @Param        with_trashed query bool false "Include soft-deleted rows"
// @Param        only_trashed query bool false "Only soft-deleted rows"
// @Success      200 {object} APIResponse[[]settingapp.BackgroundImageResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /background-images [get]
func (h *BackgroundImageHandler) List(c *gin.Context) {
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
// @ID           replaceBackgroundImage
// @Summary      Point a background image at a new stored file
// @Tags         background-images
// @Accept       json
// @Produce      json
// @Param        id      path int                                     true "Background image ID"
// @Param        request body settingapp.CreateBackgroundImageRequest true "Stored file name"
// @Success      200 {object} APIResponse[settingapp.BackgroundImageResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /background-images/{id} [put]
func (h *BackgroundImageHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	var req settingapp.CreateBackgroundImageRequest
	if !h.BindJSON(c, &req) {
		return
	}
	img, err := h.service.Replace(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, img)
}

// Delete godoc
// @ID           deleteBackgroundImage
// @Summary      Soft delete a background image
// @Tags         background-images
// @Param        id path int true "Background image ID"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Router       /background-images/{id} [delete]
func (h *BackgroundImageHandler) Delete(c *gin.Context) {
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
// @ID           restoreBackgroundImage
// @Summary      Restore a soft-deleted background image
// @Tags         background-images
// @Produce      json
// @Param        id path int true "Background image ID"
// @Success      200 {object} APIResponse[settingapp.BackgroundImageResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /background-images/{id}/restore [post]
func (h *BackgroundImageHandler) Restore(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	img, err := h.service.Restore(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, img)
}

// ForceDelete godoc
// @ID           forceDeleteBackgroundImage
// @Summary      Permanently delete a background image
// @Tags         background-images
// @Param        id path int true "Background image ID"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Router       /background-images/{id}/force [delete]
func (h *BackgroundImageHandler) ForceDelete(c *gin.Context) {
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
