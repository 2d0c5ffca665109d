package handler

import (
	"net/http"

	"pospenjualan/internal/dto"
	"pospenjualan/internal/result"
	"pospenjualan/internal/service"

	"github.com/gin-gonic/gin"
)

type ItemsHandler struct{ svc service.ItemService }

func NewItemsHandler(svc service.ItemService) *ItemsHandler { return &ItemsHandler{svc: svc} }

// Create godoc
// @Summary      Create item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body body dto.ItemRequest true "Item"
// @Success      201 {object} result.Result
// @Failure      400 {object} result.Result
// @Router       /items [post]
func (h *ItemsHandler) Create(c *gin.Context) {
	var req dto.ItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, result.OKData("item created", resp))
}

// Get godoc
// @Summary      Get item
// @Tags         items
// @Produce      json
// @Param        id path string true "Item UUID"
// @Success      200 {object} result.Result
// @Failure      400 {object} result.Result
// @Router       /items/{id} [get]
func (h *ItemsHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, result.OKData("item loaded", resp))
}

// List godoc
// @Summary      List items
// @Tags         items
// @Produce      json
// @Param        search query string false "Search by name or UOM"
// @Param        page   query int    false "Page (default 1)"
// @Param        limit  query int    false "Rows per page (default 10)"
// @Success      200 {object} result.Result
// @Router       /items [get]
func (h *ItemsHandler) List(c *gin.Context) {
	var filter dto.ItemFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result.OKData("items loaded", resp))
}

// Options godoc
// @Summary      Item dropdown options
// @Description  Every item, name order, for the cart form.
// @Tags         items
// @Produce      json
// @Success      200 {object} result.Result
// @Router       /items/options [get]
func (h *ItemsHandler) Options(c *gin.Context) {
	items, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result.OKData("item options", items))
}

// Update godoc
// @Summary      Update item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id   path string true "Item UUID"
// @Param        body body dto.ItemRequest true "Item"
// @Success      200 {object} result.Result
// @Failure      400 {object} result.Result
// @Router       /items/{id} [put]
func (h *ItemsHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, result.OKData("item updated", resp))
}

// Delete godoc
// @Summary      Delete item
// @Description  Refused while transactions reference the item.
// @Tags         items
// @Produce      json
// @Param        id path string true "Item UUID"
// @Success      200 {object} result.Result
// @Failure      400 {object} result.Result
// @Router       /items/{id} [delete]
func (h *ItemsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, result.OK("item deleted"))
}
