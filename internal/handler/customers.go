package handler

import (
	"net/http"

	"pospenjualan/internal/dto"
	"pospenjualan/internal/result"
	"pospenjualan/internal/service"

	"github.com/gin-gonic/gin"
)

type CustomersHandler struct{ svc service.CustomerService }

func NewCustomersHandler(svc service.CustomerService) *CustomersHandler {
	return &CustomersHandler{svc: svc}
}

// Create godoc
// @Summary      Create customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body body dto.CustomerRequest true "Customer"
// @Success      201 {object} result.Result
// @Failure      400 {object} result.Result
// @Router       /customers [post]
func (h *CustomersHandler) Create(c *gin.Context) {
	var req dto.CustomerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, result.OKData("customer created", resp))
}

// Get godoc
// @Summary      Get customer
// @Tags         customers
// @Produce      json
// @Param        id path string true "Customer UUID"
// @Success      200 {object} result.Result
// @Failure      400 {object} result.Result
// @Router       /customers/{id} [get]
func (h *CustomersHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, result.OKData("customer loaded", resp))
}

// List godoc
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Param        search query string false "Search by name or phone"
// @Param        page   query int    false "Page (default 1)"
// @Param        limit  query int    false "Rows per page (default 10)"
// @Success      200 {object} result.Result
// @Router       /customers [get]
func (h *CustomersHandler) List(c *gin.Context) {
	var filter dto.CustomerFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result.OKData("customers loaded", resp))
}

// Update godoc
// @Summary      Update customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id   path string true "Customer UUID"
// @Param        body body dto.CustomerRequest true "Customer"
// @Success      200 {object} result.Result
// @Failure      400 {object} result.Result
// @Router       /customers/{id} [put]
func (h *CustomersHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.CustomerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, result.OKData("customer updated", resp))
}

// Delete godoc
// @Summary      Delete customer
// @Description  Refused while sales reference the customer.
// @Tags         customers
// @Produce      json
// @Param        id path string true "Customer UUID"
// @Success      200 {object} result.Result
// @Failure      400 {object} result.Result
// @Router       /customers/{id} [delete]
func (h *CustomersHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, result.OK("customer deleted"))
}
