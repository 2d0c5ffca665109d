package handler

import (
	"net/http"

	"pospenjualan/internal/dto"
	"pospenjualan/internal/result"
	"pospenjualan/internal/service"

	"github.com/gin-gonic/gin"
)

type SalesHandler struct{ svc service.SaleService }

func NewSalesHandler(svc service.SaleService) *SalesHandler { return &SalesHandler{svc: svc} }

// Create godoc
// @Summary      Create sales header
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body body dto.SaleRequest true "Sales header"
// @Success      201 {object} result.Result
// @Failure      400 {object} result.Result
// @Router       /sales [post]
func (h *SalesHandler) Create(c *gin.Context) {
	var req dto.SaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, result.OKData("sales created", resp))
}

// Get godoc
// @Summary      Get sales header
// @Tags         sales
// @Produce      json
// @Param        id path string true "Sale UUID"
// @Success      200 {object} result.Result
// @Failure      400 {object} result.Result
// @Router       /sales/{id} [get]
func (h *SalesHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, result.OKData("sales loaded", resp))
}

// List godoc
// @Summary      List sales headers
// @Tags         sales
// @Produce      json
// @Param        search query string false "Search by DO number or customer"
// @Param        page   query int    false "Page (default 1)"
// @Param        limit  query int    false "Rows per page (default 10)"
// @Success      200 {object} result.Result
// @Router       /sales [get]
func (h *SalesHandler) List(c *gin.Context) {
	var filter dto.SaleFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result.OKData("sales loaded", resp))
}

// Update godoc
// @Summary      Update sales header
// @Description  A FINAL sale is read-only and refuses the update.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        id   path string true "Sale UUID"
// @Param        body body dto.SaleRequest true "Sales header"
// @Success      200 {object} result.Result
// @Failure      400 {object} result.Result
// @Router       /sales/{id} [put]
func (h *SalesHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.SaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, result.OKData("sales updated", resp))
}

// Delete godoc
// @Summary      Delete sales header
// @Description  Refused while transaction lines exist and for FINAL sales.
// @Tags         sales
// @Produce      json
// @Param        id path string true "Sale UUID"
// @Success      200 {object} result.Result
// @Failure      400 {object} result.Result
// @Router       /sales/{id} [delete]
func (h *SalesHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, result.OK("sales deleted"))
}

// GenerateDO godoc
// @Summary      Generate next DO number
// @Description  Returns DO-YYYYMMDD-NNN with a per-day sequence.
// @Tags         sales
// @Produce      json
// @Success      200 {object} result.Result
// @Router       /sales/generate-do [get]
func (h *SalesHandler) GenerateDO(c *gin.Context) {
	number, err := h.svc.GenerateDONumber(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result.OKData("do number generated", gin.H{"do_number": number}))
}

// StatusOptions godoc
// @Summary      Sales status options
// @Tags         sales
// @Produce      json
// @Success      200 {object} result.Result
// @Router       /sales/status-options [get]
func (h *SalesHandler) StatusOptions(c *gin.Context) {
	c.JSON(http.StatusOK, result.OKData("status options", h.svc.StatusOptions()))
}

// CustomerOptions godoc
// @Summary      Customer dropdown options
// @Tags         sales
// @Produce      json
// @Success      200 {object} result.Result
// @Router       /sales/customer-options [get]
func (h *SalesHandler) CustomerOptions(c *gin.Context) {
	opts, err := h.svc.CustomerOptions(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result.OKData("customer options", opts))
}
