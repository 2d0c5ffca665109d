package handler

import (
	"net/http"
	"strconv"

	"pospenjualan/internal/dto"
	"pospenjualan/internal/result"
	"pospenjualan/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TransactionsHandler struct{ svc service.TransactionService }

func NewTransactionsHandler(svc service.TransactionService) *TransactionsHandler {
	return &TransactionsHandler{svc: svc}
}

func parseLineID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, result.Fail("invalid id"))
		return 0, false
	}
	return uint(id), true
}

// Create godoc
// @Summary      Create transaction line
// @Description  Direct line entry bypassing the cart. Amount is recomputed from quantity × price; a FINAL sale refuses new lines.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        body body dto.TransactionLineRequest true "Transaction line"
// @Success      201 {object} result.Result
// @Failure      400 {object} result.Result
// @Router       /transactions [post]
func (h *TransactionsHandler) Create(c *gin.Context) {
	var req dto.TransactionLineRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, result.OKData("transaction created", resp))
}

// Get godoc
// @Summary      Get transaction line
// @Tags         transactions
// @Produce      json
// @Param        id path int true "Line id"
// @Success      200 {object} result.Result
// @Failure      400 {object} result.Result
// @Router       /transactions/{id} [get]
func (h *TransactionsHandler) Get(c *gin.Context) {
	id, ok := parseLineID(c)
	if !ok {
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, result.OKData("transaction loaded", resp))
}

// List godoc
// @Summary      List transaction lines
// @Tags         transactions
// @Produce      json
// @Param        search query string false "Search by DO number, item or customer"
// @Param        page   query int    false "Page (default 1)"
// @Param        limit  query int    false "Rows per page (default 10)"
// @Success      200 {object} result.Result
// @Router       /transactions [get]
func (h *TransactionsHandler) List(c *gin.Context) {
	var filter dto.TransactionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result.OKData("transactions loaded", resp))
}

// ListBySale godoc
// @Summary      Transaction lines of one sale
// @Tags         transactions
// @Produce      json
// @Param        id path string true "Sale UUID"
// @Success      200 {object} result.Result
// @Failure      400 {object} result.Result
// @Router       /sales/{id}/transactions [get]
func (h *TransactionsHandler) ListBySale(c *gin.Context) {
	saleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, result.Fail("invalid id"))
		return
	}
	resp, err := h.svc.ListBySale(c.Request.Context(), saleID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result.OKData("transactions loaded", resp))
}

// Update godoc
// @Summary      Update transaction line
// @Description  Refused when the parent sale is FINAL.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        id   path int true "Line id"
// @Param        body body dto.TransactionLineRequest true "Transaction line"
// @Success      200 {object} result.Result
// @Failure      400 {object} result.Result
// @Router       /transactions/{id} [put]
func (h *TransactionsHandler) Update(c *gin.Context) {
	id, ok := parseLineID(c)
	if !ok {
		return
	}
	var req dto.TransactionLineRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, result.OKData("transaction updated", resp))
}

// Delete godoc
// @Summary      Delete transaction line
// @Description  Refused when the parent sale is FINAL.
// @Tags         transactions
// @Produce      json
// @Param        id path int true "Line id"
// @Success      200 {object} result.Result
// @Failure      400 {object} result.Result
// @Router       /transactions/{id} [delete]
func (h *TransactionsHandler) Delete(c *gin.Context) {
	id, ok := parseLineID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, result.OK("transaction deleted"))
}
