package handler

import (
	"net/http"
	"strconv"

	"pospenjualan/internal/dto"
	"pospenjualan/internal/middleware"
	"pospenjualan/internal/model"
	"pospenjualan/internal/result"
	"pospenjualan/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CartHandler exposes the draft cart. Every response carries the uniform
// envelope; success maps to 200 and a refused operation to 400.
type CartHandler struct {
	carts service.CartService
	sales service.SaleService
}

func NewCartHandler(carts service.CartService, sales service.SaleService) *CartHandler {
	return &CartHandler{carts: carts, sales: sales}
}

func cartID(c *gin.Context) string {
	return middleware.GetSession(c).CartID
}

func writeResult(c *gin.Context, res *result.Result) {
	status := http.StatusOK
	if !res.Success {
		status = http.StatusBadRequest
	}
	c.JSON(status, res)
}

// List godoc
// @Summary      View cart
// @Description  Returns the session's cart lines in insertion order plus the running total.
// @Tags         cart
// @Produce      json
// @Success      200 {object} result.Result
// @Router       /cart [get]
func (h *CartHandler) List(c *gin.Context) {
	writeResult(c, h.carts.ListLines(c.Request.Context(), cartID(c)))
}

// Add godoc
// @Summary      Add item to cart
// @Description  Appends a line to the session's cart. Amount is recomputed server-side from quantity × price.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body body dto.CartLineRequest true "Cart line"
// @Success      200 {object} result.Result
// @Failure      400 {object} result.Result
// @Router       /cart/lines [post]
func (h *CartHandler) Add(c *gin.Context) {
	var req dto.CartLineRequest
	if !bindAndValidate(c, &req) {
		return
	}
	writeResult(c, h.carts.AddLine(c.Request.Context(), cartID(c), req))
}

// Update godoc
// @Summary      Update cart line
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        id   path int true "Line id"
// @Param        body body dto.CartLineRequest true "Cart line"
// @Success      200 {object} result.Result
// @Failure      400 {object} result.Result
// @Router       /cart/lines/{id} [put]
func (h *CartHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, result.Fail("invalid id"))
		return
	}
	var req dto.CartLineRequest
	if !bindAndValidate(c, &req) {
		return
	}
	writeResult(c, h.carts.UpdateLine(c.Request.Context(), uint(id), req))
}

// Remove godoc
// @Summary      Remove cart line
// @Tags         cart
// @Produce      json
// @Param        id path int true "Line id"
// @Success      200 {object} result.Result
// @Failure      400 {object} result.Result
// @Router       /cart/lines/{id} [delete]
func (h *CartHandler) Remove(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, result.Fail("invalid id"))
		return
	}
	writeResult(c, h.carts.RemoveLine(c.Request.Context(), uint(id)))
}

// Clear godoc
// @Summary      Clear cart
// @Description  Removes every line of the session's cart. Clearing an empty cart still succeeds.
// @Tags         cart
// @Produce      json
// @Success      200 {object} result.Result
// @Router       /cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	writeResult(c, h.carts.ClearCart(c.Request.Context(), cartID(c)))
}

// Finalize godoc
// @Summary      Finalize cart
// @Description  Atomically promotes every cart line into permanent transaction lines under an existing sales header.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body body dto.FinalizeRequest true "Target sales header"
// @Success      200 {object} result.Result
// @Failure      400 {object} result.Result
// @Router       /cart/finalize [post]
func (h *CartHandler) Finalize(c *gin.Context) {
	var req dto.FinalizeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	saleID, err := uuid.Parse(req.SaleID)
	if err != nil {
		c.JSON(http.StatusBadRequest, result.Fail("invalid sale id"))
		return
	}
	writeResult(c, h.carts.Finalize(c.Request.Context(), cartID(c), saleID))
}

// Checkout godoc
// @Summary      Checkout cart
// @Description  Creates a sales header and finalizes the cart under it in one call. The header is rolled back if the cart is empty.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body body dto.CheckoutRequest true "Sales header data"
// @Success      200 {object} result.Result
// @Failure      400 {object} result.Result
// @Router       /cart/checkout [post]
func (h *CartHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if !bindAndValidate(c, &req) {
		return
	}
	status := req.Status
	if status == "" {
		status = model.SaleStatusDraft
	}
	sale, err := h.sales.Create(c.Request.Context(), dto.SaleRequest{
		Date:       req.Date,
		CustomerID: req.CustomerID,
		DONumber:   req.DONumber,
		Status:     status,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
		return
	}
	saleID, _ := uuid.Parse(sale.ID)

	res := h.carts.Finalize(c.Request.Context(), cartID(c), saleID)
	if !res.Success {
		// The fresh header is useless without lines; best-effort cleanup.
		_ = h.sales.Delete(c.Request.Context(), saleID)
		writeResult(c, res)
		return
	}
	writeResult(c, result.OKData(res.Message, sale))
}
