package handler

import (
	"encoding/csv"
	"net/http"
	"strconv"

	"pospenjualan/internal/dto"
	"pospenjualan/internal/result"
	"pospenjualan/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

// writeCSV streams header + rows as a CSV attachment.
func writeCSV(c *gin.Context, filename string, header []string, rows [][]string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	w := csv.NewWriter(c.Writer)
	_ = w.Write(header)
	for _, row := range rows {
		_ = w.Write(row)
	}
	w.Flush()
}

// Sales godoc
// @Summary      Sales report
// @Description  Per-sale totals over an inclusive date range. format=csv downloads an attachment.
// @Tags         reports
// @Produce      json
// @Param        start_date query string true  "YYYY-MM-DD"
// @Param        end_date   query string true  "YYYY-MM-DD"
// @Param        format     query string false "json | csv"
// @Success      200 {object} result.Result
// @Failure      400 {object} result.Result
// @Router       /reports/sales [get]
func (h *ReportsHandler) Sales(c *gin.Context) {
	var filter dto.ReportFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
		return
	}
	rows, err := h.svc.SalesReport(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
		return
	}
	if filter.Format == "csv" {
		out := make([][]string, 0, len(rows))
		for _, r := range rows {
			out = append(out, []string{r.Date, r.DONumber, r.CustomerName, r.Status, r.TotalSales.String()})
		}
		writeCSV(c, "sales_report.csv", []string{"date", "do_number", "customer", "status", "total"}, out)
		return
	}
	c.JSON(http.StatusOK, result.OKData("sales report", rows))
}

// Transactions godoc
// @Summary      Transaction report
// @Description  Line-level detail over an inclusive date range. format=csv downloads an attachment.
// @Tags         reports
// @Produce      json
// @Param        start_date query string true  "YYYY-MM-DD"
// @Param        end_date   query string true  "YYYY-MM-DD"
// @Param        format     query string false "json | csv"
// @Success      200 {object} result.Result
// @Failure      400 {object} result.Result
// @Router       /reports/transactions [get]
func (h *ReportsHandler) Transactions(c *gin.Context) {
	var filter dto.ReportFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
		return
	}
	rows, err := h.svc.TransactionReport(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
		return
	}
	if filter.Format == "csv" {
		out := make([][]string, 0, len(rows))
		for _, r := range rows {
			out = append(out, []string{r.Date, r.DONumber, r.CustomerName, r.ItemName, r.Quantity.String(), r.Price.String(), r.Amount.String()})
		}
		writeCSV(c, "transaction_report.csv", []string{"date", "do_number", "customer", "item", "quantity", "price", "amount"}, out)
		return
	}
	c.JSON(http.StatusOK, result.OKData("transaction report", rows))
}

// Stock godoc
// @Summary      Stock report
// @Tags         reports
// @Produce      json
// @Param        format query string false "json | csv"
// @Success      200 {object} result.Result
// @Router       /reports/stock [get]
func (h *ReportsHandler) Stock(c *gin.Context) {
	rows, err := h.svc.StockReport(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	if c.Query("format") == "csv" {
		out := make([][]string, 0, len(rows))
		for _, r := range rows {
			out = append(out, []string{r.ItemName, r.UOM, r.SellPrice.String(), strconv.Itoa(r.Stock)})
		}
		writeCSV(c, "stock_report.csv", []string{"item", "uom", "sell_price", "stock"}, out)
		return
	}
	c.JSON(http.StatusOK, result.OKData("stock report", rows))
}

// Customers godoc
// @Summary      Customer report
// @Description  Per-customer sales count and total amount.
// @Tags         reports
// @Produce      json
// @Param        format query string false "json | csv"
// @Success      200 {object} result.Result
// @Router       /reports/customers [get]
func (h *ReportsHandler) Customers(c *gin.Context) {
	rows, err := h.svc.CustomerReport(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	if c.Query("format") == "csv" {
		out := make([][]string, 0, len(rows))
		for _, r := range rows {
			out = append(out, []string{r.CustomerName, strconv.FormatInt(r.SalesCount, 10), r.TotalAmount.String()})
		}
		writeCSV(c, "customer_report.csv", []string{"customer", "sales_count", "total_amount"}, out)
		return
	}
	c.JSON(http.StatusOK, result.OKData("customer report", rows))
}
