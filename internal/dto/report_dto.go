package dto

import "github.com/shopspring/decimal"

// ─── Report DTOs ─────────────────────────────────────────────────────────────

// ReportFilter bounds a report to a date range (inclusive, YYYY-MM-DD).
// Format "csv" switches the response to a CSV attachment.
type ReportFilter struct {
	StartDate string `form:"start_date" validate:"required"`
	EndDate   string `form:"end_date"   validate:"required"`
	Format    string `form:"format"     validate:"omitempty,oneof=json csv"`
}

type SalesReportRow struct {
	SaleID       string          `json:"sale_id"`
	Date         string          `json:"date"`
	DONumber     string          `json:"do_number"`
	CustomerName string          `json:"customer_name"`
	Status       string          `json:"status"`
	TotalSales   decimal.Decimal `json:"total_sales"`
}

type TransactionReportRow struct {
	Date         string          `json:"date"`
	DONumber     string          `json:"do_number"`
	CustomerName string          `json:"customer_name"`
	ItemName     string          `json:"item_name"`
	Quantity     decimal.Decimal `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	Amount       decimal.Decimal `json:"amount"`
}

type StockReportRow struct {
	ItemName  string          `json:"item_name"`
	UOM       string          `json:"uom"`
	SellPrice decimal.Decimal `json:"sell_price"`
	Stock     int             `json:"stock"`
}

type CustomerReportRow struct {
	CustomerName string          `json:"customer_name"`
	SalesCount   int64           `json:"sales_count"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

// DashboardStats is the headline block on the dashboard page, cached briefly
// in Redis.
type DashboardStats struct {
	Customers  int64           `json:"customers"`
	Items      int64           `json:"items"`
	Sales      int64           `json:"sales"`
	Users      int64           `json:"users"`
	TodayTotal decimal.Decimal `json:"today_total"`
}
