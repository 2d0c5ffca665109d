package repository

import (
	"context"
	"time"

	"pospenjualan/internal/dto"
	"pospenjualan/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ReportRepository interface {
	SalesReport(ctx context.Context, start, end time.Time) ([]dto.SalesReportRow, error)
	TransactionReport(ctx context.Context, start, end time.Time) ([]dto.TransactionReportRow, error)
	StockReport(ctx context.Context) ([]dto.StockReportRow, error)
	CustomerReport(ctx context.Context) ([]dto.CustomerReportRow, error)
	DashboardStats(ctx context.Context) (*dto.DashboardStats, error)
}

type reportRepo struct{ db *gorm.DB }

func NewReportRepository(db *gorm.DB) ReportRepository { return &reportRepo{db: db} }

func (r *reportRepo) SalesReport(ctx context.Context, start, end time.Time) ([]dto.SalesReportRow, error) {
	var rows []struct {
		ID           string
		Date         time.Time
		DONumber     *string
		CustomerName *string
		Status       string
		Total        decimal.NullDecimal
	}
	err := r.db.WithContext(ctx).
		Table("sales").
		Select(`sales.id, sales.date, sales.do_number, customer.name AS customer_name,
		        sales.status, COALESCE(SUM(transaction.amount), 0) AS total`).
		Joins("LEFT JOIN customer ON customer.id = sales.customer_id").
		Joins(`LEFT JOIN transaction ON transaction.sale_id = sales.id`).
		Where("DATE(sales.date) BETWEEN DATE(?) AND DATE(?)", start, end).
		Group("sales.id, customer.name").
		Order("sales.date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalesReportRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.SalesReportRow{
			SaleID:       row.ID,
			Date:         row.Date.Format("2006-01-02 15:04:05"),
			DONumber:     deref(row.DONumber),
			CustomerName: deref(row.CustomerName),
			Status:       row.Status,
			TotalSales:   row.Total.Decimal,
		})
	}
	return out, nil
}

func (r *reportRepo) TransactionReport(ctx context.Context, start, end time.Time) ([]dto.TransactionReportRow, error) {
	var rows []struct {
		Date         time.Time
		DONumber     *string
		CustomerName *string
		ItemName     *string
		Quantity     decimal.Decimal
		Price        decimal.Decimal
		Amount       decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Table("transaction").
		Select(`sales.date, sales.do_number, customer.name AS customer_name,
		        item.name AS item_name, transaction.quantity, transaction.price, transaction.amount`).
		Joins("LEFT JOIN sales ON sales.id = transaction.sale_id").
		Joins("LEFT JOIN item ON item.id = transaction.item_id").
		Joins("LEFT JOIN customer ON customer.id = sales.customer_id").
		Where("DATE(sales.date) BETWEEN DATE(?) AND DATE(?)", start, end).
		Order("sales.date DESC, transaction.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionReportRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.TransactionReportRow{
			Date:         row.Date.Format("2006-01-02 15:04:05"),
			DONumber:     deref(row.DONumber),
			CustomerName: deref(row.CustomerName),
			ItemName:     deref(row.ItemName),
			Quantity:     row.Quantity,
			Price:        row.Price,
			Amount:       row.Amount,
		})
	}
	return out, nil
}

func (r *reportRepo) StockReport(ctx context.Context) ([]dto.StockReportRow, error) {
	var items []model.Item
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	out := make([]dto.StockReportRow, 0, len(items))
	for _, i := range items {
		out = append(out, dto.StockReportRow{
			ItemName:  i.Name,
			UOM:       i.UOM,
			SellPrice: i.SellPrice,
			Stock:     i.Stock,
		})
	}
	return out, nil
}

func (r *reportRepo) CustomerReport(ctx context.Context) ([]dto.CustomerReportRow, error) {
	var rows []struct {
		Name  string
		Count int64
		Total decimal.NullDecimal
	}
	err := r.db.WithContext(ctx).
		Table("customer").
		Select(`customer.name, COUNT(DISTINCT sales.id) AS count,
		        COALESCE(SUM(transaction.amount), 0) AS total`).
		Joins("LEFT JOIN sales ON sales.customer_id = customer.id").
		Joins("LEFT JOIN transaction ON transaction.sale_id = sales.id").
		Group("customer.id, customer.name").
		Order("customer.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerReportRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.CustomerReportRow{
			CustomerName: row.Name,
			SalesCount:   row.Count,
			TotalAmount:  row.Total.Decimal,
		})
	}
	return out, nil
}

func (r *reportRepo) DashboardStats(ctx context.Context) (*dto.DashboardStats, error) {
	stats := &dto.DashboardStats{TodayTotal: decimal.Zero}
	db := r.db.WithContext(ctx)

	if err := db.Model(&model.Customer{}).Count(&stats.Customers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Item{}).Count(&stats.Items).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Sale{}).Count(&stats.Sales).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.User{}).Count(&stats.Users).Error; err != nil {
		return nil, err
	}

	var total decimal.NullDecimal
	err := db.Table("transaction").
		Select("SUM(transaction.amount)").
		Joins("LEFT JOIN sales ON sales.id = transaction.sale_id").
		Where("DATE(sales.date) = CURRENT_DATE").
		Scan(&total).Error
	if err != nil {
		return nil, err
	}
	if total.Valid {
		stats.TodayTotal = total.Decimal
	}
	return stats, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
