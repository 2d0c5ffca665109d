package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"pospenjualan/internal/dto"
	"pospenjualan/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	dashboardCacheKey = "cache:dashboard:stats"
	dashboardCacheTTL = time.Minute
)

type ReportService interface {
	SalesReport(ctx context.Context, filter dto.ReportFilter) ([]dto.SalesReportRow, error)
	TransactionReport(ctx context.Context, filter dto.ReportFilter) ([]dto.TransactionReportRow, error)
	StockReport(ctx context.Context) ([]dto.StockReportRow, error)
	CustomerReport(ctx context.Context) ([]dto.CustomerReportRow, error)
	DashboardStats(ctx context.Context) (*dto.DashboardStats, error)
}

type reportService struct {
	repo repository.ReportRepository
	rdb  *redis.Client // nil disables the dashboard cache
}

func NewReportService(repo repository.ReportRepository, rdb *redis.Client) ReportService {
	return &reportService{repo: repo, rdb: rdb}
}

// parseReportRange validates the inclusive date range of a report filter.
func parseReportRange(filter dto.ReportFilter) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", filter.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid start date")
	}
	end, err := time.Parse("2006-01-02", filter.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid end date")
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.New("end date is before start date")
	}
	return start, end, nil
}

func (s *reportService) SalesReport(ctx context.Context, filter dto.ReportFilter) ([]dto.SalesReportRow, error) {
	start, end, err := parseReportRange(filter)
	if err != nil {
		return nil, err
	}
	return s.repo.SalesReport(ctx, start, end)
}

func (s *reportService) TransactionReport(ctx context.Context, filter dto.ReportFilter) ([]dto.TransactionReportRow, error) {
	start, end, err := parseReportRange(filter)
	if err != nil {
		return nil, err
	}
	return s.repo.TransactionReport(ctx, start, end)
}

func (s *reportService) StockReport(ctx context.Context) ([]dto.StockReportRow, error) {
	return s.repo.StockReport(ctx)
}

func (s *reportService) CustomerReport(ctx context.Context) ([]dto.CustomerReportRow, error) {
	return s.repo.CustomerReport(ctx)
}

// DashboardStats serves the headline counters, cache-aside with a short TTL.
// Cache failures fall through to the database.
func (s *reportService) DashboardStats(ctx context.Context) (*dto.DashboardStats, error) {
	if s.rdb != nil {
		raw, err := s.rdb.Get(ctx, dashboardCacheKey).Result()
		if err == nil {
			var stats dto.DashboardStats
			if err := json.Unmarshal([]byte(raw), &stats); err == nil {
				return &stats, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Msg("report: dashboard cache read")
		}
	}

	stats, err := s.repo.DashboardStats(ctx)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(stats); err == nil {
			if err := s.rdb.Set(ctx, dashboardCacheKey, raw, dashboardCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("report: dashboard cache write")
			}
		}
	}
	return stats, nil
}
