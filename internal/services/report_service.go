package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

// ReportServiceImpl implements domain.ReportService
type ReportServiceImpl struct {
	sales domain.SaleRepository
}

// NewReportService creates a new report service
func NewReportService(sales domain.SaleRepository) domain.ReportService {
	return &ReportServiceImpl{sales: sales}
}

// DailySales implements domain.ReportService
func (s *ReportServiceImpl) DailySales(ctx context.Context, storeID uuid.UUID, day time.Time) (*domain.DailySalesReport, error) {
	return s.sales.DailyTotals(ctx, storeID, day)
}
