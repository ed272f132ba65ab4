package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

// SalesServiceImpl implements domain.SalesService
type SalesServiceImpl struct {
	sales    domain.SaleRepository
	products domain.ProductRepository
	audit    domain.AuditRepository

	now func() time.Time
}

// NewSalesService creates a new sales service
func NewSalesService(sales domain.SaleRepository, products domain.ProductRepository, audit domain.AuditRepository) domain.SalesService {
	return &SalesServiceImpl{
		sales:    sales,
		products: products,
		audit:    audit,
		now:      time.Now,
	}
}

// RecordSale implements domain.SalesService. Stock is decremented per line
// with the atomic guard before the sale is persisted; when a later line fails
// the earlier decrements are compensated.
func (s *SalesServiceImpl) RecordSale(ctx context.Context, storeID, cashierID uuid.UUID, lines []domain.SaleLine) (*domain.Sale, *domain.Invoice, error) {
	if len(lines) == 0 {
		return nil, nil, domain.ErrEmptySale
	}
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, nil, fmt.Errorf("line quantity must be positive, got %d", line.Quantity)
		}
	}

	saleID := uuid.New()
	sale := &domain.Sale{
		ID:        saleID,
		StoreID:   storeID,
		CashierID: cashierID,
		CreatedAt: s.now(),
	}

	var taken []domain.SaleLine
	for _, line := range lines {
		product, err := s.products.FindByID(ctx, line.ProductID)
		if err != nil {
			s.compensate(ctx, taken)
			return nil, nil, err
		}
		if product.StoreID != storeID {
			s.compensate(ctx, taken)
			return nil, nil, domain.ErrWrongStore
		}

		if err := s.products.AdjustStock(ctx, line.ProductID, -line.Quantity); err != nil {
			s.compensate(ctx, taken)
			return nil, nil, err
		}
		taken = append(taken, line)

		itemTotal := product.PriceCents * int64(line.Quantity)
		sale.Items = append(sale.Items, domain.SaleItem{
			ID:             uuid.New(),
			SaleID:         saleID,
			ProductID:      product.ID,
			Quantity:       line.Quantity,
			UnitPriceCents: product.PriceCents,
			TotalCents:     itemTotal,
		})
		sale.TotalCents += itemTotal
	}

	invoice := &domain.Invoice{
		ID:       uuid.New(),
		SaleID:   saleID,
		Number:   invoiceNumber(sale.CreatedAt),
		IssuedAt: sale.CreatedAt,
	}

	if err := s.sales.Create(ctx, sale, invoice); err != nil {
		s.compensate(ctx, taken)
		return nil, nil, fmt.Errorf("failed to persist sale: %w", err)
	}

	if s.audit != nil {
		event := domain.NewAuditEvent(domain.SaleRecordedEvent)
		event.AccountID = &cashierID
		if err := s.audit.Record(ctx, event); err != nil {
			log.Printf("AUDIT_WRITE_FAILED: event=%s sale_id=%s error=%v", event.EventType, saleID, err)
		}
	}

	return sale, invoice, nil
}

// compensate returns already-decremented stock after a later line failed.
func (s *SalesServiceImpl) compensate(ctx context.Context, taken []domain.SaleLine) {
	for _, line := range taken {
		if err := s.products.AdjustStock(ctx, line.ProductID, line.Quantity); err != nil {
			log.Printf("STOCK_COMPENSATION_FAILED: product_id=%s qty=%d error=%v", line.ProductID, line.Quantity, err)
		}
	}
}

// GetSale implements domain.SalesService
func (s *SalesServiceImpl) GetSale(ctx context.Context, id uuid.UUID) (*domain.Sale, error) {
	return s.sales.FindByID(ctx, id)
}

// GetInvoice implements domain.SalesService
func (s *SalesServiceImpl) GetInvoice(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return s.sales.FindInvoiceByID(ctx, id)
}

// invoiceNumber builds a human-readable invoice number: date plus the first
// uuid block, e.g. INV-20260831-9F3A2C1B.
func invoiceNumber(issuedAt time.Time) string {
	ref := strings.ToUpper(strings.SplitN(uuid.NewString(), "-", 2)[0])
	return fmt.Sprintf("INV-%s-%s", issuedAt.Format("20060102"), ref)
}
