package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
	"github.com/Ola-Segun/inventorysupabase-sub002/internal/mocks"
)

func newSalesServiceForTest(t *testing.T) (*SalesServiceImpl, *mocks.MockSaleRepository, *mocks.MockProductRepository, *mocks.MockAuditRepository) {
	t.Helper()
	saleRepo := mocks.NewMockSaleRepository()
	productRepo := mocks.NewMockProductRepository()
	auditRepo := mocks.NewMockAuditRepository()
	svc := NewSalesService(saleRepo, productRepo, auditRepo).(*SalesServiceImpl)
	svc.now = func() time.Time { return testNow }
	return svc, saleRepo, productRepo, auditRepo
}

func testCatalog(storeID uuid.UUID) map[uuid.UUID]*domain.Product {
	coffee := &domain.Product{ID: uuid.New(), StoreID: storeID, SKU: "COF-1", Name: "Coffee", PriceCents: 450, Stock: 10}
	bread := &domain.Product{ID: uuid.New(), StoreID: storeID, SKU: "BRD-1", Name: "Bread", PriceCents: 300, Stock: 2}
	return map[uuid.UUID]*domain.Product{coffee.ID: coffee, bread.ID: bread}
}

func catalogFind(catalog map[uuid.UUID]*domain.Product) func(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return func(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
		if p, ok := catalog[id]; ok {
			return p, nil
		}
		return nil, domain.ErrProductNotFound
	}
}

func TestSalesService_RecordSale(t *testing.T) {
	svc, saleRepo, productRepo, audit := newSalesServiceForTest(t)

	storeID := uuid.New()
	cashierID := uuid.New()
	catalog := testCatalog(storeID)
	productRepo.FindByIDFunc = catalogFind(catalog)

	adjustments := map[uuid.UUID]int{}
	productRepo.AdjustStockFunc = func(ctx context.Context, id uuid.UUID, delta int) error {
		adjustments[id] += delta
		return nil
	}

	var persistedSale *domain.Sale
	var persistedInvoice *domain.Invoice
	saleRepo.CreateFunc = func(ctx context.Context, sale *domain.Sale, invoice *domain.Invoice) error {
		persistedSale = sale
		persistedInvoice = invoice
		return nil
	}

	var coffeeID, breadID uuid.UUID
	for id, p := range catalog {
		if p.SKU == "COF-1" {
			coffeeID = id
		} else {
			breadID = id
		}
	}

	sale, invoice, err := svc.RecordSale(context.Background(), storeID, cashierID, []domain.SaleLine{
		{ProductID: coffeeID, Quantity: 2},
		{ProductID: breadID, Quantity: 1},
	})
	if err != nil {
		t.Fatalf("RecordSale() error = %v", err)
	}

	if sale.TotalCents != 2*450+300 {
		t.Errorf("TotalCents = %d, want %d", sale.TotalCents, 2*450+300)
	}
	if len(sale.Items) != 2 {
		t.Fatalf("item count = %d, want 2", len(sale.Items))
	}
	if sale.Items[0].UnitPriceCents != 450 || sale.Items[0].TotalCents != 900 {
		t.Errorf("coffee line = %+v", sale.Items[0])
	}
	if adjustments[coffeeID] != -2 || adjustments[breadID] != -1 {
		t.Errorf("stock adjustments = %v", adjustments)
	}
	if persistedSale == nil || persistedInvoice == nil {
		t.Fatal("sale and invoice must be persisted together")
	}
	if invoice.SaleID != sale.ID {
		t.Errorf("invoice.SaleID = %s, want %s", invoice.SaleID, sale.ID)
	}
	if !strings.HasPrefix(invoice.Number, "INV-20250601-") {
		t.Errorf("invoice number = %q, want INV-20250601-* prefix", invoice.Number)
	}
	if len(audit.Recorded) != 1 || audit.Recorded[0].EventType != domain.SaleRecordedEvent {
		t.Errorf("expected one SALE_RECORDED audit event, got %v", audit.Recorded)
	}
}

func TestSalesService_RecordSale_EmptyLines(t *testing.T) {
	svc, _, _, _ := newSalesServiceForTest(t)

	_, _, err := svc.RecordSale(context.Background(), uuid.New(), uuid.New(), nil)
	if !errors.Is(err, domain.ErrEmptySale) {
		t.Fatalf("RecordSale() error = %v, want ErrEmptySale", err)
	}
}

func TestSalesService_RecordSale_InsufficientStockCompensates(t *testing.T) {
	svc, _, productRepo, _ := newSalesServiceForTest(t)

	storeID := uuid.New()
	catalog := testCatalog(storeID)
	productRepo.FindByIDFunc = catalogFind(catalog)

	var coffeeID, breadID uuid.UUID
	for id, p := range catalog {
		if p.SKU == "COF-1" {
			coffeeID = id
		} else {
			breadID = id
		}
	}

	adjustments := map[uuid.UUID]int{}
	productRepo.AdjustStockFunc = func(ctx context.Context, id uuid.UUID, delta int) error {
		if id == breadID && delta < 0 {
			return domain.ErrInsufficientStock
		}
		adjustments[id] += delta
		return nil
	}

	_, _, err := svc.RecordSale(context.Background(), storeID, uuid.New(), []domain.SaleLine{
		{ProductID: coffeeID, Quantity: 3},
		{ProductID: breadID, Quantity: 5},
	})
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("RecordSale() error = %v, want ErrInsufficientStock", err)
	}
	if adjustments[coffeeID] != 0 {
		t.Errorf("coffee net adjustment = %d, want 0 after compensation", adjustments[coffeeID])
	}
}

func TestSalesService_RecordSale_WrongStore(t *testing.T) {
	svc, _, productRepo, _ := newSalesServiceForTest(t)

	otherStore := uuid.New()
	catalog := testCatalog(otherStore)
	productRepo.FindByIDFunc = catalogFind(catalog)

	var anyProduct uuid.UUID
	for id := range catalog {
		anyProduct = id
		break
	}

	adjusted := false
	productRepo.AdjustStockFunc = func(ctx context.Context, id uuid.UUID, delta int) error {
		adjusted = true
		return nil
	}

	_, _, err := svc.RecordSale(context.Background(), uuid.New(), uuid.New(), []domain.SaleLine{
		{ProductID: anyProduct, Quantity: 1},
	})
	if !errors.Is(err, domain.ErrWrongStore) {
		t.Fatalf("RecordSale() error = %v, want ErrWrongStore", err)
	}
	if adjusted {
		t.Error("no stock may move for a cross-store line")
	}
}

func TestSalesService_RecordSale_PersistFailureCompensates(t *testing.T) {
	svc, saleRepo, productRepo, _ := newSalesServiceForTest(t)

	storeID := uuid.New()
	catalog := testCatalog(storeID)
	productRepo.FindByIDFunc = catalogFind(catalog)

	adjustments := map[uuid.UUID]int{}
	productRepo.AdjustStockFunc = func(ctx context.Context, id uuid.UUID, delta int) error {
		adjustments[id] += delta
		return nil
	}
	saleRepo.CreateFunc = func(ctx context.Context, sale *domain.Sale, invoice *domain.Invoice) error {
		return errors.New("db down")
	}

	var anyProduct uuid.UUID
	for id := range catalog {
		anyProduct = id
		break
	}

	_, _, err := svc.RecordSale(context.Background(), storeID, uuid.New(), []domain.SaleLine{
		{ProductID: anyProduct, Quantity: 2},
	})
	if err == nil {
		t.Fatal("RecordSale() expected error when persistence fails")
	}
	if adjustments[anyProduct] != 0 {
		t.Errorf("net adjustment = %d, want 0 after compensation", adjustments[anyProduct])
	}
}

func TestSalesService_RecordSale_NonPositiveQuantity(t *testing.T) {
	svc, _, _, _ := newSalesServiceForTest(t)

	_, _, err := svc.RecordSale(context.Background(), uuid.New(), uuid.New(), []domain.SaleLine{
		{ProductID: uuid.New(), Quantity: 0},
	})
	if err == nil {
		t.Fatal("RecordSale() expected error for zero quantity")
	}
}
