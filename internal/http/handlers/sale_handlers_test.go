package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
	"github.com/Ola-Segun/inventorysupabase-sub002/internal/mocks"
)

func newSaleRouter(svc domain.SalesService, role, storeID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewSaleHandlers(svc)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("role", role)
		if storeID != "" {
			c.Set("store_id", storeID)
		}
		c.Next()
	})
	r.GET("/api/sales/:id", h.Get)
	r.GET("/api/invoices/:id", h.GetInvoice)
	return r
}

func saleFixture(storeID uuid.UUID) (*domain.Sale, *domain.Invoice) {
	sale := &domain.Sale{
		ID:         uuid.New(),
		StoreID:    storeID,
		CashierID:  uuid.New(),
		TotalCents: 1200,
	}
	invoice := &domain.Invoice{
		ID:     uuid.New(),
		SaleID: sale.ID,
		Number: "INV-20250601-ABCDEF12",
	}
	return sale, invoice
}

func salesServiceFor(sale *domain.Sale, invoice *domain.Invoice) *mocks.MockSalesService {
	svc := mocks.NewMockSalesService()
	svc.GetSaleFunc = func(ctx context.Context, id uuid.UUID) (*domain.Sale, error) {
		if id != sale.ID {
			return nil, domain.ErrSaleNotFound
		}
		return sale, nil
	}
	svc.GetInvoiceFunc = func(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
		if id != invoice.ID {
			return nil, domain.ErrInvoiceNotFound
		}
		return invoice, nil
	}
	return svc
}

func getPath(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestSaleHandlers_GetOwnStoreSale(t *testing.T) {
	storeID := uuid.New()
	sale, invoice := saleFixture(storeID)
	r := newSaleRouter(salesServiceFor(sale, invoice), "cashier", storeID.String())

	rec := getPath(t, r, "/api/sales/"+sale.ID.String())
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
}

func TestSaleHandlers_GetForeignStoreSaleForbidden(t *testing.T) {
	sale, invoice := saleFixture(uuid.New())
	r := newSaleRouter(salesServiceFor(sale, invoice), "cashier", uuid.New().String())

	rec := getPath(t, r, "/api/sales/"+sale.ID.String())
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403 for foreign-store sale", rec.Code)
	}
}

func TestSaleHandlers_GetInvoiceOwnStore(t *testing.T) {
	storeID := uuid.New()
	sale, invoice := saleFixture(storeID)
	r := newSaleRouter(salesServiceFor(sale, invoice), "cashier", storeID.String())

	rec := getPath(t, r, "/api/invoices/"+invoice.ID.String())
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
}

func TestSaleHandlers_GetInvoiceForeignStoreForbidden(t *testing.T) {
	sale, invoice := saleFixture(uuid.New())
	r := newSaleRouter(salesServiceFor(sale, invoice), "cashier", uuid.New().String())

	rec := getPath(t, r, "/api/invoices/"+invoice.ID.String())
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403 for foreign-store invoice", rec.Code)
	}
}

func TestSaleHandlers_GetInvoiceAdminBypassesScope(t *testing.T) {
	sale, invoice := saleFixture(uuid.New())
	r := newSaleRouter(salesServiceFor(sale, invoice), "admin", "")

	rec := getPath(t, r, "/api/invoices/"+invoice.ID.String())
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 for admin: %s", rec.Code, rec.Body.String())
	}
}

func TestSaleHandlers_GetInvoiceMissing(t *testing.T) {
	storeID := uuid.New()
	sale, invoice := saleFixture(storeID)
	r := newSaleRouter(salesServiceFor(sale, invoice), "cashier", storeID.String())

	rec := getPath(t, r, "/api/invoices/"+uuid.New().String())
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
