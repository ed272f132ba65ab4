package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

// SaleHandlers handles checkout and invoice HTTP requests
type SaleHandlers struct {
	salesSvc domain.SalesService
}

// NewSaleHandlers creates new sale handlers
func NewSaleHandlers(salesSvc domain.SalesService) *SaleHandlers {
	return &SaleHandlers{salesSvc: salesSvc}
}

// SaleLineRequest is one line of a checkout request
type SaleLineRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// SaleRequest represents a checkout request
type SaleRequest struct {
	Lines []SaleLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// Create handles POST /api/sales
func (h *SaleHandlers) Create(c *gin.Context) {
	storeID, ok := storeScope(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No store in scope"})
		return
	}

	cashierID, ok := accountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req SaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lines := make([]domain.SaleLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		productID, err := uuid.Parse(l.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		lines = append(lines, domain.SaleLine{ProductID: productID, Quantity: l.Quantity})
	}

	sale, invoice, err := h.salesSvc.RecordSale(c.Request.Context(), storeID, cashierID, lines)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		case errors.Is(err, domain.ErrInsufficientStock):
			c.JSON(http.StatusConflict, gin.H{"error": "Insufficient stock"})
		case errors.Is(err, domain.ErrEmptySale):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Sale has no lines"})
		case errors.Is(err, domain.ErrWrongStore):
			c.JSON(http.StatusForbidden, gin.H{"error": "Product belongs to another store"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record sale"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": gin.H{
		"sale":    salePayload(sale),
		"invoice": invoicePayload(invoice),
	}})
}

// Get handles GET /api/sales/:id
func (h *SaleHandlers) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale ID"})
		return
	}

	sale, err := h.salesSvc.GetSale(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrSaleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get sale"})
		return
	}

	if !saleInScope(c, sale.StoreID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Sale belongs to another store"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": salePayload(sale)})
}

// GetInvoice handles GET /api/invoices/:id
func (h *SaleHandlers) GetInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invoice ID"})
		return
	}

	invoice, err := h.salesSvc.GetInvoice(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrInvoiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get invoice"})
		return
	}

	// Invoices carry no store of their own; scope through the backing sale.
	sale, err := h.salesSvc.GetSale(c.Request.Context(), invoice.SaleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get invoice"})
		return
	}
	if !saleInScope(c, sale.StoreID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Invoice belongs to another store"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": invoicePayload(invoice)})
}

func saleInScope(c *gin.Context, storeID uuid.UUID) bool {
	if role, _ := c.Get("role"); role == "admin" {
		return true
	}
	raw, _ := c.Get("store_id")
	scoped, ok := raw.(string)
	return ok && scoped == storeID.String()
}

func salePayload(sale *domain.Sale) gin.H {
	items := make([]gin.H, 0, len(sale.Items))
	for _, item := range sale.Items {
		items = append(items, gin.H{
			"product_id":       item.ProductID,
			"quantity":         item.Quantity,
			"unit_price_cents": item.UnitPriceCents,
			"total_cents":      item.TotalCents,
		})
	}
	return gin.H{
		"id":          sale.ID,
		"store_id":    sale.StoreID,
		"cashier_id":  sale.CashierID,
		"total_cents": sale.TotalCents,
		"items":       items,
		"created_at":  sale.CreatedAt,
	}
}

func invoicePayload(invoice *domain.Invoice) gin.H {
	return gin.H{
		"id":        invoice.ID,
		"sale_id":   invoice.SaleID,
		"number":    invoice.Number,
		"issued_at": invoice.IssuedAt,
	}
}
