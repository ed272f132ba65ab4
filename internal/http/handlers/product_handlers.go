package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

// ProductHandlers handles catalog HTTP requests
type ProductHandlers struct {
	inventorySvc domain.InventoryService
}

// NewProductHandlers creates new product handlers
func NewProductHandlers(inventorySvc domain.InventoryService) *ProductHandlers {
	return &ProductHandlers{inventorySvc: inventorySvc}
}

// ProductRequest represents a product create/update request
type ProductRequest struct {
	SKU        string `json:"sku" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Category   string `json:"category"`
	PriceCents int64  `json:"price_cents" binding:"required,gt=0"`
	Stock      int    `json:"stock" binding:"gte=0"`
}

// ReceiveStockRequest represents a stock receipt request
type ReceiveStockRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// storeScope resolves which store the request acts on: non-admin callers are
// pinned to their own store; admins select one with ?store_id.
func storeScope(c *gin.Context) (uuid.UUID, bool) {
	role, _ := c.Get("role")
	if role == "admin" {
		if id, err := uuid.Parse(c.Query("store_id")); err == nil {
			return id, true
		}
		return uuid.Nil, false
	}
	raw, exists := c.Get("store_id")
	if !exists {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw.(string))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// Create handles POST /api/products
func (h *ProductHandlers) Create(c *gin.Context) {
	storeID, ok := storeScope(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No store in scope"})
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := &domain.Product{
		StoreID:    storeID,
		SKU:        req.SKU,
		Name:       req.Name,
		Category:   req.Category,
		PriceCents: req.PriceCents,
		Stock:      req.Stock,
	}

	if err := h.inventorySvc.CreateProduct(c.Request.Context(), product); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateSKU):
			c.JSON(http.StatusConflict, gin.H{"error": "SKU already exists in store"})
		case errors.Is(err, domain.ErrStoreNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": productPayload(product)})
}

// List handles GET /api/products
func (h *ProductHandlers) List(c *gin.Context) {
	storeID, ok := storeScope(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No store in scope"})
		return
	}

	products, err := h.inventorySvc.ListProducts(c.Request.Context(), storeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
		return
	}

	payload := make([]interface{}, 0, len(products))
	for i := range products {
		payload = append(payload, productPayload(&products[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": payload})
}

// Get handles GET /api/products/:id
func (h *ProductHandlers) Get(c *gin.Context) {
	product, ok := h.scopedProduct(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": productPayload(product)})
}

// Update handles PUT /api/products/:id
func (h *ProductHandlers) Update(c *gin.Context) {
	product, ok := h.scopedProduct(c)
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product.SKU = req.SKU
	product.Name = req.Name
	product.Category = req.Category
	product.PriceCents = req.PriceCents

	if err := h.inventorySvc.UpdateProduct(c.Request.Context(), product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": productPayload(product)})
}

// Delete handles DELETE /api/products/:id
func (h *ProductHandlers) Delete(c *gin.Context) {
	product, ok := h.scopedProduct(c)
	if !ok {
		return
	}

	if err := h.inventorySvc.DeleteProduct(c.Request.Context(), product.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}

	c.Status(http.StatusNoContent)
}

// ReceiveStock handles POST /api/products/:id/stock
func (h *ProductHandlers) ReceiveStock(c *gin.Context) {
	product, ok := h.scopedProduct(c)
	if !ok {
		return
	}

	var req ReceiveStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.inventorySvc.ReceiveStock(c.Request.Context(), product.ID, req.Quantity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to receive stock"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Stock received"}})
}

// scopedProduct loads the product from the path ID and enforces the caller's
// store scope, writing the error response itself on failure.
func (h *ProductHandlers) scopedProduct(c *gin.Context) (*domain.Product, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return nil, false
	}

	product, err := h.inventorySvc.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get product"})
		return nil, false
	}

	if role, _ := c.Get("role"); role != "admin" {
		raw, _ := c.Get("store_id")
		storeID, ok := raw.(string)
		if !ok || storeID != product.StoreID.String() {
			c.JSON(http.StatusForbidden, gin.H{"error": "Product belongs to another store"})
			return nil, false
		}
	}

	return product, true
}

func productPayload(product *domain.Product) gin.H {
	return gin.H{
		"id":          product.ID,
		"store_id":    product.StoreID,
		"sku":         product.SKU,
		"name":        product.Name,
		"category":    product.Category,
		"price_cents": product.PriceCents,
		"stock":       product.Stock,
	}
}
