package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

// StoreHandlers handles organization and store HTTP requests
type StoreHandlers struct {
	stores domain.StoreRepository
}

// NewStoreHandlers creates new store handlers
func NewStoreHandlers(stores domain.StoreRepository) *StoreHandlers {
	return &StoreHandlers{stores: stores}
}

// CreateOrganizationRequest represents an organization creation request
type CreateOrganizationRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateStoreRequest represents a store creation request
type CreateStoreRequest struct {
	OrganizationID string `json:"organization_id" binding:"required,uuid"`
	Name           string `json:"name" binding:"required"`
	Address        string `json:"address"`
}

// CreateOrganization handles POST /api/organizations
func (h *StoreHandlers) CreateOrganization(c *gin.Context) {
	var req CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	org := &domain.Organization{Name: req.Name}
	if err := h.stores.CreateOrganization(c.Request.Context(), org); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create organization"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": gin.H{"id": org.ID, "name": org.Name}})
}

// Create handles POST /api/stores
func (h *StoreHandlers) Create(c *gin.Context) {
	var req CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orgID, err := uuid.Parse(req.OrganizationID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		return
	}
	if _, err := h.stores.FindOrganizationByID(c.Request.Context(), orgID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Organization not found"})
		return
	}

	store := &domain.Store{
		OrganizationID: orgID,
		Name:           req.Name,
		Address:        req.Address,
	}
	if err := h.stores.Create(c.Request.Context(), store); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create store"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": storePayload(store)})
}

// Get handles GET /api/stores/:id
func (h *StoreHandlers) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid store ID"})
		return
	}

	store, err := h.stores.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrStoreNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get store"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": storePayload(store)})
}

// List handles GET /api/stores. Admins see every store; everyone else sees
// only the store bound to their token.
func (h *StoreHandlers) List(c *gin.Context) {
	role, _ := c.Get("role")
	if role != "admin" {
		raw, ok := c.Get("store_id")
		if !ok {
			c.JSON(http.StatusOK, gin.H{"data": []interface{}{}})
			return
		}
		id, err := uuid.Parse(raw.(string))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid store ID"})
			return
		}
		store, err := h.stores.FindByID(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list stores"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": []interface{}{storePayload(store)}})
		return
	}

	stores, err := h.stores.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list stores"})
		return
	}
	payload := make([]interface{}, 0, len(stores))
	for i := range stores {
		payload = append(payload, storePayload(&stores[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": payload})
}

// ListByOrganization handles GET /api/organizations/:id/stores
func (h *StoreHandlers) ListByOrganization(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		return
	}

	stores, err := h.stores.ListByOrganization(c.Request.Context(), orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list stores"})
		return
	}

	payload := make([]interface{}, 0, len(stores))
	for i := range stores {
		payload = append(payload, storePayload(&stores[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": payload})
}
