package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
	"github.com/Ola-Segun/inventorysupabase-sub002/internal/mocks"
)

func newStoreListRouter(repo domain.StoreRepository, role, storeID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewStoreHandlers(repo)
	r := gin.New()
	r.GET("/api/stores", func(c *gin.Context) {
		c.Set("role", role)
		if storeID != "" {
			c.Set("store_id", storeID)
		}
		h.List(c)
	})
	return r
}

func listStores(t *testing.T, r *gin.Engine) (int, []map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/stores", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var body struct {
		Data []map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v (%s)", err, rec.Body.String())
	}
	return rec.Code, body.Data
}

func TestStoreHandlers_ListAdminSeesAll(t *testing.T) {
	repo := mocks.NewMockStoreRepository()
	repo.ListFunc = func(ctx context.Context) ([]domain.Store, error) {
		return []domain.Store{
			{ID: uuid.New(), Name: "Downtown"},
			{ID: uuid.New(), Name: "Airport"},
		}, nil
	}

	code, data := listStores(t, newStoreListRouter(repo, "admin", ""))

	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if len(data) != 2 {
		t.Errorf("admin sees %d stores, want 2", len(data))
	}
}

func TestStoreHandlers_ListCashierPinnedToOwnStore(t *testing.T) {
	own := uuid.New()
	repo := mocks.NewMockStoreRepository()
	repo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Store, error) {
		if id != own {
			t.Errorf("looked up store %s, want %s", id, own)
		}
		return &domain.Store{ID: id, Name: "Downtown"}, nil
	}
	repo.ListFunc = func(ctx context.Context) ([]domain.Store, error) {
		t.Error("non-admin must not list all stores")
		return nil, nil
	}

	code, data := listStores(t, newStoreListRouter(repo, "cashier", own.String()))

	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if len(data) != 1 {
		t.Fatalf("cashier sees %d stores, want 1", len(data))
	}
	if data[0]["name"] != "Downtown" {
		t.Errorf("store name = %v, want Downtown", data[0]["name"])
	}
}

func TestStoreHandlers_ListNoStoreBoundEmpty(t *testing.T) {
	code, data := listStores(t, newStoreListRouter(mocks.NewMockStoreRepository(), "cashier", ""))

	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if len(data) != 0 {
		t.Errorf("unbound account sees %d stores, want 0", len(data))
	}
}
