package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

func newProductRepoForTest(t *testing.T) domain.ProductRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&DBProduct{}))
	return NewProductRepository(db)
}

func newTestProduct(stock int) *domain.Product {
	return &domain.Product{
		StoreID:    uuid.New(),
		SKU:        "SKU-001",
		Name:       "Espresso Beans 1kg",
		Category:   "coffee",
		PriceCents: 1850,
		Stock:      stock,
	}
}

func TestProductRepository_AdjustStockDecrements(t *testing.T) {
	repo := newProductRepoForTest(t)
	ctx := context.Background()

	product := newTestProduct(5)
	require.NoError(t, repo.Create(ctx, product))

	require.NoError(t, repo.AdjustStock(ctx, product.ID, -3))

	found, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, found.Stock)
}

func TestProductRepository_AdjustStockRejectsOversell(t *testing.T) {
	repo := newProductRepoForTest(t)
	ctx := context.Background()

	product := newTestProduct(2)
	require.NoError(t, repo.Create(ctx, product))

	err := repo.AdjustStock(ctx, product.ID, -3)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// The guarded UPDATE must leave the row untouched.
	found, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, found.Stock)
}

func TestProductRepository_AdjustStockToExactlyZero(t *testing.T) {
	repo := newProductRepoForTest(t)
	ctx := context.Background()

	product := newTestProduct(2)
	require.NoError(t, repo.Create(ctx, product))

	require.NoError(t, repo.AdjustStock(ctx, product.ID, -2))

	found, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, found.Stock)
}

func TestProductRepository_AdjustStockMissingProduct(t *testing.T) {
	repo := newProductRepoForTest(t)

	err := repo.AdjustStock(context.Background(), uuid.New(), -1)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductRepository_AdjustStockReceivesDelivery(t *testing.T) {
	repo := newProductRepoForTest(t)
	ctx := context.Background()

	product := newTestProduct(0)
	require.NoError(t, repo.Create(ctx, product))

	require.NoError(t, repo.AdjustStock(ctx, product.ID, 12))

	found, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, found.Stock)
}

func TestProductRepository_DuplicateSKUPerStoreRejected(t *testing.T) {
	repo := newProductRepoForTest(t)
	ctx := context.Background()

	product := newTestProduct(1)
	require.NoError(t, repo.Create(ctx, product))

	dup := newTestProduct(1)
	dup.StoreID = product.StoreID
	assert.Error(t, repo.Create(ctx, dup))

	// Same SKU in another store is fine.
	other := newTestProduct(1)
	require.NoError(t, repo.Create(ctx, other))
}
