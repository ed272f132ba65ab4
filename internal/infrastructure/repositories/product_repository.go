package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

// ProductRepositoryImpl implements domain.ProductRepository using GORM
type ProductRepositoryImpl struct {
	db *gorm.DB
}

// DBProduct represents the database model for Product
type DBProduct struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	StoreID    uuid.UUID `gorm:"type:uuid;index:idx_store_sku,unique;index"`
	SKU        string    `gorm:"index:idx_store_sku,unique;size:64"`
	Name       string    `gorm:"size:255"`
	Category   string    `gorm:"index;size:128"`
	PriceCents int64     `gorm:"not null"`
	Stock      int       `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (DBProduct) TableName() string { return "products" }

func (p *DBProduct) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domain.ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

// Create implements domain.ProductRepository
func (r *ProductRepositoryImpl) Create(ctx context.Context, product *domain.Product) error {
	dbProduct := r.domainToDB(product)
	if err := r.db.WithContext(ctx).Create(dbProduct).Error; err != nil {
		return err
	}
	product.ID = dbProduct.ID
	return nil
}

// FindByID implements domain.ProductRepository
func (r *ProductRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	var dbProduct DBProduct
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbProduct).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbProduct), nil
}

// FindBySKU implements domain.ProductRepository
func (r *ProductRepositoryImpl) FindBySKU(ctx context.Context, storeID uuid.UUID, sku string) (*domain.Product, error) {
	var dbProduct DBProduct
	err := r.db.WithContext(ctx).Where("store_id = ? AND sku = ?", storeID, sku).First(&dbProduct).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbProduct), nil
}

// ListByStore implements domain.ProductRepository
func (r *ProductRepositoryImpl) ListByStore(ctx context.Context, storeID uuid.UUID) ([]domain.Product, error) {
	var dbProducts []DBProduct
	err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("name").
		Find(&dbProducts).Error
	if err != nil {
		return nil, err
	}
	products := make([]domain.Product, 0, len(dbProducts))
	for i := range dbProducts {
		products = append(products, *r.dbToDomain(&dbProducts[i]))
	}
	return products, nil
}

// Update implements domain.ProductRepository
func (r *ProductRepositoryImpl) Update(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Save(r.domainToDB(product)).Error
}

// Delete implements domain.ProductRepository
func (r *ProductRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&DBProduct{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// AdjustStock implements domain.ProductRepository. The guard is part of the
// UPDATE itself so two concurrent sales cannot both take the last unit.
func (r *ProductRepositoryImpl) AdjustStock(ctx context.Context, id uuid.UUID, delta int) error {
	res := r.db.WithContext(ctx).Model(&DBProduct{}).
		Where("id = ? AND stock + ? >= 0", id, delta).
		Update("stock", gorm.Expr("stock + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := r.FindByID(ctx, id); err != nil {
			return err
		}
		return domain.ErrInsufficientStock
	}
	return nil
}

func (r *ProductRepositoryImpl) domainToDB(product *domain.Product) *DBProduct {
	return &DBProduct{
		ID:         product.ID,
		StoreID:    product.StoreID,
		SKU:        product.SKU,
		Name:       product.Name,
		Category:   product.Category,
		PriceCents: product.PriceCents,
		Stock:      product.Stock,
	}
}

func (r *ProductRepositoryImpl) dbToDomain(dbProduct *DBProduct) *domain.Product {
	return &domain.Product{
		ID:         dbProduct.ID,
		StoreID:    dbProduct.StoreID,
		SKU:        dbProduct.SKU,
		Name:       dbProduct.Name,
		Category:   dbProduct.Category,
		PriceCents: dbProduct.PriceCents,
		Stock:      dbProduct.Stock,
		CreatedAt:  dbProduct.CreatedAt,
		UpdatedAt:  dbProduct.UpdatedAt,
	}
}
