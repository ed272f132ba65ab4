package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

// SaleRepositoryImpl implements domain.SaleRepository using GORM
type SaleRepositoryImpl struct {
	db *gorm.DB
}

// DBSale represents the database model for Sale
type DBSale struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	StoreID    uuid.UUID `gorm:"type:uuid;index"`
	CashierID  uuid.UUID `gorm:"type:uuid;index"`
	TotalCents int64     `gorm:"not null"`
	CreatedAt  time.Time `gorm:"index"`
}

func (DBSale) TableName() string { return "sales" }

// DBSaleItem represents the database model for SaleItem
type DBSaleItem struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	SaleID         uuid.UUID `gorm:"type:uuid;index"`
	ProductID      uuid.UUID `gorm:"type:uuid;index"`
	Quantity       int       `gorm:"not null"`
	UnitPriceCents int64     `gorm:"not null"`
	TotalCents     int64     `gorm:"not null"`
}

func (DBSaleItem) TableName() string { return "sale_items" }

// DBInvoice represents the database model for Invoice
type DBInvoice struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	SaleID   uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Number   string    `gorm:"uniqueIndex;size:64"`
	IssuedAt time.Time
}

func (DBInvoice) TableName() string { return "invoices" }

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domain.SaleRepository {
	return &SaleRepositoryImpl{db: db}
}

// Create implements domain.SaleRepository. The sale, its items and the
// invoice land in one transaction; a failed item insert rolls back all of it.
func (r *SaleRepositoryImpl) Create(ctx context.Context, sale *domain.Sale, invoice *domain.Invoice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbSale := &DBSale{
			ID:         sale.ID,
			StoreID:    sale.StoreID,
			CashierID:  sale.CashierID,
			TotalCents: sale.TotalCents,
			CreatedAt:  sale.CreatedAt,
		}
		if err := tx.Create(dbSale).Error; err != nil {
			return err
		}

		for i := range sale.Items {
			item := &sale.Items[i]
			dbItem := &DBSaleItem{
				ID:             item.ID,
				SaleID:         sale.ID,
				ProductID:      item.ProductID,
				Quantity:       item.Quantity,
				UnitPriceCents: item.UnitPriceCents,
				TotalCents:     item.TotalCents,
			}
			if err := tx.Create(dbItem).Error; err != nil {
				return err
			}
		}

		dbInvoice := &DBInvoice{
			ID:       invoice.ID,
			SaleID:   sale.ID,
			Number:   invoice.Number,
			IssuedAt: invoice.IssuedAt,
		}
		return tx.Create(dbInvoice).Error
	})
}

// FindByID implements domain.SaleRepository
func (r *SaleRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Sale, error) {
	var dbSale DBSale
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbSale).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrSaleNotFound
		}
		return nil, err
	}

	var dbItems []DBSaleItem
	if err := r.db.WithContext(ctx).Where("sale_id = ?", id).Find(&dbItems).Error; err != nil {
		return nil, err
	}

	sale := &domain.Sale{
		ID:         dbSale.ID,
		StoreID:    dbSale.StoreID,
		CashierID:  dbSale.CashierID,
		TotalCents: dbSale.TotalCents,
		CreatedAt:  dbSale.CreatedAt,
		Items:      make([]domain.SaleItem, 0, len(dbItems)),
	}
	for _, item := range dbItems {
		sale.Items = append(sale.Items, domain.SaleItem{
			ID:             item.ID,
			SaleID:         item.SaleID,
			ProductID:      item.ProductID,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
			TotalCents:     item.TotalCents,
		})
	}
	return sale, nil
}

// FindInvoiceByID implements domain.SaleRepository
func (r *SaleRepositoryImpl) FindInvoiceByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	var dbInvoice DBInvoice
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbInvoice).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, err
	}
	return &domain.Invoice{
		ID:       dbInvoice.ID,
		SaleID:   dbInvoice.SaleID,
		Number:   dbInvoice.Number,
		IssuedAt: dbInvoice.IssuedAt,
	}, nil
}

// DailyTotals implements domain.SaleRepository
func (r *SaleRepositoryImpl) DailyTotals(ctx context.Context, storeID uuid.UUID, day time.Time) (*domain.DailySalesReport, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	var row struct {
		SaleCount  int64
		TotalCents int64
	}
	err := r.db.WithContext(ctx).Model(&DBSale{}).
		Select("COUNT(*) AS sale_count, COALESCE(SUM(total_cents), 0) AS total_cents").
		Where("store_id = ? AND created_at >= ? AND created_at < ?", storeID, start, end).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &domain.DailySalesReport{
		StoreID:    storeID,
		Day:        start.Format("2006-01-02"),
		SaleCount:  row.SaleCount,
		TotalCents: row.TotalCents,
	}, nil
}
