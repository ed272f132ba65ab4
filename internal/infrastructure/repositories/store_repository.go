package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

// StoreRepositoryImpl implements domain.StoreRepository using GORM
type StoreRepositoryImpl struct {
	db *gorm.DB
}

// DBOrganization represents the database model for Organization
type DBOrganization struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"uniqueIndex;size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (DBOrganization) TableName() string { return "organizations" }

func (o *DBOrganization) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// DBStore represents the database model for Store
type DBStore struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID `gorm:"type:uuid;index"`
	Name           string    `gorm:"size:255"`
	Address        string    `gorm:"size:512"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (DBStore) TableName() string { return "stores" }

func (s *DBStore) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// NewStoreRepository creates a new store repository
func NewStoreRepository(db *gorm.DB) domain.StoreRepository {
	return &StoreRepositoryImpl{db: db}
}

// CreateOrganization implements domain.StoreRepository
func (r *StoreRepositoryImpl) CreateOrganization(ctx context.Context, org *domain.Organization) error {
	dbOrg := &DBOrganization{ID: org.ID, Name: org.Name}
	if err := r.db.WithContext(ctx).Create(dbOrg).Error; err != nil {
		return err
	}
	org.ID = dbOrg.ID
	return nil
}

// FindOrganizationByID implements domain.StoreRepository
func (r *StoreRepositoryImpl) FindOrganizationByID(ctx context.Context, id uuid.UUID) (*domain.Organization, error) {
	var dbOrg DBOrganization
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbOrg).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrStoreNotFound
		}
		return nil, err
	}
	return &domain.Organization{
		ID:        dbOrg.ID,
		Name:      dbOrg.Name,
		CreatedAt: dbOrg.CreatedAt,
		UpdatedAt: dbOrg.UpdatedAt,
	}, nil
}

// Create implements domain.StoreRepository
func (r *StoreRepositoryImpl) Create(ctx context.Context, store *domain.Store) error {
	dbStore := r.domainToDB(store)
	if err := r.db.WithContext(ctx).Create(dbStore).Error; err != nil {
		return err
	}
	store.ID = dbStore.ID
	return nil
}

// FindByID implements domain.StoreRepository
func (r *StoreRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Store, error) {
	var dbStore DBStore
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbStore).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrStoreNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbStore), nil
}

// List implements domain.StoreRepository
func (r *StoreRepositoryImpl) List(ctx context.Context) ([]domain.Store, error) {
	var dbStores []DBStore
	err := r.db.WithContext(ctx).Order("created_at").Find(&dbStores).Error
	if err != nil {
		return nil, err
	}
	stores := make([]domain.Store, 0, len(dbStores))
	for i := range dbStores {
		stores = append(stores, *r.dbToDomain(&dbStores[i]))
	}
	return stores, nil
}

// ListByOrganization implements domain.StoreRepository
func (r *StoreRepositoryImpl) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]domain.Store, error) {
	var dbStores []DBStore
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at").
		Find(&dbStores).Error
	if err != nil {
		return nil, err
	}
	stores := make([]domain.Store, 0, len(dbStores))
	for i := range dbStores {
		stores = append(stores, *r.dbToDomain(&dbStores[i]))
	}
	return stores, nil
}

// Update implements domain.StoreRepository
func (r *StoreRepositoryImpl) Update(ctx context.Context, store *domain.Store) error {
	return r.db.WithContext(ctx).Save(r.domainToDB(store)).Error
}

func (r *StoreRepositoryImpl) domainToDB(store *domain.Store) *DBStore {
	return &DBStore{
		ID:             store.ID,
		OrganizationID: store.OrganizationID,
		Name:           store.Name,
		Address:        store.Address,
	}
}

func (r *StoreRepositoryImpl) dbToDomain(dbStore *DBStore) *domain.Store {
	return &domain.Store{
		ID:             dbStore.ID,
		OrganizationID: dbStore.OrganizationID,
		Name:           dbStore.Name,
		Address:        dbStore.Address,
		CreatedAt:      dbStore.CreatedAt,
		UpdatedAt:      dbStore.UpdatedAt,
	}
}
