package postgres

import (
	"context"
	"encoding/json"

	"florist/internal/domain/entity"
	"florist/internal/domain/repository"
	"florist/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return productM.ToDomain(), nil
}

type zoneRepository struct {
	db *gorm.DB
}

// NewZoneRepository is the constructor for zoneRepository.
func NewZoneRepository(db *gorm.DB) repository.ZoneRepository {
	return &zoneRepository{db: db}
}

// FindByPincode returns the first active zone, by zone id, whose pincode array contains pincode.
func (repo *zoneRepository) FindByPincode(ctx context.Context, pincode string) (*entity.DeliveryZone, error) {
	needle, err := json.Marshal([]string{pincode})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var zoneM model.DeliveryZoneModel
	err = repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("pincodes @> ?::jsonb", string(needle)).
		Order("zone_id ASC").
		First(&zoneM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrZoneNotFound
		}

		return nil, errors.Wrap(err, "failed to find zone by pincode")
	}

	return zoneM.ToDomain(), nil
}

// UpsertCatalog writes reference products and zones, replacing rows with the same key.
func UpsertCatalog(ctx context.Context, db *gorm.DB, products []entity.Product, zones []entity.DeliveryZone) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range products {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(model.FromProductDomain(&products[i])).Error; err != nil {
				return errors.Wrapf(err, "failed to upsert product %s", products[i].ID)
			}
		}
		for i := range zones {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(model.FromZoneDomain(&zones[i])).Error; err != nil {
				return errors.Wrapf(err, "failed to upsert zone %s", zones[i].ZoneID)
			}
		}

		return nil
	})
}

// UpsertUsers writes user accounts without touching their saved addresses.
func UpsertUsers(ctx context.Context, db *gorm.DB, users []entity.User) error {
	for i := range users {
		userM := model.FromUserDomain(&users[i])
		userM.Addresses = nil
		err := db.WithContext(ctx).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoUpdates: clause.AssignmentColumns([]string{"name", "email"})}).
			Create(userM).Error
		if err != nil {
			return errors.Wrapf(err, "failed to upsert user %s", users[i].ID)
		}
	}

	return nil
}
