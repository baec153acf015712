package postgres

import (
	"context"
	"time"

	"florist/internal/domain/entity"
	domainerrors "florist/internal/domain/errors"
	"florist/internal/domain/repository"
	"florist/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

func (repo *cartRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by user")
	}

	return cartM.ToDomain(), nil
}

// Save inserts version 1 or updates where the stored version still matches.
func (repo *cartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	now := time.Now()
	items := cart.Items
	if items == nil {
		items = []entity.CartLine{}
	}

	if cart.Version == 0 {
		cartM := &model.CartModel{
			UserID:    cart.UserID,
			Items:     datatypes.NewJSONType(items),
			Version:   1,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := repo.db.WithContext(ctx).Create(cartM).Error; err != nil {
			if isUniqueConstraintViolation(err) {
				return repository.ErrCartVersionConflict
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
		}
		cart.Version = 1
		cart.CreatedAt = now
		cart.UpdatedAt = now

		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.CartModel{}).
		Where("user_id = ? AND version = ?", cart.UserID, cart.Version).
		Updates(map[string]any{
			"items":      datatypes.NewJSONType(items),
			"version":    cart.Version + 1,
			"updated_at": now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cart")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartVersionConflict
	}
	cart.Version++
	cart.UpdatedAt = now

	return nil
}
