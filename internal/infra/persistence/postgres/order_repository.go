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
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	now := time.Now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now

	if err := repo.db.WithContext(ctx).Create(model.FromOrderDomain(order)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCheckoutToken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findOne(ctx, "failed to find order by id", "id = ?", id)
}

func (repo *orderRepository) FindByCheckoutToken(ctx context.Context, userID uuid.UUID, token string) (*entity.Order, error) {
	return repo.findOne(ctx, "failed to find order by checkout token", "user_id = ? AND checkout_token = ?", userID, token)
}

func (repo *orderRepository) FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*entity.Order, error) {
	if gatewayOrderID == "" {
		return nil, repository.ErrOrderNotFound
	}

	return repo.findOne(ctx, "failed to find order by gateway order id", "gateway_order_id = ?", gatewayOrderID)
}

func (repo *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderMs []model.OrderModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for i := range orderMs {
		orders = append(orders, orderMs[i].ToDomain())
	}

	return orders, nil
}

// ApplyTransition issues one conditional UPDATE. The fulfillment change is a CASE so it only
// moves order_status when the current value is in the allowed sources.
func (repo *orderRepository) ApplyTransition(ctx context.Context, transition repository.Transition) (bool, error) {
	query := repo.db.WithContext(ctx).Model(&model.OrderModel{}).Where("id = ?", transition.OrderID)
	if len(transition.StatusIn) > 0 {
		query = query.Where("status IN ?", transition.StatusIn)
	}
	if len(transition.OrderStatusIn) > 0 {
		query = query.Where("order_status IN ?", transition.OrderStatusIn)
	}

	result := query.Updates(transitionUpdates(transition))
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to apply order transition")
	}
	if result.RowsAffected > 0 {
		return true, nil
	}

	return false, repo.ensureExists(ctx, transition.OrderID)
}

func transitionUpdates(transition repository.Transition) map[string]any {
	updates := map[string]any{"updated_at": time.Now()}
	if transition.Status != "" {
		updates["status"] = string(transition.Status)
	}
	if transition.PaymentMethod != entity.PaymentMethodNone {
		updates["payment_method"] = string(transition.PaymentMethod)
	}
	if transition.PaymentID != "" {
		updates["payment_id"] = transition.PaymentID
	}
	if transition.Signature != "" {
		updates["signature"] = transition.Signature
	}
	if transition.Fulfillment != nil {
		updates["order_status"] = gorm.Expr(
			"CASE WHEN order_status IN ? THEN ? ELSE order_status END",
			transition.Fulfillment.From, string(transition.Fulfillment.To),
		)
	}

	return updates
}

func (repo *orderRepository) AttachGatewayOrder(ctx context.Context, orderID uuid.UUID, gatewayOrderID string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND gateway_order_id IS NULL", orderID).
		Updates(map[string]any{
			"gateway_order_id": gatewayOrderID,
			"updated_at":       time.Now(),
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to attach gateway order")
	}
	if result.RowsAffected > 0 {
		return true, nil
	}

	return false, repo.ensureExists(ctx, orderID)
}

func (repo *orderRepository) ensureExists(ctx context.Context, id uuid.UUID) error {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.OrderModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check order existence")
	}
	if count == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func (repo *orderRepository) findOne(ctx context.Context, failure string, query string, args ...any) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).Where(query, args...).First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, failure)
	}

	return orderM.ToDomain(), nil
}
