package impl

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "florist/internal/delivery/context"
	"florist/internal/domain/entity"
	domainerrors "florist/internal/domain/errors"
	"florist/internal/domain/orderstate"
	"florist/internal/domain/pricing"
	"florist/internal/domain/repository"
	"florist/internal/domain/service"
	"florist/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	machine   *orderstate.Machine
	events    *orderEventPublisher
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	OrderRepo      repository.OrderRepository
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		machine:   orderstate.NewMachine(params.Logger),
		events:    &orderEventPublisher{publisher: params.EventPublisher, logger: params.Logger},
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout converts the cart into a pending order in one storage transaction
func (srv *orderService) Checkout(ctx context.Context, userID uuid.UUID, input *usecase.CheckoutInput) (*entity.Order, error) {
	if err := validateCheckout(input); err != nil {
		return nil, err
	}

	var (
		order   *entity.Order
		created bool
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// Mongo may rerun this closure on transient errors.
		order, created = nil, false

		orderRepo := repoFactory.OrderRepo()
		if input.CheckoutToken != "" {
			existing, err := orderRepo.FindByCheckoutToken(ctx, userID, input.CheckoutToken)
			if err == nil {
				order = existing

				return nil
			}
			if !errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(err, "failed to find order by checkout token")
			}
		}

		placed, err := srv.placeOrder(ctx, repoFactory, userID, input)
		if err != nil {
			return err
		}
		order, created = placed, true

		return nil
	})

	if errors.Is(err, repository.ErrDuplicateCheckoutToken) {
		// A concurrent retry with the same token committed first.
		return srv.replayCheckout(ctx, userID, input.CheckoutToken)
	}
	if err != nil {
		if isClientError(err) {
			srv.log(ctx).Info("Checkout rejected", slog.String("userID", userID.String()), slog.Any("error", err))
		} else {
			srv.log(ctx).Error("Failed to execute checkout transaction", slog.String("userID", userID.String()), slog.Any("error", err))
		}

		return nil, errors.Wrap(err, "failed to execute checkout transaction")
	}

	if created {
		srv.log(ctx).Info("Order created",
			slog.String("orderID", order.ID.String()),
			slog.String("userID", userID.String()),
			slog.String("amount", order.AmountDue().String()),
		)
		srv.events.publish(ctx, service.OrderEventCreated, order)
	}

	return order, nil
}

// placeOrder runs steps that must commit together: address append, order insert, cart clear
func (srv *orderService) placeOrder(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID, input *usecase.CheckoutInput) (*entity.Order, error) {
	cart, err := repoFactory.CartRepo().FindByUser(ctx, userID)
	if errors.Is(err, repository.ErrCartNotFound) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("cart is empty")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart")
	}
	if cart.IsEmpty() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("cart is empty")
	}

	totalAmount, err := cart.Total()
	if err != nil {
		return nil, err
	}

	var charge *entity.DeliveryCharge
	if input.Delivery != nil {
		charge, err = srv.deliveryCharge(ctx, repoFactory.ZoneRepo(), input.Address.Pincode, input.Delivery, totalAmount)
		if err != nil {
			return nil, err
		}
		if _, err := totalAmount.Add(charge.Fee); err != nil {
			return nil, err
		}
	}

	if err := repoFactory.UserRepo().AppendAddress(ctx, userID, input.Address); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user " + userID.String() + " not found")
		}

		return nil, errors.Wrap(err, "failed to append address")
	}

	now := time.Now().UTC()
	order := &entity.Order{
		ID:              uuid.New(),
		UserID:          userID,
		CheckoutToken:   input.CheckoutToken,
		Items:           cart.Snapshot(),
		DeliveryAddress: input.Address,
		Delivery:        charge,
		TotalAmount:     totalAmount,
		PaymentMethod:   entity.PaymentMethodNone,
		Status:          entity.PaymentPending,
		OrderStatus:     entity.FulfillmentCreated,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
		if errors.Is(err, repository.ErrDuplicateCheckoutToken) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to create order")
	}

	cart.Clear()
	if err := repoFactory.CartRepo().Save(ctx, cart); err != nil {
		if errors.Is(err, repository.ErrCartVersionConflict) {
			return nil, domainerrors.ErrCartConflict.WrapMessage("cart changed during checkout")
		}

		return nil, errors.Wrap(err, "failed to clear cart")
	}

	return order, nil
}

func (srv *orderService) deliveryCharge(ctx context.Context, zoneRepo repository.ZoneRepository, pincode string, options *usecase.DeliveryOptionsInput, subtotal entity.Money) (*entity.DeliveryCharge, error) {
	zone, err := zoneRepo.FindByPincode(ctx, pincode)
	if err != nil {
		if errors.Is(err, repository.ErrZoneNotFound) {
			return nil, domainerrors.ErrZoneNotFound.WrapMessage("no active zone serves pincode " + pincode)
		}

		return nil, errors.Wrap(err, "failed to find delivery zone")
	}

	fee, err := pricing.ResolveDeliveryFee(zone, options.Type, subtotal, options.SameDay)
	if err != nil {
		return nil, err
	}

	return &entity.DeliveryCharge{
		Pincode: pincode,
		ZoneID:  zone.ZoneID,
		Type:    options.Type,
		SameDay: options.SameDay,
		Fee:     fee,
	}, nil
}

func (srv *orderService) replayCheckout(ctx context.Context, userID uuid.UUID, token string) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByCheckoutToken(ctx, userID, token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order by checkout token")
	}

	return order, nil
}

func validateCheckout(input *usecase.CheckoutInput) error {
	if input == nil || input.Address.IsZero() {
		return domainerrors.ErrValidationFailed.WrapMessage("delivery address is required")
	}
	if input.Address.Pincode == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("delivery address pincode is required")
	}
	if input.Delivery != nil && !input.Delivery.Type.IsValid() {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown delivery type %q", input.Delivery.Type)
	}

	return nil
}

// SelectPaymentMethod records the customer's choice on a pending order; COD settles it immediately
func (srv *orderService) SelectPaymentMethod(ctx context.Context, userID, orderID uuid.UUID, method entity.PaymentMethod) (*entity.Order, error) {
	if !method.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown payment method %q", method)
	}
	if _, err := srv.GetOrder(ctx, userID, orderID); err != nil {
		return nil, err
	}

	result, err := srv.machine.WithLogger(srv.log(ctx)).Apply(ctx, srv.orderRepo, orderstate.SelectPaymentMethod(orderID, method))
	if err != nil {
		return nil, err
	}

	if result.Outcome == orderstate.Applied && result.Order.Status == entity.PaymentPaid {
		srv.events.publish(ctx, service.OrderEventPaid, result.Order)
	}

	return result.Order, nil
}

// GetOrder returns an order owned by userID
func (srv *orderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.IsOwnedBy(userID) {
		srv.log(ctx).Warn("Order ownership violation", slog.String("orderID", orderID.String()), slog.String("userID", userID.String()))

		return nil, domainerrors.ErrOrderOwnershipViolation.WrapMessage("order belongs to another user")
	}

	return order, nil
}

// ListOrders returns the user's orders, newest first
func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}
	if orders == nil {
		orders = []*entity.Order{}
	}

	return orders, nil
}

// AdvanceFulfillment moves order_status along the back-office path
func (srv *orderService) AdvanceFulfillment(ctx context.Context, orderID uuid.UUID, to entity.FulfillmentStatus) (*entity.Order, error) {
	transition, err := orderstate.AdvanceFulfillment(orderID, to)
	if err != nil {
		return nil, err
	}

	result, err := srv.machine.WithLogger(srv.log(ctx)).Apply(ctx, srv.orderRepo, transition)
	if err != nil {
		return nil, err
	}

	if result.Outcome == orderstate.Applied {
		srv.log(ctx).Info("Order fulfillment changed", slog.String("orderID", orderID.String()), slog.String("orderStatus", string(to)))
		srv.events.publish(ctx, service.OrderEventFulfillment, result.Order)
	}

	return result.Order, nil
}

// CancelOrder cancels an unpaid order
func (srv *orderService) CancelOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	result, err := srv.machine.WithLogger(srv.log(ctx)).Apply(ctx, srv.orderRepo, orderstate.Cancel(orderID))
	if err != nil {
		return nil, err
	}

	if result.Outcome == orderstate.Applied {
		srv.log(ctx).Info("Order cancelled", slog.String("orderID", orderID.String()))
		srv.events.publish(ctx, service.OrderEventCancelled, result.Order)
	}

	return result.Order, nil
}

func (srv *orderService) findOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("order " + orderID.String() + " not found")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// isClientError reports whether err maps to a 4xx response.
func isClientError(err error) bool {
	var appErr domainerrors.AppError

	return errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError
}
