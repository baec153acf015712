package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"florist/config"
	deliverycontext "florist/internal/delivery/context"
	"florist/internal/domain/entity"
	domainerrors "florist/internal/domain/errors"
	"florist/internal/domain/orderstate"
	"florist/internal/domain/repository"
	"florist/internal/domain/service"
	"florist/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Gateway webhook events this service reconciles.
const (
	webhookPaymentCaptured = "payment.captured"
	webhookPaymentFailed   = "payment.failed"
)

// Webhook outcomes reported back to the caller.
const (
	webhookOutcomeApplied = "applied"
	webhookOutcomeNoOp    = "noop"
	webhookOutcomeIgnored = "ignored"
)

const intentLockPrefix = "payment-intent:"

type webhookPayload struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
				Status  string `json:"status"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

type paymentService struct {
	orderRepo repository.OrderRepository
	gateway   service.PaymentGateway
	verifier  service.SignatureVerifier
	locker    service.IntentLocker
	machine   *orderstate.Machine
	events    *orderEventPublisher
	currency  string
	lockTTL   time.Duration
	logger    *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	OrderRepo      repository.OrderRepository
	Gateway        service.PaymentGateway
	Verifier       service.SignatureVerifier
	Locker         service.IntentLocker
	EventPublisher service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	srv := &paymentService{
		orderRepo: params.OrderRepo,
		gateway:   params.Gateway,
		verifier:  params.Verifier,
		locker:    params.Locker,
		machine:   orderstate.NewMachine(params.Logger),
		events:    &orderEventPublisher{publisher: params.EventPublisher, logger: params.Logger},
		currency:  "INR",
		lockTTL:   30 * time.Second,
		logger:    params.Logger,
	}
	if params.Config != nil && params.Config.Payment != nil {
		if params.Config.Payment.Currency != "" {
			srv.currency = params.Config.Payment.Currency
		}
		if params.Config.Payment.IntentLockTTL > 0 {
			srv.lockTTL = params.Config.Payment.IntentLockTTL
		}
	}

	return srv
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateIntent registers the order at the gateway once and returns what the checkout widget needs
func (srv *paymentService) CreateIntent(ctx context.Context, userID, orderID uuid.UUID) (*usecase.PaymentIntent, error) {
	order, err := srv.findOwnedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if err := checkPayable(order); err != nil {
		return nil, err
	}
	if order.PaymentInfo.GatewayOrderID != "" {
		return srv.intentFor(order, order.PaymentInfo.GatewayOrderID), nil
	}

	release, acquired, err := srv.locker.Acquire(ctx, intentLockPrefix+orderID.String(), srv.lockTTL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to acquire payment intent lock")
	}
	if !acquired {
		return nil, domainerrors.ErrPaymentIntentInProgress.WrapMessage("payment intent already in progress for order " + orderID.String())
	}
	defer func() {
		if releaseErr := release(context.WithoutCancel(ctx)); releaseErr != nil {
			srv.log(ctx).Warn("Failed to release payment intent lock", slog.String("orderID", orderID.String()), slog.Any("error", releaseErr))
		}
	}()

	// A previous holder may have attached an id while we waited.
	order, err = srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.PaymentInfo.GatewayOrderID != "" {
		return srv.intentFor(order, order.PaymentInfo.GatewayOrderID), nil
	}

	gatewayOrder, err := srv.gateway.CreateOrder(ctx, service.CreateGatewayOrderRequest{
		AmountMinor: order.AmountDue().Paise(),
		Currency:    srv.currency,
		Receipt:     order.ID.String(),
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create gateway order", slog.String("orderID", orderID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create gateway order")
	}

	attached, err := srv.orderRepo.AttachGatewayOrder(ctx, order.ID, gatewayOrder.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to attach gateway order")
	}
	if !attached {
		current, err := srv.findOrder(ctx, orderID)
		if err != nil {
			return nil, err
		}
		srv.log(ctx).Warn("Gateway order already attached, discarding new one",
			slog.String("orderID", orderID.String()),
			slog.String("discardedGatewayOrderID", gatewayOrder.ID),
		)

		return srv.intentFor(current, current.PaymentInfo.GatewayOrderID), nil
	}

	srv.log(ctx).Info("Payment intent created", slog.String("orderID", orderID.String()), slog.String("gatewayOrderID", gatewayOrder.ID))

	return srv.intentFor(order, gatewayOrder.ID), nil
}

// Verify checks the client-side checkout signature and marks the order paid
func (srv *paymentService) Verify(ctx context.Context, userID uuid.UUID, input *usecase.VerifyPaymentInput) (*entity.Order, error) {
	if input == nil || input.GatewayOrderID == "" || input.PaymentID == "" || input.Signature == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("gateway_order_id, payment_id and signature are required")
	}

	order, err := srv.findOwnedOrder(ctx, userID, input.OrderID)
	if err != nil {
		return nil, err
	}
	if order.PaymentMethod != entity.PaymentMethodOnline {
		return nil, domainerrors.ErrInvalidStateTransition.WrapMessage("order is not set up for online payment")
	}
	if order.PaymentInfo.GatewayOrderID == "" || order.PaymentInfo.GatewayOrderID != input.GatewayOrderID {
		return nil, domainerrors.ErrPaymentOrderMismatch.WrapMessage("gateway order does not match order " + order.ID.String())
	}

	if !srv.verifier.VerifyPaymentSignature(input.GatewayOrderID, input.PaymentID, input.Signature) {
		srv.log(ctx).Warn("Payment signature mismatch",
			slog.String("orderID", order.ID.String()),
			slog.String("gatewayOrderID", input.GatewayOrderID),
			slog.String("paymentID", input.PaymentID),
		)

		return nil, domainerrors.ErrPaymentSignatureInvalid.WrapMessage("signature does not match payment")
	}

	result, err := srv.machine.WithLogger(srv.log(ctx)).Apply(ctx, srv.orderRepo, orderstate.MarkPaid(order.ID, input.PaymentID, input.Signature, true))
	if err != nil {
		return nil, err
	}
	if result.Outcome == orderstate.Applied {
		srv.log(ctx).Info("Payment verified", slog.String("orderID", order.ID.String()), slog.String("paymentID", input.PaymentID))
		srv.events.publish(ctx, service.OrderEventPaid, result.Order)
	}

	return result.Order, nil
}

// HandleWebhook reconciles a signed gateway notification with the order it references
func (srv *paymentService) HandleWebhook(ctx context.Context, rawBody []byte, signature string) (*usecase.WebhookResult, error) {
	if signature == "" || !srv.verifier.VerifyWebhookSignature(rawBody, signature) {
		srv.log(ctx).Warn("Webhook signature mismatch", slog.Int("bodyBytes", len(rawBody)))

		return nil, domainerrors.ErrWebhookSignatureInvalid.WrapMessage("webhook signature does not match body")
	}

	var payload webhookPayload
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "malformed webhook body")
	}

	result := &usecase.WebhookResult{Event: payload.Event, Outcome: webhookOutcomeIgnored}
	payment := payload.Payload.Payment.Entity
	if payment.OrderID == "" || (payload.Event != webhookPaymentCaptured && payload.Event != webhookPaymentFailed) {
		srv.log(ctx).Debug("Webhook ignored", slog.String("event", payload.Event))

		return result, nil
	}

	order, err := srv.orderRepo.FindByGatewayOrderID(ctx, payment.OrderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		srv.log(ctx).Info("Webhook for unknown gateway order", slog.String("event", payload.Event), slog.String("gatewayOrderID", payment.OrderID))

		return result, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order by gateway order id")
	}
	result.OrderID = order.ID.String()

	var (
		transition = orderstate.MarkFailed(order.ID, payment.ID)
		eventType  = service.OrderEventPaymentFailed
	)
	if payload.Event == webhookPaymentCaptured {
		transition = orderstate.MarkPaid(order.ID, payment.ID, "", true)
		eventType = service.OrderEventPaid
	}

	// PAID and CANCELLED are terminal, so a stale snapshot still rules the event out.
	if !transition.Admits(order) && order.Status != transition.Status {
		srv.log(ctx).Info("Webhook superseded by order state",
			slog.String("event", payload.Event),
			slog.String("orderID", order.ID.String()),
			slog.String("status", string(order.Status)),
		)

		return result, nil
	}

	applied, err := srv.machine.WithLogger(srv.log(ctx)).Apply(ctx, srv.orderRepo, transition)
	if errors.Is(err, domainerrors.ErrInvalidStateTransition) {
		// Late or out-of-order notification; acknowledge so the gateway stops retrying.
		return result, nil
	}
	if err != nil {
		return nil, err
	}

	if applied.Outcome == orderstate.NoOp {
		result.Outcome = webhookOutcomeNoOp

		return result, nil
	}

	result.Outcome = webhookOutcomeApplied
	srv.log(ctx).Info("Webhook applied",
		slog.String("event", payload.Event),
		slog.String("orderID", order.ID.String()),
		slog.String("status", string(applied.Order.Status)),
	)
	srv.events.publish(ctx, eventType, applied.Order)

	return result, nil
}

func (srv *paymentService) intentFor(order *entity.Order, gatewayOrderID string) *usecase.PaymentIntent {
	return &usecase.PaymentIntent{
		OrderID:        order.ID,
		GatewayOrderID: gatewayOrderID,
		Amount:         order.AmountDue(),
		Currency:       srv.currency,
		KeyID:          srv.gateway.KeyID(),
	}
}

func checkPayable(order *entity.Order) error {
	if order.PaymentMethod != entity.PaymentMethodOnline {
		return domainerrors.ErrInvalidStateTransition.WrapMessage("select ONLINE payment before creating a payment intent")
	}
	if order.Status == entity.PaymentPaid || order.Status == entity.PaymentCancelled {
		return errors.Wrapf(domainerrors.ErrInvalidStateTransition, "order %s is %s", order.ID, order.Status)
	}

	return nil
}

func (srv *paymentService) findOwnedOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
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

func (srv *paymentService) findOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("order " + orderID.String() + " not found")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}
