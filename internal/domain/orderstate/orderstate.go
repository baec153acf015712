// Package orderstate owns the legal transitions of an order's payment and fulfillment status.
// Every change is expressed as a repository.Transition and applied as a conditional update.
package orderstate

import (
	"context"
	"log/slog"
	"slices"

	"florist/internal/domain/entity"
	domainerrors "florist/internal/domain/errors"
	"florist/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Outcome tells callers whether a transition changed the order.
type Outcome string

const (
	// Applied means the conditional update matched and was written.
	Applied Outcome = "applied"
	// NoOp means the order had already reached the target.
	NoOp Outcome = "noop"
)

// Result is the outcome together with the order as stored afterwards.
type Result struct {
	Outcome Outcome
	Order   *entity.Order
}

var paymentSources = map[entity.PaymentStatus][]entity.PaymentStatus{
	entity.PaymentPaid:      {entity.PaymentPending, entity.PaymentFailed},
	entity.PaymentFailed:    {entity.PaymentPending},
	entity.PaymentCancelled: {entity.PaymentPending, entity.PaymentFailed},
}

var nonTerminalFulfillment = []entity.FulfillmentStatus{
	entity.FulfillmentCreated,
	entity.FulfillmentPlaced,
	entity.FulfillmentShipped,
}

var fulfillmentSources = map[entity.FulfillmentStatus][]entity.FulfillmentStatus{
	entity.FulfillmentPlaced:    {entity.FulfillmentCreated},
	entity.FulfillmentShipped:   {entity.FulfillmentPlaced},
	entity.FulfillmentDelivered: {entity.FulfillmentShipped},
	entity.FulfillmentCancelled: nonTerminalFulfillment,
	entity.FulfillmentReturned:  nonTerminalFulfillment,
}

// PaymentSources lists the payment statuses from which to is reachable.
func PaymentSources(to entity.PaymentStatus) []entity.PaymentStatus {
	return slices.Clone(paymentSources[to])
}

// FulfillmentSources lists the fulfillment statuses from which to is reachable.
func FulfillmentSources(to entity.FulfillmentStatus) []entity.FulfillmentStatus {
	return slices.Clone(fulfillmentSources[to])
}

// CanTransitionPayment reports whether from may move to to.
func CanTransitionPayment(from, to entity.PaymentStatus) bool {
	return slices.Contains(paymentSources[to], from)
}

// CanTransitionFulfillment reports whether from may move to to.
func CanTransitionFulfillment(from, to entity.FulfillmentStatus) bool {
	return slices.Contains(fulfillmentSources[to], from)
}

// MarkPaid records a captured payment and advances fulfillment CREATED to PLACED when advance is set.
func MarkPaid(orderID uuid.UUID, paymentID, signature string, advance bool) repository.Transition {
	t := repository.Transition{
		OrderID:   orderID,
		StatusIn:  PaymentSources(entity.PaymentPaid),
		Status:    entity.PaymentPaid,
		PaymentID: paymentID,
		Signature: signature,
	}
	if advance {
		t.Fulfillment = &repository.FulfillmentChange{
			From: FulfillmentSources(entity.FulfillmentPlaced),
			To:   entity.FulfillmentPlaced,
		}
	}

	return t
}

// MarkFailed records a failed payment attempt.
func MarkFailed(orderID uuid.UUID, paymentID string) repository.Transition {
	return repository.Transition{
		OrderID:   orderID,
		StatusIn:  PaymentSources(entity.PaymentFailed),
		Status:    entity.PaymentFailed,
		PaymentID: paymentID,
	}
}

// SelectPaymentMethod sets the method on a pending order. COD settles the order immediately.
func SelectPaymentMethod(orderID uuid.UUID, method entity.PaymentMethod) repository.Transition {
	t := repository.Transition{
		OrderID:       orderID,
		StatusIn:      []entity.PaymentStatus{entity.PaymentPending},
		PaymentMethod: method,
	}
	if method == entity.PaymentMethodCOD {
		t.Status = entity.PaymentPaid
	}

	return t
}

// Cancel cancels an unpaid order and its fulfillment when that is not yet terminal.
func Cancel(orderID uuid.UUID) repository.Transition {
	return repository.Transition{
		OrderID:  orderID,
		StatusIn: PaymentSources(entity.PaymentCancelled),
		Status:   entity.PaymentCancelled,
		Fulfillment: &repository.FulfillmentChange{
			From: FulfillmentSources(entity.FulfillmentCancelled),
			To:   entity.FulfillmentCancelled,
		},
	}
}

// AdvanceFulfillment moves order_status to to along the admin-driven path.
func AdvanceFulfillment(orderID uuid.UUID, to entity.FulfillmentStatus) (repository.Transition, error) {
	sources := FulfillmentSources(to)
	if len(sources) == 0 {
		return repository.Transition{}, errors.Wrapf(domainerrors.ErrValidationFailed, "order status %q is not a transition target", to)
	}

	return repository.Transition{
		OrderID:       orderID,
		OrderStatusIn: sources,
		Fulfillment:   &repository.FulfillmentChange{From: sources, To: to},
	}, nil
}

// Machine applies transitions through an OrderRepository.
type Machine struct {
	logger *slog.Logger
}

// NewMachine creates a state machine that logs rejected transitions to logger.
func NewMachine(logger *slog.Logger) *Machine {
	return &Machine{logger: logger}
}

// WithLogger returns a copy that logs to logger, typically the request-scoped one.
func (m *Machine) WithLogger(logger *slog.Logger) *Machine {
	if logger == nil {
		return m
	}

	return &Machine{logger: logger}
}

// Apply runs the conditional update. When the guard fails the order is reloaded:
// a reached target is a NoOp, anything else is ErrInvalidStateTransition.
func (m *Machine) Apply(ctx context.Context, orders repository.OrderRepository, t repository.Transition) (*Result, error) {
	applied, err := orders.ApplyTransition(ctx, t)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to apply order transition")
	}

	order, err := orders.FindByID(ctx, t.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to reload order")
	}

	if applied {
		return &Result{Outcome: Applied, Order: order}, nil
	}

	if reached(&t, order) {
		return &Result{Outcome: NoOp, Order: order}, nil
	}

	m.logger.Warn("invalid order state transition",
		slog.String("orderID", order.ID.String()),
		slog.String("status", string(order.Status)),
		slog.String("orderStatus", string(order.OrderStatus)),
		slog.String("targetStatus", string(t.Status)),
		slog.String("targetOrderStatus", targetFulfillment(&t)),
		slog.String("paymentMethod", string(t.PaymentMethod)),
	)

	return nil, errors.Wrapf(domainerrors.ErrInvalidStateTransition,
		"order %s is %s/%s", order.ID, order.Status, order.OrderStatus)
}

// reached reports whether order already shows every primary effect of t.
// The conditional fulfillment advance attached to a payment change is not primary.
func reached(t *repository.Transition, order *entity.Order) bool {
	if t.Status != "" && order.Status != t.Status {
		return false
	}
	if t.PaymentMethod != entity.PaymentMethodNone && order.PaymentMethod != t.PaymentMethod {
		return false
	}
	if t.Status == "" && t.Fulfillment != nil && order.OrderStatus != t.Fulfillment.To {
		return false
	}

	return true
}

func targetFulfillment(t *repository.Transition) string {
	if t.Fulfillment == nil {
		return ""
	}

	return string(t.Fulfillment.To)
}
