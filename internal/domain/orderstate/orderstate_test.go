package orderstate

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"florist/internal/domain/entity"
	domainerrors "florist/internal/domain/errors"
	"florist/internal/domain/repository"
	mockRepo "florist/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func orderWith(status entity.PaymentStatus, orderStatus entity.FulfillmentStatus) *entity.Order {
	return &entity.Order{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Status:      status,
		OrderStatus: orderStatus,
	}
}

func TestPaymentTransitionTable(t *testing.T) {
	all := []entity.PaymentStatus{entity.PaymentPending, entity.PaymentFailed, entity.PaymentPaid, entity.PaymentCancelled}
	legal := map[[2]entity.PaymentStatus]bool{
		{entity.PaymentPending, entity.PaymentPaid}:      true,
		{entity.PaymentPending, entity.PaymentFailed}:    true,
		{entity.PaymentFailed, entity.PaymentPaid}:       true,
		{entity.PaymentPending, entity.PaymentCancelled}: true,
		{entity.PaymentFailed, entity.PaymentCancelled}:  true,
	}

	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, legal[[2]entity.PaymentStatus{from, to}], CanTransitionPayment(from, to), "%s -> %s", from, to)
		}
	}
}

func TestFulfillmentTransitionTable(t *testing.T) {
	assert.True(t, CanTransitionFulfillment(entity.FulfillmentCreated, entity.FulfillmentPlaced))
	assert.True(t, CanTransitionFulfillment(entity.FulfillmentPlaced, entity.FulfillmentShipped))
	assert.True(t, CanTransitionFulfillment(entity.FulfillmentShipped, entity.FulfillmentDelivered))
	assert.False(t, CanTransitionFulfillment(entity.FulfillmentCreated, entity.FulfillmentShipped))

	for _, from := range []entity.FulfillmentStatus{entity.FulfillmentCreated, entity.FulfillmentPlaced, entity.FulfillmentShipped} {
		assert.True(t, CanTransitionFulfillment(from, entity.FulfillmentCancelled), from)
		assert.True(t, CanTransitionFulfillment(from, entity.FulfillmentReturned), from)
	}
	for _, terminal := range []entity.FulfillmentStatus{entity.FulfillmentDelivered, entity.FulfillmentCancelled, entity.FulfillmentReturned} {
		for _, to := range []entity.FulfillmentStatus{entity.FulfillmentPlaced, entity.FulfillmentShipped, entity.FulfillmentDelivered, entity.FulfillmentCancelled, entity.FulfillmentReturned} {
			assert.False(t, CanTransitionFulfillment(terminal, to), "%s -> %s", terminal, to)
		}
	}
}

func TestTransitionBuilders_GuardAndEffect(t *testing.T) {
	id := uuid.New()

	paid := MarkPaid(id, "pay_1", "sig", true)
	assert.True(t, paid.Admits(orderWith(entity.PaymentPending, entity.FulfillmentCreated)))
	assert.True(t, paid.Admits(orderWith(entity.PaymentFailed, entity.FulfillmentCreated)))
	assert.False(t, paid.Admits(orderWith(entity.PaymentPaid, entity.FulfillmentPlaced)))
	assert.False(t, paid.Admits(orderWith(entity.PaymentCancelled, entity.FulfillmentCancelled)))

	order := orderWith(entity.PaymentPending, entity.FulfillmentCreated)
	paid.ApplyTo(order)
	assert.Equal(t, entity.PaymentPaid, order.Status)
	assert.Equal(t, entity.FulfillmentPlaced, order.OrderStatus)
	assert.Equal(t, "pay_1", order.PaymentInfo.PaymentID)

	shipped := orderWith(entity.PaymentPending, entity.FulfillmentShipped)
	paid.ApplyTo(shipped)
	assert.Equal(t, entity.FulfillmentShipped, shipped.OrderStatus, "advance only applies from CREATED")

	cod := SelectPaymentMethod(id, entity.PaymentMethodCOD)
	order = orderWith(entity.PaymentPending, entity.FulfillmentCreated)
	require.True(t, cod.Admits(order))
	cod.ApplyTo(order)
	assert.Equal(t, entity.PaymentPaid, order.Status)
	assert.Equal(t, entity.FulfillmentCreated, order.OrderStatus)
	assert.False(t, cod.Admits(orderWith(entity.PaymentFailed, entity.FulfillmentCreated)))

	cancel := Cancel(id)
	order = orderWith(entity.PaymentFailed, entity.FulfillmentPlaced)
	require.True(t, cancel.Admits(order))
	cancel.ApplyTo(order)
	assert.Equal(t, entity.PaymentCancelled, order.Status)
	assert.Equal(t, entity.FulfillmentCancelled, order.OrderStatus)

	_, err := AdvanceFulfillment(id, entity.FulfillmentCreated)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestMachine_Apply_Applied(t *testing.T) {
	orders := mockRepo.NewMockOrderRepository(t)
	machine := NewMachine(newDiscardLogger())
	ctx := context.Background()
	order := orderWith(entity.PaymentPaid, entity.FulfillmentPlaced)
	transition := MarkPaid(order.ID, "pay_1", "sig", true)

	orders.EXPECT().ApplyTransition(ctx, transition).Return(true, nil)
	orders.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	result, err := machine.Apply(ctx, orders, transition)
	require.NoError(t, err)
	assert.Equal(t, Applied, result.Outcome)
	assert.Same(t, order, result.Order)
}

func TestMachine_Apply_NoOpWhenTargetReached(t *testing.T) {
	orders := mockRepo.NewMockOrderRepository(t)
	machine := NewMachine(newDiscardLogger())
	ctx := context.Background()
	order := orderWith(entity.PaymentPaid, entity.FulfillmentPlaced)
	order.PaymentInfo.PaymentID = "pay_first"

	orders.EXPECT().ApplyTransition(ctx, mock.AnythingOfType("repository.Transition")).Return(false, nil)
	orders.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	result, err := machine.Apply(ctx, orders, MarkPaid(order.ID, "pay_second", "sig", true))
	require.NoError(t, err)
	assert.Equal(t, NoOp, result.Outcome)
	assert.Equal(t, "pay_first", result.Order.PaymentInfo.PaymentID)
}

func TestMachine_Apply_InvalidState(t *testing.T) {
	tests := []struct {
		name       string
		current    *entity.Order
		transition func(id uuid.UUID) repository.Transition
	}{
		{
			name:       "fail after paid",
			current:    orderWith(entity.PaymentPaid, entity.FulfillmentPlaced),
			transition: func(id uuid.UUID) repository.Transition { return MarkFailed(id, "pay_x") },
		},
		{
			name:       "pay a cancelled order",
			current:    orderWith(entity.PaymentCancelled, entity.FulfillmentCancelled),
			transition: func(id uuid.UUID) repository.Transition { return MarkPaid(id, "pay_x", "sig", true) },
		},
		{
			name:    "ship before placed",
			current: orderWith(entity.PaymentPaid, entity.FulfillmentCreated),
			transition: func(id uuid.UUID) repository.Transition {
				tr, _ := AdvanceFulfillment(id, entity.FulfillmentShipped)

				return tr
			},
		},
		{
			name:       "switch method after COD",
			current:    &entity.Order{ID: uuid.New(), Status: entity.PaymentPaid, PaymentMethod: entity.PaymentMethodCOD},
			transition: func(id uuid.UUID) repository.Transition { return SelectPaymentMethod(id, entity.PaymentMethodOnline) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := mockRepo.NewMockOrderRepository(t)
			machine := NewMachine(newDiscardLogger())
			ctx := context.Background()

			orders.EXPECT().ApplyTransition(ctx, mock.AnythingOfType("repository.Transition")).Return(false, nil)
			orders.EXPECT().FindByID(ctx, tt.current.ID).Return(tt.current, nil)

			result, err := machine.Apply(ctx, orders, tt.transition(tt.current.ID))
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidStateTransition), "got %v", err)
		})
	}
}

func TestMachine_Apply_OrderNotFound(t *testing.T) {
	orders := mockRepo.NewMockOrderRepository(t)
	machine := NewMachine(newDiscardLogger())
	ctx := context.Background()
	id := uuid.New()

	orders.EXPECT().ApplyTransition(ctx, mock.AnythingOfType("repository.Transition")).Return(false, repository.ErrOrderNotFound)

	_, err := machine.Apply(ctx, orders, Cancel(id))
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}
