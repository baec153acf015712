package impl

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"florist/internal/domain/entity"
	domainerrors "florist/internal/domain/errors"
	"florist/internal/domain/repository"
	"florist/internal/domain/service"
	mockRepo "florist/internal/mocks/repository"
	mockSvc "florist/internal/mocks/service"
	"florist/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_Checkout_ExampleScenario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.fillExampleCart(t)

	order := f.checkout(t, &usecase.CheckoutInput{
		Address:  testAddress(),
		Delivery: &usecase.DeliveryOptionsInput{Type: entity.DeliveryFixed, SameDay: true},
	})

	assert.Equal(t, entity.Rupees(1800), order.TotalAmount)
	require.NotNil(t, order.Delivery)
	assert.Equal(t, entity.Rupees(49), order.Delivery.Fee, "₹1800 is below the same-day threshold")
	assert.Equal(t, "blr-central", order.Delivery.ZoneID)
	assert.Equal(t, entity.Rupees(1849), order.AmountDue())
	assert.Equal(t, entity.PaymentPending, order.Status)
	assert.Equal(t, entity.FulfillmentCreated, order.OrderStatus)
	assert.Equal(t, entity.PaymentMethodNone, order.PaymentMethod)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, testAddress(), order.DeliveryAddress)

	cart, err := f.carts.Get(ctx, f.userID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items, "cart is cleared")
	assert.Positive(t, cart.Version, "cart document survives")

	user, err := f.userRepo.FindByID(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, []entity.Address{testAddress()}, user.Addresses)

	assert.Equal(t, 1, f.publisher.count(service.OrderEventCreated))

	paid, err := f.orders.SelectPaymentMethod(ctx, f.userID, order.ID, entity.PaymentMethodCOD)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPaid, paid.Status)
	assert.Equal(t, entity.FulfillmentCreated, paid.OrderStatus, "COD does not advance fulfillment")
	assert.Equal(t, 1, f.publisher.count(service.OrderEventPaid))
}

func TestOrderService_Checkout_FreeFixedDeliveryAboveThreshold(t *testing.T) {
	f := newFixture(t)
	f.fillExampleCart(t)

	order := f.checkout(t, &usecase.CheckoutInput{
		Address:  testAddress(),
		Delivery: &usecase.DeliveryOptionsInput{Type: entity.DeliveryFixed},
	})

	require.NotNil(t, order.Delivery)
	assert.Equal(t, entity.Money(0), order.Delivery.Fee, "₹1800 reaches the standard threshold")
	assert.Equal(t, entity.Rupees(1800), order.AmountDue())
}

func TestOrderService_Checkout_OrderIsDecoupledFromCart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.fillExampleCart(t)

	order := f.checkout(t, &usecase.CheckoutInput{Address: testAddress()})

	_, err := f.carts.AddSimple(ctx, f.userID, &usecase.AddSimpleItemInput{ProductID: f.rose.ID, Quantity: 5})
	require.NoError(t, err)

	stored, err := f.orders.GetOrder(ctx, f.userID, order.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Items, 2)
	assert.Equal(t, 2, stored.Items[0].Quantity)
	assert.Equal(t, entity.Rupees(1800), stored.TotalAmount)
}

func TestOrderService_Checkout_Rejects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.orders.Checkout(ctx, f.userID, &usecase.CheckoutInput{Address: testAddress()})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "absent cart, got %v", err)

	f.fillExampleCart(t)

	noPincode := testAddress()
	noPincode.Pincode = ""
	tests := []struct {
		name  string
		input *usecase.CheckoutInput
		want  error
	}{
		{name: "nil input", input: nil, want: domainerrors.ErrValidationFailed},
		{name: "missing address", input: &usecase.CheckoutInput{}, want: domainerrors.ErrValidationFailed},
		{name: "missing pincode", input: &usecase.CheckoutInput{Address: noPincode}, want: domainerrors.ErrValidationFailed},
		{
			name:  "unknown delivery type",
			input: &usecase.CheckoutInput{Address: testAddress(), Delivery: &usecase.DeliveryOptionsInput{Type: "drone"}},
			want:  domainerrors.ErrValidationFailed,
		},
		{
			name: "unserved pincode",
			input: &usecase.CheckoutInput{
				Address:  entity.Address{Line1: "1 Elsewhere", Pincode: "110001"},
				Delivery: &usecase.DeliveryOptionsInput{Type: entity.DeliveryFixed},
			},
			want: domainerrors.ErrZoneNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.orders.Checkout(ctx, f.userID, tt.input)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	orders, err := f.orders.ListOrders(ctx, f.userID)
	require.NoError(t, err)
	assert.Empty(t, orders)

	cart, err := f.carts.Get(ctx, f.userID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2, "failed checkouts leave the cart alone")
}

func TestOrderService_Checkout_ReplaysCheckoutToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.fillExampleCart(t)
	input := &usecase.CheckoutInput{Address: testAddress(), CheckoutToken: "idem-1"}

	first := f.checkout(t, input)
	second := f.checkout(t, input)
	assert.Equal(t, first.ID, second.ID)

	orders, err := f.orders.ListOrders(ctx, f.userID)
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	user, err := f.userRepo.FindByID(ctx, f.userID)
	require.NoError(t, err)
	assert.Len(t, user.Addresses, 1)
	assert.Equal(t, 1, f.publisher.count(service.OrderEventCreated))
}

// crashingTxManager fails the cart clear of the first crashes transactions,
// after the address append and the order insert have run.
type crashingTxManager struct {
	inner   repository.TransactionManager
	crashes int
}

type crashingFactory struct {
	repository.RepositoryFactory
}

type crashingCartRepo struct {
	repository.CartRepository
}

var errCrash = errors.New("storage crashed")

func (r *crashingCartRepo) Save(context.Context, *entity.Cart) error {
	return errCrash
}

func (f *crashingFactory) CartRepo() repository.CartRepository {
	return &crashingCartRepo{CartRepository: f.RepositoryFactory.CartRepo()}
}

func (tm *crashingTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return tm.inner.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if tm.crashes > 0 {
			tm.crashes--

			return fn(&crashingFactory{RepositoryFactory: factory})
		}

		return fn(factory)
	})
}

func TestOrderService_Checkout_CrashRollsBackThenRetrySucceeds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.fillExampleCart(t)
	f.build(t, &crashingTxManager{inner: f.txManager, crashes: 1})
	input := &usecase.CheckoutInput{Address: testAddress(), CheckoutToken: "idem-crash"}

	_, err := f.orders.Checkout(ctx, f.userID, input)
	require.ErrorIs(t, err, errCrash)

	user, err := f.userRepo.FindByID(ctx, f.userID)
	require.NoError(t, err)
	assert.Empty(t, user.Addresses)
	orders, err := f.orders.ListOrders(ctx, f.userID)
	require.NoError(t, err)
	assert.Empty(t, orders)
	cart, err := f.carts.Get(ctx, f.userID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
	assert.Zero(t, f.publisher.count(service.OrderEventCreated))

	order := f.checkout(t, input)
	assert.Equal(t, entity.Rupees(1800), order.TotalAmount)

	user, err = f.userRepo.FindByID(ctx, f.userID)
	require.NoError(t, err)
	assert.Len(t, user.Addresses, 1)
	orders, err = f.orders.ListOrders(ctx, f.userID)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestOrderService_SelectPaymentMethod(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.fillExampleCart(t)
	order := f.checkout(t, &usecase.CheckoutInput{Address: testAddress()})

	_, err := f.orders.SelectPaymentMethod(ctx, uuid.New(), order.ID, entity.PaymentMethodCOD)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderOwnershipViolation))

	_, err = f.orders.SelectPaymentMethod(ctx, f.userID, order.ID, "CHEQUE")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = f.orders.SelectPaymentMethod(ctx, f.userID, uuid.New(), entity.PaymentMethodCOD)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))

	online, err := f.orders.SelectPaymentMethod(ctx, f.userID, order.ID, entity.PaymentMethodOnline)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentMethodOnline, online.PaymentMethod)
	assert.Equal(t, entity.PaymentPending, online.Status)

	cod, err := f.orders.SelectPaymentMethod(ctx, f.userID, order.ID, entity.PaymentMethodCOD)
	require.NoError(t, err, "method may change while pending")
	assert.Equal(t, entity.PaymentPaid, cod.Status)

	_, err = f.orders.SelectPaymentMethod(ctx, f.userID, order.ID, entity.PaymentMethodOnline)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStateTransition), "got %v", err)
}

func TestOrderService_GetAndList_RespectOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.fillExampleCart(t)
	order := f.checkout(t, &usecase.CheckoutInput{Address: testAddress()})

	_, err := f.orders.GetOrder(ctx, uuid.New(), order.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderOwnershipViolation))

	orders, err := f.orders.ListOrders(ctx, uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestOrderService_AdvanceFulfillment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.fillExampleCart(t)
	order := f.checkout(t, &usecase.CheckoutInput{Address: testAddress()})

	_, err := f.orders.AdvanceFulfillment(ctx, order.ID, entity.FulfillmentShipped)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStateTransition), "cannot skip PLACED")

	_, err = f.orders.AdvanceFulfillment(ctx, order.ID, entity.FulfillmentCreated)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	for _, to := range []entity.FulfillmentStatus{entity.FulfillmentPlaced, entity.FulfillmentShipped, entity.FulfillmentDelivered} {
		updated, err := f.orders.AdvanceFulfillment(ctx, order.ID, to)
		require.NoError(t, err, to)
		assert.Equal(t, to, updated.OrderStatus)
	}
	assert.Equal(t, 3, f.publisher.count(service.OrderEventFulfillment))

	same, err := f.orders.AdvanceFulfillment(ctx, order.ID, entity.FulfillmentDelivered)
	require.NoError(t, err, "re-applying the reached state is a no-op")
	assert.Equal(t, entity.FulfillmentDelivered, same.OrderStatus)
	assert.Equal(t, 3, f.publisher.count(service.OrderEventFulfillment))

	_, err = f.orders.AdvanceFulfillment(ctx, order.ID, entity.FulfillmentReturned)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStateTransition), "DELIVERED is terminal")
}

func TestOrderService_CancelOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.fillExampleCart(t)
	order := f.checkout(t, &usecase.CheckoutInput{Address: testAddress()})

	cancelled, err := f.orders.CancelOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentCancelled, cancelled.Status)
	assert.Equal(t, entity.FulfillmentCancelled, cancelled.OrderStatus)
	assert.Equal(t, 1, f.publisher.count(service.OrderEventCancelled))

	_, err = f.orders.SelectPaymentMethod(ctx, f.userID, order.ID, entity.PaymentMethodCOD)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStateTransition))

	f.fillExampleCart(t)
	paidOrder := f.checkout(t, &usecase.CheckoutInput{Address: testAddress()})
	_, err = f.orders.SelectPaymentMethod(ctx, f.userID, paidOrder.ID, entity.PaymentMethodCOD)
	require.NoError(t, err)

	_, err = f.orders.CancelOrder(ctx, paidOrder.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStateTransition), "PAID is terminal")

	_, err = f.orders.CancelOrder(ctx, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_Checkout_LogLevelFollowsErrorKind(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	newService := func(txManager repository.TransactionManager) usecase.OrderUsecase {
		return NewOrderService(OrderServiceParams{
			TxManager:      txManager,
			OrderRepo:      f.orderRepo,
			EventPublisher: f.publisher,
			Logger:         logger,
		})
	}

	_, err := newService(f.txManager).Checkout(ctx, f.userID, &usecase.CheckoutInput{Address: testAddress()})
	require.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "got %v", err)
	assert.Contains(t, buf.String(), "Checkout rejected")
	assert.NotContains(t, buf.String(), "level=ERROR", "an empty cart is the caller's problem")

	buf.Reset()
	f.fillExampleCart(t)
	_, err = newService(&crashingTxManager{inner: f.txManager, crashes: 1}).Checkout(ctx, f.userID, &usecase.CheckoutInput{Address: testAddress()})
	require.ErrorIs(t, err, errCrash)
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "Failed to execute checkout transaction")
}

// mockedCheckout wires an order service whose transaction runs against mocked repositories.
type mockedCheckout struct {
	service   usecase.OrderUsecase
	orders    *mockRepo.MockOrderRepository
	carts     *mockRepo.MockCartRepository
	users     *mockRepo.MockUserRepository
	publisher *mockSvc.MockEventPublisher
}

func newMockedCheckout(t *testing.T) *mockedCheckout {
	t.Helper()

	m := &mockedCheckout{
		orders:    mockRepo.NewMockOrderRepository(t),
		carts:     mockRepo.NewMockCartRepository(t),
		users:     mockRepo.NewMockUserRepository(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().OrderRepo().Return(m.orders).Maybe()
	factory.EXPECT().CartRepo().Return(m.carts).Maybe()
	factory.EXPECT().UserRepo().Return(m.users).Maybe()

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	m.service = NewOrderService(OrderServiceParams{
		TxManager:      txManager,
		OrderRepo:      m.orders,
		EventPublisher: m.publisher,
		Logger:         newDiscardLogger(),
	})

	return m
}

func filledCart(t *testing.T, userID uuid.UUID) *entity.Cart {
	t.Helper()

	cart := entity.NewCart(userID)
	_, err := cart.AddSimple(&entity.Product{ID: uuid.New(), Name: "Red Rose Bouquet"}, "", 2, entity.Rupees(500))
	require.NoError(t, err)
	cart.Version = 3

	return cart
}

func TestOrderService_Checkout_TokenCollisionReplaysWinner(t *testing.T) {
	m := newMockedCheckout(t)
	ctx := context.Background()
	userID := uuid.New()
	winner := &entity.Order{ID: uuid.New(), UserID: userID, CheckoutToken: "idem-race", TotalAmount: entity.Rupees(1000)}

	m.orders.EXPECT().FindByCheckoutToken(ctx, userID, "idem-race").Return(nil, repository.ErrOrderNotFound).Once()
	m.carts.EXPECT().FindByUser(ctx, userID).Return(filledCart(t, userID), nil).Once()
	m.users.EXPECT().AppendAddress(ctx, userID, testAddress()).Return(nil).Once()
	m.orders.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(repository.ErrDuplicateCheckoutToken).Once()
	m.orders.EXPECT().FindByCheckoutToken(ctx, userID, "idem-race").Return(winner, nil).Once()

	order, err := m.service.Checkout(ctx, userID, &usecase.CheckoutInput{Address: testAddress(), CheckoutToken: "idem-race"})
	require.NoError(t, err)
	assert.Equal(t, winner.ID, order.ID)
	m.publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
}

func TestOrderService_Checkout_PublishFailureIsNotReturned(t *testing.T) {
	m := newMockedCheckout(t)
	ctx := context.Background()
	userID := uuid.New()

	m.carts.EXPECT().FindByUser(ctx, userID).Return(filledCart(t, userID), nil).Once()
	m.users.EXPECT().AppendAddress(ctx, userID, testAddress()).Return(nil).Once()
	m.orders.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil).Once()
	m.carts.EXPECT().Save(ctx, mock.MatchedBy(func(c *entity.Cart) bool { return c.IsEmpty() })).Return(nil).Once()
	m.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.MatchedBy(func(e *service.OrderEvent) bool {
		return e.Type == service.OrderEventCreated && e.AmountPaise == entity.Rupees(1000).Paise()
	})).Return(errors.New("broker down")).Once()

	order, err := m.service.Checkout(ctx, userID, &usecase.CheckoutInput{Address: testAddress()})
	require.NoError(t, err)
	assert.Equal(t, entity.Rupees(1000), order.TotalAmount)
	assert.Equal(t, entity.PaymentPending, order.Status)
}
