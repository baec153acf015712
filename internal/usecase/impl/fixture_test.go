package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"florist/config"
	"florist/internal/domain/entity"
	"florist/internal/domain/repository"
	"florist/internal/domain/service"
	"florist/internal/infra/lock"
	"florist/internal/infra/payment/razorpay"
	"florist/internal/infra/persistence/memory"
	mockSvc "florist/internal/mocks/service"
	"florist/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const (
	testKeySecret     = "key_secret_test"
	testWebhookSecret = "webhook_secret_test"
	testPincode       = "560001"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Payment: &config.PaymentConfig{
			Provider:      "razorpay",
			KeyID:         "rzp_test_key",
			KeySecret:     testKeySecret,
			WebhookSecret: testWebhookSecret,
			Currency:      "INR",
		},
		Pricing: &config.PricingConfig{ComboDiscountPercentage: 20},
	}
}

// fixture wires the services over one in-memory store.
type fixture struct {
	store     *memory.Store
	userID    uuid.UUID
	rose      *entity.Product // flat ₹500
	orchid    *entity.Product // sized
	lily      *entity.Product // inactive
	publisher *recordingPublisher
	gateway   *mockSvc.MockPaymentGateway

	carts    usecase.CartUsecase
	orders   usecase.OrderUsecase
	payments usecase.PaymentUsecase
	delivery usecase.DeliveryUsecase

	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	cartRepo  repository.CartRepository
	txManager repository.TransactionManager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memory.NewStore()
	f := &fixture{
		store:  store,
		userID: uuid.New(),
		rose:   &entity.Product{ID: uuid.New(), Name: "Red Rose Bouquet", Price: entity.Rupees(500), IsActive: true},
		orchid: &entity.Product{ID: uuid.New(), Name: "Orchid Arrangement", IsActive: true, Pricing: map[entity.Size]entity.Money{
			entity.SizeSmall:  entity.Rupees(800),
			entity.SizeMedium: entity.Rupees(1200),
		}},
		lily:      &entity.Product{ID: uuid.New(), Name: "Seasonal Lilies", Price: entity.Rupees(650)},
		publisher: &recordingPublisher{},
		gateway:   mockSvc.NewMockPaymentGateway(t),
	}
	store.PutUser(&entity.User{ID: f.userID, Name: "Asha Rao", Email: "asha@example.com"})
	store.PutProduct(f.rose)
	store.PutProduct(f.orchid)
	store.PutProduct(f.lily)
	store.PutZone(&entity.DeliveryZone{
		ZoneID:   "blr-central",
		Name:     "Bengaluru Central",
		Pincodes: []string{testPincode},
		Pricing: entity.DeliveryPricing{
			FixedTime: entity.Rupees(49),
			Midnight:  entity.Rupees(199),
			Express:   entity.Rupees(149),
		},
		IsActive: true,
	})

	f.orderRepo = memory.NewOrderRepository(store)
	f.userRepo = memory.NewUserRepository(store)
	f.cartRepo = memory.NewCartRepository(store)
	f.txManager = memory.NewTransactionManager(store)
	f.build(t, f.txManager)

	return f
}

// build (re)creates the services, letting tests swap the transaction manager.
func (f *fixture) build(t *testing.T, txManager repository.TransactionManager) {
	t.Helper()

	cfg := newTestConfig()
	logger := newDiscardLogger()
	verifier, err := razorpay.NewSigner(cfg.Payment)
	require.NoError(t, err)
	f.gateway.EXPECT().KeyID().Return(cfg.Payment.KeyID).Maybe()

	f.carts = NewCartService(CartServiceParams{
		CartRepo:    f.cartRepo,
		ProductRepo: memory.NewProductRepository(f.store),
		ZoneRepo:    memory.NewZoneRepository(f.store),
		Config:      cfg,
		Logger:      logger,
	})
	f.orders = NewOrderService(OrderServiceParams{
		TxManager:      txManager,
		OrderRepo:      f.orderRepo,
		EventPublisher: f.publisher,
		Logger:         logger,
	})
	f.payments = NewPaymentService(PaymentServiceParams{
		OrderRepo:      f.orderRepo,
		Gateway:        f.gateway,
		Verifier:       verifier,
		Locker:         lock.NewLocalLocker(),
		EventPublisher: f.publisher,
		Config:         cfg,
		Logger:         logger,
	})
	f.delivery = NewDeliveryService(DeliveryServiceParams{
		CartRepo: f.cartRepo,
		ZoneRepo: memory.NewZoneRepository(f.store),
	})
}

// fillExampleCart builds [₹500 x2 simple, combo of ₹1000 at 20% = ₹800], total ₹1800.
func (f *fixture) fillExampleCart(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	_, err := f.carts.AddSimple(ctx, f.userID, &usecase.AddSimpleItemInput{ProductID: f.rose.ID, Quantity: 2})
	require.NoError(t, err)
	view, err := f.carts.AddCombo(ctx, f.userID, &usecase.AddComboInput{
		Items: []usecase.ComboItemInput{{ProductID: f.rose.ID, Quantity: 2, Color: "red"}},
	})
	require.NoError(t, err)
	require.Equal(t, entity.Rupees(1800), view.Total)
}

func (f *fixture) checkout(t *testing.T, input *usecase.CheckoutInput) *entity.Order {
	t.Helper()
	order, err := f.orders.Checkout(context.Background(), f.userID, input)
	require.NoError(t, err)

	return order
}

// onlineOrder checks out the example cart and switches it to online payment with a gateway order attached.
func (f *fixture) onlineOrder(t *testing.T, gatewayOrderID string) *entity.Order {
	t.Helper()
	ctx := context.Background()

	f.fillExampleCart(t)
	order := f.checkout(t, &usecase.CheckoutInput{Address: testAddress()})
	_, err := f.orders.SelectPaymentMethod(ctx, f.userID, order.ID, entity.PaymentMethodOnline)
	require.NoError(t, err)

	attached, err := f.orderRepo.AttachGatewayOrder(ctx, order.ID, gatewayOrderID)
	require.NoError(t, err)
	require.True(t, attached)

	stored, err := f.orderRepo.FindByID(ctx, order.ID)
	require.NoError(t, err)

	return stored
}

func testAddress() entity.Address {
	return entity.Address{
		Name:    "Asha Rao",
		Phone:   "9800000000",
		Line1:   "12 MG Road",
		City:    "Bengaluru",
		State:   "KA",
		Pincode: testPincode,
	}
}

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*service.OrderEvent
}

func (p *recordingPublisher) PublishOrderEvent(_ context.Context, event *service.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Close() error {
	return nil
}

func (p *recordingPublisher) count(eventType service.OrderEventType) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, event := range p.events {
		if event.Type == eventType {
			n++
		}
	}

	return n
}
