package memory

import (
	"context"
	"maps"
	"slices"
	"time"

	"florist/internal/domain/entity"
	"florist/internal/domain/repository"

	"github.com/google/uuid"
)

// accessor runs fn against the store state.
// Outside a transaction it takes the store lock; inside one the lock is already held.
type accessor func(fn func(st *state) error) error

func txAccessor(st *state) accessor {
	return func(fn func(st *state) error) error {
		return fn(st)
	}
}

type userRepository struct {
	access accessor
}

// NewUserRepository creates a user repository backed by the store.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{access: store.view}
}

func (r *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	var found *entity.User
	err := r.access(func(st *state) error {
		user, ok := st.users[id]
		if !ok {
			return repository.ErrUserNotFound
		}
		found = cloneUser(user)

		return nil
	})

	return found, err
}

func (r *userRepository) AppendAddress(_ context.Context, userID uuid.UUID, address entity.Address) error {
	return r.access(func(st *state) error {
		user, ok := st.users[userID]
		if !ok {
			return repository.ErrUserNotFound
		}
		user.Addresses = append(user.Addresses, address)
		user.UpdatedAt = time.Now()

		return nil
	})
}

type productRepository struct {
	access accessor
}

// NewProductRepository creates a product repository backed by the store.
func NewProductRepository(store *Store) repository.ProductRepository {
	return &productRepository{access: store.view}
}

func (r *productRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	var found *entity.Product
	err := r.access(func(st *state) error {
		product, ok := st.products[id]
		if !ok {
			return repository.ErrProductNotFound
		}
		cp := *product
		cp.Pricing = maps.Clone(product.Pricing)
		found = &cp

		return nil
	})

	return found, err
}

type zoneRepository struct {
	access accessor
}

// NewZoneRepository creates a zone repository backed by the store.
func NewZoneRepository(store *Store) repository.ZoneRepository {
	return &zoneRepository{access: store.view}
}

func (r *zoneRepository) FindByPincode(_ context.Context, pincode string) (*entity.DeliveryZone, error) {
	var found *entity.DeliveryZone
	err := r.access(func(st *state) error {
		ids := slices.Sorted(maps.Keys(st.zones))
		for _, id := range ids {
			zone := st.zones[id]
			if zone.Serves(pincode) {
				cp := *zone
				cp.Pincodes = slices.Clone(zone.Pincodes)
				found = &cp

				return nil
			}
		}

		return repository.ErrZoneNotFound
	})

	return found, err
}

type cartRepository struct {
	access accessor
}

// NewCartRepository creates a cart repository backed by the store.
func NewCartRepository(store *Store) repository.CartRepository {
	return &cartRepository{access: store.view}
}

func (r *cartRepository) FindByUser(_ context.Context, userID uuid.UUID) (*entity.Cart, error) {
	var found *entity.Cart
	err := r.access(func(st *state) error {
		cart, ok := st.carts[userID]
		if !ok {
			return repository.ErrCartNotFound
		}
		found = cart.Clone()

		return nil
	})

	return found, err
}

func (r *cartRepository) Save(_ context.Context, cart *entity.Cart) error {
	return r.access(func(st *state) error {
		stored, exists := st.carts[cart.UserID]
		switch {
		case cart.Version == 0 && exists:
			return repository.ErrCartVersionConflict
		case cart.Version != 0 && (!exists || stored.Version != cart.Version):
			return repository.ErrCartVersionConflict
		}

		now := time.Now()
		if cart.CreatedAt.IsZero() {
			cart.CreatedAt = now
		}
		cart.UpdatedAt = now
		cart.Version++
		st.carts[cart.UserID] = cart.Clone()

		return nil
	})
}

type orderRepository struct {
	access accessor
}

// NewOrderRepository creates an order repository backed by the store.
func NewOrderRepository(store *Store) repository.OrderRepository {
	return &orderRepository{access: store.view}
}

func (r *orderRepository) Create(_ context.Context, order *entity.Order) error {
	return r.access(func(st *state) error {
		if order.CheckoutToken != "" {
			for _, existing := range st.orders {
				if existing.UserID == order.UserID && existing.CheckoutToken == order.CheckoutToken {
					return repository.ErrDuplicateCheckoutToken
				}
			}
		}
		st.orders[order.ID] = order.Clone()

		return nil
	})
}

func (r *orderRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	return r.findOne(func(o *entity.Order) bool { return o.ID == id })
}

func (r *orderRepository) FindByCheckoutToken(_ context.Context, userID uuid.UUID, token string) (*entity.Order, error) {
	return r.findOne(func(o *entity.Order) bool {
		return o.UserID == userID && o.CheckoutToken == token
	})
}

func (r *orderRepository) FindByGatewayOrderID(_ context.Context, gatewayOrderID string) (*entity.Order, error) {
	return r.findOne(func(o *entity.Order) bool {
		return gatewayOrderID != "" && o.PaymentInfo.GatewayOrderID == gatewayOrderID
	})
}

func (r *orderRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orders []*entity.Order
	err := r.access(func(st *state) error {
		for _, order := range st.orders {
			if order.UserID == userID {
				orders = append(orders, order.Clone())
			}
		}

		return nil
	})
	slices.SortFunc(orders, func(a, b *entity.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return orders, err
}

func (r *orderRepository) ApplyTransition(_ context.Context, transition repository.Transition) (bool, error) {
	var applied bool
	err := r.access(func(st *state) error {
		order, ok := st.orders[transition.OrderID]
		if !ok {
			return repository.ErrOrderNotFound
		}
		if !transition.Admits(order) {
			return nil
		}
		transition.ApplyTo(order)
		order.UpdatedAt = time.Now()
		applied = true

		return nil
	})

	return applied, err
}

func (r *orderRepository) AttachGatewayOrder(_ context.Context, orderID uuid.UUID, gatewayOrderID string) (bool, error) {
	var applied bool
	err := r.access(func(st *state) error {
		order, ok := st.orders[orderID]
		if !ok {
			return repository.ErrOrderNotFound
		}
		if order.PaymentInfo.GatewayOrderID != "" {
			return nil
		}
		order.PaymentInfo.GatewayOrderID = gatewayOrderID
		order.UpdatedAt = time.Now()
		applied = true

		return nil
	})

	return applied, err
}

func (r *orderRepository) findOne(match func(o *entity.Order) bool) (*entity.Order, error) {
	var found *entity.Order
	err := r.access(func(st *state) error {
		for _, order := range st.orders {
			if match(order) {
				found = order.Clone()

				return nil
			}
		}

		return repository.ErrOrderNotFound
	})

	return found, err
}
