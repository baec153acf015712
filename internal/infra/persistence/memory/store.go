// Package memory is an in-process storage driver for local runs and tests.
// A transaction holds the store lock and restores a snapshot when the callback fails.
package memory

import (
	"log/slog"
	"maps"
	"sync"

	"florist/config"
	"florist/internal/domain/entity"
	"florist/internal/infra/persistence/seed"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// Store holds every aggregate behind one mutex.
type Store struct {
	mu    sync.Mutex
	state *state
}

type state struct {
	users    map[uuid.UUID]*entity.User
	products map[uuid.UUID]*entity.Product
	zones    map[string]*entity.DeliveryZone
	carts    map[uuid.UUID]*entity.Cart
	orders   map[uuid.UUID]*entity.Order
}

func newState() *state {
	return &state{
		users:    make(map[uuid.UUID]*entity.User),
		products: make(map[uuid.UUID]*entity.Product),
		zones:    make(map[string]*entity.DeliveryZone),
		carts:    make(map[uuid.UUID]*entity.Cart),
		orders:   make(map[uuid.UUID]*entity.Order),
	}
}

// clone deep-copies the mutable aggregates. Catalog data is read-only and shared.
func (st *state) clone() *state {
	cp := &state{
		users:    make(map[uuid.UUID]*entity.User, len(st.users)),
		products: maps.Clone(st.products),
		zones:    maps.Clone(st.zones),
		carts:    make(map[uuid.UUID]*entity.Cart, len(st.carts)),
		orders:   make(map[uuid.UUID]*entity.Order, len(st.orders)),
	}
	for id, user := range st.users {
		cp.users[id] = cloneUser(user)
	}
	for id, cart := range st.carts {
		cp.carts[id] = cart.Clone()
	}
	for id, order := range st.orders {
		cp.orders[id] = order.Clone()
	}

	return cp
}

// New creates the store and loads the seed file when one is configured.
func New(params Params) (*Store, error) {
	store := NewStore()

	if params.Config.Storage == nil || params.Config.Storage.SeedFile == "" {
		params.Logger.Warn("Memory store started without seed data")

		return store, nil
	}

	data, err := seed.Load(params.Config.Storage.SeedFile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load memory seed")
	}
	store.Seed(data)

	params.Logger.Info("Memory store seeded",
		slog.Int("users", len(data.Users)),
		slog.Int("products", len(data.Products)),
		slog.Int("zones", len(data.Zones)),
	)

	return store, nil
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{state: newState()}
}

// Seed loads reference data and users into the store.
func (s *Store) Seed(data *seed.Data) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range data.Users {
		user := data.Users[i]
		s.state.users[user.ID] = cloneUser(&user)
	}
	for i := range data.Products {
		product := data.Products[i]
		s.state.products[product.ID] = &product
	}
	for i := range data.Zones {
		zone := data.Zones[i]
		s.state.zones[zone.ZoneID] = &zone
	}
}

// PutUser adds or replaces a user.
func (s *Store) PutUser(user *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.users[user.ID] = cloneUser(user)
}

// PutProduct adds or replaces a catalog product.
func (s *Store) PutProduct(product *entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *product
	cp.Pricing = maps.Clone(product.Pricing)
	s.state.products[product.ID] = &cp
}

// PutZone adds or replaces a delivery zone.
func (s *Store) PutZone(zone *entity.DeliveryZone) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *zone
	s.state.zones[zone.ZoneID] = &cp
}

func (s *Store) view(fn func(st *state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.state)
}

func cloneUser(user *entity.User) *entity.User {
	cp := *user
	cp.Addresses = append([]entity.Address(nil), user.Addresses...)

	return &cp
}
