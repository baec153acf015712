package memory

import (
	"context"

	"florist/internal/domain/repository"
)

type memoryTransactionManager struct {
	store *Store
}

// memoryRepositoryFactory hands out repositories bound to the locked state of one transaction.
type memoryRepositoryFactory struct {
	access accessor
}

func (f *memoryRepositoryFactory) UserRepo() repository.UserRepository {
	return &userRepository{access: f.access}
}

func (f *memoryRepositoryFactory) ProductRepo() repository.ProductRepository {
	return &productRepository{access: f.access}
}

func (f *memoryRepositoryFactory) ZoneRepo() repository.ZoneRepository {
	return &zoneRepository{access: f.access}
}

func (f *memoryRepositoryFactory) CartRepo() repository.CartRepository {
	return &cartRepository{access: f.access}
}

func (f *memoryRepositoryFactory) OrderRepo() repository.OrderRepository {
	return &orderRepository{access: f.access}
}

// NewTransactionManager is the constructor for memoryTransactionManager.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &memoryTransactionManager{store: store}
}

// Execute serialises transactions on the store lock and restores the snapshot on error or panic.
// Non-transactional repositories must not be used inside fn.
func (tm *memoryTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	snapshot := tm.store.state.clone()
	committed := false
	defer func() {
		if !committed {
			tm.store.state = snapshot
		}
	}()

	if err := fn(&memoryRepositoryFactory{access: txAccessor(tm.store.state)}); err != nil {
		return err
	}
	committed = true

	return nil
}
