package mongodb

import (
	"context"

	"florist/internal/domain/repository"
	"florist/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
)

type mongoTransactionManager struct {
	db *mongo.Database
}

// mongoRepositoryFactory hands out repositories bound to one session.
type mongoRepositoryFactory struct {
	db      *mongo.Database
	session mongo.Session
}

func (f *mongoRepositoryFactory) UserRepo() repository.UserRepository {
	return &userRepository{binder: binder{session: f.session}, users: f.db.Collection(usersCollection)}
}

func (f *mongoRepositoryFactory) ProductRepo() repository.ProductRepository {
	return &productRepository{binder: binder{session: f.session}, products: f.db.Collection(productsCollection)}
}

func (f *mongoRepositoryFactory) ZoneRepo() repository.ZoneRepository {
	return &zoneRepository{binder: binder{session: f.session}, zones: f.db.Collection(zonesCollection)}
}

func (f *mongoRepositoryFactory) CartRepo() repository.CartRepository {
	return &cartRepository{binder: binder{session: f.session}, carts: f.db.Collection(cartsCollection)}
}

func (f *mongoRepositoryFactory) OrderRepo() repository.OrderRepository {
	return &orderRepository{binder: binder{session: f.session}, orders: f.db.Collection(ordersCollection)}
}

// NewTransactionManager is the constructor for mongoTransactionManager.
func NewTransactionManager(db *mongo.Database) repository.TransactionManager {
	return &mongoTransactionManager{db: db}
}

// Execute runs fn in a multi-document transaction.
// The driver retries fn on transient transaction errors, so fn must not have side effects outside the session.
func (tm *mongoTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	session, err := tm.db.Client().StartSession()
	if err != nil {
		return errors.Wrap(err, "failed to start session")
	}
	defer session.EndSession(ctx)

	factory := &mongoRepositoryFactory{db: tm.db, session: session}
	_, err = session.WithTransaction(ctx, func(mongo.SessionContext) (any, error) {
		return nil, fn(factory)
	})

	return err
}
