package mongodb

import (
	"context"
	"time"

	"florist/internal/domain/entity"
	domainerrors "florist/internal/domain/errors"
	"florist/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// binder attaches the transaction session, when there is one, to every call.
type binder struct {
	session mongo.Session
}

func (b binder) bind(ctx context.Context) context.Context {
	if b.session == nil {
		return ctx
	}

	return mongo.NewSessionContext(ctx, b.session)
}

type userRepository struct {
	binder
	users *mongo.Collection
}

// NewUserRepository creates a user repository on the users collection.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{users: db.Collection(usersCollection)}
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var doc userDoc
	if err := r.users.FindOne(r.bind(ctx), bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	user, err := doc.toDomain()

	return user, errors.Wrap(err, "failed to decode user")
}

func (r *userRepository) AppendAddress(ctx context.Context, userID uuid.UUID, address entity.Address) error {
	result, err := r.users.UpdateOne(r.bind(ctx),
		bson.M{"_id": userID.String()},
		bson.M{
			"$push": bson.M{"addresses": fromAddress(address)},
			"$set":  bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append address")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

type productRepository struct {
	binder
	products *mongo.Collection
}

// NewProductRepository creates a product repository on the products collection.
func NewProductRepository(db *mongo.Database) repository.ProductRepository {
	return &productRepository{products: db.Collection(productsCollection)}
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var doc productDoc
	if err := r.products.FindOne(r.bind(ctx), bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	product, err := doc.toDomain()

	return product, errors.Wrap(err, "failed to decode product")
}

type zoneRepository struct {
	binder
	zones *mongo.Collection
}

// NewZoneRepository creates a zone repository on the delivery_zones collection.
func NewZoneRepository(db *mongo.Database) repository.ZoneRepository {
	return &zoneRepository{zones: db.Collection(zonesCollection)}
}

func (r *zoneRepository) FindByPincode(ctx context.Context, pincode string) (*entity.DeliveryZone, error) {
	var doc zoneDoc
	err := r.zones.FindOne(r.bind(ctx),
		bson.M{"is_active": true, "pincodes": pincode},
		options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}}),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrZoneNotFound
		}

		return nil, errors.Wrap(err, "failed to find zone by pincode")
	}

	return doc.toDomain(), nil
}

type cartRepository struct {
	binder
	carts *mongo.Collection
}

// NewCartRepository creates a cart repository on the carts collection.
func NewCartRepository(db *mongo.Database) repository.CartRepository {
	return &cartRepository{carts: db.Collection(cartsCollection)}
}

func (r *cartRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	var doc cartDoc
	if err := r.carts.FindOne(r.bind(ctx), bson.M{"_id": userID.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by user")
	}

	cart, err := doc.toDomain()

	return cart, errors.Wrap(err, "failed to decode cart")
}

func (r *cartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	now := time.Now()

	if cart.Version == 0 {
		doc := &cartDoc{
			UserID:    cart.UserID.String(),
			Items:     fromLines(cart.Items),
			Version:   1,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if _, err := r.carts.InsertOne(r.bind(ctx), doc); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return repository.ErrCartVersionConflict
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
		}
		cart.Version = 1
		cart.CreatedAt = now
		cart.UpdatedAt = now

		return nil
	}

	result, err := r.carts.UpdateOne(r.bind(ctx),
		bson.M{"_id": cart.UserID.String(), "version": cart.Version},
		bson.M{"$set": bson.M{
			"items":      fromLines(cart.Items),
			"version":    cart.Version + 1,
			"updated_at": now,
		}},
	)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update cart")
	}
	if result.MatchedCount == 0 {
		return repository.ErrCartVersionConflict
	}
	cart.Version++
	cart.UpdatedAt = now

	return nil
}

type orderRepository struct {
	binder
	orders *mongo.Collection
}

// NewOrderRepository creates an order repository on the orders collection.
func NewOrderRepository(db *mongo.Database) repository.OrderRepository {
	return &orderRepository{orders: db.Collection(ordersCollection)}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	now := time.Now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now

	if _, err := r.orders.InsertOne(r.bind(ctx), fromOrder(order)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateCheckoutToken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return r.findOne(ctx, bson.M{"_id": id.String()})
}

func (r *orderRepository) FindByCheckoutToken(ctx context.Context, userID uuid.UUID, token string) (*entity.Order, error) {
	return r.findOne(ctx, bson.M{"user_id": userID.String(), "checkout_token": token})
}

func (r *orderRepository) FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*entity.Order, error) {
	if gatewayOrderID == "" {
		return nil, repository.ErrOrderNotFound
	}

	return r.findOne(ctx, bson.M{"payment_info.gateway_order_id": gatewayOrderID})
}

func (r *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	ctx = r.bind(ctx)
	cursor, err := r.orders.Find(ctx,
		bson.M{"user_id": userID.String()},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}
	defer cursor.Close(ctx)

	var docs []orderDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode orders")
	}

	orders := make([]*entity.Order, 0, len(docs))
	for i := range docs {
		order, err := docs[i].toDomain()
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode order")
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func (r *orderRepository) ApplyTransition(ctx context.Context, transition repository.Transition) (bool, error) {
	result, err := r.orders.UpdateOne(r.bind(ctx), transitionFilter(transition), transitionPipeline(transition))
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to apply order transition")
	}
	if result.MatchedCount > 0 {
		return true, nil
	}

	return false, r.ensureExists(ctx, transition.OrderID)
}

// transitionFilter puts the guard in the query so the match and the write are one operation.
func transitionFilter(transition repository.Transition) bson.M {
	filter := bson.M{"_id": transition.OrderID.String()}
	if len(transition.StatusIn) > 0 {
		filter["status"] = bson.M{"$in": transition.StatusIn}
	}
	if len(transition.OrderStatusIn) > 0 {
		filter["order_status"] = bson.M{"$in": transition.OrderStatusIn}
	}

	return filter
}

// transitionPipeline is an update pipeline so the fulfillment move can depend on the stored order_status.
func transitionPipeline(transition repository.Transition) mongo.Pipeline {
	set := bson.D{{Key: "updated_at", Value: "$$NOW"}}
	if transition.Status != "" {
		set = append(set, bson.E{Key: "status", Value: string(transition.Status)})
	}
	if transition.PaymentMethod != entity.PaymentMethodNone {
		set = append(set, bson.E{Key: "payment_method", Value: string(transition.PaymentMethod)})
	}
	if transition.PaymentID != "" {
		set = append(set, bson.E{Key: "payment_info.payment_id", Value: transition.PaymentID})
	}
	if transition.Signature != "" {
		set = append(set, bson.E{Key: "payment_info.signature", Value: transition.Signature})
	}
	if transition.Fulfillment != nil {
		from := make(bson.A, 0, len(transition.Fulfillment.From))
		for _, status := range transition.Fulfillment.From {
			from = append(from, string(status))
		}
		set = append(set, bson.E{Key: "order_status", Value: bson.D{{Key: "$cond", Value: bson.A{
			bson.D{{Key: "$in", Value: bson.A{"$order_status", from}}},
			string(transition.Fulfillment.To),
			"$order_status",
		}}}})
	}

	return mongo.Pipeline{{{Key: "$set", Value: set}}}
}

func (r *orderRepository) AttachGatewayOrder(ctx context.Context, orderID uuid.UUID, gatewayOrderID string) (bool, error) {
	result, err := r.orders.UpdateOne(r.bind(ctx),
		bson.M{"_id": orderID.String(), "payment_info.gateway_order_id": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{
			"payment_info.gateway_order_id": gatewayOrderID,
			"updated_at":                    time.Now(),
		}},
	)
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to attach gateway order")
	}
	if result.MatchedCount > 0 {
		return true, nil
	}

	return false, r.ensureExists(ctx, orderID)
}

func (r *orderRepository) ensureExists(ctx context.Context, id uuid.UUID) error {
	count, err := r.orders.CountDocuments(r.bind(ctx), bson.M{"_id": id.String()}, options.Count().SetLimit(1))
	if err != nil {
		return errors.Wrap(err, "failed to check order existence")
	}
	if count == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func (r *orderRepository) findOne(ctx context.Context, filter bson.M) (*entity.Order, error) {
	var doc orderDoc
	if err := r.orders.FindOne(r.bind(ctx), filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	order, err := doc.toDomain()

	return order, errors.Wrap(err, "failed to decode order")
}
