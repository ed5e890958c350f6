package mongo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderRepository struct {
	col     *mongodriver.Collection
	session mongodriver.Session
}

// NewOrderRepository binds the repository to session when it is not nil.
func NewOrderRepository(db *mongodriver.Database, session mongodriver.Session) *OrderRepository {
	return &OrderRepository{col: db.Collection(ordersCollection), session: session}
}

func (r *OrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	doc, err := orderFromDomain(aggregate)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	if _, err := r.col.InsertOne(bind(ctx, r.session), doc); err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return errs.NewConflictErrorWithCause("orderId", doc.ID, err)
		}
		return storeError("add order", "orderId", doc.ID, err)
	}

	aggregate.MarkPersisted()
	return nil
}

func (r *OrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	doc, err := orderFromDomain(aggregate)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("price", err)
	}

	filter := bson.M{"_id": doc.ID, "status": aggregate.PersistedStatus().String()}
	if !aggregate.PersistedRated() {
		filter["rating"] = nil
	}

	ctx = bind(ctx, r.session)
	res, err := r.col.UpdateOne(ctx, filter, bson.M{"$set": doc.mutableFields()})
	if err != nil {
		return storeError("update order", "orderId", doc.ID, err)
	}
	if res.MatchedCount == 0 {
		return missOrConflict(ctx, r.col, "orderId", doc.ID)
	}

	aggregate.MarkPersisted()
	return nil
}

func (r *OrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return findOrder(bind(ctx, r.session), r.col, bson.M{"_id": id.String()}, id)
}

func (r *OrderRepository) GetOldestPending(ctx context.Context) (*order.Order, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	return findOrder(bind(ctx, r.session), r.col, bson.M{"status": order.Pending.String()}, order.Pending, opts)
}

func findOrder(
	ctx context.Context,
	col *mongodriver.Collection,
	filter bson.M,
	key any,
	opts ...*options.FindOneOptions,
) (*order.Order, error) {
	var doc orderDocument
	err := col.FindOne(ctx, filter, opts...).Decode(&doc)
	if errors.Is(err, mongodriver.ErrNoDocuments) {
		return nil, errs.NewObjectNotFoundError("orderId", key)
	}
	if err != nil {
		return nil, storeError("get order", "orderId", key, err)
	}
	return doc.toDomain()
}

// missOrConflict tells a missing document from one whose guarded fields moved on.
func missOrConflict(ctx context.Context, col *mongodriver.Collection, paramName, id string) error {
	count, err := col.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return storeError("count "+col.Name(), paramName, id, err)
	}
	if count == 0 {
		return errs.NewObjectNotFoundError(paramName, id)
	}
	return errs.NewConflictError(paramName, id)
}

// bind runs ctx inside session when there is one.
func bind(ctx context.Context, session mongodriver.Session) context.Context {
	if session == nil {
		return ctx
	}
	return mongodriver.NewSessionContext(ctx, session)
}
