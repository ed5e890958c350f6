package mongo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

type CustomerRepository struct {
	col     *mongodriver.Collection
	session mongodriver.Session
}

func NewCustomerRepository(db *mongodriver.Database, session mongodriver.Session) *CustomerRepository {
	return &CustomerRepository{col: db.Collection(customersCollection), session: session}
}

func (r *CustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	doc := customerFromDomain(aggregate)
	if _, err := r.col.InsertOne(bind(ctx, r.session), doc); err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return errs.NewConflictErrorWithCause("email", doc.Email, err)
		}
		return storeError("add customer", "customerId", doc.ID, err)
	}

	aggregate.MarkPersisted()
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	doc := customerFromDomain(aggregate)
	filter := bson.M{"_id": doc.ID, "status": aggregate.PersistedStatus().String()}
	update := bson.M{"$set": bson.M{"status": doc.Status, "updated_at": doc.UpdatedAt}}

	ctx = bind(ctx, r.session)
	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return storeError("update customer", "customerId", doc.ID, err)
	}
	if res.MatchedCount == 0 {
		return missOrConflict(ctx, r.col, "customerId", doc.ID)
	}

	aggregate.MarkPersisted()
	return nil
}

func (r *CustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	return r.findOne(bind(ctx, r.session), bson.M{"_id": id.String()}, "customerId", id)
}

func (r *CustomerRepository) GetByEmail(ctx context.Context, email kernel.Email) (*customer.Customer, error) {
	return r.findOne(bind(ctx, r.session), bson.M{"email": email.String()}, "email", email.String())
}

func (r *CustomerRepository) findOne(ctx context.Context, filter bson.M, paramName string, key any) (*customer.Customer, error) {
	var doc customerDocument
	err := r.col.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongodriver.ErrNoDocuments) {
		return nil, errs.NewObjectNotFoundError(paramName, key)
	}
	if err != nil {
		return nil, storeError("get customer", paramName, key, err)
	}
	return doc.toDomain()
}
