package mongo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DriverRepository struct {
	col     *mongodriver.Collection
	orders  *mongodriver.Collection
	session mongodriver.Session
}

func NewDriverRepository(db *mongodriver.Database, session mongodriver.Session) *DriverRepository {
	return &DriverRepository{
		col:     db.Collection(driversCollection),
		orders:  db.Collection(ordersCollection),
		session: session,
	}
}

func (r *DriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	doc := driverFromDomain(aggregate)
	if _, err := r.col.InsertOne(bind(ctx, r.session), doc); err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return errs.NewConflictErrorWithCause("email", doc.Email, err)
		}
		return storeError("add driver", "driverId", doc.ID, err)
	}

	aggregate.MarkPersisted()
	return nil
}

func (r *DriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	doc := driverFromDomain(aggregate)
	filter := bson.M{
		"_id":                doc.ID,
		"status":             aggregate.PersistedStatus().String(),
		"documents_verified": aggregate.PersistedDocumentsVerified(),
		"rating_count":       aggregate.PersistedRatingCount(),
	}

	ctx = bind(ctx, r.session)
	res, err := r.col.UpdateOne(ctx, filter, bson.M{"$set": doc.mutableFields()})
	if err != nil {
		return storeError("update driver", "driverId", doc.ID, err)
	}
	if res.MatchedCount == 0 {
		return missOrConflict(ctx, r.col, "driverId", doc.ID)
	}

	aggregate.MarkPersisted()
	return nil
}

func (r *DriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	return findDriver(bind(ctx, r.session), r.col, bson.M{"_id": id.String()}, "driverId", id)
}

func (r *DriverRepository) GetByEmail(ctx context.Context, email kernel.Email) (*driver.Driver, error) {
	return findDriver(bind(ctx, r.session), r.col, bson.M{"email": email.String()}, "email", email.String())
}

// GetAllFreeEligible reads the drivers busy with an Assigned or InProgress order
// first and excludes them, oldest account first.
func (r *DriverRepository) GetAllFreeEligible(ctx context.Context) ([]*driver.Driver, error) {
	ctx = bind(ctx, r.session)

	busy, err := r.orders.Distinct(ctx, "driver_id", bson.M{
		"status":    bson.M{"$in": bson.A{order.Assigned.String(), order.InProgress.String()}},
		"driver_id": bson.M{"$ne": nil},
	})
	if err != nil {
		return nil, storeError("find busy drivers", "driverId", nil, err)
	}

	filter := bson.M{
		"status":             driver.StatusActive.String(),
		"documents_verified": true,
	}
	if len(busy) > 0 {
		filter["_id"] = bson.M{"$nin": busy}
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	return findDrivers(ctx, r.col, filter, opts)
}

func findDriver(
	ctx context.Context,
	col *mongodriver.Collection,
	filter bson.M,
	paramName string,
	key any,
) (*driver.Driver, error) {
	var doc driverDocument
	err := col.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongodriver.ErrNoDocuments) {
		return nil, errs.NewObjectNotFoundError(paramName, key)
	}
	if err != nil {
		return nil, storeError("get driver", paramName, key, err)
	}
	return doc.toDomain()
}

func findDrivers(
	ctx context.Context,
	col *mongodriver.Collection,
	filter bson.M,
	opts *options.FindOptions,
) ([]*driver.Driver, error) {
	cur, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, storeError("find drivers", "driverId", nil, err)
	}
	defer cur.Close(ctx)

	drivers := make([]*driver.Driver, 0)
	for cur.Next(ctx) {
		var doc driverDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, errs.NewStoreUnavailableError("decode driver", err)
		}
		d, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}
	if err := cur.Err(); err != nil {
		return nil, storeError("find drivers", "driverId", nil, err)
	}
	return drivers, nil
}
