package mongo

import (
	"context"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// newestFirst is the listing order shared by every reader.
var newestFirst = bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}

type OrderReader struct {
	col *mongodriver.Collection
}

func NewOrderReader(db *mongodriver.Database) *OrderReader {
	return &OrderReader{col: db.Collection(ordersCollection)}
}

func (r *OrderReader) FindOrders(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	query := bson.M{}
	if filter.CustomerID != nil {
		query["customer_id"] = filter.CustomerID.String()
	}
	if filter.DriverID != nil {
		query["driver_id"] = filter.DriverID.String()
	}
	if len(filter.Statuses) > 0 {
		names := make(bson.A, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			names = append(names, s.String())
		}
		query["status"] = bson.M{"$in": names}
	}

	cur, err := r.col.Find(ctx, query, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, errs.NewStoreUnavailableError("find orders", err)
	}
	defer cur.Close(ctx)

	var docs []orderDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errs.NewStoreUnavailableError("decode orders", err)
	}

	orders := make([]*order.Order, 0, len(docs))
	for _, doc := range docs {
		o, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *OrderReader) GetOrder(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return findOrder(ctx, r.col, bson.M{"_id": id.String()}, id)
}

func (r *OrderReader) CountOrdersByStatus(ctx context.Context) (map[order.Status]int, error) {
	rows, err := countByStatus(ctx, r.col)
	if err != nil {
		return nil, err
	}

	counts := make(map[order.Status]int, len(rows))
	for name, total := range rows {
		status, err := order.ParseStatus(name)
		if err != nil {
			return nil, err
		}
		counts[status] = total
	}
	return counts, nil
}

func (r *OrderReader) CompletedRevenue(ctx context.Context) (kernel.Money, error) {
	pipeline := mongodriver.Pipeline{
		{{Key: "$match", Value: bson.M{"status": order.Completed.String()}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$price"}}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return kernel.Money{}, errs.NewStoreUnavailableError("sum revenue", err)
	}
	defer cur.Close(ctx)

	var rows []struct {
		Total primitive.Decimal128 `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return kernel.Money{}, errs.NewStoreUnavailableError("sum revenue", err)
	}
	if len(rows) == 0 {
		return kernel.ZeroMoney(), nil
	}

	total, err := decimalFrom(rows[0].Total)
	if err != nil {
		return kernel.Money{}, errs.NewStoreUnavailableError("sum revenue", err)
	}
	return kernel.NewMoney(total)
}

type DriverReader struct {
	col *mongodriver.Collection
}

func NewDriverReader(db *mongodriver.Database) *DriverReader {
	return &DriverReader{col: db.Collection(driversCollection)}
}

func (r *DriverReader) FindDrivers(ctx context.Context, filter ports.DriverFilter) ([]*driver.Driver, error) {
	query := bson.M{}
	if len(filter.Statuses) > 0 {
		names := make(bson.A, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			names = append(names, s.String())
		}
		query["status"] = bson.M{"$in": names}
	}
	if filter.Verified != nil {
		query["documents_verified"] = *filter.Verified
	}
	return findDrivers(ctx, r.col, query, options.Find().SetSort(newestFirst))
}

func (r *DriverReader) GetDriver(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	return findDriver(ctx, r.col, bson.M{"_id": id.String()}, "driverId", id)
}

func (r *DriverReader) CountDriversByStatus(ctx context.Context) (map[driver.Status]int, error) {
	rows, err := countByStatus(ctx, r.col)
	if err != nil {
		return nil, err
	}

	counts := make(map[driver.Status]int, len(rows))
	for name, total := range rows {
		status, err := driver.ParseStatus(name)
		if err != nil {
			return nil, err
		}
		counts[status] = total
	}
	return counts, nil
}

type CustomerReader struct {
	col *mongodriver.Collection
}

func NewCustomerReader(db *mongodriver.Database) *CustomerReader {
	return &CustomerReader{col: db.Collection(customersCollection)}
}

func (r *CustomerReader) FindCustomers(ctx context.Context) ([]*customer.Customer, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, errs.NewStoreUnavailableError("find customers", err)
	}
	defer cur.Close(ctx)

	var docs []customerDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errs.NewStoreUnavailableError("decode customers", err)
	}

	customers := make([]*customer.Customer, 0, len(docs))
	for _, doc := range docs {
		c, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, nil
}

func (r *CustomerReader) CountCustomers(ctx context.Context) (int, error) {
	count, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, errs.NewStoreUnavailableError("count customers", err)
	}
	return int(count), nil
}

// countByStatus groups a collection by its status field.
func countByStatus(ctx context.Context, col *mongodriver.Collection) (map[string]int, error) {
	pipeline := mongodriver.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$status", "total": bson.M{"$sum": 1}}}},
	}
	cur, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errs.NewStoreUnavailableError("count "+col.Name(), err)
	}
	defer cur.Close(ctx)

	var rows []struct {
		Status string `bson:"_id"`
		Total  int    `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, errs.NewStoreUnavailableError("count "+col.Name(), err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}
