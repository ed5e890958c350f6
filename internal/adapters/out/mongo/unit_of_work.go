package mongo

import (
	"context"
	"errors"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

// ErrNoTransaction is returned by Commit and Rollback without a preceding Begin.
var ErrNoTransaction = errors.New("mongo: no active transaction")

type UnitOfWorkFactory struct {
	client *mongodriver.Client
	db     *mongodriver.Database
}

func NewUnitOfWorkFactory(client *mongodriver.Client, db *mongodriver.Database) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{client: client, db: db}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{client: f.client, db: f.db}
}

// UnitOfWork wraps one client session. Repositories handed out after Begin run
// inside the session transaction; before Begin they use the plain client.
type UnitOfWork struct {
	client  *mongodriver.Client
	db      *mongodriver.Database
	session mongodriver.Session
}

func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.session != nil {
		return nil
	}

	session, err := uow.client.StartSession()
	if err != nil {
		return errs.NewStoreUnavailableError("start session", err)
	}
	if err := session.StartTransaction(); err != nil {
		session.EndSession(ctx)
		return errs.NewStoreUnavailableError("begin transaction", err)
	}

	uow.session = session
	return nil
}

func (uow *UnitOfWork) Commit(ctx context.Context) error {
	if uow.session == nil {
		return ErrNoTransaction
	}

	session := uow.session
	uow.session = nil
	defer session.EndSession(ctx)

	if err := session.CommitTransaction(ctx); err != nil {
		return storeError("commit transaction", "transaction", nil, err)
	}
	return nil
}

func (uow *UnitOfWork) Rollback(ctx context.Context) error {
	if uow.session == nil {
		return ErrNoTransaction
	}

	session := uow.session
	uow.session = nil
	defer session.EndSession(ctx)

	return session.AbortTransaction(ctx)
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return NewOrderRepository(uow.db, uow.session)
}

func (uow *UnitOfWork) DriverRepository() ports.DriverRepository {
	return NewDriverRepository(uow.db, uow.session)
}

func (uow *UnitOfWork) CustomerRepository() ports.CustomerRepository {
	return NewCustomerRepository(uow.db, uow.session)
}
