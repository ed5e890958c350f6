package redis_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"logistics/internal/adapters/out/redis"
	"logistics/internal/core/application/auth"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type SessionStoreIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	client    *goredis.Client
	store     *redis.SessionStore
}

func (suite *SessionStoreIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	host, err := container.Host(ctx)
	suite.Require().NoError(err)
	port, err := container.MappedPort(ctx, "6379/tcp")
	suite.Require().NoError(err)

	suite.client = redis.NewClient(fmt.Sprintf("%s:%s", host, port.Port()), "")
	suite.Require().NoError(suite.client.Ping(ctx).Err())
}

func (suite *SessionStoreIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.client.FlushDB(context.Background()).Err())
	suite.store = redis.NewSessionStore(suite.client)
}

func (suite *SessionStoreIntegrationTestSuite) TearDownSuite() {
	ctx := context.Background()
	if suite.client != nil {
		suite.Require().NoError(suite.client.Close())
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(ctx))
	}
}

func (suite *SessionStoreIntegrationTestSuite) TestSaveGetDelete() {
	ctx := context.Background()
	session := auth.Session{
		ID:        kernel.NewUUID().String(),
		Actor:     auth.Driver(kernel.NewUUID()),
		ExpiresAt: time.Now().Add(time.Hour).UTC().Truncate(time.Second),
	}

	suite.Require().NoError(suite.store.Save(ctx, session))

	got, err := suite.store.Get(ctx, session.ID)
	suite.Require().NoError(err)
	suite.Equal(session.Actor, got.Actor)
	suite.True(session.ExpiresAt.Equal(got.ExpiresAt))

	ttl, err := suite.client.TTL(ctx, "session:"+session.ID).Result()
	suite.Require().NoError(err)
	suite.Greater(ttl, 59*time.Minute)

	suite.Require().NoError(suite.store.Delete(ctx, session.ID))
	_, err = suite.store.Get(ctx, session.ID)
	suite.Require().ErrorIs(err, auth.ErrSessionNotFound)
	suite.Require().ErrorIs(suite.store.Delete(ctx, session.ID), auth.ErrSessionNotFound)
}

func (suite *SessionStoreIntegrationTestSuite) TestAdminSessionHasNoUserID() {
	ctx := context.Background()
	session := auth.Session{ID: "admin-session", Actor: auth.Admin(), ExpiresAt: time.Now().Add(time.Minute)}

	suite.Require().NoError(suite.store.Save(ctx, session))

	got, err := suite.store.Get(ctx, session.ID)
	suite.Require().NoError(err)
	suite.True(got.Actor.IsAdmin())
}

func (suite *SessionStoreIntegrationTestSuite) TestExpiredSessionIsGone() {
	ctx := context.Background()
	session := auth.Session{ID: "short", Actor: auth.Customer(kernel.NewUUID()), ExpiresAt: time.Now().Add(1100 * time.Millisecond)}
	suite.Require().NoError(suite.store.Save(ctx, session))

	suite.Eventually(func() bool {
		_, err := suite.store.Get(ctx, session.ID)
		return err != nil
	}, 5*time.Second, 100*time.Millisecond)
}

func (suite *SessionStoreIntegrationTestSuite) TestSave_RejectsPastExpiry() {
	session := auth.Session{ID: "past", Actor: auth.Admin(), ExpiresAt: time.Now().Add(-time.Second)}

	err := suite.store.Save(context.Background(), session)

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func TestSessionStoreIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(SessionStoreIntegrationTestSuite))
}
