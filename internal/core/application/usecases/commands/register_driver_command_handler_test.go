package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRegisterDriverCommand(t *testing.T) commands.RegisterDriverCommand {
	t.Helper()
	cmd, err := commands.NewRegisterDriverCommand(kernel.NewUUID(),
		"Grace Hopper", "grace@example.com", "555-010-0200", "Van", "correct-horse")
	require.NoError(t, err)
	return cmd
}

func TestRegisterDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	e := newEnv(ctx)
	hasher := new(MockHasher)
	cmd := newRegisterDriverCommand(t)

	var added *driver.Driver
	mock.InOrder(
		hasher.On("Hash", "correct-horse").Return("hashed", nil).Once(),
		e.uow.On("Begin", ctx).Return(nil).Once(),
		e.drivers.On("GetByEmail", ctx, cmd.Email()).
			Return(nil, errs.NewObjectNotFoundError("email", cmd.Email().String())).Once(),
		e.drivers.On("Add", ctx, mock.AnythingOfType("*driver.Driver")).
			Run(func(args mock.Arguments) { added = args.Get(1).(*driver.Driver) }).
			Return(nil).Once(),
		e.uow.On("Commit", ctx).Return(nil).Once(),
	)

	err := commands.NewRegisterDriverCommandHandler(driverUoWFactory{e.uow}, hasher).Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, added)
	assert.Equal(t, driver.StatusActive, added.Status())
	assert.Equal(t, driver.VehicleVan, added.Vehicle())
	assert.False(t, added.DocumentsVerified())
	assert.False(t, added.IsEligible())
	assert.Zero(t, added.Rating().Count())
}

func TestRegisterDriverCommandHandler_Handle_EmailTaken(t *testing.T) {
	ctx := t.Context()
	e := newEnv(ctx)
	hasher := new(MockHasher)
	cmd := newRegisterDriverCommand(t)

	hasher.On("Hash", mock.Anything).Return("hashed", nil).Once()
	e.uow.On("Begin", ctx).Return(nil).Once()
	e.drivers.On("GetByEmail", ctx, cmd.Email()).
		Return(storedDriver(t, driver.StatusActive, true, 0, 0), nil).Once()

	err := commands.NewRegisterDriverCommandHandler(driverUoWFactory{e.uow}, hasher).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	e.drivers.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	e.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestRegisterDriverCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	e := newEnv(ctx)

	err := commands.NewRegisterDriverCommandHandler(driverUoWFactory{e.uow}, new(MockHasher)).
		Handle(ctx, commands.RegisterDriverCommand{})

	require.ErrorIs(t, err, commands.ErrRegisterDriverCommandIsNotConstructed)
}
