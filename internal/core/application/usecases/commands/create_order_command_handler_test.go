package commands_test

import (
	"errors"
	"testing"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newIdentity(id kernel.UUID, now time.Time) *MockIdentityProvider {
	ids := new(MockIdentityProvider)
	ids.On("NewID").Return(id)
	ids.On("Now").Return(now)
	return ids
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	cmd, _ := commands.NewCreateOrderCommand(validDraft(t), "")

	repo := new(MockOrderRepository)
	repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(repo, newIdentity(id, now), nil, nil)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, created.ID().IsEqual(id))
	assert.Equal(t, now, created.CreatedAt())
	assert.Equal(t, order.Pending, created.Status())
	assert.Equal(t, "Ana", created.CustomerName())
	repo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	repo := new(MockOrderRepository)
	h := commands.NewCreateOrderCommandHandler(repo, new(MockIdentityProvider), nil, nil)

	_, err := h.Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(validDraft(t), "")

	repo := new(MockOrderRepository)
	repo.On("Add", ctx, mock.Anything).Return(errors.New("add error")).Once()

	h := commands.NewCreateOrderCommandHandler(repo, newIdentity(kernel.NewUUID(), time.Now()), nil, nil)
	created, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "add error")
	assert.Nil(t, created)
}

func TestCreateOrderCommandHandler_Handle_IgnoresKeyWithoutStore(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(validDraft(t), "key-1")

	repo := new(MockOrderRepository)
	repo.On("Add", ctx, mock.Anything).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(repo, newIdentity(kernel.NewUUID(), time.Now()), nil, nil)
	_, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_Idempotency(t *testing.T) {
	t.Run("first request claims the key and creates", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, _ := commands.NewCreateOrderCommand(validDraft(t), "key-1")

		repo := new(MockOrderRepository)
		store := new(MockIdempotencyStore)
		mock.InOrder(
			store.On("Claim", ctx, "key-1", id).Return(id, true, nil).Once(),
			repo.On("Add", ctx, mock.Anything).Return(nil).Once(),
		)

		h := commands.NewCreateOrderCommandHandler(repo, newIdentity(id, time.Now()), store, nil)
		created, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.True(t, created.ID().IsEqual(id))
		repo.AssertExpectations(t)
		store.AssertExpectations(t)
	})

	t.Run("repeated key replays the stored order", func(t *testing.T) {
		ctx := t.Context()
		existing := storedOrder(t, order.Pending)
		fresh := kernel.NewUUID()
		cmd, _ := commands.NewCreateOrderCommand(validDraft(t), "key-1")

		repo := new(MockOrderRepository)
		store := new(MockIdempotencyStore)
		store.On("Claim", ctx, "key-1", fresh).Return(existing.ID(), false, nil).Once()
		repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once()

		h := commands.NewCreateOrderCommandHandler(repo, newIdentity(fresh, time.Now()), store, nil)
		replayed, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.True(t, replayed.IsEqual(existing))
		repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("repeated key before the first order is stored", func(t *testing.T) {
		ctx := t.Context()
		pending := kernel.NewUUID()
		fresh := kernel.NewUUID()
		cmd, _ := commands.NewCreateOrderCommand(validDraft(t), "key-1")

		repo := new(MockOrderRepository)
		store := new(MockIdempotencyStore)
		store.On("Claim", ctx, "key-1", fresh).Return(pending, false, nil).Once()
		repo.On("Get", ctx, pending).Return(nil, errs.NewObjectNotFoundError("order", pending)).Once()

		h := commands.NewCreateOrderCommandHandler(repo, newIdentity(fresh, time.Now()), store, nil)
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, commands.ErrIdempotentRequestInProgress)
	})

	t.Run("failed create releases the key", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, _ := commands.NewCreateOrderCommand(validDraft(t), "key-1")

		repo := new(MockOrderRepository)
		store := new(MockIdempotencyStore)
		store.On("Claim", ctx, "key-1", id).Return(id, true, nil).Once()
		repo.On("Add", ctx, mock.Anything).Return(errors.New("add error")).Once()
		store.On("Release", ctx, "key-1", id).Return(nil).Once()

		h := commands.NewCreateOrderCommandHandler(repo, newIdentity(id, time.Now()), store, nil)
		_, err := h.Handle(ctx, cmd)

		require.EqualError(t, err, "add error")
		store.AssertExpectations(t)
	})

	t.Run("claim error is returned", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, _ := commands.NewCreateOrderCommand(validDraft(t), "key-1")

		repo := new(MockOrderRepository)
		store := new(MockIdempotencyStore)
		store.On("Claim", ctx, "key-1", id).Return(kernel.UUID{}, false, errors.New("redis down")).Once()

		h := commands.NewCreateOrderCommandHandler(repo, newIdentity(id, time.Now()), store, nil)
		_, err := h.Handle(ctx, cmd)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "redis down")
		repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})
}

func TestCreateOrderCommandHandler_Handle_PublishesOrderCreated(t *testing.T) {
	t.Run("publishes the stored order after Add", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, _ := commands.NewCreateOrderCommand(validDraft(t), "")

		repo := new(MockOrderRepository)
		events := new(MockOrderEventPublisher)
		isCreated := mock.MatchedBy(func(o *order.Order) bool { return o.ID().IsEqual(id) })
		mock.InOrder(
			repo.On("Add", ctx, isCreated).Return(nil).Once(),
			events.On("PublishOrderCreated", ctx, isCreated).Return(nil).Once(),
		)

		h := commands.NewCreateOrderCommandHandler(repo, newIdentity(id, time.Now()), nil, events)
		created, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.True(t, created.ID().IsEqual(id))
		assert.Equal(t, order.Pending, created.Status())
		repo.AssertExpectations(t)
		events.AssertExpectations(t)
	})

	t.Run("nothing is published when Add fails", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewCreateOrderCommand(validDraft(t), "")

		repo := new(MockOrderRepository)
		repo.On("Add", ctx, mock.Anything).Return(errors.New("add error")).Once()
		events := new(MockOrderEventPublisher)

		h := commands.NewCreateOrderCommandHandler(repo, newIdentity(kernel.NewUUID(), time.Now()), nil, events)
		_, err := h.Handle(ctx, cmd)

		require.EqualError(t, err, "add error")
		events.AssertNotCalled(t, "PublishOrderCreated", mock.Anything, mock.Anything)
	})

	t.Run("publish failure keeps the order and the key", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, _ := commands.NewCreateOrderCommand(validDraft(t), "key-1")

		repo := new(MockOrderRepository)
		store := new(MockIdempotencyStore)
		events := new(MockOrderEventPublisher)
		store.On("Claim", ctx, "key-1", id).Return(id, true, nil).Once()
		repo.On("Add", ctx, mock.Anything).Return(nil).Once()
		events.On("PublishOrderCreated", ctx, mock.Anything).Return(errors.New("broker down")).Once()

		h := commands.NewCreateOrderCommandHandler(repo, newIdentity(id, time.Now()), store, events)
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, commands.ErrOrderNotPublished)
		assert.Contains(t, err.Error(), "broker down")
		store.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything)
		repo.AssertExpectations(t)
	})

	t.Run("replays are not published again", func(t *testing.T) {
		ctx := t.Context()
		existing := storedOrder(t, order.Pending)
		fresh := kernel.NewUUID()
		cmd, _ := commands.NewCreateOrderCommand(validDraft(t), "key-1")

		repo := new(MockOrderRepository)
		store := new(MockIdempotencyStore)
		events := new(MockOrderEventPublisher)
		store.On("Claim", ctx, "key-1", fresh).Return(existing.ID(), false, nil).Once()
		repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once()

		h := commands.NewCreateOrderCommandHandler(repo, newIdentity(fresh, time.Now()), store, events)
		_, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		events.AssertNotCalled(t, "PublishOrderCreated", mock.Anything, mock.Anything)
	})
}
