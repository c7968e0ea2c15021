package commands_test

import (
	"context"
	"testing"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

// Update looks the order up through the mock, then applies mutate to a clone the way
// a real repository would.
func (m *MockOrderRepository) Update(
	ctx context.Context,
	id kernel.UUID,
	mutate func(*order.Order) error,
) (*order.Order, error) {
	args := m.Called(ctx, id)
	stored, _ := args.Get(0).(*order.Order)
	if err := args.Error(1); err != nil {
		return nil, err
	}

	working := stored.Clone()
	if err := mutate(working); err != nil {
		return nil, err
	}
	return working, nil
}

func (m *MockOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockIdentityProvider struct{ mock.Mock }

func (m *MockIdentityProvider) NewID() kernel.UUID {
	return m.Called().Get(0).(kernel.UUID)
}

func (m *MockIdentityProvider) Now() time.Time {
	return m.Called().Get(0).(time.Time)
}

type MockIdempotencyStore struct{ mock.Mock }

func (m *MockIdempotencyStore) Claim(ctx context.Context, key string, id kernel.UUID) (kernel.UUID, bool, error) {
	args := m.Called(ctx, key, id)
	return args.Get(0).(kernel.UUID), args.Bool(1), args.Error(2)
}

func (m *MockIdempotencyStore) Release(ctx context.Context, key string, id kernel.UUID) error {
	args := m.Called(ctx, key, id)
	return args.Error(0)
}

type MockOrderEventPublisher struct{ mock.Mock }

func (m *MockOrderEventPublisher) PublishOrderCreated(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func validDraft(t *testing.T) order.Draft {
	t.Helper()
	d, err := order.NewDraft("Ana", "5", []order.ItemInput{{ProductName: "Taco", Quantity: 2, UnitPrice: 3.5}})
	require.NoError(t, err)
	return d
}

func storedOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), validDraft(t), time.Now())
	require.NoError(t, err)
	require.NoError(t, o.ChangeStatus(status))
	return o
}
