package commands_test

import (
	"context"

	"agrilink/internal/core/application/usecases/commands"
	"agrilink/internal/core/domain/model/account"
	"agrilink/internal/core/domain/model/dispatch"
	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/core/domain/model/lot"
	"agrilink/internal/core/domain/model/offer"
	"agrilink/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Add(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

type MockLotRepository struct{ mock.Mock }

func (m *MockLotRepository) Add(ctx context.Context, l *lot.HarvestLot) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLotRepository) Get(ctx context.Context, id kernel.UUID) (*lot.HarvestLot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lot.HarvestLot), args.Error(1)
}

func (m *MockLotRepository) CompareAndSwapStatus(
	ctx context.Context, id kernel.UUID, from, to lot.Status,
) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}

type MockOfferRepository struct{ mock.Mock }

func (m *MockOfferRepository) Add(ctx context.Context, o *offer.BuyerOffer) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOfferRepository) Update(ctx context.Context, o *offer.BuyerOffer) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOfferRepository) Get(ctx context.Context, id kernel.UUID) (*offer.BuyerOffer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*offer.BuyerOffer), args.Error(1)
}

func (m *MockOfferRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*offer.BuyerOffer, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*offer.BuyerOffer), args.Error(1)
}

func (m *MockOfferRepository) GetAllActive(ctx context.Context) ([]*offer.BuyerOffer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*offer.BuyerOffer), args.Error(1)
}

type MockDispatchRepository struct{ mock.Mock }

func (m *MockDispatchRepository) Add(ctx context.Context, o *dispatch.DispatchOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockDispatchRepository) Get(ctx context.Context, id kernel.UUID) (*dispatch.DispatchOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dispatch.DispatchOrder), args.Error(1)
}

func (m *MockDispatchRepository) GetByLotID(ctx context.Context, lotID kernel.UUID) (*dispatch.DispatchOrder, error) {
	args := m.Called(ctx, lotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dispatch.DispatchOrder), args.Error(1)
}

func (m *MockDispatchRepository) CompareAndSwapStatus(
	ctx context.Context, id kernel.UUID, from, to dispatch.DeliveryStatus,
) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}

type MockOfferIndex struct{ mock.Mock }

func (m *MockOfferIndex) Put(ctx context.Context, entry ports.OfferIndexEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockOfferIndex) Remove(ctx context.Context, offerID kernel.UUID) error {
	args := m.Called(ctx, offerID)
	return args.Error(0)
}

func (m *MockOfferIndex) OffersByCommodity(ctx context.Context, commodity string) ([]kernel.UUID, error) {
	args := m.Called(ctx, commodity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

func (m *MockOfferIndex) OffersByCity(ctx context.Context, city string) ([]kernel.UUID, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

func (m *MockOfferIndex) Rebuild(ctx context.Context, entries []ports.OfferIndexEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

// MockDispatchUoW satisfies every command-side unit of work interface, so the
// same mock serves all handler tests in this package.
type MockDispatchUoW struct{ mock.Mock }

func (m *MockDispatchUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDispatchUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDispatchUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDispatchUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

func (m *MockDispatchUoW) LotRepository() ports.LotRepository {
	args := m.Called()
	return args.Get(0).(ports.LotRepository)
}

func (m *MockDispatchUoW) OfferRepository() ports.OfferRepository {
	args := m.Called()
	return args.Get(0).(ports.OfferRepository)
}

func (m *MockDispatchUoW) DispatchRepository() ports.DispatchRepository {
	args := m.Called()
	return args.Get(0).(ports.DispatchRepository)
}

type MockAccountUoWFactory struct{ mock.Mock }

func (m *MockAccountUoWFactory) Create() commands.AccountUoW {
	args := m.Called()
	return args.Get(0).(commands.AccountUoW)
}

type MockLotUoWFactory struct{ mock.Mock }

func (m *MockLotUoWFactory) Create() commands.LotUoW {
	args := m.Called()
	return args.Get(0).(commands.LotUoW)
}

type MockOfferUoWFactory struct{ mock.Mock }

func (m *MockOfferUoWFactory) Create() commands.OfferUoW {
	args := m.Called()
	return args.Get(0).(commands.OfferUoW)
}

type MockDispatchUoWFactory struct{ mock.Mock }

func (m *MockDispatchUoWFactory) Create() commands.DispatchUoW {
	args := m.Called()
	return args.Get(0).(commands.DispatchUoW)
}
