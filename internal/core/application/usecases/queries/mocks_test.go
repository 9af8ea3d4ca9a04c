package queries_test

import (
	"context"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/core/domain/model/lot"
	"agrilink/internal/core/domain/model/offer"
	"agrilink/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// MockLotReader is a mock implementation of queries.LotReader.
type MockLotReader struct {
	mock.Mock
}

func (m *MockLotReader) Get(ctx context.Context, id kernel.UUID) (*lot.HarvestLot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lot.HarvestLot), args.Error(1)
}

// MockOfferReader is a mock implementation of queries.OfferReader.
type MockOfferReader struct {
	mock.Mock
}

func (m *MockOfferReader) GetMany(ctx context.Context, ids []kernel.UUID) ([]*offer.BuyerOffer, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*offer.BuyerOffer), args.Error(1)
}

func (m *MockOfferReader) GetAllActive(ctx context.Context) ([]*offer.BuyerOffer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*offer.BuyerOffer), args.Error(1)
}

// MockOfferIndex is a mock implementation of ports.OfferIndex.
type MockOfferIndex struct {
	mock.Mock
}

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
