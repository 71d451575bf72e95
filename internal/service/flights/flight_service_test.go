package flights

import (
	"context"
	"errors"
	"testing"

	"tripma/internal/domain"
	"tripma/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCache is a mock implementation of Cache
type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	args := m.Called(ctx, flights)
	return args.Error(0)
}

var testFlights = []domain.Flight{
	{ID: "1", Airline: "Hawaiian Airlines", Origin: domain.Airport{Code: "SFO", City: "San Francisco"}, Destination: domain.Airport{Code: "NRT", City: "Tokyo"}, Price: 624},
	{ID: "2", Airline: "Delta", Origin: domain.Airport{Code: "JFK", City: "New York"}, Destination: domain.Airport{Code: "ATL", City: "Atlanta"}, Price: 214},
}

func TestFlightService_List_cacheMiss(t *testing.T) {
	repo := repository.NewStaticFlightRepository(testFlights)
	cache := &MockCache{}
	service := NewFlightService(repo, cache)

	ctx := context.Background()

	cache.On("GetFlights", ctx).Return(nil, nil)
	cache.On("SetFlights", ctx, testFlights).Return(nil)

	flights, err := service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, flights, 2)

	cache.AssertExpectations(t)
}

func TestFlightService_List_cacheHit(t *testing.T) {
	repo := repository.NewStaticFlightRepository(nil)
	cache := &MockCache{}
	service := NewFlightService(repo, cache)

	ctx := context.Background()

	cache.On("GetFlights", ctx).Return(testFlights, nil)

	flights, err := service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, flights, 2)

	cache.AssertNotCalled(t, "SetFlights", mock.Anything, mock.Anything)
}

func TestFlightService_List_cacheErrorFallsThrough(t *testing.T) {
	repo := repository.NewStaticFlightRepository(testFlights)
	cache := &MockCache{}
	service := NewFlightService(repo, cache)

	ctx := context.Background()

	cache.On("GetFlights", ctx).Return(nil, errors.New("redis down"))
	cache.On("SetFlights", ctx, testFlights).Return(errors.New("redis down"))

	flights, err := service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, flights, 2)
}

func TestFlightService_List_nilCache(t *testing.T) {
	repo := repository.NewStaticFlightRepository(testFlights)
	service := NewFlightService(repo, nil)

	flights, err := service.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, flights, 2)
}

func TestFlightService_GetByID(t *testing.T) {
	repo := repository.NewStaticFlightRepository(testFlights)
	service := NewFlightService(repo, nil)

	flight, err := service.GetByID(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Delta", flight.Airline)

	_, err = service.GetByID(context.Background(), "99")
	assert.ErrorIs(t, err, repository.ErrFlightNotFound)
}

func TestFlightService_Search(t *testing.T) {
	repo := repository.NewStaticFlightRepository(testFlights)
	service := NewFlightService(repo, nil)

	matched, err := service.Search(context.Background(), "sfo", "tokyo")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "1", matched[0].ID)
}
