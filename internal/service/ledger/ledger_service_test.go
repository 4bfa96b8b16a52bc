package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/ferrybooking/internal/domain"
	"github.com/Domenick1991/ferrybooking/internal/logger"
	"github.com/Domenick1991/ferrybooking/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type MockPassengerRepository struct {
	mock.Mock
}

func (m *MockPassengerRepository) Create(ctx context.Context, passenger *domain.Passenger) error {
	args := m.Called(ctx, passenger)
	return args.Error(0)
}

func (m *MockPassengerRepository) GetByID(ctx context.Context, id int) (*domain.Passenger, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Passenger), args.Error(1)
}

func (m *MockPassengerRepository) List(ctx context.Context) ([]domain.Passenger, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Passenger), args.Error(1)
}

func (m *MockPassengerRepository) AddTicket(ctx context.Context, passengerID int, ticket domain.Ticket) error {
	args := m.Called(ctx, passengerID, ticket)
	return args.Error(0)
}

func (m *MockPassengerRepository) PassengerIDUsed(ctx context.Context, id int) bool {
	args := m.Called(ctx, id)
	return args.Bool(0)
}

func (m *MockPassengerRepository) TicketIDUsed(ctx context.Context, id int) bool {
	args := m.Called(ctx, id)
	return args.Bool(0)
}

var odysseyRoute = domain.Route{Departure: "Kyiv", Destination: "Lviv", Date: "15/06/24"}

func newTestService(t *testing.T, opts ...LedgerServiceOption) *LedgerService {
	t.Helper()
	opts = append([]LedgerServiceOption{WithLogger(logger.NewZap(zaptest.NewLogger(t)))}, opts...)
	return NewLedgerService(repository.NewPassengerRepository(), repository.NewRouteRepository(), opts...)
}

func register(t *testing.T, s *LedgerService, id int) {
	t.Helper()
	_, err := s.RegisterPassenger(context.Background(), RegisterPassengerInput{
		ID:      id,
		Name:    "Passenger",
		Address: "Khreshchatyk 1",
		Phone:   "+380501112233",
	})
	require.NoError(t, err)
}

func issue(s *LedgerService, passengerID, ticketID int, ship string, class domain.CabinClass, price float64) error {
	route := odysseyRoute
	_, err := s.IssueTicket(context.Background(), IssueTicketInput{
		PassengerID: passengerID,
		ShipName:    ship,
		TicketID:    ticketID,
		CabinClass:  class,
		Price:       price,
		Route:       &route,
	})
	return err
}

func TestLedgerService_RegisterPassenger_Success(t *testing.T) {
	mockRepo := &MockPassengerRepository{}
	service := NewLedgerService(mockRepo, repository.NewRouteRepository())
	ctx := context.Background()

	mockRepo.On("PassengerIDUsed", ctx, 1).Return(false).Once()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Passenger")).Return(nil).Once()

	passenger, err := service.RegisterPassenger(ctx, RegisterPassengerInput{
		ID:      1,
		Name:    "Ann",
		Address: "Shevchenka 5",
		Phone:   "+380501112233",
	})

	require.NoError(t, err)
	assert.Equal(t, &domain.Passenger{ID: 1, Name: "Ann", Address: "Shevchenka 5", Phone: "+380501112233"}, passenger)
	mockRepo.AssertExpectations(t)
}

func TestLedgerService_RegisterPassenger_ValidationErrors(t *testing.T) {
	mockRepo := &MockPassengerRepository{}
	service := NewLedgerService(mockRepo, repository.NewRouteRepository())
	ctx := context.Background()

	testCases := []struct {
		name        string
		input       RegisterPassengerInput
		expectedErr string
	}{
		{
			name:        "Wrong prefix",
			input:       RegisterPassengerInput{ID: 1, Name: "Ann", Phone: "+381501112233"},
			expectedErr: "phone must match",
		},
		{
			name:        "Too few digits",
			input:       RegisterPassengerInput{ID: 1, Name: "Ann", Phone: "+38050111223"},
			expectedErr: "phone must match",
		},
		{
			name:        "Zero id",
			input:       RegisterPassengerInput{ID: 0, Name: "Ann", Phone: "+380501112233"},
			expectedErr: "id must be greater than or equal to 1",
		},
		{
			name:        "Negative id",
			input:       RegisterPassengerInput{ID: -3, Name: "Ann", Phone: "+380501112233"},
			expectedErr: "id must be greater than or equal to 1",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			passenger, err := service.RegisterPassenger(ctx, tc.input)

			assert.Nil(t, passenger)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation))
			assert.Contains(t, err.Error(), tc.expectedErr)
		})
	}

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLedgerService_RegisterPassenger_DuplicateID(t *testing.T) {
	service := newTestService(t)
	register(t, service, 1)

	_, err := service.RegisterPassenger(context.Background(), RegisterPassengerInput{ID: 1, Name: "Again", Phone: "+380671234567"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.True(t, errors.Is(err, domain.ErrConflict))

	passengers, err := service.Passengers(context.Background())
	require.NoError(t, err)
	assert.Len(t, passengers, 1)
}

func TestLedgerService_RegisterPassenger_RepositoryError(t *testing.T) {
	mockRepo := &MockPassengerRepository{}
	service := NewLedgerService(mockRepo, repository.NewRouteRepository())
	ctx := context.Background()

	expectedErr := errors.New("storage broken")
	mockRepo.On("PassengerIDUsed", ctx, 2).Return(false).Once()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Passenger")).Return(expectedErr).Once()

	passenger, err := service.RegisterPassenger(ctx, RegisterPassengerInput{ID: 2, Name: "Bo", Phone: "+380501112233"})

	assert.Nil(t, passenger)
	assert.Equal(t, expectedErr, err)
	mockRepo.AssertExpectations(t)
}

func TestLedgerService_IssueTicket_Success(t *testing.T) {
	service := newTestService(t)
	register(t, service, 1)
	ctx := context.Background()

	ticket, err := service.IssueTicket(ctx, IssueTicketInput{
		PassengerID: 1,
		ShipName:    "Odyssey",
		TicketID:    1,
		CabinClass:  domain.Economy,
		Price:       100,
		Route:       &odysseyRoute,
	})

	require.NoError(t, err)
	assert.Equal(t, &domain.Ticket{
		ID:          1,
		PassengerID: 1,
		ShipName:    "Odyssey",
		Route:       odysseyRoute,
		CabinClass:  domain.Economy,
		Price:       100,
	}, ticket)

	route, ok := service.Route(ctx, "Odyssey")
	assert.True(t, ok)
	assert.Equal(t, odysseyRoute, route)
	assert.False(t, service.TicketIDAvailable(ctx, 1))

	hasTickets, err := service.HasTickets(ctx)
	require.NoError(t, err)
	assert.True(t, hasTickets)
}

func TestLedgerService_IssueTicket_ReusesKnownRoute(t *testing.T) {
	service := newTestService(t)
	register(t, service, 1)
	register(t, service, 2)
	register(t, service, 3)
	ctx := context.Background()

	require.NoError(t, issue(service, 1, 1, "Odyssey", domain.Economy, 100))

	// A route supplied for a known ship is ignored.
	other := domain.Route{Departure: "Odesa", Destination: "Izmail", Date: "01/07/25"}
	ticket, err := service.IssueTicket(ctx, IssueTicketInput{
		PassengerID: 2, ShipName: "Odyssey", TicketID: 2, CabinClass: domain.Business, Price: 300, Route: &other,
	})
	require.NoError(t, err)
	assert.Equal(t, odysseyRoute, ticket.Route)

	// And none is needed at all.
	ticket, err = service.IssueTicket(ctx, IssueTicketInput{
		PassengerID: 3, ShipName: "Odyssey", TicketID: 3, CabinClass: domain.First, Price: 700,
	})
	require.NoError(t, err)
	assert.Equal(t, odysseyRoute, ticket.Route)
}

func TestLedgerService_IssueTicket_NotFound(t *testing.T) {
	service := newTestService(t)

	err := issue(service, 42, 1, "Odyssey", domain.Economy, 100)

	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestLedgerService_IssueTicket_SecondTicketConflicts(t *testing.T) {
	service := newTestService(t)
	register(t, service, 1)
	require.NoError(t, issue(service, 1, 1, "Odyssey", domain.Economy, 100))

	testCases := []struct {
		name  string
		ship  string
		class domain.CabinClass
		price float64
	}{
		{"Same ship same class", "Odyssey", domain.Economy, 120},
		{"Same ship other class", "Odyssey", domain.First, 800},
		{"Other ship", "Argo", domain.Business, 300},
	}

	for i, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := issue(service, 1, 10+i, tc.ship, tc.class, tc.price)
			assert.True(t, errors.Is(err, domain.ErrConflict))
		})
	}
}

func TestLedgerService_IssueTicket_ShipFull(t *testing.T) {
	service := newTestService(t, WithCapacity(domain.Capacity{Ship: 2, Economy: 6, Business: 2, First: 2}))
	for id := 1; id <= 3; id++ {
		register(t, service, id)
	}
	require.NoError(t, issue(service, 1, 1, "Odyssey", domain.Economy, 100))
	require.NoError(t, issue(service, 2, 2, "Odyssey", domain.Economy, 100))

	err := issue(service, 3, 3, "Odyssey", domain.First, 700)

	assert.True(t, errors.Is(err, domain.ErrCapacity))
	assert.Contains(t, err.Error(), "is full")
	assert.True(t, service.TicketIDAvailable(context.Background(), 3))
}

func TestLedgerService_IssueTicket_ClassFull(t *testing.T) {
	service := newTestService(t)
	for id := 1; id <= 4; id++ {
		register(t, service, id)
	}
	require.NoError(t, issue(service, 1, 1, "Odyssey", domain.First, 600))
	require.NoError(t, issue(service, 2, 2, "Odyssey", domain.First, 650))

	err := issue(service, 3, 3, "Odyssey", domain.First, 700)
	assert.True(t, errors.Is(err, domain.ErrCapacity))
	assert.Contains(t, err.Error(), "First class")

	// Other classes on the same ship and First on another ship are unaffected.
	assert.NoError(t, issue(service, 3, 3, "Odyssey", domain.Economy, 100))
	assert.NoError(t, issue(service, 4, 4, "Argo", domain.First, 700))
}

func TestLedgerService_IssueTicket_EconomyCap(t *testing.T) {
	service := newTestService(t)
	for id := 1; id <= 7; id++ {
		register(t, service, id)
	}
	for id := 1; id <= 6; id++ {
		require.NoError(t, issue(service, id, id, "Odyssey", domain.Economy, 100))
	}

	err := issue(service, 7, 7, "Odyssey", domain.Economy, 100)

	assert.True(t, errors.Is(err, domain.ErrCapacity))
}

func TestLedgerService_IssueTicket_ValidationErrors(t *testing.T) {
	service := newTestService(t)
	register(t, service, 1)
	register(t, service, 2)
	require.NoError(t, issue(service, 2, 5, "Argo", domain.Economy, 100))

	sameport := domain.Route{Departure: "Kyiv", Destination: "Kyiv", Date: "15/06/24"}
	nonleap := domain.Route{Departure: "Kyiv", Destination: "Lviv", Date: "29/02/25"}

	testCases := []struct {
		name        string
		input       IssueTicketInput
		expectedErr string
		conflict    bool
	}{
		{
			name:        "Ticket id zero",
			input:       IssueTicketInput{PassengerID: 1, ShipName: "Odyssey", TicketID: 0, CabinClass: domain.Economy, Price: 100, Route: &odysseyRoute},
			expectedErr: "ticket id must be greater than or equal to 1",
		},
		{
			name:        "Ticket id used",
			input:       IssueTicketInput{PassengerID: 1, ShipName: "Odyssey", TicketID: 5, CabinClass: domain.Economy, Price: 100, Route: &odysseyRoute},
			expectedErr: "ticket id 5 already used",
			conflict:    true,
		},
		{
			name:        "Missing route for new ship",
			input:       IssueTicketInput{PassengerID: 1, ShipName: "Odyssey", TicketID: 1, CabinClass: domain.Economy, Price: 100},
			expectedErr: "has no route yet",
		},
		{
			name:        "Destination equals departure",
			input:       IssueTicketInput{PassengerID: 1, ShipName: "Odyssey", TicketID: 1, CabinClass: domain.Economy, Price: 100, Route: &sameport},
			expectedErr: "destination must differ from departure",
		},
		{
			name:        "Non-leap February 29",
			input:       IssueTicketInput{PassengerID: 1, ShipName: "Odyssey", TicketID: 1, CabinClass: domain.Economy, Price: 100, Route: &nonleap},
			expectedErr: "date must be a dd/mm/yy date",
		},
		{
			name:        "Unknown cabin class",
			input:       IssueTicketInput{PassengerID: 1, ShipName: "Odyssey", TicketID: 1, CabinClass: 4, Price: 100, Route: &odysseyRoute},
			expectedErr: "cabin class must be 1, 2 or 3",
		},
		{
			name:        "Economy at 250",
			input:       IssueTicketInput{PassengerID: 1, ShipName: "Odyssey", TicketID: 1, CabinClass: domain.Economy, Price: 250, Route: &odysseyRoute},
			expectedErr: "price 250 outside Economy band (50, 250)",
		},
		{
			name:        "First at 1000",
			input:       IssueTicketInput{PassengerID: 1, ShipName: "Odyssey", TicketID: 1, CabinClass: domain.First, Price: 1000, Route: &odysseyRoute},
			expectedErr: "outside First band",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ticket, err := service.IssueTicket(context.Background(), tc.input)

			assert.Nil(t, ticket)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation))
			assert.Equal(t, tc.conflict, errors.Is(err, domain.ErrConflict))
			assert.Contains(t, err.Error(), tc.expectedErr)
		})
	}

	_, known := service.Route(context.Background(), "Odyssey")
	assert.False(t, known, "failed issuance must not record a route")
}

func TestLedgerService_IssueTicket_BusinessJustAboveBand(t *testing.T) {
	service := newTestService(t)
	register(t, service, 1)

	assert.NoError(t, issue(service, 1, 1, "Odyssey", domain.Business, 250.01))
}

func TestLedgerService_IssueTicket_ClassCapFailureKeepsRouteUnbound(t *testing.T) {
	service := newTestService(t, WithCapacity(domain.Capacity{Ship: 10, Economy: 6, Business: 0, First: 2}))
	register(t, service, 1)

	err := issue(service, 1, 1, "Odyssey", domain.Business, 300)

	assert.True(t, errors.Is(err, domain.ErrCapacity))
	_, known := service.Route(context.Background(), "Odyssey")
	assert.False(t, known)
}

func TestLedgerService_IssueTicket_RepositoryListError(t *testing.T) {
	mockRepo := &MockPassengerRepository{}
	service := NewLedgerService(mockRepo, repository.NewRouteRepository())
	ctx := context.Background()

	expectedErr := errors.New("list failed")
	mockRepo.On("GetByID", ctx, 1).Return(&domain.Passenger{ID: 1}, nil).Once()
	mockRepo.On("List", ctx).Return([]domain.Passenger(nil), expectedErr).Once()

	ticket, err := service.IssueTicket(ctx, IssueTicketInput{PassengerID: 1, ShipName: "Odyssey", TicketID: 1})

	assert.Nil(t, ticket)
	assert.Equal(t, expectedErr, err)
	mockRepo.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "AddTicket", mock.Anything, mock.Anything, mock.Anything)
}

func TestLedgerService_CheckEligibility(t *testing.T) {
	service := newTestService(t, WithCapacity(domain.Capacity{Ship: 1, Economy: 1, Business: 1, First: 1}))
	register(t, service, 1)
	register(t, service, 2)
	ctx := context.Background()

	assert.NoError(t, service.CheckEligibility(ctx, 1, "Odyssey"))
	assert.True(t, errors.Is(service.CheckEligibility(ctx, 9, "Odyssey"), domain.ErrNotFound))

	require.NoError(t, issue(service, 1, 1, "Odyssey", domain.Economy, 100))

	assert.True(t, errors.Is(service.CheckEligibility(ctx, 1, "Argo"), domain.ErrConflict))
	assert.True(t, errors.Is(service.CheckEligibility(ctx, 2, "Odyssey"), domain.ErrCapacity))
	assert.NoError(t, service.CheckEligibility(ctx, 2, "Argo"))
}

func TestLedgerService_IDAvailability(t *testing.T) {
	service := newTestService(t)
	register(t, service, 3)
	ctx := context.Background()

	assert.False(t, service.PassengerIDAvailable(ctx, 0))
	assert.False(t, service.PassengerIDAvailable(ctx, 3))
	assert.True(t, service.PassengerIDAvailable(ctx, 4))
	assert.False(t, service.TicketIDAvailable(ctx, -1))
	assert.True(t, service.TicketIDAvailable(ctx, 1))
}

func TestLedgerService_Cashier(t *testing.T) {
	cashier := domain.Cashier{Organization: "FlexShip", Name: "Jane", Phone: "555-1234", Change: 500}
	service := newTestService(t, WithCashier(cashier))

	assert.Equal(t, cashier, service.Cashier())
}
