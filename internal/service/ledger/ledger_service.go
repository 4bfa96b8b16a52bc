package ledger

import (
	"context"
	"fmt"

	"github.com/Domenick1991/ferrybooking/internal/domain"
	"github.com/Domenick1991/ferrybooking/internal/logger"
	"github.com/Domenick1991/ferrybooking/internal/repository"
	"github.com/Domenick1991/ferrybooking/internal/validation"
	"github.com/jinzhu/copier"
)

type LedgerUseCase interface {
	RegisterPassenger(ctx context.Context, input RegisterPassengerInput) (*domain.Passenger, error)
	IssueTicket(ctx context.Context, input IssueTicketInput) (*domain.Ticket, error)
	CheckEligibility(ctx context.Context, passengerID int, shipName string) error
	PassengerIDAvailable(ctx context.Context, id int) bool
	TicketIDAvailable(ctx context.Context, id int) bool
	Route(ctx context.Context, shipName string) (domain.Route, bool)
	Passengers(ctx context.Context) ([]domain.Passenger, error)
	HasTickets(ctx context.Context) (bool, error)
	Cashier() domain.Cashier
}

type RegisterPassengerInput struct {
	ID      int `validate:"gte=1"`
	Name    string
	Address string
	Phone   string `validate:"phone"`
}

// IssueTicketInput.Route is only read when the ship has no route yet.
type IssueTicketInput struct {
	PassengerID int
	ShipName    string
	TicketID    int
	CabinClass  domain.CabinClass
	Price       float64
	Route       *domain.Route
}

type LedgerService struct {
	passengers repository.PassengerRepository
	routes     repository.RouteRepository
	capacity   domain.Capacity
	cashier    domain.Cashier
	logger     logger.AppLogger
}

type LedgerServiceOption func(*LedgerService)

func WithCapacity(capacity domain.Capacity) LedgerServiceOption {
	return func(s *LedgerService) {
		s.capacity = capacity
	}
}

func WithCashier(cashier domain.Cashier) LedgerServiceOption {
	return func(s *LedgerService) {
		s.cashier = cashier
	}
}

func WithLogger(l logger.AppLogger) LedgerServiceOption {
	return func(s *LedgerService) {
		s.logger = l
	}
}

func NewLedgerService(
	passengers repository.PassengerRepository,
	routes repository.RouteRepository,
	opts ...LedgerServiceOption,
) *LedgerService {
	service := &LedgerService{
		passengers: passengers,
		routes:     routes,
		capacity:   domain.DefaultCapacity(),
		logger:     logger.NewNop(),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *LedgerService) RegisterPassenger(ctx context.Context, input RegisterPassengerInput) (*domain.Passenger, error) {
	if err := validation.Struct(input); err != nil {
		logger.LogError(ctx, s.logger, "passenger rejected", err, map[string]interface{}{"passenger_id": input.ID})
		return nil, err
	}
	if s.passengers.PassengerIDUsed(ctx, input.ID) {
		err := fmt.Errorf("%w: %w: passenger id %d already used", domain.ErrValidation, domain.ErrConflict, input.ID)
		logger.LogError(ctx, s.logger, "passenger rejected", err, map[string]interface{}{"passenger_id": input.ID})
		return nil, err
	}

	var passenger domain.Passenger
	if err := copier.Copy(&passenger, &input); err != nil {
		return nil, fmt.Errorf("copy passenger input: %w", err)
	}

	if err := s.passengers.Create(ctx, &passenger); err != nil {
		logger.LogError(ctx, s.logger, "passenger not stored", err, map[string]interface{}{"passenger_id": input.ID})
		return nil, err
	}

	logger.LogInfo(ctx, s.logger, "passenger registered", map[string]interface{}{"passenger_id": passenger.ID})
	return &passenger, nil
}

// CheckEligibility runs the checks that do not depend on ticket details: the passenger
// exists, holds no ticket yet, and the ship still has room.
func (s *LedgerService) CheckEligibility(ctx context.Context, passengerID int, shipName string) error {
	passenger, err := s.passengers.GetByID(ctx, passengerID)
	if err != nil {
		return err
	}
	if passenger.HasTicket() {
		return fmt.Errorf("%w: passenger %d already has a ticket", domain.ErrConflict, passengerID)
	}

	load, err := s.shipLoad(ctx, shipName)
	if err != nil {
		return err
	}
	if load.total >= s.capacity.Ship {
		return fmt.Errorf("%w: ship %q is full (%d of %d)", domain.ErrCapacity, shipName, load.total, s.capacity.Ship)
	}
	return nil
}

func (s *LedgerService) IssueTicket(ctx context.Context, input IssueTicketInput) (*domain.Ticket, error) {
	ticket, newRoute, err := s.prepareTicket(ctx, input)
	if err != nil {
		logger.LogError(ctx, s.logger, "ticket rejected", err, map[string]interface{}{
			"passenger_id": input.PassengerID,
			"ship":         input.ShipName,
			"ticket_id":    input.TicketID,
		})
		return nil, err
	}

	if err := s.passengers.AddTicket(ctx, input.PassengerID, *ticket); err != nil {
		logger.LogError(ctx, s.logger, "ticket not stored", err, map[string]interface{}{"ticket_id": ticket.ID})
		return nil, err
	}
	if newRoute {
		if err := s.routes.Bind(ctx, ticket.ShipName, ticket.Route); err != nil {
			return nil, err
		}
		logger.LogInfo(ctx, s.logger, "route recorded", map[string]interface{}{
			"ship":        ticket.ShipName,
			"departure":   ticket.Route.Departure,
			"destination": ticket.Route.Destination,
			"date":        ticket.Route.Date,
		})
	}

	logger.LogInfo(ctx, s.logger, "ticket issued", map[string]interface{}{
		"ticket_id":    ticket.ID,
		"passenger_id": ticket.PassengerID,
		"ship":         ticket.ShipName,
		"cabin_class":  int(ticket.CabinClass),
		"price":        ticket.Price,
	})
	return ticket, nil
}

func (s *LedgerService) prepareTicket(ctx context.Context, input IssueTicketInput) (*domain.Ticket, bool, error) {
	if err := s.CheckEligibility(ctx, input.PassengerID, input.ShipName); err != nil {
		return nil, false, err
	}

	if input.TicketID < 1 {
		return nil, false, fmt.Errorf("%w: ticket id must be greater than or equal to 1", domain.ErrValidation)
	}
	if s.passengers.TicketIDUsed(ctx, input.TicketID) {
		return nil, false, fmt.Errorf("%w: %w: ticket id %d already used", domain.ErrValidation, domain.ErrConflict, input.TicketID)
	}

	route, known := s.routes.Get(ctx, input.ShipName)
	if !known {
		if input.Route == nil {
			return nil, false, fmt.Errorf("%w: ship %q has no route yet, departure, destination and date are required", domain.ErrValidation, input.ShipName)
		}
		if err := validation.Struct(*input.Route); err != nil {
			return nil, false, err
		}
		route = *input.Route
	}

	if !input.CabinClass.Valid() {
		return nil, false, fmt.Errorf("%w: cabin class must be 1, 2 or 3", domain.ErrValidation)
	}
	if !validation.ValidPrice(input.CabinClass, input.Price) {
		band, _ := domain.PriceBandFor(input.CabinClass)
		return nil, false, fmt.Errorf("%w: price %s outside %s band (%s, %s)", domain.ErrValidation,
			domain.FormatPrice(input.Price), input.CabinClass, domain.FormatPrice(band.Min), domain.FormatPrice(band.Max))
	}

	load, err := s.shipLoad(ctx, input.ShipName)
	if err != nil {
		return nil, false, err
	}
	if limit := s.capacity.ForClass(input.CabinClass); load.byClass[input.CabinClass] >= limit {
		return nil, false, fmt.Errorf("%w: %s class on ship %q is full (%d of %d)", domain.ErrCapacity,
			input.CabinClass, input.ShipName, load.byClass[input.CabinClass], limit)
	}

	return &domain.Ticket{
		ID:          input.TicketID,
		PassengerID: input.PassengerID,
		ShipName:    input.ShipName,
		Route:       route,
		CabinClass:  input.CabinClass,
		Price:       input.Price,
	}, !known, nil
}

type shipLoad struct {
	total   int
	byClass map[domain.CabinClass]int
}

func (s *LedgerService) shipLoad(ctx context.Context, shipName string) (shipLoad, error) {
	passengers, err := s.passengers.List(ctx)
	if err != nil {
		return shipLoad{}, err
	}

	load := shipLoad{byClass: make(map[domain.CabinClass]int)}
	for _, p := range passengers {
		for _, t := range p.Tickets {
			if t.ShipName == shipName {
				load.total++
				load.byClass[t.CabinClass]++
			}
		}
	}
	return load, nil
}

func (s *LedgerService) PassengerIDAvailable(ctx context.Context, id int) bool {
	return id >= 1 && !s.passengers.PassengerIDUsed(ctx, id)
}

func (s *LedgerService) TicketIDAvailable(ctx context.Context, id int) bool {
	return id >= 1 && !s.passengers.TicketIDUsed(ctx, id)
}

func (s *LedgerService) Route(ctx context.Context, shipName string) (domain.Route, bool) {
	return s.routes.Get(ctx, shipName)
}

func (s *LedgerService) Passengers(ctx context.Context) ([]domain.Passenger, error) {
	return s.passengers.List(ctx)
}

func (s *LedgerService) HasTickets(ctx context.Context) (bool, error) {
	passengers, err := s.passengers.List(ctx)
	if err != nil {
		return false, err
	}
	for _, p := range passengers {
		if p.HasTicket() {
			return true, nil
		}
	}
	return false, nil
}

func (s *LedgerService) Cashier() domain.Cashier {
	return s.cashier
}

var _ LedgerUseCase = (*LedgerService)(nil)
