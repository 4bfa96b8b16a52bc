package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/ferrybooking/internal/domain"
)

type PassengerRepository interface {
	Create(ctx context.Context, passenger *domain.Passenger) error
	GetByID(ctx context.Context, id int) (*domain.Passenger, error)
	List(ctx context.Context) ([]domain.Passenger, error)
	AddTicket(ctx context.Context, passengerID int, ticket domain.Ticket) error
	PassengerIDUsed(ctx context.Context, id int) bool
	TicketIDUsed(ctx context.Context, id int) bool
}

// MemoryPassengerRepository keeps passengers in registration order plus the two ID registries.
type MemoryPassengerRepository struct {
	passengers   []*domain.Passenger
	passengerIDs map[int]struct{}
	ticketIDs    map[int]struct{}
}

func NewPassengerRepository() PassengerRepository {
	return &MemoryPassengerRepository{
		passengerIDs: make(map[int]struct{}),
		ticketIDs:    make(map[int]struct{}),
	}
}

func (r *MemoryPassengerRepository) Create(ctx context.Context, passenger *domain.Passenger) error {
	if _, used := r.passengerIDs[passenger.ID]; used {
		return fmt.Errorf("%w: passenger id %d already used", domain.ErrConflict, passenger.ID)
	}

	stored := *passenger
	stored.Tickets = append([]domain.Ticket(nil), passenger.Tickets...)
	r.passengers = append(r.passengers, &stored)
	r.passengerIDs[passenger.ID] = struct{}{}
	for _, t := range stored.Tickets {
		r.ticketIDs[t.ID] = struct{}{}
	}
	return nil
}

func (r *MemoryPassengerRepository) GetByID(ctx context.Context, id int) (*domain.Passenger, error) {
	p := r.find(id)
	if p == nil {
		return nil, fmt.Errorf("%w: passenger %d", domain.ErrNotFound, id)
	}
	cp := clonePassenger(p)
	return &cp, nil
}

func (r *MemoryPassengerRepository) List(ctx context.Context) ([]domain.Passenger, error) {
	out := make([]domain.Passenger, 0, len(r.passengers))
	for _, p := range r.passengers {
		out = append(out, clonePassenger(p))
	}
	return out, nil
}

func (r *MemoryPassengerRepository) AddTicket(ctx context.Context, passengerID int, ticket domain.Ticket) error {
	p := r.find(passengerID)
	if p == nil {
		return fmt.Errorf("%w: passenger %d", domain.ErrNotFound, passengerID)
	}
	if _, used := r.ticketIDs[ticket.ID]; used {
		return fmt.Errorf("%w: ticket id %d already used", domain.ErrConflict, ticket.ID)
	}

	ticket.PassengerID = passengerID
	p.Tickets = append(p.Tickets, ticket)
	r.ticketIDs[ticket.ID] = struct{}{}
	return nil
}

func (r *MemoryPassengerRepository) PassengerIDUsed(ctx context.Context, id int) bool {
	_, used := r.passengerIDs[id]
	return used
}

func (r *MemoryPassengerRepository) TicketIDUsed(ctx context.Context, id int) bool {
	_, used := r.ticketIDs[id]
	return used
}

func (r *MemoryPassengerRepository) find(id int) *domain.Passenger {
	for _, p := range r.passengers {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func clonePassenger(p *domain.Passenger) domain.Passenger {
	cp := *p
	cp.Tickets = append([]domain.Ticket(nil), p.Tickets...)
	return cp
}

var _ PassengerRepository = (*MemoryPassengerRepository)(nil)
