package reports

import (
	"context"
	"sort"

	"github.com/Domenick1991/ferrybooking/internal/domain"
	"github.com/Domenick1991/ferrybooking/internal/repository"
)

type ReportUseCase interface {
	PassengersOnShip(ctx context.Context, shipName string) (ShipOccupancy, error)
	UniqueShipNames(ctx context.Context) ([]string, error)
	MostPopularCabinClasses(ctx context.Context) ([]domain.CabinClass, error)
	TotalRevenue(ctx context.Context) (float64, error)
	MostPopularDestinations(ctx context.Context) ([]string, error)
	TotalPassengers(ctx context.Context) (int, error)
}

// ShipOccupancy with zero passengers means no tickets were issued for the ship.
// That is an answer, not an error.
type ShipOccupancy struct {
	Ship       string
	Passengers int
}

func (o ShipOccupancy) HasTickets() bool {
	return o.Passengers > 0
}

type ReportService struct {
	passengers repository.PassengerRepository
}

func NewReportService(passengers repository.PassengerRepository) *ReportService {
	return &ReportService{passengers: passengers}
}

func (s *ReportService) PassengersOnShip(ctx context.Context, shipName string) (ShipOccupancy, error) {
	occupancy := ShipOccupancy{Ship: shipName}
	err := s.eachTicket(ctx, func(t domain.Ticket) {
		if t.ShipName == shipName {
			occupancy.Passengers++
		}
	})
	return occupancy, err
}

// UniqueShipNames returns ships with at least one ticket, in first-seen order.
func (s *ReportService) UniqueShipNames(ctx context.Context) ([]string, error) {
	var names []string
	seen := make(map[string]struct{})
	err := s.eachTicket(ctx, func(t domain.Ticket) {
		if _, ok := seen[t.ShipName]; !ok {
			seen[t.ShipName] = struct{}{}
			names = append(names, t.ShipName)
		}
	})
	return names, err
}

// MostPopularCabinClasses returns every class sharing the top count, ascending.
func (s *ReportService) MostPopularCabinClasses(ctx context.Context) ([]domain.CabinClass, error) {
	counts := make(map[domain.CabinClass]int)
	if err := s.eachTicket(ctx, func(t domain.Ticket) {
		counts[t.CabinClass]++
	}); err != nil {
		return nil, err
	}

	classes := topKeys(counts)
	sort.Slice(classes, func(i, j int) bool { return classes[i] < classes[j] })
	return classes, nil
}

func (s *ReportService) TotalRevenue(ctx context.Context) (float64, error) {
	var total float64
	err := s.eachTicket(ctx, func(t domain.Ticket) {
		total += t.Price
	})
	return total, err
}

// MostPopularDestinations returns every destination port sharing the top count, sorted by name.
func (s *ReportService) MostPopularDestinations(ctx context.Context) ([]string, error) {
	counts := make(map[string]int)
	if err := s.eachTicket(ctx, func(t domain.Ticket) {
		counts[t.Route.Destination]++
	}); err != nil {
		return nil, err
	}

	ports := topKeys(counts)
	sort.Strings(ports)
	return ports, nil
}

func (s *ReportService) TotalPassengers(ctx context.Context) (int, error) {
	passengers, err := s.passengers.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(passengers), nil
}

func (s *ReportService) eachTicket(ctx context.Context, fn func(domain.Ticket)) error {
	passengers, err := s.passengers.List(ctx)
	if err != nil {
		return err
	}
	for _, p := range passengers {
		for _, t := range p.Tickets {
			fn(t)
		}
	}
	return nil
}

func topKeys[K comparable](counts map[K]int) []K {
	top := 0
	for _, n := range counts {
		if n > top {
			top = n
		}
	}

	var keys []K
	for k, n := range counts {
		if n == top {
			keys = append(keys, k)
		}
	}
	return keys
}

var _ ReportUseCase = (*ReportService)(nil)
