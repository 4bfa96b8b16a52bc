package storage

import (
	"fmt"
	"io"

	"github.com/Domenick1991/ferrybooking/internal/domain"
)

type ReservationStore struct {
	*TextFile
}

func NewReservationStore(path string) *ReservationStore {
	return &ReservationStore{TextFile: NewTextFile(path)}
}

func (s *ReservationStore) Snapshot(passengers []domain.Passenger) error {
	return s.Overwrite(func(w io.Writer) {
		WriteReservations(w, passengers)
	})
}

// WriteReservations renders a block for each passenger holding at least one ticket.
func WriteReservations(w io.Writer, passengers []domain.Passenger) {
	for _, p := range passengers {
		if !p.HasTicket() {
			continue
		}
		fmt.Fprintf(w, "Reservations for Passenger: %s (ID: %d)\n", p.Name, p.ID)
		for _, t := range p.Tickets {
			WriteTicket(w, t)
			fmt.Fprintln(w)
		}
	}
}

// WriteTicket is shared with the console ticket listing.
func WriteTicket(w io.Writer, t domain.Ticket) {
	fmt.Fprintf(w, "Ticket ID: %d\n", t.ID)
	fmt.Fprintf(w, "Ship Name: %s\n", t.ShipName)
	fmt.Fprintf(w, "Departure Port: %s\n", t.Route.Departure)
	fmt.Fprintf(w, "Destination Port: %s\n", t.Route.Destination)
	fmt.Fprintf(w, "Date: %s\n", t.Route.Date)
	fmt.Fprintf(w, "Cabin Class: %d\n", int(t.CabinClass))
	fmt.Fprintf(w, "Price: $%s\n", domain.FormatPrice(t.Price))
}
