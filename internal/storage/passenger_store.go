package storage

import (
	"fmt"
	"io"

	"github.com/Domenick1991/ferrybooking/internal/domain"
)

type PassengerStore struct {
	*TextFile
}

func NewPassengerStore(path string) *PassengerStore {
	return &PassengerStore{TextFile: NewTextFile(path)}
}

func (s *PassengerStore) Snapshot(passengers []domain.Passenger) error {
	return s.Overwrite(func(w io.Writer) {
		WritePassengers(w, passengers)
	})
}

// WritePassengers renders one block per passenger, tickets or not.
func WritePassengers(w io.Writer, passengers []domain.Passenger) {
	for _, p := range passengers {
		fmt.Fprintln(w, "Passenger")
		fmt.Fprintf(w, "Name: %s\n", p.Name)
		fmt.Fprintf(w, "Address: %s\n", p.Address)
		fmt.Fprintf(w, "Phone number: %s\n", p.Phone)
		fmt.Fprintf(w, "ID: %d\n", p.ID)
		fmt.Fprintln(w)
	}
}
