package domain

import (
	"fmt"
	"io"
)

// Displayable is implemented by every person record the operator can print.
type Displayable interface {
	DisplayInfo(w io.Writer)
}

type Passenger struct {
	ID      int
	Name    string
	Address string
	Phone   string
	Tickets []Ticket
}

func (p *Passenger) HasTicket() bool {
	return len(p.Tickets) > 0
}

func (p *Passenger) DisplayInfo(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Passenger information:")
	fmt.Fprintf(w, "Name: %s\n", p.Name)
	fmt.Fprintf(w, "Address: %s\n", p.Address)
	fmt.Fprintf(w, "Phone number: %s\n", p.Phone)
	fmt.Fprintf(w, "ID: %d\n", p.ID)
	fmt.Fprintln(w)
}

// Cashier is the fixed operator record. It has no mutation path.
type Cashier struct {
	Organization string
	Name         string
	Phone        string
	Change       float64
}

func (c Cashier) DisplayInfo(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Cashier information:")
	fmt.Fprintf(w, "Organization: %s\n", c.Organization)
	fmt.Fprintf(w, "Name: %s\n", c.Name)
	fmt.Fprintf(w, "Phone number: %s\n", c.Phone)
	fmt.Fprintf(w, "Change: $%s\n", FormatPrice(c.Change))
	fmt.Fprintln(w)
}

var (
	_ Displayable = (*Passenger)(nil)
	_ Displayable = Cashier{}
)
