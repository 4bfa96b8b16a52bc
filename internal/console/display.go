package console

import (
	"context"

	"github.com/Domenick1991/ferrybooking/internal/storage"
)

var displayMenu = menu{
	title: "Display Menu:",
	items: []string{"Display passengers", "Display cashier information", "Display tickets"},
	back:  "Back to main menu",
}

func (c *Console) displayMenu(ctx context.Context) error {
	return c.submenu(ctx, displayMenu, c.displayPassengers, c.displayCashier, c.displayTickets)
}

func (c *Console) displayPassengers(ctx context.Context) error {
	c.println()

	passengers, err := c.ledger.Passengers(ctx)
	if err != nil {
		c.fail(ctx, "display passengers", err)
		return nil
	}
	if len(passengers) == 0 {
		c.println("No passenger available.")
		c.println()
		return nil
	}

	c.println("Passenger list:")
	for i := range passengers {
		passengers[i].DisplayInfo(c.out)
	}
	return nil
}

func (c *Console) displayCashier(_ context.Context) error {
	c.println()
	c.ledger.Cashier().DisplayInfo(c.out)
	return nil
}

func (c *Console) displayTickets(ctx context.Context) error {
	c.println()

	passengers, err := c.ledger.Passengers(ctx)
	if err != nil {
		c.fail(ctx, "display tickets", err)
		return nil
	}
	issued := false
	for i := range passengers {
		issued = issued || passengers[i].HasTicket()
	}
	if !issued {
		c.println("No ticket available.")
		c.println()
		return nil
	}

	c.println("Ticket list:")
	for _, p := range passengers {
		c.printf("Passenger: %s\n", p.Name)
		if !p.HasTicket() {
			c.println("No tickets available.")
			continue
		}
		for _, t := range p.Tickets {
			storage.WriteTicket(c.out, t)
			c.println()
		}
	}
	return nil
}
