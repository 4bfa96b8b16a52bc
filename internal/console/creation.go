package console

import (
	"context"

	"github.com/Domenick1991/ferrybooking/internal/domain"
	"github.com/Domenick1991/ferrybooking/internal/service/ledger"
	"github.com/Domenick1991/ferrybooking/internal/validation"
)

var creationMenu = menu{
	title: "Creation Menu:",
	items: []string{"Create passenger", "Create ticket"},
	back:  "Back to main menu",
}

func (c *Console) creationMenu(ctx context.Context) error {
	return c.submenu(ctx, creationMenu, c.createPassenger, c.createTicket)
}

func (c *Console) createPassenger(ctx context.Context) error {
	c.println()

	var input ledger.RegisterPassengerInput
	var err error
	if input.Name, err = c.readLine(ctx, "Enter passenger name: "); err != nil {
		return err
	}
	if input.Address, err = c.readLine(ctx, "Enter address: "); err != nil {
		return err
	}

	for {
		if input.Phone, err = c.readLine(ctx, "Enter phone number (format: +380xxxxxxxxx): "); err != nil {
			return err
		}
		if validation.ValidPhone(input.Phone) {
			break
		}
		c.println("Invalid phone number format. Please enter a valid phone number in the format +380xxxxxxxxx.")
	}

	for {
		id, ok, err := c.readInt(ctx, "Enter passenger ID (must be greater than or equal to 1): ")
		if err != nil {
			return err
		}
		if ok && c.ledger.PassengerIDAvailable(ctx, id) {
			input.ID = id
			break
		}
		c.println("Invalid input for passenger ID. Please choose a different ID greater than or equal to 1.")
	}
	c.println()

	if _, err := c.ledger.RegisterPassenger(ctx, input); err != nil {
		c.fail(ctx, "create passenger", err)
		return nil
	}
	c.println("Passenger added successfully.")
	c.println()

	c.snapshot(ctx, c.store.SavePassengers)
	return nil
}

func (c *Console) createTicket(ctx context.Context) error {
	c.println()

	passengers, err := c.ledger.Passengers(ctx)
	if err != nil {
		c.fail(ctx, "create ticket", err)
		return nil
	}
	if len(passengers) == 0 {
		c.println("No passengers available to create a ticket for.")
		return nil
	}

	input := ledger.IssueTicketInput{}
	if input.ShipName, err = c.readLine(ctx, "Enter ship name: "); err != nil {
		return err
	}

	for {
		id, ok, err := c.readInt(ctx, "Enter passenger ID: ")
		if err != nil {
			return err
		}
		if ok && id >= 1 {
			input.PassengerID = id
			break
		}
		c.println("Invalid input for passenger ID. Please choose a different ID.")
	}

	// Nothing else is asked when the ticket cannot be issued anyway.
	if err := c.ledger.CheckEligibility(ctx, input.PassengerID, input.ShipName); err != nil {
		c.fail(ctx, "create ticket", err)
		return nil
	}

	for {
		id, ok, err := c.readInt(ctx, "Enter ticket ID (must be greater than or equal to 1): ")
		if err != nil {
			return err
		}
		if ok && c.ledger.TicketIDAvailable(ctx, id) {
			input.TicketID = id
			break
		}
		c.println("Invalid input for ticket ID. Please choose a different ID greater than or equal to 1.")
	}

	if _, known := c.ledger.Route(ctx, input.ShipName); !known {
		route, err := c.readRoute(ctx)
		if err != nil {
			return err
		}
		input.Route = &route
	}

	if input.CabinClass, input.Price, err = c.readFare(ctx); err != nil {
		return err
	}

	if _, err := c.ledger.IssueTicket(ctx, input); err != nil {
		c.println()
		c.fail(ctx, "create ticket", err)
		return nil
	}
	c.println()
	c.println("Ticket added successfully.")
	c.println()

	c.snapshot(ctx, c.store.SaveReservations)
	return nil
}

func (c *Console) readRoute(ctx context.Context) (domain.Route, error) {
	var route domain.Route
	var err error
	if route.Departure, err = c.readLine(ctx, "Enter departure port: "); err != nil {
		return route, err
	}

	for {
		if route.Destination, err = c.readLine(ctx, "Enter destination port: "); err != nil {
			return route, err
		}
		if route.Destination != route.Departure {
			break
		}
		c.println("Destination port cannot be the same as departure port. Please enter a different destination port.")
	}

	for {
		if route.Date, err = c.readLine(ctx, "Enter date (dd/mm/yy): "); err != nil {
			return route, err
		}
		if validation.ValidDate(route.Date) {
			break
		}
		c.println("Invalid date. Please enter date for 24-25 years")
	}
	return route, nil
}

// readFare asks for the class and then the price until the price fits the class band.
func (c *Console) readFare(ctx context.Context) (domain.CabinClass, float64, error) {
	for {
		n, ok, err := c.readInt(ctx, "Enter cabin class (1 - Economy (51 - 249$), 2 - Business (251 - 499$), 3 - First (501 - 999$)): ")
		if err != nil {
			return 0, 0, err
		}
		class := domain.CabinClass(n)
		if !ok || !class.Valid() {
			c.println("Invalid input. Please enter a valid cabin class (1, 2, or 3).")
			continue
		}

		price, ok, err := c.readFloat(ctx, "Enter price: $")
		if err != nil {
			return 0, 0, err
		}
		if !ok {
			c.println("Invalid input. Please enter a valid price.")
			continue
		}
		if !validation.ValidPrice(class, price) {
			c.println("Invalid price for the selected cabin class. Please enter a valid price.")
			continue
		}
		return class, price, nil
	}
}

// snapshot rewrites one ledger file after a successful mutation.
func (c *Console) snapshot(ctx context.Context, save func(context.Context, []domain.Passenger) error) {
	passengers, err := c.ledger.Passengers(ctx)
	if err == nil {
		err = save(ctx, passengers)
	}
	if err != nil {
		c.fail(ctx, "snapshot", err)
		return
	}
	c.println("Data saved to file successfully.")
}
