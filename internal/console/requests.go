package console

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/Domenick1991/ferrybooking/internal/domain"
)

var requestMenu = menu{
	title: "Requests to the system:",
	items: []string{
		"Count passenger on ship",
		"Display unique ship names",
		"Display most popular cabin class",
		"Calculate total revenue",
		"Display most popular destination ports",
		"Total passengers",
	},
	back: "Back to main menu",
}

const noTickets = "No tickets created yet."

func (c *Console) reportMenu(ctx context.Context) error {
	return c.submenu(ctx, requestMenu,
		c.countOnShip,
		c.showShipNames,
		c.showPopularClasses,
		c.showRevenue,
		c.showPopularDestinations,
		c.showPassengerTotal,
	)
}

func (c *Console) countOnShip(ctx context.Context) error {
	c.println()

	ships, err := c.reports.UniqueShipNames(ctx)
	if err != nil {
		c.fail(ctx, "count passengers on ship", err)
		return nil
	}
	if len(ships) == 0 {
		c.println("No ships available")
		return nil
	}

	c.println("Available ships:")
	for _, ship := range ships {
		c.println(ship)
	}
	c.println()

	name, err := c.readLine(ctx, "Enter ship name: ")
	if err != nil {
		return err
	}
	if !slices.Contains(ships, name) {
		c.printf("Ship '%s' not found.\n\n", name)
		return nil
	}

	occupancy, err := c.reports.PassengersOnShip(ctx, name)
	if err != nil {
		c.fail(ctx, "count passengers on ship", err)
		return nil
	}
	if !occupancy.HasTickets() {
		c.printf("No tickets have been created for the ship %s.\n", occupancy.Ship)
	}
	c.println()
	c.printf("Passengers on ship %s: %d\n\n", occupancy.Ship, occupancy.Passengers)
	return nil
}

func (c *Console) showShipNames(ctx context.Context) error {
	c.println()

	ships, err := c.reports.UniqueShipNames(ctx)
	if err != nil {
		c.fail(ctx, "unique ship names", err)
		return nil
	}
	if len(ships) == 0 {
		c.println("No ships found.")
		c.println()
		return nil
	}

	c.println("Unique ship names:")
	for _, ship := range ships {
		c.println(ship)
	}
	c.println()
	return nil
}

func (c *Console) showPopularClasses(ctx context.Context) error {
	return c.withTickets(ctx, "most popular cabin class", func() error {
		classes, err := c.reports.MostPopularCabinClasses(ctx)
		if err != nil {
			return err
		}
		numbers := make([]string, 0, len(classes))
		for _, class := range classes {
			numbers = append(numbers, strconv.Itoa(int(class)))
		}
		c.printf("Most popular cabin class(es): %s\n\n", strings.Join(numbers, " "))
		return nil
	})
}

func (c *Console) showRevenue(ctx context.Context) error {
	return c.withTickets(ctx, "total revenue", func() error {
		total, err := c.reports.TotalRevenue(ctx)
		if err != nil {
			return err
		}
		c.printf("Total revenue: $%s\n\n", domain.FormatPrice(total))
		return nil
	})
}

func (c *Console) showPopularDestinations(ctx context.Context) error {
	return c.withTickets(ctx, "most popular destinations", func() error {
		ports, err := c.reports.MostPopularDestinations(ctx)
		if err != nil {
			return err
		}
		c.printf("Most popular destination port(s): %s\n\n", strings.Join(ports, " "))
		return nil
	})
}

func (c *Console) showPassengerTotal(ctx context.Context) error {
	c.println()

	total, err := c.reports.TotalPassengers(ctx)
	if err != nil {
		c.fail(ctx, "total passengers", err)
		return nil
	}
	c.printf("Total passengers: %d\n\n", total)
	return nil
}

// withTickets runs report only once at least one ticket exists.
func (c *Console) withTickets(ctx context.Context, operation string, report func() error) error {
	c.println()

	issued, err := c.ledger.HasTickets(ctx)
	if err == nil && !issued {
		c.println(noTickets)
		c.println()
		return nil
	}
	if err == nil {
		err = report()
	}
	if err != nil {
		c.fail(ctx, operation, err)
	}
	return nil
}
