package console

import (
	"context"
	"io"
)

var loadMenu = menu{
	title: "Load Menu:",
	items: []string{"Load passenger data", "Load reservations data"},
	back:  "Back to main menu",
}

func (c *Console) loadMenu(ctx context.Context) error {
	return c.submenu(ctx, loadMenu,
		func(ctx context.Context) error { return c.showFile(ctx, "load passenger data", c.store.DumpPassengers) },
		func(ctx context.Context) error { return c.showFile(ctx, "load reservations data", c.store.DumpReservations) },
	)
}

func (c *Console) showFile(ctx context.Context, operation string, dump func(io.Writer) (bool, error)) error {
	c.println()

	empty, err := dump(c.out)
	switch {
	case err != nil:
		c.fail(ctx, operation, err)
		return nil
	case empty:
		c.println("The file is empty.")
	default:
		c.println("Data displayed from file successfully.")
	}
	c.println()
	return nil
}
