package bootstrap

import (
	"context"
	"fmt"
	"io"

	"github.com/Domenick1991/ferrybooking/config"
	"github.com/Domenick1991/ferrybooking/internal/console"
	"github.com/Domenick1991/ferrybooking/internal/logger"
	"github.com/Domenick1991/ferrybooking/internal/repository"
	"github.com/Domenick1991/ferrybooking/internal/service/ledger"
	"github.com/Domenick1991/ferrybooking/internal/service/reports"
	"github.com/Domenick1991/ferrybooking/internal/storage"
)

type App struct {
	console *console.Console
	store   *storage.Snapshotter
}

// Run clears both ledger files, then serves the console until the operator exits or ctx
// is canceled. The console is done with the files by the time Run returns.
func Run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer, l logger.AppLogger) error {
	app := newApp(cfg, in, out, l)

	if err := app.store.ClearAll(ctx); err != nil {
		fmt.Fprintln(out, "Error opening the files for clearing data.")
	} else {
		fmt.Fprintln(out, "Data files cleared successfully.")
	}

	return app.console.Run(ctx)
}

func newApp(cfg *config.Config, in io.Reader, out io.Writer, l logger.AppLogger) *App {
	passengerRepo := repository.NewPassengerRepository()
	routeRepo := repository.NewRouteRepository()

	ledgerService := ledger.NewLedgerService(
		passengerRepo,
		routeRepo,
		ledger.WithCapacity(cfg.Ledger.Capacity()),
		ledger.WithCashier(cfg.Cashier.Cashier()),
		ledger.WithLogger(l),
	)
	reportService := reports.NewReportService(passengerRepo)
	store := storage.NewSnapshotter(cfg.Storage, l)

	return &App{
		console: console.New(in, out, ledgerService, reportService, store, l),
		store:   store,
	}
}
