package storage

import (
	"context"
	"io"

	"github.com/Domenick1991/ferrybooking/config"
	"github.com/Domenick1991/ferrybooking/internal/domain"
	"github.com/Domenick1991/ferrybooking/internal/logger"
	"go.uber.org/multierr"
)

// Snapshotter owns both ledger files. Callers invoke it after a successful mutation;
// a failed write is reported and the in-memory ledger stays authoritative.
type Snapshotter struct {
	Passengers   *PassengerStore
	Reservations *ReservationStore
	logger       logger.AppLogger
}

func NewSnapshotter(cfg config.StorageConfig, l logger.AppLogger) *Snapshotter {
	return &Snapshotter{
		Passengers:   NewPassengerStore(cfg.PassengerFile),
		Reservations: NewReservationStore(cfg.ReservationFile),
		logger:       l,
	}
}

func (s *Snapshotter) SavePassengers(ctx context.Context, passengers []domain.Passenger) error {
	if err := s.Passengers.Snapshot(passengers); err != nil {
		logger.LogError(ctx, s.logger, "passenger snapshot failed", err, map[string]interface{}{"file": s.Passengers.Path()})
		return err
	}
	logger.LogInfo(ctx, s.logger, "passenger snapshot written", map[string]interface{}{
		"file":       s.Passengers.Path(),
		"passengers": len(passengers),
	})
	return nil
}

func (s *Snapshotter) SaveReservations(ctx context.Context, passengers []domain.Passenger) error {
	if err := s.Reservations.Snapshot(passengers); err != nil {
		logger.LogError(ctx, s.logger, "reservation snapshot failed", err, map[string]interface{}{"file": s.Reservations.Path()})
		return err
	}
	logger.LogInfo(ctx, s.logger, "reservation snapshot written", map[string]interface{}{"file": s.Reservations.Path()})
	return nil
}

// SaveAll writes both files even when the first one fails.
func (s *Snapshotter) SaveAll(ctx context.Context, passengers []domain.Passenger) error {
	return multierr.Append(
		s.SavePassengers(ctx, passengers),
		s.SaveReservations(ctx, passengers),
	)
}

// ClearAll truncates both files. Run once at process start.
func (s *Snapshotter) ClearAll(ctx context.Context) error {
	err := multierr.Append(s.Passengers.Clear(), s.Reservations.Clear())
	if err != nil {
		logger.LogError(ctx, s.logger, "clearing data files failed", err, nil)
		return err
	}
	logger.LogInfo(ctx, s.logger, "data files cleared", map[string]interface{}{
		"passenger_file":   s.Passengers.Path(),
		"reservation_file": s.Reservations.Path(),
	})
	return nil
}

func (s *Snapshotter) DumpPassengers(w io.Writer) (bool, error) {
	return s.Passengers.Dump(w)
}

func (s *Snapshotter) DumpReservations(w io.Writer) (bool, error) {
	return s.Reservations.Dump(w)
}
