package storage

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Domenick1991/ferrybooking/config"
	"github.com/Domenick1991/ferrybooking/internal/domain"
	"github.com/Domenick1991/ferrybooking/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var samplePassengers = []domain.Passenger{
	{
		ID:      1,
		Name:    "Ann",
		Address: "Kyiv, Khreshchatyk 1",
		Phone:   "+380501112233",
		Tickets: []domain.Ticket{{
			ID:          7,
			PassengerID: 1,
			ShipName:    "Odyssey",
			Route:       domain.Route{Departure: "Kyiv", Destination: "Lviv", Date: "15/06/24"},
			CabinClass:  domain.Business,
			Price:       250.5,
		}},
	},
	{ID: 2, Name: "Bohdan", Address: "Lviv", Phone: "+380671234567"},
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestPassengerStore_Snapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passenger_data.txt")
	store := NewPassengerStore(path)

	require.NoError(t, store.Snapshot(samplePassengers))

	expected := "Passenger\n" +
		"Name: Ann\n" +
		"Address: Kyiv, Khreshchatyk 1\n" +
		"Phone number: +380501112233\n" +
		"ID: 1\n" +
		"\n" +
		"Passenger\n" +
		"Name: Bohdan\n" +
		"Address: Lviv\n" +
		"Phone number: +380671234567\n" +
		"ID: 2\n" +
		"\n"
	assert.Equal(t, expected, readFile(t, path))
}

func TestReservationStore_Snapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reservations.txt")
	store := NewReservationStore(path)

	require.NoError(t, store.Snapshot(samplePassengers))

	expected := "Reservations for Passenger: Ann (ID: 1)\n" +
		"Ticket ID: 7\n" +
		"Ship Name: Odyssey\n" +
		"Departure Port: Kyiv\n" +
		"Destination Port: Lviv\n" +
		"Date: 15/06/24\n" +
		"Cabin Class: 2\n" +
		"Price: $250.5\n" +
		"\n"
	assert.Equal(t, expected, readFile(t, path))
}

func TestSnapshot_RewritesWholeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passenger_data.txt")
	store := NewPassengerStore(path)

	require.NoError(t, store.Snapshot(samplePassengers))
	require.NoError(t, store.Snapshot(samplePassengers[1:]))

	content := readFile(t, path)
	assert.NotContains(t, content, "Ann")
	assert.Contains(t, content, "Name: Bohdan")
}

func TestTextFile_Dump(t *testing.T) {
	dir := t.TempDir()
	store := NewPassengerStore(filepath.Join(dir, "passenger_data.txt"))
	require.NoError(t, store.Clear())

	var out bytes.Buffer
	empty, err := store.Dump(&out)
	require.NoError(t, err)
	assert.True(t, empty)
	assert.Empty(t, out.String())

	require.NoError(t, store.Snapshot(samplePassengers[:1]))
	empty, err = store.Dump(&out)
	require.NoError(t, err)
	assert.False(t, empty)
	assert.Contains(t, out.String(), "Phone number: +380501112233\n")
}

func TestTextFile_IOErrors(t *testing.T) {
	missingDir := filepath.Join(t.TempDir(), "missing", "passenger_data.txt")
	store := NewPassengerStore(missingDir)

	err := store.Snapshot(samplePassengers)
	assert.True(t, errors.Is(err, domain.ErrIO))

	_, err = store.Dump(&bytes.Buffer{})
	assert.True(t, errors.Is(err, domain.ErrIO))
}

func TestSnapshotter_ClearAndSaveAll(t *testing.T) {
	dir := t.TempDir()
	cfg := config.StorageConfig{
		PassengerFile:   filepath.Join(dir, "passenger_data.txt"),
		ReservationFile: filepath.Join(dir, "reservations.txt"),
	}
	require.NoError(t, os.WriteFile(cfg.PassengerFile, []byte("stale\n"), 0o644))

	snapshotter := NewSnapshotter(cfg, logger.NewZap(zaptest.NewLogger(t)))
	ctx := context.Background()

	require.NoError(t, snapshotter.ClearAll(ctx))
	assert.Empty(t, readFile(t, cfg.PassengerFile))
	assert.Empty(t, readFile(t, cfg.ReservationFile))

	require.NoError(t, snapshotter.SaveAll(ctx, samplePassengers))
	assert.Contains(t, readFile(t, cfg.PassengerFile), "Name: Bohdan")
	assert.Contains(t, readFile(t, cfg.ReservationFile), "Ship Name: Odyssey")
}

func TestSnapshotter_SaveAllKeepsGoingAfterFailure(t *testing.T) {
	dir := t.TempDir()
	cfg := config.StorageConfig{
		PassengerFile:   filepath.Join(dir, "missing", "passenger_data.txt"),
		ReservationFile: filepath.Join(dir, "reservations.txt"),
	}
	snapshotter := NewSnapshotter(cfg, logger.NewNop())

	err := snapshotter.SaveAll(context.Background(), samplePassengers)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrIO))
	assert.Contains(t, readFile(t, cfg.ReservationFile), "Ticket ID: 7")
}
