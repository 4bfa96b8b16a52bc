package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/Domenick1991/ferrybooking/internal/domain"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read from the working directory. The program takes no flags or env vars.
const DefaultPath = "config.yaml"

type Config struct {
	Ledger  LedgerConfig  `yaml:"ledger"`
	Cashier CashierConfig `yaml:"cashier"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

type LedgerConfig struct {
	ShipCapacity  int `yaml:"ship_capacity"`
	EconomySeats  int `yaml:"economy_seats"`
	BusinessSeats int `yaml:"business_seats"`
	FirstSeats    int `yaml:"first_seats"`
}

func (l LedgerConfig) Capacity() domain.Capacity {
	return domain.Capacity{
		Ship:     l.ShipCapacity,
		Economy:  l.EconomySeats,
		Business: l.BusinessSeats,
		First:    l.FirstSeats,
	}
}

type CashierConfig struct {
	Organization string  `yaml:"organization"`
	Name         string  `yaml:"name"`
	Phone        string  `yaml:"phone"`
	Change       float64 `yaml:"change"`
}

func (c CashierConfig) Cashier() domain.Cashier {
	return domain.Cashier{
		Organization: c.Organization,
		Name:         c.Name,
		Phone:        c.Phone,
		Change:       c.Change,
	}
}

type StorageConfig struct {
	PassengerFile   string `yaml:"passenger_file"`
	ReservationFile string `yaml:"reservation_file"`
}

type LogConfig struct {
	Level       string   `yaml:"level"`
	OutputPaths []string `yaml:"output_paths"`
}

func Default() *Config {
	capacity := domain.DefaultCapacity()
	return &Config{
		Ledger: LedgerConfig{
			ShipCapacity:  capacity.Ship,
			EconomySeats:  capacity.Economy,
			BusinessSeats: capacity.Business,
			FirstSeats:    capacity.First,
		},
		Cashier: CashierConfig{
			Organization: "FlexShip",
			Name:         "Jane",
			Phone:        "555-1234",
			Change:       500,
		},
		Storage: StorageConfig{
			PassengerFile:   "passenger_data.txt",
			ReservationFile: "reservations.txt",
		},
		Log: LogConfig{
			Level:       "info",
			OutputPaths: []string{"ferrybooking.log"},
		},
	}
}

// LoadConfig overlays the YAML file at path on top of Default.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault is LoadConfig, except that a missing file yields Default.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func (c *Config) Validate() error {
	if c.Ledger.ShipCapacity < 1 {
		return errors.New("invalid config: ledger.ship_capacity must be positive")
	}
	if c.Ledger.EconomySeats < 0 || c.Ledger.BusinessSeats < 0 || c.Ledger.FirstSeats < 0 {
		return errors.New("invalid config: ledger seat caps must not be negative")
	}
	if c.Storage.PassengerFile == "" || c.Storage.ReservationFile == "" {
		return errors.New("invalid config: storage file names are required")
	}
	if c.Storage.PassengerFile == c.Storage.ReservationFile {
		return errors.New("invalid config: passenger and reservation files must differ")
	}
	return nil
}
