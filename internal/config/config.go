package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Driver de persistencia.
type Driver string

const (
	DriverMemory   Driver = "memory"
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

// Config se carga desde variables de entorno (ver Load).
type Config struct {
	Port         string        `env:"PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`

	DBDriver   Driver `env:"DB_DRIVER" envDefault:"memory"`
	DBDSN      string `env:"DB_DSN"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"shelter.db"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	AppName   string `env:"APP_NAME" envDefault:"cat-shelter-admin"`

	// Hash argon2id del secreto compartido del personal.
	// Vacío => modo dev (header X-Debug-User-ID).
	StaffPasswordHash string `env:"STAFF_PASSWORD_HASH"`

	Horizons Horizons
}

// Horizons son las ventanas "due soon" (en días) por tipo de recordatorio.
type Horizons struct {
	VaccinationDays int `env:"VACCINE_HORIZON_DAYS" envDefault:"30"`
	DewormingDays   int `env:"DEWORMING_HORIZON_DAYS" envDefault:"7"`
	TaskDays        int `env:"TASK_HORIZON_DAYS" envDefault:"3"`
}

// DefaultHorizons devuelve los valores de envDefault sin leer el entorno.
func DefaultHorizons() Horizons {
	var h Horizons
	if err := env.ParseWithOptions(&h, env.Options{Environment: map[string]string{}}); err != nil {
		panic(fmt.Sprintf("config: horizon defaults: %v", err))
	}
	return h
}

// Load parsea el entorno y valida.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	c.DBDriver = Driver(strings.ToLower(strings.TrimSpace(string(c.DBDriver))))
	switch c.DBDriver {
	case DriverMemory, DriverSQLite:
	case DriverPostgres:
		if strings.TrimSpace(c.DBDSN) == "" {
			return errors.New("config: DB_DSN required for postgres driver")
		}
	default:
		return fmt.Errorf("config: unknown DB_DRIVER %q", c.DBDriver)
	}

	if c.Horizons.VaccinationDays < 0 || c.Horizons.DewormingDays < 0 || c.Horizons.TaskDays < 0 {
		return errors.New("config: horizons must be >= 0")
	}
	return nil
}

// Addr devuelve la dirección de escucha del servidor HTTP.
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}
