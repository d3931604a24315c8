package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.DBDriver)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 30, cfg.Horizons.VaccinationDays)
	assert.Equal(t, 7, cfg.Horizons.DewormingDays)
	assert.Equal(t, 3, cfg.Horizons.TaskDays)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, DefaultHorizons(), cfg.Horizons)
}

func TestDefaultHorizons_IgnoresEnvironment(t *testing.T) {
	t.Setenv("VACCINE_HORIZON_DAYS", "0")
	t.Setenv("TASK_HORIZON_DAYS", "12")

	assert.Equal(t, Horizons{VaccinationDays: 30, DewormingDays: 7, TaskDays: 3}, DefaultHorizons())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Zero(t, cfg.Horizons.VaccinationDays)
	assert.Equal(t, 12, cfg.Horizons.TaskDays)
}

func TestLoad_PostgresRequiresDSN(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_DSN", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_UnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mongo")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")
	t.Setenv("VACCINE_HORIZON_DAYS", "45")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "/tmp/x.db", cfg.SQLitePath)
	assert.Equal(t, 45, cfg.Horizons.VaccinationDays)
	assert.Equal(t, ":9090", cfg.Addr())
}
