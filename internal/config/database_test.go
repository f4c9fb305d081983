package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabaseDefaults(t *testing.T) {
	t.Setenv("POSTGRES_USER", "nonogram")
	t.Setenv("POSTGRES_PASSWORD", "s3cr@t pass")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_DB", "nonogram")

	cfg, err := NewDatabase()
	require.NoError(t, err)
	assert.Equal(t, uint16(5432), cfg.Port)
	assert.Equal(t, "disable", cfg.SSLMode)
	assert.Equal(
		t,
		"postgresql://nonogram:s3cr%40t+pass@db:5432/nonogram?sslmode=disable",
		cfg.URL(),
	)
}

func TestNewDatabaseOverrides(t *testing.T) {
	t.Setenv("POSTGRES_USER", "nonogram")
	t.Setenv("POSTGRES_PASSWORD", "pass")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_DB", "nonogram")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("POSTGRES_SSLMODE", "require")

	cfg, err := NewDatabase()
	require.NoError(t, err)
	assert.Equal(
		t,
		"user=nonogram password=pass host=db port=5433 dbname=nonogram sslmode=require",
		cfg.DSN(),
	)
}

func TestNewDatabaseInvalidPort(t *testing.T) {
	t.Setenv("POSTGRES_USER", "nonogram")
	t.Setenv("POSTGRES_PASSWORD", "pass")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_DB", "nonogram")
	t.Setenv("POSTGRES_PORT", "not-a-port")

	_, err := NewDatabase()
	assert.ErrorContains(t, err, "POSTGRES_PORT")
}
