package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/trade-ledger-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "ku", cfg.Locale.Default)
	assert.Equal(t, 30*time.Second, cfg.Cache.StatisticsTTL)
	assert.Equal(t, 10, cfg.DB.MaxConns)
}

func TestLoad_DesdeEntorno(t *testing.T) {
	t.Setenv("LOCALE_DEFAULT", "ar")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STATS_CACHE_TTL_SECONDS", "0")
	t.Setenv("DB_PORT", "no-es-numero")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "ar", cfg.Locale.Default)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.Equal(t, time.Duration(0), cfg.Cache.StatisticsTTL)
	assert.Equal(t, 5432, cfg.DB.Port, "un entero inválido vuelve al valor por defecto")
}

func TestLoad_MaxConnsInvalido(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "0")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	db := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w/rd", DBName: "ledger", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw%2Frd@db:5432/ledger?sslmode=disable", db.ConnectionString())

	db.DatabaseURL = "postgres://u:p@h:1/x"
	assert.Equal(t, "postgres://u:p@h:1/x", db.ConnectionString())
}
