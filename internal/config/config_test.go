package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_NAME", ":memory:")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("SERVER_READ_TIMEOUT", "3")
	t.Setenv("SESSION_MAX_AGE", "not-a-number")
	t.Setenv("OTEL_TRACES_SAMPLER_ARG", "0.25")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 86400*7, cfg.Session.MaxAge)
	assert.Equal(t, 0.25, cfg.Telemetry.SampleRatio)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, parseLogLevel("SILENT"))
	assert.Equal(t, logger.Error, parseLogLevel("error"))
	assert.Equal(t, logger.Warn, parseLogLevel("warn"))
	assert.Equal(t, logger.Info, parseLogLevel(""))
}

func TestInitDB(t *testing.T) {
	db, err := InitDB(&Config{Database: DatabaseConfig{Driver: "sqlite", DBName: ":memory:", LogLevel: "silent"}})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)

	_, err = InitDB(&Config{Database: DatabaseConfig{Driver: "oracle"}})
	assert.Error(t, err)
}

func TestInitTracer_Disabled(t *testing.T) {
	shutdown, err := InitTracer(context.Background(), &Config{})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}
