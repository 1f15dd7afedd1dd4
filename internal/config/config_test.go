package config

import (
	"bytes"
	"testing"

	"library-api/internal/adapters/persistence/models"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_MODE", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("PORT", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("SEED_DATA", "")
	t.Setenv("LATE_LOAN_CRON", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "library", cfg.Database.DBName)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "0 8 * * *", cfg.Jobs.LateLoanCron)
	assert.True(t, cfg.SeedData)
	assert.Same(t, cfg, AppConfig)
}

func TestLoad_Prod(t *testing.T) {
	t.Setenv("APP_MODE", "prod")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("PROD_DB_NAME", "library_prod")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("SEED_DATA", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.True(t, cfg.IsProd())
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "library_prod", cfg.Database.DBName)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.SeedData)
	assert.Equal(t, "http://localhost:3000", cfg.GetAllowedOrigins())
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("app mode", func(t *testing.T) {
		t.Setenv("APP_MODE", "staging")
		_, err := Load()
		assert.ErrorContains(t, err, "APP_MODE")
	})

	t.Run("driver", func(t *testing.T) {
		t.Setenv("APP_MODE", "dev")
		t.Setenv("DB_DRIVER", "postgres")
		_, err := Load()
		assert.ErrorContains(t, err, "DB_DRIVER")
	})

	t.Run("seed data", func(t *testing.T) {
		t.Setenv("APP_MODE", "dev")
		t.Setenv("DB_DRIVER", "sqlite")
		t.Setenv("SEED_DATA", "yes")
		_, err := Load()
		assert.ErrorContains(t, err, "SEED_DATA")
	})
}

func TestNewLogger(t *testing.T) {
	var out bytes.Buffer

	log := newLogger(LogConfig{Level: "debug", Format: "json"}, &out)
	log.WithField("isbn", "123").Debug("lookup")

	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.Contains(t, out.String(), `"isbn":"123"`)

	out.Reset()
	log = newLogger(LogConfig{Level: "loud", Format: "yaml"}, &out)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.Contains(t, out.String(), "Invalid log level")
	assert.Contains(t, out.String(), "Invalid log format")
}

func TestSeeder_Run(t *testing.T) {
	log, hook := test.NewNullLogger()
	cfg := &Config{
		AppMode:  "test",
		Database: DatabaseConfig{Driver: "sqlite", SQLitePath: "file:seeder?mode=memory&cache=shared"},
	}

	db, err := ConnectDatabase(cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = CloseDatabase() })
	require.NoError(t, models.AutoMigrate(db))
	require.NoError(t, HealthCheck())

	seeder := NewSeeder(db, log)
	require.NoError(t, seeder.Run())
	assert.Equal(t, len(sampleBooks), hook.LastEntry().Data["books_created"])

	// A second run leaves the catalog alone
	require.NoError(t, seeder.Run())
	assert.Equal(t, 0, hook.LastEntry().Data["books_created"])

	var count int64
	require.NoError(t, db.Model(&models.Book{}).Count(&count).Error)
	assert.Equal(t, int64(len(sampleBooks)), count)
}

func TestBuildDSN(t *testing.T) {
	dsn := buildDSN(DatabaseConfig{User: "root", Password: "secret", Host: "db", Port: "3306", DBName: "library"})

	assert.Equal(t, "root:secret@tcp(db:3306)/library?charset=utf8mb4&parseTime=True&loc=Local", dsn)
}
