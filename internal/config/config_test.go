package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotwise/internal/engine"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SLOTWISE_SERVER_PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "", cfg.Archive.Bucket)
	assert.Equal(t, "imports", cfg.Archive.KeyPrefix)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 1, cfg.Engine.HeaderRow)
	assert.Equal(t, 7, cfg.Engine.PMShiftMaxHour)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SLOTWISE_DB_HOST", "db.internal")
	t.Setenv("SLOTWISE_ENGINE_PM_SHIFT_MAX_HOUR", "5")
	t.Setenv("SLOTWISE_CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 5, cfg.Engine.PMShiftMaxHour)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PlatformPortFallback(t *testing.T) {
	t.Setenv("PORT", "9000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Port)
}

func TestDSN(t *testing.T) {
	d := DBConfig{Host: "h", Port: 5433, User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:5433/n?sslmode=disable", d.DSN())
}

func TestEngineOptions(t *testing.T) {
	e := EngineConfig{
		HeaderRow:      2,
		DayCol:         1,
		BreakStart:     "10:30",
		BreakEnd:       "10:45",
		LunchStart:     "12:30",
		LunchEnd:       "13:15",
		PracticalHours: 3,
		PMShiftMaxHour: 6,
	}
	opts := e.Options()
	assert.Equal(t, 2, opts.HeaderRow)
	assert.Equal(t, 1, opts.DayCol)
	assert.Equal(t, engine.ClockOf(10, 30), opts.BreakStart)
	assert.Equal(t, engine.ClockOf(13, 15), opts.LunchEnd)
	assert.Equal(t, 3, opts.PracticalHours)
	assert.Equal(t, 6, opts.PMShiftMaxHour)
}

func TestEngineOptions_BadClockFallsBack(t *testing.T) {
	e := EngineConfig{BreakStart: "not a time"}
	opts := e.Options()
	assert.Equal(t, engine.DefaultOptions().BreakStart, opts.BreakStart)
}
