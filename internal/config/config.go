package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Log     LogConfig
	Archive ArchiveConfig
	CORS    CORSConfig
	Engine  EngineConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ArchiveConfig holds workbook archive (S3) settings. An empty bucket
// selects the noop archive.
type ArchiveConfig struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EngineConfig holds the grid-extraction layout tunables. Times are "HH:MM".
// The PM shift bound exists because treating hours 1 to 7 as afternoon is an
// institutional convention, not part of the file format.
type EngineConfig struct {
	HeaderRow      int    `mapstructure:"header_row"`
	DayCol         int    `mapstructure:"day_col"`
	BreakStart     string `mapstructure:"break_start"`
	BreakEnd       string `mapstructure:"break_end"`
	LunchStart     string `mapstructure:"lunch_start"`
	LunchEnd       string `mapstructure:"lunch_end"`
	PracticalHours int    `mapstructure:"practical_hours"`
	PMShiftMaxHour int    `mapstructure:"pm_shift_max_hour"`
}

// Load reads configuration from environment variables with the SLOTWISE_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SLOTWISE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "slotwise")
	v.SetDefault("db.password", "slotwise_secret")
	v.SetDefault("db.name", "slotwise_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Archive defaults (empty bucket = noop archive)
	v.SetDefault("archive.region", "ap-south-1")
	v.SetDefault("archive.bucket", "")
	v.SetDefault("archive.endpoint", "")
	v.SetDefault("archive.key_prefix", "imports")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Engine defaults: the layout convention the importer is tuned for.
	v.SetDefault("engine.header_row", 1)
	v.SetDefault("engine.day_col", 0)
	v.SetDefault("engine.break_start", "10:50")
	v.SetDefault("engine.break_end", "11:00")
	v.SetDefault("engine.lunch_start", "13:00")
	v.SetDefault("engine.lunch_end", "13:45")
	v.SetDefault("engine.practical_hours", 2)
	v.SetDefault("engine.pm_shift_max_hour", 7)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":              "SLOTWISE_SERVER_PORT",
		"server.read_timeout":      "SLOTWISE_SERVER_READ_TIMEOUT",
		"server.write_timeout":     "SLOTWISE_SERVER_WRITE_TIMEOUT",
		"server.environment":       "SLOTWISE_SERVER_ENVIRONMENT",
		"db.host":                  "SLOTWISE_DB_HOST",
		"db.port":                  "SLOTWISE_DB_PORT",
		"db.user":                  "SLOTWISE_DB_USER",
		"db.password":              "SLOTWISE_DB_PASSWORD",
		"db.name":                  "SLOTWISE_DB_NAME",
		"db.sslmode":               "SLOTWISE_DB_SSLMODE",
		"db.max_open":              "SLOTWISE_DB_MAX_OPEN",
		"db.max_idle":              "SLOTWISE_DB_MAX_IDLE",
		"log.level":                "SLOTWISE_LOG_LEVEL",
		"log.format":               "SLOTWISE_LOG_FORMAT",
		"archive.region":           "SLOTWISE_ARCHIVE_REGION",
		"archive.bucket":           "SLOTWISE_ARCHIVE_BUCKET",
		"archive.endpoint":         "SLOTWISE_ARCHIVE_ENDPOINT",
		"archive.access_key":       "SLOTWISE_ARCHIVE_ACCESS_KEY",
		"archive.secret_key":       "SLOTWISE_ARCHIVE_SECRET_KEY",
		"archive.key_prefix":       "SLOTWISE_ARCHIVE_KEY_PREFIX",
		"cors.allowed_origins":     "SLOTWISE_CORS_ALLOWED_ORIGINS",
		"engine.header_row":        "SLOTWISE_ENGINE_HEADER_ROW",
		"engine.day_col":           "SLOTWISE_ENGINE_DAY_COL",
		"engine.break_start":       "SLOTWISE_ENGINE_BREAK_START",
		"engine.break_end":         "SLOTWISE_ENGINE_BREAK_END",
		"engine.lunch_start":       "SLOTWISE_ENGINE_LUNCH_START",
		"engine.lunch_end":         "SLOTWISE_ENGINE_LUNCH_END",
		"engine.practical_hours":   "SLOTWISE_ENGINE_PRACTICAL_HOURS",
		"engine.pm_shift_max_hour": "SLOTWISE_ENGINE_PM_SHIFT_MAX_HOUR",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if SLOTWISE_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("SLOTWISE_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Archive = ArchiveConfig{
		Region:    v.GetString("archive.region"),
		Bucket:    v.GetString("archive.bucket"),
		Endpoint:  v.GetString("archive.endpoint"),
		AccessKey: v.GetString("archive.access_key"),
		SecretKey: v.GetString("archive.secret_key"),
		KeyPrefix: v.GetString("archive.key_prefix"),
	}

	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Engine = EngineConfig{
		HeaderRow:      v.GetInt("engine.header_row"),
		DayCol:         v.GetInt("engine.day_col"),
		BreakStart:     v.GetString("engine.break_start"),
		BreakEnd:       v.GetString("engine.break_end"),
		LunchStart:     v.GetString("engine.lunch_start"),
		LunchEnd:       v.GetString("engine.lunch_end"),
		PracticalHours: v.GetInt("engine.practical_hours"),
		PMShiftMaxHour: v.GetInt("engine.pm_shift_max_hour"),
	}

	return cfg, nil
}
