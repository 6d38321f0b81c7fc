package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config is read from the environment, after an optional .env file has been loaded.
type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"laundry"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	// StorageDriver selects postgres or the in-process memory store.
	StorageDriver string `envconfig:"STORAGE_DRIVER" default:"postgres"`

	// RedisAddr enables the shop geo index when set.
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	JWTSecret string        `envconfig:"JWT_SECRET"`
	JWTTTL    time.Duration `envconfig:"JWT_TTL" default:"24h"`

	CORSAllowOrigins  []string `envconfig:"CORS_ALLOW_ORIGINS"`
	ReconcileSchedule string   `envconfig:"RECONCILE_SCHEDULE" default:"0 */10 * * * *"`
	LogLevel          string   `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadConfig loads envFile into the process environment, without overriding
// variables that are already set, and decodes the result. A missing envFile
// is not an error.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errList []error
	if c.StorageDriver != StoragePostgres && c.StorageDriver != StorageMemory {
		errList = append(errList, fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q",
			StoragePostgres, StorageMemory, c.StorageDriver))
	}
	if c.JWTTTL <= 0 {
		errList = append(errList, fmt.Errorf("JWT_TTL must be positive, got %s", c.JWTTTL))
	}
	if _, err := c.SlogLevel(); err != nil {
		errList = append(errList, err)
	}
	return errors.Join(errList...)
}

// DSN is the postgres connection URL shared by gorm and the migrator.
func (c Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.DBSslMode}}.Encode(),
	}
	return u.String()
}

// SlogLevel parses LOG_LEVEL as a slog level name.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}
