package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the configuration settings for the feelgeo service.
//
// Fields:
// - Env: The current environment (local, development, production).
// - Port: The HTTP server port.
// - ProviderType: The geocoding provider to use (naver, google, nominatim).
// - NaverClientID / NaverClientSecret: NCP credentials for the Naver provider.
// - APIKey: The API key for the Google provider.
// - RateLimit: Requests per second allowed towards the provider.
// - QueueInterval: Minimum delay between serialized geocode lookups.
// - CacheStore: Durable cache backend (file or redis).
// - CachePath: Snapshot file path for the file backend.
// - RedisAddr: Redis address for the redis backend.
// - Database: Configuration settings for the PostgreSQL database.
type Config struct {
	Env               string         // Env is the current environment: local, development, production.
	Port              int            // Port is the HTTP server port.
	ProviderType      string         // ProviderType specifies which geocoding provider to use.
	NaverClientID     string         // NaverClientID is the NCP API gateway key id.
	NaverClientSecret string         // NaverClientSecret is the NCP API gateway key.
	APIKey            string         // APIKey is the Google Maps API key.
	RateLimit         int            // RateLimit caps provider requests per second.
	QueueInterval     time.Duration  // QueueInterval is the delay between serialized lookups.
	CacheStore        string         // CacheStore selects the snapshot backend: file, redis.
	CachePath         string         // CachePath is the snapshot file location.
	RedisAddr         string         // RedisAddr is the redis server address.
	Database          PostgresConfig // Database holds the postgres database configuration.
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string // Host is the database server address.
	Port     string // Port is the database server port.
	User     string // User is the database user.
	Password string // Password is the database user's password.
	Name     string // Name is the name of the database.
}

// MustLoad loads the configuration from the environment and returns a
// Config struct. It panics on malformed values.
func MustLoad() *Config {
	_ = godotenv.Load()

	interval, err := time.ParseDuration(setDefaultEnv("FEEL_QUEUE_INTERVAL", "800ms"))
	if err != nil {
		panic("failed to parse queue interval from configuration")
	}

	port, err := strconv.Atoi(setDefaultEnv("FEEL_PORT", "8080"))
	if err != nil {
		panic("failed to parse port from configuration")
	}

	rateLimit, err := strconv.Atoi(setDefaultEnv("FEEL_RATE_LIMIT", "1"))
	if err != nil {
		panic("failed to parse rate limit from configuration, must be an integer")
	}

	return &Config{
		Env:               setDefaultEnv("FEEL_ENV", "production"),
		Port:              port,
		ProviderType:      setDefaultEnv("FEEL_PROVIDER_TYPE", "naver"),
		NaverClientID:     os.Getenv("FEEL_NAVER_CLIENT_ID"),
		NaverClientSecret: os.Getenv("FEEL_NAVER_CLIENT_SECRET"),
		APIKey:            os.Getenv("FEEL_PROVIDER_KEY"),
		RateLimit:         rateLimit,
		QueueInterval:     interval,
		CacheStore:        setDefaultEnv("FEEL_CACHE_STORE", "file"),
		CachePath:         setDefaultEnv("FEEL_CACHE_PATH", "feel_geo_cache_v1.json"),
		RedisAddr:         os.Getenv("FEEL_REDIS_ADDR"),
		Database: PostgresConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     setDefaultEnv("DB_PORT", "5432"),
			User:     os.Getenv("DB_USERNAME"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
		},
	}
}

func setDefaultEnv(key, override string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		value = override
	}

	return value
}
