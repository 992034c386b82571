package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type DBConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	TimeZone        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifeTime int // минут
}

// Enabled: история загрузок пишется в БД только если задан хост.
func (c DBConfig) Enabled() bool { return c.Host != "" }

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Enabled: кэш записей школ включён только если задан адрес Redis.
func (c RedisConfig) Enabled() bool { return c.Addr != "" }

type Config struct {
	HTTPAddr string

	// Адрес, откуда берутся /schools.json и /schools/{id}.json.
	SchoolsOrigin     string
	LoaderConcurrency int
	HTTPTimeout       time.Duration
	CacheTTL          time.Duration
	ReloadCron        string

	Redis RedisConfig
	DB    DBConfig

	// Пустой секрет отключает /admin.
	JWTAccessSecret string
}

// LoadDotEnv подгружает .env, если окружение не подготовлено заранее (ENV_CHEK).
func LoadDotEnv(paths ...string) error {
	if os.Getenv("ENV_CHEK") != "" {
		return nil
	}
	log.Println("Подключение к .env")
	if err := godotenv.Load(paths...); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:          getEnv("HTTP_ADDR", ":8080"),
		SchoolsOrigin:     getEnv("SCHOOLS_ORIGIN", ""),
		LoaderConcurrency: getEnvInt("LOADER_CONCURRENCY", 8),
		HTTPTimeout:       getEnvDuration("HTTP_TIMEOUT", 10*time.Second),
		CacheTTL:          getEnvDuration("CACHE_TTL", time.Hour),
		ReloadCron:        getEnv("RELOAD_CRON", "0 */15 * * * *"),
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		DB: DBConfig{
			Host:            getEnv("DB_HOST", ""),
			User:            getEnv("DB_USER", "timeclass"),
			Password:        getEnv("DB_PASSWORD", "timeclass"),
			Name:            getEnv("DB_NAME", "timeclass"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			TimeZone:        getEnv("DB_TIMEZONE", "UTC"),
			Port:            getEnvInt("DB_PORT", 5432),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifeTime: getEnvInt("DB_CONN_MAX_LIFETIME_MIN", 30),
		},
		JWTAccessSecret: getEnv("JWT_ACCESS_SECRET", ""),
	}

	// минимальная валидация
	if cfg.SchoolsOrigin == "" {
		return nil, fmt.Errorf("invalid config: SCHOOLS_ORIGIN must not be empty")
	}
	if cfg.LoaderConcurrency <= 0 {
		return nil, fmt.Errorf("invalid config: LOADER_CONCURRENCY must be positive")
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return def
}
