package shared

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv       string
	HTTPAddr     string
	MetricsAddr  string
	MySQLDSN     string
	RedisAddr    string
	RedisDB      int
	RedisPass    string
	SitesDir     string
	TemplatesDir string
	FetchTimeout time.Duration
	FetchRetries int
	FetchRPS     int
	AssetWorkers int
	CacheTTL     time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	return Config{
		AppEnv:       env("APP_ENV", "prod"),
		HTTPAddr:     env("HTTP_ADDR", ":8080"),
		MetricsAddr:  env("METRICS_ADDR", ":9100"),
		MySQLDSN:     env("MYSQL_DSN", "root:root@tcp(localhost:3306)/hotels?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:    env("REDIS_ADDR", "localhost:6379"),
		RedisPass:    env("REDIS_PASSWORD", ""),
		RedisDB:      atoi("REDIS_DB", 0),
		SitesDir:     env("SITES_DIR", "./wwwroot/sites"),
		TemplatesDir: env("TEMPLATES_DIR", "./wwwroot/designs"),
		FetchTimeout: time.Duration(atoi("FETCH_TIMEOUT_SECONDS", 20)) * time.Second,
		FetchRetries: atoi("FETCH_RETRIES", 1),
		FetchRPS:     atoi("FETCH_RPS", 10),
		AssetWorkers: atoi("ASSET_WORKERS", 4),
		CacheTTL:     time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
