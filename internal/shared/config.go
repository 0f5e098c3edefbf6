package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	AuthBase    string
	AuthKey     string
	AuthCookie  string
	AuthRPS     int
	AuthTimeout time.Duration
	WarmWorkers int
	WarmLimit   int
	CacheTTL    time.Duration
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
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		MySQLDSN:    env("MYSQL_DSN", "root:root@tcp(localhost:3306)/roamio?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		AuthBase:    env("AUTH_BASE_URL", "https://auth.roamio.travel/v1"),
		AuthKey:     env("AUTH_API_KEY", ""),
		AuthCookie:  env("AUTH_COOKIE", "session_token"),
		AuthRPS:     atoi("AUTH_RPS", 20),
		AuthTimeout: time.Duration(atoi("AUTH_TIMEOUT_SECONDS", 5)) * time.Second,
		WarmWorkers: atoi("WARM_WORKERS", 8),
		WarmLimit:   atoi("WARM_LIMIT", 500),
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
	}
	if c.AuthKey == "" {
		log.Warn().Msg("AUTH_API_KEY is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
