package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию калькулятора и HTTP-сервиса
type Config struct {
	Port            int
	MaxPrincipal    float64
	MaxPayment      float64
	MaxPeriods      int
	MaxRate         float64
	OTELEndpoint    string
	OTELServiceName string
	LogLevel        string
	LogFormat       string
	LogOutput       string
	RedisAddr       string
	CacheTTL        time.Duration
	CacheMaxEntries int
	CORSOrigins     []string
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	// Загружаем .env файл, если он существует (игнорируем ошибку)
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnvInt("PORT", 8000),
		MaxPrincipal:    getEnvFloat("MAX_PRINCIPAL", 1e9),
		MaxPayment:      getEnvFloat("MAX_PAYMENT", 1e8),
		MaxPeriods:      getEnvInt("MAX_PERIODS", 1200),
		MaxRate:         getEnvFloat("MAX_RATE", 200),
		OTELEndpoint:    getEnvString("OTEL_ENDPOINT", ""),
		OTELServiceName: getEnvString("OTEL_SERVICE_NAME", "credit-calculator"),
		LogLevel:        getEnvString("LOG_LEVEL", "info"),
		LogFormat:       getEnvString("LOG_FORMAT", "console"),
		LogOutput:       getEnvString("LOG_OUTPUT", "stderr"),
		RedisAddr:       getEnvString("REDIS_ADDR", ""),
		CacheTTL:        getEnvDuration("CACHE_TTL", 10*time.Minute),
		CacheMaxEntries: getEnvInt("CACHE_MAX_ENTRIES", 10000),
		CORSOrigins:     getEnvList("CORS_ORIGINS", []string{"*"}),
	}

	return cfg, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

// Addr возвращает адрес для HTTP-сервера
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}
