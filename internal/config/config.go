package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	Server struct {
		Port         string
		ReadTimeout  time.Duration
		WriteTimeout time.Duration
	}

	WeatherAPI struct {
		BaseURL   string
		AppID     string
		AppSecret string
	}

	CityDataset struct {
		Path string
	}

	Refresh struct {
		DefaultCity string
		CronSpec    string
	}

	Chart struct {
		Width  int
		Height int
	}

	Client struct {
		Timeout        time.Duration
		MaxRetries     int
		RetryDelay     time.Duration
		Multiplier     float64
		BreakerTimeout time.Duration
	}
}

func LoadConfig() (*Config, error) {
	// Load .env file if exists
	if err := godotenv.Load(); err != nil {
		zap.L().Info("No .env file found, using environment variables")
	}

	cfg := &Config{}

	// Server configuration
	cfg.Server.Port = getEnv("FIBER_PORT", "8080")
	cfg.Server.ReadTimeout = parseDuration(getEnv("FIBER_READ_TIMEOUT", "10s"))
	cfg.Server.WriteTimeout = parseDuration(getEnv("FIBER_WRITE_TIMEOUT", "10s"))

	// Weather API configuration
	cfg.WeatherAPI.BaseURL = getEnv("TIANQI_BASE_URL", "http://gfeljm.tianqiapi.com/api")
	cfg.WeatherAPI.AppID = getEnv("TIANQI_APP_ID", "")
	cfg.WeatherAPI.AppSecret = getEnv("TIANQI_APP_SECRET", "")

	// City dataset configuration
	cfg.CityDataset.Path = getEnv("CITY_DATASET_PATH", "assets/citycode.json")

	// Refresh configuration
	cfg.Refresh.DefaultCity = getEnv("DEFAULT_CITY", "")
	cfg.Refresh.CronSpec = getEnv("REFRESH_CRON", "@every 30m")

	// Chart geometry
	cfg.Chart.Width = parseInt(getEnv("CHART_WIDTH", "480"))
	cfg.Chart.Height = parseInt(getEnv("CHART_HEIGHT", "80"))

	// Outbound client configuration
	cfg.Client.Timeout = parseDuration(getEnv("CLIENT_TIMEOUT", "10s"))
	cfg.Client.MaxRetries = parseInt(getEnv("MAX_RETRIES", "3"))
	cfg.Client.RetryDelay = parseDuration(getEnv("RETRY_DELAY", "1s"))
	cfg.Client.Multiplier = parseFloat(getEnv("RETRY_MULTIPLIER", "2"))
	cfg.Client.BreakerTimeout = parseDuration(getEnv("CIRCUIT_BREAKER_TIMEOUT", "30s"))

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(value string) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		zap.L().Warn("Failed to parse duration", zap.String("value", value), zap.Error(err))
		return 0
	}
	return duration
}

func parseInt(value string) int {
	intValue, err := strconv.Atoi(value)
	if err != nil {
		zap.L().Warn("Failed to parse int", zap.String("value", value), zap.Error(err))
		return 0
	}
	return intValue
}

func parseFloat(value string) float64 {
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		zap.L().Warn("Failed to parse float", zap.String("value", value), zap.Error(err))
		return 0
	}
	return floatValue
}
