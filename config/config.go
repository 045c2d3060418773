package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	URLs              []string
	Headless          bool
	ScrapeAmenities   bool
	StepTimeout       time.Duration
	NavigationTimeout time.Duration
	RequestDelay      time.Duration
	MaxConcurrent     int
	OutputFile        string
	AppendOutput      bool
	LogFile           string
	UserAgent         string
	DBConfig          DatabaseConfig
}

type DatabaseConfig struct {
	Enabled  bool
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func NewConfig() *Config {
	return &Config{
		URLs: []string{
			"broken_url",
			"https://www.airbnb.co.uk/rooms/33571268",
			"https://www.airbnb.co.uk/rooms/20669368",
			"https://www.airbnb.co.uk/rooms/50633275",
		},
		Headless:          true,
		ScrapeAmenities:   true,
		StepTimeout:       2000 * time.Millisecond,
		NavigationTimeout: 60 * time.Second,
		RequestDelay:      0,
		MaxConcurrent:     1, // one URL at a time
		OutputFile:        "propertyDetails.csv",
		AppendOutput:      true,
		LogFile:           "scraper.log",
		UserAgent:         "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		DBConfig: DatabaseConfig{
			Host:    "",
			Port:    5432,
			User:    "postgres",
			DBName:  "property_scraper",
			SSLMode: "disable",
		},
	}
}

// Load returns the defaults overridden by an optional .env file and the
// process environment.
func Load() *Config {
	_ = godotenv.Load()

	cfg := NewConfig()

	cfg.Headless = getEnvBool("SCRAPER_HEADLESS", cfg.Headless)
	cfg.ScrapeAmenities = getEnvBool("SCRAPER_AMENITIES", cfg.ScrapeAmenities)
	cfg.StepTimeout = getEnvMillis("SCRAPER_STEP_TIMEOUT_MS", cfg.StepTimeout)
	cfg.NavigationTimeout = getEnvMillis("SCRAPER_NAVIGATION_TIMEOUT_MS", cfg.NavigationTimeout)
	cfg.RequestDelay = getEnvMillis("SCRAPER_REQUEST_DELAY_MS", cfg.RequestDelay)
	cfg.MaxConcurrent = getEnvInt("SCRAPER_MAX_CONCURRENT", cfg.MaxConcurrent)
	cfg.OutputFile = getEnv("SCRAPER_OUTPUT", cfg.OutputFile)
	cfg.AppendOutput = getEnvBool("SCRAPER_APPEND", cfg.AppendOutput)
	cfg.LogFile = getEnv("SCRAPER_LOG_FILE", cfg.LogFile)
	cfg.UserAgent = getEnv("SCRAPER_USER_AGENT", cfg.UserAgent)

	if raw := getEnv("SCRAPER_URLS", ""); raw != "" {
		cfg.URLs = splitList(raw)
	}

	cfg.DBConfig.Host = getEnv("DB_HOST", cfg.DBConfig.Host)
	cfg.DBConfig.Port = getEnvInt("DB_PORT", cfg.DBConfig.Port)
	cfg.DBConfig.User = getEnv("DB_USER", cfg.DBConfig.User)
	cfg.DBConfig.Password = getEnv("DB_PASSWORD", cfg.DBConfig.Password)
	cfg.DBConfig.DBName = getEnv("DB_NAME", cfg.DBConfig.DBName)
	cfg.DBConfig.SSLMode = getEnv("DB_SSLMODE", cfg.DBConfig.SSLMode)
	cfg.DBConfig.Enabled = strings.TrimSpace(cfg.DBConfig.Host) != ""

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvMillis(key string, fallback time.Duration) time.Duration {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v < 0 {
		return fallback
	}
	return time.Duration(v) * time.Millisecond
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
