package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Redis keys
const CATALOG_KEY_FORMAT_V1 = "catalog_v1:%s"
const VENDORS_GEO_KEY_V1 = "vendors_geo_v1"
const VENDORS_GEO_MEMBER_FORMAT_V1 = "vendors_geo_member_v1:%s"
const DATE_RANGE_PRESET_KEY = "date_range_preset_v1"

// Date range defaults
const DEFAULT_DATE_RANGE_PRESET = "30d"

// Autosuggest defaults
const SUGGEST_DEFAULT_DEBOUNCE = 250 * time.Millisecond
const SUGGEST_DEFAULT_LIMIT = 8
const SUGGEST_MIN_LIMIT = 5
const SUGGEST_MAX_LIMIT = 20

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const ROUTES_RESOURCE = "routes.json"
const VENDORS_RESOURCE = "vendors.json"
const STAYS_RESOURCE = "stays.json"
const EVENTS_RESOURCE = "events.json"
const PLACES_RESOURCE = "places.json"
const KPIS_RESOURCE = "kpis.json"
const TIME_SERIES_RESOURCE = "time_series.json"

// DefaultHomeRegion lists the place names treated as local for route classification.
var DefaultHomeRegion = []string{
	"Alor Setar",
	"Kota Setar",
	"Langkawi",
	"Pulau Langkawi",
	"Sungai Petani",
	"Kuala Muda",
	"Kulim",
	"Kubang Pasu",
	"Jitra",
	"Padang Terap",
	"Pendang",
	"Pokok Sena",
	"Yan",
	"Sik",
	"Baling",
	"Bandar Baharu",
}

type Config struct {
	LogLevel        slog.Level
	LogFormat       string
	HTTPAddr        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	APIBaseURL string
	APITimeout time.Duration
	APIMock    bool

	RedisEnabled  bool
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	RefreshInterval time.Duration

	SuggestDebounce time.Duration
	SuggestLimit    int

	HomeRegion []string
}

// Load reads .env (if any) and the process environment into a Config.
func Load() *Config {
	_ = godotenv.Load(".env")

	homeRegion := getCSVEnv("HOME_REGION")
	if len(homeRegion) == 0 {
		homeRegion = DefaultHomeRegion
	}

	return &Config{
		LogLevel:        getLogLevelEnv("LOG_LEVEL", slog.LevelInfo),
		LogFormat:       strings.ToLower(getEnv("LOG_FORMAT", "text")),
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		ReadTimeout:     getDurationEnv("READ_TIMEOUT", 10*time.Second),
		WriteTimeout:    getDurationEnv("WRITE_TIMEOUT", 10*time.Second),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 5*time.Second),

		APIBaseURL: strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:8000/api"), "/"),
		APITimeout: getDurationEnv("API_TIMEOUT", 10*time.Second),
		APIMock:    getBoolEnv("API_MOCK", false),

		RedisEnabled:  getBoolEnv("REDIS_ENABLED", true),
		RedisAddr:     getEnv("REDIS_ADDR", "redis:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getIntEnv("REDIS_DB", 0),

		RefreshInterval: getDurationEnv("REFRESH_INTERVAL", 30*time.Minute),

		SuggestDebounce: getDurationEnv("SUGGEST_DEBOUNCE", SUGGEST_DEFAULT_DEBOUNCE),
		SuggestLimit:    ClampSuggestLimit(getIntEnv("SUGGEST_LIMIT", SUGGEST_DEFAULT_LIMIT)),

		HomeRegion: homeRegion,
	}
}

// ClampSuggestLimit keeps a suggestion cap inside [SUGGEST_MIN_LIMIT, SUGGEST_MAX_LIMIT].
func ClampSuggestLimit(n int) int {
	if n < SUGGEST_MIN_LIMIT {
		return SUGGEST_MIN_LIMIT
	}
	if n > SUGGEST_MAX_LIMIT {
		return SUGGEST_MAX_LIMIT
	}
	return n
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}

func getIntEnv(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getBoolEnv(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}

func getLogLevelEnv(key string, defaultVal slog.Level) slog.Level {
	switch strings.ToLower(os.Getenv(key)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return defaultVal
	}
}

func getCSVEnv(key string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}

	parts := strings.Split(v, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			result = append(result, t)
		}
	}
	return result
}
