package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort        string
	DbHost         string
	DbPort         string
	DbUser         string
	DbPassword     string
	DbName         string
	DbParams       string
	TrustedProxies []string

	SessionSecret string
	SessionTTL    time.Duration

	// Validation policy knobs; variants disagree on these, so they are
	// configuration rather than constants.
	MinTitleLength int
	RequireDueDate bool

	TemplatesGlob string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:        getEnv("APP_PORT", "8080"),
		DbHost:         getEnv("MYSQL_HOST", "db"),
		DbPort:         getEnv("MYSQL_PORT", "3306"),
		DbUser:         getEnv("MYSQL_USER", "todoapp"),
		DbPassword:     getEnv("MYSQL_PASSWORD", "todoapp"),
		DbName:         getEnv("MYSQL_DATABASE", "todoapp"),
		DbParams:       getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		TrustedProxies: parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
		SessionSecret:  getEnv("SESSION_SECRET", "dev-only-secret"),
		SessionTTL:     time.Duration(getEnvInt("SESSION_TTL_HOURS", 72)) * time.Hour,
		MinTitleLength: getEnvInt("TODO_MIN_TITLE_LEN", 1),
		RequireDueDate: getEnvBool("TODO_REQUIRE_DUE_DATE", false),
		TemplatesGlob:  getEnv("TEMPLATES_GLOB", "web/templates/*.tmpl"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
