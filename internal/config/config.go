package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultModel is the Gemini model the relay talks to unless GEMINI_MODEL overrides it.
const DefaultModel = "gemini-2.5-flash"

// DefaultRelayURL is where the terminal client looks for the relay.
const DefaultRelayURL = "http://localhost:3000"

type Config struct {
	// Server
	Port string
	Env  string

	// Gemini AI
	GeminiAPIKey string
	GeminiModel  string

	// HTTP
	FrontendURL  string
	StaticDir    string
	MaxBodyBytes int
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:         getEnvOrDefault("PORT", "3000"),
		Env:          getEnvOrDefault("ENV", "development"),
		GeminiAPIKey: mustGetEnv("GEMINI_API_KEY"),
		GeminiModel:  getEnvOrDefault("GEMINI_MODEL", DefaultModel),
		FrontendURL:  getEnvOrDefault("FRONTEND_URL", "*"),
		StaticDir:    getEnvOrDefault("STATIC_DIR", ""),
		MaxBodyBytes: getEnvAsIntOrDefault("MAX_BODY_BYTES", 64*1024),
	}

	return cfg
}

// IsDevelopment reports whether logs should go to a human-readable console.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ClientConfig holds settings for the terminal chat client.
type ClientConfig struct {
	RelayURL string
}

func LoadClient() *ClientConfig {
	godotenv.Load()

	return &ClientConfig{
		RelayURL: getEnvOrDefault("RELAY_URL", DefaultRelayURL),
	}
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return defaultVal
	}
	return n
}
