package cli

import (
	"os"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Output    string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("SCOREKEEPER_SERVER", "http://localhost:8080"),
		Output:    FormatText,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
