package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// AzureOpenAI holds the three credentials required to reach the
// chat-completions deployment, plus the API version to pin.
type AzureOpenAI struct {
	APIKey     string
	Endpoint   string
	Deployment string
	APIVersion string // default: 2024-02-15-preview
}

type Config struct {
	// Server
	Port string // default: 8080

	// Completion API
	Azure AzureOpenAI

	// Observability
	OTELExporterType     string // "stdout" or "otlp"
	OTELExporterEndpoint string // default: "localhost:4317"
}

// Load reads configuration from the environment. The Azure credentials are
// deliberately not validated here: the request handler checks them per
// request and answers 500 naming whichever are missing, so a misconfigured
// deploy fails loudly on first use instead of crash-looping.
func Load() (*Config, error) {
	// Load .env file if present (non-fatal if missing)
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		Azure: AzureOpenAI{
			APIKey:     os.Getenv("AZURE_OPENAI_API_KEY"),
			Endpoint:   strings.TrimRight(os.Getenv("AZURE_OPENAI_ENDPOINT"), "/"),
			Deployment: os.Getenv("AZURE_OPENAI_DEPLOYMENT"),
			APIVersion: getEnv("AZURE_OPENAI_API_VERSION", "2024-02-15-preview"),
		},
		OTELExporterType:     getEnv("OTEL_EXPORTER_TYPE", "stdout"),
		OTELExporterEndpoint: getEnv("OTEL_EXPORTER_ENDPOINT", "localhost:4317"),
	}

	return cfg, nil
}

// Missing reports the environment variable names of absent credentials, in
// a stable order.
func (a AzureOpenAI) Missing() []string {
	var missing []string
	if a.APIKey == "" {
		missing = append(missing, "AZURE_OPENAI_API_KEY")
	}
	if a.Endpoint == "" {
		missing = append(missing, "AZURE_OPENAI_ENDPOINT")
	}
	if a.Deployment == "" {
		missing = append(missing, "AZURE_OPENAI_DEPLOYMENT")
	}
	return missing
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
