package config

import (
	"strings"
	"testing"
)

func TestMissing_AllAbsent(t *testing.T) {
	var creds AzureOpenAI

	missing := creds.Missing()
	want := []string{"AZURE_OPENAI_API_KEY", "AZURE_OPENAI_ENDPOINT", "AZURE_OPENAI_DEPLOYMENT"}
	if len(missing) != len(want) {
		t.Fatalf("Expected %d missing settings, got %v", len(want), missing)
	}
	for i, name := range want {
		if missing[i] != name {
			t.Errorf("Expected %s at position %d, got %s", name, i, missing[i])
		}
	}
}

func TestMissing_Partial(t *testing.T) {
	creds := AzureOpenAI{APIKey: "key", Deployment: "gpt-4o-mini"}

	missing := creds.Missing()
	if len(missing) != 1 || missing[0] != "AZURE_OPENAI_ENDPOINT" {
		t.Errorf("Expected only AZURE_OPENAI_ENDPOINT missing, got %v", missing)
	}
}

func TestMissing_NoneAbsent(t *testing.T) {
	creds := AzureOpenAI{APIKey: "k", Endpoint: "https://e", Deployment: "d"}

	if missing := creds.Missing(); len(missing) != 0 {
		t.Errorf("Expected no missing settings, got %v", missing)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("AZURE_OPENAI_API_VERSION", "")
	t.Setenv("OTEL_EXPORTER_TYPE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// empty env values are treated as set; only unset keys fall back
	if cfg.Port != "" {
		t.Errorf("Expected empty PORT to be respected, got %q", cfg.Port)
	}
}

func TestLoad_TrimsEndpointSlash(t *testing.T) {
	t.Setenv("AZURE_OPENAI_ENDPOINT", "https://example.openai.azure.com/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if strings.HasSuffix(cfg.Azure.Endpoint, "/") {
		t.Errorf("Expected trailing slash trimmed, got %q", cfg.Azure.Endpoint)
	}
}

func TestLoad_ReadsCredentials(t *testing.T) {
	t.Setenv("AZURE_OPENAI_API_KEY", "key")
	t.Setenv("AZURE_OPENAI_ENDPOINT", "https://example.openai.azure.com")
	t.Setenv("AZURE_OPENAI_DEPLOYMENT", "gpt-4o-mini")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if missing := cfg.Azure.Missing(); len(missing) != 0 {
		t.Errorf("Expected no missing settings, got %v", missing)
	}
	if cfg.Azure.APIVersion == "" {
		t.Error("Expected default API version")
	}
}
