package core

import (
	"net/http"
	"testing"

	goerrors "github.com/goliatone/go-errors"
)

func validConfig() Config {
	cfg := DefaultConfig()
	cfg.Credentials = Credentials{AccountName: "acme", SecretKey: "token", AccessKey: "key"}
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ServiceName != "vtex" {
		t.Fatalf("expected default service name vtex, got %q", cfg.ServiceName)
	}
	if cfg.ProxyPath != "/api/v1/proxy-api" {
		t.Fatalf("expected default proxy path, got %q", cfg.ProxyPath)
	}
	if cfg.Cache.DisableCoalescing {
		t.Fatalf("expected coalescing to be enabled by default")
	}
}

func TestConfigValidate_AcceptsCompleteConfig(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestConfigValidate_ReportsEveryMissingField(t *testing.T) {
	cfg := Config{ProxyPath: "no-slash"}
	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}

	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		t.Fatalf("expected go-errors envelope, got %T", err)
	}
	if rich.Category != goerrors.CategoryValidation {
		t.Fatalf("expected validation category, got %q", rich.Category)
	}
	if rich.TextCode != ServiceErrorBadInput {
		t.Fatalf("expected %q text code, got %q", ServiceErrorBadInput, rich.TextCode)
	}
	if rich.Code != http.StatusBadRequest {
		t.Fatalf("expected %d code, got %d", http.StatusBadRequest, rich.Code)
	}

	got := map[string]bool{}
	for _, field := range rich.AllValidationErrors() {
		got[field.Field] = true
	}
	for _, field := range []string{
		"service_name",
		"proxy_path",
		"credentials.account_name",
		"credentials.secret_key",
		"credentials.access_key",
	} {
		if !got[field] {
			t.Fatalf("expected validation error for %s, got %#v", field, got)
		}
	}
}

func TestConfigValidate_NilConfig(t *testing.T) {
	var cfg *Config
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected nil config error")
	}
}
