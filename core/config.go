package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	goerrors "github.com/goliatone/go-errors"
)

const (
	DefaultServiceName = "vtex"
	DefaultProxyPath   = "/api/v1/proxy-api"

	DefaultMaxResponseBodyBytes int64 = 10 << 20
)

// CacheConfig selects the memo policy. By default concurrent misses for one
// key share a single fetch; DisableCoalescing restores independent
// check-then-set lookups where the last write wins.
type CacheConfig struct {
	DisableCoalescing bool `koanf:"disable_coalescing" mapstructure:"disable_coalescing"`
}

type Config struct {
	ServiceName string      `koanf:"service_name" mapstructure:"service_name" validate:"required"`
	Credentials Credentials `koanf:"credentials" mapstructure:"credentials"`
	APIRoot     string      `koanf:"api_root" mapstructure:"api_root"`
	ProxyPath   string      `koanf:"proxy_path" mapstructure:"proxy_path" validate:"required,startswith=/"`
	Cache       CacheConfig `koanf:"cache" mapstructure:"cache"`
	// MaxResponseBodyBytes caps every VTEX response body read by the transport.
	MaxResponseBodyBytes int64 `koanf:"max_response_body_bytes" mapstructure:"max_response_body_bytes" validate:"gte=0"`
}

func DefaultConfig() Config {
	return Config{
		ServiceName: DefaultServiceName,
		ProxyPath:   DefaultProxyPath,

		MaxResponseBodyBytes: DefaultMaxResponseBodyBytes,
	}
}

var configValidator = validator.New()

var configFieldNames = map[string]string{
	"ServiceName": "service_name",
	"AccountName": "credentials.account_name",
	"SecretKey":   "credentials.secret_key",
	"AccessKey":   "credentials.access_key",
	"ProxyPath":   "proxy_path",

	"MaxResponseBodyBytes": "max_response_body_bytes",
}

func (c *Config) Validate() error {
	if c == nil {
		return ValidationError("core: config is required")
	}
	err := configValidator.Struct(c)
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "core: config validation failed")
	}
	fields := make([]goerrors.FieldError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		name := configFieldNames[fieldErr.StructField()]
		if name == "" {
			name = strings.ToLower(fieldErr.StructField())
		}
		fields = append(fields, goerrors.FieldError{
			Field:   name,
			Message: fmt.Sprintf("failed %q validation", fieldErr.Tag()),
		})
	}
	return ValidationError("core: config validation failed", fields...)
}
