package core

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/goliatone/go-commerce-vtex/memo"
	"github.com/goliatone/go-config/cfgx"
	glog "github.com/goliatone/go-logger/glog"
	opts "github.com/goliatone/go-options"
	repositorycache "github.com/goliatone/go-repository-cache/cache"
)

type ConfigProvider interface {
	Load(ctx context.Context, defaults Config) (Config, error)
}

type RawConfigLoader interface {
	LoadRaw(ctx context.Context) (map[string]any, error)
}

type OptionsResolver interface {
	Resolve(defaults Config, loaded Config, runtime Config) (Config, error)
}

type runtimeBuilder struct {
	runtimeConfig   Config
	logger          Logger
	loggerProvider  LoggerProvider
	metricsRecorder MetricsRecorder
	errorMapper     ErrorMapper
	configProvider  ConfigProvider
	optionsResolver OptionsResolver
	apiRootResolver APIRootResolver
	transport       TransportAdapter
	cache           memo.Cache
	cacheService    repositorycache.CacheService
}

type Option func(*runtimeBuilder)

func WithLogger(logger Logger) Option {
	return func(b *runtimeBuilder) {
		b.logger = logger
	}
}

func WithLoggerProvider(provider LoggerProvider) Option {
	return func(b *runtimeBuilder) {
		b.loggerProvider = provider
	}
}

func WithMetricsRecorder(recorder MetricsRecorder) Option {
	return func(b *runtimeBuilder) {
		b.metricsRecorder = recorder
	}
}

func WithErrorMapper(mapper ErrorMapper) Option {
	return func(b *runtimeBuilder) {
		b.errorMapper = mapper
	}
}

func WithConfigProvider(provider ConfigProvider) Option {
	return func(b *runtimeBuilder) {
		b.configProvider = provider
	}
}

func WithOptionsResolver(resolver OptionsResolver) Option {
	return func(b *runtimeBuilder) {
		b.optionsResolver = resolver
	}
}

// WithAPIRootResolver injects the host lookup for the proxy API root. It
// takes precedence over Config.APIRoot.
func WithAPIRootResolver(resolver APIRootResolver) Option {
	return func(b *runtimeBuilder) {
		b.apiRootResolver = resolver
	}
}

func WithTransport(adapter TransportAdapter) Option {
	return func(b *runtimeBuilder) {
		b.transport = adapter
	}
}

// WithCache replaces the per-runtime memo cache.
func WithCache(cache memo.Cache) Option {
	return func(b *runtimeBuilder) {
		b.cache = cache
	}
}

// WithCacheService stores lookups in a shared go-repository-cache service,
// namespaced by account name. WithCache takes precedence.
func WithCacheService(service repositorycache.CacheService) Option {
	return func(b *runtimeBuilder) {
		b.cacheService = service
	}
}

func defaultRuntimeBuilder(runtime Config) runtimeBuilder {
	loggerProvider, logger := glog.Resolve(DefaultServiceName, nil, nil)
	return runtimeBuilder{
		runtimeConfig:   runtime,
		loggerProvider:  loggerProvider,
		logger:          logger,
		metricsRecorder: NopMetricsRecorder{},
		errorMapper:     MapError,
		configProvider:  NewCfgxConfigProvider(nil),
		optionsResolver: GoOptionsResolver{},
	}
}

type staticRawConfigLoader struct {
	Values map[string]any
}

func (l staticRawConfigLoader) LoadRaw(context.Context) (map[string]any, error) {
	if len(l.Values) == 0 {
		return map[string]any{}, nil
	}
	out := make(map[string]any, len(l.Values))
	for key, value := range l.Values {
		out[key] = value
	}
	return out, nil
}

// EnvConfigLoader reads connection settings from VTEX_* environment
// variables. Unset variables are left out of the layer.
type EnvConfigLoader struct {
	Prefix string
	Lookup func(key string) (string, bool)
}

func (l EnvConfigLoader) LoadRaw(context.Context) (map[string]any, error) {
	prefix := strings.TrimSpace(l.Prefix)
	if prefix == "" {
		prefix = "VTEX_"
	}
	lookup := l.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	read := func(name string) (string, bool) {
		value, ok := lookup(prefix + name)
		value = strings.TrimSpace(value)
		return value, ok && value != ""
	}

	raw := map[string]any{}
	credentials := map[string]any{}
	for env, key := range map[string]string{
		"ACCOUNT_NAME": "account_name",
		"SECRET_KEY":   "secret_key",
		"ACCESS_KEY":   "access_key",
	} {
		if value, ok := read(env); ok {
			credentials[key] = value
		}
	}
	if len(credentials) > 0 {
		raw["credentials"] = credentials
	}
	if value, ok := read("API_ROOT"); ok {
		raw["api_root"] = value
	}
	if value, ok := read("PROXY_PATH"); ok {
		raw["proxy_path"] = value
	}
	return raw, nil
}

type CfgxConfigProvider struct {
	Loader RawConfigLoader
}

func NewCfgxConfigProvider(loader RawConfigLoader) *CfgxConfigProvider {
	return &CfgxConfigProvider{Loader: loader}
}

// Load builds the loaded layer only; required settings are checked once the
// layers are merged.
func (p *CfgxConfigProvider) Load(ctx context.Context, defaults Config) (Config, error) {
	if p == nil {
		return defaults, nil
	}
	loader := p.Loader
	if loader == nil {
		loader = staticRawConfigLoader{}
	}
	raw, err := loader.LoadRaw(ctx)
	if err != nil {
		return Config{}, err
	}
	cfg, err := cfgx.Build[Config](raw, cfgx.WithDefaults(defaults))
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

type GoOptionsResolver struct{}

func (GoOptionsResolver) Resolve(defaults Config, loaded Config, runtime Config) (Config, error) {
	defaultLayer := configToLayerMap(defaults, true)
	loadedLayer := configToLayerMap(loaded, false)
	runtimeLayer := configToLayerMap(runtime, false)

	stack, err := opts.NewStack(
		opts.NewLayer(
			opts.NewScope("defaults", 0),
			defaultLayer,
			opts.WithSnapshotID[map[string]any]("defaults"),
		),
		opts.NewLayer(
			opts.NewScope("config", 10),
			loadedLayer,
			opts.WithSnapshotID[map[string]any]("config"),
		),
		opts.NewLayer(
			opts.NewScope("runtime", 20),
			runtimeLayer,
			opts.WithSnapshotID[map[string]any]("runtime"),
		),
	)
	if err != nil {
		return Config{}, fmt.Errorf("core: options stack build failed: %w", err)
	}
	merged, err := stack.Merge()
	if err != nil {
		return Config{}, fmt.Errorf("core: options merge failed: %w", err)
	}
	resolved, err := cfgx.Build[Config](merged.Value,
		cfgx.WithDefaults(defaults),
		cfgx.WithValidator[Config]((*Config).Validate),
	)
	if err != nil {
		return Config{}, err
	}
	if err := resolved.Validate(); err != nil {
		return Config{}, err
	}
	return resolved, nil
}

func configToLayerMap(cfg Config, includeZero bool) map[string]any {
	layer := map[string]any{}
	if includeZero || strings.TrimSpace(cfg.ServiceName) != "" {
		layer["service_name"] = cfg.ServiceName
	}
	if includeZero || strings.TrimSpace(cfg.APIRoot) != "" {
		layer["api_root"] = cfg.APIRoot
	}
	if includeZero || strings.TrimSpace(cfg.ProxyPath) != "" {
		layer["proxy_path"] = cfg.ProxyPath
	}

	credentials := map[string]any{}
	if includeZero || cfg.Credentials.AccountName != "" {
		credentials["account_name"] = cfg.Credentials.AccountName
	}
	if includeZero || cfg.Credentials.SecretKey != "" {
		credentials["secret_key"] = cfg.Credentials.SecretKey
	}
	if includeZero || cfg.Credentials.AccessKey != "" {
		credentials["access_key"] = cfg.Credentials.AccessKey
	}
	if len(credentials) > 0 {
		layer["credentials"] = credentials
	}

	if includeZero || cfg.MaxResponseBodyBytes > 0 {
		layer["max_response_body_bytes"] = cfg.MaxResponseBodyBytes
	}
	if includeZero || cfg.Cache.DisableCoalescing {
		layer["cache"] = map[string]any{
			"disable_coalescing": cfg.Cache.DisableCoalescing,
		}
	}
	return layer
}
