package core

import (
	"context"
	"strings"

	"github.com/goliatone/go-commerce-vtex/memo"
	glog "github.com/goliatone/go-logger/glog"
)

// Runtime carries the resolved configuration and the collaborators shared by
// the resource services of a single store connection.
type Runtime struct {
	config          Config
	logger          Logger
	loggerProvider  LoggerProvider
	metricsRecorder MetricsRecorder
	errorMapper     ErrorMapper
	apiRootResolver APIRootResolver
	transport       TransportAdapter
	cache           memo.Cache
}

func NewRuntime(cfg Config, opts ...Option) (*Runtime, error) {
	builder := defaultRuntimeBuilder(cfg)
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&builder)
	}

	if builder.errorMapper == nil {
		builder.errorMapper = MapError
	}
	if builder.metricsRecorder == nil {
		builder.metricsRecorder = NopMetricsRecorder{}
	}
	if builder.configProvider == nil {
		builder.configProvider = NewCfgxConfigProvider(nil)
	}
	if builder.optionsResolver == nil {
		builder.optionsResolver = GoOptionsResolver{}
	}

	defaults := DefaultConfig()
	loaded, err := builder.configProvider.Load(context.Background(), defaults)
	if err != nil {
		return nil, mapBuildError(builder.errorMapper, err)
	}
	finalConfig, err := builder.optionsResolver.Resolve(defaults, loaded, builder.runtimeConfig)
	if err != nil {
		return nil, mapBuildError(builder.errorMapper, err)
	}

	provider, logger := glog.Resolve(finalConfig.ServiceName, builder.loggerProvider, builder.logger)
	logger = glog.Ensure(logger)
	if provider != nil {
		if named := provider.GetLogger(finalConfig.ServiceName); named != nil {
			logger = glog.Ensure(named)
		}
	}

	if builder.apiRootResolver == nil {
		builder.apiRootResolver = StaticAPIRoot(finalConfig.APIRoot)
	}
	if builder.cache == nil && builder.cacheService != nil {
		shared, err := memo.NewRepositoryCache(builder.cacheService, cacheNamespace(finalConfig, builder.apiRootResolver.APIRoot()))
		if err != nil {
			return nil, mapBuildError(builder.errorMapper, err)
		}
		builder.cache = shared
	}
	if builder.cache == nil {
		builder.cache = memo.New(memo.WithCoalescing(!finalConfig.Cache.DisableCoalescing))
	}

	return &Runtime{
		config:          finalConfig,
		logger:          logger,
		loggerProvider:  provider,
		metricsRecorder: builder.metricsRecorder,
		errorMapper:     builder.errorMapper,
		apiRootResolver: builder.apiRootResolver,
		transport:       builder.transport,
		cache:           builder.cache,
	}, nil
}

func mapBuildError(mapper ErrorMapper, err error) error {
	if err == nil {
		return nil
	}
	if mapper == nil {
		return err
	}
	mapped := mapper(err)
	if mapped == nil {
		return err
	}
	return mapped
}

func (r *Runtime) Config() Config {
	if r == nil {
		return Config{}
	}
	return r.config
}

func (r *Runtime) Credentials() Credentials {
	if r == nil {
		return Credentials{}
	}
	return r.config.Credentials
}

func (r *Runtime) Logger() Logger {
	if r == nil || r.logger == nil {
		return glog.Nop()
	}
	return r.logger
}

func (r *Runtime) APIRootResolver() APIRootResolver {
	if r == nil {
		return StaticAPIRoot("")
	}
	return r.apiRootResolver
}

// Transport may be nil; callers pick their own default adapter.
func (r *Runtime) Transport() TransportAdapter {
	if r == nil {
		return nil
	}
	return r.transport
}

func (r *Runtime) Cache() memo.Cache {
	if r == nil {
		return nil
	}
	return r.cache
}

// MapError runs err through the configured mapper so every failure leaves
// the runtime as a go-errors envelope.
func (r *Runtime) MapError(err error) error {
	if err == nil {
		return nil
	}
	mapper := MapError
	if r != nil && r.errorMapper != nil {
		mapper = r.errorMapper
	}
	return mapBuildError(mapper, err)
}

// cacheNamespace identifies a connection inside a shared cache service. Two
// connections share entries only when account, endpoint and app key all match.
func cacheNamespace(cfg Config, apiRoot string) string {
	parts := []string{
		strings.TrimSpace(cfg.Credentials.AccountName),
		strings.TrimRight(strings.TrimSpace(apiRoot), "/") + cfg.ProxyPath,
		strings.TrimSpace(cfg.Credentials.AccessKey),
	}
	return strings.Join(parts, "|")
}
