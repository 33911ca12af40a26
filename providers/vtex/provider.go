package vtex

import (
	"github.com/goliatone/go-commerce-vtex/core"
	"github.com/goliatone/go-commerce-vtex/memo"
	"github.com/goliatone/go-commerce-vtex/transport"
	"github.com/google/uuid"
)

const ProviderID = "vtex"

// Services is the resource surface handed to the host for one store
// connection. Seller and Cluster share a single memo cache.
type Services struct {
	ConnectionID string
	Seller       *SellerService
	Cluster      *ClusterService
	resolver     *Resolver
}

// New builds the resource services for the connection described by rt.
func New(rt *core.Runtime) (*Services, error) {
	if rt == nil {
		return nil, core.ValidationError("vtex: runtime is required")
	}
	cfg := rt.Config()
	resolver := NewResolver(cfg.Credentials, rt.APIRootResolver(), cfg.ProxyPath)

	adapter := rt.Transport()
	if adapter == nil {
		adapter = transport.NewRESTAdapter(nil)
	}
	cache := rt.Cache()
	if cache == nil {
		cache = memo.New(memo.WithCoalescing(!cfg.Cache.DisableCoalescing))
	}

	shared := &client{resolver: resolver, transport: adapter, maxBodyBytes: cfg.MaxResponseBodyBytes}
	connectionID := uuid.NewString()
	services := &Services{
		ConnectionID: connectionID,
		Seller: &SellerService{
			connectionID: connectionID,
			runtime:      rt,
			client:       shared,
			cache:        cache,
		},
		Cluster: &ClusterService{
			connectionID: connectionID,
			runtime:      rt,
			client:       shared,
			cache:        cache,
		},
		resolver: resolver,
	}
	rt.Logger().Info("vtex services ready",
		"connection_id", connectionID,
		"account", cfg.Credentials.AccountName,
		"external_host", resolver.ExternalHost(),
	)
	return services, nil
}

func (s *Services) Resolver() *Resolver {
	if s == nil {
		return nil
	}
	return s.resolver
}
