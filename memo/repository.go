package memo

import (
	"context"
	"fmt"
	"strings"

	repositorycache "github.com/goliatone/go-repository-cache/cache"
)

const repositoryKeyPrefix = "go-commerce-vtex::memo::v1"

// RepositoryCache stores lookups in a go-repository-cache service so several
// connections can share one cache. Expiry follows the service configuration.
type RepositoryCache struct {
	service   repositorycache.CacheService
	namespace string
}

func NewRepositoryCache(service repositorycache.CacheService, namespace string) (*RepositoryCache, error) {
	if service == nil {
		return nil, fmt.Errorf("memo: repository cache service is required")
	}
	return &RepositoryCache{
		service:   service,
		namespace: strings.TrimSpace(namespace),
	}, nil
}

// Key namespaces key so two connections sharing a service never collide.
func (c *RepositoryCache) Key(key string) string {
	if c == nil || c.namespace == "" {
		return repositoryKeyPrefix + "::" + key
	}
	return repositoryKeyPrefix + "::" + c.namespace + "::" + key
}

func (c *RepositoryCache) GetOrCompute(ctx context.Context, key string, compute ComputeFunc) (any, error) {
	if c == nil || c.service == nil {
		return nil, fmt.Errorf("memo: repository cache is not configured")
	}
	if compute == nil {
		return nil, fmt.Errorf("memo: compute function is required")
	}
	return repositorycache.GetOrFetch(ctx, c.service, c.Key(key), func(ctx context.Context) (any, error) {
		return compute(ctx)
	})
}

var _ Cache = (*RepositoryCache)(nil)
