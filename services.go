// Package commerce wires the VTEX resource services for a single store
// connection.
package commerce

import (
	"github.com/goliatone/go-commerce-vtex/core"
	"github.com/goliatone/go-commerce-vtex/providers/vtex"
)

type Config = core.Config

type Credentials = core.Credentials

type Option = core.Option

type Seller = core.Seller
type SellerSummary = core.SellerSummary
type Cluster = core.Cluster
type ClusterSummary = core.ClusterSummary
type RequestDescriptor = core.RequestDescriptor

type Services = vtex.Services

var (
	WithLogger          = core.WithLogger
	WithLoggerProvider  = core.WithLoggerProvider
	WithMetricsRecorder = core.WithMetricsRecorder
	WithErrorMapper     = core.WithErrorMapper
	WithConfigProvider  = core.WithConfigProvider
	WithOptionsResolver = core.WithOptionsResolver
	WithAPIRootResolver = core.WithAPIRootResolver
	WithTransport       = core.WithTransport
	WithCache           = core.WithCache
	WithCacheService    = core.WithCacheService
)

func DefaultConfig() Config {
	return core.DefaultConfig()
}

// New resolves cfg and returns the seller and cluster services for the
// connection it describes.
func New(cfg Config, opts ...Option) (*Services, error) {
	rt, err := core.NewRuntime(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return vtex.New(rt)
}
