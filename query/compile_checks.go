package query

import (
	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-commerce-vtex/core"
	"github.com/goliatone/go-commerce-vtex/providers/vtex"
)

var (
	_ gocmd.Querier[FindSellerMessage, core.Seller]               = (*FindSellerQuery)(nil)
	_ gocmd.Querier[SearchSellersMessage, []core.SellerSummary]   = (*SearchSellersQuery)(nil)
	_ gocmd.Querier[FindClusterMessage, core.Cluster]             = (*FindClusterQuery)(nil)
	_ gocmd.Querier[SearchClustersMessage, []core.ClusterSummary] = (*SearchClustersQuery)(nil)
	_ gocmd.Querier[RequestObjectMessage, core.RequestDescriptor] = (*RequestObjectQuery)(nil)
)

var (
	_ SellerReader         = (*vtex.SellerService)(nil)
	_ ClusterReader        = (*vtex.ClusterService)(nil)
	_ RequestObjectBuilder = (*vtex.SellerService)(nil)
	_ RequestObjectBuilder = (*vtex.ClusterService)(nil)
)
