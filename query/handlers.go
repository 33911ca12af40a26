package query

import (
	"context"
	"strings"

	"github.com/goliatone/go-commerce-vtex/core"
)

type SellerReader interface {
	FindByID(ctx context.Context, id string) (core.Seller, error)
	Search(ctx context.Context) ([]core.SellerSummary, error)
}

type ClusterReader interface {
	FindByID(ctx context.Context, id string) (core.Cluster, error)
	Search(ctx context.Context) ([]core.ClusterSummary, error)
}

type RequestObjectBuilder interface {
	RequestObject(id string) core.RequestDescriptor
}

type FindSellerQuery struct {
	reader SellerReader
}

func NewFindSellerQuery(reader SellerReader) *FindSellerQuery {
	return &FindSellerQuery{reader: reader}
}

func (q *FindSellerQuery) Query(ctx context.Context, msg FindSellerMessage) (core.Seller, error) {
	if q == nil || q.reader == nil {
		return core.Seller{}, queryDependencyError("query: seller reader is required")
	}
	if err := msg.Validate(); err != nil {
		return core.Seller{}, err
	}
	return q.reader.FindByID(ctx, msg.SellerID)
}

type SearchSellersQuery struct {
	reader SellerReader
}

func NewSearchSellersQuery(reader SellerReader) *SearchSellersQuery {
	return &SearchSellersQuery{reader: reader}
}

func (q *SearchSellersQuery) Query(ctx context.Context, _ SearchSellersMessage) ([]core.SellerSummary, error) {
	if q == nil || q.reader == nil {
		return nil, queryDependencyError("query: seller reader is required")
	}
	return q.reader.Search(ctx)
}

type FindClusterQuery struct {
	reader ClusterReader
}

func NewFindClusterQuery(reader ClusterReader) *FindClusterQuery {
	return &FindClusterQuery{reader: reader}
}

func (q *FindClusterQuery) Query(ctx context.Context, msg FindClusterMessage) (core.Cluster, error) {
	if q == nil || q.reader == nil {
		return core.Cluster{}, queryDependencyError("query: cluster reader is required")
	}
	if err := msg.Validate(); err != nil {
		return core.Cluster{}, err
	}
	return q.reader.FindByID(ctx, msg.ClusterID)
}

type SearchClustersQuery struct {
	reader ClusterReader
}

func NewSearchClustersQuery(reader ClusterReader) *SearchClustersQuery {
	return &SearchClustersQuery{reader: reader}
}

func (q *SearchClustersQuery) Query(ctx context.Context, _ SearchClustersMessage) ([]core.ClusterSummary, error) {
	if q == nil || q.reader == nil {
		return nil, queryDependencyError("query: cluster reader is required")
	}
	return q.reader.Search(ctx)
}

// RequestObjectQuery builds descriptors without touching the network.
type RequestObjectQuery struct {
	sellers  RequestObjectBuilder
	clusters RequestObjectBuilder
}

func NewRequestObjectQuery(sellers RequestObjectBuilder, clusters RequestObjectBuilder) *RequestObjectQuery {
	return &RequestObjectQuery{sellers: sellers, clusters: clusters}
}

func (q *RequestObjectQuery) Query(_ context.Context, msg RequestObjectMessage) (core.RequestDescriptor, error) {
	if q == nil {
		return core.RequestDescriptor{}, queryDependencyError("query: request object builders are required")
	}
	if err := msg.Validate(); err != nil {
		return core.RequestDescriptor{}, err
	}
	builder := q.sellers
	if strings.TrimSpace(strings.ToLower(msg.Resource)) == core.DescriptorOptionCluster {
		builder = q.clusters
	}
	if builder == nil {
		return core.RequestDescriptor{}, queryDependencyError("query: " + strings.ToLower(msg.Resource) + " request object builder is required")
	}
	return builder.RequestObject(msg.ID), nil
}
