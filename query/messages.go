package query

import (
	"strings"

	"github.com/goliatone/go-commerce-vtex/core"
)

const (
	TypeFindSeller     = "vtex.query.seller.find"
	TypeSearchSellers  = "vtex.query.seller.search"
	TypeFindCluster    = "vtex.query.cluster.find"
	TypeSearchClusters = "vtex.query.cluster.search"
	TypeRequestObject  = "vtex.query.request_object"
)

type FindSellerMessage struct {
	SellerID string
}

func (FindSellerMessage) Type() string { return TypeFindSeller }

func (m FindSellerMessage) Validate() error {
	if strings.TrimSpace(m.SellerID) == "" {
		return queryValidationError("seller_id", "seller id is required")
	}
	return nil
}

type SearchSellersMessage struct{}

func (SearchSellersMessage) Type() string { return TypeSearchSellers }

func (SearchSellersMessage) Validate() error { return nil }

type FindClusterMessage struct {
	ClusterID string
}

func (FindClusterMessage) Type() string { return TypeFindCluster }

func (m FindClusterMessage) Validate() error {
	if strings.TrimSpace(m.ClusterID) == "" {
		return queryValidationError("cluster_id", "cluster id is required")
	}
	return nil
}

type SearchClustersMessage struct{}

func (SearchClustersMessage) Type() string { return TypeSearchClusters }

func (SearchClustersMessage) Validate() error { return nil }

// RequestObjectMessage asks for the deferred request descriptor of a single
// record. Resource is one of core.DescriptorOptionSeller or
// core.DescriptorOptionCluster.
type RequestObjectMessage struct {
	Resource string
	ID       string
}

func (RequestObjectMessage) Type() string { return TypeRequestObject }

func (m RequestObjectMessage) Validate() error {
	switch strings.TrimSpace(strings.ToLower(m.Resource)) {
	case core.DescriptorOptionSeller, core.DescriptorOptionCluster:
	case "":
		return queryValidationError("resource", "resource is required")
	default:
		return queryValidationError("resource", "resource must be seller or cluster")
	}
	if strings.TrimSpace(m.ID) == "" {
		return queryValidationError("id", "id is required")
	}
	return nil
}
