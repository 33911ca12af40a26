package query

import "github.com/goliatone/go-commerce-vtex/providers/vtex"

// Queries groups the query handlers bound to one store connection.
type Queries struct {
	FindSeller     *FindSellerQuery
	SearchSellers  *SearchSellersQuery
	FindCluster    *FindClusterQuery
	SearchClusters *SearchClustersQuery
	RequestObject  *RequestObjectQuery
}

func NewQueries(services *vtex.Services) Queries {
	if services == nil {
		return Queries{
			FindSeller:     NewFindSellerQuery(nil),
			SearchSellers:  NewSearchSellersQuery(nil),
			FindCluster:    NewFindClusterQuery(nil),
			SearchClusters: NewSearchClustersQuery(nil),
			RequestObject:  NewRequestObjectQuery(nil, nil),
		}
	}
	return Queries{
		FindSeller:     NewFindSellerQuery(services.Seller),
		SearchSellers:  NewSearchSellersQuery(services.Seller),
		FindCluster:    NewFindClusterQuery(services.Cluster),
		SearchClusters: NewSearchClustersQuery(services.Cluster),
		RequestObject:  NewRequestObjectQuery(services.Seller, services.Cluster),
	}
}
