package vtex

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-commerce-vtex/core"
	"github.com/goliatone/go-commerce-vtex/memo"
)

const (
	ResourceCluster = "cluster"

	clusterSearchPath  = "api/dataentities/CC/search"
	clusterListPath    = clusterSearchPath + "?_fields=clusterName,"
	clusterCacheSuffix = "clusterId"
)

type ClusterService struct {
	connectionID string
	runtime      *core.Runtime
	client       *client
	cache        memo.Cache
}

func clusterPath(id string) string {
	return clusterSearchPath + "?clusterName=" + id
}

func clusterCacheKey(id string) string {
	return id + clusterCacheSuffix
}

// FindByID resolves a cluster by name. The data entity search answers with
// one row per matching document; an empty answer is reported as not found.
func (s *ClusterService) FindByID(ctx context.Context, id string) (core.Cluster, error) {
	startedAt := time.Now()
	fields := s.fields(id)
	cluster, err := memo.GetOrCompute(ctx, s.cache, clusterCacheKey(id), func(ctx context.Context) (core.Cluster, error) {
		s.runtime.Debug(ctx, "cluster cache miss", fields)
		body, err := s.client.get(ctx, ResourceCluster, clusterPath(id))
		if err != nil {
			return core.Cluster{}, err
		}
		rows, err := decodeClusterRows(body)
		if err != nil {
			return core.Cluster{}, err
		}
		return TransformCluster(id, rows)
	})
	err = s.runtime.MapError(err)
	s.runtime.Observe(ctx, startedAt, "cluster.find_by_id", err, fields)
	if err != nil {
		return core.Cluster{}, err
	}
	return cluster, nil
}

func (s *ClusterService) Search(ctx context.Context) ([]core.ClusterSummary, error) {
	startedAt := time.Now()
	clusters, err := s.search(ctx)
	err = s.runtime.MapError(err)
	s.runtime.Observe(ctx, startedAt, "cluster.search", err, s.fields(""))
	if err != nil {
		return nil, err
	}
	return clusters, nil
}

func (s *ClusterService) search(ctx context.Context) ([]core.ClusterSummary, error) {
	body, err := s.client.get(ctx, ResourceCluster, clusterListPath)
	if err != nil {
		return nil, err
	}
	rows, err := decodeClusterRows(body)
	if err != nil {
		return nil, err
	}
	return ProjectClusters(rows), nil
}

func (s *ClusterService) RequestObject(id string) core.RequestDescriptor {
	return core.NewRequestDescriptor(
		s.client.resolver.URL(clusterPath(id)),
		s.client.resolver.Headers(),
		core.DescriptorOptionCluster,
		id,
	)
}

// decodeClusterRows rejects a null body so a missing array is never mistaken
// for an empty one. Every row must carry a cluster name.
func decodeClusterRows(body []byte) ([]ClusterRow, error) {
	rows, err := decodeJSON[*[]ClusterRow](body, ResourceCluster)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		return nil, core.DecodingError(nil, ResourceCluster, "vtex: cluster search returned no array")
	}
	for index, row := range *rows {
		if strings.TrimSpace(row.ClusterName) == "" {
			return nil, core.DecodingError(nil, ResourceCluster,
				fmt.Sprintf("vtex: cluster row %d has no clusterName", index))
		}
	}
	return *rows, nil
}

func (s *ClusterService) fields(id string) map[string]any {
	fields := map[string]any{
		"connection_id": s.connectionID,
		"account":       s.client.resolver.credentials.AccountName,
		"resource":      ResourceCluster,
	}
	if id != "" {
		fields["id"] = id
	}
	return fields
}
