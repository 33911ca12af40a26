package vtex

import (
	"strings"

	"github.com/goliatone/go-commerce-vtex/core"
)

// SellerPayload is the seller shape returned by the seller register API.
type SellerPayload struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}

type sellerListPayload struct {
	Items *[]SellerPayload `json:"items"`
}

// ClusterRow is one row of the CC data entity search.
type ClusterRow struct {
	ClusterName string `json:"clusterName"`
}

func TransformSeller(seller SellerPayload) core.Seller {
	return core.Seller{
		ID:       seller.ID,
		Title:    seller.Name,
		Handle:   "",
		IsActive: seller.IsActive,
	}
}

// TransformCluster collapses the rows of an exact cluster lookup into one
// record. The search answers one row per matching document, all sharing the
// cluster name, so the first row is authoritative.
func TransformCluster(id string, rows []ClusterRow) (core.Cluster, error) {
	if len(rows) == 0 {
		return core.Cluster{}, core.NotFoundError(ResourceCluster, id)
	}
	name := rows[0].ClusterName
	return core.Cluster{
		ID:     strings.ToLower(name),
		Title:  name,
		Handle: "",
	}, nil
}

// ProjectSellers is the listing projection. Unlike TransformSeller it carries
// no handle.
func ProjectSellers(items []SellerPayload) []core.SellerSummary {
	out := make([]core.SellerSummary, 0, len(items))
	for _, item := range items {
		out = append(out, core.SellerSummary{
			ID:       item.ID,
			Title:    item.Name,
			IsActive: item.IsActive,
		})
	}
	return out
}

// ProjectClusters keeps one entry per row; duplicates are not collapsed.
func ProjectClusters(rows []ClusterRow) []core.ClusterSummary {
	out := make([]core.ClusterSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, core.ClusterSummary{
			ID:    strings.ToLower(row.ClusterName),
			Title: row.ClusterName,
		})
	}
	return out
}
