package vtex

import (
	"context"
	"time"

	"github.com/goliatone/go-commerce-vtex/core"
	"github.com/goliatone/go-commerce-vtex/memo"
)

const (
	ResourceSeller = "seller"

	sellersPath = "api/seller-register/pvt/sellers"
	// historical discriminator, kept so keys match across versions
	sellerCacheSuffix = "categoryById"
)

type SellerService struct {
	connectionID string
	runtime      *core.Runtime
	client       *client
	cache        memo.Cache
}

func sellerPath(id string) string {
	return sellersPath + "/" + id
}

func sellerCacheKey(id string) string {
	return id + sellerCacheSuffix
}

// FindByID returns the seller for id, fetching it at most once per
// connection.
func (s *SellerService) FindByID(ctx context.Context, id string) (core.Seller, error) {
	startedAt := time.Now()
	fields := s.fields(id)
	seller, err := memo.GetOrCompute(ctx, s.cache, sellerCacheKey(id), func(ctx context.Context) (core.Seller, error) {
		s.runtime.Debug(ctx, "seller cache miss", fields)
		body, err := s.client.get(ctx, ResourceSeller, sellerPath(id))
		if err != nil {
			return core.Seller{}, err
		}
		payload, err := decodeJSON[*SellerPayload](body, ResourceSeller)
		if err != nil {
			return core.Seller{}, err
		}
		if payload == nil {
			return core.Seller{}, core.DecodingError(nil, ResourceSeller, "vtex: seller response is null")
		}
		return TransformSeller(*payload), nil
	})
	err = s.runtime.MapError(err)
	s.runtime.Observe(ctx, startedAt, "seller.find_by_id", err, fields)
	if err != nil {
		return core.Seller{}, err
	}
	return seller, nil
}

// Search lists the sellers of the first page. An envelope without items is a
// decoding failure; an empty items array is an empty result.
func (s *SellerService) Search(ctx context.Context) ([]core.SellerSummary, error) {
	startedAt := time.Now()
	sellers, err := s.search(ctx)
	err = s.runtime.MapError(err)
	s.runtime.Observe(ctx, startedAt, "seller.search", err, s.fields(""))
	if err != nil {
		return nil, err
	}
	return sellers, nil
}

func (s *SellerService) search(ctx context.Context) ([]core.SellerSummary, error) {
	body, err := s.client.get(ctx, ResourceSeller, sellersPath)
	if err != nil {
		return nil, err
	}
	payload, err := decodeJSON[sellerListPayload](body, ResourceSeller)
	if err != nil {
		return nil, err
	}
	if payload.Items == nil {
		return nil, core.DecodingError(nil, ResourceSeller, "vtex: seller listing has no items field")
	}
	return ProjectSellers(*payload.Items), nil
}

// RequestObject describes the call FindByID would make for id without
// dispatching it.
func (s *SellerService) RequestObject(id string) core.RequestDescriptor {
	return core.NewRequestDescriptor(
		s.client.resolver.URL(sellerPath(id)),
		s.client.resolver.Headers(),
		core.DescriptorOptionSeller,
		id,
	)
}

func (s *SellerService) fields(id string) map[string]any {
	fields := map[string]any{
		"connection_id": s.connectionID,
		"account":       s.client.resolver.credentials.AccountName,
		"resource":      ResourceSeller,
	}
	if id != "" {
		fields["id"] = id
	}
	return fields
}
