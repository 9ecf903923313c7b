package queries

import (
	"context"
)

type CatalogReadStore interface {
	ListBrands(ctx context.Context, category string) ([]*BrandView, error)
	ListModels(ctx context.Context, brandSlug string) ([]*DeviceModelView, error)
	ListRepairs(ctx context.Context, deviceModelSlug string) ([]*RepairView, error)
}

// CatalogQueries serves the public browse flow: category, brand,
// model, then the repairs offered for that model with effective price
// and duration.
type CatalogQueries interface {
	Brands(ctx context.Context, category string) ([]*BrandView, error)
	Models(ctx context.Context, brandSlug string) ([]*DeviceModelView, error)
	Repairs(ctx context.Context, deviceModelSlug string) ([]*RepairView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) Brands(ctx context.Context, category string) ([]*BrandView, error) {
	return q.store.ListBrands(ctx, category)
}

func (q *catalogQueriesImpl) Models(ctx context.Context, brandSlug string) ([]*DeviceModelView, error) {
	return q.store.ListModels(ctx, brandSlug)
}

func (q *catalogQueriesImpl) Repairs(ctx context.Context, deviceModelSlug string) ([]*RepairView, error) {
	return q.store.ListRepairs(ctx, deviceModelSlug)
}
