package readstore

import (
	"context"

	"github.com/Masterminds/squirrel"

	"repairbook/internal/infra/db"
	"repairbook/internal/usecase/queries"
)

type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(dbtx db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: dbtx}
}

// ListBrands returns brands offering at least one model in the
// category, or all brands when category is empty.
func (s *CatalogReadStore) ListBrands(ctx context.Context, category string) ([]*queries.BrandView, error) {
	builder := qb.Select("DISTINCT b.id", "b.name", "b.slug").
		From("brands b").
		Join("device_models dm ON dm.brand_id = b.id").
		OrderBy("b.name")
	if category != "" {
		builder = builder.Where(squirrel.Eq{"dm.category": category})
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, wrapRead("failed to build brand list", err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapRead("failed to query brands", err)
	}
	defer rows.Close()

	var out []*queries.BrandView
	for rows.Next() {
		var v queries.BrandView
		if err := rows.Scan(&v.ID, &v.Name, &v.Slug); err != nil {
			return nil, wrapRead("failed to scan brand", err)
		}
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapRead("failed to read brands", err)
	}
	return out, nil
}

func (s *CatalogReadStore) ListModels(ctx context.Context, brandSlug string) ([]*queries.DeviceModelView, error) {
	query, args, err := qb.Select("dm.id", "dm.name", "dm.slug", "dm.category").
		From("device_models dm").
		Join("brands b ON b.id = dm.brand_id").
		Where("b.slug = ?", brandSlug).
		OrderBy("dm.name").
		ToSql()
	if err != nil {
		return nil, wrapRead("failed to build model list", err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapRead("failed to query models", err)
	}
	defer rows.Close()

	var out []*queries.DeviceModelView
	for rows.Next() {
		var v queries.DeviceModelView
		if err := rows.Scan(&v.ID, &v.Name, &v.Slug, &v.Category); err != nil {
			return nil, wrapRead("failed to scan model", err)
		}
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapRead("failed to read models", err)
	}
	return out, nil
}

// ListRepairs returns every repair type with its effective price and
// duration for the model. Repairs without an active offer fall back to
// the type's default duration and a zero price.
func (s *CatalogReadStore) ListRepairs(ctx context.Context, deviceModelSlug string) ([]*queries.RepairView, error) {
	query, args, err := qb.Select(
		"rt.id", "rt.name", "rt.slug",
		"COALESCE(CASE WHEN ro.active THEN ro.price_cents END, 0)",
		"CASE WHEN ro.active AND ro.duration_min > 0 THEN ro.duration_min ELSE rt.default_duration_min END",
	).
		From("repair_types rt").
		CrossJoin("device_models dm").
		LeftJoin("repair_offers ro ON ro.repair_type_id = rt.id AND ro.device_model_id = dm.id").
		Where("dm.slug = ?", deviceModelSlug).
		OrderBy("rt.name").
		ToSql()
	if err != nil {
		return nil, wrapRead("failed to build repair list", err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapRead("failed to query repairs", err)
	}
	defer rows.Close()

	var out []*queries.RepairView
	for rows.Next() {
		var v queries.RepairView
		if err := rows.Scan(&v.ID, &v.Name, &v.Slug, &v.PriceCents, &v.DurationMin); err != nil {
			return nil, wrapRead("failed to scan repair", err)
		}
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapRead("failed to read repairs", err)
	}
	return out, nil
}
