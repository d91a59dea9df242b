package writerepo

import (
	"context"

	"salon-site/internal/domain/site"
	"salon-site/internal/infra"
	"salon-site/internal/infra/db"
	"salon-site/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// slugの一意性はsites_slug_keyユニーク制約が担保する。
// 重複時の23505がKindDuplicateKeyに翻訳される。
const createSiteSQL = `
INSERT INTO sites (slug, domain, brand, tagline, phone, address)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

type SiteRepository struct {
	handle *db.Handle
}

func NewSiteRepository(handle *db.Handle) *SiteRepository {
	return &SiteRepository{handle: handle}
}

func (r *SiteRepository) Create(ctx context.Context, s *site.Site) (uuid.UUID, error) {
	pool, err := r.handle.Pool()
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("datastore is not configured", err, infra.KindNotConfigured)
	}

	var id uuid.UUID
	err = pool.QueryRow(ctx, createSiteSQL,
		s.Slug().String(),
		pgconv.StringPtrToPgtype(s.Domain()),
		pgconv.StringPtrToPgtype(s.Brand()),
		pgconv.StringPtrToPgtype(s.Tagline()),
		pgconv.StringPtrToPgtype(s.Phone()),
		pgconv.StringPtrToPgtype(s.Address()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create site", err)
	}

	return id, nil
}
