package readstore

import (
	"context"

	"salon-site/internal/infra"
	"salon-site/internal/infra/db"
	"salon-site/internal/pkg/pgconv"
	"salon-site/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const findSiteBySlugSQL = `
SELECT id, slug, domain, brand, tagline, phone, address, created_at
FROM sites
WHERE slug = $1`

type SiteReadStore struct {
	handle *db.Handle
}

func NewSiteReadStore(handle *db.Handle) *SiteReadStore {
	return &SiteReadStore{handle: handle}
}

func (r *SiteReadStore) FindBySlug(ctx context.Context, slug string) (*queries.SiteView, error) {
	pool, err := r.handle.Pool()
	if err != nil {
		return nil, infra.WrapRepoErr("datastore is not configured", err, infra.KindNotConfigured)
	}

	var (
		id        uuid.UUID
		slugCol   string
		domain    pgtype.Text
		brand     pgtype.Text
		tagline   pgtype.Text
		phone     pgtype.Text
		address   pgtype.Text
		createdAt pgtype.Timestamptz
	)
	err = pool.QueryRow(ctx, findSiteBySlugSQL, slug).
		Scan(&id, &slugCol, &domain, &brand, &tagline, &phone, &address, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("site not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find site by slug", err)
	}

	return &queries.SiteView{
		ID:        id,
		Slug:      slugCol,
		Domain:    pgconv.StringPtrFromPgtype(domain),
		Brand:     pgconv.StringPtrFromPgtype(brand),
		Tagline:   pgconv.StringPtrFromPgtype(tagline),
		Phone:     pgconv.StringPtrFromPgtype(phone),
		Address:   pgconv.StringPtrFromPgtype(address),
		CreatedAt: pgconv.TimeFromPgtype(createdAt),
	}, nil
}
