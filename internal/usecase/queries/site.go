package queries

import (
	"context"
	"time"

	"salon-site/internal/infra"
	"salon-site/internal/pkg/errs"
	"salon-site/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrSiteNotFound = errs.New("site not found")

// SiteView is the provisioned site record consumed by the page
// renderer when it resolves a tenant by slug.
type SiteView struct {
	ID        uuid.UUID
	Slug      string
	Domain    *string
	Brand     *string
	Tagline   *string
	Phone     *string
	Address   *string
	CreatedAt time.Time
}

type SiteReadStore interface {
	FindBySlug(ctx context.Context, slug string) (*SiteView, error)
}

type SiteQueries interface {
	GetBySlug(ctx context.Context, slug string) (*SiteView, error)
}

type siteQueriesImpl struct {
	readStore SiteReadStore
}

func NewSiteQueries(readStore SiteReadStore) SiteQueries {
	return &siteQueriesImpl{readStore: readStore}
}

func (q *siteQueriesImpl) GetBySlug(ctx context.Context, slug string) (*SiteView, error) {
	view, err := q.readStore.FindBySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrSiteNotFound)
		}
		return nil, shared.MarkStoreError(err)
	}
	return view, nil
}
