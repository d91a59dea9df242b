package commands

import (
	"context"
	"log/slog"

	"salon-site/internal/domain/site"
	reqdto "salon-site/internal/handler/dto/request"
	"salon-site/internal/infra"
	"salon-site/internal/pkg/errs"
	"salon-site/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrSlugAlreadyExists = errs.New("slug already exists")

type CreateSiteResult struct {
	ID uuid.UUID
}

type SiteRepository interface {
	Create(ctx context.Context, s *site.Site) (uuid.UUID, error)
}

type SiteCommands interface {
	CreateSite(ctx context.Context, req reqdto.CreateSiteRequest) (*CreateSiteResult, error)
}

type siteCommandsImpl struct {
	siteRepo SiteRepository
}

func NewSiteCommands(siteRepo SiteRepository) SiteCommands {
	return &siteCommandsImpl{siteRepo: siteRepo}
}

// CreateSite provisions a new tenant. slugの重複判定はユニーク制約
// 違反のみを根拠とする。事前のSELECTは行わない（TOCTOUを作らない）。
func (c *siteCommandsImpl) CreateSite(ctx context.Context, req reqdto.CreateSiteRequest) (*CreateSiteResult, error) {
	s, err := req.ToDomain()
	if err != nil {
		return nil, err
	}

	id, err := c.siteRepo.Create(ctx, s)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrSlugAlreadyExists)
		}
		slog.Error("サイトの作成に失敗しました", "slug", s.Slug().String(), "error", err.Error())
		return nil, shared.MarkStoreError(err)
	}

	return &CreateSiteResult{ID: id}, nil
}
