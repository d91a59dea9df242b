package site

import (
	"errors"
	"strings"
)

var (
	ErrEmptySlug   = errors.New("slug is required")
	ErrInvalidSlug = errors.New("slug must be lowercase alphanumerics and hyphens")
)

// Site は開設フォームから一度だけ作成される。更新・削除経路は持たない。
// slugの一意性はDBのユニーク制約が唯一の真実であり、
// アプリ側の事前存在チェックは行わない。
type Site struct {
	slug    Slug
	domain  *string
	brand   *string
	tagline *string
	phone   *string
	address *string
}

type NewSiteParams struct {
	Slug    string
	Domain  *string
	Brand   *string
	Tagline *string
	Phone   *string
	Address *string
}

func NewSite(params NewSiteParams) (*Site, error) {
	slug, err := NewSlug(params.Slug)
	if err != nil {
		return nil, err
	}

	return &Site{
		slug:    slug,
		domain:  normalizeOptional(params.Domain),
		brand:   normalizeOptional(params.Brand),
		tagline: normalizeOptional(params.Tagline),
		phone:   normalizeOptional(params.Phone),
		address: normalizeOptional(params.Address),
	}, nil
}

func (s *Site) Slug() Slug {
	return s.slug
}

func (s *Site) Domain() *string {
	return s.domain
}

func (s *Site) Brand() *string {
	return s.brand
}

func (s *Site) Tagline() *string {
	return s.tagline
}

func (s *Site) Phone() *string {
	return s.phone
}

func (s *Site) Address() *string {
	return s.address
}

func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
