//go:build unit || e2e

package builder

import (
	"time"

	domsite "salon-site/internal/domain/site"
	reqdto "salon-site/internal/handler/dto/request"
	"salon-site/internal/usecase/queries"

	"github.com/google/uuid"
)

type SiteBuilder struct {
	Slug    string
	Domain  string
	Brand   string
	Tagline string
	Phone   string
	Address string
}

func NewSiteBuilder() *SiteBuilder {
	return &SiteBuilder{
		Slug:    "my-salon",
		Domain:  "my-salon.example.com",
		Brand:   "Salon de Test",
		Tagline: "あなたの髪に、最高の一日を",
		Phone:   "0312345678",
		Address: "東京都渋谷区1-2-3",
	}
}

func (s *SiteBuilder) BuildDomain() (*domsite.Site, error) {
	return domsite.NewSite(domsite.NewSiteParams{
		Slug:    s.Slug,
		Domain:  optional(s.Domain),
		Brand:   optional(s.Brand),
		Tagline: optional(s.Tagline),
		Phone:   optional(s.Phone),
		Address: optional(s.Address),
	})
}

func (s *SiteBuilder) BuildCreateRequestDTO() reqdto.CreateSiteRequest {
	return reqdto.CreateSiteRequest{
		Slug:    s.Slug,
		Domain:  optional(s.Domain),
		Brand:   optional(s.Brand),
		Tagline: optional(s.Tagline),
		Phone:   optional(s.Phone),
		Address: optional(s.Address),
	}
}

func (s *SiteBuilder) BuildView() *queries.SiteView {
	return &queries.SiteView{
		ID:        uuid.New(),
		Slug:      s.Slug,
		Domain:    optional(s.Domain),
		Brand:     optional(s.Brand),
		Tagline:   optional(s.Tagline),
		Phone:     optional(s.Phone),
		Address:   optional(s.Address),
		CreatedAt: time.Now(),
	}
}

// Fluent builder methods
func (s *SiteBuilder) WithSlug(slug string) *SiteBuilder {
	s.Slug = slug
	return s
}

func (s *SiteBuilder) WithBrand(brand string) *SiteBuilder {
	s.Brand = brand
	return s
}
