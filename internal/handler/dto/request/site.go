package request

import (
	"salon-site/internal/domain/site"
)

type CreateSiteRequest struct {
	Slug    string  `json:"slug" binding:"required"`
	Domain  *string `json:"domain,omitempty"`
	Brand   *string `json:"brand,omitempty"`
	Tagline *string `json:"tagline,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

func (r CreateSiteRequest) ToDomain() (*site.Site, error) {
	return site.NewSite(site.NewSiteParams{
		Slug:    r.Slug,
		Domain:  r.Domain,
		Brand:   r.Brand,
		Tagline: r.Tagline,
		Phone:   r.Phone,
		Address: r.Address,
	})
}
