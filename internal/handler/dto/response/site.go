package response

import (
	"time"

	"salon-site/internal/usecase/queries"

	"github.com/google/uuid"
)

type SiteResponse struct {
	ID        uuid.UUID `json:"id"`
	Slug      string    `json:"slug"`
	Domain    *string   `json:"domain,omitempty"`
	Brand     *string   `json:"brand,omitempty"`
	Tagline   *string   `json:"tagline,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Address   *string   `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type ClientConfigResponse struct {
	LiffID string `json:"liffId"`
}

func FromSiteView(rm *queries.SiteView) *SiteResponse {
	return &SiteResponse{
		ID:        rm.ID,
		Slug:      rm.Slug,
		Domain:    rm.Domain,
		Brand:     rm.Brand,
		Tagline:   rm.Tagline,
		Phone:     rm.Phone,
		Address:   rm.Address,
		CreatedAt: rm.CreatedAt,
	}
}
