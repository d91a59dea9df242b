package response

import (
	"time"

	"salon-site/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type ReservationResponse struct {
	ID              uuid.UUID `json:"id"`
	LineUserID      string    `json:"lineUserId"`
	LineDisplayName *string   `json:"lineDisplayName,omitempty"`
	DisplayName     *string   `json:"displayName,omitempty"`
	Phone           *string   `json:"phone,omitempty"`
	Menu            string    `json:"menu"`
	ReservedAt      time.Time `json:"reservedAt"`
	Note            *string   `json:"note,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:              rm.ID,
		LineUserID:      rm.LineUserID,
		LineDisplayName: rm.LineDisplayName,
		DisplayName:     rm.DisplayName,
		Phone:           rm.Phone,
		Menu:            rm.Menu,
		ReservedAt:      rm.ReservedAt,
		Note:            rm.Note,
		CreatedAt:       rm.CreatedAt,
	}
}
