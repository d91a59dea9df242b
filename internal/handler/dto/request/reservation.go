package request

import (
	"salon-site/internal/domain/reservation"
)

// CreateReservationRequest is the canonical intake contract. Field
// names follow the mini-app client (camelCase); reservedAt is kept as
// a string so the domain layer owns parsing and normalization.
type CreateReservationRequest struct {
	LineUserID      string  `json:"lineUserId" binding:"required"`
	LineDisplayName *string `json:"lineDisplayName,omitempty"`
	DisplayName     *string `json:"displayName,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Menu            string  `json:"menu" binding:"required"`
	ReservedAt      string  `json:"reservedAt" binding:"required"`
	Note            *string `json:"note,omitempty"`
}

func (r CreateReservationRequest) ToDomain() (*reservation.Reservation, error) {
	phone := ""
	if r.Phone != nil {
		phone = *r.Phone
	}

	return reservation.NewReservation(reservation.NewReservationParams{
		LineUserID:      r.LineUserID,
		LineDisplayName: r.LineDisplayName,
		DisplayName:     r.DisplayName,
		Phone:           phone,
		Menu:            r.Menu,
		ReservedAt:      r.ReservedAt,
		Note:            r.Note,
	})
}
