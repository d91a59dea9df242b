//go:build unit || e2e

package builder

import (
	"time"

	domreservation "salon-site/internal/domain/reservation"
	reqdto "salon-site/internal/handler/dto/request"
	"salon-site/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	LineUserID      string
	LineDisplayName string
	DisplayName     string
	Phone           string
	Menu            string
	ReservedAt      string
	Note            string
	CreatedAt       time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		LineUserID:      "U1234567890abcdef",
		LineDisplayName: "山田 花子",
		DisplayName:     "やまだ",
		Phone:           "09012345678",
		Menu:            "カット",
		ReservedAt:      "2025-06-01T10:00:00+09:00",
		Note:            "初めての利用です",
		CreatedAt:       time.Now(),
	}
}

func (r *ReservationBuilder) BuildDomain() (*domreservation.Reservation, error) {
	return domreservation.NewReservation(domreservation.NewReservationParams{
		LineUserID:      r.LineUserID,
		LineDisplayName: optional(r.LineDisplayName),
		DisplayName:     optional(r.DisplayName),
		Phone:           r.Phone,
		Menu:            r.Menu,
		ReservedAt:      r.ReservedAt,
		Note:            optional(r.Note),
	})
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		LineUserID:      r.LineUserID,
		LineDisplayName: optional(r.LineDisplayName),
		DisplayName:     optional(r.DisplayName),
		Phone:           optional(r.Phone),
		Menu:            r.Menu,
		ReservedAt:      r.ReservedAt,
		Note:            optional(r.Note),
	}
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	reservedAt, _ := domreservation.NewReservedAt(r.ReservedAt)
	return &queries.ReservationView{
		ID:              uuid.New(),
		LineUserID:      r.LineUserID,
		LineDisplayName: optional(r.LineDisplayName),
		DisplayName:     optional(r.DisplayName),
		Phone:           optional(r.Phone),
		Menu:            r.Menu,
		ReservedAt:      reservedAt.Time(),
		Note:            optional(r.Note),
		CreatedAt:       r.CreatedAt,
	}
}

// Fluent builder methods
func (r *ReservationBuilder) WithLineUserID(id string) *ReservationBuilder {
	r.LineUserID = id
	return r
}

func (r *ReservationBuilder) WithMenu(menu string) *ReservationBuilder {
	r.Menu = menu
	return r
}

func (r *ReservationBuilder) WithPhone(phone string) *ReservationBuilder {
	r.Phone = phone
	return r
}

func (r *ReservationBuilder) WithReservedAt(reservedAt string) *ReservationBuilder {
	r.ReservedAt = reservedAt
	return r
}

func (r *ReservationBuilder) WithNote(note string) *ReservationBuilder {
	r.Note = note
	return r
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
