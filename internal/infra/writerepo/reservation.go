package writerepo

import (
	"context"

	"salon-site/internal/domain/reservation"
	"salon-site/internal/infra"
	"salon-site/internal/infra/db"
	"salon-site/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createReservationSQL = `
INSERT INTO reservations (line_user_id, line_display_name, display_name, phone, menu, reserved_at, note)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

type ReservationRepository struct {
	handle *db.Handle
}

func NewReservationRepository(handle *db.Handle) *ReservationRepository {
	return &ReservationRepository{handle: handle}
}

// Create performs exactly one insert attempt. No uniqueness, no
// upsert: resubmitting the same payload inserts another row.
func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error) {
	pool, err := r.handle.Pool()
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("datastore is not configured", err, infra.KindNotConfigured)
	}

	phone := pgtype.Text{}
	if !res.Phone().IsEmpty() {
		phone = pgconv.StringToPgtype(res.Phone().String())
	}
	note := pgtype.Text{}
	if !res.Note().IsEmpty() {
		note = pgconv.StringToPgtype(res.Note().String())
	}

	var id uuid.UUID
	err = pool.QueryRow(ctx, createReservationSQL,
		res.LineUserID().String(),
		pgconv.StringPtrToPgtype(res.LineDisplayName()),
		pgconv.StringPtrToPgtype(res.DisplayName()),
		phone,
		res.Menu().String(),
		pgconv.TimeToPgtype(res.ReservedAt().Time()),
		note,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return id, nil
}
