package readstore

import (
	"context"

	"salon-site/internal/infra"
	"salon-site/internal/infra/db"
	"salon-site/internal/pkg/pgconv"
	"salon-site/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const findReservationsByLineUserSQL = `
SELECT id, line_user_id, line_display_name, display_name, phone, menu, reserved_at, note, created_at
FROM reservations
WHERE line_user_id = $1
ORDER BY reserved_at DESC, id DESC`

type ReservationReadStore struct {
	handle *db.Handle
}

func NewReservationReadStore(handle *db.Handle) *ReservationReadStore {
	return &ReservationReadStore{handle: handle}
}

func (r *ReservationReadStore) FindByLineUserID(ctx context.Context, lineUserID string) ([]*queries.ReservationView, error) {
	pool, err := r.handle.Pool()
	if err != nil {
		return nil, infra.WrapRepoErr("datastore is not configured", err, infra.KindNotConfigured)
	}

	rows, err := pool.Query(ctx, findReservationsByLineUserSQL, lineUserID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations by line user", err)
	}
	defer rows.Close()

	var result []*queries.ReservationView
	for rows.Next() {
		var (
			id              uuid.UUID
			lineUser        string
			lineDisplayName pgtype.Text
			displayName     pgtype.Text
			phone           pgtype.Text
			menu            string
			reservedAt      pgtype.Timestamptz
			note            pgtype.Text
			createdAt       pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &lineUser, &lineDisplayName, &displayName, &phone, &menu, &reservedAt, &note, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, &queries.ReservationView{
			ID:              id,
			LineUserID:      lineUser,
			LineDisplayName: pgconv.StringPtrFromPgtype(lineDisplayName),
			DisplayName:     pgconv.StringPtrFromPgtype(displayName),
			Phone:           pgconv.StringPtrFromPgtype(phone),
			Menu:            menu,
			ReservedAt:      pgconv.TimeFromPgtype(reservedAt),
			Note:            pgconv.StringPtrFromPgtype(note),
			CreatedAt:       pgconv.TimeFromPgtype(createdAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}

	return result, nil
}
