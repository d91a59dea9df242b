package queries

import (
	"context"
	"time"

	"salon-site/internal/usecase/shared"

	"github.com/google/uuid"
)

// ReservationView is the read model handed back to the mini-app.
type ReservationView struct {
	ID              uuid.UUID
	LineUserID      string
	LineDisplayName *string
	DisplayName     *string
	Phone           *string
	Menu            string
	ReservedAt      time.Time
	Note            *string
	CreatedAt       time.Time
}

type ReservationReadStore interface {
	FindByLineUserID(ctx context.Context, lineUserID string) ([]*ReservationView, error)
}

type ReservationQueries interface {
	ListByLineUser(ctx context.Context, lineUserID string) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
}

func NewReservationQueries(readStore ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{readStore: readStore}
}

func (q *reservationQueriesImpl) ListByLineUser(ctx context.Context, lineUserID string) ([]*ReservationView, error) {
	views, err := q.readStore.FindByLineUserID(ctx, lineUserID)
	if err != nil {
		return nil, shared.MarkStoreError(err)
	}
	return views, nil
}
