package commands

import (
	"context"
	"log/slog"

	"salon-site/internal/domain/reservation"
	reqdto "salon-site/internal/handler/dto/request"
	"salon-site/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReservationResult struct {
	ID uuid.UUID
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error)
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, req reqdto.CreateReservationRequest) (*CreateReservationResult, error)
}

type reservationCommandsImpl struct {
	reservationRepo ReservationRepository
}

func NewReservationCommands(reservationRepo ReservationRepository) ReservationCommands {
	return &reservationCommandsImpl{reservationRepo: reservationRepo}
}

// CreateReservation validates and persists a single intake-form
// submission. There is deliberately no idempotency key and no
// duplicate detection: the same payload submitted twice creates two
// rows, exactly as the intake form behaves.
func (c *reservationCommandsImpl) CreateReservation(ctx context.Context, req reqdto.CreateReservationRequest) (*CreateReservationResult, error) {
	res, err := req.ToDomain()
	if err != nil {
		// バリデーション失敗時はストアに触れない
		return nil, err
	}

	id, err := c.reservationRepo.Create(ctx, res)
	if err != nil {
		slog.Error("予約の保存に失敗しました", "error", err.Error())
		return nil, shared.MarkStoreError(err)
	}

	return &CreateReservationResult{ID: id}, nil
}
