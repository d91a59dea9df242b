package reservation

import (
	"errors"
	"strings"
)

var (
	ErrEmptyLineUserID   = errors.New("line user id is required")
	ErrEmptyMenu         = errors.New("menu is required")
	ErrInvalidReservedAt = errors.New("reserved at must be a parseable date/time")
	ErrInvalidPhone      = errors.New("phone must be 10-11 digits")
)

// Reservation は予約フォームから作成され、以後この系では不変。
// 更新・キャンセル操作は存在しない。
type Reservation struct {
	lineUserID      LineUserID
	lineDisplayName *string
	displayName     *string
	phone           Phone
	menu            Menu
	reservedAt      ReservedAt
	note            Note
}

type NewReservationParams struct {
	LineUserID      string
	LineDisplayName *string
	DisplayName     *string
	Phone           string
	Menu            string
	ReservedAt      string
	Note            *string
}

func NewReservation(params NewReservationParams) (*Reservation, error) {
	lineUserID, err := NewLineUserID(params.LineUserID)
	if err != nil {
		return nil, err
	}

	menu, err := NewMenu(params.Menu)
	if err != nil {
		return nil, err
	}

	reservedAt, err := NewReservedAt(params.ReservedAt)
	if err != nil {
		return nil, err
	}

	phone, err := NewPhone(params.Phone)
	if err != nil {
		return nil, err
	}

	note := Note{}
	if params.Note != nil {
		note = NewNote(*params.Note)
	}

	return &Reservation{
		lineUserID:      lineUserID,
		lineDisplayName: normalizeOptional(params.LineDisplayName),
		displayName:     normalizeOptional(params.DisplayName),
		phone:           phone,
		menu:            menu,
		reservedAt:      reservedAt,
		note:            note,
	}, nil
}

func (r *Reservation) LineUserID() LineUserID {
	return r.lineUserID
}

func (r *Reservation) LineDisplayName() *string {
	return r.lineDisplayName
}

func (r *Reservation) DisplayName() *string {
	return r.displayName
}

func (r *Reservation) Phone() Phone {
	return r.phone
}

func (r *Reservation) Menu() Menu {
	return r.menu
}

func (r *Reservation) ReservedAt() ReservedAt {
	return r.reservedAt
}

func (r *Reservation) Note() Note {
	return r.note
}

// 空文字は未入力としてNULL相当に寄せる
func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
