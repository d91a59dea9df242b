package reservation

import (
	"regexp"
	"strings"
	"time"
)

// 店舗フォーム・LINEミニアプリ双方からの入力をここで正規化する

var phonePattern = regexp.MustCompile(`^[0-9]{10,11}$`)

// jst is the salon-local zone used to interpret datetime-local form
// input that carries no offset.
var jst = time.FixedZone("JST", 9*60*60)

type LineUserID struct {
	value string
}

func NewLineUserID(value string) (LineUserID, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return LineUserID{}, ErrEmptyLineUserID
	}
	return LineUserID{value: trimmed}, nil
}

func (id LineUserID) String() string {
	return id.value
}

type Menu struct {
	value string
}

func NewMenu(value string) (Menu, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Menu{}, ErrEmptyMenu
	}
	return Menu{value: trimmed}, nil
}

func (m Menu) String() string {
	return m.value
}

type Phone struct {
	value string
}

// NewPhone accepts the empty string (phone is optional on the intake
// form). A non-empty value must be 10-11 digits.
func NewPhone(value string) (Phone, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Phone{}, nil
	}
	if !phonePattern.MatchString(trimmed) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: trimmed}, nil
}

func (p Phone) String() string {
	return p.value
}

func (p Phone) IsEmpty() bool {
	return p.value == ""
}

type ReservedAt struct {
	value time.Time
}

// NewReservedAt parses the requested instant and normalizes it to UTC.
// RFC3339 input keeps its offset; datetime-local input (no offset, as
// sent by the form widget) is interpreted as JST.
func NewReservedAt(value string) (ReservedAt, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ReservedAt{}, ErrInvalidReservedAt
	}

	if t, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return ReservedAt{value: t.UTC()}, nil
	}

	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.ParseInLocation(layout, trimmed, jst); err == nil {
			return ReservedAt{value: t.UTC()}, nil
		}
	}

	return ReservedAt{}, ErrInvalidReservedAt
}

func (r ReservedAt) Time() time.Time {
	return r.value
}

// ISOString renders the canonical storage representation,
// e.g. "2025-06-01T01:00:00.000Z".
func (r ReservedAt) ISOString() string {
	return r.value.Format("2006-01-02T15:04:05.000Z07:00")
}

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
