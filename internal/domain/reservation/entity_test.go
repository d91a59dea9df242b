//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"salon-site/internal/domain/reservation"
	"salon-site/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	errIs  error
}

func TestReservation(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "U1234567890abcdef", actual.LineUserID().String())
		assert.Equal(t, "カット", actual.Menu().String())
		assert.Equal(t, "09012345678", actual.Phone().String())
		require.NotNil(t, actual.LineDisplayName())
		assert.Equal(t, "山田 花子", *actual.LineDisplayName())
	})

	t.Run("LINEユーザーID検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "空のIDはNG",
				mutate: func(b *builder.ReservationBuilder) { b.LineUserID = "" },
				errIs:  reservation.ErrEmptyLineUserID,
			},
			{
				name:   "空白のみのIDはNG",
				mutate: func(b *builder.ReservationBuilder) { b.LineUserID = "   " },
				errIs:  reservation.ErrEmptyLineUserID,
			},
		})
	})

	t.Run("メニュー検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "空のメニューはNG",
				mutate: func(b *builder.ReservationBuilder) { b.Menu = "" },
				errIs:  reservation.ErrEmptyMenu,
			},
			{
				name:   "自由入力のメニューはOK",
				mutate: func(b *builder.ReservationBuilder) { b.Menu = "カット＋カラー" },
			},
		})
	})

	t.Run("電話番号検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "10桁OK",
				mutate: func(b *builder.ReservationBuilder) { b.Phone = "0312345678" },
			},
			{
				name:   "11桁OK",
				mutate: func(b *builder.ReservationBuilder) { b.Phone = "09012345678" },
			},
			{
				name:   "未入力OK（任意項目）",
				mutate: func(b *builder.ReservationBuilder) { b.Phone = "" },
			},
			{
				name:   "9桁NG",
				mutate: func(b *builder.ReservationBuilder) { b.Phone = "031234567" },
				errIs:  reservation.ErrInvalidPhone,
			},
			{
				name:   "12桁NG",
				mutate: func(b *builder.ReservationBuilder) { b.Phone = "090123456789" },
				errIs:  reservation.ErrInvalidPhone,
			},
			{
				name:   "ハイフン入りNG",
				mutate: func(b *builder.ReservationBuilder) { b.Phone = "090-1234-5678" },
				errIs:  reservation.ErrInvalidPhone,
			},
		})
	})

	t.Run("予約日時検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "RFC3339（オフセット付き）OK",
				mutate: func(b *builder.ReservationBuilder) { b.ReservedAt = "2025-06-01T10:00:00+09:00" },
			},
			{
				name:   "RFC3339（UTC）OK",
				mutate: func(b *builder.ReservationBuilder) { b.ReservedAt = "2025-06-01T01:00:00Z" },
			},
			{
				name:   "datetime-local形式OK",
				mutate: func(b *builder.ReservationBuilder) { b.ReservedAt = "2025-06-01T10:00" },
			},
			{
				name:   "解析不能な文字列NG",
				mutate: func(b *builder.ReservationBuilder) { b.ReservedAt = "来週の火曜日" },
				errIs:  reservation.ErrInvalidReservedAt,
			},
			{
				name:   "空文字NG",
				mutate: func(b *builder.ReservationBuilder) { b.ReservedAt = "" },
				errIs:  reservation.ErrInvalidReservedAt,
			},
		})
	})
}

func TestReservedAtNormalization(t *testing.T) {
	t.Run("JST入力はUTCへ正規化される", func(t *testing.T) {
		reservedAt, err := reservation.NewReservedAt("2025-06-01T10:00:00+09:00")
		require.NoError(t, err)

		expected := time.Date(2025, 6, 1, 1, 0, 0, 0, time.UTC)
		assert.True(t, reservedAt.Time().Equal(expected))
		assert.Equal(t, time.UTC, reservedAt.Time().Location())
		assert.Equal(t, "2025-06-01T01:00:00.000Z", reservedAt.ISOString())
	})

	t.Run("オフセットなし入力はJSTとして解釈される", func(t *testing.T) {
		reservedAt, err := reservation.NewReservedAt("2025-06-01T10:00")
		require.NoError(t, err)

		expected := time.Date(2025, 6, 1, 1, 0, 0, 0, time.UTC)
		assert.True(t, reservedAt.Time().Equal(expected))
	})
}

func TestOptionalFieldNormalization(t *testing.T) {
	t.Run("空文字の任意項目はnilに寄せられる", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		b.LineDisplayName = ""
		b.DisplayName = "  "
		b.Note = ""

		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.Nil(t, actual.LineDisplayName())
		assert.Nil(t, actual.DisplayName())
		assert.True(t, actual.Note().IsEmpty())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewReservationBuilder()
			tc.mutate(b)

			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}
