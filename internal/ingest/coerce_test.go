package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialToTime(t *testing.T) {
	t.Run("whole day", func(t *testing.T) {
		// 45000 days after 1899-12-30
		got := SerialToTime(45000)
		assert.Equal(t, time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("fraction is time of day", func(t *testing.T) {
		got := SerialToTime(45000.5)
		assert.Equal(t, time.Date(2023, 3, 15, 12, 0, 0, 0, time.UTC), got)
	})

	t.Run("quarter day", func(t *testing.T) {
		got := SerialToTime(45000.25)
		assert.Equal(t, time.Date(2023, 3, 15, 6, 0, 0, 0, time.UTC), got)
	})

	t.Run("epoch", func(t *testing.T) {
		got := SerialToTime(0)
		assert.Equal(t, time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC), got)
	})
}

func TestParseDate(t *testing.T) {
	t.Run("iso date", func(t *testing.T) {
		d := ParseDate("2024-03-01")
		require.NotNil(t, d)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *d)
	})

	t.Run("slash date", func(t *testing.T) {
		d := ParseDate("2024/03/01")
		require.NotNil(t, d)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *d)
	})

	t.Run("timestamp is truncated to the date", func(t *testing.T) {
		d := ParseDate("2024-03-01T15:04:05Z")
		require.NotNil(t, d)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *d)
	})

	t.Run("garbage", func(t *testing.T) {
		assert.Nil(t, ParseDate("not-a-date"))
	})
}

func TestCoerceField(t *testing.T) {
	t.Run("empty cell is invalid for every kind", func(t *testing.T) {
		for _, kind := range []Kind{KindText, KindInt, KindSerialTime, KindNullableDate} {
			_, ok := coerceField(Field{Name: "f", Kind: kind}, "  ")
			assert.False(t, ok)
		}
	})

	t.Run("text passes through trimmed", func(t *testing.T) {
		v, ok := coerceField(Field{Name: "customer_name", Kind: KindText}, " ana ")
		require.True(t, ok)
		assert.Equal(t, "ana", v)
	})

	t.Run("int from plain digits", func(t *testing.T) {
		v, ok := coerceField(Field{Name: "transaction_amount", Kind: KindInt}, "150")
		require.True(t, ok)
		assert.Equal(t, int64(150), v)
	})

	t.Run("int truncates decimals", func(t *testing.T) {
		v, ok := coerceField(Field{Name: "transaction_amount", Kind: KindInt}, "150.75")
		require.True(t, ok)
		assert.Equal(t, int64(150), v)
	})

	t.Run("int rejects non numeric", func(t *testing.T) {
		_, ok := coerceField(Field{Name: "transaction_amount", Kind: KindInt}, "abc")
		assert.False(t, ok)
	})

	t.Run("serial time", func(t *testing.T) {
		v, ok := coerceField(Field{Name: "date_and_time", Kind: KindSerialTime}, "45000.5")
		require.True(t, ok)
		assert.Equal(t, time.Date(2023, 3, 15, 12, 0, 0, 0, time.UTC), v)
	})

	t.Run("serial time rejects non numeric", func(t *testing.T) {
		_, ok := coerceField(Field{Name: "date_and_time", Kind: KindSerialTime}, "yesterday")
		assert.False(t, ok)
	})

	t.Run("nullable date parses", func(t *testing.T) {
		v, ok := coerceField(Field{Name: "invoice_period", Kind: KindNullableDate}, "2024-03-01")
		require.True(t, ok)
		d, isDate := v.(*time.Time)
		require.True(t, isDate)
		require.NotNil(t, d)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *d)
	})

	t.Run("unparseable nullable date keeps the row and stores null", func(t *testing.T) {
		v, ok := coerceField(Field{Name: "invoice_period", Kind: KindNullableDate}, "n/a")
		require.True(t, ok)
		d, isDate := v.(*time.Time)
		require.True(t, isDate)
		assert.Nil(t, d)
	})
}
