package binarytime

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/binarytime/internal/fixed128"
)

const newYear2023 = 1672531200000

func TestFromUnixMilli_UnixSeconds(t *testing.T) {
	ts := FromUnixMilli(newYear2023)
	assert.Equal(t, int64(1672531200), ts.UnixSeconds())
	assert.Equal(t, int64(newYear2023), ts.UnixMilli())
	assert.Equal(t, fixed128.FromInt64(19358), ts.Fixed128())
}

func TestFromUnixSeconds(t *testing.T) {
	assert.Equal(t, FromUnixMilli(newYear2023), FromUnixSeconds(1672531200))
	assert.Equal(t, int64(-1), FromUnixMilli(-1500).UnixSeconds())
}

func TestUnixMilli_RoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for i := 0; i < 2000; i++ {
		ms := r.Int63n(4_000_000_000_000) - 1_000_000_000_000
		require.Equal(t, ms, FromUnixMilli(ms).UnixMilli(), "ms=%d", ms)
	}
}

func TestTime(t *testing.T) {
	ts := FromUnixMilli(newYear2023)
	assert.True(t, ts.Time().Equal(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, time.UTC, ts.Time().Location())
	assert.Equal(t, "2023-01-01T00:00:00.000Z", ts.String())

	withNanos := time.Date(2022, 1, 1, 0, 0, 0, 123_999_999, time.UTC)
	assert.Equal(t, int64(1640995200123), FromTime(withNanos).UnixMilli())

	local := time.Date(2023, 1, 1, 9, 0, 0, 0, time.FixedZone("JST", 9*3600))
	assert.Equal(t, FromUnixMilli(newYear2023), FromTime(local))
}

func TestEpoch(t *testing.T) {
	assert.True(t, Epoch.IsZero())
	assert.True(t, FromUnixMilli(0).IsZero())
	assert.Equal(t, "1970-01-01T00:00:00.000Z", Epoch.String())
	assert.False(t, FromUnixMilli(1).IsZero())
}

func TestNow(t *testing.T) {
	before := time.Now().UnixMilli()
	now := Now().UnixMilli()
	after := time.Now().UnixMilli()

	assert.GreaterOrEqual(t, now, before)
	assert.LessOrEqual(t, now, after)
}

func TestTimestamp_Compare(t *testing.T) {
	a := FromUnixMilli(newYear2023)
	b := a.AddMillis(1)

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.True(t, b.After(a))
	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(a))
	assert.True(t, a.Equal(FromUnixSeconds(1672531200)))
	assert.False(t, a.Equal(b))
}

func TestTimestamp_UnitArithmetic(t *testing.T) {
	base := FromUnixMilli(1640995200000)

	tests := []struct {
		name string
		got  Timestamp
		want int64
	}{
		{"add millis", base.AddMillis(123), 1640995200123},
		{"sub millis", base.SubMillis(1), 1640995199999},
		{"add seconds", base.AddSeconds(45), 1640995245000},
		{"sub seconds", base.SubSeconds(45), 1640995155000},
		{"add minutes", base.AddMinutes(30), 1640997000000},
		{"sub minutes", base.SubMinutes(30), 1640993400000},
		{"add hours", base.AddHours(5), 1641013200000},
		{"sub hours", base.SubHours(5), 1640977200000},
		{"add days", base.AddDays(7), 1641600000000},
		{"sub days", base.SubDays(1), 1640908800000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got.UnixMilli())
		})
	}
}

func TestTimestamp_DurationArithmetic(t *testing.T) {
	start := FromUnixMilli(1640995200000)

	t.Run("chained", func(t *testing.T) {
		got := start.Add(FromHours(2)).Sub(FromMinutes(30))
		assert.True(t, got.Equal(start.AddMillis(90*MillisPerMinute)))
	})

	t.Run("parsed duration", func(t *testing.T) {
		d, err := Parse("2h30m45s")
		require.NoError(t, err)
		assert.True(t, start.Add(d).Equal(start.AddMillis(9045000)))
	})

	t.Run("keeps milliseconds", func(t *testing.T) {
		got := FromUnixMilli(1640995200123).Add(FromMillis(456))
		assert.Equal(t, int64(1640995200579), got.UnixMilli())
	})

	t.Run("add then sub restores", func(t *testing.T) {
		d := FromHours(5)
		assert.True(t, start.Add(d).Sub(d).Equal(start))
	})

	t.Run("between reconstructs", func(t *testing.T) {
		end := FromUnixMilli(1640995200000 + 12345678)
		d := Between(start, end)
		assert.Equal(t, int64(12345678), d.Millis())
		assert.True(t, start.Add(d).Equal(end))
	})

	t.Run("until and since", func(t *testing.T) {
		later := start.AddMinutes(10)
		assert.Equal(t, int64(10*MillisPerMinute), start.Until(later).Millis())
		assert.Equal(t, int64(-10*MillisPerMinute), later.Until(start).Millis())
		assert.Equal(t, int64(10*MillisPerMinute), later.Since(start).Millis())
		assert.True(t, start.Since(later).IsNegative())
	})
}
