package binarytime

import (
	"database/sql"
	"encoding/json"
	"regexp"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/binarytime/internal/errcode"
)

func TestTimestamp_Hex(t *testing.T) {
	tests := []struct {
		name     string
		ms       int64
		coarse   string
		fine     string
		granular string
	}{
		{"new year 2023", newYear2023, "9E.00", "4B9E.00", "4B9E.0000"},
		{"with millis", 1640995200123, "31.00", "4A31.000017E25CF85858", "4A31.0000"},
		{"before epoch", -129_600_000, "-01.80", "-01.80", "-0001.8000"},
		{"one hour", 3_600_000, "00.0A", "00.0AAAAAAAAAAAAAB0", "0000.0AAA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := FromUnixMilli(tt.ms)
			assert.Equal(t, tt.coarse, ts.Hex())
			assert.Equal(t, tt.fine, ts.HexFine())
			assert.Equal(t, tt.granular, ts.HexGranular(DefaultGranularity))
			assert.Equal(t, tt.granular, ts.HexGranular(Granularity{}))

			parsed, err := ParseHex(tt.fine)
			require.NoError(t, err)
			assert.Equal(t, ts, parsed)
			assert.Equal(t, tt.ms, parsed.UnixMilli())
		})
	}
}

func TestTimestamp_HexGranular(t *testing.T) {
	ts := FromUnixMilli(1640995200123)

	assert.Equal(t, "00004A31.000017E2", ts.HexGranular(Granularity{Upper: 4, Lower: 4}))
	assert.Equal(t, "0000000000004A31.000017E25CF85858", ts.HexGranular(Granularity{Upper: 20, Lower: 9}))
	assert.Equal(t, "31.0000", ts.HexGranular(Granularity{Upper: 1, Lower: -3}))
}

func TestTimestamp_HexWithPrecision(t *testing.T) {
	ts := FromUnixMilli(1640995200123)

	s, err := ts.HexWithPrecision(1, 17)
	require.NoError(t, err)
	assert.Equal(t, "0000000000004A31.000017E25CF85858", s)

	_, err = ts.HexWithPrecision(9, 10)
	assert.ErrorIs(t, err, errcode.ErrInvalidPrecision)
}

func TestHexWithPrecision_OnlyChangesWidth(t *testing.T) {
	s, err := FromHours(6).HexWithPrecision(1, 17)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[0-9A-F]+\.[0-9A-F]+$`), s)

	d, err := ParseDurationHex(s)
	require.NoError(t, err)
	assert.Equal(t, FromHours(6), d)
}

func TestTimestamp_Base64(t *testing.T) {
	ts := FromUnixMilli(1640995200123)
	assert.Equal(t, "AAAAAAAAAEoxAAAX4lz4WFg=", ts.Base64())

	parsed, err := ParseBase64(ts.Base64())
	require.NoError(t, err)
	assert.Equal(t, ts, parsed)

	_, err = ParseBase64("AAAA")
	assert.ErrorIs(t, err, errcode.ErrInvalidBase64)
}

func TestTimestamp_Bytes(t *testing.T) {
	b := FromUnixMilli(newYear2023).Bytes()
	require.Len(t, b, 16)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0x4B, 0x9E, 0, 0, 0, 0, 0, 0, 0, 0}, b)
}

func TestParseTime(t *testing.T) {
	ts, err := ParseTime("2023-01-01T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, FromUnixMilli(newYear2023), ts)

	ts, err = ParseTime("2022-01-01T09:00:00.123+09:00")
	require.NoError(t, err)
	assert.Equal(t, int64(1640995200123), ts.UnixMilli())

	_, err = ParseTime("yesterday")
	assert.ErrorIs(t, err, errcode.ErrFormat)
}

func TestParseHex_Errors(t *testing.T) {
	_, err := ParseHex("")
	assert.ErrorIs(t, err, errcode.ErrEmptyInput)

	_, err = ParseHex("invalid")
	assert.ErrorIs(t, err, errcode.ErrFormat)
}

func TestDuration_Forms(t *testing.T) {
	d := FromMinutes(30)

	assert.Equal(t, "00.055555555555555C", d.Hex())
	restored, err := ParseDurationHex(d.Hex())
	require.NoError(t, err)
	assert.Equal(t, d, restored)

	restored, err = ParseDurationBase64(FromHours(2).Base64())
	require.NoError(t, err)
	assert.Equal(t, FromHours(2), restored)

	s, err := FromHours(1).HexWithPrecision(8, 12)
	require.NoError(t, err)
	assert.Equal(t, "00.0AAAAA", s)

	assert.Len(t, d.Bytes(), 16)
}

func TestJSON(t *testing.T) {
	type event struct {
		At      Timestamp `json:"at"`
		Elapsed Duration  `json:"elapsed"`
	}

	in := event{At: FromUnixMilli(newYear2023), Elapsed: FromMillis(9_045_000)}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"at":"4B9E.00","elapsed":"2h30m45s"}`, string(data))

	var out event
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)

	err = json.Unmarshal([]byte(`{"at":"4B9E.00","elapsed":"soon"}`), &out)
	assert.ErrorIs(t, err, errcode.ErrFormat)
}

func TestSQL_RoundTrip(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE spans (started BLOB NOT NULL, elapsed BLOB NOT NULL)`)
	require.NoError(t, err)

	start := FromUnixMilli(1640995200123)
	length := FromMillis(-1500)
	_, err = db.Exec(`INSERT INTO spans (started, elapsed) VALUES (?, ?)`, start, length)
	require.NoError(t, err)

	var gotStart Timestamp
	var gotLength Duration
	require.NoError(t, db.QueryRow(`SELECT started, elapsed FROM spans`).Scan(&gotStart, &gotLength))
	assert.Equal(t, start, gotStart)
	assert.Equal(t, length, gotLength)

	var n int
	require.NoError(t, db.QueryRow(`SELECT count(*) FROM spans WHERE length(started) = 17`).Scan(&n))
	assert.Equal(t, 1, n)
}
