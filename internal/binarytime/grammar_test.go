package binarytime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/binarytime/internal/errcode"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"500ms", 500},
		{"30s", 30_000},
		{"1.5s", 1500},
		{"5m", 300_000},
		{"2h", 7_200_000},
		{"1d", 86_400_000},
		{"2h30m45s", 2*3_600_000 + 30*60_000 + 45*1_000},
		{"-1.5s", -1500},
		{"1.5h30m", 90*60_000 + 30*60_000},
		{"2H30M", 9_000_000},
		{"1D12h", 129_600_000},
		{"250MS", 250},
		{".5s", 500},
		{"0.0015s", 2},
		{"0.0004s", 0},
		{"1s1s", 2000},
		{"  45s\n", 45_000},
		{"0ms", 0},
		{"-0s", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Millis())
			assert.Equal(t, FromMillis(tt.want), d)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		in   string
		code errcode.Code
	}{
		{"", errcode.EmptyInput},
		{"   ", errcode.EmptyInput},
		{"invalid", errcode.FormatError},
		{"1.5x", errcode.FormatError},
		{"-", errcode.FormatError},
		{"--1s", errcode.FormatError},
		{"2h30", errcode.FormatError},
		{"s", errcode.FormatError},
		{"1.s", errcode.FormatError},
		{"1 s", errcode.FormatError},
		{"5mss", errcode.FormatError},
		{"1h+30m", errcode.FormatError},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := Parse(tt.in)
			require.Error(t, err)
			assert.Equal(t, tt.code, errcode.CodeOf(err))
		})
	}
}

func TestDuration_String(t *testing.T) {
	tests := []struct {
		name string
		d    Duration
		want string
	}{
		{"zero", FromMillis(0), "0ms"},
		{"millis", FromMillis(500), "500ms"},
		{"small", FromMillis(123), "123ms"},
		{"seconds", FromSeconds(30), "30s"},
		{"fractional seconds", FromMillis(1500), "1.5s"},
		{"hundredths", FromMillis(1050), "1.05s"},
		{"thousandths", FromMillis(61_001), "1m1.001s"},
		{"minutes", FromMinutes(5), "5m"},
		{"hours", FromHours(2), "2h"},
		{"twelve hours", FromHours(12), "12h"},
		{"days", FromDays(1), "1d"},
		{"five days", FromDays(5), "5d"},
		{"complex", FromMillis(2*3_600_000 + 30*60_000 + 45*1_000), "2h30m45s"},
		{"day and seconds", FromMillis(86_400_000 + 500), "1d0.5s"},
		{"negative", FromMillis(-1500), "-1.5s"},
		{"negative seconds", FromSeconds(-30), "-30s"},
		{"negative millis", FromMillis(-7), "-7ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.String())
		})
	}
}

func TestParseString_RoundTrip(t *testing.T) {
	for _, ms := range []int64{0, 1, 999, 1000, 1001, 45_000, 7_545_000, 86_400_000, 86_400_001, -1500, -129_600_123, 31_536_000_000} {
		d := FromMillis(ms)
		parsed, err := Parse(d.String())
		require.NoError(t, err, "%s", d)
		assert.Equal(t, d, parsed, "%s", d)
	}
}
