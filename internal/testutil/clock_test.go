package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/binarytime/internal/binarytime"
)

const newYear2022 = 1640995200000

var _ binarytime.Clock = (*DeterministicClock)(nil)

func TestDeterministicClock_Steps(t *testing.T) {
	clock := NewDeterministicClock(binarytime.FromUnixMilli(newYear2022), binarytime.FromSeconds(1))

	assert.Equal(t, int64(newYear2022), clock.Now().UnixMilli())
	assert.Equal(t, int64(newYear2022+1000), clock.Now().UnixMilli())
	assert.Equal(t, int64(newYear2022+2000), clock.Current().UnixMilli())
}

func TestDeterministicClock_Frozen(t *testing.T) {
	start := binarytime.FromUnixMilli(newYear2022)
	clock := NewDeterministicClock(start, binarytime.Duration{})

	assert.Equal(t, start, clock.Now())
	assert.Equal(t, start, clock.Now())
}

func TestDeterministicClock_Reset(t *testing.T) {
	start := binarytime.FromUnixMilli(newYear2022)
	clock := NewDeterministicClock(start, binarytime.FromMillis(1))

	clock.Now()
	clock.Now()
	clock.Now()
	assert.Equal(t, int64(newYear2022+3), clock.Current().UnixMilli())

	clock.Reset()
	assert.Equal(t, start, clock.Now())
}

func TestDeterministicClock_ThreadSafe(t *testing.T) {
	clock := NewDeterministicClock(binarytime.Epoch, binarytime.FromMillis(1))
	const numGoroutines = 100
	const callsPerGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	results := make([][]int64, numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		results[i] = make([]int64, callsPerGoroutine)
		go func(idx int) {
			defer wg.Done()
			for j := 0; j < callsPerGoroutine; j++ {
				results[idx][j] = clock.Now().UnixMilli()
			}
		}(i)
	}
	wg.Wait()

	seen := make(map[int64]bool, numGoroutines*callsPerGoroutine)
	for _, row := range results {
		for _, ms := range row {
			require.False(t, seen[ms], "instant %d returned twice", ms)
			seen[ms] = true
		}
	}
	assert.Len(t, seen, numGoroutines*callsPerGoroutine)
	assert.Equal(t, int64(numGoroutines*callsPerGoroutine), clock.Current().UnixMilli())
}
