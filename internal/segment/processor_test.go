package segment

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Scenario E (spec.md §8): sieve [0, 10^6) end-to-end, expect pi(10^6) =
// 78498.
func TestCountPrimesScenarioE(t *testing.T) {
	p := NewProcessor(1_000_000, 0, 0)
	count, err := p.CountPrimes(0, 1_000_000)
	require.NoError(t, err)
	require.EqualValues(t, 78498, count)
}

func TestRunMatchesCountPrimes(t *testing.T) {
	p := NewProcessor(10_000, 0, 0)
	primes, err := p.Run(0, 10_000)
	require.NoError(t, err)

	p2 := NewProcessor(10_000, 0, 0)
	count, err := p2.CountPrimes(0, 10_000)
	require.NoError(t, err)

	require.EqualValues(t, count, len(primes))
	require.Equal(t, uint64(2), primes[0])
	require.Equal(t, uint64(3), primes[1])
	require.Equal(t, uint64(5), primes[2])
	require.Equal(t, uint64(7), primes[3])
}

func TestRunRespectsStartBound(t *testing.T) {
	p := NewProcessor(1000, 0, 0)
	primes, err := p.Run(100, 200)
	require.NoError(t, err)
	for _, n := range primes {
		require.GreaterOrEqual(t, n, uint64(100))
		require.Less(t, n, uint64(200))
	}
	require.Contains(t, primes, uint64(101))
	require.Contains(t, primes, uint64(199))
	require.NotContains(t, primes, uint64(97))
}

func TestSmallSegmentBytesStillCoversMultiSegmentRuns(t *testing.T) {
	// Force many tiny segments so carried SmallCrossOff/PreSieve state
	// across segment boundaries is exercised (spec.md §8 resume
	// invariant, property 4).
	p := NewProcessor(100_000, 8<<10, 4)
	count, err := p.CountPrimes(0, 100_000)
	require.NoError(t, err)
	require.EqualValues(t, 9592, count) // pi(100000)
}
