package segment

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoolCountPrimesMatchesSingleProcessor(t *testing.T) {
	single := NewProcessor(500_000, 0, 0)
	want, err := single.CountPrimes(0, 500_000)
	require.NoError(t, err)

	pool := &Pool{Workers: 4, MinPartitionDistance: 1000}
	got, err := pool.CountPrimes(0, 500_000)
	require.NoError(t, err)

	require.Equal(t, want, got)
}

func TestPoolRunReturnsSortedPrimes(t *testing.T) {
	pool := &Pool{Workers: 4, MinPartitionDistance: 1000}
	primes, err := pool.Run(0, 50_000)
	require.NoError(t, err)

	for i := 1; i < len(primes); i++ {
		require.Less(t, primes[i-1], primes[i])
	}
	require.Equal(t, uint64(2), primes[0])
}

func TestPoolSinglePartitionForSmallRanges(t *testing.T) {
	pool := &Pool{Workers: 8} // default MinPartitionDistance dwarfs this range
	primes, err := pool.Run(0, 100)
	require.NoError(t, err)
	require.Equal(t, []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71, 73, 79, 83, 89, 97}, primes)
}
