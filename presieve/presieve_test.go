package presieve

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Scenario A (spec.md §8): sieve [0,120), no sieving primes, small mode.
func TestPreSieveScenarioA(t *testing.T) {
	var ps PreSieve
	sieve := make([]byte, 4)
	require.NoError(t, ps.PreSieveInto(sieve, 0))
	require.Equal(t, []byte{0xFF, 0xEF, 0x77, 0x3F}, sieve)
}

// Scenario C (spec.md §8): sieve [30030, 30030+30*1001), no sieving
// primes, small mode. Output equals a byte-for-byte copy of the static
// table, because 30030 % 30030 == 0.
func TestPreSieveScenarioC(t *testing.T) {
	var ps PreSieve
	sieve := make([]byte, 1001)
	require.NoError(t, ps.PreSieveInto(sieve, 30030))
	require.Equal(t, buffer7_11_13[:], sieve)
}

func TestPreSieveRejectsUnalignedSegmentLow(t *testing.T) {
	var ps PreSieve
	sieve := make([]byte, 4)
	err := ps.PreSieveInto(sieve, 31)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestPreSieveSmallWrapsAcrossStaticTableBoundary(t *testing.T) {
	var ps PreSieve
	sieve := make([]byte, 2000) // longer than the 1001-byte table
	require.NoError(t, ps.PreSieveInto(sieve, 0))

	require.Equal(t, buffer7_11_13[4:], sieve[4:1001])
	// wraps back to the start of the table (minus the restored low bytes,
	// which only apply to the first occurrence near segmentLow 0)
	require.Equal(t, buffer7_11_13[:999], sieve[1001:2000])
}

func TestForceInitPopulatesLargeBuffers(t *testing.T) {
	var ps PreSieve
	ps.ForceInit()
	require.EqualValues(t, largeMaxPrime, ps.MaxPrime())
	for i := range ps.buffers {
		require.NotEmpty(t, ps.buffers[i])
	}
}

// Scenario D (spec.md §8): after forcing large-mode init, preSieve over
// [30, 30+3000) clears exactly the multiples of {7,...,97} in that range
// and nothing else; the pre-sieved primes themselves are restored and stay
// set.
func TestPreSieveScenarioDLargeMode(t *testing.T) {
	var ps PreSieve
	ps.ForceInit()

	sieve := make([]byte, 100)
	require.NoError(t, ps.PreSieveInto(sieve, 30))

	primesCovered := []uint64{7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71, 73, 79, 83, 89, 97}

	for b := 0; b < len(sieve); b++ {
		n0 := uint64(30 + 30*b)
		for bit := 0; bit < 8; bit++ {
			residues := [8]uint64{1, 7, 11, 13, 17, 19, 23, 29}
			n := n0 + residues[bit]
			composite := false
			for _, p := range primesCovered {
				if n%p == 0 {
					composite = true
					break
				}
			}
			isRestoredPrime := false
			for _, p := range primesCovered {
				isRestoredPrime = isRestoredPrime || n == p
			}
			if composite && !isRestoredPrime {
				require.Zero(t, sieve[b]&(1<<bit), "n=%d should be cleared", n)
			} else {
				require.NotZero(t, sieve[b]&(1<<bit), "n=%d should remain set", n)
			}
		}
	}
}

func TestLargeModeIdempotent(t *testing.T) {
	var ps PreSieve
	ps.ForceInit()

	s1 := make([]byte, 500)
	s2 := make([]byte, 500)
	require.NoError(t, ps.PreSieveInto(s1, 300))
	require.NoError(t, ps.PreSieveInto(s2, 300))
	require.Equal(t, s1, s2)
}

func TestSmallAndLargeModeAgreeOnSharedPrimes(t *testing.T) {
	var small PreSieve
	var large PreSieve
	large.ForceInit()

	sieve1 := make([]byte, 2000)
	sieve2 := make([]byte, 2000)
	require.NoError(t, small.PreSieveInto(sieve1, 0))
	require.NoError(t, large.PreSieveInto(sieve2, 0))

	// Every bit the small-mode path clears must also be cleared by the
	// large-mode path (large mode is a superset of primes).
	for i := range sieve1 {
		cleared1 := ^sieve1[i]
		cleared2 := ^sieve2[i]
		require.Equal(t, cleared1, cleared1&cleared2, "byte %d: small-mode clears not a subset of large-mode clears", i)
	}
}
