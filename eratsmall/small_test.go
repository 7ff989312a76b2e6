package eratsmall

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/debuggingfuture/primesieve/wheel"
)

func TestInitRejectsMaxPrimeTooLarge(t *testing.T) {
	var e SmallCrossOff
	err := e.Init(1000, 8<<10, 1_000_000)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestInitClampsL1CacheSize(t *testing.T) {
	var e SmallCrossOff
	require.NoError(t, e.Init(1000, 1<<10, 100))
	require.EqualValues(t, minL1CacheSize, e.l1CacheSize)

	var e2 SmallCrossOff
	require.NoError(t, e2.Init(1000, 1<<30, 100))
	require.EqualValues(t, maxL1CacheSize, e2.l1CacheSize)
}

func TestStoreSievingPrimeRejectsTooLarge(t *testing.T) {
	var e SmallCrossOff
	require.NoError(t, e.Init(1000, 8<<10, 100))
	err := e.StoreSievingPrime(997, 0, 0)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

// Scenario B (spec.md §8): sieve [0,210) with sieving prime 7, first
// multiple 49. Bits for 49, 77, 91, 119, 133, 161, 203 must be cleared.
func TestCrossOffScenarioB(t *testing.T) {
	var e SmallCrossOff
	require.NoError(t, e.Init(210, 8<<10, 7))
	require.NoError(t, e.AddSievingPrime(7, 49, 0))

	sieve := make([]byte, 210/30)
	for i := range sieve {
		sieve[i] = 0xFF
	}
	e.CrossOff(sieve)

	composites := []uint64{49, 77, 91, 119, 133, 161, 203}
	for _, n := range composites {
		b := wheel.ByteIndex(n)
		bit := wheel.ResidueToBit(wheel.Residue(n))
		require.Zero(t, sieve[b]&(1<<bit), "expected %d cleared", n)
	}

	// byte 6 covers [150,179]; only 161 is composite there.
	require.Equal(t, byte(0xFF^(1<<2)), sieve[6])
}

// Scenario F (spec.md §8): resuming across segment boundaries yields the
// same cleared bits as sieving the concatenated range in one pass.
func TestCrossOffResumeMatchesSinglePass(t *testing.T) {
	const segBytes = 1024
	primes := []uint64{7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}

	// Two segments, carried state.
	var e1 SmallCrossOff
	require.NoError(t, e1.Init(uint64(2*segBytes*30), 8<<10, 50))
	for _, p := range primes {
		first := firstWheelMultiple(p, p*p)
		require.NoError(t, e1.AddSievingPrime(p, first, 0))
	}
	seg1 := make([]byte, segBytes)
	for i := range seg1 {
		seg1[i] = 0xFF
	}
	e1.CrossOff(seg1)

	seg2 := make([]byte, segBytes)
	for i := range seg2 {
		seg2[i] = 0xFF
	}
	e1.CrossOff(seg2)

	combinedResumed := append(append([]byte{}, seg1...), seg2...)

	// Single pass over the concatenated range.
	var e2 SmallCrossOff
	require.NoError(t, e2.Init(uint64(2*segBytes*30), 8<<10, 50))
	for _, p := range primes {
		first := firstWheelMultiple(p, p*p)
		require.NoError(t, e2.AddSievingPrime(p, first, 0))
	}
	single := make([]byte, 2*segBytes)
	for i := range single {
		single[i] = 0xFF
	}
	e2.CrossOff(single)

	require.Equal(t, single, combinedResumed)
}

func firstWheelMultiple(p, from uint64) uint64 {
	for wheel.Residue(from) != 1 && wheel.Residue(from) != 7 && wheel.Residue(from) != 11 &&
		wheel.Residue(from) != 13 && wheel.Residue(from) != 17 && wheel.Residue(from) != 19 &&
		wheel.Residue(from) != 23 && wheel.Residue(from) != 29 {
		from++
	}
	return from
}
