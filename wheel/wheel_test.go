package wheel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResidueToBitBijection(t *testing.T) {
	seen := map[uint8]bool{}
	for _, r := range Residues {
		bit := ResidueToBit(r)
		require.False(t, seen[bit], "bit %d reused", bit)
		seen[bit] = true
		require.Less(t, bit, uint8(8))
	}
	require.Len(t, seen, 8)
}

func TestResidueToBitPanicsOnInvalidResidue(t *testing.T) {
	require.Panics(t, func() { ResidueToBit(2) })
}

func TestClearMask(t *testing.T) {
	for bit := uint8(0); bit < 8; bit++ {
		mask := ClearMask(bit)
		require.Equal(t, byte(0), mask&(1<<bit), "bit %d not cleared", bit)
		require.Equal(t, byte(0xFF^(1<<bit)), mask)
	}
}

func TestByteIndexAndResidue(t *testing.T) {
	require.Equal(t, uint64(3), ByteIndex(91))
	require.Equal(t, uint64(1), Residue(91))
	require.Equal(t, uint64(0), ByteIndex(29))
	require.Equal(t, uint64(29), Residue(29))
}

func TestLaneRowSums(t *testing.T) {
	for lane := 0; lane < 8; lane++ {
		var mult, add uint64
		for _, s := range Lanes[lane] {
			mult += s.Multiplicand
			add += s.Additive
		}
		require.EqualValues(t, 30, mult, "lane %d", lane)
		require.EqualValues(t, LaneResidues[lane], add, "lane %d", lane)
	}
}

func TestLaneStepsCoverAllEightBits(t *testing.T) {
	for lane := 0; lane < 8; lane++ {
		seen := map[byte]bool{}
		for _, s := range Lanes[lane] {
			seen[s.Mask] = true
		}
		require.Len(t, seen, 8, "lane %d", lane)
	}
}

func TestHotOffsetsMatchPrefixSums(t *testing.T) {
	for lane := 0; lane < 8; lane++ {
		var mult, add uint64
		for step := 0; step < 8; step++ {
			got := HotOffsets[lane][step]
			require.Equal(t, mult, got.Multiplicand, "lane %d step %d", lane, step)
			require.Equal(t, add, got.Additive, "lane %d step %d", lane, step)
			require.Equal(t, Lanes[lane][step].Mask, got.Mask, "lane %d step %d", lane, step)
			mult += Lanes[lane][step].Multiplicand
			add += Lanes[lane][step].Additive
		}
	}
}

func TestInitialStateScenarioB(t *testing.T) {
	// Scenario B from spec.md §8: prime 7, first multiple 49, segmentLow 0.
	multipleIndex, wheelIndex := InitialState(7, 49, 0)
	require.EqualValues(t, 1, multipleIndex)
	require.EqualValues(t, 7, wheelIndex) // lane 0 (residue 7), step 7 clears bit5 (residue 19)
}

func TestInitialStateRoundTrips(t *testing.T) {
	primes := []uint64{7, 11, 13, 17, 19, 23, 29, 31, 37, 41}
	for _, p := range primes {
		first := p * p
		for first%30 != 1 && first%30 != 7 && first%30 != 11 && first%30 != 13 &&
			first%30 != 17 && first%30 != 19 && first%30 != 23 && first%30 != 29 {
			first += p
		}
		_, wheelIndex := InitialState(p, first, 0)
		lane := wheelIndex / 8
		step := wheelIndex % 8
		require.Equal(t, LaneIndex(p%30), lane)
		require.Equal(t, Lanes[lane][step].Mask, ClearMask(ResidueToBit(first%30)))
	}
}
