package wheel

// Step is one of the 8 moves in a wheel lane: clear Mask, then advance the
// byte pointer by sievingPrime*Multiplicand + Additive to reach the next
// step's byte.
type Step struct {
	Multiplicand uint64
	Additive     uint64
	Mask         byte
}

// LaneResidues gives the residue mod 30 associated with each lane, in the
// normative source order: 7, 11, 13, 17, 19, 23, 29, 1.
var LaneResidues = [8]uint64{7, 11, 13, 17, 19, 23, 29, 1}

// laneIndex maps a prime's residue mod 30 to its lane index (LaneResidues[i]).
var laneIndex = map[uint64]uint64{
	7: 0, 11: 1, 13: 2, 17: 3, 19: 4, 23: 5, 29: 6, 1: 7,
}

// LaneIndex returns the lane index for a prime's residue mod 30.
func LaneIndex(residue uint64) uint64 {
	l, ok := laneIndex[residue]
	if !ok {
		panic("wheel: residue not coprime to 30")
	}
	return l
}

// Lanes is the 8x8 wheel step table, reproduced byte-for-byte from the
// per-step case blocks of EratSmall::crossOff. Row i is the lane for
// LaneResidues[i]; within a row, each Step's row-sum of Multiplicand is 30
// and the row-sum of Additive equals the lane's residue.
var Lanes = [8][8]Step{
	// residue 7
	{
		{6, 1, ClearMask(0)},
		{4, 1, ClearMask(4)},
		{2, 0, ClearMask(3)},
		{4, 1, ClearMask(7)},
		{2, 1, ClearMask(6)},
		{4, 1, ClearMask(2)},
		{6, 1, ClearMask(1)},
		{2, 1, ClearMask(5)},
	},
	// residue 11
	{
		{6, 2, ClearMask(1)},
		{4, 1, ClearMask(3)},
		{2, 1, ClearMask(7)},
		{4, 2, ClearMask(5)},
		{2, 0, ClearMask(0)},
		{4, 2, ClearMask(6)},
		{6, 2, ClearMask(2)},
		{2, 1, ClearMask(4)},
	},
	// residue 13
	{
		{6, 2, ClearMask(2)},
		{4, 2, ClearMask(7)},
		{2, 1, ClearMask(5)},
		{4, 2, ClearMask(4)},
		{2, 1, ClearMask(1)},
		{4, 1, ClearMask(0)},
		{6, 3, ClearMask(6)},
		{2, 1, ClearMask(3)},
	},
	// residue 17
	{
		{6, 3, ClearMask(3)},
		{4, 3, ClearMask(6)},
		{2, 1, ClearMask(0)},
		{4, 2, ClearMask(1)},
		{2, 1, ClearMask(4)},
		{4, 2, ClearMask(5)},
		{6, 4, ClearMask(7)},
		{2, 1, ClearMask(2)},
	},
	// residue 19
	{
		{6, 4, ClearMask(4)},
		{4, 2, ClearMask(2)},
		{2, 2, ClearMask(6)},
		{4, 2, ClearMask(0)},
		{2, 1, ClearMask(5)},
		{4, 3, ClearMask(7)},
		{6, 4, ClearMask(3)},
		{2, 1, ClearMask(1)},
	},
	// residue 23
	{
		{6, 5, ClearMask(5)},
		{4, 3, ClearMask(1)},
		{2, 1, ClearMask(2)},
		{4, 3, ClearMask(6)},
		{2, 2, ClearMask(7)},
		{4, 3, ClearMask(3)},
		{6, 5, ClearMask(4)},
		{2, 1, ClearMask(0)},
	},
	// residue 29
	{
		{6, 6, ClearMask(6)},
		{4, 4, ClearMask(5)},
		{2, 2, ClearMask(4)},
		{4, 4, ClearMask(3)},
		{2, 2, ClearMask(2)},
		{4, 4, ClearMask(1)},
		{6, 5, ClearMask(0)},
		{2, 2, ClearMask(7)},
	},
	// residue 1
	{
		{6, 1, ClearMask(7)},
		{4, 0, ClearMask(0)},
		{2, 0, ClearMask(1)},
		{4, 0, ClearMask(2)},
		{2, 0, ClearMask(3)},
		{4, 0, ClearMask(4)},
		{6, 0, ClearMask(5)},
		{2, 0, ClearMask(6)},
	},
}

// hotOffset is one of the 8 masked stores in a lane's straight-line hot
// block: byte offset = sievingPrime*Multiplicand + Additive, relative to
// the pointer at the start of the hot-loop iteration (step 0).
type hotOffset struct {
	Multiplicand uint64
	Additive     uint64
	Mask         byte
}

// HotOffsets holds the prefix-summed form of Lanes used by the hot,
// branch-free block inside SmallCrossOff's inner loop: HotOffsets[lane][k]
// is the offset of step k measured from the byte pointer at step 0, so all
// 8 masked stores of one wheel cycle can be issued without intermediate
// pointer increments. It is a pure derived view of Lanes (the prefix sums
// of Multiplicand/Additive), not independent normative data.
var HotOffsets [8][8]hotOffset

func init() {
	for lane := 0; lane < 8; lane++ {
		var mult, add uint64
		for step := 0; step < 8; step++ {
			HotOffsets[lane][step] = hotOffset{mult, add, Lanes[lane][step].Mask}
			mult += Lanes[lane][step].Multiplicand
			add += Lanes[lane][step].Additive
		}
		if mult != 30 {
			panic("wheel: lane row-sum of Multiplicand must be 30")
		}
		if add != LaneResidues[lane] {
			panic("wheel: lane row-sum of Additive must equal the lane residue")
		}
	}
}

// Advance returns the full 8-step byte advance for a lane given a
// sievingPrime (p/30): sievingPrime*30 + residue.
func Advance(lane, sievingPrime uint64) uint64 {
	return sievingPrime*30 + LaneResidues[lane]
}
