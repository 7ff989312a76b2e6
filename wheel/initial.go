package wheel

// InitialState computes the (multipleIndex, wheelIndex) a sieving prime
// should be stored with so that crossing off resumes exactly at
// firstMultiple within a segment based at segmentLow (a multiple of 30).
//
// prime is the actual sieving prime (not divided by 30); firstMultiple is
// the first absolute multiple of prime, coprime to 30, that must be
// crossed off (normally prime*prime, rounded up to the next wheel-valid
// multiple by the caller).
func InitialState(prime, firstMultiple, segmentLow uint64) (multipleIndex, wheelIndex uint64) {
	lane := LaneIndex(prime % 30)
	bit := ResidueToBit(firstMultiple % 30)

	clear := ClearMask(bit)
	var step uint64
	for step = 0; step < 8; step++ {
		if Lanes[lane][step].Mask == clear {
			break
		}
	}

	multipleIndex = (firstMultiple - segmentLow) / 30
	wheelIndex = lane*8 + step
	return multipleIndex, wheelIndex
}
