package presieve

import "fmt"

// bit49, bit77, bit91, bit119, bit121 are the bits pre-sieving clears for
// the non-primes/small-primes-themselves in the low 4 bytes, which must be
// restored so the small primes 7, 11, 13 (and 1, handled externally by the
// caller) read back as "possibly prime". Grounded on PreSieve::preSieve's
// restoration constants.
const (
	bit49  = 1 << 4
	bit77  = 1 << 3
	bit91  = 1 << 7
	bit119 = 1 << 6
	bit121 = 1 << 7
)

// PreSieveInto writes into sieve the composite bitmap of the pre-sieved
// prime set (the primes <= 13 in small mode, or every prime in [7,97] in
// large mode), for the segment based at segmentLow, then restores the
// bits belonging to the pre-sieved primes themselves so they still read as
// "possibly prime".
func (ps *PreSieve) PreSieveInto(sieve []byte, segmentLow uint64) error {
	if segmentLow%30 != 0 {
		return fmt.Errorf("%w: segmentLow %d is not a multiple of 30", ErrInvalidParameter, segmentLow)
	}

	if ps.buffers[0] == nil {
		preSieveSmall(sieve, segmentLow)
	} else {
		ps.preSieveLarge(sieve, segmentLow)
	}

	restorePrimes(sieve, segmentLow)
	return nil
}

// preSieveSmall copies from the static 1001-byte table, wrapping around
// its boundary as needed, starting at the offset aligned to segmentLow.
func preSieveSmall(sieve []byte, segmentLow uint64) {
	const size = uint64(len(buffer7_11_13))
	const primeProduct = size * 30

	i := (segmentLow % primeProduct) / 30
	sizeLeft := size - i

	if uint64(len(sieve)) <= sizeLeft {
		copy(sieve, buffer7_11_13[i:i+uint64(len(sieve))])
		return
	}

	copy(sieve, buffer7_11_13[i:i+sizeLeft])

	pos := sizeLeft
	for pos+size < uint64(len(sieve)) {
		copy(sieve[pos:pos+size], buffer7_11_13[:])
		pos += size
	}
	copy(sieve[pos:], buffer7_11_13[:uint64(len(sieve))-pos])
}

// preSieveLarge ANDs the 8 large buffers together into sieve, each at its
// own running offset aligned to segmentLow, advancing in lockstep chunks
// bounded by whichever buffer wraps first.
func (ps *PreSieve) preSieveLarge(sieve []byte, segmentLow uint64) {
	var pos [8]uint64
	for i := range ps.buffers {
		size := uint64(len(ps.buffers[i]))
		pos[i] = (segmentLow % (size * 30)) / 30
	}

	offset := uint64(0)
	total := uint64(len(sieve))

	for offset < total {
		chunk := total - offset
		for i := range ps.buffers {
			left := uint64(len(ps.buffers[i])) - pos[i]
			if left < chunk {
				chunk = left
			}
		}

		andBuffers(ps.buffers, pos, sieve[offset:offset+chunk])

		offset += chunk
		for i := range pos {
			pos[i] += chunk
			if pos[i] >= uint64(len(ps.buffers[i])) {
				pos[i] = 0
			}
		}
	}
}

// andBuffers writes the elementwise AND of the 8 buffers (each starting at
// its own pos[i]) into dst. Shaped as a single dense loop over
// non-aliasing slices so the Go compiler can keep it tight and so it
// mirrors the auto-vectorizable shape of the original andBuffers loop.
func andBuffers(buffers [8][]byte, pos [8]uint64, dst []byte) {
	b0 := buffers[0][pos[0]:]
	b1 := buffers[1][pos[1]:]
	b2 := buffers[2][pos[2]:]
	b3 := buffers[3][pos[3]:]
	b4 := buffers[4][pos[4]:]
	b5 := buffers[5][pos[5]:]
	b6 := buffers[6][pos[6]:]
	b7 := buffers[7][pos[7]:]

	for i := range dst {
		dst[i] = b0[i] & b1[i] & b2[i] & b3[i] & b4[i] & b5[i] & b6[i] & b7[i]
	}
}

// restorePrimes undoes, in the low 4 bytes of the sieve, the clearing of
// bits belonging to the pre-sieve primes themselves (and to 1, whose
// "possibly prime" status the enclosing sieve driver interprets specially
// -- see spec.md §9's open question). Exact rewrite per spec.md §4.4.
func restorePrimes(sieve []byte, segmentLow uint64) {
	i := 0
	if segmentLow < 30 && i < len(sieve) {
		sieve[i] = 0xFF
		i++
	}
	if segmentLow < 60 && i < len(sieve) {
		sieve[i] = 0xFF ^ bit49
		i++
	}
	if segmentLow < 90 && i < len(sieve) {
		sieve[i] = 0xFF ^ bit77 ^ bit91
		i++
	}
	if segmentLow < 120 && i < len(sieve) {
		sieve[i] = 0xFF ^ bit119 ^ bit121
		i++
	}
}
