// Package segment supplies the collaborators spec.md's core explicitly
// places out of scope but whose contract the core touches: a driving
// loop that owns one SmallCrossOff + one PreSieve + one sieve buffer per
// logical processor (spec.md §5), multi-threaded distance splitting
// across processors, and enumeration/counting over the resulting bitmap.
//
// Grounded on strong_goldbach/main.go's processChunks/processChunk
// worker-pool pattern (sync.WaitGroup over a channel of chunk starts),
// generalized from Goldbach-chunk processing to sieve-segment processing.
package segment

import (
	"fmt"
	"sort"

	"github.com/debuggingfuture/primesieve/eratsmall"
	"github.com/debuggingfuture/primesieve/presieve"
	"github.com/debuggingfuture/primesieve/wheel"
)

// defaultSegmentBytes bounds how many sieve bytes (representing 30
// integers each) a Processor materializes at once when no L2-sized hint
// is supplied by the caller.
const defaultSegmentBytes = 256 << 10

// Processor owns exactly one SmallCrossOff, one PreSieve, and one sieve
// buffer, matching spec.md §5's single-owner resource model. It sieves a
// single contiguous sub-range of the overall integer line.
type Processor struct {
	sco eratsmall.SmallCrossOff
	ps  presieve.PreSieve
	buf bufferPool

	l1CacheSize  uint64
	segmentBytes uint64
}

// NewProcessor prepares a Processor for sieving up to stop, using
// l1CacheSize as the SmallCrossOff sub-segment size and segmentBytes as
// the size of each segment this Processor materializes at once.
// An l1CacheSize of 0 uses segmentBytes as the sub-segment size; a
// segmentBytes of 0 selects a default.
func NewProcessor(stop, l1CacheSize, segmentBytes uint64) *Processor {
	if segmentBytes == 0 {
		segmentBytes = defaultSegmentBytes
	}
	return &Processor{l1CacheSize: l1CacheSize, segmentBytes: segmentBytes}
}

// maxSievingPrime returns the largest prime the engine's SmallCrossOff
// can register as a sieving prime when given l1CacheSize, which the
// engine's Init clamps to [8 KiB, 4 MiB]. Primes beyond isqrt(stop) that
// exceed this bound would need a medium/big cross-off engine, explicitly
// named as out of scope for the core (spec.md §1); callers must keep stop
// small enough, or l1CacheSize (segmentBytes when l1CacheSize is 0) large
// enough, that isqrt(stop) <= this bound.
func maxSievingPrime(l1CacheSize uint64) uint64 {
	if l1CacheSize < 8<<10 {
		l1CacheSize = 8 << 10
	}
	if l1CacheSize > 4096<<10 {
		l1CacheSize = 4096 << 10
	}
	return l1CacheSize * 3
}

// Run sieves [start, stop) (start and stop need not be multiples of 30)
// and returns every prime in that range, including 2, 3, and 5 if they
// fall within it. It is the reference (allocating) enumeration path; see
// CountPrimes for a count-only variant that avoids materializing the
// slice.
func (p *Processor) Run(start, stop uint64) ([]uint64, error) {
	var out []uint64

	err := p.run(start, stop, func(n uint64) {
		out = append(out, n)
	})
	return out, err
}

// CountPrimes sieves [start, stop) and returns only the count of primes
// found, without materializing them.
func (p *Processor) CountPrimes(start, stop uint64) (uint64, error) {
	var count uint64

	err := p.run(start, stop, func(uint64) {
		count++
	})
	return count, err
}

func (p *Processor) run(start, stop uint64, emit func(uint64)) error {
	if start > stop {
		return fmt.Errorf("segment: start %d > stop %d", start, stop)
	}

	for _, n := range []uint64{2, 3, 5} {
		if n >= start && n < stop {
			emit(n)
		}
	}

	if stop < 7 {
		return nil
	}

	sqrtStop := isqrt(stop)
	l1CacheSize := p.l1CacheSize
	if l1CacheSize == 0 {
		l1CacheSize = p.segmentBytes
	}
	bound := maxSievingPrime(l1CacheSize)
	if sqrtStop > bound {
		return fmt.Errorf("segment: isqrt(stop)=%d exceeds the small-engine bound %d; "+
			"a medium/big cross-off engine is required and is out of scope", sqrtStop, bound)
	}

	smallPrimes := bootstrapPrimes(sqrtStop)
	maxPrime := sqrtStop
	if maxPrime < 7 {
		maxPrime = 7
	}

	if err := p.sco.Init(stop, l1CacheSize, maxPrime); err != nil {
		return fmt.Errorf("segment: %w", err)
	}

	segmentLow := alignDown30(start)

	// PreSieve::init is a per-run call, not per-segment: its lazy
	// activation threshold is about amortizing buffer construction cost
	// over the whole distance this Processor is asked to sieve.
	p.ps.Init(segmentLow, stop)

	for segmentLow < stop {
		segmentHigh := segmentLow + p.segmentBytes*30
		if segmentHigh > alignUp30(stop) {
			segmentHigh = alignUp30(stop)
		}
		sieveLen := (segmentHigh - segmentLow) / 30

		if segmentLow == alignDown30(start) {
			// First segment: register every sieving prime whose first
			// wheel-valid multiple >= prime*prime falls within
			// [segmentLow, stop).
			for _, sp := range smallPrimes {
				if sp < 7 {
					continue
				}
				if sp > maxPrime {
					break
				}
				from := sp * sp
				if from < segmentLow {
					from = segmentLow
				}
				first := nextWheelMultiple(sp, from)
				if first >= stop {
					continue
				}
				if err := p.sco.AddSievingPrime(sp, first, segmentLow); err != nil {
					return fmt.Errorf("segment: %w", err)
				}
			}
		}

		sieve := p.buf.get(int(sieveLen))
		if err := p.ps.PreSieveInto(sieve, segmentLow); err != nil {
			return fmt.Errorf("segment: %w", err)
		}
		p.sco.CrossOff(sieve)

		decode(sieve, segmentLow, start, stop, emit)
		p.buf.put(sieve)

		segmentLow = segmentHigh
	}

	return nil
}

// decode walks every set bit of sieve, representing segmentLow as byte 0,
// and emits the corresponding integer if it falls within [start, stop)
// and is not 1 (spec.md §9's open question: bit 0 of byte 0 reads as set
// even though 1 is not prime; the driver -- here -- is responsible for
// excluding it).
func decode(sieve []byte, segmentLow, start, stop uint64, emit func(uint64)) {
	for b, byteVal := range sieve {
		base := segmentLow + uint64(b)*30
		if byteVal == 0 {
			continue
		}
		for bit := 0; bit < 8; bit++ {
			if byteVal&(1<<bit) == 0 {
				continue
			}
			n := base + wheel.Residues[bit]
			if n == 1 || n < start || n >= stop {
				continue
			}
			emit(n)
		}
	}
}

// nextWheelMultiple returns the smallest multiple of prime that is >= from
// and coprime to 30.
func nextWheelMultiple(prime, from uint64) uint64 {
	if from%prime != 0 {
		from += prime - from%prime
	}
	for {
		r := from % 30
		if r == 1 || r == 7 || r == 11 || r == 13 || r == 17 || r == 19 || r == 23 || r == 29 {
			return from
		}
		from += prime
	}
}

func alignDown30(n uint64) uint64 { return n - n%30 }

func alignUp30(n uint64) uint64 {
	if n%30 == 0 {
		return n
	}
	return n + (30 - n%30)
}

func isqrt(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

// sortPrimes sorts primes ascending; exposed for callers merging
// partitioned results produced out of order (see Pool.Run).
func sortPrimes(primes []uint64) {
	sort.Slice(primes, func(i, j int) bool { return primes[i] < primes[j] })
}
