// Package eratsmall implements the Small Cross-Off Engine (SCO): a
// segmented sieve of Eratosthenes pass, restricted to sieving primes small
// enough that each has many multiples per sub-segment, optimized around
// the modulo-30 wheel in package wheel.
//
// Grounded on original_source/src/EratSmall.cpp (primesieve's EratSmall),
// reproducing its hardcoded wheel dispatch and hot-loop shape; the
// sub-segment driver and L1-cache sizing are grounded on the same file's
// EratSmall::crossOff(sieve, sieveSize) and EratSmall::getL1CacheSize.
package eratsmall

import (
	"fmt"
	"math"

	"github.com/debuggingfuture/primesieve/wheel"
)

const (
	minL1CacheSize = 8 << 10
	maxL1CacheSize = 4096 << 10
)

type sievingPrime struct {
	sievingPrime  uint64 // prime / 30
	multipleIndex uint64
	wheelIndex    uint64
}

// SmallCrossOff crosses off the multiples of small sieving primes within a
// segment, processing it in L1-sized sub-segments. The zero value is not
// usable; call Init first.
type SmallCrossOff struct {
	enabled     bool
	maxPrime    uint64
	l1CacheSize uint64
	primes      []sievingPrime
}

// Init enables the engine for sieving up to stop, using l1CacheSize (after
// clamping to [8 KiB, 4 MiB]) as the sub-segment size, and reserves
// capacity for sieving primes up to maxPrime.
func (e *SmallCrossOff) Init(stop, l1CacheSize, maxPrime uint64) error {
	l1CacheSize = clamp(l1CacheSize, minL1CacheSize, maxL1CacheSize)

	if maxPrime > l1CacheSize*3 {
		return fmt.Errorf("%w: maxPrime %d > l1CacheSize*3 (%d)", ErrInvalidParameter, maxPrime, l1CacheSize*3)
	}

	e.enabled = true
	e.maxPrime = maxPrime
	e.l1CacheSize = l1CacheSize
	e.primes = make([]sievingPrime, 0, primeCountApprox(maxPrime))
	return nil
}

// Enabled reports whether Init has succeeded.
func (e *SmallCrossOff) Enabled() bool { return e.enabled }

// MaxPrime returns the maxPrime bound passed to Init.
func (e *SmallCrossOff) MaxPrime() uint64 { return e.maxPrime }

// StoreSievingPrime appends prime (<= maxPrime) to the engine's sieving
// prime list, with its current (multipleIndex, wheelIndex) state.
func (e *SmallCrossOff) StoreSievingPrime(prime, multipleIndex, wheelIndex uint64) error {
	if prime > e.maxPrime {
		return fmt.Errorf("%w: prime %d > maxPrime %d", ErrInvalidParameter, prime, e.maxPrime)
	}
	e.primes = append(e.primes, sievingPrime{prime / 30, multipleIndex, wheelIndex})
	return nil
}

// AddSievingPrime is a convenience wrapper over StoreSievingPrime: given
// the absolute prime and the first absolute multiple to cross off within a
// segment based at segmentLow, it computes the initial wheel state and
// stores it.
func (e *SmallCrossOff) AddSievingPrime(prime, firstMultiple, segmentLow uint64) error {
	multipleIndex, wheelIndex := wheel.InitialState(prime, firstMultiple, segmentLow)
	return e.StoreSievingPrime(prime, multipleIndex, wheelIndex)
}

// Len returns the number of stored sieving primes.
func (e *SmallCrossOff) Len() int { return len(e.primes) }

// CrossOff crosses off the multiples of every stored sieving prime within
// sieve, processing it in sub-segments of at most the engine's effective
// L1 cache size (additionally clamped to len(sieve)) to keep each prime's
// working set cache-resident. It is infallible and allocation-free.
func (e *SmallCrossOff) CrossOff(sieve []byte) {
	subSize := e.l1CacheSize
	if n := uint64(len(sieve)); subSize > n {
		subSize = n
	}
	if subSize == 0 {
		return
	}

	for begin := uint64(0); begin < uint64(len(sieve)); begin += subSize {
		end := begin + subSize
		if end > uint64(len(sieve)) {
			end = uint64(len(sieve))
		}
		e.crossOffSub(sieve, int(begin), int(end))
	}
}

// crossOffSub runs the wheel dispatch for every stored prime over
// [begin, end). See wheel.Lanes / wheel.HotOffsets for the 64-entry
// (lane, step) table this dispatches against.
func (e *SmallCrossOff) crossOffSub(sieve []byte, begin, end int) {
	for i := range e.primes {
		pr := &e.primes[i]
		sp := pr.sievingPrime
		lane := pr.wheelIndex / 8
		step := pr.wheelIndex % 8

		maxLoopDist := int(sp*28 + 27)
		loopEnd := end - maxLoopDist
		if loopEnd < begin {
			loopEnd = begin
		}

		steps := wheel.Lanes[lane]
		hot := wheel.HotOffsets[lane]
		advance := int(wheel.Advance(lane, sp))

		p := begin + int(pr.multipleIndex)

		for {
			if step == 0 {
				for p < loopEnd {
					for _, h := range hot {
						sieve[p+int(h.Multiplicand)*int(sp)+int(h.Additive)] &= h.Mask
					}
					p += advance
				}
			}

			finished := false
			for step < 8 {
				if p >= end {
					pr.multipleIndex = uint64(p - end)
					pr.wheelIndex = lane*8 + step
					finished = true
					break
				}
				s := steps[step]
				sieve[p] &= s.Mask
				p += int(sp*s.Multiplicand + s.Additive)
				step++
			}
			if finished {
				break
			}
			step = 0
		}
	}
}

func clamp(v, lo, hi uint64) uint64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// primeCountApprox estimates pi(n) via n/ln(n), used only to size the
// initial capacity of the sieving-prime slice.
func primeCountApprox(n uint64) int {
	if n < 2 {
		return 0
	}
	return int(float64(n) / math.Log(float64(n)))
}
