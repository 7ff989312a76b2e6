package presieve

import (
	"github.com/debuggingfuture/primesieve/eratsmall"
)

// PreSieve writes precomputed composite bitmaps of the primes < 100 into a
// fresh sieve segment before the small cross-off engine processes it. The
// zero value starts in small mode (only the static 1001-byte table is
// used); large mode activates lazily once enough sieving distance has
// accumulated across calls to Init.
type PreSieve struct {
	totalDist uint64
	buffers   [8][]byte // nil until large mode activates
}

// Init records dist = max(max(start,stop)-start, floor(sqrt(stop))) in the
// running totalDist and, once 20x the large buffers' combined distance has
// accumulated, allocates and populates the 8 large buffers. Safe to call
// repeatedly; a no-op once large mode is active.
func (ps *PreSieve) Init(start, stop uint64) {
	if ps.buffers[0] != nil {
		return
	}

	var dist uint64
	if stop > start {
		dist = stop - start
	}
	sqrtStop := isqrt(stop)
	if sqrtStop > dist {
		dist = sqrtStop
	}

	ps.totalDist += dist

	if ps.totalDist < buffersDist*20 {
		return
	}

	ps.initBuffers()
}

// ForceInit allocates the large buffers unconditionally, bypassing the
// lazy-activation threshold. Exposed for deterministic testing.
func (ps *PreSieve) ForceInit() {
	if ps.buffers[0] == nil {
		ps.initBuffers()
	}
}

// MaxPrime returns the largest prime currently covered by pre-sieving: 13
// in small mode, 97 once large mode is active.
func (ps *PreSieve) MaxPrime() uint64 {
	if ps.buffers[0] == nil {
		return smallMaxPrime
	}
	return largeMaxPrime
}

// initBuffers allocates all 8 large buffers and populates each by running
// a private, transient eratsmall.SmallCrossOff over it. The private
// engine never escapes this function.
func (ps *PreSieve) initBuffers() {
	for i := range bufferPrimes {
		product := bufferProduct(i)
		size := product / 30
		buf := make([]byte, size)
		for j := range buf {
			buf[j] = 0xFF
		}

		maxPrime := maxPrimeOf(i)
		stop := 2 * product

		var eng eratsmall.SmallCrossOff
		if err := eng.Init(stop, size, maxPrime); err != nil {
			panic("presieve: unexpected EratSmall.Init failure: " + err.Error())
		}

		for _, p := range bufferPrimes[i] {
			firstMultiple := product + p
			if err := eng.AddSievingPrime(p, firstMultiple, product); err != nil {
				panic("presieve: unexpected EratSmall.AddSievingPrime failure: " + err.Error())
			}
		}

		eng.CrossOff(buf)
		ps.buffers[i] = buf
	}
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
