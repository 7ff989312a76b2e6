// Package wheel implements the modulo-30 wheel shared by every sieving
// component: the bit encoding of the sieve byte layout (BE) and the
// 64-state wheel stepper (WS) that drives cross-off loops.
//
// Grounded on primesieve's bits.hpp/Wheel.hpp contract, as exercised by
// EratSmall.cpp (see original_source/src/EratSmall.cpp); the tables below
// reproduce that source's case-label switch byte-for-byte.
package wheel

// Residues coprime to 30, least-significant-bit first. Bit i of a sieve
// byte represents the integer base+30*byteIndex+Residues[i].
var Residues = [8]uint64{1, 7, 11, 13, 17, 19, 23, 29}

// residueToBit maps a residue mod 30 to its bit index within a sieve byte.
var residueToBit = map[uint64]uint8{
	1: 0, 7: 1, 11: 2, 13: 3, 17: 4, 19: 5, 23: 6, 29: 7,
}

// ResidueToBit returns the bit index for a residue coprime to 30.
// Panics if r is not one of {1,7,11,13,17,19,23,29}.
func ResidueToBit(r uint64) uint8 {
	bit, ok := residueToBit[r]
	if !ok {
		panic("wheel: residue not coprime to 30")
	}
	return bit
}

// ClearMask returns the AND-mask that clears exactly bit i and leaves the
// other seven bits set.
func ClearMask(bit uint8) byte {
	return 0xFF ^ (1 << bit)
}

// ByteIndex returns n/30, the byte offset of n within a sieve whose base
// is a multiple of 30.
func ByteIndex(n uint64) uint64 { return n / 30 }

// Residue returns n%30.
func Residue(n uint64) uint64 { return n % 30 }
