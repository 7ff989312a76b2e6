// Package cpuinfo supplies the CPU L1/L2 cache-size hint that the core
// sieving engine (package eratsmall) treats as an injected parameter
// (spec.md explicitly places CPU cache detection out of the core's
// scope). Grounded on strong_goldbach/main.go's use of
// github.com/klauspost/cpuid/v2 for CPU.PhysicalCores/CPU.BrandName,
// extended here to the cache-size fields the same package exposes.
package cpuinfo

import (
	"github.com/klauspost/cpuid/v2"
)

// L1DataCacheSize returns the detected L1 data cache size in bytes, or
// fallback if the CPU's cache size could not be determined.
func L1DataCacheSize(fallback uint64) uint64 {
	size := cpuid.CPU.Cache.L1D
	if size <= 0 {
		return fallback
	}
	return uint64(size)
}

// L2CacheSize returns the detected L2 cache size in bytes, or fallback if
// unknown.
func L2CacheSize(fallback uint64) uint64 {
	size := cpuid.CPU.Cache.L2
	if size <= 0 {
		return fallback
	}
	return uint64(size)
}

// PhysicalCores returns the number of physical CPU cores, used to size
// the segment-processing worker pool. Grounded on
// strong_goldbach/main.go's processChunks, which sizes numWorkers from
// CPU.PhysicalCores.
func PhysicalCores() int {
	if cpuid.CPU.PhysicalCores > 0 {
		return cpuid.CPU.PhysicalCores
	}
	return 1
}

// BrandName returns the CPU's marketing name, used only for the CPU
// banner the CLI prints at the end of a run (grounded on strong_goldbach/main.go's
// fmt.Printf("CPU Name: %s\n", CPU.BrandName)).
func BrandName() string {
	return cpuid.CPU.BrandName
}
