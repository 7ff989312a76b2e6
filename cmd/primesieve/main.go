// Command primesieve sieves an integer range [start, stop) with the
// wheel-30 segmented core and reports either the prime count or, with
// -list, every prime found. Grounded on strong_goldbach/main.go's CLI
// shape: flag-parsed range bounds, a runtime/pprof CPU profile, a
// sha256/hex verification hash over the results, and a CPU-info banner
// printed at the end via github.com/klauspost/cpuid/v2.
package main

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/debuggingfuture/primesieve/internal/cpuinfo"
	"github.com/debuggingfuture/primesieve/internal/segment"
	"github.com/debuggingfuture/primesieve/internal/store"
)

func main() {
	var (
		start       = flag.Uint64("start", 0, "lower bound of the range to sieve (inclusive)")
		stop        = flag.Uint64("stop", 1_000_000, "upper bound of the range to sieve (exclusive)")
		workers     = flag.Int("workers", 0, "number of worker goroutines; 0 selects the CPU's physical core count")
		l1CacheSize = flag.Uint64("l1-cache-size", 0, "SmallCrossOff sub-segment size in bytes; 0 auto-detects the CPU's L1 data cache")
		segmentSize = flag.Uint64("segment-bytes", 0, "sieve bytes materialized per segment; 0 selects the default")
		minDist     = flag.Uint64("min-partition-distance", 0, "smallest distance given to a single worker partition; 0 selects the default")
		list        = flag.Bool("list", false, "print every prime found instead of only the count")
		cpuProfile  = flag.String("cpuprofile", "", "write a CPU profile to this file")
		dbPath      = flag.String("checkpoint-db", "", "path to a sqlite checkpoint database; empty disables checkpointing")
		runID       = flag.String("run-id", "default", "identifies this run's checkpoint row")
	)
	flag.Parse()

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("primesieve: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("primesieve: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	var db *store.Store
	if *dbPath != "" {
		var err error
		db, err = store.Open(*dbPath)
		if err != nil {
			log.Fatalf("primesieve: %v", err)
		}
		defer db.Close()

		if cp, ok, err := db.Load(*runID); err != nil {
			log.Fatalf("primesieve: %v", err)
		} else if ok && cp.SegmentLow >= *stop {
			fmt.Printf("run %q already completed up to %d: %d primes (cached)\n", *runID, cp.SegmentLow, cp.PrimeCount)
			return
		}
	}

	fmt.Printf("Sieving range [%d, %d)\n", *start, *stop)

	n := *workers
	if n <= 0 {
		n = cpuinfo.PhysicalCores()
	}
	l1 := *l1CacheSize
	if l1 == 0 {
		l1 = cpuinfo.L1DataCacheSize(0)
	}

	pool := &segment.Pool{
		Workers:              n,
		L1CacheSize:          l1,
		SegmentBytes:         *segmentSize,
		MinPartitionDistance: *minDist,
	}

	startTime := time.Now()

	if *list {
		primes, err := pool.Run(*start, *stop)
		if err != nil {
			log.Fatalf("primesieve: %v", err)
		}
		for _, p := range primes {
			fmt.Println(p)
		}
		report(len(primes), hashPrimes(primes), startTime, db, *runID, *stop)
		return
	}

	count, err := pool.CountPrimes(*start, *stop)
	if err != nil {
		log.Fatalf("primesieve: %v", err)
	}
	report(int(count), "", startTime, db, *runID, *stop)
}

// report prints the summary line strong_goldbach/main.go prints at the
// end of its run: elapsed time, a verification hash (when available),
// and a CPU banner from cpuinfo; it also persists a checkpoint when db
// is non-nil.
func report(count int, hash string, startTime time.Time, db *store.Store, runID string, stop uint64) {
	fmt.Printf("\nResults:\n")
	fmt.Printf("Primes found: %d\n", count)
	fmt.Printf("Elapsed time: %.4fs\n", time.Since(startTime).Seconds())
	if hash != "" {
		fmt.Printf("Verification hash: %s\n", hash)
	}
	fmt.Printf("CPU Name: %s\n", cpuinfo.BrandName())
	fmt.Printf("CPU Cores: %d\n", cpuinfo.PhysicalCores())

	if db != nil {
		if err := db.Save(runID, store.Checkpoint{SegmentLow: stop, PrimeCount: uint64(count)}); err != nil {
			log.Printf("primesieve: %v", err)
		}
	}
}

// hashPrimes folds every prime into a single sha256 hash, the same
// verification-by-hash pattern strong_goldbach/main.go uses for its
// (n, minPrime) pairs, here applied to a sorted prime list so two runs
// over the same range are comparable with one short string instead of
// a diff of the whole list.
func hashPrimes(primes []uint64) string {
	h := sha256.New()
	buf := make([]byte, 8)
	for _, p := range primes {
		binary.BigEndian.PutUint64(buf, p)
		h.Write(buf)
	}
	return hex.EncodeToString(h.Sum(nil))
}
