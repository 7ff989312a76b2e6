package segment

import (
	"fmt"
	"sync"
)

// partition is one worker's share of the overall [start, stop) range.
type partition struct {
	index      int
	start      uint64
	stop       uint64
}

// partitionResult carries one partition's output back to the coordinator.
type partitionResult struct {
	index  int
	primes []uint64
	count  uint64
	err    error
}

// Pool drives several Processors in parallel over disjoint partitions of
// an integer range, one Processor per worker, matching spec.md §5's
// statement that "multiple such processors run in parallel at a higher
// level ... by partitioning the absolute integer range; each owns its own
// SCO, PreSieve, and sieve buffer -- no sharing."
//
// Grounded on strong_goldbach/main.go's processChunks: a channel of work
// items drained by a fixed worker pool, results collected on a result
// channel and joined with a sync.WaitGroup.
type Pool struct {
	Workers      int
	L1CacheSize  uint64
	SegmentBytes uint64

	// MinPartitionDistance is the smallest distance a single partition is
	// allowed to cover, to keep per-partition bootstrap overhead (the
	// small-primes sieve up to isqrt(stop)) from dominating. Grounded on
	// primesieve's config::MIN_THREAD_DISTANCE (see
	// original_source/include/primesieve/config.hpp).
	MinPartitionDistance uint64
}

const defaultMinPartitionDistance = 1e5

// Run partitions [start, stop) across p.Workers goroutines and returns
// every prime found, sorted ascending.
func (p *Pool) Run(start, stop uint64) ([]uint64, error) {
	results, err := p.run(start, stop, false)
	if err != nil {
		return nil, err
	}

	var all []uint64
	for _, r := range results {
		all = append(all, r.primes...)
	}
	sortPrimes(all)
	return all, nil
}

// CountPrimes partitions [start, stop) across p.Workers goroutines and
// returns only the total count, without materializing the primes.
func (p *Pool) CountPrimes(start, stop uint64) (uint64, error) {
	results, err := p.run(start, stop, true)
	if err != nil {
		return 0, err
	}

	var total uint64
	for _, r := range results {
		total += r.count
	}
	return total, nil
}

func (p *Pool) run(start, stop uint64, countOnly bool) ([]partitionResult, error) {
	if start > stop {
		return nil, fmt.Errorf("segment: start %d > stop %d", start, stop)
	}

	workers := p.Workers
	if workers < 1 {
		workers = 1
	}
	minDist := p.MinPartitionDistance
	if minDist == 0 {
		minDist = defaultMinPartitionDistance
	}

	partitions := partitionRange(start, stop, workers, minDist)

	partChan := make(chan partition, len(partitions))
	for _, part := range partitions {
		partChan <- part
	}
	close(partChan)

	resultChan := make(chan partitionResult, len(partitions))
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			proc := NewProcessor(stop, p.L1CacheSize, p.SegmentBytes)
			for part := range partChan {
				if countOnly {
					count, err := proc.CountPrimes(part.start, part.stop)
					resultChan <- partitionResult{index: part.index, count: count, err: err}
				} else {
					primes, err := proc.Run(part.start, part.stop)
					resultChan <- partitionResult{index: part.index, primes: primes, err: err}
				}
			}
		}()
	}

	wg.Wait()
	close(resultChan)

	results := make([]partitionResult, len(partitions))
	for r := range resultChan {
		if r.err != nil {
			return nil, r.err
		}
		results[r.index] = r
	}
	return results, nil
}

// partitionRange splits [start, stop) into at most workers contiguous,
// disjoint partitions, each at least minDist wide (except possibly the
// last, which absorbs any remainder).
func partitionRange(start, stop uint64, workers int, minDist uint64) []partition {
	total := stop - start
	if total == 0 {
		return nil
	}

	n := uint64(workers)
	if n > total/minDist {
		n = total / minDist
	}
	if n < 1 {
		n = 1
	}

	width := total / n
	partitions := make([]partition, 0, n)
	cur := start
	for i := uint64(0); i < n; i++ {
		end := cur + width
		if i == n-1 {
			end = stop
		}
		partitions = append(partitions, partition{index: len(partitions), start: cur, stop: end})
		cur = end
	}
	return partitions
}
