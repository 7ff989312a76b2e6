package segment

// bootstrapPrimes returns every prime <= n using a plain (non-wheel)
// sieve of Eratosthenes. It exists only to seed the list of sieving
// primes a Processor needs before it can cross off anything with the
// wheel-30 engine -- the same bootstrap role strong_goldbach/main.go's
// sieve_50k plays for that program's small-prime list, generalized here
// to an arbitrary bound.
func bootstrapPrimes(n uint64) []uint64 {
	if n < 2 {
		return nil
	}

	isComposite := make([]bool, n+1)
	var primes []uint64

	for i := uint64(2); i <= n; i++ {
		if isComposite[i] {
			continue
		}
		primes = append(primes, i)
		if i > n/i {
			continue
		}
		for j := i * i; j <= n; j += i {
			isComposite[j] = true
		}
	}

	return primes
}
