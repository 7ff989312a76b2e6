package presieve

// bufferPrimes assigns each of the 8 large pre-sieve buffers the set of
// primes < 100 (excluding 2, 3, 5) whose multiples it removes. Grounded on
// PreSieve.cpp's bufferPrimes table.
var bufferPrimes = [8][]uint64{
	{7, 67, 71},
	{11, 41, 73},
	{13, 43, 59},
	{17, 37, 53},
	{19, 29, 61},
	{23, 31, 47},
	{79, 97},
	{83, 89},
}

// bufferProduct returns product = 30 * Π bufferPrimes[i], the absolute
// integer at which buffer i's represented interval [product, 2*product)
// begins.
func bufferProduct(i int) uint64 {
	product := uint64(30)
	for _, p := range bufferPrimes[i] {
		product *= p
	}
	return product
}

// maxPrimeOf returns the largest prime assigned to buffer i.
func maxPrimeOf(i int) uint64 {
	max := uint64(0)
	for _, p := range bufferPrimes[i] {
		if p > max {
			max = p
		}
	}
	return max
}

// buffersDist is the amortization threshold unit: the sum, over the 8
// buffers, of (product of that buffer's primes) * 30 -- i.e. the sum of
// each buffer's byte size times 30. Grounded on PreSieve.cpp's
// buffersDist constant.
var buffersDist = func() uint64 {
	var sum uint64
	for i := range bufferPrimes {
		size := uint64(1)
		for _, p := range bufferPrimes[i] {
			size *= p
		}
		sum += size * 30
	}
	return sum
}()

// smallMaxPrime is the largest prime covered by the static buffer.
const smallMaxPrime = 13

// largeMaxPrime is the largest prime covered once the 8 large buffers are
// active.
const largeMaxPrime = 97
