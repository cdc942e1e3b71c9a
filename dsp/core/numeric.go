package core

import "math"

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// NextPowerOfTwo returns the smallest power of two >= v.
// Values below 1 map to 1.
func NextPowerOfTwo(v int) int {
	n := 1
	for n < v {
		n <<= 1
	}
	return n
}

// AnyAscending reports whether any element is strictly larger than its
// predecessor.
func AnyAscending(values []int) bool {
	for i := 1; i < len(values); i++ {
		if values[i] > values[i-1] {
			return true
		}
	}
	return false
}

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// LinearPowerToDB converts linear power to dB (10*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearPowerToDB(power float64) float64 {
	if power < 0 {
		return math.NaN()
	}

	if power == 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(power)
}

// LinearPowerToDBFloor is LinearPowerToDB limited below by floorDB.
func LinearPowerToDBFloor(power, floorDB float64) float64 {
	db := LinearPowerToDB(power)
	if math.IsNaN(db) || db < floorDB {
		return floorDB
	}
	return db
}
