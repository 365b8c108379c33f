package ring

import "errors"

// ErrBadRingSize indicates a ring size that is not strictly positive.
var ErrBadRingSize = errors.New("ring: ring size must be > 0")

const panicBadRingSize = "ring: ring size must be > 0"

// Wrap returns i mod n in [0, n). Negative i is handled.
// Panics if n <= 0 (programmer error).
func Wrap(i, n int) int {
	if n <= 0 {
		panic(panicBadRingSize)
	}
	r := i % n
	if r < 0 {
		r += n
	}
	return r
}

// ShortestDistance returns the number of steps between a and b walking
// whichever way round the ring is shorter.
func ShortestDistance(a, b, n int) int {
	fwd := Wrap(a-b, n)
	bwd := Wrap(b-a, n)
	if fwd < bwd {
		return fwd
	}
	return bwd
}

// RangeContains reports whether i lies on the arc from start to end walking
// forward. A whole-ring arc (start == end) contains every index.
// Indexes outside [0, n) are never contained.
func RangeContains(start, end, i, n int) bool {
	if i < 0 || i >= n {
		return false
	}
	if start == end {
		return true
	}
	if end < start {
		return i >= start || i <= end
	}
	return i >= start && i <= end
}

// ArcLength returns the number of ring positions covered by the arc
// [start, end], both endpoints inclusive:
//
//	end - start + 1       when start < end
//	(n - start) + end + 1 when end < start (wrapping)
//	n + 1                 when start == end (whole ring)
func ArcLength(start, end, n int) int {
	if end > start {
		return end - start + 1
	}
	return n - start + end + 1
}

// Wraps reports whether the arc [start, end] passes from n-1 back to 0.
// The whole-ring arc is not considered wrapping.
func Wraps(start, end int) bool {
	return end < start
}

// Valid reports whether i is an index of a ring of size n.
func Valid(i, n int) bool {
	return i >= 0 && i < n
}
