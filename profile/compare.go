package profile

// squareDifference sums (a[i]-b[i])² over equal-length slices.
func squareDifference(a, b []float64) float64 {
	var d float64
	for i := range a {
		x := a[i] - b[i]
		d += x * x
	}
	return d
}

// SquareDifference returns Σ(p[i]-q[i])². When the lengths differ the shorter
// profile is first interpolated up to the longer one. A nil q is a size
// mismatch.
func (p *Profile) SquareDifference(q *Profile) (float64, error) {
	if q == nil {
		return 0, profileErrorf("SquareDifference", ErrSizeMismatch)
	}
	a, b := p.values, q.values
	switch {
	case len(a) > len(b):
		b = resample(b, len(a))
	case len(b) > len(a):
		a = resample(a, len(b))
	}
	return squareDifference(a, b), nil
}

// SquareDifferenceAt interpolates both profiles to n points before comparing.
func (p *Profile) SquareDifferenceAt(q *Profile, n int) (float64, error) {
	if q == nil {
		return 0, profileErrorf("SquareDifferenceAt", ErrSizeMismatch)
	}
	if n < MinLength {
		return 0, profileErrorf("SquareDifferenceAt", ErrTooShort)
	}
	return squareDifference(resample(p.values, n), resample(q.values, n)), nil
}

// BestFitOffset returns the rotation k ∈ [0, N) for which p.StartFrom(k)
// best matches q. Equivalent to BestFitOffsetIn(q, 0, N).
func (p *Profile) BestFitOffset(q *Profile) (int, error) {
	return p.BestFitOffsetIn(q, 0, len(p.values))
}

// BestFitOffsetIn returns the offset k ∈ [minOffset, maxOffset) minimising
// Σ(p[i+k] - q[i])², i.e. the rotation of p that best explains q. q is
// interpolated to p's length first. Ties resolve to the smallest k.
//
// Complexity: O(N·(maxOffset-minOffset)).
func (p *Profile) BestFitOffsetIn(q *Profile, minOffset, maxOffset int) (int, error) {
	if q == nil {
		return 0, profileErrorf("BestFitOffsetIn", ErrSizeMismatch)
	}
	if minOffset >= maxOffset {
		return 0, profileErrorf("BestFitOffsetIn", ErrBadOffsetRange)
	}
	n := len(p.values)
	test := resample(q.values, n)
	best, bestScore := minOffset, 0.0
	for k := minOffset; k < maxOffset; k++ {
		var score float64
		for i := 0; i < n; i++ {
			x := p.values[p.Wrap(i+k)] - test[i]
			score += x * x
		}
		if k == minOffset || score < bestScore {
			best, bestScore = k, score
		}
	}
	return best, nil
}
