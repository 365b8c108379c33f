package profile

import "github.com/katalvlaran/cellprof/ring"

// Smooth returns the circular moving average over 2w+1 samples centred on
// each index.
func (p *Profile) Smooth(w int) (*Profile, error) {
	if w < 1 {
		return nil, profileErrorf("Smooth", ErrBadWindow)
	}
	n := len(p.values)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := p.values[i]
		for k := 1; k <= w; k++ {
			sum += p.values[p.Wrap(i-k)] + p.values[p.Wrap(i+k)]
		}
		out[i] = sum / float64(2*w+1)
	}
	return wrapValues(out), nil
}

// StartFrom returns a profile whose index 0 is index Wrap(k) of p.
// StartFrom(k).StartFrom(-k) is always equal to p.
func (p *Profile) StartFrom(k int) *Profile {
	n := len(p.values)
	k = ring.Wrap(k, n)
	out := make([]float64, n)
	copy(out, p.values[k:])
	copy(out[n-k:], p.values[:k])
	return wrapValues(out)
}

// Reverse returns the samples in reverse order: index i maps to N-1-i.
func (p *Profile) Reverse() *Profile {
	n := len(p.values)
	out := make([]float64, n)
	for i, v := range p.values {
		out[n-1-i] = v
	}
	return wrapValues(out)
}

// Interpolate resamples the profile to n points by linear interpolation over
// the circular index space (the last sample interpolates towards the first).
func (p *Profile) Interpolate(n int) (*Profile, error) {
	if n < MinLength {
		return nil, profileErrorf("Interpolate", ErrTooShort)
	}
	return wrapValues(resample(p.values, n)), nil
}

// resample linearly maps a onto n points. Returns a copy even when
// len(a) == n.
func resample(a []float64, n int) []float64 {
	out := make([]float64, n)
	if len(a) == n {
		copy(out, a)
		return out
	}
	r := float64(len(a)) / float64(n)
	for i := 0; i < n; i++ {
		x := float64(i) * r
		j0 := int(x)
		if j0 >= len(a) {
			j0 = 0
		}
		j1 := j0 + 1
		if j1 == len(a) {
			j1 = 0
		}
		f := x - float64(j0)
		out[i] = a[j0] + (a[j1]-a[j0])*f
	}
	return out
}

// InterpolateLinear resamples the profile to n points along the open
// polyline from the first sample to the last. Both end samples are kept and
// nothing wraps back to the start.
func (p *Profile) InterpolateLinear(n int) (*Profile, error) {
	if n < MinLength {
		return nil, profileErrorf("InterpolateLinear", ErrTooShort)
	}
	a := p.values
	out := make([]float64, n)
	if len(a) == n {
		copy(out, a)
		return wrapValues(out), nil
	}
	last := len(a) - 1
	r := float64(last) / float64(n-1)
	for i := range out {
		x := float64(i) * r
		j0 := int(x)
		if j0 >= last {
			out[i] = a[last]
			continue
		}
		out[i] = a[j0] + (a[j0+1]-a[j0])*(x-float64(j0))
	}
	out[n-1] = a[last]
	return wrapValues(out), nil
}

// Subregion returns the samples from start to end inclusive, walking
// forward and wrapping past N-1. start == end yields the whole ring plus the
// repeated start sample, matching the whole-ring segment length.
func (p *Profile) Subregion(start, end int) (*Profile, error) {
	n := len(p.values)
	if !ring.Valid(start, n) || !ring.Valid(end, n) {
		return nil, profileErrorf("Subregion", ErrOutOfRange)
	}
	out := make([]float64, 0, ring.ArcLength(start, end, n))
	if start < end {
		out = append(out, p.values[start:end+1]...)
		return wrapValues(out), nil
	}
	out = append(out, p.values[start:]...)
	out = append(out, p.values[:end+1]...)
	return wrapValues(out), nil
}

// SubregionOf returns the samples covered by s. s must describe an arc over
// a ring of the same size as p.
func (p *Profile) SubregionOf(s Span) (*Profile, error) {
	if s.RingSize() != len(p.values) {
		return nil, profileErrorf("SubregionOf", ErrSizeMismatch)
	}
	return p.Subregion(s.Start(), s.End())
}

// Window returns the 2w+1 samples centred on index i.
func (p *Profile) Window(i, w int) (*Profile, error) {
	if w < 1 {
		return nil, profileErrorf("Window", ErrBadWindow)
	}
	if !ring.Valid(i, len(p.values)) {
		return nil, profileErrorf("Window", ErrOutOfRange)
	}
	out := make([]float64, 2*w+1)
	for k := -w; k <= w; k++ {
		out[k+w] = p.values[p.Wrap(i+k)]
	}
	return wrapValues(out), nil
}

// Deltas returns, for each index, the summed first differences across the
// 2w+1 window centred on it.
func (p *Profile) Deltas(w int) (*Profile, error) {
	if w < 1 {
		return nil, profileErrorf("Deltas", ErrBadWindow)
	}
	n := len(p.values)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		var d float64
		prevInner, nextInner := p.values[i], p.values[i]
		for k := 1; k <= w; k++ {
			prevOuter := p.values[p.Wrap(i-k)]
			nextOuter := p.values[p.Wrap(i+k)]
			d += (prevInner - prevOuter) + (nextOuter - nextInner)
			prevInner, nextInner = prevOuter, nextOuter
		}
		out[i] = d
	}
	return wrapValues(out), nil
}

// Derivative returns v[i] - v[i+1] with the last index comparing to the first.
func (p *Profile) Derivative() *Profile {
	n := len(p.values)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = p.values[i] - p.values[p.Wrap(i+1)]
	}
	return wrapValues(out)
}

// Concat joins profiles end to end in the given order.
func Concat(parts ...*Profile) (*Profile, error) {
	total := 0
	for _, part := range parts {
		if part != nil {
			total += len(part.values)
		}
	}
	if total == 0 {
		return nil, profileErrorf("Concat", ErrEmpty)
	}
	out := make([]float64, 0, total)
	for _, part := range parts {
		if part != nil {
			out = append(out, part.values...)
		}
	}
	return wrapValues(out), nil
}
