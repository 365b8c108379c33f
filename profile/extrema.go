package profile

// Mask is a boolean profile: one flag per index of a profile.
type Mask []bool

// NewMask returns a mask of length n with every flag set to v.
func NewMask(n int, v bool) Mask {
	m := make(Mask, n)
	if v {
		for i := range m {
			m[i] = true
		}
	}
	return m
}

// Count returns the number of true flags.
func (m Mask) Count() int {
	c := 0
	for _, b := range m {
		if b {
			c++
		}
	}
	return c
}

// Indexes returns the true positions in ascending order.
func (m Mask) Indexes() []int {
	out := make([]int, 0, m.Count())
	for i, b := range m {
		if b {
			out = append(out, i)
		}
	}
	return out
}

// LocalMinima flags every index i where the samples strictly increase on
// both sides for w steps: v[i] < v[i±1] < v[i±2] < … < v[i±w].
//
// The comparison is strict with no tolerance for a noisy step; use
// LocalMinimaBelow to filter the result by magnitude.
func (p *Profile) LocalMinima(w int) (Mask, error) {
	if w < 1 {
		return nil, profileErrorf("LocalMinima", ErrBadWindow)
	}
	return p.monotoneOutward(w, func(inner, outer float64) bool { return outer > inner }), nil
}

// LocalMaxima flags every index i where the samples strictly decrease on
// both sides for w steps.
func (p *Profile) LocalMaxima(w int) (Mask, error) {
	if w < 1 {
		return nil, profileErrorf("LocalMaxima", ErrBadWindow)
	}
	return p.monotoneOutward(w, func(inner, outer float64) bool { return outer < inner }), nil
}

// LocalMinimaBelow is LocalMinima restricted to samples below threshold.
func (p *Profile) LocalMinimaBelow(w int, threshold float64) (Mask, error) {
	m, err := p.LocalMinima(w)
	if err != nil {
		return nil, err
	}
	for i := range m {
		m[i] = m[i] && p.values[i] < threshold
	}
	return m, nil
}

// LocalMaximaAbove is LocalMaxima restricted to samples above threshold.
func (p *Profile) LocalMaximaAbove(w int, threshold float64) (Mask, error) {
	m, err := p.LocalMaxima(w)
	if err != nil {
		return nil, err
	}
	for i := range m {
		m[i] = m[i] && p.values[i] > threshold
	}
	return m, nil
}

// monotoneOutward walks w steps each way from every index; step(inner, outer)
// must hold for every successive pair on both sides.
func (p *Profile) monotoneOutward(w int, step func(inner, outer float64) bool) Mask {
	n := len(p.values)
	out := make(Mask, n)
	for i := 0; i < n; i++ {
		ok := true
		prevInner, nextInner := p.values[i], p.values[i]
		for k := 1; k <= w && ok; k++ {
			prevOuter := p.values[p.Wrap(i-k)]
			nextOuter := p.values[p.Wrap(i+k)]
			if !step(prevInner, prevOuter) || !step(nextInner, nextOuter) {
				ok = false
			}
			prevInner, nextInner = prevOuter, nextOuter
		}
		out[i] = ok
	}
	return out
}
