package profile

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/cellprof/ring"
)

// MinLength is the shortest profile Interpolate will produce.
const MinLength = 3

// Profile is an immutable circular sequence of samples.
// The zero value is not usable; construct with New or Constant.
type Profile struct {
	values []float64
}

// Span is anything describing an arc over a ring: segments satisfy it.
type Span interface {
	Start() int
	End() int
	RingSize() int
}

// New returns a Profile holding a copy of values.
func New(values []float64) (*Profile, error) {
	if len(values) == 0 {
		return nil, profileErrorf("New", ErrEmpty)
	}
	cp := make([]float64, len(values))
	copy(cp, values)
	return &Profile{values: cp}, nil
}

// Constant returns a profile of length n with every sample set to value.
func Constant(value float64, n int) (*Profile, error) {
	if n < 1 {
		return nil, profileErrorf("Constant", ErrEmpty)
	}
	v := make([]float64, n)
	for i := range v {
		v[i] = value
	}
	return &Profile{values: v}, nil
}

// wrapValues adopts values without copying. Internal constructors only.
func wrapValues(values []float64) *Profile {
	return &Profile{values: values}
}

// Size returns the number of samples N.
func (p *Profile) Size() int { return len(p.values) }

// At returns the sample at index i.
func (p *Profile) At(i int) (float64, error) {
	if !ring.Valid(i, len(p.values)) {
		return 0, profileErrorf("At", ErrOutOfRange)
	}
	return p.values[i], nil
}

// AtFraction returns the sample at fractional position f ∈ [0,1].
func (p *Profile) AtFraction(f float64) (float64, error) {
	i, err := p.IndexOfFraction(f)
	if err != nil {
		return 0, err
	}
	return p.values[i], nil
}

// IndexOfFraction maps f ∈ [0,1] to floor(N·f). f == 1 maps back to index 0.
func (p *Profile) IndexOfFraction(f float64) (int, error) {
	if math.IsNaN(f) || f < 0 || f > 1 {
		return 0, profileErrorf("IndexOfFraction", ErrOutOfRange)
	}
	n := len(p.values)
	return ring.Wrap(int(float64(n)*f), n), nil
}

// FractionOfIndex returns i/N.
func (p *Profile) FractionOfIndex(i int) (float64, error) {
	if !ring.Valid(i, len(p.values)) {
		return 0, profileErrorf("FractionOfIndex", ErrOutOfRange)
	}
	return float64(i) / float64(len(p.values)), nil
}

// Wrap maps any integer onto an index of this profile.
func (p *Profile) Wrap(i int) int { return ring.Wrap(i, len(p.values)) }

// Values returns a copy of the samples.
func (p *Profile) Values() []float64 {
	cp := make([]float64, len(p.values))
	copy(cp, p.values)
	return cp
}

// Max returns the largest sample.
func (p *Profile) Max() float64 {
	m := math.Inf(-1)
	for _, v := range p.values {
		if v > m {
			m = v
		}
	}
	return m
}

// Min returns the smallest sample.
func (p *Profile) Min() float64 {
	m := math.Inf(1)
	for _, v := range p.values {
		if v < m {
			m = v
		}
	}
	return m
}

// IndexOfMax returns the index of the largest sample among those allowed by
// mask. Ties resolve to the lowest index. A nil mask allows every index.
func (p *Profile) IndexOfMax(mask Mask) (int, error) {
	return p.indexOfExtreme("IndexOfMax", mask, func(a, b float64) bool { return a > b })
}

// IndexOfMin returns the index of the smallest sample among those allowed by
// mask. Ties resolve to the lowest index. A nil mask allows every index.
func (p *Profile) IndexOfMin(mask Mask) (int, error) {
	return p.indexOfExtreme("IndexOfMin", mask, func(a, b float64) bool { return a < b })
}

func (p *Profile) indexOfExtreme(op string, mask Mask, better func(a, b float64) bool) (int, error) {
	if mask == nil {
		mask = NewMask(len(p.values), true)
	}
	if len(mask) != len(p.values) {
		return 0, profileErrorf(op, ErrSizeMismatch)
	}
	best := -1
	for i, v := range p.values {
		if !mask[i] {
			continue
		}
		if best < 0 || better(v, p.values[best]) {
			best = i
		}
	}
	if best < 0 {
		return 0, profileErrorf(op, ErrNoCandidates)
	}
	return best, nil
}

// Equal reports whether q has the same samples as p.
func (p *Profile) Equal(q *Profile) bool {
	if p == nil || q == nil {
		return p == q
	}
	if len(p.values) != len(q.values) {
		return false
	}
	for i := range p.values {
		if p.values[i] != q.values[i] {
			return false
		}
	}
	return true
}

// EqualWithin reports whether every sample of q is within eps of p.
func (p *Profile) EqualWithin(q *Profile, eps float64) bool {
	if len(p.values) != len(q.values) {
		return false
	}
	for i := range p.values {
		if math.Abs(p.values[i]-q.values[i]) > eps {
			return false
		}
	}
	return true
}

// String renders the samples as "[v0, v1, …]".
func (p *Profile) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range p.values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	b.WriteByte(']')
	return b.String()
}
