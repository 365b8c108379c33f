package profile

import "math"

// scalarOp applies f(v, x) to every sample after checking x is finite.
func (p *Profile) scalarOp(op string, x float64, f func(v, x float64) float64) (*Profile, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, profileErrorf(op, ErrNonFinite)
	}
	out := make([]float64, len(p.values))
	for i, v := range p.values {
		out[i] = f(v, x)
	}
	return wrapValues(out), nil
}

// pairOp applies f(p[i], q[i]) element-wise; sizes must match.
func (p *Profile) pairOp(op string, q *Profile, f func(a, b float64) float64) (*Profile, error) {
	if q == nil || len(q.values) != len(p.values) {
		return nil, profileErrorf(op, ErrSizeMismatch)
	}
	out := make([]float64, len(p.values))
	for i := range p.values {
		out[i] = f(p.values[i], q.values[i])
	}
	return wrapValues(out), nil
}

// AddScalar returns p + x.
func (p *Profile) AddScalar(x float64) (*Profile, error) {
	return p.scalarOp("AddScalar", x, func(v, x float64) float64 { return v + x })
}

// SubtractScalar returns p - x.
func (p *Profile) SubtractScalar(x float64) (*Profile, error) {
	return p.scalarOp("SubtractScalar", x, func(v, x float64) float64 { return v - x })
}

// MultiplyScalar returns p · x.
func (p *Profile) MultiplyScalar(x float64) (*Profile, error) {
	return p.scalarOp("MultiplyScalar", x, func(v, x float64) float64 { return v * x })
}

// DivideScalar returns p / x. Division by zero follows IEEE-754.
func (p *Profile) DivideScalar(x float64) (*Profile, error) {
	return p.scalarOp("DivideScalar", x, func(v, x float64) float64 { return v / x })
}

// Add returns the element-wise sum p + q.
func (p *Profile) Add(q *Profile) (*Profile, error) {
	return p.pairOp("Add", q, func(a, b float64) float64 { return a + b })
}

// Subtract returns the element-wise difference p - q.
func (p *Profile) Subtract(q *Profile) (*Profile, error) {
	return p.pairOp("Subtract", q, func(a, b float64) float64 { return a - b })
}

// Multiply returns the element-wise product p · q.
func (p *Profile) Multiply(q *Profile) (*Profile, error) {
	return p.pairOp("Multiply", q, func(a, b float64) float64 { return a * b })
}

// Divide returns the element-wise quotient p / q.
func (p *Profile) Divide(q *Profile) (*Profile, error) {
	return p.pairOp("Divide", q, func(a, b float64) float64 { return a / b })
}

// Absolute returns |p|.
func (p *Profile) Absolute() *Profile {
	out := make([]float64, len(p.values))
	for i, v := range p.values {
		out[i] = math.Abs(v)
	}
	return wrapValues(out)
}

// Power returns p raised element-wise to exp.
func (p *Profile) Power(exp float64) *Profile {
	out := make([]float64, len(p.values))
	for i, v := range p.values {
		out[i] = math.Pow(v, exp)
	}
	return wrapValues(out)
}

// CumulativeSum returns the running total starting from index 0.
// The sum does not wrap.
func (p *Profile) CumulativeSum() *Profile {
	out := make([]float64, len(p.values))
	var acc float64
	for i, v := range p.values {
		acc += v
		out[i] = acc
	}
	return wrapValues(out)
}
