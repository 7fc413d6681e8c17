package rational

import "golang.org/x/exp/constraints"

// Real approximates r in the floating-point type F with a single division.
// No rounding mode is specified beyond what F's division does. For an
// illegal value the result follows IEEE division by zero: signed infinity
// for a non-zero numerator, NaN for 0/0.
func Real[F constraints.Float, T constraints.Signed](r Rational[T]) F {
	return F(r.num) / F(r.den)
}

// Float64 is shorthand for Real[float64].
func (r Rational[T]) Float64() float64 {
	return float64(r.num) / float64(r.den)
}
