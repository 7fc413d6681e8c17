// Package rational implements exact rational arithmetic over any signed
// integer domain T.
//
// A Rational is an ordered pair num/den kept in canonical form: the
// denominator is non-negative and gcd(|num|, |den|) == 1, so equal values
// always have identical components. A denominator of zero marks the value
// illegal (the result of dividing by zero); illegal values are inert — they
// are reported by IsLegal, never by a panic or an error.
//
// Overflow in T is not detected and follows Go's wraparound semantics.
//
// The original C++ source this package derives from exposed an operator! and
// an explicit operator bool with swapped polarities; that pair is collapsed
// here into the named predicates IsZero and Nonzero.
package rational

import "golang.org/x/exp/constraints"

// Rational is an exact ratio num/den over the signed integer domain T.
//
// The zero value of Rational is 0/0, which is illegal; use Zero, FromInt,
// or New to construct values.
type Rational[T constraints.Signed] struct {
	num T
	den T
}

// Zero returns the rational 0/1.
func Zero[T constraints.Signed]() Rational[T] {
	return Rational[T]{num: 0, den: 1}
}

// FromInt lifts the integer v to the rational v/1.
func FromInt[T constraints.Signed](v T) Rational[T] {
	return Rational[T]{num: v, den: 1}
}

// New returns num/den in canonical form. A zero denominator yields an
// illegal value rather than a panic.
func New[T constraints.Signed](num, den T) Rational[T] {
	return normalize(num, den)
}

// normalize is the one place the canonical-form invariant is established:
// every constructor and arithmetic method funnels through it. The raw pair
// is reduced by its GCD and the denominator's sign migrates to the
// numerator. When den == 0 the division is skipped so the numerator keeps
// its sign and magnitude and gcd(0, 0) == 0 can never be divided by.
func normalize[T constraints.Signed](num, den T) Rational[T] {
	if den == 0 {
		return Rational[T]{num: num, den: 0}
	}
	g := GCD(abs(num), abs(den))
	if den < 0 {
		g = -g
	}
	return Rational[T]{num: num / g, den: den / g}
}

// Num returns the canonical numerator.
func (r Rational[T]) Num() T {
	return r.num
}

// Den returns the canonical denominator. It is zero exactly for illegal
// values and positive otherwise.
func (r Rational[T]) Den() T {
	return r.den
}

// IsIntegral reports whether r is exactly the integer Num().
func (r Rational[T]) IsIntegral() bool {
	return r.den == 1
}

// IsLegal reports whether the denominator is non-zero. Illegal values arise
// from dividing by zero or constructing with a zero denominator.
func (r Rational[T]) IsLegal() bool {
	return r.den != 0
}

// IsZero reports whether r equals zero.
func (r Rational[T]) IsZero() bool {
	return r.num == 0
}

// Nonzero reports whether r differs from zero.
func (r Rational[T]) Nonzero() bool {
	return r.num != 0
}

// Sign returns -1 if r is negative, 0 if r is zero, and 1 if r is positive.
func (r Rational[T]) Sign() int {
	if r.num < 0 {
		return -1
	}
	if r.num > 0 {
		return 1
	}
	return 0
}
