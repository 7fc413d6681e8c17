package rational

// Neg returns -r. The denominator is already non-negative, so the result is
// canonical without renormalizing.
func (r Rational[T]) Neg() Rational[T] {
	return Rational[T]{num: -r.num, den: r.den}
}

// Abs returns |r|.
func (r Rational[T]) Abs() Rational[T] {
	return Rational[T]{num: abs(r.num), den: r.den}
}

// Add returns r + s in canonical form.
func (r Rational[T]) Add(s Rational[T]) Rational[T] {
	return normalize(r.num*s.den+r.den*s.num, r.den*s.den)
}

// AddInt returns r + v/1.
func (r Rational[T]) AddInt(v T) Rational[T] {
	return r.Add(FromInt(v))
}

// Sub returns r - s in canonical form.
func (r Rational[T]) Sub(s Rational[T]) Rational[T] {
	return normalize(r.num*s.den-r.den*s.num, r.den*s.den)
}

// SubInt returns r - v/1.
func (r Rational[T]) SubInt(v T) Rational[T] {
	return r.Sub(FromInt(v))
}

// Mul returns r * s in canonical form.
func (r Rational[T]) Mul(s Rational[T]) Rational[T] {
	return normalize(r.num*s.num, r.den*s.den)
}

// MulInt returns r * v.
func (r Rational[T]) MulInt(v T) Rational[T] {
	return r.Mul(FromInt(v))
}

// Div returns r / s. Dividing by a zero rational yields an illegal value,
// not a panic.
func (r Rational[T]) Div(s Rational[T]) Rational[T] {
	return normalize(r.num*s.den, r.den*s.num)
}

// DivInt returns r / v.
func (r Rational[T]) DivInt(v T) Rational[T] {
	return r.Div(FromInt(v))
}

// Inv returns 1/r; illegal when r is zero.
func (r Rational[T]) Inv() Rational[T] {
	return normalize(r.den, r.num)
}
