package rational

// Equal reports whether r and s have identical canonical components. This
// coincides with numeric equality for legal values because both sides are
// in lowest terms with a positive denominator.
func (r Rational[T]) Equal(s Rational[T]) bool {
	return r.num == s.num && r.den == s.den
}

// Cmp returns -1 if r < s, 0 if r == s, and 1 if r > s. Ordering is by
// cross-multiplication; the denominators are never negative, so the
// comparison needs no sign correction. Results involving illegal values are
// unspecified.
func (r Rational[T]) Cmp(s Rational[T]) int {
	a, b := r.num*s.den, s.num*r.den
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// Less reports whether r < s.
func (r Rational[T]) Less(s Rational[T]) bool {
	return r.num*s.den < s.num*r.den
}

// LessEq reports whether r <= s.
func (r Rational[T]) LessEq(s Rational[T]) bool {
	return r.num*s.den <= s.num*r.den
}

// Greater reports whether r > s.
func (r Rational[T]) Greater(s Rational[T]) bool {
	return r.num*s.den > s.num*r.den
}

// GreaterEq reports whether r >= s.
func (r Rational[T]) GreaterEq(s Rational[T]) bool {
	return r.num*s.den >= s.num*r.den
}
