package rational

import "golang.org/x/exp/constraints"

// GCD returns the greatest common divisor of m and n, which must be
// non-negative, with the convention GCD(x, 0) == x. It is the arithmetic
// collaborator normalization is built on; callers embedding Rational over a
// custom domain can reuse it directly.
func GCD[T constraints.Signed](m, n T) T {
	for n != 0 {
		m, n = n, m%n
	}
	return m
}

// abs does not guard against the minimum value of T overflowing; that is
// inherited from the domain like every other overflow.
func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
