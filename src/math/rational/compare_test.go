package rational

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCmp(t *testing.T) {
	for idx, tc := range []struct {
		a, b Rational[int]
		want int
	}{
		{q(1, 3), q(1, 2), -1},
		{q(-1, 2), q(1, 3), -1},
		{q(1, 2), q(1, 3), 1},
		{q(2, 4), q(1, 2), 0},
		{q(-3, 4), q(-2, 3), -1},
		{q(0, 1), q(0, 5), 0},
		{q(7, 1), q(13, 2), 1},
	} {
		t.Run(fmt.Sprintf("%d/(%d,%d)cmp(%d,%d)=%d", idx, tc.a.Num(), tc.a.Den(), tc.b.Num(), tc.b.Den(), tc.want), func(t *testing.T) {
			require.Equal(t, tc.want, tc.a.Cmp(tc.b))
			require.Equal(t, -tc.want, tc.b.Cmp(tc.a))

			require.Equal(t, tc.want < 0, tc.a.Less(tc.b))
			require.Equal(t, tc.want <= 0, tc.a.LessEq(tc.b))
			require.Equal(t, tc.want > 0, tc.a.Greater(tc.b))
			require.Equal(t, tc.want >= 0, tc.a.GreaterEq(tc.b))
			require.Equal(t, tc.want == 0, tc.a.Equal(tc.b))
		})
	}
}

// Exactly one of <, ==, > holds for any two legal values.
func TestTrichotomy(t *testing.T) {
	vals := []Rational[int]{
		q(-7, 2), q(-1, 2), q(0, 1), q(1, 3), q(1, 2), q(5, 21), q(31, 42), q(4, 1),
	}
	for i, a := range vals {
		for j, b := range vals {
			t.Run(fmt.Sprintf("%d-%d", i, j), func(t *testing.T) {
				n := 0
				if a.Less(b) {
					n++
				}
				if a.Equal(b) {
					n++
				}
				if a.Greater(b) {
					n++
				}
				require.Equal(t, 1, n)
			})
		}
	}
}

func TestEqualIsStructural(t *testing.T) {
	require.True(t, q(15, 63).Equal(q(5, 21)))
	require.True(t, q(4, -6).Equal(q(-2, 3)))
	require.False(t, q(1, 2).Equal(q(1, 3)))

	// Canonical form makes == usable too.
	require.Equal(t, q(15, 63), q(5, 21))
}
