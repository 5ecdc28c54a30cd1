package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(n, r int) [][]int {
	var out [][]int
	c := newCombinations(n, r)
	for c.Next() {
		out = append(out, append([]int(nil), c.Indices()...))
	}
	return out
}

func TestCombinations_LexicographicOrder(t *testing.T) {
	assert.Equal(t, [][]int{
		{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3},
	}, collect(4, 3))

	assert.Equal(t, [][]int{{0}, {1}, {2}}, collect(3, 1))
	assert.Equal(t, [][]int{{0, 1, 2}}, collect(3, 3))
}

func TestCombinations_Counts(t *testing.T) {
	binomial := func(n, k int) int {
		res := 1
		for i := 1; i <= k; i++ {
			res = res * (n - k + i) / i
		}
		return res
	}

	for n := 0; n <= 9; n++ {
		for r := 1; r <= 6; r++ {
			want := 0
			if r <= n {
				want = binomial(n, r)
			}
			assert.Len(t, collect(n, r), want, "C(%d,%d)", n, r)
		}
	}
}

func TestCombinations_Empty(t *testing.T) {
	assert.Empty(t, collect(3, 0))
	assert.Empty(t, collect(3, 4))
	assert.Empty(t, collect(0, 1))
}
