package match

// combinations walks the r-element subsets of {0..n-1} in lexicographic
// order of member positions.
type combinations struct {
	idx     []int
	n       int
	started bool
	done    bool
}

func newCombinations(n, r int) *combinations {
	c := &combinations{n: n, idx: make([]int, r)}
	if r <= 0 || r > n {
		c.done = true
	}
	return c
}

// Next advances to the next subset and reports whether there is one.
func (c *combinations) Next() bool {
	if c.done {
		return false
	}
	if !c.started {
		c.started = true
		for i := range c.idx {
			c.idx[i] = i
		}
		return true
	}

	r := len(c.idx)
	i := r - 1
	for i >= 0 && c.idx[i] == c.n-r+i {
		i--
	}
	if i < 0 {
		c.done = true
		return false
	}
	c.idx[i]++
	for j := i + 1; j < r; j++ {
		c.idx[j] = c.idx[j-1] + 1
	}
	return true
}

// Indices returns the current subset. The slice is reused by Next.
func (c *combinations) Indices() []int {
	return c.idx
}
