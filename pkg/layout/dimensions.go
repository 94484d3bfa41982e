package layout

import "math"

// GridDimensions returns the most square grid that holds n cells, as
// (width, height, errorCells) with width <= height.
//
// Candidates are the most square factorizations of n+2, n+1 and n, tried in
// that order; the one minimizing width+height+errorCells wins, and ties keep
// the earlier candidate. The larger error is therefore preferred among equal
// totals: 33 gives 5x7 with two empty cells instead of an exact 3x11.
// errorCells is always 0, 1 or 2 and counts cells to mark empty.
func GridDimensions(n int) (width, height, errorCells int) {
	best := -1
	for _, delta := range [...]int{2, 1, 0} {
		x, y := squarestFactors(n + delta)
		if total := x + y + delta; best < 0 || total < best {
			width, height, errorCells, best = x, y, delta, total
		}
	}
	return width, height, errorCells
}

// squarestFactors returns the factor pair x <= y of n with the smallest sum.
// Primes yield (1, n).
func squarestFactors(n int) (int, int) {
	for d := isqrt(n); d > 1; d-- {
		if n%d == 0 {
			return d, n / d
		}
	}
	return 1, n
}

func isqrt(n int) int {
	if n < 1 {
		return 0
	}
	r := int(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
