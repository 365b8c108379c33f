package dtw

import (
	"math"
)

// Distance computes the DTW distance between a and b.
//
// Algorithm:
//  1. D[0][0] = 0, D[i][0] = D[0][j] = +∞.
//  2. For i = 1..n, j = 1..m inside the band:
//     D[i][j] = |a[i-1]-b[j-1]| + min(D[i-1][j-1], D[i-1][j]+p, D[i][j-1]+p)
//  3. Distance = D[n][m]; the path is recovered by walking back from (n,m)
//     to (1,1) through the cheapest predecessor, diagonal first on ties.
//
// A window narrower than |n−m| would leave (n,m) unreachable, so it is
// widened to |n−m|.
func Distance(a, b []float64, opts ...Option) (Result, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return Result{}, ErrEmptySequence
	}

	o := options{mode: FullMatrix}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return Result{}, err
		}
	}
	if o.path && o.mode != FullMatrix {
		return Result{}, ErrPathNeedsFullMatrix
	}
	window := o.window
	if window > 0 && window < abs(n-m) {
		window = abs(n - m)
	}

	rows := 2
	if o.mode == FullMatrix {
		rows = n + 1
	}
	dp := make([][]float64, rows)
	for r := range dp {
		dp[r] = make([]float64, m+1)
	}
	inf := math.Inf(1)
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}

	for i := 1; i <= n; i++ {
		cur, prev := dp[i%rows], dp[(i-1)%rows]
		cur[0] = inf
		for j := 1; j <= m; j++ {
			if window > 0 && abs(i-j) > window {
				cur[j] = inf
				continue
			}
			cost := math.Abs(a[i-1] - b[j-1])
			cur[j] = cost + min(prev[j-1], prev[j]+o.penalty, cur[j-1]+o.penalty)
		}
	}

	res := Result{Distance: dp[n%rows][m]}
	if o.path {
		res.Path = backtrack(dp, o.penalty)
	}

	return res, nil
}

// backtrack walks the full DP matrix from (n,m) back to (1,1).
func backtrack(dp [][]float64, penalty float64) [][2]int {
	i, j := len(dp)-1, len(dp[0])-1
	path := [][2]int{{i - 1, j - 1}}
	for i > 1 || j > 1 {
		switch {
		case i == 1:
			j--
		case j == 1:
			i--
		default:
			diag, up, left := dp[i-1][j-1], dp[i-1][j]+penalty, dp[i][j-1]+penalty
			switch {
			case diag <= up && diag <= left:
				i, j = i-1, j-1
			case up <= left:
				i--
			default:
				j--
			}
		}
		path = append(path, [2]int{i - 1, j - 1})
	}

	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
