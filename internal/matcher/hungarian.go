package matcher

import "math"

// assignment solves the rectangular minimum-cost bipartite assignment
// problem (§4.5 step 3: "an O(n^3) Hungarian/Jonker-Volgenant algorithm").
// cost[i][j] is the cost of assigning row i to column j; unusable pairs
// should carry unusableCost. No ecosystem implementation of this exists
// anywhere in the retrieval pack for any closed language set this size, so
// it is hand-written here - core matcher logic, not an ambient concern.
//
// Returns rowMatch, where rowMatch[i] is the assigned column index, or -1 if
// row i is left unmatched (always possible when rows > cols, or when every
// remaining pairing costs unusableCost).
func assignment(cost [][]float64, unusableCost float64) []int {
	n := len(cost)
	if n == 0 {
		return nil
	}
	m := len(cost[0])

	transposed := n > m
	a := cost
	if transposed {
		a = transpose(cost)
		n, m = m, n
	}

	const inf = math.MaxFloat64 / 4
	u := make([]float64, n+1)
	v := make([]float64, m+1)
	p := make([]int, m+1)
	way := make([]int, m+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minv := make([]float64, m+1)
		used := make([]bool, m+1)
		for j := range minv {
			minv[j] = inf
		}
		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := -1
			for j := 1; j <= m; j++ {
				if used[j] {
					continue
				}
				cur := a[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= m; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	colMatch := make([]int, n+1) // colMatch[i] = column for row i (1-indexed), 0 = none
	for j := 1; j <= m; j++ {
		if p[j] != 0 {
			colMatch[p[j]] = j
		}
	}

	if transposed {
		// a[row][col] was cost[col][row]; colMatch maps a-rows (original
		// columns) to a-cols (original rows). Rebuild into original shape.
		out := make([]int, len(cost)) // indexed by original row i
		for i := range out {
			out[i] = -1
		}
		for aRow := 1; aRow <= n; aRow++ {
			aCol := colMatch[aRow]
			if aCol == 0 {
				continue
			}
			origRow := aCol - 1
			origCol := aRow - 1
			if cost[origRow][origCol] < unusableCost {
				out[origRow] = origCol
			}
		}
		return out
	}

	out := make([]int, len(cost))
	for i := range out {
		col := colMatch[i+1]
		if col == 0 || cost[i][col-1] >= unusableCost {
			out[i] = -1
		} else {
			out[i] = col - 1
		}
	}
	return out
}

func transpose(a [][]float64) [][]float64 {
	if len(a) == 0 {
		return nil
	}
	rows, cols := len(a), len(a[0])
	out := make([][]float64, cols)
	for j := 0; j < cols; j++ {
		out[j] = make([]float64, rows)
		for i := 0; i < rows; i++ {
			out[j][i] = a[i][j]
		}
	}
	return out
}
