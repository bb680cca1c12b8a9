package weave

import "math"

// Solve computes a minimum-cost perfect matching over a square cost matrix
// using the Kuhn-Munkres (Hungarian) algorithm with row/column potentials
// and shortest-augmenting-path updates, O(n^3) overall.
//
// The result maps each row index to its assigned column index. The
// assignment is exact: no other permutation has a lower total cost.
func Solve(cost [][]float64) []int {
	n := len(cost)
	if n == 0 {
		return nil
	}

	inf := math.Inf(1)

	// 1-based working arrays; index 0 is the virtual unassigned slot.
	rowPotential := make([]float64, n+1)
	colPotential := make([]float64, n+1)
	rowOf := make([]int, n+1) // rowOf[j]: row currently assigned to column j
	prevCol := make([]int, n+1)

	for i := 1; i <= n; i++ {
		rowOf[0] = i
		currentCol := 0

		minValues := make([]float64, n+1)
		for j := range minValues {
			minValues[j] = inf
		}

		used := make([]bool, n+1)

		// Dijkstra-like search for the cheapest augmenting path from row i.
		for {
			used[currentCol] = true
			currentRow := rowOf[currentCol]
			delta := inf
			nextCol := 0

			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}

				reduced := cost[currentRow-1][j-1] - rowPotential[currentRow] - colPotential[j]
				if reduced < minValues[j] {
					minValues[j] = reduced
					prevCol[j] = currentCol
				}

				if minValues[j] < delta {
					delta = minValues[j]
					nextCol = j
				}
			}

			for j := 0; j <= n; j++ {
				if used[j] {
					rowPotential[rowOf[j]] += delta
					colPotential[j] -= delta
				} else {
					minValues[j] -= delta
				}
			}

			currentCol = nextCol
			if rowOf[currentCol] == 0 {
				break
			}
		}

		// Walk the augmenting path back, flipping assignments.
		for {
			next := prevCol[currentCol]
			rowOf[currentCol] = rowOf[next]
			currentCol = next

			if currentCol == 0 {
				break
			}
		}
	}

	assignment := make([]int, n)
	for i := range assignment {
		assignment[i] = -1
	}

	for j := 1; j <= n; j++ {
		if rowOf[j] > 0 && rowOf[j] <= n {
			assignment[rowOf[j]-1] = j - 1
		}
	}

	return assignment
}
