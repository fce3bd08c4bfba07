// Package builder: matrix-vector multiplication CDAG factory.
//
// The dataflow follows the classical column-major accumulation scheme: every
// matrix element pairs with its vector element into a product node, and per-
// row accumulator chains fold the n column contributions into the result.
//
// Node sets:
//
//	set 1  — inputs (matrix and vector element names)
//	set 2  — products v^2_1 .. v^2_{m·n}
//	set s  — accumulators v^s_1 .. v^s_m for s = 3 .. n+1
package builder

import (
	"fmt"
	"sync"

	"github.com/mcislab/mcis/core"
)

// mvmParallelFillThreshold switches the dimension-based id grid to a
// per-column goroutine fill. Generation writes disjoint indices, so the
// result is identical to the serial path.
const mvmParallelFillThreshold = 100

// MVMFromMatVec builds the MVM dataflow CDAG for the named matrix and
// vector elements. mat is row-major: mat[i][j] names the element at row i,
// column j, and every row must have len(vec) entries.
//
// Returns ErrInvalidParameters when either dimension is zero and
// ErrInconsistentDimensions when a row length disagrees with the vector.
// Complexity: O(m·n) nodes and edges.
func MVMFromMatVec(mat [][]string, vec []string) (*core.Graph, error) {
	m := len(mat)
	n := len(vec)
	if m == 0 || n == 0 {
		return nil, fmt.Errorf("MVMFromMatVec: m=%d n=%d: %w", m, n, ErrInvalidParameters)
	}
	for i, row := range mat {
		if len(row) != n {
			return nil, fmt.Errorf("MVMFromMatVec: row %d has %d columns, vector has %d: %w",
				i, len(row), n, ErrInconsistentDimensions)
		}
	}

	g := core.NewGraph()
	g.ReserveNodes(m*n + n + m*n + m*(n-1))

	// Input nodes: matrix elements, then vector elements.
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if err := g.AddNode(mat[i][j]); err != nil {
				return nil, fmt.Errorf("MVMFromMatVec: %w", err)
			}
		}
	}
	for j := 0; j < n; j++ {
		if err := g.AddNode(vec[j]); err != nil {
			return nil, fmt.Errorf("MVMFromMatVec: %w", err)
		}
	}

	// Product nodes v^2_1 .. v^2_{m·n}, column-major over the matrix.
	for i := 1; i <= m*n; i++ {
		if err := g.AddNode(mvmNodeID(2, i)); err != nil {
			return nil, fmt.Errorf("MVMFromMatVec: %w", err)
		}
	}

	// Accumulator sets v^s_1 .. v^s_m for s = 3 .. n+1.
	for set := 3; set <= n+1; set++ {
		for i := 1; i <= m; i++ {
			if err := g.AddNode(mvmNodeID(set, i)); err != nil {
				return nil, fmt.Errorf("MVMFromMatVec: %w", err)
			}
		}
	}

	// Vector element j feeds the m products of column j.
	incr := 0
	for j := 1; j < m*n+n; j += m + 1 {
		from := vec[incr]
		incr++
		k := (j - 1) / (m + 1)
		for i := 0; i < m; i++ {
			if err := g.AddEdge(from, mvmNodeID(2, j-k+i), 0); err != nil {
				return nil, fmt.Errorf("MVMFromMatVec: %w", err)
			}
		}
	}

	// Matrix element (i,j) feeds its own product node.
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			if err := g.AddEdge(mat[i][j], mvmNodeID(2, i+m*j+1), 0); err != nil {
				return nil, fmt.Errorf("MVMFromMatVec: %w", err)
			}
		}
	}

	// Accumulator chains: v^s_j → v^{s+1}_j.
	for s := 2; s <= n; s++ {
		for j := 1; j <= m; j++ {
			if err := g.AddEdge(mvmNodeID(s, j), mvmNodeID(s+1, j), 0); err != nil {
				return nil, fmt.Errorf("MVMFromMatVec: %w", err)
			}
		}
	}

	// Products of columns 2..n feed the accumulator of their row.
	for j := m + 1; j <= m*n; j++ {
		row := j % m
		if row == 0 {
			row = m
		}
		if err := g.AddEdge(mvmNodeID(2, j), mvmNodeID(2+(j-1)/m, row), 0); err != nil {
			return nil, fmt.Errorf("MVMFromMatVec: %w", err)
		}
	}

	return g, nil
}

// MVMFromDimensions builds the MVM CDAG for an m×n matrix and an n-vector,
// synthesizing input names in the v^1_z scheme: column i contributes the
// vector element at z = (m+1)·i + 1 followed by its m matrix elements.
//
// Returns ErrInvalidParameters when m ≤ 0 or n ≤ 0.
func MVMFromDimensions(m, n int) (*core.Graph, error) {
	if m <= 0 || n <= 0 {
		return nil, fmt.Errorf("MVMFromDimensions: m=%d n=%d: %w", m, n, ErrInvalidParameters)
	}

	mat := make([][]string, m)
	for i := range mat {
		mat[i] = make([]string, n)
	}
	vec := make([]string, n)

	fillColumn := func(i int) {
		z := (m+1)*i + 1
		vec[i] = mvmNodeID(1, z)
		for j := 0; j < m; j++ {
			mat[j][i] = mvmNodeID(1, z+j+1)
		}
	}

	if m*n >= mvmParallelFillThreshold {
		// Columns are independent; fan out one goroutine per column.
		var wg sync.WaitGroup
		wg.Add(n)
		for i := 0; i < n; i++ {
			go func(col int) {
				defer wg.Done()
				fillColumn(col)
			}(i)
		}
		wg.Wait()
	} else {
		for i := 0; i < n; i++ {
			fillColumn(i)
		}
	}

	return MVMFromMatVec(mat, vec)
}

// mvmNodeID renders the v^<set>_<index> identifier.
func mvmNodeID(set, index int) string {
	return fmt.Sprintf("v^%d_%d", set, index)
}
