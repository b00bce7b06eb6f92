// Package spmv_test contains unit tests for the SpMV kernels and the
// exact work-counting pass.
package spmv_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/spmvbench/csr"
	"github.com/katalvlaran/spmvbench/mtx"
	"github.com/katalvlaran/spmvbench/sched"
	"github.com/katalvlaran/spmvbench/spmv"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// sampleMatrix builds the canonical 3×3/4-nonzero example.
func sampleMatrix(t *testing.T) *csr.Matrix {
	t.Helper()

	m, err := csr.Build([]mtx.Entry{
		{Row: 0, Col: 0, Value: 4},
		{Row: 0, Col: 2, Value: 9},
		{Row: 1, Col: 1, Value: 7},
		{Row: 2, Col: 0, Value: 5},
	})
	require.NoError(t, err)

	return m
}

// randomMatrix builds a deterministic sparse matrix with uneven row
// densities (including empty rows) to stress partitioning.
func randomMatrix(t *testing.T, rows, cols int, density float64, seed int64) *csr.Matrix {
	t.Helper()

	r := rand.New(rand.NewSource(seed))
	var entries []mtx.Entry
	for i := 0; i < rows; i++ {
		// Skew density per row so static partitioning is genuinely unbalanced.
		rowDensity := density * float64(i%5)
		for j := 0; j < cols; j++ {
			if r.Float64() < rowDensity {
				entries = append(entries, mtx.Entry{Row: i, Col: j, Value: r.NormFloat64()})
			}
		}
	}
	// Anchor the shape so rows/cols derive to the requested size.
	entries = append(entries, mtx.Entry{Row: rows - 1, Col: cols - 1, Value: 1})

	m, err := csr.Build(entries)
	require.NoError(t, err)

	return m
}

// TestMultiplySample checks y = A·x on the canonical example.
func TestMultiplySample(t *testing.T) {
	m := sampleMatrix(t)

	y, elapsed, err := spmv.Multiply(m, []float64{1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{13, 7, 5}, y)
	require.GreaterOrEqual(t, elapsed.Nanoseconds(), int64(0))
}

// TestMultiplyDimensionMismatch pins the explicit precondition check on
// both kernel variants.
func TestMultiplyDimensionMismatch(t *testing.T) {
	m := sampleMatrix(t)

	_, _, err := spmv.Multiply(m, []float64{1, 1})
	require.ErrorIs(t, err, spmv.ErrDimensionMismatch)

	p := sched.New(2)
	defer p.Close()
	_, _, err = spmv.MultiplyParallel(m, []float64{1, 1, 1, 1}, p, sched.Static, 0)
	require.ErrorIs(t, err, spmv.ErrDimensionMismatch)
}

// TestMultiplyParallelInvalidPolicy propagates the scheduling sentinel.
func TestMultiplyParallelInvalidPolicy(t *testing.T) {
	m := sampleMatrix(t)
	p := sched.New(2)
	defer p.Close()

	_, _, err := spmv.MultiplyParallel(m, []float64{1, 1, 1}, p, sched.Policy(42), 0)
	require.ErrorIs(t, err, sched.ErrInvalidPolicy)
}

// TestParallelMatchesSequentialBitForBit is the core determinism property:
// identical output across policies, chunk sizes and worker counts, compared
// with exact equality (no tolerance).
func TestParallelMatchesSequentialBitForBit(t *testing.T) {
	m := randomMatrix(t, 300, 200, 0.05, 11)
	r := rand.New(rand.NewSource(12))
	x := make([]float64, m.Cols())
	for i := range x {
		x[i] = r.Float64()*2000 - 1000
	}

	want, _, err := spmv.Multiply(m, x)
	require.NoError(t, err)

	for _, workers := range []int{1, 2, 3, 8} {
		p := sched.New(workers)
		for _, policy := range []sched.Policy{sched.Static, sched.Dynamic, sched.Guided} {
			for _, chunk := range []int{0, 1, 13, 100} {
				got, _, merr := spmv.MultiplyParallel(m, x, p, policy, chunk)
				require.NoError(t, merr)
				require.Equal(t, want, got, "workers=%d policy=%s chunk=%d", workers, policy, chunk)
			}
		}
		p.Close()
	}
}

// TestMultiplyMatchesDense cross-checks the sparse kernel against a gonum
// dense multiplication (duplicates accumulate identically on both sides).
func TestMultiplyMatchesDense(t *testing.T) {
	m := randomMatrix(t, 60, 45, 0.1, 21)
	r := rand.New(rand.NewSource(22))
	x := make([]float64, m.Cols())
	for i := range x {
		x[i] = r.NormFloat64()
	}

	dense := mat.NewDense(m.Rows(), m.Cols(), nil)
	rowStart, colIndex, values := m.RowStart(), m.ColIndex(), m.Values()
	for i := 0; i < m.Rows(); i++ {
		for j := rowStart[i]; j < rowStart[i+1]; j++ {
			c := int(colIndex[j])
			dense.Set(i, c, dense.At(i, c)+values[j])
		}
	}

	var want mat.VecDense
	want.MulVec(dense, mat.NewVecDense(len(x), x))

	got, _, err := spmv.Multiply(m, x)
	require.NoError(t, err)
	require.True(t, floats.EqualApprox(want.RawVector().Data, got, 1e-12))
}

// TestCountPassExact pins the exact tallies on the canonical example:
// 4 nonzeros over 3 rows ⇒ 8 FLOPs; bytes = 20·4 + 4·(3+1) + 8·3 = 120.
func TestCountPassExact(t *testing.T) {
	m := sampleMatrix(t)

	c := spmv.CountPass(m)
	require.EqualValues(t, 8, c.Flops)
	require.EqualValues(t, 120, c.Bytes)
}

// TestCountPassEmptyRows verifies empty rows cost only their offset reads.
func TestCountPassEmptyRows(t *testing.T) {
	m, err := csr.Build([]mtx.Entry{{Row: 4, Col: 0, Value: 1}}) // rows 0..3 empty
	require.NoError(t, err)

	c := spmv.CountPass(m)
	require.EqualValues(t, 2, c.Flops)
	// 1 nonzero: 20 bytes; rowStart: 4·6 = 24; y writes: 8·5 = 40.
	require.EqualValues(t, 20+24+40, c.Bytes)
}
