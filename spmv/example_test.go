package spmv_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/spmvbench/csr"
	"github.com/katalvlaran/spmvbench/mtx"
	"github.com/katalvlaran/spmvbench/sched"
	"github.com/katalvlaran/spmvbench/spmv"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleMultiply
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Multiply a tiny 3×3 sparse matrix by x = [1, 1, 1]:
//
//	  | 4 . 9 |       | 13 |
//	  | . 7 . | · x = |  7 |
//	  | 5 . . |       |  5 |
//
// Use case:
//
//	The sequential kernel, end to end from triplet text to the result vector.
//
// Complexity: O(nnz) time, O(rows) extra memory
func ExampleMultiply() {
	src := `% tiny demo matrix
3 3 4
1 1 4.0
1 3 9.0
2 2 7.0
3 1 5.0
`
	entries, err := mtx.Read(strings.NewReader(src))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	m, err := csr.Build(entries)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	y, _, err := spmv.Multiply(m, []float64{1, 1, 1})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("y=%v\n", y)
	// Output:
	// y=[13 7 5]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleMultiplyParallel
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The same product, split across two workers under the dynamic policy.
//	Each row keeps a private accumulator, so the result is bit-for-bit
//	identical to the sequential kernel.
func ExampleMultiplyParallel() {
	entries := []mtx.Entry{
		{Row: 0, Col: 0, Value: 4},
		{Row: 0, Col: 2, Value: 9},
		{Row: 1, Col: 1, Value: 7},
		{Row: 2, Col: 0, Value: 5},
	}
	m, err := csr.Build(entries)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	pool := sched.New(2)
	defer pool.Close()

	y, _, err := spmv.MultiplyParallel(m, []float64{1, 1, 1}, pool, sched.Dynamic, sched.DefaultDynamicChunk)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("y=%v\n", y)
	// Output:
	// y=[13 7 5]
}
