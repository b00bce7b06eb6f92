// SPDX-License-Identifier: MIT

// Package spmv: sentinel error set, matched via errors.Is.

package spmv

import "errors"

// ErrDimensionMismatch is returned when the dense vector length does not
// equal the matrix column count. The check is explicit: silently reading
// past x would otherwise be undefined behavior in all but name.
var ErrDimensionMismatch = errors.New("spmv: vector length does not match matrix columns")
