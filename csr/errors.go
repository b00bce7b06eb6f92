// SPDX-License-Identifier: MIT

// Package csr: sentinel error set, matched via errors.Is.

package csr

import "errors"

var (
	// ErrEmptyInput is returned by Build when the entry sequence is empty;
	// a compressed matrix cannot be derived from zero nonzeros.
	ErrEmptyInput = errors.New("csr: cannot build from empty entry sequence")

	// ErrAllocation is returned when the derived array lengths cannot be
	// represented (index arithmetic would overflow int32 offsets).
	ErrAllocation = errors.New("csr: matrix too large to allocate")
)
