// SPDX-License-Identifier: MIT

// Package sched: partitioning policy type and parsing.

package sched

import "fmt"

// Policy selects how a row range is divided among pool workers.
type Policy uint8

const (
	// Static divides rows into blocks fixed before execution: contiguous
	// equal blocks when the chunk size is 0, round-robin chunk-sized blocks
	// otherwise.
	Static Policy = iota

	// Dynamic hands out chunk-sized blocks from a shared cursor as workers
	// become free.
	Dynamic

	// Guided hands out blocks that start large (remaining/workers) and
	// shrink geometrically, never below the chunk floor.
	Guided
)

// Policy names as accepted by ParsePolicy and produced by String.
const (
	nameStatic  = "static"
	nameDynamic = "dynamic"
	nameGuided  = "guided"
)

// DefaultDynamicChunk is the block size used by the Dynamic policy when the
// requested chunk size is 0.
const DefaultDynamicChunk = 32

// ParsePolicy maps a policy name to its Policy value.
//
// Returns ErrInvalidPolicy for anything other than "static", "dynamic" or
// "guided" (case-sensitive, matching the original CLI contract).
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case nameStatic:
		return Static, nil
	case nameDynamic:
		return Dynamic, nil
	case nameGuided:
		return Guided, nil
	default:
		return Static, fmt.Errorf("%w: %q", ErrInvalidPolicy, name)
	}
}

// String returns the canonical policy name; unknown values render as
// "policy(N)" and never round-trip through ParsePolicy.
func (p Policy) String() string {
	switch p {
	case Static:
		return nameStatic
	case Dynamic:
		return nameDynamic
	case Guided:
		return nameGuided
	default:
		return fmt.Sprintf("policy(%d)", uint8(p))
	}
}
