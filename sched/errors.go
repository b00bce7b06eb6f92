// SPDX-License-Identifier: MIT

// Package sched: sentinel error set, matched via errors.Is.

package sched

import "errors"

// ErrInvalidPolicy is returned for a partitioning policy that is not one of
// static, dynamic or guided.
var ErrInvalidPolicy = errors.New("sched: invalid partitioning policy, use static, dynamic, or guided")
