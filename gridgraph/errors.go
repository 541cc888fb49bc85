// SPDX-License-Identifier: MIT
package gridgraph

import "errors"

var (
	// ErrValidation indicates the source grid failed validation; the
	// validate sentinel is wrapped alongside it.
	ErrValidation = errors.New("gridgraph: grid failed validation")
	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("gridgraph: invalid option supplied")
	// ErrRegionIndex indicates a requested region index is out of range.
	ErrRegionIndex = errors.New("gridgraph: region index out of range")
	// ErrNoBridge indicates no set of wall cells joins the two regions.
	ErrNoBridge = errors.New("gridgraph: no bridge between specified regions")
)
